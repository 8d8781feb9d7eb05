package probemap

// Version is the module version reported by the probemap CLI.
const Version = "0.1.0"
