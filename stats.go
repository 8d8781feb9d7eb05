package probemap

type Stats struct {
	Size       int
	Capacity   int
	LoadFactor float32
}

func (m *Map[K, V]) Stats() Stats {
	return Stats{
		Size:       m.size,
		Capacity:   len(m.slots),
		LoadFactor: float32(m.size) / float32(len(m.slots)),
	}
}
