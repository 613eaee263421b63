package cart

// MemoryStorage adalah Storage tanpa durabilitas, dipakai di test dan
// sebagai fallback saat DB tidak tersedia.
type MemoryStorage struct {
	lines []Line
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() ([]Line, error) {
	return s.lines, nil
}

func (s *MemoryStorage) Save(lines []Line) error {
	s.lines = lines
	return nil
}
