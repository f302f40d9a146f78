package models

// InviteSet хранит коды приглашений одного запуска резервного копирования.
// Уникальность кодов гарантируется в пределах одного запуска; порядок кодов
// соответствует порядку первого обнаружения, но потребители не должны на него
// полагаться.
type InviteSet struct {
	codes []string
	seen  map[string]struct{}
}

func NewInviteSet() *InviteSet {
	return &InviteSet{
		seen: make(map[string]struct{}),
	}
}

// Add добавляет код в набор. Возвращает false, если код уже присутствует.
func (s *InviteSet) Add(code string) bool {
	if code == "" {
		return false
	}

	if _, ok := s.seen[code]; ok {
		return false
	}

	s.seen[code] = struct{}{}
	s.codes = append(s.codes, code)

	return true
}

func (s *InviteSet) Contains(code string) bool {
	_, ok := s.seen[code]
	return ok
}

func (s *InviteSet) Len() int {
	return len(s.codes)
}

// Codes возвращает копию кодов в порядке первого обнаружения.
func (s *InviteSet) Codes() []string {
	codes := make([]string, len(s.codes))
	copy(codes, s.codes)

	return codes
}
