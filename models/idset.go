package models

// IDSet is a set of entity ids stored as a JSON array column. Add and Remove
// keep set semantics so repeated relationship writes stay idempotent.
type IDSet []uint

func (s IDSet) Contains(id uint) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Add returns the set with id present exactly once.
func (s IDSet) Add(id uint) IDSet {
	if s.Contains(id) {
		return s
	}
	return append(s, id)
}

// Remove returns the set without id.
func (s IDSet) Remove(id uint) IDSet {
	out := s[:0]
	for _, v := range s {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
