package filter

// Selector backs the edit dialog: choose a date, see which identifiers exist
// on it, choose one, and load that exact record.
type Selector[T any] struct {
	date       Accessor[T]
	identifier Accessor[T]
}

// NewSelector creates a Selector keyed by a date and a secondary identifier.
func NewSelector[T any](date, identifier Accessor[T]) *Selector[T] {
	return &Selector[T]{date: date, identifier: identifier}
}

// AvailableIdentifiers returns the distinct identifiers recorded on date, in
// the order they first appear. An empty date yields none.
func (s *Selector[T]) AvailableIdentifiers(records []T, date string) []string {
	identifiers := make([]string, 0)
	if date == "" {
		return identifiers
	}
	seen := make(map[string]struct{})
	for _, r := range records {
		if s.date(r) != date {
			continue
		}
		ident := s.identifier(r)
		if _, ok := seen[ident]; ok {
			continue
		}
		seen[ident] = struct{}{}
		identifiers = append(identifiers, ident)
	}
	return identifiers
}

// SelectedRecord returns the first record, in collection order, with the given
// date and identifier. ok is false when either key is empty or nothing matches.
func (s *Selector[T]) SelectedRecord(records []T, date, identifier string) (record T, ok bool) {
	if date == "" || identifier == "" {
		return record, false
	}
	for _, r := range records {
		if s.date(r) == date && s.identifier(r) == identifier {
			return r, true
		}
	}
	return record, false
}

// HasRecordsForDate reports whether any record carries date.
func (s *Selector[T]) HasRecordsForDate(records []T, date string) bool {
	if date == "" {
		return false
	}
	for _, r := range records {
		if s.date(r) == date {
			return true
		}
	}
	return false
}
