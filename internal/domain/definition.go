package domain

import "tcnursery/internal/domain/filter"

// Field names one accessor-backed field of a register.
type Field[T any] struct {
	Name string
	Get  filter.Accessor[T]
}

// Definition describes a register: its name and which fields play the
// cascading filter and record selector roles.
type Definition[T any] struct {
	// Name is the URL segment and journal entity type, e.g. "media"
	Name string

	// Label is the human title of the register
	Label string

	// Field1 narrows Field2 in the filter bar
	Field1 Field[T]
	Field2 Field[T]

	// Date and Identifier drive the edit dialog selector
	Date       Field[T]
	Identifier Field[T]

	// Fields are addressable by advanced filter items
	Fields filter.Fields[T]
}

// Roles lists the field names per role, for metadata consumers.
func (d Definition[T]) Roles() map[string]string {
	return map[string]string{
		"field1":     d.Field1.Name,
		"field2":     d.Field2.Name,
		"date":       d.Date.Name,
		"identifier": d.Identifier.Name,
	}
}
