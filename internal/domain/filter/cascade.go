package filter

import "sort"

// State is the selection state of a Cascade.
type State struct {
	Field1     string `json:"field1"`
	Field2     string `json:"field2"`
	IsFiltered bool   `json:"isFiltered"`
}

// Cascade is the two-field filter bar: pick field 1, which narrows the
// options for field 2, then search to narrow the visible records.
//
// An empty selection means "unselected". IsFiltered only turns on through
// Search and only turns off through Reset.
type Cascade[T any] struct {
	field1 Accessor[T]
	field2 Accessor[T]
	state  State
}

// NewCascade creates an unfiltered Cascade over the two accessors.
func NewCascade[T any](field1, field2 Accessor[T]) *Cascade[T] {
	return &Cascade[T]{field1: field1, field2: field2}
}

// State returns the current selection.
func (c *Cascade[T]) State() State {
	return c.state
}

// Field1Options returns every distinct non-empty field 1 value, sorted.
func (c *Cascade[T]) Field1Options(records []T) []Option {
	return distinctOptions(records, c.field1, nil)
}

// Field2Options returns the distinct non-empty field 2 values, sorted.
// When field 1 is selected only records carrying that value contribute.
func (c *Cascade[T]) Field2Options(records []T) []Option {
	if c.state.Field1 == "" {
		return distinctOptions(records, c.field2, nil)
	}
	selected := c.state.Field1
	return distinctOptions(records, c.field2, func(r T) bool {
		return c.field1(r) == selected
	})
}

// SetField1 selects field 1. Changing it to a different value clears field 2
// so a field 2 value picked under the old field 1 is never kept.
func (c *Cascade[T]) SetField1(value string) {
	if value != c.state.Field1 {
		c.state.Field2 = ""
	}
	c.state.Field1 = value
}

// SetField2 selects field 2.
func (c *Cascade[T]) SetField2(value string) {
	c.state.Field2 = value
}

// Search turns filtering on. With both selections empty it does nothing.
func (c *Cascade[T]) Search() {
	if c.state.Field1 == "" && c.state.Field2 == "" {
		return
	}
	c.state.IsFiltered = true
}

// Reset clears both selections and turns filtering off.
func (c *Cascade[T]) Reset() {
	c.state = State{}
}

// VisibleRecords returns records unchanged while unfiltered, otherwise the
// records matching every non-empty selection, in collection order.
func (c *Cascade[T]) VisibleRecords(records []T) []T {
	if !c.state.IsFiltered {
		return records
	}
	visible := make([]T, 0, len(records))
	for _, r := range records {
		if c.matches(r) {
			visible = append(visible, r)
		}
	}
	return visible
}

func (c *Cascade[T]) matches(r T) bool {
	if c.state.Field1 != "" && c.field1(r) != c.state.Field1 {
		return false
	}
	if c.state.Field2 != "" && c.field2(r) != c.state.Field2 {
		return false
	}
	return true
}

func distinctOptions[T any](records []T, field Accessor[T], keep func(T) bool) []Option {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, r := range records {
		if keep != nil && !keep(r) {
			continue
		}
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)

	options := make([]Option, len(values))
	for i, v := range values {
		options[i] = Option{Value: v, Label: v}
	}
	return options
}
