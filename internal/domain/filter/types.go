// Package filter holds the list-narrowing logic every nursery register shares:
// the two-field cascading filter bar, the date→identifier record selector used
// by edit dialogs, and free-form advanced filter items.
//
// Everything here is a pure derivation over a record collection supplied by the
// caller on each call. Nothing is cached and the collection is never mutated.
package filter

// Accessor projects a record onto one displayable field value.
// Non-string fields are coerced by the accessor itself (strconv.Itoa etc.).
type Accessor[T any] func(T) string

// Option is one entry of a selection control.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ComparisonType defines the kinds of comparison an advanced filter item supports.
type ComparisonType string

const (
	Equal       ComparisonType = "eq"        // equal
	NotEqual    ComparisonType = "neq"       // not equal
	InList      ComparisonType = "in"        // one of
	NotInList   ComparisonType = "nin"       // none of
	Contains    ComparisonType = "contains"  // case-insensitive substring
	NotContains ComparisonType = "ncontains" // no case-insensitive substring

	IsNull    ComparisonType = "null"     // empty
	IsNotNull ComparisonType = "not_null" // filled
)

// Item is one row of an advanced filter.
type Item struct {
	Field    string         `json:"field"`    // register field name (camelCase, as in JSON)
	Operator ComparisonType `json:"operator"` // comparison kind
	Value    any            `json:"value"`    // string, number, or array for in/nin
}
