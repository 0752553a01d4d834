package filter

import (
	"fmt"
	"strings"

	"tcnursery/internal/core/apperror"
)

// Fields maps a register's public field names to their accessors.
type Fields[T any] map[string]Accessor[T]

// Names returns the field names (unordered).
func (f Fields[T]) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	return names
}

// Apply keeps the records matching every item. Records keep collection order.
// Unknown fields and operators are validation errors.
func Apply[T any](records []T, fields Fields[T], items []Item) ([]T, error) {
	if len(items) == 0 {
		return records, nil
	}

	type compiled struct {
		get   Accessor[T]
		match func(string) bool
	}
	preds := make([]compiled, 0, len(items))
	for _, item := range items {
		get, ok := fields[item.Field]
		if !ok {
			return nil, apperror.NewInvalidField("filter", "unknown filter field", item.Field).
				WithDetail("allowed", fields.Names())
		}
		match, err := item.matcher()
		if err != nil {
			return nil, err
		}
		preds = append(preds, compiled{get: get, match: match})
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		keep := true
		for _, p := range preds {
			if !p.match(p.get(r)) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out, nil
}

// matcher compiles the item into a predicate over the field's display value.
func (i Item) matcher() (func(string) bool, error) {
	switch i.Operator {
	case Equal:
		want := scalar(i.Value)
		return func(v string) bool { return v == want }, nil
	case NotEqual:
		want := scalar(i.Value)
		return func(v string) bool { return v != want }, nil
	case Contains:
		want := strings.ToLower(scalar(i.Value))
		return func(v string) bool { return strings.Contains(strings.ToLower(v), want) }, nil
	case NotContains:
		want := strings.ToLower(scalar(i.Value))
		return func(v string) bool { return !strings.Contains(strings.ToLower(v), want) }, nil
	case InList, NotInList:
		set, err := list(i.Value)
		if err != nil {
			return nil, apperror.NewInvalidField("filter", err.Error(), i.Field)
		}
		in := i.Operator == InList
		return func(v string) bool {
			_, ok := set[v]
			return ok == in
		}, nil
	case IsNull:
		return func(v string) bool { return v == "" }, nil
	case IsNotNull:
		return func(v string) bool { return v != "" }, nil
	default:
		return nil, apperror.NewInvalidField("operator", "unsupported filter operator", string(i.Operator))
	}
}

func scalar(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func list(v any) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	switch vals := v.(type) {
	case []any:
		for _, x := range vals {
			set[scalar(x)] = struct{}{}
		}
	case []string:
		for _, x := range vals {
			set[x] = struct{}{}
		}
	case string:
		for _, x := range strings.Split(vals, ",") {
			set[strings.TrimSpace(x)] = struct{}{}
		}
	default:
		return nil, fmt.Errorf("in/nin expects an array value")
	}
	return set, nil
}
