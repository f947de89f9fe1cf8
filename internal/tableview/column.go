package tableview

import (
	"fmt"
	"strings"
	"time"
)

// FilterFunc decides whether a cell value matches the filter query.
type FilterFunc func(value any, query string) bool

// Column describes one column of a table over rows of type T.
type Column[T any] struct {
	Key    string
	Header string
	Value  func(T) any
	// Fixed columns cannot be hidden.
	Fixed bool
	// Filter replaces the default substring match.
	Filter FilterFunc
}

// Contains is the default filter: case-insensitive substring match on the
// rendered cell.
func Contains(value any, query string) bool {
	return strings.Contains(strings.ToLower(Text(value)), strings.ToLower(query))
}

// Equals matches the rendered cell exactly.
func Equals(value any, query string) bool {
	return Text(value) == query
}

// Text renders a cell value the way filters see it. Nil pointers render empty.
func Text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format(time.RFC3339)
	case *int:
		if v == nil {
			return ""
		}
		return fmt.Sprint(*v)
	case *int64:
		if v == nil {
			return ""
		}
		return fmt.Sprint(*v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
