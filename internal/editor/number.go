package editor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is the raw text of a numeric input. It decodes from a JSON string
// or a JSON number so API clients can send either.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}
	*n = Number(data)
	return nil
}

// NumberOf formats v as input text.
func NumberOf(v int) Number {
	return Number(strconv.Itoa(v))
}

// NumberOfPtr formats v, leaving nil empty.
func NumberOfPtr(v *int) Number {
	if v == nil {
		return ""
	}
	return NumberOf(*v)
}

// ValidationError reports a form field that could not be accepted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// parseInt parses a required integer. Empty input is zero.
func parseInt(field, label string, n Number) (int, error) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalid(field, "%s must be a whole number.", label)
	}
	return v, nil
}

// parseOptionalInt parses a nullable integer. Empty input is nil.
func parseOptionalInt(field, label string, n Number) (*int, error) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, invalid(field, "%s must be a whole number.", label)
	}
	return &v, nil
}
