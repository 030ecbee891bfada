package textutil

import (
	"fmt"
	"strings"
)

// FormatError reports a string that is not one of the recognized boolean
// aliases. It carries the offending input.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("textutil: %q is not a recognized boolean value", e.Input)
}

// ParseBool maps the closed set of boolean aliases to a bool,
// case-insensitively: true/yes/y/1/on and false/no/n/0/off. Anything else
// fails with a FormatError; there is no fuzzy matching and no trimming.
func ParseBool(source string) (bool, error) {
	switch strings.ToLower(source) {
	case "true", "yes", "y", "1", "on":
		return true, nil
	case "false", "no", "n", "0", "off":
		return false, nil
	}
	return false, &FormatError{Input: source}
}

// ToBool is the any-typed variant used on configuration values whose
// origin may be a parsed file or an API call: an actual bool passes
// through untouched with no string conversion, a string goes through
// ParseBool, and any other type is rejected.
func ToBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return ParseBool(v)
	default:
		return false, fmt.Errorf("textutil: cannot convert %T to bool", value)
	}
}
