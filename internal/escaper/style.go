package escaper

import (
	"fmt"
	"strings"
)

// Style selects how newline, carriage return and tab are escaped.
type Style string

const (
	// StyleCompat escapes every control character as \u00XX, including
	// newline, carriage return and tab.
	StyleCompat Style = "compat"
	// StyleShort escapes newline, carriage return and tab as \n, \r and \t.
	StyleShort Style = "short"
)

func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "", "compat":
		return StyleCompat, nil
	case "short":
		return StyleShort, nil
	default:
		return "", fmt.Errorf("invalid escaper style: %s", s)
	}
}

func (s *Style) UnmarshalText(data []byte) error {
	style, err := ParseStyle(string(data))
	if err != nil {
		return err
	}

	*s = style
	return nil
}

func (s Style) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

func (s Style) String() string {
	return string(s)
}
