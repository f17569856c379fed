package escaper

import (
	"strings"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

var defaultEscaper = New()

type Escaper struct {
	style Style
}

func New(opts ...Option) *Escaper {
	e := &Escaper{
		style: StyleCompat,
	}

	for _, opt := range opts {
		opt(e)
	}

	style, err := ParseStyle(string(e.style))
	if err != nil {
		style = StyleCompat
	}

	e.style = style
	return e
}

func (e *Escaper) Style() Style {
	return e.style
}

// Escape returns in with control characters, double quotes, backslashes and
// pipes replaced by escape sequences. Bytes outside of ASCII are copied as is.
func Escape(in string) string {
	return defaultEscaper.Escape(in)
}

// Unescape reverses Escape. Unknown or malformed escape sequences are kept
// literally.
func Unescape(in string) string {
	return defaultEscaper.Unescape(in)
}

func (e *Escaper) Escape(in string) string {
	var out strings.Builder
	out.Grow(len(in))

	for i := 0; i < len(in); i++ {
		c := in[i]

		if e.style == StyleShort {
			if seq, ok := shortEscape(c); ok {
				_, _ = out.WriteString(seq)
				continue
			}
		}

		if c < 0x20 {
			_, _ = out.WriteString(`\u00`)
			_ = out.WriteByte(hexDigits[c>>4&0xf])
			_ = out.WriteByte(hexDigits[c&0xf])
			continue
		}

		switch c {
		case '"':
			_, _ = out.WriteString(`\"`)
		case '\\':
			_, _ = out.WriteString(`\\`)
		case '|':
			_, _ = out.WriteString(`\|`)
		default:
			_ = out.WriteByte(c)
		}
	}

	return out.String()
}

// Unescape does not depend on the style: both \n and \u000a forms are accepted.
func (e *Escaper) Unescape(in string) string {
	var out strings.Builder
	out.Grow(len(in))

	for i := 0; i < len(in); i++ {
		c := in[i]
		if c != '\\' || i+1 >= len(in) {
			_ = out.WriteByte(c)
			continue
		}

		switch in[i+1] {
		case 'n':
			_ = out.WriteByte('\n')
		case 'r':
			_ = out.WriteByte('\r')
		case 't':
			_ = out.WriteByte('\t')
		case '"', '\\', '|':
			_ = out.WriteByte(in[i+1])
		case 'u':
			v, ok := parseByteEscape(in[i:])
			if !ok {
				// only the backslash is consumed, "u..." is scanned as plain text
				_ = out.WriteByte(c)
				continue
			}

			if v < utf8.RuneSelf {
				_ = out.WriteByte(v)
			} else {
				_, _ = out.WriteRune(rune(v))
			}
			i += len(`\u00XX`) - 1
			continue
		default:
			_ = out.WriteByte(c)
			continue
		}

		i++
	}

	return out.String()
}

func shortEscape(c byte) (string, bool) {
	switch c {
	case '\n':
		return `\n`, true
	case '\r':
		return `\r`, true
	case '\t':
		return `\t`, true
	default:
		return "", false
	}
}

// parseByteEscape parses the \u00XX sequence at the start of s.
func parseByteEscape(s string) (byte, bool) {
	if len(s) < len(`\u00XX`) || s[2] != '0' || s[3] != '0' {
		return 0, false
	}

	hi, ok := unhex(s[4])
	if !ok {
		return 0, false
	}

	lo, ok := unhex(s[5])
	if !ok {
		return 0, false
	}

	return hi<<4 | lo, true
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
