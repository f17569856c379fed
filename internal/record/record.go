package record

import (
	"strings"

	"github.com/buglloc/pipescape/internal/escaper"
)

const Delimiter = '|'

var defaultEncoder = NewEncoder(escaper.New())

type Encoder struct {
	esc *escaper.Escaper
}

func NewEncoder(esc *escaper.Escaper) *Encoder {
	if esc == nil {
		esc = escaper.New()
	}

	return &Encoder{
		esc: esc,
	}
}

// Join escapes every field and joins them with the pipe delimiter.
func Join(fields []string) string {
	return defaultEncoder.Join(fields)
}

// Split splits a line produced by Join back into unescaped fields.
func Split(line string) []string {
	return defaultEncoder.Split(line)
}

func (e *Encoder) Join(fields []string) string {
	var out strings.Builder
	for i, f := range fields {
		if i > 0 {
			_ = out.WriteByte(Delimiter)
		}
		_, _ = out.WriteString(e.esc.Escape(f))
	}
	return out.String()
}

func (e *Encoder) Split(line string) []string {
	var fields []string
	start := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			// escaped unit never delimits
			i++
		case Delimiter:
			fields = append(fields, e.esc.Unescape(line[start:i]))
			start = i + 1
		}
	}

	return append(fields, e.esc.Unescape(line[start:]))
}
