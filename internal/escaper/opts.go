package escaper

type Option func(*Escaper)

func WithStyle(style Style) Option {
	return func(e *Escaper) {
		e.style = style
	}
}
