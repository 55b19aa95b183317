// Package render displays completions as terminal markdown.
package render

// StylePlain bypasses glamour and writes the completion text verbatim.
const StylePlain = "plain"

// Options configures the markdown renderer behavior.
type Options struct {
	// Style is "auto", "dark", "light", "notty", "plain" or a path to a glamour JSON style.
	Style string

	// Width is the word-wrap column (default: 80)
	Width int
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Style: "auto",
		Width: 80,
	}
}

// WithStyle returns Options with the specified style.
func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}

// WithWidth returns Options with the specified width.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}
