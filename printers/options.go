package printers

import (
	"io"
	"os"
)

// options contains common display options shared by all printers
type options struct {
	ShowTimestamp bool
	ShowPreview   bool
	Out           io.Writer
}

// Configurable is implemented by every printer in this package.
type Configurable interface {
	options() *options
}

// WithTimestamp enables timestamp display in printer output
func WithTimestamp[T Configurable]() func(T) {
	return func(p T) {
		p.options().ShowTimestamp = true
	}
}

// WithPreview adds a short rendering of each value to the output
func WithPreview[T Configurable]() func(T) {
	return func(p T) {
		p.options().ShowPreview = true
	}
}

// WithWriter redirects printer output, which goes to stdout by default
func WithWriter[T Configurable](w io.Writer) func(T) {
	return func(p T) {
		p.options().Out = w
	}
}

func (o *options) writer() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}
