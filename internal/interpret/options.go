package interpret

import (
	"io"
	"log/slog"
)

const (
	DefaultStackCapacity = 512
	DefaultMaxTextLength = 511
)

type options struct {
	stackCapacity int
	maxTextLength int
	logger        *slog.Logger
}

type Option func(*options)

// WithStackCapacity bounds the number of operands held at once.
func WithStackCapacity(n int) Option {
	return func(o *options) {
		o.stackCapacity = n
	}
}

// WithMaxTextLength bounds the length, in runes, of every sub-expression
// built by ToInfix.
func WithMaxTextLength(n int) Option {
	return func(o *options) {
		o.maxTextLength = n
	}
}

// WithLogger sets a logger that receives a debug record per token.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := options{
		stackCapacity: DefaultStackCapacity,
		maxTextLength: DefaultMaxTextLength,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.stackCapacity <= 0 {
		o.stackCapacity = DefaultStackCapacity
	}
	if o.maxTextLength <= 0 {
		o.maxTextLength = DefaultMaxTextLength
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}
