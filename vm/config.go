package vm

import (
	"io"
	"log/slog"
)

const (
	DefaultMaxStack  = 1024 * 1024
	DefaultMaxFrames = 1024
)

type Config struct {
	MaxStack   int  `json:"max_stack"`
	MaxFrames  int  `json:"max_frames"`
	Permissive bool `json:"permissive"`
	Trace      bool `json:"trace"`
}

func DefaultConfig() Config {
	return Config{
		MaxStack:  DefaultMaxStack,
		MaxFrames: DefaultMaxFrames,
	}
}

func (c Config) normalized() Config {
	if c.MaxStack <= 0 {
		c.MaxStack = DefaultMaxStack
	}
	if c.MaxFrames <= 0 {
		c.MaxFrames = DefaultMaxFrames
	}
	return c
}

type Option func(*Context)

// WithConfig sets limits and dispatch policy. Zero limits fall back to defaults.
func WithConfig(config Config) Option {
	return func(c *Context) {
		c.config = config.normalized()
	}
}

// WithWriter sets the writer receiving print output
func WithWriter(w io.Writer) Option {
	return func(c *Context) {
		c.out = w
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		c.logger = logger
	}
}

// WithMaxSteps bounds the number of executed instructions (0 = unlimited)
func WithMaxSteps(n int) Option {
	return func(c *Context) {
		c.maxSteps = n
	}
}
