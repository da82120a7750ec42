package mongovalidator

import (
	"log/slog"
)

// Options is the trailing argument recognised by descriptor factories.
type Options struct {
	Message string
}

// Msg is shorthand for Options{Message: message}.
func Msg(message string) Options {
	return Options{Message: message}
}

// optionsOf reports whether v is an Options value. Only the type is checked;
// maps and other records are never treated as options.
func optionsOf(v any) (Options, bool) {
	switch o := v.(type) {
	case Options:
		return o, true
	case *Options:
		if o == nil {
			return Options{}, true
		}
		return *o, true
	}
	return Options{}, false
}

type registryConfig struct {
	library        Library
	logger         *slog.Logger
	extraBlacklist []string
}

// Option configures a Registry.
type Option func(*registryConfig)

// WithLibrary replaces the validator library the registry is built from.
func WithLibrary(lib Library) Option {
	return func(c *registryConfig) {
		if lib != nil {
			c.library = lib
		}
	}
}

// WithLogger sets the logger used during construction. If nil, output is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *registryConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithConfig applies values loaded from the environment.
func WithConfig(cfg Config) Option {
	return func(c *registryConfig) {
		c.extraBlacklist = append(c.extraBlacklist, cfg.ExtraBlacklist...)
	}
}

// WithBlacklist skips additional library exports by name.
func WithBlacklist(names ...string) Option {
	return func(c *registryConfig) {
		c.extraBlacklist = append(c.extraBlacklist, names...)
	}
}
