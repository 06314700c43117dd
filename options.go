package conf

import (
	"github.com/0xalexb/hjarta-conf/config"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules     []fx.Option
	LogLevel    string
	LogFormat   string
	ConfigFile  string
	LoadOptions []config.Option
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFile loads the file at path when the application starts and
// supplies the resulting *config.Config to the container.
// The last call wins; load options accumulate.
func WithConfigFile(path string, loadOpts ...config.Option) Option {
	return func(opts *Options) {
		opts.ConfigFile = path
		opts.LoadOptions = append(opts.LoadOptions, loadOpts...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log output format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
