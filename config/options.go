package config

import (
	"log/slog"

	"github.com/0xalexb/hjarta-conf/config/alloc"
	"github.com/0xalexb/hjarta-conf/config/cache"
	"github.com/0xalexb/hjarta-conf/config/pathbuild"
)

// Options holds the settings of a single load.
type Options struct {
	Logger        *slog.Logger
	Tracker       alloc.Tracker
	MaxPathLength int
	BlockSize     int
}

// Option defines a function type for applying load options.
type Option func(*Options)

// WithLogger sets the logger used for warnings and diagnostics.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithTracker reports every arena and store allocation to tracker.
func WithTracker(tracker alloc.Tracker) Option {
	return func(opts *Options) {
		opts.Tracker = tracker
	}
}

// WithMaxPathLength sets the path bound in bytes. Zero disables truncation;
// negative values are ignored.
func WithMaxPathLength(n int) Option {
	return func(opts *Options) {
		if n >= 0 {
			opts.MaxPathLength = n
		}
	}
}

// WithBlockSize sets the string arena block size in bytes.
func WithBlockSize(size int) Option {
	return func(opts *Options) {
		opts.BlockSize = size
	}
}

func newOptions(opts []Option) Options {
	options := Options{
		Logger:        nil,
		Tracker:       alloc.Nop{},
		MaxPathLength: pathbuild.DefaultMaxPathLength,
		BlockSize:     cache.DefaultBlockSize,
	}

	for _, apply := range opts {
		apply(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	if options.Tracker == nil {
		options.Tracker = alloc.Nop{}
	}

	return options
}
