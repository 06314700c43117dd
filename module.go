package conf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-conf/config"

	"go.uber.org/fx"
)

// NewConfigModule creates an Fx module that loads the file at path on startup
// and provides the *config.Config. The config is torn down when the app stops.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewConfigModule(path string, opts ...config.Option) fx.Option {
	return fx.Module("config",
		fx.Provide(func(lifecycle fx.Lifecycle, logger *slog.Logger) (*config.Config, error) {
			loadOpts := append([]config.Option{config.WithLogger(logger)}, opts...)

			cfg, err := config.Load(path, loadOpts...)
			if err != nil {
				return nil, fmt.Errorf("loading config: %w", err)
			}

			lifecycle.Append(fx.Hook{
				OnStop: func(context.Context) error {
					cfg.Teardown()

					return nil
				},
			})

			return cfg, nil
		}),
		// Load eagerly so a broken file fails startup even if nothing asks for it yet.
		fx.Invoke(func(*config.Config) {}),
	)
}

// ProvideSection binds the entries under prefix into a *T with config.Provider
// and provides it to the container.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func ProvideSection[T any](prefix string) fx.Option {
	return fx.Provide(func(cfg *config.Config) (*T, error) {
		return config.Provider(new(T), prefix)(cfg)
	})
}
