// Package conf wires the configuration loader into an Fx application.
//
// NewApp builds an Fx container with a structured slog logger and, when
// WithConfigFile is given, a *config.Config loaded at startup and torn down at
// shutdown. ProvideSection binds a config section into a typed struct.
package conf
