package conf_test

import (
	"fmt"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/config"

	"go.uber.org/fx"
)

// DatabaseConnection is bound from the /database/connection section.
type DatabaseConnection struct {
	Host string `conf:"host"`
	Port int    `conf:"port"`
}

// Repository depends on the loaded config and a bound section.
type Repository struct {
	Conn   *DatabaseConnection
	Server string
}

// NewRepository creates a Repository.
func NewRepository(cfg *config.Config, conn *DatabaseConnection) *Repository {
	return &Repository{
		Conn:   conn,
		Server: cfg.ReadOr("/server/host", "localhost"),
	}
}

func ExampleNewApp() {
	var repo *Repository

	app := conf.NewApp(
		conf.WithLogLevel("error"),
		conf.WithConfigFile("testdata/app.yaml"),
		conf.WithModules(
			conf.ProvideSection[DatabaseConnection]("/database/connection"),
			fx.Provide(NewRepository),
			fx.Populate(&repo),
		),
	)

	err := app.Start()
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	defer func() { _ = app.Stop() }()

	fmt.Printf("Server: %s\n", repo.Server)
	fmt.Printf("Database: %s:%d\n", repo.Conn.Host, repo.Conn.Port)
	// Output:
	// Server: api.example.com
	// Database: db.example.com:5432
}
