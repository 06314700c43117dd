package config_test

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/0xalexb/hjarta-conf/config"
)

func ExampleLoadReader() {
	cfg, err := config.LoadReader("app.yaml", strings.NewReader(`
server:
  host: api.example.com
  http:
    port: 8080
`))
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}
	defer cfg.Teardown()

	fmt.Println(cfg.MustRead("/server/host"))
	fmt.Println(cfg.MustRead("/server/http/port"))
	fmt.Println(cfg.ReadOr("/server/http/tls", "off"))
	fmt.Println(cfg.MustRead(config.FilepathKey))
	// Output:
	// api.example.com
	// 8080
	// off
	// app.yaml
}

func ExampleConfig_Read() {
	cfg, err := config.LoadReader("app.yaml", strings.NewReader("name: app\n"))
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}
	defer cfg.Teardown()

	_, err = cfg.Read("/database/host")
	if errors.Is(err, config.ErrMissingKey) {
		fmt.Println(err)
	}
	// Output: unknown configuration entry "/database/host"
}

// ListenerConfig is bound from the /listener section.
type ListenerConfig struct {
	Address string        `conf:"address"`
	Timeout time.Duration `conf:"timeout" default:"10s"`
}

// Validate validates the configuration.
func (c *ListenerConfig) Validate() error {
	if c.Address == "" {
		return errors.New("address must not be empty")
	}

	return nil
}

func ExampleProvider() {
	cfg, err := config.LoadReader("app.yaml", strings.NewReader("listener:\n  address: \":9090\"\n"))
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}
	defer cfg.Teardown()

	provider := config.Provider(&ListenerConfig{}, "/listener")

	result, err := provider(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Address: %s, Timeout: %s\n", result.Address, result.Timeout)
	// Output: Address: :9090, Timeout: 10s
}
