package conf_test

import (
	"testing"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestWithLogLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		level    string
		expected string
	}{
		{
			name:     "debug level",
			level:    "debug",
			expected: "debug",
		},
		{
			name:     "error level",
			level:    "error",
			expected: "error",
		},
		{
			name:     "empty level",
			level:    "",
			expected: "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var opts conf.Options

			conf.WithLogLevel(testCase.level)(&opts)

			require.Equal(t, testCase.expected, opts.LogLevel)
		})
	}
}

func TestWithLogFormat(t *testing.T) {
	t.Parallel()

	var opts conf.Options

	conf.WithLogFormat("text")(&opts)

	require.Equal(t, "text", opts.LogFormat)
}

func TestWithModules(t *testing.T) {
	t.Parallel()

	var opts conf.Options

	conf.WithModules(fx.Options())(&opts)
	conf.WithModules(fx.Options(), fx.Options())(&opts)

	require.Len(t, opts.Modules, 3)
}

func TestWithConfigFile(t *testing.T) {
	t.Parallel()

	var opts conf.Options

	conf.WithConfigFile("first.yaml", config.WithBlockSize(128))(&opts)
	conf.WithConfigFile("second.yaml", config.WithMaxPathLength(0))(&opts)

	require.Equal(t, "second.yaml", opts.ConfigFile)
	require.Len(t, opts.LoadOptions, 2)
}
