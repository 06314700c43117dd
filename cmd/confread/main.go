// confread loads a YAML configuration file and prints the values stored under
// the given paths, one per line.
//
//	confread -f app.yaml /server/host /server/http/port
//	confread -f app.yaml -d localhost /server/host
//	confread -f app.yaml --tokens
//
// A path with no entry is an error unless --default is given. The exit status
// is 0 on success, 1 when loading or reading fails and 2 on usage errors.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/config"
	filefetcher "github.com/0xalexb/hjarta-conf/config/fetcher/file"
	yamlscanner "github.com/0xalexb/hjarta-conf/config/scanner/yaml"
	"github.com/0xalexb/hjarta-conf/logging"

	"github.com/spf13/pflag"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type flags struct {
	file      string
	def       string
	logLevel  string
	logFormat string
	tokens    bool
	stats     bool
	version   bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts flags

	flagSet := pflag.NewFlagSet("confread", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.file, "file", "f", "", "path to the YAML configuration file")
	flagSet.StringVarP(&opts.def, "default", "d", "", "value printed for paths with no entry")
	flagSet.StringVarP(&opts.logLevel, "log-level", "l", "warn", "log level: debug, info, warn, error")
	flagSet.StringVar(&opts.logFormat, "log-format", logging.FormatText, "log format: json or text")
	flagSet.BoolVar(&opts.tokens, "tokens", false, "print the token stream instead of values")
	flagSet.BoolVar(&opts.stats, "stats", false, "print entry and arena statistics after the values")
	flagSet.BoolVar(&opts.version, "version", false, "print the version and exit")

	err := flagSet.Parse(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	if opts.version {
		fmt.Fprintf(stdout, "confread %s (%s)\n", conf.Version, conf.CompiledAt)

		return exitOK
	}

	if opts.file == "" {
		fmt.Fprintln(stderr, "error: --file is required")
		flagSet.PrintDefaults()

		return exitUsage
	}

	if opts.tokens {
		return printTokens(opts.file, stdout, stderr)
	}

	paths := flagSet.Args()
	if len(paths) == 0 && !opts.stats {
		fmt.Fprintln(stderr, "error: at least one path is required")

		return exitUsage
	}

	logger := logging.NewLogger(logging.LoggerConfig{Level: opts.logLevel, Format: opts.logFormat}, stderr)

	cfg, err := config.Load(opts.file, config.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)

		return exitFail
	}
	defer cfg.Teardown()

	hasDefault := flagSet.Changed("default")

	for _, path := range paths {
		value, err := cfg.Read(path)
		if err != nil {
			if !hasDefault || !errors.Is(err, config.ErrMissingKey) {
				fmt.Fprintf(stderr, "error: %v\n", err)

				return exitFail
			}

			value = opts.def
		}

		fmt.Fprintln(stdout, value)
	}

	if opts.stats {
		stats := cfg.Stats()
		fmt.Fprintf(stdout, "entries=%d blocks=%d bytes=%d\n", stats.Entries, stats.CacheBlocks, stats.CacheBytes)
	}

	return exitOK
}

func printTokens(fpath string, stdout, stderr io.Writer) int {
	file, err := filefetcher.Open(fpath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)

		return exitFail
	}
	defer file.Close() //nolint:errcheck // read-only

	tokens, err := yamlscanner.Tokenize(file)
	for _, tok := range tokens {
		fmt.Fprintln(stdout, tok)
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)

		return exitFail
	}

	return exitOK
}
