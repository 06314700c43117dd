package config

import (
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/0xalexb/hjarta-conf/config/cache"
	filefetcher "github.com/0xalexb/hjarta-conf/config/fetcher/file"
	"github.com/0xalexb/hjarta-conf/config/pathbuild"
	yamlscanner "github.com/0xalexb/hjarta-conf/config/scanner/yaml"
	"github.com/0xalexb/hjarta-conf/config/store"
	"github.com/0xalexb/hjarta-conf/config/token"
)

// FilepathKey is the reserved entry holding the path the Config was loaded
// from. Document paths always start with a slash, so it never collides with one.
const FilepathKey = "filepath"

// Stats describes the resources held by a Config.
type Stats struct {
	Entries     int
	CacheBlocks int
	CacheBytes  int
}

// Config is a loaded, read-only configuration. It is safe for concurrent reads;
// Teardown must not race with them.
type Config struct {
	filepath      string
	strings       *cache.Cache
	entries       *store.Store
	maxPathLength int
}

// Load reads the YAML file at fpath and flattens it into a Config.
//
// A file that cannot be opened yields a *FileOpenError and nothing is allocated.
// Malformed input yields a *ScanError after everything allocated so far has
// been released. The returned Config must be released with Teardown.
func Load(fpath string, opts ...Option) (*Config, error) {
	input, err := filefetcher.Open(fpath)
	if err != nil {
		return nil, &FileOpenError{Path: fpath, Err: err}
	}

	options := newOptions(opts)

	cfg, err := load(fpath, yamlscanner.NewScanner(input), options)

	closeErr := input.Close()
	if closeErr != nil {
		options.Logger.Warn("failed to close config file", slog.String("file", fpath), slog.Any("error", closeErr))
	}

	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadReader loads a YAML document from r. name takes the place of the file
// path in diagnostics and in the FilepathKey entry.
func LoadReader(name string, r io.Reader, opts ...Option) (*Config, error) {
	return load(name, yamlscanner.NewScanner(r), newOptions(opts))
}

// LoadSource drives an arbitrary token source to completion.
func LoadSource(name string, src token.Source, opts ...Option) (*Config, error) {
	return load(name, src, newOptions(opts))
}

func load(name string, src token.Source, options Options) (*Config, error) {
	logger := options.Logger

	cfg := &Config{
		filepath:      name,
		strings:       cache.New(cache.WithBlockSize(options.BlockSize), cache.WithTracker(options.Tracker)),
		entries:       store.New(options.Tracker),
		maxPathLength: options.MaxPathLength,
	}

	cfg.entries.Put(store.Entry{
		Key:   store.Hash(FilepathKey),
		Value: cfg.strings.Duplicate(name),
	})

	builder := pathbuild.New(cfg.strings, cfg.entries,
		pathbuild.WithMaxPathLength(options.MaxPathLength),
		pathbuild.WithWarn(func(tok token.Token) {
			logger.Warn("unsupported yaml token skipped",
				slog.String("file", name),
				slog.Int("line", tok.Line),
				slog.Int("column", tok.Column),
				slog.String("kind", tok.Kind.String()),
				slog.String("construct", tok.Construct),
			)
		}),
		pathbuild.WithReplace(func(path string) {
			logger.Debug("duplicate config entry overwritten", slog.String("file", name), slog.String("path", path))
		}),
	)

	for {
		tok, err := src.Scan()
		if err != nil {
			cfg.Teardown()

			return nil, newScanError(name, err)
		}

		if builder.Consume(tok) {
			break
		}
	}

	logger.Debug("config loaded",
		slog.String("file", name),
		slog.Int("entries", cfg.entries.Len()),
		slog.Int("values", builder.Emitted()),
	)

	return cfg, nil
}

// Teardown releases the entry store and the string cache together. It is a
// no-op on a nil or already released Config.
func (c *Config) Teardown() {
	if c == nil || c.entries == nil {
		return
	}

	c.entries.Release()
	c.strings.Release()
	c.entries = nil
	c.strings = nil
}

// Released reports whether the Config has been torn down.
func (c *Config) Released() bool {
	return c == nil || c.entries == nil
}

// Filepath returns the path the Config was loaded from.
func (c *Config) Filepath() string {
	if c == nil {
		return ""
	}

	return c.filepath
}

// Len returns the number of entries, the reserved FilepathKey entry included.
func (c *Config) Len() int {
	if c.Released() {
		return 0
	}

	return c.entries.Len()
}

// Stats reports the resources held by the Config.
func (c *Config) Stats() Stats {
	if c.Released() {
		return Stats{}
	}

	strings := c.strings.Stats()

	return Stats{
		Entries:     c.entries.Len(),
		CacheBlocks: strings.Blocks,
		CacheBytes:  strings.Bytes,
	}
}

// Lookup returns the value stored under path.
func (c *Config) Lookup(path string) (string, bool) {
	if c.Released() {
		return "", false
	}

	handle, ok := c.entries.Get(store.Hash(pathbuild.Canonical(path, c.maxPathLength)))
	if !ok {
		return "", false
	}

	return c.strings.String(handle), true
}

// Read returns the value stored under path. An absent entry is a required
// entry that the file failed to provide and is reported as *MissingKeyError.
func (c *Config) Read(path string) (string, error) {
	if c.Released() {
		return "", ErrReleased
	}

	value, ok := c.Lookup(path)
	if !ok {
		return "", &MissingKeyError{Path: path}
	}

	return value, nil
}

// ReadOr returns the value stored under path, or def when there is none.
func (c *Config) ReadOr(path, def string) string {
	value, ok := c.Lookup(path)
	if !ok {
		return def
	}

	return value
}

// MustRead is like Read but panics when the entry is missing. It is meant for
// hosts that treat a missing required entry as a fatal programming error.
func (c *Config) MustRead(path string) string {
	value, err := c.Read(path)
	if err != nil {
		panic(err)
	}

	return value
}

// ReadInt reads a required integer. Decimal, 0x, 0o and 0b forms are accepted.
func (c *Config) ReadInt(path string) (int, error) {
	return readAs(c, path, "int", parseInt)
}

// ReadIntOr reads an optional integer.
func (c *Config) ReadIntOr(path string, def int) (int, error) {
	return readAsOr(c, path, def, "int", parseInt)
}

// ReadBool reads a required boolean in any form strconv.ParseBool accepts.
func (c *Config) ReadBool(path string) (bool, error) {
	return readAs(c, path, "bool", strconv.ParseBool)
}

// ReadBoolOr reads an optional boolean.
func (c *Config) ReadBoolOr(path string, def bool) (bool, error) {
	return readAsOr(c, path, def, "bool", strconv.ParseBool)
}

// ReadFloat reads a required floating point number.
func (c *Config) ReadFloat(path string) (float64, error) {
	return readAs(c, path, "float", parseFloat)
}

// ReadFloatOr reads an optional floating point number.
func (c *Config) ReadFloatOr(path string, def float64) (float64, error) {
	return readAsOr(c, path, def, "float", parseFloat)
}

// ReadDuration reads a required duration such as "1m30s".
func (c *Config) ReadDuration(path string) (time.Duration, error) {
	return readAs(c, path, "duration", time.ParseDuration)
}

// ReadDurationOr reads an optional duration.
func (c *Config) ReadDurationOr(path string, def time.Duration) (time.Duration, error) {
	return readAsOr(c, path, def, "duration", time.ParseDuration)
}

func parseInt(s string) (int, error) {
	n, err := strconv.ParseInt(s, 0, strconv.IntSize)

	return int(n), err
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func readAs[T any](c *Config, path, typeName string, parse func(string) (T, error)) (T, error) {
	var zero T

	raw, err := c.Read(path)
	if err != nil {
		return zero, err
	}

	value, err := parse(raw)
	if err != nil {
		return zero, &ValueError{Path: path, Value: raw, Type: typeName, Err: err}
	}

	return value, nil
}

func readAsOr[T any](c *Config, path string, def T, typeName string, parse func(string) (T, error)) (T, error) {
	raw, ok := c.Lookup(path)
	if !ok {
		return def, nil
	}

	value, err := parse(raw)
	if err != nil {
		return def, &ValueError{Path: path, Value: raw, Type: typeName, Err: err}
	}

	return value, nil
}
