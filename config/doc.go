// Package config loads YAML configuration files into a flat, hash-addressed
// key/value store.
//
// Nested block mappings are flattened into slash-joined path keys. The file
//
//	server:
//	  host: api.example.com
//	  http:
//	    port: 8080
//
// yields the entries "/server/host" and "/server/http/port". Every value is
// copied into a string arena owned by the Config, and the reserved entry
// FilepathKey holds the path the file was loaded from.
//
// # Reads
//
// Optional entries are read with ReadOr and friends, which fall back to the
// given default. Required entries are read with Read, which reports a missing
// entry as *MissingKeyError; hosts that treat that as fatal use MustRead.
//
// # Lifecycle
//
// A Config is built by one Load call and is read-only afterwards, so it may be
// shared between goroutines. Teardown releases the entry store and the string
// arena together; it is idempotent and safe on a nil Config.
//
// # Limits
//
// Only scalar-valued block mappings are understood. Sequences, flow mappings,
// aliases and additional documents are skipped with a warning. A key repeated
// at the same level overwrites the earlier value. Paths longer than
// pathbuild.DefaultMaxPathLength bytes are truncated to that length, both when
// loading and when reading, unless WithMaxPathLength(0) disables the bound.
//
// # Example
//
//	cfg, err := config.Load("config.yaml")
//	if err != nil {
//	    return err
//	}
//	defer cfg.Teardown()
//
//	host := cfg.ReadOr("/server/host", "localhost")
package config
