// Package pathbuild flattens a token stream of nested mappings into path-keyed
// store entries.
//
// Every leaf value is addressed by the slash-joined names of the mappings that
// enclose it, followed by its own key: the document
//
//	server:
//	  http:
//	    port: 8080
//
// yields the single entry "/server/http/port" = "8080".
package pathbuild

import (
	"github.com/0xalexb/hjarta-conf/config/cache"
	"github.com/0xalexb/hjarta-conf/config/store"
	"github.com/0xalexb/hjarta-conf/config/token"
)

// DefaultMaxPathLength is the default bound on a full path in bytes. Longer paths
// are truncated to their first DefaultMaxPathLength bytes before hashing.
const DefaultMaxPathLength = 256

// Separator joins path segments.
const Separator = '/'

type state int

const (
	expectKey state = iota
	expectValue
)

// Canonical applies the path length bound to path. A non-positive maxLen
// disables truncation.
func Canonical(path string, maxLen int) string {
	if maxLen > 0 && len(path) > maxLen {
		return path[:maxLen]
	}

	return path
}

// Option configures a Builder.
type Option func(*Builder)

// WithMaxPathLength sets the full path bound in bytes. Zero disables truncation.
func WithMaxPathLength(n int) Option {
	return func(b *Builder) {
		if n >= 0 {
			b.maxLen = n
		}
	}
}

// WithWarn sets the callback invoked for every token the builder cannot handle.
func WithWarn(warn func(token.Token)) Option {
	return func(b *Builder) {
		if warn != nil {
			b.warn = warn
		}
	}
}

// WithReplace sets the callback invoked when an entry overwrites an earlier one
// with the same path hash.
func WithReplace(replace func(path string)) Option {
	return func(b *Builder) {
		if replace != nil {
			b.replace = replace
		}
	}
}

// Builder is the streaming state machine. A Builder serves one load and is not
// safe for concurrent use.
type Builder struct {
	strings *cache.Cache
	entries *store.Store

	state   state
	pending string
	// segments is the active path prefix; pushed records, per open mapping,
	// whether its start added a segment.
	segments []string
	pushed   []bool
	scratch  []byte

	maxLen  int
	warn    func(token.Token)
	replace func(string)
	emitted int
}

// New creates a Builder writing leaf values into strings and entries.
func New(strings *cache.Cache, entries *store.Store, opts ...Option) *Builder {
	b := &Builder{
		strings:  strings,
		entries:  entries,
		state:    expectKey,
		pending:  "",
		segments: nil,
		pushed:   nil,
		scratch:  make([]byte, 0, DefaultMaxPathLength),
		maxLen:   DefaultMaxPathLength,
		warn:     func(token.Token) {},
		replace:  func(string) {},
		emitted:  0,
	}

	for _, apply := range opts {
		apply(b)
	}

	return b
}

// Consume advances the state machine by one token. It returns true once the
// stream has ended.
func (b *Builder) Consume(tok token.Token) bool {
	switch tok.Kind {
	case token.StreamStart:
	case token.Key:
		b.state = expectKey
	case token.Value:
		b.state = expectValue
	case token.BlockMappingStart:
		b.open()
	case token.BlockEnd:
		b.close()
	case token.Scalar:
		if b.state == expectKey {
			b.pending = tok.Value
		} else {
			b.emit(tok.Value)
		}
	case token.StreamEnd:
		return true
	default:
		b.warn(tok)
	}

	return false
}

func (b *Builder) open() {
	if b.pending == "" {
		b.pushed = append(b.pushed, false)

		return
	}

	b.segments = append(b.segments, b.pending)
	b.pushed = append(b.pushed, true)
	b.pending = ""
	b.state = expectKey
}

func (b *Builder) close() {
	if len(b.pushed) == 0 {
		return
	}

	last := len(b.pushed) - 1
	if b.pushed[last] {
		b.segments = b.segments[:len(b.segments)-1]
	}

	b.pushed = b.pushed[:last]
}

func (b *Builder) emit(value string) {
	b.scratch = b.join(b.scratch[:0])
	if b.maxLen > 0 && len(b.scratch) > b.maxLen {
		b.scratch = b.scratch[:b.maxLen]
	}

	replaced := b.entries.Put(store.Entry{
		Key:   store.HashBytes(b.scratch),
		Value: b.strings.Duplicate(value),
	})
	if replaced {
		b.replace(string(b.scratch))
	}

	b.emitted++
}

func (b *Builder) join(dst []byte) []byte {
	for _, segment := range b.segments {
		dst = append(dst, Separator)
		dst = append(dst, segment...)
	}

	dst = append(dst, Separator)

	return append(dst, b.pending...)
}

// Prefix returns the path of the innermost open mapping.
func (b *Builder) Prefix() string {
	dst := make([]byte, 0, len(b.scratch))
	for _, segment := range b.segments {
		dst = append(dst, Separator)
		dst = append(dst, segment...)
	}

	return string(dst)
}

// Depth returns the number of open mappings.
func (b *Builder) Depth() int {
	return len(b.pushed)
}

// Emitted returns how many leaf values were written, overwrites included.
func (b *Builder) Emitted() int {
	return b.emitted
}
