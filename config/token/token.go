// Package token defines the token stream consumed by the configuration loader.
//
// A Source emits tokens in document order. Key and Value tokens are markers that
// announce which Scalar comes next; they carry no text themselves.
package token

import "fmt"

// Kind identifies a token in the stream.
type Kind int

// Token kinds understood by the loader. Everything a Source cannot map onto one
// of the structural kinds is reported as Other.
const (
	StreamStart Kind = iota
	Key
	Value
	BlockMappingStart
	BlockEnd
	Scalar
	StreamEnd
	Other
)

var kindNames = [...]string{
	StreamStart:       "stream-start",
	Key:               "key",
	Value:             "value",
	BlockMappingStart: "block-mapping-start",
	BlockEnd:          "block-end",
	Scalar:            "scalar",
	StreamEnd:         "stream-end",
	Other:             "other",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// Token is a single item of the stream.
type Token struct {
	Kind Kind
	// Value holds the text of a Scalar token.
	Value string
	// Construct names the unsupported construct behind an Other token.
	Construct string
	Line      int
	Column    int
}

func (t Token) String() string {
	switch t.Kind {
	case Scalar:
		return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Value, t.Line, t.Column)
	case Other:
		return fmt.Sprintf("%s(%s)@%d:%d", t.Kind, t.Construct, t.Line, t.Column)
	default:
		return fmt.Sprintf("%s@%d:%d", t.Kind, t.Line, t.Column)
	}
}

// Source produces tokens one at a time. A non-nil error means the input is
// malformed; the stream must not be scanned further after an error.
type Source interface {
	Scan() (Token, error)
}
