package yaml

import (
	"errors"
	"fmt"
	"io"

	"github.com/0xalexb/hjarta-conf/config/token"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	yamltoken "github.com/goccy/go-yaml/token"
)

// Names of constructs reported through token.Other.
const (
	ConstructSequence    = "sequence"
	ConstructFlowMapping = "flow mapping"
	ConstructAnchor      = "anchor"
	ConstructAlias       = "alias"
	ConstructTag         = "tag"
	ConstructMergeKey    = "merge key"
	ConstructComplexKey  = "complex key"
	ConstructDocument    = "document"
)

// ErrRead is returned when the underlying reader fails.
var ErrRead = errors.New("reading yaml stream")

// Error describes malformed input. Line and Column are 1-based and zero when
// the parser did not report a position.
type Error struct {
	Line   int
	Column int
	Err    error
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("yaml: %v", e.Err)
	}

	return fmt.Sprintf("yaml %d:%d: %v", e.Line, e.Column, e.Err)
}

// Position returns the location of the error in the input.
func (e *Error) Position() (int, int) {
	return e.Line, e.Column
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Scanner implements token.Source over a YAML stream.
type Scanner struct {
	reader  io.Reader
	queue   []token.Token
	next    int
	started bool
	parsed  bool
	err     error
}

// NewScanner creates a Scanner reading from r. Nothing is read until the
// second Scan call, which reads r to the end and parses the whole stream;
// later calls replay the buffered tokens.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader:  r,
		queue:   nil,
		next:    0,
		started: false,
		parsed:  false,
		err:     nil,
	}
}

// Scan returns the next token. The first call always yields StreamStart; a
// malformed document is reported by the call after it. Once the stream is
// exhausted Scan keeps returning StreamEnd.
func (s *Scanner) Scan() (token.Token, error) {
	if !s.started {
		s.started = true

		return token.Token{Kind: token.StreamStart, Line: 1, Column: 1}, nil
	}

	if !s.parsed {
		s.parsed = true
		s.err = s.parse()
	}

	if s.err != nil {
		return token.Token{Kind: token.Other}, s.err
	}

	if s.next >= len(s.queue) {
		return token.Token{Kind: token.StreamEnd}, nil
	}

	tok := s.queue[s.next]
	s.next++

	return tok, nil
}

func (s *Scanner) parse() error {
	data, err := io.ReadAll(s.reader)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}

	// Repeated keys are passed through; the consumer decides which one wins.
	file, err := parser.ParseBytes(data, 0, parser.AllowDuplicateMapKey())
	if err != nil {
		return newError(err)
	}

	for i, doc := range file.Docs {
		if i > 0 {
			s.other(ConstructDocument, doc)

			continue
		}

		// A null body carries no key and cannot produce an entry.
		if _, isNull := doc.Body.(*ast.NullNode); doc.Body != nil && !isNull {
			s.node(doc.Body)
		}
	}

	return nil
}

func newError(err error) *Error {
	scanErr := &Error{Line: 0, Column: 0, Err: err}

	var positioned interface{ GetToken() *yamltoken.Token }
	if errors.As(err, &positioned) {
		if tok := positioned.GetToken(); tok != nil && tok.Position != nil {
			scanErr.Line = tok.Position.Line
			scanErr.Column = tok.Position.Column
		}
	}

	return scanErr
}

func (s *Scanner) node(n ast.Node) {
	// A key written with nothing after it has no value to store.
	if isImplicitNull(n) {
		return
	}

	switch v := n.(type) {
	case *ast.MappingNode:
		if v.IsFlowStyle {
			s.other(ConstructFlowMapping, v)

			return
		}

		s.push(token.BlockMappingStart, "", v)

		for _, value := range v.Values {
			s.entry(value)
		}

		s.push(token.BlockEnd, "", v)
	case *ast.MappingValueNode:
		// Some documents collapse a single-entry mapping into its only value node.
		s.push(token.BlockMappingStart, "", v)
		s.entry(v)
		s.push(token.BlockEnd, "", v)
	case *ast.SequenceNode:
		s.other(ConstructSequence, v)
	case *ast.AnchorNode:
		s.other(ConstructAnchor, v)

		if v.Value != nil {
			s.node(v.Value)
		}
	case *ast.TagNode:
		s.other(ConstructTag, v)

		if v.Value != nil {
			s.node(v.Value)
		}
	case *ast.AliasNode:
		s.other(ConstructAlias, v)
	case *ast.CommentGroupNode:
	default:
		text, ok := scalarText(n)
		if !ok {
			s.other(n.Type().String(), n)

			return
		}

		s.push(token.Scalar, text, n)
	}
}

func (s *Scanner) entry(mv *ast.MappingValueNode) {
	var key ast.Node = mv.Key

	switch key.(type) {
	case *ast.MergeKeyNode:
		s.other(ConstructMergeKey, key)

		return
	case *ast.MappingKeyNode:
		s.other(ConstructComplexKey, key)

		return
	}

	text, ok := scalarText(key)
	if !ok {
		s.other(ConstructComplexKey, key)

		return
	}

	s.push(token.Key, "", key)
	s.push(token.Scalar, text, key)
	s.push(token.Value, "", mv)

	if mv.Value != nil {
		s.node(mv.Value)
	}
}

func isImplicitNull(n ast.Node) bool {
	null, ok := n.(*ast.NullNode)

	return ok && null.Token != nil && null.Token.Type == yamltoken.ImplicitNullType
}

// scalarText returns the text a scalar node contributes: unquoted content for
// strings and block literals, source text for everything else.
func scalarText(n ast.Node) (string, bool) {
	switch v := n.(type) {
	case *ast.StringNode:
		return v.Value, true
	case *ast.LiteralNode:
		if v.Value == nil {
			return "", true
		}

		return v.Value.Value, true
	case *ast.NullNode, *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		tok := n.GetToken()
		if tok == nil {
			return "", true
		}

		return tok.Value, true
	default:
		return "", false
	}
}

func (s *Scanner) other(construct string, n ast.Node) {
	line, column := position(n)
	s.queue = append(s.queue, token.Token{
		Kind:      token.Other,
		Value:     "",
		Construct: construct,
		Line:      line,
		Column:    column,
	})
}

func (s *Scanner) push(kind token.Kind, value string, n ast.Node) {
	line, column := position(n)
	s.queue = append(s.queue, token.Token{
		Kind:      kind,
		Value:     value,
		Construct: "",
		Line:      line,
		Column:    column,
	})
}

func position(n ast.Node) (int, int) {
	if n == nil {
		return 0, 0
	}

	tok := n.GetToken()
	if tok == nil || tok.Position == nil {
		return 0, 0
	}

	return tok.Position.Line, tok.Position.Column
}

// Tokenize scans r to the end and returns every token up to and including
// StreamEnd.
func Tokenize(r io.Reader) ([]token.Token, error) {
	scanner := NewScanner(r)

	var out []token.Token

	for {
		tok, err := scanner.Scan()
		if err != nil {
			return out, err
		}

		out = append(out, tok)

		if tok.Kind == token.StreamEnd {
			return out, nil
		}
	}
}
