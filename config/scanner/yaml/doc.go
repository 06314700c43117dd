// Package yaml provides a token.Source for YAML documents.
//
// The scanner reads the whole input, parses it with github.com/goccy/go-yaml
// and replays the resulting tree as a flat, libyaml-style token stream:
//
//	stream-start
//	block-mapping-start
//	key  scalar("server")  value
//	block-mapping-start
//	key  scalar("port")  value  scalar("8080")
//	block-end
//	block-end
//	stream-end
//
// Only nested block mappings with scalar leaves are translated. Sequences, flow
// mappings, aliases, merge keys, complex keys, and every document after the
// first become a single token.Other and their content is skipped. Anchors and
// tags become a token.Other followed by the value they decorate.
//
// A key repeated within one mapping is emitted every time it appears. A key
// with nothing after it is emitted without a value scalar, while an explicit
// null such as "~" is a scalar holding its source text.
package yaml
