package models

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
	"github.com/pkg/errors"
)

// Records get their codecs from easyjson (see the *_easyjson.go files). The
// types below are the field types those codecs delegate to.

type codec interface {
	easyjson.Marshaler
	easyjson.Unmarshaler
}

var (
	_ codec = (*Forums)(nil)
	_ codec = (*Categories)(nil)
	_ codec = (*Threads)(nil)
	_ codec = (*Posts)(nil)
	_ codec = (*NumPosts)(nil)
	_ codec = (*Response)(nil)
	_ codec = (*Text)(nil)
	_ codec = (*ID)(nil)
	_ codec = (*Code)(nil)
	_ codec = (*Date)(nil)

	_ easyjson.Optional            = Date{}
	_ easyjson.UnknownsUnmarshaler = (*Extra)(nil)
	_ easyjson.UnknownsMarshaler   = Extra(nil)
)

// Shape decodes a raw payload into the record type T.
func Shape[T any, PT interface {
	*T
	easyjson.Unmarshaler
}](raw []byte) (T, error) {
	var out T
	if err := easyjson.Unmarshal(raw, PT(&out)); err != nil {
		return out, errors.Wrapf(err, "shape %T", out)
	}
	return out, nil
}

// ID is an opaque identifier. The API sends ids as numbers or strings.
type ID string

func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalEasyJSON(in *jlexer.Lexer) { *id = ID(in.JsonNumber()) }
func (id ID) MarshalEasyJSON(out *jwriter.Writer)  { out.String(string(id)) }

func (id *ID) UnmarshalJSON(data []byte) error { return easyjson.Unmarshal(data, id) }
func (id ID) MarshalJSON() ([]byte, error)     { return easyjson.Marshal(id) }

func (c *Code) UnmarshalEasyJSON(in *jlexer.Lexer) { *c = Code(in.JsonNumber()) }
func (c Code) MarshalEasyJSON(out *jwriter.Writer)  { out.String(string(c)) }

func (c *Code) UnmarshalJSON(data []byte) error { return easyjson.Unmarshal(data, c) }
func (c Code) MarshalJSON() ([]byte, error)     { return easyjson.Marshal(c) }

// Extra holds the members of a record that its type does not declare, so
// that shaping never drops a field. Encoding writes them back in key order.
type Extra map[string]json.RawMessage

func (e *Extra) UnmarshalUnknown(in *jlexer.Lexer, key string) {
	raw := in.Raw()
	if !in.Ok() {
		return
	}
	if *e == nil {
		*e = make(Extra)
	}
	(*e)[strings.Clone(key)] = append(json.RawMessage(nil), raw...)
}

func (e Extra) MarshalUnknowns(out *jwriter.Writer, first bool) {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if first {
			first = false
		} else {
			out.RawByte(',')
		}
		out.String(k)
		out.RawByte(':')
		out.Raw(e[k], nil)
	}
}

// Text is a bare string payload, such as a forum API key.
type Text string

func (v Text) MarshalEasyJSON(w *jwriter.Writer) { w.String(string(v)) }
func (v Text) MarshalJSON() ([]byte, error)      { return easyjson.Marshal(v) }

func (v *Text) UnmarshalEasyJSON(l *jlexer.Lexer) {
	isTopLevel := l.IsStart()
	*v = Text(l.String())
	if isTopLevel {
		l.Consumed()
	}
}
func (v *Text) UnmarshalJSON(data []byte) error { return easyjson.Unmarshal(data, v) }
