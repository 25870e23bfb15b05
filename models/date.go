package models

import (
	"encoding/json"
	"time"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
	"github.com/pkg/errors"
)

// DateLayout is the API's wire format for timestamps, always in UTC.
const DateLayout = "2006-01-02T15:04"

var dateLayouts = []string{DateLayout, "2006-01-02T15:04:05", time.RFC3339}

// ParseDate parses a created_at style value. Values without a zone are UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognized date %q", s)
}

// FormatDate renders t in the wire format after converting it to UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Date is a created_at field. A value that is not a date string in a known
// layout is kept verbatim in Raw and written back unchanged.
type Date struct {
	time.Time
	Raw json.RawMessage
}

// DateOf wraps t, dropping sub-minute precision the wire format cannot carry.
func DateOf(t time.Time) Date {
	return Date{Time: t.UTC().Truncate(time.Minute)}
}

func (d Date) IsDefined() bool {
	return !d.Time.IsZero() || len(d.Raw) > 0
}

func (d *Date) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	raw := in.Raw()
	if !in.Ok() {
		return
	}
	*d = Date{}
	if len(raw) > 0 && raw[0] == '"' {
		l := jlexer.Lexer{Data: raw}
		if t, err := ParseDate(l.String()); err == nil && l.Error() == nil {
			d.Time = t
		}
	}
	if d.Time.IsZero() {
		d.Raw = append(json.RawMessage(nil), raw...)
	}
	if isTopLevel {
		in.Consumed()
	}
}

func (d Date) MarshalEasyJSON(out *jwriter.Writer) {
	switch {
	case len(d.Raw) > 0:
		out.Raw(d.Raw, nil)
	case d.Time.IsZero():
		out.RawString("null")
	default:
		out.String(FormatDate(d.Time))
	}
}

func (d *Date) UnmarshalJSON(data []byte) error { return easyjson.Unmarshal(data, d) }
func (d Date) MarshalJSON() ([]byte, error)     { return easyjson.Marshal(d) }
