package dispatch

import (
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/multierr"

	"disqus-client/models"
)

// Params is a set of request parameters. Values are stringified on the wire.
type Params map[string]interface{}

// Merge layers params left to right; later layers win on overlapping keys.
func Merge(layers ...Params) Params {
	merged := Params{}
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

// Strings renders every value as a string the way a form field would carry
// it. Values with no string form, such as maps and structs, are left out and
// reported in the error.
func (p Params) Strings() (map[string]string, error) {
	out := make(map[string]string, len(p))
	var err error
	for _, k := range p.Keys() {
		s, serr := stringify(p[k])
		if serr != nil {
			err = multierr.Append(err, errors.Wrapf(serr, "parameter %s", k))
			continue
		}
		out[k] = s
	}
	return out, err
}

// Keys returns the parameter names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func stringify(v interface{}) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case time.Time:
		return models.FormatDate(t), nil
	case models.Date:
		return models.FormatDate(t.Time), nil
	case []byte:
		return string(t), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, rv.Len())
		for i := range parts {
			s, err := stringify(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), nil
	}
	return cast.ToStringE(v)
}
