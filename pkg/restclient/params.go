package restclient

import (
	"fmt"
	"net/url"
	"reflect"
)

// Params are query parameters. Nil values (including nil pointers) are omitted,
// everything else is stringified.
type Params map[string]any

// Encode renders the params as a query string sorted by key.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	values := url.Values{}
	for k, v := range p {
		s, ok := stringify(v)
		if !ok {
			continue
		}
		values.Set(k, s)
	}
	return values.Encode()
}

func stringify(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	return fmt.Sprint(rv.Interface()), true
}
