package listing

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"

	"github.com/go-openapi/swag"
	"github.com/tidwall/gjson"
)

var ErrInvalidItemFilters = errors.New("invalid item filters")

// ItemFilter is one named filter, Value is a scalar or a slice of scalars.
type ItemFilter struct {
	Name  string
	Value any
}

// Param is a single request parameter.
type Param struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Params keeps parameters in the order they were built.
type Params []Param

// Values renders params for a query string.
func (p Params) Values() url.Values {
	v := make(url.Values, len(p))
	for _, kv := range p {
		v.Add(kv.Key, fmt.Sprint(kv.Value))
	}
	return v
}

// BuildItemFiltersForRequest flattens filters into the itemFilter(i).name /
// itemFilter(i).value / itemFilter(i).value(j) encoding of the Finding API.
// Empty values are skipped and do not take an index.
func BuildItemFiltersForRequest(filters []ItemFilter) Params {
	out := Params{}
	i := -1
	for _, f := range filters {
		if isEmpty(f.Value) {
			continue
		}

		i++
		out = append(out, Param{Key: fmt.Sprintf("itemFilter(%d).name", i), Value: f.Name})

		rv := reflect.ValueOf(f.Value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			out = append(out, Param{Key: fmt.Sprintf("itemFilter(%d).value", i), Value: f.Value})
			continue
		}
		for j := 0; j < rv.Len(); j++ {
			out = append(out, Param{Key: fmt.Sprintf("itemFilter(%d).value(%d)", i, j), Value: rv.Index(j).Interface()})
		}
	}
	return out
}

// isEmpty reports values a filter is dropped for: nil, false, zero numbers,
// "" and "0", empty lists.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok && s == "0" {
		return true
	}
	return swag.IsZero(v)
}

// ParseItemFilters reads a JSON object into filters keeping the key order of the document.
func ParseItemFilters(body []byte) ([]ItemFilter, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidItemFilters)
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: object expected", ErrInvalidItemFilters)
	}

	var out []ItemFilter
	pos := map[string]int{}
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		// a repeated key overrides the value and keeps the first position
		if i, ok := pos[name]; ok {
			out[i].Value = filterValue(value)
			return true
		}
		pos[name] = len(out)
		out = append(out, ItemFilter{Name: name, Value: filterValue(value)})
		return true
	})
	return out, nil
}

// filterValue turns arrays and objects into lists of their values in document order.
func filterValue(r gjson.Result) any {
	if !r.IsArray() && !r.IsObject() {
		return r.Value()
	}
	values := []any{}
	r.ForEach(func(_, el gjson.Result) bool {
		values = append(values, el.Value())
		return true
	})
	return values
}
