package python

import (
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-charmgen/pkg/charm"
)

// templateFilters exposes the Python literal encoders to templates. Results
// are marked safe so pongo2 autoescaping leaves quotes untouched.
func templateFilters() map[string]any {
	return map[string]any{
		"pystr":  pongo2.FilterFunction(filterPyString),
		"pylist": pongo2.FilterFunction(filterPyList),
	}
}

func filterPyString(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	literal, err := charm.StringLiteral(in.String())
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:pystr", OrigError: err}
	}
	return pongo2.AsSafeValue(literal), nil
}

func filterPyList(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var items []string
	switch v := in.Interface().(type) {
	case nil:
	case []string:
		items = v
	case []any:
		items = make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &pongo2.Error{
					Sender:    "filter:pylist",
					OrigError: &charm.SerializationError{Field: "list", Index: i, Value: fmt.Sprint(item), Reason: "not a string"},
				}
			}
			items = append(items, s)
		}
	default:
		return nil, &pongo2.Error{Sender: "filter:pylist", OrigError: fmt.Errorf("unsupported list value %T", v)}
	}

	literal, err := charm.ListLiteral(items)
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:pylist", OrigError: err}
	}
	return pongo2.AsSafeValue(literal), nil
}
