package runar

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// Value is a wire value: nil, bool, int64, uint64, float64, string, []any or
// map[string]any. Integral numbers keep their integer type so large ids do
// not lose precision.
type Value = any

// Params is the parameter bag handed to every action
type Params map[string]any

// Get returns the named parameter and whether it was present
func (p Params) Get(name string) (any, bool) {
	v, ok := p[name]
	return v, ok
}

// Valuer is implemented by types that convert themselves to a wire value
type Valuer interface {
	RunarValue() (Value, error)
}

// ToValue converts v into a wire value. Valuer implementations are used as-is,
// scalars pass through and everything else goes through its JSON encoding.
func ToValue(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Valuer:
		return x.RunarValue()
	case bool, string, float64, int64, uint64:
		return x, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("convert %T to value: %w", v, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var out Value
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("convert %T to value: %w", v, err)
	}
	return normalizeNumbers(out), nil
}

// normalizeNumbers replaces every json.Number in v with int64, uint64 or
// float64, whichever represents it exactly
func normalizeNumbers(v Value) Value {
	switch x := v.(type) {
	case json.Number:
		return numberValue(x)
	case []any:
		for i := range x {
			x[i] = normalizeNumbers(x[i])
		}
		return x
	case map[string]any:
		for k := range x {
			x[k] = normalizeNumbers(x[k])
		}
		return x
	default:
		return v
	}
}

func numberValue(n json.Number) Value {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u
	}
	// out-of-range values come back as ±Inf
	f, _ := strconv.ParseFloat(n.String(), 64)
	return f
}
