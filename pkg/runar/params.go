package runar

import (
	"fmt"

	"github.com/goccy/go-json"
)

// ExtractParameter looks up name in params and converts it to T. A missing
// parameter yields a *MissingParameterError.
func ExtractParameter[T any](params Params, name string) (T, error) {
	var zero T

	raw, ok := params[name]
	if !ok {
		return zero, &MissingParameterError{Name: name}
	}

	if v, ok := raw.(T); ok {
		return v, nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return zero, fmt.Errorf("parameter %q: %w", name, err)
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, fmt.Errorf("parameter %q: cannot convert %T to %T: %w", name, raw, zero, err)
	}
	return out, nil
}
