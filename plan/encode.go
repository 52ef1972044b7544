package plan

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Encode converts v into a JSON-serializable tree in the vendor's wire
// representation. Timestamps become minute-resolution strings, decimals
// become floating-point numbers, and entities become their Wire form,
// recursively. Encode is pure: it never mutates its input.
func Encode(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Timestamp:
		return x.Format(Layout), nil
	case decimal.Decimal:
		return x.InexactFloat64(), nil
	case Entity:
		w, err := x.Wire()
		if err != nil {
			return nil, err
		}
		return Encode(w)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, elem := range x {
			enc, err := Encode(elem)
			if err != nil {
				return nil, err
			}
			out[k] = enc
		}
		return out, nil
	case []any:
		out := make([]any, 0, len(x))
		for _, elem := range x {
			enc, err := Encode(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, enc)
		}
		return out, nil
	case []string, []float64, [][]float64:
		return x, nil
	case string, bool, int, int64, float64:
		return x, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotEncodable, v)
	}
}

// Marshal encodes v and serializes it to JSON text.
func Marshal(v any) ([]byte, error) {
	tree, err := Encode(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}
