package repositories

import (
	"encoding/json"
	"fmt"
	"math"
)

// Neo4j devuelve enteros como int64 y decimales como float64; una coordenada
// guardada como entero tiene que aceptarse igual.

func propInt64(props map[string]any, key string) (int64, error) {
	switch v := props[key].(type) {
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > 1<<53 {
			return 0, fmt.Errorf("property %q is not an integer: %v", key, v)
		}
		return int64(v), nil
	case nil:
		return 0, fmt.Errorf("missing property %q", key)
	default:
		return 0, fmt.Errorf("property %q has type %T", key, v)
	}
}

func propFloat64(props map[string]any, key string) (float64, error) {
	switch v := props[key].(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case nil:
		return 0, fmt.Errorf("missing property %q", key)
	default:
		return 0, fmt.Errorf("property %q has type %T", key, v)
	}
}

func propBool(props map[string]any, key string) bool {
	b, _ := props[key].(bool)
	return b
}

// propData decodes the optional JSON payload stored in the "data" property.
func propData(props map[string]any) (map[string]any, error) {
	raw, ok := props["data"].(string)
	if !ok || raw == "" {
		return nil, nil
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("property \"data\": %w", err)
	}
	return data, nil
}
