package codec

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Normalize converts a decoded tree into the canonical passthrough form:
// numbers become float64, maps get string keys and empty arrays stay non-nil.
// Integers that float64 cannot hold exactly stay json.Number with their
// decimal literal.
// It accepts trees from the token engine (json.Number) as well as YAML
// decoders (int, map[any]any, time.Time).
func Normalize(v any) any {
	switch t := v.(type) {
	case nil, string, bool, float64:
		return v
	case json.Number:
		if i, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return intNumber(i)
		}
		if u, err := strconv.ParseUint(t.String(), 10, 64); err == nil {
			return uintNumber(u)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case int:
		return intNumber(int64(t))
	case int64:
		return intNumber(t)
	case uint64:
		return uintNumber(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = Normalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = Normalize(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = Normalize(t[i])
		}
		return out
	case time.Time:
		return t.Format(time.RFC3339Nano)
	default:
		if f, ok := toFloat(v); ok {
			return f
		}
		return v
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	}
	return 0, false
}

// intNumber returns i as float64, or as json.Number when float64 would
// round it.
func intNumber(i int64) any {
	if f := float64(i); f >= -(1<<63) && f < 1<<63 && int64(f) == i {
		return f
	}
	return json.Number(strconv.FormatInt(i, 10))
}

func uintNumber(u uint64) any {
	if f := float64(u); f < 1<<64 && uint64(f) == u {
		return f
	}
	return json.Number(strconv.FormatUint(u, 10))
}
