/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package value

import (
	"encoding/json"
	"math"
)

// Convert maps a semi-structured document into the typed value tree. The
// conversion has no failure mode: unknown shapes degrade to null, and
// out-of-range integers are clamped rather than rejected. Recursion depth
// is bounded by document depth; documents are tree-shaped.
func Convert(doc map[string]interface{}) Value {
	fields := make(map[string]Value, len(doc))
	for k, v := range doc {
		fields[k] = convert(v)
	}
	return Object(fields)
}

func convert(v interface{}) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(clampInt64(int64(t)))
	case int32:
		return Int(t)
	case int64:
		return Int(clampInt64(t))
	case uint64:
		return Int(clampUint64(t))
	case float32:
		return convertFloat(float64(t))
	case float64:
		return convertFloat(t)
	case json.Number:
		return convertNumber(t)
	case []interface{}:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = convert(item)
		}
		return List(items)
	case map[string]interface{}:
		return Convert(t)
	default:
		return Null()
	}
}

// convertFloat narrows integral floats into the 32-bit integer range and
// passes non-integral floats through unchanged.
func convertFloat(f float64) Value {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		if f > math.MaxInt32 {
			return Int(math.MaxInt32)
		}
		if f < math.MinInt32 {
			return Int(math.MinInt32)
		}
		return Int(int32(f))
	}
	return Float(f)
}

// convertNumber handles json.Number payloads from decoders configured with
// UseNumber.
func convertNumber(n json.Number) Value {
	if i, err := n.Int64(); err == nil {
		return Int(clampInt64(i))
	}
	if f, err := n.Float64(); err == nil {
		return convertFloat(f)
	}
	return Null()
}

func clampInt64(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

func clampUint64(v uint64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}
