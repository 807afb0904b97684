package vidar

import "reflect"

// valueKind partitions runtime values into the three categories that
// matter for interpolation: numbers blend arithmetically, structured
// values blend recursively, everything else steps.
type valueKind int

const (
	kindNumber valueKind = iota
	kindStructured
	kindOther
)

// kindOf classifies a value. Nil is kindOther.
func kindOf(v any) valueKind {
	if v == nil {
		return kindOther
	}
	switch v.(type) {
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return kindNumber
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return kindStructured
	}
	return kindOther
}

// toFloat widens any supported numeric value to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
