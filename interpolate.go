package vidar

import (
	"math"
	"reflect"
)

// Interpolator blends two keyframe values at progress t in [0, 1].
// keys optionally names the fields to blend when the operands are
// structured values that do not enumerate their own keys (structs).
//
// A KeyframeSet may carry any custom Interpolator; the resolver is
// agnostic to which one is used.
type Interpolator func(a, b any, t float64, keys []string) (any, error)

// Linear blends numbers as (1-t)*a + t*b and recurses over structured
// values. Operands of any other category are returned as a unmodified.
func Linear(a, b any, t float64, keys []string) (any, error) {
	return blend(a, b, keys, func(x, y float64) float64 {
		return (1-t)*x + t*y
	})
}

// Cosine blends numbers with a half-cosine weight, easing in and out of
// the bounding keyframes. Structural handling is identical to Linear.
func Cosine(a, b any, t float64, keys []string) (any, error) {
	w := math.Cos(math.Pi / 2 * t)
	return blend(a, b, keys, func(x, y float64) float64 {
		return w*x + (1-w)*y
	})
}

// blend dispatches on the operands' value category. mix combines two
// numbers; structured values recurse field by field.
func blend(a, b any, keys []string, mix func(x, y float64) float64) (any, error) {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		return nil, &TypeMismatchError{A: a, B: b}
	}
	switch ka {
	case kindNumber:
		x, _ := toFloat(a)
		y, _ := toFloat(b)
		return mix(x, y), nil
	case kindStructured:
		return blendStructured(a, b, keys, mix)
	default:
		// Flat fallback. The resolver short-circuits before reaching
		// here, but a custom caller may not.
		return a, nil
	}
}

// blendStructured builds a new structured value shaped like a, blending
// only keys present on both operands. Keys present on just one side are
// dropped from the result. Nested values recurse without the keys list;
// it applies to the top-level shape only.
func blendStructured(a, b any, keys []string, mix func(x, y float64) float64) (any, error) {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok {
			return nil, &StructuralMismatchError{A: a, B: b}
		}
		names := make([]string, 0, len(av))
		for k := range av {
			names = append(names, k)
		}
		if len(names) == 0 {
			names = keys
		}
		out := make(map[string]any, len(names))
		for _, k := range names {
			x, okA := av[k]
			y, okB := bv[k]
			if !okA || !okB {
				continue
			}
			v, err := blend(x, y, nil, mix)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil

	case []any:
		bv, ok := b.([]any)
		if !ok {
			return nil, &StructuralMismatchError{A: a, B: b}
		}
		n := len(av)
		if len(bv) < n {
			n = len(bv)
		}
		out := make([]any, n)
		for i := 0; i < n; i++ {
			v, err := blend(av[i], bv[i], nil, mix)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	// Structs: same concrete type required, fields named by keys (or all
	// exported fields when keys is empty) blended into a fresh value.
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta.Kind() != reflect.Struct {
		return nil, &StructuralMismatchError{A: a, B: b}
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)

	names := keys
	if len(names) == 0 {
		names = make([]string, 0, ta.NumField())
		for i := 0; i < ta.NumField(); i++ {
			if f := ta.Field(i); f.IsExported() {
				names = append(names, f.Name)
			}
		}
	}

	out := reflect.New(ta).Elem()
	for _, name := range names {
		f, ok := ta.FieldByName(name)
		if !ok || !f.IsExported() {
			continue
		}
		v, err := blend(va.FieldByName(name).Interface(), vb.FieldByName(name).Interface(), nil, mix)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		rv := reflect.ValueOf(v)
		if !rv.Type().ConvertibleTo(f.Type) {
			continue
		}
		out.FieldByName(name).Set(rv.Convert(f.Type))
	}
	return out.Interface(), nil
}
