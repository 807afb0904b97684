package vidar

// DynamicFunc computes a property value on demand. It receives the
// owning entity and the resolution time, and is re-evaluated on every
// resolution with no memoization.
type DynamicFunc func(entity any, time float64) (any, error)

type propertyKind int

const (
	constantProperty propertyKind = iota
	dynamicProperty
	keyframeProperty
)

// Property is a declarative description of a time-varying value: a
// constant, a function of time, or a set of keyframes. The form is
// discriminated once at construction rather than re-sniffed on every
// resolution.
type Property struct {
	kind     propertyKind
	constant any
	fn       DynamicFunc
	frames   *KeyframeSet
}

// Constant declares a property with a fixed value.
func Constant(v any) Property {
	return Property{kind: constantProperty, constant: v}
}

// Dynamic declares a property computed by fn on every resolution.
func Dynamic(fn DynamicFunc) Property {
	if fn == nil {
		return Constant(nil)
	}
	return Property{kind: dynamicProperty, fn: fn}
}

// Keyframes declares a property animated by a keyframe set.
func Keyframes(set *KeyframeSet) Property {
	if set == nil {
		return Constant(nil)
	}
	return Property{kind: keyframeProperty, frames: set}
}

// AsProperty classifies a raw descriptor value.
//
// A DynamicFunc (or a plain function of the same shape) becomes a
// Dynamic property. A non-nil map[string]any whose every key either
// parses as a finite number or equals one of the reserved control keys
// ("interpolate", "interpolationKeys") becomes a Keyframes property.
// Everything else, including slices with numeric indices, is a Constant.
func AsProperty(raw any) Property {
	switch v := raw.(type) {
	case Property:
		return v
	case DynamicFunc:
		return Dynamic(v)
	case func(entity any, time float64) (any, error):
		return Dynamic(v)
	case *KeyframeSet:
		return Keyframes(v)
	case map[string]any:
		if ks, ok := keyframeSetFromMap(v); ok {
			return Keyframes(ks)
		}
	}
	return Constant(raw)
}

// Resolve computes the property's concrete value at the given time.
// Constants are returned unchanged, dynamic properties invoke their
// function with (entity, time), and keyframe sets locate the bounding
// pair and interpolate.
func (p Property) Resolve(entity any, time float64) (any, error) {
	switch p.kind {
	case dynamicProperty:
		return p.fn(entity, time)
	case keyframeProperty:
		return p.frames.ValueAt(time)
	default:
		return p.constant, nil
	}
}

// IsKeyframed reports whether the property resolves through a keyframe set.
func (p Property) IsKeyframed() bool {
	return p.kind == keyframeProperty
}

// IsDynamic reports whether the property resolves through a function.
func (p Property) IsDynamic() bool {
	return p.kind == dynamicProperty
}
