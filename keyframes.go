package vidar

import (
	"log/slog"
	"math"
	"sort"
	"strconv"
)

// Reserved, non-time keys recognized inside a raw keyframe mapping.
const (
	// interpolateKey carries an Interpolator overriding the default
	// linear blend for the whole set.
	interpolateKey = "interpolate"

	// interpolationKeysKey carries the list of field names to blend when
	// keyframe values are structs that do not enumerate their own keys.
	interpolationKeysKey = "interpolationKeys"
)

// Keyframe anchors a property's value at a specific time.
type Keyframe struct {
	Time  float64
	Value any
}

// KeyframeSet holds a property's keyframes together with its blending
// configuration. The set is immutable after construction; resolution
// never mutates it.
//
// Keyframes are kept in authored order. ValueAt finds the bounding pair
// by comparison, so the order carries no semantic weight beyond breaking
// ties between numerically equal times (first authored wins).
type KeyframeSet struct {
	frames []Keyframe
	interp Interpolator
	keys   []string
}

// KeyframeOption configures a KeyframeSet during creation.
type KeyframeOption func(*KeyframeSet)

// WithInterpolator overrides the default linear interpolator for the set.
func WithInterpolator(fn Interpolator) KeyframeOption {
	return func(ks *KeyframeSet) {
		ks.interp = fn
	}
}

// WithInterpolationKeys names the struct fields to blend when keyframe
// values are structured types without enumerable keys.
func WithInterpolationKeys(keys ...string) KeyframeOption {
	return func(ks *KeyframeSet) {
		ks.keys = keys
	}
}

// NewKeyframeSet creates a keyframe set from frames in authored order.
func NewKeyframeSet(frames []Keyframe, opts ...KeyframeOption) *KeyframeSet {
	ks := &KeyframeSet{frames: frames}
	for _, opt := range opts {
		opt(ks)
	}
	return ks
}

// Len returns the number of keyframes in the set.
func (ks *KeyframeSet) Len() int {
	return len(ks.frames)
}

// ValueAt resolves the set's value at time t.
//
// The scan tracks the largest keyframe time at or below t (lower bound)
// and the smallest at or above t (upper bound). If the lower value is
// neither numeric nor structured it is returned as-is, giving flat/step
// semantics for strings, booleans and other unblendable values, even
// when no upper bound exists. An exact hit, or a zero-width bracket,
// returns the stored value verbatim.
func (ks *KeyframeSet) ValueAt(t float64) (any, error) {
	if math.IsNaN(t) {
		return nil, ErrInvalidTime
	}

	var (
		lowerTime, upperTime   float64
		lowerValue, upperValue any
		lowerSet, upperSet     bool
	)
	for _, f := range ks.frames {
		if f.Time <= t && (!lowerSet || f.Time > lowerTime) {
			lowerTime, lowerValue, lowerSet = f.Time, f.Value, true
		}
		if f.Time >= t && (!upperSet || f.Time < upperTime) {
			upperTime, upperValue, upperSet = f.Time, f.Value, true
		}
	}

	if !lowerSet {
		return nil, &MissingBoundError{Side: LowerBound, Time: t}
	}
	if kindOf(lowerValue) == kindOther {
		return lowerValue, nil
	}
	if !upperSet {
		return nil, &MissingBoundError{Side: UpperBound, Time: t}
	}
	if kindOf(lowerValue) != kindOf(upperValue) {
		return nil, &TypeMismatchError{A: lowerValue, B: upperValue}
	}
	if lowerTime == upperTime {
		return upperValue, nil
	}

	progress := (t - lowerTime) / (upperTime - lowerTime)
	interp := ks.interp
	if interp == nil {
		interp = Linear
	}
	Logger().Debug("vidar: blending keyframes",
		slog.Float64("time", t),
		slog.Float64("lower", lowerTime),
		slog.Float64("upper", upperTime),
		slog.Float64("progress", progress))
	return interp(lowerValue, upperValue, progress, ks.keys)
}

// keyframeSetFromMap classifies a raw string-keyed mapping. The mapping
// qualifies iff every key either parses as a finite number or is one of
// the two reserved control keys. Frames are ordered by ascending time;
// numerically equal keys (such as "2" and "2.0") keep their sorted
// string order, making tie-breaking deterministic.
func keyframeSetFromMap(m map[string]any) (*KeyframeSet, bool) {
	if m == nil {
		return nil, false
	}

	type rawFrame struct {
		key  string
		time float64
	}
	raw := make([]rawFrame, 0, len(m))
	var opts []KeyframeOption

	for k, v := range m {
		switch k {
		case interpolateKey:
			fn, ok := v.(Interpolator)
			if !ok {
				if plain, okPlain := v.(func(a, b any, t float64, keys []string) (any, error)); okPlain {
					fn = plain
				} else {
					return nil, false
				}
			}
			opts = append(opts, WithInterpolator(fn))
		case interpolationKeysKey:
			keys, ok := stringList(v)
			if !ok {
				return nil, false
			}
			opts = append(opts, WithInterpolationKeys(keys...))
		default:
			t, err := strconv.ParseFloat(k, 64)
			if err != nil || math.IsInf(t, 0) || math.IsNaN(t) {
				return nil, false
			}
			raw = append(raw, rawFrame{key: k, time: t})
		}
	}

	sort.Slice(raw, func(i, j int) bool {
		if raw[i].time != raw[j].time {
			return raw[i].time < raw[j].time
		}
		return raw[i].key < raw[j].key
	})

	frames := make([]Keyframe, len(raw))
	for i, rf := range raw {
		frames[i] = Keyframe{Time: rf.time, Value: m[rf.key]}
	}
	return NewKeyframeSet(frames, opts...), true
}

// stringList accepts []string or []any holding only strings.
func stringList(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out[i] = s
		}
		return out, true
	}
	return nil, false
}
