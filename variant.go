package vidar

import "log/slog"

// Variant is a node in a capability hierarchy: the defaults it declares
// itself plus an ordered list of inherited variants. The inheritance
// graph is a DAG; a variant may inherit from several sources and be
// inherited by several others.
type Variant struct {
	name     string
	defaults map[string]any
	parents  []*Variant
}

// NewVariant declares a variant with its own defaults and the variants
// it inherits from, in priority order. The defaults map is copied.
func NewVariant(name string, defaults map[string]any, inherits ...*Variant) *Variant {
	own := make(map[string]any, len(defaults))
	for k, v := range defaults {
		own[k] = v
	}
	return &Variant{name: name, defaults: own, parents: inherits}
}

// Name returns the variant's name.
func (v *Variant) Name() string {
	return v.name
}

// Inherits reports whether ancestor is reachable from v through the
// inheritance graph. A variant does not inherit from itself.
func (v *Variant) Inherits(ancestor *Variant) bool {
	if v == nil || ancestor == nil {
		return false
	}
	visited := map[*Variant]bool{v: true}
	queue := append([]*Variant(nil), v.parents...)
	for len(queue) > 0 {
		src := queue[0]
		queue = queue[1:]
		if src == nil || visited[src] {
			continue
		}
		if src == ancestor {
			return true
		}
		visited[src] = true
		queue = append(queue, src.parents...)
	}
	return false
}

// MergeDefaults computes the variant's effective option set: a
// breadth-first walk of the inheritance DAG starting at v, merging each
// source's own defaults with first-write-wins. Shallower declarations
// beat deeper ones; at equal depth, earlier entries in the inherited
// list win. Visiting is deduplicated so diamond-shaped graphs merge
// each source once.
func (v *Variant) MergeDefaults() map[string]any {
	merged := make(map[string]any)
	visited := make(map[*Variant]bool)
	queue := []*Variant{v}
	for len(queue) > 0 {
		src := queue[0]
		queue = queue[1:]
		if src == nil || visited[src] {
			continue
		}
		visited[src] = true
		for k, val := range src.defaults {
			if _, ok := merged[k]; !ok {
				merged[k] = val
			}
		}
		queue = append(queue, src.parents...)
	}
	return merged
}

// OptionTarget receives merged options during construction. Variant
// returns the target's concrete variant; SetOption assigns one option.
type OptionTarget interface {
	Variant() *Variant
	SetOption(key string, value any)
}

// ApplyOptions merges variant's default chain, validates overrides
// against the merged key set and assigns the result onto target.
//
// When target's concrete variant is a strict descendant of variant, the
// call is a no-op: an ancestor's construction path must not re-trigger
// the merge already owned by the most-derived variant. Validation is
// all-or-nothing; if any override key is absent from the merged set,
// an InvalidOptionError is returned and nothing is assigned.
func ApplyOptions(overrides map[string]any, target OptionTarget, variant *Variant) error {
	if tv := target.Variant(); tv != variant && tv.Inherits(variant) {
		return nil
	}

	merged := variant.MergeDefaults()
	Logger().Debug("vidar: applying options",
		slog.String("variant", variant.name),
		slog.Int("defaults", len(merged)),
		slog.Int("overrides", len(overrides)))
	for k := range overrides {
		if _, ok := merged[k]; !ok {
			return &InvalidOptionError{Key: k}
		}
	}
	for k, v := range merged {
		if ov, ok := overrides[k]; ok {
			v = ov
		}
		target.SetOption(k, v)
	}
	return nil
}

// OptionSet is a map-backed OptionTarget for consumers that keep their
// effective options as plain key/value state.
type OptionSet struct {
	variant *Variant
	values  map[string]any
}

// NewOptionSet creates an empty option set owned by variant.
func NewOptionSet(variant *Variant) *OptionSet {
	return &OptionSet{variant: variant, values: make(map[string]any)}
}

// Variant returns the owning variant.
func (o *OptionSet) Variant() *Variant {
	return o.variant
}

// SetOption assigns one option value.
func (o *OptionSet) SetOption(key string, value any) {
	o.values[key] = value
}

// Get returns the value stored under key.
func (o *OptionSet) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Len returns the number of stored options.
func (o *OptionSet) Len() int {
	return len(o.values)
}
