// Package vidar resolves time-varying properties for animation and
// video-editing hosts.
//
// # Overview
//
// vidar is the value-resolution core of a layer-based editing framework.
// A property is declared once, as a constant, a function of time, or a set
// of keyframes, and resolved at arbitrary timestamps. Keyframed numeric and
// structured values are blended between their bounding keyframes by a
// pluggable interpolator.
//
// # Quick Start
//
//	import "github.com/jeff-ong/vidar"
//
//	// A property animating from 0 to 100 over four seconds.
//	p := vidar.Keyframes(vidar.NewKeyframeSet(
//		vidar.Keyframe{Time: 0, Value: 0.0},
//		vidar.Keyframe{Time: 4, Value: 100.0},
//	))
//
//	v, err := p.Resolve(nil, 2) // 50.0
//
// # Properties
//
// Three property forms exist, discriminated once at construction:
//   - Constant: any value, returned as-is.
//   - Dynamic: a function of (entity, time), re-evaluated on every resolution.
//   - Keyframes: a KeyframeSet mapping times to values.
//
// AsProperty classifies raw descriptor data (for example a decoded
// map[string]any) into one of the three forms.
//
// # Default options
//
// Variant models a node in a capability hierarchy: its own default options
// plus an ordered list of inherited variants. ApplyOptions merges the
// inheritance DAG breadth-first (nearer declarations win) and applies
// caller overrides onto a target, validating override keys against the
// merged set.
//
// # Colors and fonts
//
// ParseColor interprets CSS-style color strings by filling a 1x1 drawing
// surface (a gg pixmap by default) and reading the pixel back; results are
// cached. ParseFont parses "{size}{unit} {family}" declarations.
//
// # Concurrency
//
// Resolution, merging and parsing are synchronous computations over
// already-resident data. The color cache and the logger are safe for
// concurrent use; everything else follows the usual single-writer rules.
package vidar
