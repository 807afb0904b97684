// Package script compiles ECMAScript expressions into vidar dynamic
// properties, so hosts can accept animation expressions as data.
//
// An expression sees two bindings: `entity`, the owning entity passed to
// Resolve, and `t`, the resolution time.
//
//	expr, err := script.Compile("wave", "Math.sin(t * Math.PI)")
//	p := expr.Property()
//	v, err := p.Resolve(nil, 0.5)
package script

import (
	"fmt"
	"sync"

	"github.com/dop251/goja"

	"github.com/jeff-ong/vidar"
)

// Expr is a compiled ECMAScript expression. It owns a single Goja
// runtime; evaluation is serialized, which is a non-issue under vidar's
// single-threaded resolution model.
type Expr struct {
	name string

	mu sync.Mutex
	vm *goja.Runtime
	p  *goja.Program
}

// Compile compiles src as an ECMAScript expression. name appears in
// script stack traces.
func Compile(name, src string) (*Expr, error) {
	p, err := goja.Compile(name, src, true)
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &Expr{name: name, vm: goja.New(), p: p}, nil
}

// Property wraps the expression as a vidar dynamic property. Like any
// dynamic property, the expression is re-evaluated on every resolution.
func (e *Expr) Property() vidar.Property {
	return vidar.Dynamic(e.eval)
}

// eval runs the compiled program with entity and t bound, exporting the
// completion value to a plain Go value. Integral results export as
// int64, fractional ones as float64; vidar's interpolators accept both.
func (e *Expr) eval(entity any, t float64) (any, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.vm.Set("entity", entity)
	e.vm.Set("t", t)

	v, err := e.vm.RunProgram(e.p)
	if err != nil {
		return nil, fmt.Errorf("script: eval %s: %w", e.name, err)
	}
	return v.Export(), nil
}
