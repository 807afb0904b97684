package vidar

import (
	"errors"
	"math"
	"testing"
)

func TestLinear_Numbers(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		t    float64
		want float64
	}{
		{"start", 0.0, 10.0, 0, 0},
		{"end", 0.0, 10.0, 1, 10},
		{"midpoint", 0.0, 10.0, 0.5, 5},
		{"mixed int operands", 2, 4, 0.25, 2.5},
		{"descending", 10.0, 0.0, 0.75, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Linear(tt.a, tt.b, tt.t, nil)
			if err != nil {
				t.Fatalf("Linear: %v", err)
			}
			f, ok := toFloat(got)
			if !ok || !near(f, tt.want) {
				t.Errorf("Linear(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestCosine_Numbers(t *testing.T) {
	// w = cos(pi/2 * t), result = w*a + (1-w)*b.
	w := math.Cos(math.Pi / 4)

	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"start", 0, 0},
		{"end", 1, 10},
		{"midpoint", 0.5, w*0 + (1-w)*10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cosine(0.0, 10.0, tt.t, nil)
			if err != nil {
				t.Fatalf("Cosine: %v", err)
			}
			f, _ := toFloat(got)
			if !near(f, tt.want) {
				t.Errorf("Cosine(0, 10, %v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestBlend_TypeMismatch(t *testing.T) {
	_, err := Linear(1.0, map[string]any{"x": 1.0}, 0.5, nil)
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("error = %v, want TypeMismatchError", err)
	}
}

func TestBlend_FlatFallback(t *testing.T) {
	got, err := Linear("hello", "world", 0.5, nil)
	if err != nil {
		t.Fatalf("Linear: %v", err)
	}
	if got != "hello" {
		t.Errorf("Linear on strings = %v, want first operand", got)
	}
}

func TestBlend_Maps(t *testing.T) {
	t.Run("intersection of own keys", func(t *testing.T) {
		got, err := Linear(
			map[string]any{"x": 0.0, "y": 0.0},
			map[string]any{"x": 10.0},
			0.5, nil)
		if err != nil {
			t.Fatalf("Linear: %v", err)
		}
		m := got.(map[string]any)
		if len(m) != 1 {
			t.Fatalf("result = %v, want single key x", m)
		}
		if x, _ := toFloat(m["x"]); !near(x, 5) {
			t.Errorf("x = %v, want 5", m["x"])
		}
	})

	t.Run("nested", func(t *testing.T) {
		got, err := Linear(
			map[string]any{"pos": map[string]any{"x": 0.0}},
			map[string]any{"pos": map[string]any{"x": 4.0}},
			0.5, nil)
		if err != nil {
			t.Fatalf("Linear: %v", err)
		}
		pos := got.(map[string]any)["pos"].(map[string]any)
		if x, _ := toFloat(pos["x"]); !near(x, 2) {
			t.Errorf("pos.x = %v, want 2", pos["x"])
		}
	})

	t.Run("map vs slice is a shape mismatch", func(t *testing.T) {
		_, err := Linear(map[string]any{"x": 0.0}, []any{0.0}, 0.5, nil)
		var sm *StructuralMismatchError
		if !errors.As(err, &sm) {
			t.Fatalf("error = %v, want StructuralMismatchError", err)
		}
	})
}

func TestBlend_Slices(t *testing.T) {
	got, err := Linear([]any{0.0, 10.0, 20.0}, []any{10.0, 20.0}, 0.5, nil)
	if err != nil {
		t.Fatalf("Linear: %v", err)
	}
	s := got.([]any)
	if len(s) != 2 {
		t.Fatalf("len = %d, want common prefix length 2", len(s))
	}
	for i, want := range []float64{5, 15} {
		if f, _ := toFloat(s[i]); !near(f, want) {
			t.Errorf("s[%d] = %v, want %v", i, s[i], want)
		}
	}
}

type vec struct {
	X, Y float64
	tag  string //nolint:unused // proves unexported fields are skipped
}

type point struct {
	X, Y float64
}

func TestBlend_Structs(t *testing.T) {
	t.Run("all exported fields", func(t *testing.T) {
		got, err := Linear(vec{X: 0, Y: 0}, vec{X: 10, Y: 20}, 0.5, nil)
		if err != nil {
			t.Fatalf("Linear: %v", err)
		}
		v := got.(vec)
		if !near(v.X, 5) || !near(v.Y, 10) {
			t.Errorf("got %+v, want {5 10}", v)
		}
	})

	t.Run("named fields only", func(t *testing.T) {
		got, err := Linear(vec{X: 0, Y: 0}, vec{X: 10, Y: 20}, 0.5, []string{"X"})
		if err != nil {
			t.Fatalf("Linear: %v", err)
		}
		v := got.(vec)
		if !near(v.X, 5) || v.Y != 0 {
			t.Errorf("got %+v, want {5 0}", v)
		}
	})

	t.Run("distinct struct types mismatch", func(t *testing.T) {
		_, err := Linear(vec{}, point{}, 0.5, nil)
		var sm *StructuralMismatchError
		if !errors.As(err, &sm) {
			t.Fatalf("error = %v, want StructuralMismatchError", err)
		}
	})

	t.Run("color channels convert back to uint8", func(t *testing.T) {
		got, err := Linear(
			Color{R: 0, G: 0, B: 0, A: 255},
			Color{R: 255, G: 255, B: 255, A: 255},
			0.5, ColorInterpolationKeys)
		if err != nil {
			t.Fatalf("Linear: %v", err)
		}
		c := got.(Color)
		if c.R != 127 || c.A != 255 {
			t.Errorf("got %v, want rgba(127, 127, 127, 255)", c)
		}
	})
}
