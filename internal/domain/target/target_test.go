package target

import (
	"math"
	"testing"
)

func TestModeIsValid(t *testing.T) {
	for _, m := range []Mode{Max, Min, Match} {
		if !m.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", m)
		}
	}
	for _, m := range []Mode{"", "max", "MAXIMIZE", "TARGET"} {
		if m.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", m)
		}
	}
}

func TestNewInterval(t *testing.T) {
	iv, err := NewInterval(0, 100)
	if err != nil {
		t.Fatalf("NewInterval: %v", err)
	}
	if iv.Center() != 50 {
		t.Errorf("Center() = %g, want 50", iv.Center())
	}
	if !iv.IsClosed() {
		t.Error("IsClosed() = false, want true")
	}

	if _, err := NewInterval(100, 0); err == nil {
		t.Error("expected error for inverted bounds")
	}
	if _, err := NewInterval(5, 5); err == nil {
		t.Error("expected error for degenerate bounds")
	}
	if _, err := NewInterval(math.NaN(), 1); err == nil {
		t.Error("expected error for NaN bound")
	}
}

func TestIntervalOpenness(t *testing.T) {
	half := Interval{lower: 0, upper: math.Inf(1)}
	if !half.IsHalfOpen() {
		t.Error("half-open interval not detected")
	}
	if Unbounded().IsHalfOpen() {
		t.Error("unbounded interval reported half-open")
	}
	if Unbounded().IsClosed() {
		t.Error("unbounded interval reported closed")
	}
}

func TestNewTarget(t *testing.T) {
	bounds, _ := NewInterval(0, 100)

	t.Run("valid max", func(t *testing.T) {
		tgt, err := New("Yield", Max, bounds)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if tgt.Name() != "Yield" || tgt.Mode() != Max {
			t.Errorf("unexpected target %v %v", tgt.Name(), tgt.Mode())
		}
		if tgt.TransformMode() != Linear {
			t.Errorf("default transform = %q, want %q", tgt.TransformMode(), Linear)
		}
	})

	t.Run("unbounded defaults", func(t *testing.T) {
		tgt, err := New("Yield", Max, Interval{})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if tgt.Bounds().IsClosed() {
			t.Error("expected unbounded target")
		}
		if tgt.TransformMode() != "" {
			t.Errorf("unbounded target has transform %q", tgt.TransformMode())
		}
	})

	t.Run("match requires finite bounds", func(t *testing.T) {
		if _, err := New("pH", Match, Interval{}); err == nil {
			t.Error("expected error for unbounded MATCH target")
		}
		tgt, err := New("pH", Match, bounds)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if tgt.TransformMode() != Triangular {
			t.Errorf("default MATCH transform = %q, want %q", tgt.TransformMode(), Triangular)
		}
	})

	t.Run("half-open bounds rejected", func(t *testing.T) {
		if _, err := New("Yield", Max, Interval{lower: 0, upper: math.Inf(1)}); err == nil {
			t.Error("expected error for half-open bounds")
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		if _, err := New("", Max, bounds); err == nil {
			t.Error("expected error for empty name")
		}
	})

	t.Run("invalid mode rejected", func(t *testing.T) {
		if _, err := New("Yield", "max", bounds); err == nil {
			t.Error("expected error for lowercase mode")
		}
	})
}

func TestWithTransformMode(t *testing.T) {
	bounds, _ := NewInterval(0, 100)

	match := MustNew("pH", Match, bounds)
	bell, err := match.WithTransformMode(Bell)
	if err != nil {
		t.Fatalf("WithTransformMode: %v", err)
	}
	if bell.TransformMode() != Bell {
		t.Errorf("transform = %q, want %q", bell.TransformMode(), Bell)
	}

	if _, err := match.WithTransformMode(Linear); err == nil {
		t.Error("LINEAR must be rejected for MATCH targets")
	}
	maxT := MustNew("Yield", Max, bounds)
	if _, err := maxT.WithTransformMode(Bell); err == nil {
		t.Error("BELL must be rejected for MAX targets")
	}
}

func TestNames(t *testing.T) {
	ts := []Target{
		MustNew("Yield", Max, Interval{}),
		MustNew("Cost", Min, Interval{}),
	}
	names := Names(ts)
	if len(names) != 2 || names[0] != "Yield" || names[1] != "Cost" {
		t.Errorf("Names() = %v", names)
	}
}
