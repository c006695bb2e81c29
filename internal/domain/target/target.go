// Package target defines measurable quantities with an optimization
// direction and optional bounds.
package target

import "fmt"

// Target is a named measurable quantity. Immutable once constructed.
type Target struct {
	name          string
	mode          Mode
	bounds        Interval
	transformMode TransformMode
}

// New validates and creates a target.
// Half-open bounds are rejected; Match mode requires finite bounds.
func New(name string, mode Mode, bounds Interval) (Target, error) {
	if name == "" {
		return Target{}, fmt.Errorf("target name is required")
	}
	if !mode.IsValid() {
		return Target{}, fmt.Errorf("invalid mode %q for target %q", mode, name)
	}
	if bounds == (Interval{}) {
		bounds = Unbounded()
	}
	if bounds.IsHalfOpen() {
		return Target{}, fmt.Errorf("target %q: bounds must be finite or infinite on both ends", name)
	}
	if mode == Match && !bounds.IsClosed() {
		return Target{}, fmt.Errorf("target %q is in %s mode, which requires finite bounds", name, Match)
	}
	t := Target{name: name, mode: mode, bounds: bounds}
	if bounds.IsClosed() {
		t.transformMode = defaultTransformMode(mode)
	}
	return t, nil
}

// MustNew creates a target or panics. Intended for tests and fixtures.
func MustNew(name string, mode Mode, bounds Interval) Target {
	t, err := New(name, mode, bounds)
	if err != nil {
		panic(err)
	}
	return t
}

// WithTransformMode returns a copy of the target using the given transform.
// The transform must be compatible with the target mode.
func (t Target) WithTransformMode(tm TransformMode) (Target, error) {
	if !tm.compatibleWith(t.mode) {
		return Target{}, fmt.Errorf(
			"transform %q is not compatible with target mode %s", tm, t.mode)
	}
	if !t.bounds.IsClosed() {
		return Target{}, fmt.Errorf("target %q has no finite bounds to transform against", t.name)
	}
	t.transformMode = tm
	return t, nil
}

// Name returns the target name.
func (t Target) Name() string { return t.name }

// Mode returns the optimization direction.
func (t Target) Mode() Mode { return t.mode }

// Bounds returns the target bounds.
func (t Target) Bounds() Interval { return t.bounds }

// TransformMode returns the configured transform, empty for unbounded targets.
func (t Target) TransformMode() TransformMode { return t.transformMode }

// Names extracts the names of the given targets, in order.
func Names(targets []Target) []string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name()
	}
	return names
}
