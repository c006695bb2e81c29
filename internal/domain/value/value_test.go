package value

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal numbers", Number(25), Number(25), true},
		{"different numbers", Number(25), Number(80), false},
		{"equal text", Text("solvent A"), Text("solvent A"), true},
		{"different text", Text("solvent A"), Text("solvent B"), false},
		{"number vs text", Number(1), Text("1"), false},
		{"missing vs missing", Missing(), Missing(), false},
		{"missing vs number", Missing(), Number(0), false},
		{"number vs missing", Number(0), Missing(), false},
		{"zero values", Number(0), Number(0), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestNaNIsMissing(t *testing.T) {
	v := Number(math.NaN())
	if !v.IsMissing() {
		t.Fatal("Number(NaN) should be missing")
	}
	if v.Equal(v) {
		t.Error("NaN cell must not equal itself")
	}
}

func TestKey(t *testing.T) {
	if Number(25).Key() != "n:25" {
		t.Errorf("Number(25).Key() = %q", Number(25).Key())
	}
	if Text("25").Key() != "t:25" {
		t.Errorf("Text(25).Key() = %q", Text("25").Key())
	}
	if Number(25).Key() == Text("25").Key() {
		t.Error("number and text keys must not collide")
	}
	if Missing().Key() != "" {
		t.Errorf("Missing().Key() = %q, want empty", Missing().Key())
	}
}

func TestFloatAndText(t *testing.T) {
	if f, ok := Number(1.5).Float(); !ok || f != 1.5 {
		t.Errorf("Float() = %v, %v", f, ok)
	}
	if _, ok := Text("x").Float(); ok {
		t.Error("Float() on text should not be ok")
	}
	if s, ok := Text("x").Text(); !ok || s != "x" {
		t.Errorf("Text() = %v, %v", s, ok)
	}
	if _, ok := Missing().Text(); ok {
		t.Error("Text() on missing should not be ok")
	}
}
