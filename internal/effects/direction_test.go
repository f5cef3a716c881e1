package effects

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const dirTol = 1e-5

func TestResolveDirectionForward(t *testing.T) {
	d := ResolveDirection(0, 5)
	if d.DX != 0 || d.DZ != 1 {
		t.Errorf("heading 0 = (%v, %v), want (0, 1)", d.DX, d.DZ)
	}
	if d.Speed != 5 {
		t.Errorf("Speed = %v, want 5", d.Speed)
	}
	if d.Strength != 0 {
		t.Errorf("water flow should carry no strength, got %v", d.Strength)
	}
}

func TestResolveDirectionQuarterTurns(t *testing.T) {
	cases := []struct {
		heading float32
		dx, dz  float64
	}{
		{90, 1, 0},
		{180, 0, -1},
		{270, -1, 0},
		{45, math.Sqrt2 / 2, math.Sqrt2 / 2},
	}
	for _, tc := range cases {
		d := ResolveDirection(tc.heading, 1)
		if !scalar.EqualWithinAbs(float64(d.DX), tc.dx, dirTol) || !scalar.EqualWithinAbs(float64(d.DZ), tc.dz, dirTol) {
			t.Errorf("heading %v = (%v, %v), want (%v, %v)", tc.heading, d.DX, d.DZ, tc.dx, tc.dz)
		}
	}
}

func TestResolveDirectionIsPeriodic(t *testing.T) {
	for _, heading := range []float32{0, 17, 37, 123.5, 359} {
		a := ResolveDirection(heading, 2)
		b := ResolveDirection(heading+360, 2)
		if !scalar.EqualWithinAbs(float64(a.DX), float64(b.DX), 1e-4) || !scalar.EqualWithinAbs(float64(a.DZ), float64(b.DZ), 1e-4) {
			t.Errorf("heading %v not periodic: %+v vs %+v", heading, a, b)
		}
	}
}

func TestResolveDirectionUnitLength(t *testing.T) {
	for heading := float32(0); heading < 360; heading += 7.5 {
		d := ResolveDirection(heading, 3)
		l := math.Hypot(float64(d.DX), float64(d.DZ))
		if !scalar.EqualWithinAbs(l, 1, dirTol) {
			t.Errorf("heading %v has length %v", heading, l)
		}
	}
}

func TestDirectionVec4(t *testing.T) {
	v := ResolveDirection(0, 7).WithStrength(0.35).Vec4()
	if v[0] != 0 || v[1] != 1 || v[2] != 7 || v[3] != 0.35 {
		t.Errorf("Vec4 = %v, want [0 1 7 0.35]", v)
	}
}
