package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec_NormalizedOrFallsBackToUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		u := (Vec{}).NormalizedOr(rng)
		if math.Abs(u.Len()-1) > 1e-9 {
			t.Fatalf("zero-vector fallback is not unit length: %+v", u)
		}
	}
	v := (Vec{3, 4}).NormalizedOr(rng)
	if math.Abs(v.X-0.6) > 1e-9 || math.Abs(v.Y-0.8) > 1e-9 {
		t.Fatalf("non-zero vector should normalize exactly, got %+v", v)
	}
}

func TestVec_ClampLen(t *testing.T) {
	v := Vec{30, 40}
	if got := v.ClampLen(100); got != v {
		t.Fatalf("under-limit vector should be unchanged, got %+v", got)
	}
	clamped := v.ClampLen(10)
	if math.Abs(clamped.Len()-10) > 1e-9 {
		t.Fatalf("clamped length = %.6f, want 10", clamped.Len())
	}
	if math.Abs(clamped.X*v.Y-clamped.Y*v.X) > 1e-6 {
		t.Fatal("clamping must preserve direction")
	}
}

func TestFacingFromVec(t *testing.T) {
	cases := []struct {
		v    Vec
		want Facing
	}{
		{Vec{1, 0}, FacingRight},
		{Vec{-1, 0}, FacingLeft},
		{Vec{0, 1}, FacingDown},
		{Vec{0, -1}, FacingUp},
		{Vec{3, 1}, FacingRight},
		{Vec{1, 3}, FacingDown},
	}
	for _, tc := range cases {
		if got := FacingFromVec(tc.v); got != tc.want {
			t.Fatalf("FacingFromVec(%+v) = %v, want %v", tc.v, got, tc.want)
		}
	}
}
