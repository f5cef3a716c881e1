package effects

import (
	"testing"
)

func TestAdvancePaperTime(t *testing.T) {
	cases := []struct {
		name  string
		start float32
		dt    float32
		want  float32
	}{
		{"zero dt", 5, 0, 5},
		{"plain add", 1, 0.5, 1.5},
		{"exactly at ceiling", 99.5, 0.5, 100},
		{"past ceiling", 99.5, 0.75, 0},
		{"large step", 0, 250, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AdvancePaperTime(tc.start, tc.dt)
			if got != tc.want {
				t.Errorf("AdvancePaperTime(%v, %v) = %v, want %v", tc.start, tc.dt, got, tc.want)
			}
		})
	}
}

func TestPaperTimeWrapIsHardReset(t *testing.T) {
	timer := PaperTimeStart
	var wrapped bool
	for i := 0; i < 2000; i++ {
		next := AdvancePaperTime(timer, 0.1)
		if next < timer {
			if next != 0 {
				t.Fatalf("wrap produced %v, want exactly 0", next)
			}
			wrapped = true
		}
		if next > PaperTimeCeiling {
			t.Fatalf("timer exceeded ceiling: %v", next)
		}
		timer = next
	}
	if !wrapped {
		t.Error("timer never wrapped")
	}
}

func TestAdvanceJumpTime(t *testing.T) {
	if got := AdvanceJumpTime(0, 1, 1); got != 11.3 {
		t.Errorf("AdvanceJumpTime(0, 1, 1) = %v, want 11.3", got)
	}
	if got := AdvanceJumpTime(3, 1, 0); got != 3 {
		t.Errorf("zero jump amount should not move the phase, got %v", got)
	}
	// No wrap, even far past the paper ceiling.
	if got := AdvanceJumpTime(1000, 10, 1); got <= 1000 {
		t.Errorf("jump time should keep growing, got %v", got)
	}
}

func TestAnimationStateAdvance(t *testing.T) {
	s := NewAnimationState()
	if s.JumpTime != 0 || s.PaperTime != 1 {
		t.Fatalf("unexpected initial state %+v", s)
	}

	s = s.Advance(0.5, 1)
	if s.PaperTime != 1.5 {
		t.Errorf("PaperTime = %v, want 1.5", s.PaperTime)
	}
	if s.JumpTime != 0.5*JumpTimeScale {
		t.Errorf("JumpTime = %v, want %v", s.JumpTime, 0.5*JumpTimeScale)
	}
}
