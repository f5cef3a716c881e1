package effects

const (
	// JumpTimeScale converts seconds of vertical jump into jump phase.
	JumpTimeScale float32 = 11.3
	// PaperTimeCeiling is the value past which the paper timer snaps back to 0.
	PaperTimeCeiling float32 = 100
	// PaperTimeStart is the paper timer value on activation.
	PaperTimeStart float32 = 1
)

// AnimationState holds the per-effect accumulators that survive between frames.
type AnimationState struct {
	JumpTime  float32 // glitch vertical jump phase, unbounded
	PaperTime float32 // paper timer, wraps at PaperTimeCeiling
}

// NewAnimationState returns the state an effect starts from on activation.
func NewAnimationState() AnimationState {
	return AnimationState{JumpTime: 0, PaperTime: PaperTimeStart}
}

// AdvanceJumpTime accumulates the vertical jump phase. It never wraps.
func AdvanceJumpTime(jumpTime, dt, verticalJump float32) float32 {
	return jumpTime + dt*verticalJump*JumpTimeScale
}

// AdvancePaperTime adds dt to the paper timer and resets it to exactly 0 once
// it goes past PaperTimeCeiling. The reset is a hard cut, not a modulo.
func AdvancePaperTime(paperTime, dt float32) float32 {
	paperTime += dt
	if paperTime > PaperTimeCeiling {
		return 0
	}
	return paperTime
}

// Advance moves both timers forward by dt.
func (s AnimationState) Advance(dt, verticalJump float32) AnimationState {
	return AnimationState{
		JumpTime:  AdvanceJumpTime(s.JumpTime, dt, verticalJump),
		PaperTime: AdvancePaperTime(s.PaperTime, dt),
	}
}
