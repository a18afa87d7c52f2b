// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cordic

import (
	"math"
)

// Mode selects the rotation coordinate system.
type Mode int

//go:generate go tool stringer -type=Mode
const (
	MODE_CIRCULAR   = Mode(0) // x² + y² preserved (scaled by the gain)
	MODE_HYPERBOLIC = Mode(1) // x² - y² preserved (scaled by the gain)
)

// Direction selects which accumulator the iteration drives to zero.
type Direction int

//go:generate go tool stringer -type=Direction
const (
	ROTATE = Direction(0) // drive z to zero, rotating (x, y)
	VECTOR = Direction(1) // drive y to zero, accumulating the angle in z
)

// Datapath scale. Operands widen to int64 with 45 fractional bits; the
// angle accumulator stays in Q31 angle units (one LSB = π/2^31 rad).
const DATA_SHIFT = 45

// CIRCULAR_ITERATIONS is the depth of the circular iteration schedule.
const CIRCULAR_ITERATIONS = 24

// Hyperbolic iterations start at 1 and repeat at these indices to
// guarantee convergence.
const HYPERBOLIC_DEPTH = 20

var hyperbolicRepeat = map[int]bool{4: true, 13: true}

var (
	circularShifts   []int // shift amount per circular iteration
	hyperbolicShifts []int // shift amount per hyperbolic iteration

	atanTab  []int64 // atan(2^-i) in Q31 angle units, per circular iteration
	atanhTab []int64 // atanh(2^-i) in Q31 angle units, per hyperbolic iteration

	// CircularGain is the magnitude gain of a full circular schedule.
	CircularGain float64

	// HyperbolicGain is the magnitude gain of a full hyperbolic schedule.
	HyperbolicGain float64
)

func init() {
	angleUnit := float64(int64(1)<<31) / math.Pi

	CircularGain = 1.0
	for i := 0; i < CIRCULAR_ITERATIONS; i++ {
		circularShifts = append(circularShifts, i)
		t := math.Ldexp(1, -i)
		atanTab = append(atanTab, int64(math.Round(math.Atan(t)*angleUnit)))
		CircularGain *= math.Sqrt(1 + t*t)
	}

	HyperbolicGain = 1.0
	for i := 1; i <= HYPERBOLIC_DEPTH; i++ {
		repeat := 1
		if hyperbolicRepeat[i] {
			repeat = 2
		}
		for r := 0; r < repeat; r++ {
			hyperbolicShifts = append(hyperbolicShifts, i)
			t := math.Ldexp(1, -i)
			atanhTab = append(atanhTab, int64(math.Round(math.Atanh(t)*angleUnit)))
			HyperbolicGain *= math.Sqrt(1 - t*t)
		}
	}
}

// step performs iteration n of the schedule on the (x, y, z) datapath.
func (u *Unit) step(n int) {
	var i int
	var alpha int64

	switch u.mode {
	case MODE_CIRCULAR:
		i = circularShifts[n]
		alpha = atanTab[n]
	case MODE_HYPERBOLIC:
		i = hyperbolicShifts[n]
		alpha = atanhTab[n]
	}

	var d int64 = 1
	switch u.direction {
	case ROTATE:
		if u.z < 0 {
			d = -1
		}
	case VECTOR:
		if u.y >= 0 {
			d = -1
		}
	}

	dx := d * (u.y >> i)
	dy := d * (u.x >> i)

	if u.mode == MODE_CIRCULAR {
		u.x -= dx
	} else {
		u.x += dx
	}
	u.y += dy
	u.z -= d * alpha
}

// schedule returns the iteration count for the current mode.
func (u *Unit) schedule() (count int) {
	switch u.mode {
	case MODE_CIRCULAR:
		count = len(circularShifts)
	case MODE_HYPERBOLIC:
		count = len(hyperbolicShifts)
	}
	return
}
