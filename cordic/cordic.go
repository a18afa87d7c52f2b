// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cordic

import (
	"log"
	"math"

	"github.com/ezrec/ucordic/qfmt"
)

// Unit is the simulation context for the rotation engine.
//
// All operations follow the hardware protocol: a submit call latches the
// operand registers and starts the iteration schedule, IsBusy() retires
// one iteration per poll, and the result registers are valid once
// IsBusy() reports false.
type Unit struct {
	Verbose bool // Set to enable verbose logging.

	enabled   bool
	mode      Mode
	direction Direction

	x, y, z int64 // Datapath registers.

	remaining int    // Iterations left in the schedule.
	finish    func() // Latches the result registers after the last iteration.

	resultQ31   qfmt.Q31
	result1Q30  qfmt.Q1_30
	result20Q11 qfmt.Q20_11
	parkId      qfmt.Q23
	parkIq      qfmt.Q23
}

// NewUnit creates a new rotation engine model in the disabled state.
func NewUnit() (u *Unit) {
	u = &Unit{}
	return
}

// Enable powers up the engine. Submits fail until Enable is called.
func (u *Unit) Enable() {
	u.enabled = true
}

// Disable powers down the engine and discards any pending operation.
func (u *Unit) Disable() {
	u.enabled = false
	u.remaining = 0
	u.finish = nil
}

// IsEnabled reports whether the engine accepts submissions.
func (u *Unit) IsEnabled() (enabled bool) {
	enabled = u.enabled
	return
}

// IsBusy polls the busy flag, retiring one iteration of the pending
// operation per call. The caller spins until it reports false, then
// reads the result register.
func (u *Unit) IsBusy() (busy bool) {
	if u.remaining == 0 {
		return
	}

	u.step(u.schedule() - u.remaining)
	u.remaining--

	if u.remaining == 0 {
		if u.finish != nil {
			u.finish()
			u.finish = nil
		}
		return
	}

	busy = true
	return
}

// submit validates the engine state and starts an iteration schedule.
func (u *Unit) submit(name string, mode Mode, direction Direction, x, y, z int64, finish func()) (err error) {
	if !u.enabled {
		err = ErrNotEnabled
		return
	}
	if u.remaining != 0 {
		err = ErrBusy
		return
	}

	if u.Verbose {
		log.Printf("cordic: %v x:%v y:%v z:%v", name, x, y, z)
	}

	u.mode = mode
	u.direction = direction
	u.x = x
	u.y = y
	u.z = z
	u.remaining = u.schedule()
	u.finish = finish

	return
}

// satQ31 clamps a Q31-scaled datapath value to the representable range.
func satQ31(v int64) (q qfmt.Q31) {
	switch {
	case v > math.MaxInt32:
		q = qfmt.Q31(math.MaxInt32)
	case v < math.MinInt32:
		q = qfmt.Q31(math.MinInt32)
	default:
		q = qfmt.Q31(v)
	}
	return
}

// ratio20Q11 divides two datapath values into the 20Q11 result format,
// saturating when the divisor has collapsed to zero.
func ratio20Q11(num, den int64) (q qfmt.Q20_11) {
	if den == 0 {
		if num < 0 {
			q = qfmt.Q20_11(math.MinInt32)
		} else {
			q = qfmt.Q20_11(math.MaxInt32)
		}
		return
	}
	q = qfmt.Q20_11((num << 11) / den)
	return
}

// circularStart is the gain-precompensated unit vector for rotations
// that report true magnitudes.
func circularStart() (x int64) {
	x = int64(math.Round(float64(int64(1)<<DATA_SHIFT) / CircularGain))
	return
}

// hyperbolicStart is the gain-precompensated unit vector for hyperbolic
// rotations.
func hyperbolicStart() (x int64) {
	x = int64(math.Round(float64(int64(1)<<DATA_SHIFT) / HyperbolicGain))
	return
}

// Sin starts computing the sine of a Q31 angle. The result is read with
// ResultQ31.
func (u *Unit) Sin(angle qfmt.Q31) (err error) {
	err = u.submit("sin", MODE_CIRCULAR, ROTATE, circularStart(), 0, int64(angle), func() {
		u.resultQ31 = satQ31(u.y >> (DATA_SHIFT - 31))
	})
	return
}

// Cos starts computing the cosine of a Q31 angle. The result is read
// with ResultQ31.
func (u *Unit) Cos(angle qfmt.Q31) (err error) {
	err = u.submit("cos", MODE_CIRCULAR, ROTATE, circularStart(), 0, int64(angle), func() {
		u.resultQ31 = satQ31(u.x >> (DATA_SHIFT - 31))
	})
	return
}

// Tan starts computing the tangent of a Q31 angle. The result is read
// with Result20Q11.
func (u *Unit) Tan(angle qfmt.Q31) (err error) {
	err = u.submit("tan", MODE_CIRCULAR, ROTATE, circularStart(), 0, int64(angle), func() {
		u.result20Q11 = ratio20Q11(u.y, u.x)
	})
	return
}

// ParkTransform starts rotating the (alpha, beta) vector into the frame
// of the Q31 angle. The raw rotated coordinates, which carry the
// circular gain, are read with ParkResult.
func (u *Unit) ParkTransform(angle qfmt.Q31, alpha, beta qfmt.Q31) (err error) {
	x := int64(alpha) << (DATA_SHIFT - 31)
	y := int64(beta) << (DATA_SHIFT - 31)
	err = u.submit("park", MODE_CIRCULAR, ROTATE, x, y, -int64(angle), func() {
		u.parkId = qfmt.Q23(u.x >> (DATA_SHIFT - 23))
		u.parkIq = qfmt.Q23(u.y >> (DATA_SHIFT - 23))
	})
	return
}

// ArcTan starts computing atan(num/den) by vectoring. The result angle
// is read with ResultQ31.
func (u *Unit) ArcTan(den, num qfmt.Q8_23) (err error) {
	const shift = 22 // 8Q23 operands widen to the datapath
	err = u.submit("atan", MODE_CIRCULAR, VECTOR, int64(den)<<shift, int64(num)<<shift, 0, func() {
		u.resultQ31 = satQ31(u.z)
	})
	return
}

// Sinh starts computing the hyperbolic sine of a Q31 angle. The result
// is read with Result1Q30.
func (u *Unit) Sinh(angle qfmt.Q31) (err error) {
	err = u.submit("sinh", MODE_HYPERBOLIC, ROTATE, hyperbolicStart(), 0, int64(angle), func() {
		u.result1Q30 = qfmt.Q1_30(u.y >> (DATA_SHIFT - 30))
	})
	return
}

// Cosh starts computing the hyperbolic cosine of a Q31 angle. The
// result is read with Result1Q30.
func (u *Unit) Cosh(angle qfmt.Q31) (err error) {
	err = u.submit("cosh", MODE_HYPERBOLIC, ROTATE, hyperbolicStart(), 0, int64(angle), func() {
		u.result1Q30 = qfmt.Q1_30(u.x >> (DATA_SHIFT - 30))
	})
	return
}

// Tanh starts computing the hyperbolic tangent of a Q31 angle. The
// result is read with Result20Q11.
func (u *Unit) Tanh(angle qfmt.Q31) (err error) {
	err = u.submit("tanh", MODE_HYPERBOLIC, ROTATE, hyperbolicStart(), 0, int64(angle), func() {
		u.result20Q11 = ratio20Q11(u.y, u.x)
	})
	return
}

// ArcTanh starts computing atanh(num/den) by hyperbolic vectoring. The
// result angle is read with ResultQ31.
func (u *Unit) ArcTanh(den, num qfmt.Q8_23) (err error) {
	const shift = 22
	err = u.submit("atanh", MODE_HYPERBOLIC, VECTOR, int64(den)<<shift, int64(num)<<shift, 0, func() {
		u.resultQ31 = satQ31(u.z)
	})
	return
}

// Sqrt starts computing the square root of a Q31 value in (0, 1). The
// operand is normalized into the convergence range of the hyperbolic
// schedule; the result is read with ResultQ31.
func (u *Unit) Sqrt(value qfmt.Q31) (err error) {
	v := int64(value) << (DATA_SHIFT - 31)

	if v <= 0 {
		// Out of the operand domain; the engine reports zero.
		err = u.submit("sqrt", MODE_HYPERBOLIC, VECTOR, 0, 0, 0, func() {
			u.resultQ31 = 0
		})
		return
	}

	// Normalize to [0.25, 1) by factors of four; each factor halves
	// the square root.
	var norm int
	quarter := int64(1) << (DATA_SHIFT - 2)
	for v < quarter {
		v <<= 2
		norm++
	}

	invGain := int64(math.Round(float64(int64(1)<<30) / HyperbolicGain))
	err = u.submit("sqrt", MODE_HYPERBOLIC, VECTOR, v+quarter, v-quarter, 0, func() {
		root := ((u.x >> (DATA_SHIFT - 31)) * invGain) >> 30
		u.resultQ31 = satQ31(root >> norm)
	})
	return
}

// ResultQ31 reads the Q31 result register.
func (u *Unit) ResultQ31() (q qfmt.Q31) {
	q = u.resultQ31
	return
}

// Result1Q30 reads the 1Q30 result register.
func (u *Unit) Result1Q30() (q qfmt.Q1_30) {
	q = u.result1Q30
	return
}

// Result20Q11 reads the 20Q11 result register.
func (u *Unit) Result20Q11() (q qfmt.Q20_11) {
	q = u.result20Q11
	return
}

// ParkResult reads the Park transform result pair. Both components
// carry the circular gain.
func (u *Unit) ParkResult() (id, iq qfmt.Q23) {
	id = u.parkId
	iq = u.parkIq
	return
}
