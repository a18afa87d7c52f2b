// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package qfmt

import (
	"math"
)

// Pi as the reference firmware defines it.
const Pi = 3.141592654

// Scale factors for the supported formats.
const (
	Q31_SCALE = float64(1 << 31)
	Q30_SCALE = float64(1 << 30)
	Q23_SCALE = float64(1 << 23)
	Q11_SCALE = float64(1 << 11)
	Q8_SCALE  = float64(1 << 8)
)

// Q31 is a signed fraction in [-1, 1), scale 2^31.
//
// When used as an angle, one LSB is π/2^31 radians; ±1.0 spans ±180°.
type Q31 int32

// Q1_30 is a signed fixed-point value in [-2, 2), scale 2^30.
type Q1_30 int32

// Q20_11 is a signed fixed-point value in [-2^20, 2^20), scale 2^11.
type Q20_11 int32

// Q8_23 is a scaled operand magnitude for the vectoring operations,
// scale 2^8.
type Q8_23 int32

// Q23 is a signed fraction result component in [-256, 256), scale 2^23.
type Q23 int32

// fix truncates x toward zero and saturates at the int32 limits.
// The rotation engine operand registers saturate rather than wrap.
func fix(x float64) (fixed int32) {
	switch {
	case x >= math.MaxInt32:
		fixed = math.MaxInt32
	case x <= math.MinInt32:
		fixed = math.MinInt32
	default:
		fixed = int32(x)
	}
	return
}

// Q31FromFloat converts x in [-1, 1) to Q31, truncating toward zero.
func Q31FromFloat(x float64) (q Q31) {
	q = Q31(fix(x * Q31_SCALE))
	return
}

// Float converts q to floating point.
func (q Q31) Float() (x float64) {
	x = float64(q) / Q31_SCALE
	return
}

// Q31FromDeg converts an angle in degrees to the Q31 angle format,
// truncating toward zero.
func Q31FromDeg(deg float64) (q Q31) {
	q = Q31(fix(deg * (Q31_SCALE / 180)))
	return
}

// Rad converts a Q31 angle to radians.
func (q Q31) Rad() (rad float64) {
	rad = float64(q) * (Pi / Q31_SCALE)
	return
}

// Q1_30FromFloat converts x in [-2, 2) to 1Q30, truncating toward zero.
func Q1_30FromFloat(x float64) (q Q1_30) {
	q = Q1_30(fix(x * Q30_SCALE))
	return
}

// Float converts q to floating point.
func (q Q1_30) Float() (x float64) {
	x = float64(q) / Q30_SCALE
	return
}

// Q20_11FromFloat converts x in [-2^20, 2^20) to 20Q11, truncating
// toward zero.
func Q20_11FromFloat(x float64) (q Q20_11) {
	q = Q20_11(fix(x * Q11_SCALE))
	return
}

// Float converts q to floating point.
func (q Q20_11) Float() (x float64) {
	x = float64(q) / Q11_SCALE
	return
}

// Q8_23FromFloat converts a pre-scaled operand magnitude to 8Q23,
// truncating toward zero.
func Q8_23FromFloat(x float64) (q Q8_23) {
	q = Q8_23(fix(x * Q8_SCALE))
	return
}

// Float converts q to floating point.
func (q Q8_23) Float() (x float64) {
	x = float64(q) / Q8_SCALE
	return
}

// Q23FromFloat converts x in [-256, 256) to Q23, truncating toward zero.
func Q23FromFloat(x float64) (q Q23) {
	q = Q23(fix(x * Q23_SCALE))
	return
}

// Float converts q to floating point.
func (q Q23) Float() (x float64) {
	x = float64(q) / Q23_SCALE
	return
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) (rad float64) {
	rad = deg * (Pi / 180)
	return
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) (deg float64) {
	deg = rad * (180 / Pi)
	return
}
