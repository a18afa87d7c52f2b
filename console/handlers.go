// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package console

import (
	"fmt"
	"math"

	"github.com/ezrec/ucordic/qfmt"
)

// CIRCULAR_GAIN is the fixed gain of the engine's circular rotations,
// divided out of results that are not gain-compensated in hardware.
const CIRCULAR_GAIN = 1.646760258121

// ATAN_TANH_IN_SCALING spreads the vectoring operands across the 8Q23
// range so that both numerator and denominator stay representable.
const ATAN_TANH_IN_SCALING = 127.99

// Input minimum/maximum values.
const (
	IN_PARK_ANGLE_MAX      = 90
	IN_PARK_ANGLE_MIN      = -90
	IN_SIN_COS_MAX         = 90
	IN_SIN_COS_MIN         = -90
	IN_TAN_MAX             = 89
	IN_TAN_MIN             = -89
	IN_ATAN_MAX            = 57
	IN_ATAN_MIN            = -57
	IN_HYP_SIN_COS_TAN_MAX = 60
	IN_HYP_SIN_COS_TAN_MIN = -60
	IN_ATANH_MAX           = 0.8
	IN_ATANH_MIN           = -0.8
)

// parkTransform reads an angle and the (alpha, beta) vector, rotates the
// vector on the engine, and prints both result pairs. The engine result
// carries the circular gain, which is divided out here.
func (con *Console) parkTransform() {
	fmt.Fprint(con.out, f("\nSelected option - park transform."))

	fmt.Fprint(con.out, f("\nEnter angle in degree (between -90 and 90): \n"))
	angleDeg, ok := con.readFloat()
	if !ok || !con.checkRange(IN_PARK_ANGLE_MIN, IN_PARK_ANGLE_MAX, angleDeg) {
		return
	}

	fmt.Fprint(con.out, f("\nEnter i alpha (between -1 and 1): \n"))
	alpha, ok := con.readFloat()
	if !ok || !con.checkRange(-1, 1, alpha) {
		return
	}

	fmt.Fprint(con.out, f("\nEnter i beta (between -1 and 1): \n"))
	beta, ok := con.readFloat()
	if !ok || !con.checkRange(-1, 1, beta) {
		return
	}

	angleRad := qfmt.DegToRad(angleDeg)
	angleQ31 := qfmt.Q31FromDeg(angleDeg)
	alphaQ31 := qfmt.Q31FromFloat(alpha)
	betaQ31 := qfmt.Q31FromFloat(beta)

	err := con.Unit.ParkTransform(angleQ31, alphaQ31, betaQ31)
	if err != nil {
		con.reportUnitErr(err)
		return
	}
	con.await()

	id, iq := con.Unit.ParkResult()
	resultId := id.Float() * (1 / CIRCULAR_GAIN)
	resultIq := iq.Float() * (1 / CIRCULAR_GAIN)

	fmt.Fprint(con.out, f("\nPark transform using CORDIC. Id: %f. Iq: %f.", resultId, resultIq))

	sin := math.Sin(angleRad)
	cos := math.Cos(angleRad)
	refId := alpha*cos + beta*sin
	refIq := beta*cos - alpha*sin

	fmt.Fprint(con.out, f("\nPark transform using math library. Id: %f Iq: %f.\n", refId, refIq))
}

// sine reads an angle and prints its sine from both paths.
func (con *Console) sine() {
	fmt.Fprint(con.out, f("\nSelected option - sine."))

	fmt.Fprint(con.out, f("\nEnter the angle in degree (between -90 and 90): \n"))
	angleDeg, ok := con.readFloat()
	if !ok || !con.checkRange(IN_SIN_COS_MIN, IN_SIN_COS_MAX, angleDeg) {
		return
	}

	angleRad := qfmt.DegToRad(angleDeg)

	err := con.Unit.Sin(qfmt.Q31FromDeg(angleDeg))
	if err != nil {
		con.reportUnitErr(err)
		return
	}
	con.await()

	fmt.Fprint(con.out, f("\nSine of the angle using CORDIC: %f.", con.Unit.ResultQ31().Float()))
	fmt.Fprint(con.out, f("\nSine of the angle using math library: %f.\n", math.Sin(angleRad)))
}

// cosine reads an angle and prints its cosine from both paths.
func (con *Console) cosine() {
	fmt.Fprint(con.out, f("\nSelected option - cosine."))

	fmt.Fprint(con.out, f("\nEnter the angle in degree (between -90 and 90): \n"))
	angleDeg, ok := con.readFloat()
	if !ok || !con.checkRange(IN_SIN_COS_MIN, IN_SIN_COS_MAX, angleDeg) {
		return
	}

	angleRad := qfmt.DegToRad(angleDeg)

	err := con.Unit.Cos(qfmt.Q31FromDeg(angleDeg))
	if err != nil {
		con.reportUnitErr(err)
		return
	}
	con.await()

	fmt.Fprint(con.out, f("\nCosine of the angle using CORDIC: %f.", con.Unit.ResultQ31().Float()))
	fmt.Fprint(con.out, f("\nCosine of the angle using math library: %f.\n", math.Cos(angleRad)))
}

// tangent reads an angle and prints its tangent from both paths.
func (con *Console) tangent() {
	fmt.Fprint(con.out, f("\nSelected option - tangent."))

	fmt.Fprint(con.out, f("\nEnter the angle in degree (between -89 and 89): \n"))
	angleDeg, ok := con.readFloat()
	if !ok || !con.checkRange(IN_TAN_MIN, IN_TAN_MAX, angleDeg) {
		return
	}

	angleRad := qfmt.DegToRad(angleDeg)

	err := con.Unit.Tan(qfmt.Q31FromDeg(angleDeg))
	if err != nil {
		con.reportUnitErr(err)
		return
	}
	con.await()

	fmt.Fprint(con.out, f("\nTangent of the angle using CORDIC: %f.", con.Unit.Result20Q11().Float()))
	fmt.Fprint(con.out, f("\nTangent of the angle using math library: %f.\n", math.Tan(angleRad)))
}

// arcTangent reads a value, vectors it against the fixed denominator,
// and prints the angle in degrees from both paths.
func (con *Console) arcTangent() {
	fmt.Fprint(con.out, f("\nSelected option - arc tangent."))

	fmt.Fprint(con.out, f("\nEnter the value (between -57 and 57): \n"))
	value, ok := con.readFloat()
	if !ok || !con.checkRange(IN_ATAN_MIN, IN_ATAN_MAX, value) {
		return
	}

	num := value * ATAN_TANH_IN_SCALING
	den := float64(ATAN_TANH_IN_SCALING)

	err := con.Unit.ArcTan(qfmt.Q8_23FromFloat(den), qfmt.Q8_23FromFloat(num))
	if err != nil {
		con.reportUnitErr(err)
		return
	}
	con.await()

	resultDeg := qfmt.RadToDeg(con.Unit.ResultQ31().Rad())
	fmt.Fprint(con.out, f("\nArcTan in degree using CORDIC: %f.", resultDeg))

	refDeg := qfmt.RadToDeg(math.Atan2(num, den))
	fmt.Fprint(con.out, f("\nArcTan in degree using math library: %f.\n", refDeg))
}

// hyperbolicSine reads an angle and prints its hyperbolic sine from
// both paths.
func (con *Console) hyperbolicSine() {
	fmt.Fprint(con.out, f("\nSelected option - hyperbolic sine."))

	fmt.Fprint(con.out, f("\nEnter the angle in degree (between -60 and 60): \n"))
	angleDeg, ok := con.readFloat()
	if !ok || !con.checkRange(IN_HYP_SIN_COS_TAN_MIN, IN_HYP_SIN_COS_TAN_MAX, angleDeg) {
		return
	}

	angleRad := qfmt.DegToRad(angleDeg)

	err := con.Unit.Sinh(qfmt.Q31FromDeg(angleDeg))
	if err != nil {
		con.reportUnitErr(err)
		return
	}
	con.await()

	fmt.Fprint(con.out, f("\nHyperbolic Sine using CORDIC: %f.", con.Unit.Result1Q30().Float()))
	fmt.Fprint(con.out, f("\nHyperbolic Sine using math library: %f.\n", math.Sinh(angleRad)))
}

// hyperbolicCosine reads an angle and prints its hyperbolic cosine from
// both paths.
func (con *Console) hyperbolicCosine() {
	fmt.Fprint(con.out, f("\nSelected option - hyperbolic cosine."))

	fmt.Fprint(con.out, f("\nEnter the angle in degree (between -60 and 60): \n"))
	angleDeg, ok := con.readFloat()
	if !ok || !con.checkRange(IN_HYP_SIN_COS_TAN_MIN, IN_HYP_SIN_COS_TAN_MAX, angleDeg) {
		return
	}

	angleRad := qfmt.DegToRad(angleDeg)

	err := con.Unit.Cosh(qfmt.Q31FromDeg(angleDeg))
	if err != nil {
		con.reportUnitErr(err)
		return
	}
	con.await()

	fmt.Fprint(con.out, f("\nHyperbolic Cosine using CORDIC: %f.", con.Unit.Result1Q30().Float()))
	fmt.Fprint(con.out, f("\nHyperbolic Cosine using math library: %f.\n", math.Cosh(angleRad)))
}

// hyperbolicTangent reads an angle and prints its hyperbolic tangent
// from both paths.
func (con *Console) hyperbolicTangent() {
	fmt.Fprint(con.out, f("\nSelected option - hyperbolic tangent."))

	fmt.Fprint(con.out, f("\nEnter the angle in degree (between -60 and 60): \n"))
	angleDeg, ok := con.readFloat()
	if !ok || !con.checkRange(IN_HYP_SIN_COS_TAN_MIN, IN_HYP_SIN_COS_TAN_MAX, angleDeg) {
		return
	}

	angleRad := qfmt.DegToRad(angleDeg)

	err := con.Unit.Tanh(qfmt.Q31FromDeg(angleDeg))
	if err != nil {
		con.reportUnitErr(err)
		return
	}
	con.await()

	fmt.Fprint(con.out, f("\nHyperbolic Tangent using CORDIC: %f.", con.Unit.Result20Q11().Float()))
	fmt.Fprint(con.out, f("\nHyperbolic Tangent using math library: %f.\n", math.Tanh(angleRad)))
}

// hyperbolicArcTangent reads a value, vectors it against the fixed
// denominator, and prints the angle in degrees from both paths.
func (con *Console) hyperbolicArcTangent() {
	fmt.Fprint(con.out, f("\nSelected option - hyperbolic arc tangent."))

	fmt.Fprint(con.out, f("\nEnter the value (between -0.8 and 0.8): \n"))
	value, ok := con.readFloat()
	if !ok || !con.checkRange(IN_ATANH_MIN, IN_ATANH_MAX, value) {
		return
	}

	num := value * ATAN_TANH_IN_SCALING
	den := float64(ATAN_TANH_IN_SCALING)

	err := con.Unit.ArcTanh(qfmt.Q8_23FromFloat(den), qfmt.Q8_23FromFloat(num))
	if err != nil {
		con.reportUnitErr(err)
		return
	}
	con.await()

	resultDeg := qfmt.RadToDeg(con.Unit.ResultQ31().Rad())
	fmt.Fprint(con.out, f("\nHyperbolic ArcTan in degree using CORDIC: %f.", resultDeg))

	refDeg := qfmt.RadToDeg(math.Atanh(value))
	fmt.Fprint(con.out, f("\nHyperbolic ArcTan in degree using math library: %f.\n", refDeg))
}

// squareRoot reads a value in (0, 1) and prints its square root from
// both paths. Exact zero gets its own diagnostic rather than a range
// failure.
func (con *Console) squareRoot() {
	fmt.Fprint(con.out, f("\nSelected option - square root."))

	fmt.Fprint(con.out, f("\nEnter the value above 0 and below 1: \n"))
	value, ok := con.readFloat()
	if !ok {
		return
	}

	if con.checkRange(0, 1, value) && value != 0 {
		err := con.Unit.Sqrt(qfmt.Q31FromFloat(value))
		if err != nil {
			con.reportUnitErr(err)
			return
		}
		con.await()

		fmt.Fprint(con.out, f("\nSquare root using CORDIC: %f.", con.Unit.ResultQ31().Float()))
		fmt.Fprint(con.out, f("\nSquare root using math library: %f. \n", math.Sqrt(value)))
	}
	if value == 0 {
		fmt.Fprint(con.out, f("\nEntered number is 0. \n"))
	}
}
