// Package cordic implements a register-level software model of the MXCORDIC
// rotation engine.
//
// The engine computes trigonometric and hyperbolic functions by iterated
// shift-and-add rotations of a fixed-point (x, y, z) datapath, with no
// multipliers in the iteration loop. Operations are submitted through the
// operand registers and started non-blocking; the caller polls IsBusy()
// until the iteration schedule has drained, then reads the result register
// in the format the operation produces (Q31, 1Q30, 20Q11, or a Q23 pair
// for the Park transform).
//
// Circular rotations carry a fixed gain of ~1.6468. Sin and Cos
// precompensate it in the initial vector; the Park transform reports raw
// rotated coordinates and leaves gain removal to the caller, matching the
// hardware behavior.
package cordic
