// Package qfmt implements the fixed-point number formats of the CORDIC
// rotation engine datapath.
//
// Each format is a signed 32-bit integer with an implicit binary point;
// the name QmQn (or Qn) gives the integer and fractional bit counts.
// Conversion from floating point truncates toward zero, matching the
// behavior of the reference firmware, and conversion back is an exact
// division by the format's scale factor.
//
// Angles are carried in Q31 with one LSB equal to π/2^31 radians, so the
// full ±1.0 span of the format covers ±180 degrees.
package qfmt
