// Package console implements the interactive menu for exercising the
// CORDIC rotation engine.
//
// The console prints a fixed menu of ten operations, reads a selector,
// and runs the chosen handler: prompt for operands, validate ranges,
// convert to the fixed-point format the engine expects, submit and poll
// the engine, then print the engine result next to a floating-point
// reference computed with the standard math library.
//
// Numeric input tokens may be Starlark expressions wrapped in $(...),
// evaluated before range validation.
package console
