// Package serialio serves the console over a serial line, the way the
// reference firmware exposes its menu on the board UART.
package serialio
