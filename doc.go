// Package softfloat implements IEEE-754 binary floating-point
// arithmetic — single, double, and 80-bit extended precision — using
// only integer operations, so results are bit-exact and independent of
// the host machine's own FPU. It is meant to sit underneath a CPU
// emulator's floating-point unit.
//
// Every operation takes a *Status carrying the active rounding mode,
// tininess-detection mode, flush-to-zero switch, and a sticky register
// of IEEE exception flags. The core never clears flags on its own;
// callers decide when to inspect and reset them.
package softfloat
