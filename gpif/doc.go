// Package gpif implements the assembler and decompiler for EZ-USB FX2 GPIF
// waveform tables.
//
// A waveform is up to seven states of a small sequencer. Each state is four
// bytes: a length/branch byte, an opcode byte, a logic function byte and an
// output byte. Single-phase states repeat for a count of clocks; dual-phase
// states (opcode J) evaluate a logic function of two ready inputs and
// branch to one of two states.
//
// The meaning of operand symbols depends on an Environment of configuration
// flags, set by directives such as .TRICTL and .GPIFREADYCFG5. The packed
// table does not record the environment, so decoding without it is a best
// effort reconstruction.
package gpif
