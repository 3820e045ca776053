package cpu

import "github.com/bdwalton/gintendo/bitutil"

// Processor-status flag bit positions, LSB first, per spec.md §3.
const (
	FlagC      uint = 0 // carry
	FlagZ      uint = 1 // zero
	FlagI      uint = 2 // interrupt disable
	FlagD      uint = 3 // decimal
	FlagB      uint = 4 // break
	flagUnused uint = 5 // always 1: set by Reset, forced back on by PLP/RTI
	FlagV      uint = 6 // overflow
	FlagN      uint = 7 // negative
)

const stackBase = 0x0100

// State is the CPU's register file: accumulator, index registers,
// stack pointer, packed processor status, program counter and a
// free-running cycle counter. It is exported so a host can inspect it
// for test assertions (spec.md §6.3 cpu_state()).
type State struct {
	A, X, Y uint8
	S       uint8
	P       uint8
	PC      uint16
	Cycles  uint64
}

// GetFlag reports whether the named status bit is set.
func (s *State) GetFlag(bit uint) bool {
	return bitutil.Get(s.P, bit)
}

// SetFlag writes the named status bit.
func (s *State) SetFlag(bit uint, v bool) {
	bitutil.Set(&s.P, bit, v)
}

// setZN sets the Z and N flags from the 8-bit result v, the shared
// tail of every load/transfer/logic/shift instruction.
func (s *State) setZN(v uint8) {
	s.SetFlag(FlagZ, v == 0)
	s.SetFlag(FlagN, v&0x80 != 0)
}
