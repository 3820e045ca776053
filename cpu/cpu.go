// Package cpu implements the MOS 6502 fetch/decode/execute loop: the
// register file, processor-status flags, the full documented
// instruction set, and the three interrupt entry points. It drives a
// Bus (satisfied by *mmu.Mmu) and knows nothing about cartridges, PPU
// registers or APU registers directly — those are the Machine's
// concern to wire together. See spec.md §4.8.
package cpu

import (
	"fmt"

	"github.com/bdwalton/gintendo/decoder"
)

// Interrupt vector addresses, little-endian words loaded into PC.
const (
	vecNMI   = 0xFFFA
	vecReset = 0xFFFC
	vecIRQ   = 0xFFFE
)

// Bus is everything the CPU core needs from the memory map.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
	Read16(addr uint16) uint16
}

// CPU is the 6502 register file plus its fetch/execute loop.
type CPU struct {
	state State
	bus   Bus
}

// New constructs a CPU over bus and performs the power-on reset
// sequence (spec.md §4.8 "RES").
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Reset()
	return c
}

// State returns the CPU's register file, for test-harness assertions
// (spec.md §6.3 cpu_state()).
func (c *CPU) State() *State {
	return &c.state
}

func (c *CPU) String() string {
	return fmt.Sprintf("A=%#02x X=%#02x Y=%#02x S=%#02x P=%#02x PC=%#04x cycles=%d",
		c.state.A, c.state.X, c.state.Y, c.state.S, c.state.P, c.state.PC, c.state.Cycles)
}

// Reset performs the RES interrupt: A=X=Y=0, S=0xFF, P cleared with
// only the unused bit set, cycles += 8, PC loaded from 0xFFFC.
func (c *CPU) Reset() {
	c.state.A, c.state.X, c.state.Y = 0, 0, 0
	c.state.S = 0xFF
	c.state.P = 0
	c.state.SetFlag(flagUnused, true)
	c.state.Cycles += 8
	c.state.PC = c.bus.Read16(vecReset)
}

// NMI services a non-maskable interrupt: push PC, push status (B
// clear), set I, cycles += 8, PC loaded from 0xFFFA.
func (c *CPU) NMI() {
	c.push16(c.state.PC)
	c.pushStatusForInterrupt()
	c.state.SetFlag(FlagI, true)
	c.state.Cycles += 8
	c.state.PC = c.bus.Read16(vecNMI)
}

// IRQ services a maskable interrupt, ignored while I is set.
// Otherwise: push PC, push status (B clear), set I, cycles += 7, PC
// loaded from 0xFFFE.
func (c *CPU) IRQ() {
	if c.state.GetFlag(FlagI) {
		return
	}
	c.push16(c.state.PC)
	c.pushStatusForInterrupt()
	c.state.SetFlag(FlagI, true)
	c.state.Cycles += 7
	c.state.PC = c.bus.Read16(vecIRQ)
}

// Tick fetches, decodes and executes exactly one instruction, then
// advances the cycle counter. Fatal conditions (spec.md §7) are
// raised via panic(*Fault); there is no policy for continuing past
// them.
func (c *CPU) Tick() {
	opAddr := c.state.PC
	opcode := c.bus.Read(opAddr)

	dop, err := decoder.Decode(opcode)
	if err != nil {
		panic(&Fault{Kind: UnknownOpcode, PC: opAddr, Err: err})
	}

	extra, jumped := c.execute(dop)

	if !jumped {
		c.state.PC += uint16(dop.Length)
	}

	c.state.Cycles += uint64(dop.BaseCycles) + uint64(extra)
}

func (c *CPU) stackAddr() uint16 {
	return stackBase + uint16(c.state.S)
}

func (c *CPU) push(v uint8) {
	c.bus.Write(c.stackAddr(), v)
	c.state.S--
}

func (c *CPU) pop() uint8 {
	c.state.S++
	return c.bus.Read(c.stackAddr())
}

// push16 pushes addr high byte then low byte, so a later pop-low,
// pop-high pair reassembles it (spec.md §4.8 JSR/interrupt pushes).
func (c *CPU) push16(addr uint16) {
	c.push(uint8(addr >> 8))
	c.push(uint8(addr & 0xFF))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return lo | hi<<8
}

// pushStatusForInterrupt pushes P with B clear, as NMI and IRQ do
// (only BRK/PHP push with B set).
func (c *CPU) pushStatusForInterrupt() {
	c.push(c.state.P &^ (1 << FlagB))
}

// restoreStatusFromStack is shared by PLP and RTI: the popped B bit is
// never architectural and is always discarded, with the unused bit
// forced back on.
func (c *CPU) restoreStatusFromStack(popped uint8) {
	c.state.P = (popped &^ (1 << FlagB)) | (1 << flagUnused)
}
