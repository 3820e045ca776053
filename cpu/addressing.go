package cpu

import "github.com/bdwalton/gintendo/decoder"

// samePage reports whether a and b fall in the same 256-byte page.
func samePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}

// zpRead16 reads a little-endian 16-bit value from two zero-page
// bytes, wrapping the high byte's address within the zero page (the
// indexed-indirect and indirect-indexed modes both need this: the
// pointer lives entirely on page zero).
func (c *CPU) zpRead16(zp uint8) uint16 {
	lo := uint16(c.bus.Read(uint16(zp)))
	hi := uint16(c.bus.Read(uint16(zp + 1)))
	return lo | hi<<8
}

// operand resolves the address an instruction's operand lives at (for
// modes that have an address) and whether resolving it crossed a page
// boundary. c.state.PC is still pointing at the opcode byte when this
// is called. Accumulator and Implied have no address and are handled
// by callers directly.
func (c *CPU) operand(mode decoder.AddressingMode) (addr uint16, crossed bool) {
	pc := c.state.PC

	switch mode {
	case decoder.Immediate:
		return pc + 1, false
	case decoder.ZeroPage:
		return uint16(c.bus.Read(pc + 1)), false
	case decoder.ZeroPageX:
		return uint16(c.bus.Read(pc+1) + c.state.X), false
	case decoder.ZeroPageY:
		return uint16(c.bus.Read(pc+1) + c.state.Y), false
	case decoder.Absolute:
		return c.bus.Read16(pc + 1), false
	case decoder.AbsoluteX:
		base := c.bus.Read16(pc + 1)
		a := base + uint16(c.state.X)
		return a, !samePage(base, a)
	case decoder.AbsoluteY:
		base := c.bus.Read16(pc + 1)
		a := base + uint16(c.state.Y)
		return a, !samePage(base, a)
	case decoder.Indirect:
		ptr := c.bus.Read16(pc + 1)
		return c.bus.Read16(ptr), false
	case decoder.IndirectX:
		zp := c.bus.Read(pc+1) + c.state.X
		return c.zpRead16(zp), false
	case decoder.IndirectY:
		zp := c.bus.Read(pc + 1)
		base := c.zpRead16(zp)
		a := base + uint16(c.state.Y)
		return a, !samePage(base, a)
	case decoder.Relative:
		offset := int8(c.bus.Read(pc + 1))
		return uint16(int32(pc) + 2 + int32(offset)), false
	default:
		panic(&Fault{Kind: IllegalAddressingModeForInstruction, PC: pc})
	}
}

// readOperand resolves and reads the byte an instruction operates on,
// for every mode except Accumulator/Implied (handled by the caller).
func (c *CPU) readOperand(mode decoder.AddressingMode) (val uint8, addr uint16, crossed bool) {
	addr, crossed = c.operand(mode)
	return c.bus.Read(addr), addr, crossed
}
