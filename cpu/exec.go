package cpu

import "github.com/bdwalton/gintendo/decoder"

// oopsExtra returns the extra cycle charged when dop is in the
// page-boundary-crossed oops class and the operand fetch actually
// crossed a page.
func oopsExtra(dop decoder.DecodedOp, crossed bool) uint8 {
	if dop.Oops == decoder.PageBoundaryCrossed && crossed {
		return 1
	}
	return 0
}

// execute dispatches dop against the CPU's register file and bus,
// applying its full documented side effects. It returns the number of
// extra cycles beyond dop.BaseCycles (oops cycles from a crossed page
// or a taken branch), and whether it transferred control itself.
// jumped is reported explicitly rather than inferred from "did PC
// change", since a control transfer whose target equals the opcode's
// own address (JMP $xxxx jumping to itself, a classic halt idiom) is
// still a control transfer: Tick must not also advance PC by
// dop.Length on top of it.
func (c *CPU) execute(dop decoder.DecodedOp) (extra uint8, jumped bool) {
	s := &c.state

	switch dop.Instruction {

	case decoder.LDA:
		v, _, crossed := c.readOperand(dop.Mode)
		s.A = v
		s.setZN(s.A)
		return oopsExtra(dop, crossed), false
	case decoder.LDX:
		v, _, crossed := c.readOperand(dop.Mode)
		s.X = v
		s.setZN(s.X)
		return oopsExtra(dop, crossed), false
	case decoder.LDY:
		v, _, crossed := c.readOperand(dop.Mode)
		s.Y = v
		s.setZN(s.Y)
		return oopsExtra(dop, crossed), false

	case decoder.STA:
		addr, _ := c.operand(dop.Mode)
		c.bus.Write(addr, s.A)
		return 0, false
	case decoder.STX:
		addr, _ := c.operand(dop.Mode)
		c.bus.Write(addr, s.X)
		return 0, false
	case decoder.STY:
		addr, _ := c.operand(dop.Mode)
		c.bus.Write(addr, s.Y)
		return 0, false

	case decoder.TAX:
		s.X = s.A
		s.setZN(s.X)
		return 0, false
	case decoder.TAY:
		s.Y = s.A
		s.setZN(s.Y)
		return 0, false
	case decoder.TSX:
		s.X = s.S
		s.setZN(s.X)
		return 0, false
	case decoder.TXA:
		s.A = s.X
		s.setZN(s.A)
		return 0, false
	case decoder.TXS:
		s.S = s.X
		return 0, false
	case decoder.TYA:
		s.A = s.Y
		s.setZN(s.A)
		return 0, false

	case decoder.PHA:
		c.push(s.A)
		return 0, false
	case decoder.PHP:
		c.push(s.P | (1 << FlagB) | (1 << flagUnused))
		return 0, false
	case decoder.PLA:
		s.A = c.pop()
		s.setZN(s.A)
		return 0, false
	case decoder.PLP:
		c.restoreStatusFromStack(c.pop())
		return 0, false

	case decoder.CLC:
		s.SetFlag(FlagC, false)
		return 0, false
	case decoder.CLD:
		s.SetFlag(FlagD, false)
		return 0, false
	case decoder.CLI:
		s.SetFlag(FlagI, false)
		return 0, false
	case decoder.CLV:
		s.SetFlag(FlagV, false)
		return 0, false
	case decoder.SEC:
		s.SetFlag(FlagC, true)
		return 0, false
	case decoder.SED:
		s.SetFlag(FlagD, true)
		return 0, false
	case decoder.SEI:
		s.SetFlag(FlagI, true)
		return 0, false

	case decoder.ADC:
		v, _, crossed := c.readOperand(dop.Mode)
		c.adc(v)
		return oopsExtra(dop, crossed), false
	case decoder.SBC:
		v, _, crossed := c.readOperand(dop.Mode)
		c.adc(^v)
		return oopsExtra(dop, crossed), false

	case decoder.CMP:
		v, _, crossed := c.readOperand(dop.Mode)
		c.compare(s.A, v)
		return oopsExtra(dop, crossed), false
	case decoder.CPX:
		v, _, _ := c.readOperand(dop.Mode)
		c.compare(s.X, v)
		return 0, false
	case decoder.CPY:
		v, _, _ := c.readOperand(dop.Mode)
		c.compare(s.Y, v)
		return 0, false

	case decoder.AND:
		v, _, crossed := c.readOperand(dop.Mode)
		s.A &= v
		s.setZN(s.A)
		return oopsExtra(dop, crossed), false
	case decoder.ORA:
		v, _, crossed := c.readOperand(dop.Mode)
		s.A |= v
		s.setZN(s.A)
		return oopsExtra(dop, crossed), false
	case decoder.EOR:
		v, _, crossed := c.readOperand(dop.Mode)
		s.A ^= v
		s.setZN(s.A)
		return oopsExtra(dop, crossed), false
	case decoder.BIT:
		v, _, _ := c.readOperand(dop.Mode)
		s.SetFlag(FlagZ, s.A&v == 0)
		s.SetFlag(FlagV, v&0x40 != 0)
		s.SetFlag(FlagN, v&0x80 != 0)
		return 0, false

	case decoder.INC:
		addr, _ := c.operand(dop.Mode)
		v := c.bus.Read(addr) + 1
		c.bus.Write(addr, v)
		s.setZN(v)
		return 0, false
	case decoder.DEC:
		addr, _ := c.operand(dop.Mode)
		v := c.bus.Read(addr) - 1
		c.bus.Write(addr, v)
		s.setZN(v)
		return 0, false
	case decoder.INX:
		s.X++
		s.setZN(s.X)
		return 0, false
	case decoder.INY:
		s.Y++
		s.setZN(s.Y)
		return 0, false
	case decoder.DEX:
		s.X--
		s.setZN(s.X)
		return 0, false
	case decoder.DEY:
		s.Y--
		s.setZN(s.Y)
		return 0, false

	case decoder.ASL:
		c.shiftRotate(dop.Mode, func(v uint8) (uint8, bool) {
			return v << 1, v&0x80 != 0
		})
		return 0, false
	case decoder.LSR:
		c.shiftRotate(dop.Mode, func(v uint8) (uint8, bool) {
			return v >> 1, v&0x01 != 0
		})
		return 0, false
	case decoder.ROL:
		carryIn := s.GetFlag(FlagC)
		c.shiftRotate(dop.Mode, func(v uint8) (uint8, bool) {
			out := v<<1 | b2u8(carryIn)
			return out, v&0x80 != 0
		})
		return 0, false
	case decoder.ROR:
		carryIn := s.GetFlag(FlagC)
		c.shiftRotate(dop.Mode, func(v uint8) (uint8, bool) {
			out := v>>1 | b2u8(carryIn)<<7
			return out, v&0x01 != 0
		})
		return 0, false

	case decoder.JMP:
		addr, _ := c.operand(dop.Mode)
		s.PC = addr
		return 0, true
	case decoder.JSR:
		addr, _ := c.operand(dop.Mode)
		c.push16(s.PC + 2)
		s.PC = addr
		return 0, true
	case decoder.RTS:
		s.PC = c.pop16() + 1
		return 0, true
	case decoder.RTI:
		c.restoreStatusFromStack(c.pop())
		s.PC = c.pop16()
		return 0, true
	case decoder.BRK:
		c.push16(s.PC + 2)
		c.push(s.P | (1 << FlagB) | (1 << flagUnused))
		s.SetFlag(FlagI, true)
		s.PC = c.bus.Read16(vecIRQ)
		return 0, true

	case decoder.BCC:
		return c.branch(dop, !s.GetFlag(FlagC))
	case decoder.BCS:
		return c.branch(dop, s.GetFlag(FlagC))
	case decoder.BEQ:
		return c.branch(dop, s.GetFlag(FlagZ))
	case decoder.BNE:
		return c.branch(dop, !s.GetFlag(FlagZ))
	case decoder.BMI:
		return c.branch(dop, s.GetFlag(FlagN))
	case decoder.BPL:
		return c.branch(dop, !s.GetFlag(FlagN))
	case decoder.BVC:
		return c.branch(dop, !s.GetFlag(FlagV))
	case decoder.BVS:
		return c.branch(dop, s.GetFlag(FlagV))

	case decoder.NOP:
		return 0, false

	default:
		panic(&Fault{Kind: IllegalAddressingModeForInstruction, PC: s.PC, Err: nil})
	}
}

// adc implements ADC's documented binary-mode arithmetic. SBC reuses
// it by calling c.adc(^v): A - M - (1-C) == A + ^M + C in two's
// complement. Decimal mode is not implemented (spec.md Non-goals);
// FlagD, if set, has no effect here.
func (c *CPU) adc(v uint8) {
	s := &c.state
	carryIn := uint16(0)
	if s.GetFlag(FlagC) {
		carryIn = 1
	}
	sum := uint16(s.A) + uint16(v) + carryIn
	result := uint8(sum)

	s.SetFlag(FlagC, sum > 0xFF)
	s.SetFlag(FlagV, (s.A^result)&(v^result)&0x80 != 0)
	s.A = result
	s.setZN(s.A)
}

// compare implements CMP/CPX/CPY: r - m, without storing the result.
func (c *CPU) compare(r, m uint8) {
	s := &c.state
	d := r - m
	s.SetFlag(FlagC, r >= m)
	s.setZN(d)
}

// shiftRotate applies fn to the accumulator or a memory operand,
// storing the new value back and setting C/Z/N from it.
func (c *CPU) shiftRotate(mode decoder.AddressingMode, fn func(uint8) (uint8, bool)) {
	s := &c.state
	if mode == decoder.Accumulator {
		out, carry := fn(s.A)
		s.A = out
		s.SetFlag(FlagC, carry)
		s.setZN(out)
		return
	}
	addr, _ := c.operand(mode)
	v := c.bus.Read(addr)
	out, carry := fn(v)
	c.bus.Write(addr, out)
	s.SetFlag(FlagC, carry)
	s.setZN(out)
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// branch resolves the relative target and, if taken, applies it along
// with the oops cycles a taken branch costs (spec.md §4.7/§8): one
// cycle for the branch itself, plus one more if it crosses a page.
// jumped mirrors taken: a not-taken branch leaves PC for Tick to
// advance by dop.Length as usual.
func (c *CPU) branch(dop decoder.DecodedOp, taken bool) (extra uint8, jumped bool) {
	if !taken {
		return 0, false
	}
	s := &c.state
	old := s.PC
	target, _ := c.operand(dop.Mode)
	extra = 1
	if !samePage(old+2, target) {
		extra++
	}
	s.PC = target
	return extra, true
}
