// Package decoder implements the pure opcode-byte -> DecodedOp
// mapping for the documented 6502 instruction set. It holds no state
// and has no side effects; see spec.md §4.7.
package decoder

import "fmt"

// Instruction identifies a 6502 mnemonic.
type Instruction uint8

const (
	ADC Instruction = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
)

var instructionNames = [...]string{
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL",
	"BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX", "CPY",
	"DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR", "LDA",
	"LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
}

func (i Instruction) String() string {
	if int(i) >= len(instructionNames) {
		return fmt.Sprintf("Instruction(%d)", i)
	}
	return instructionNames[i]
}

// AddressingMode identifies how an instruction's operand is located.
type AddressingMode uint8

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

var addressingModeNames = [...]string{
	"Implied", "Accumulator", "Immediate", "ZeroPage", "ZeroPageX",
	"ZeroPageY", "Absolute", "AbsoluteX", "AbsoluteY", "Indirect",
	"IndirectX", "IndirectY", "Relative",
}

func (m AddressingMode) String() string {
	if int(m) >= len(addressingModeNames) {
		return fmt.Sprintf("AddressingMode(%d)", m)
	}
	return addressingModeNames[m]
}

// OopsClass is advisory for the cycle counter: it names why an
// instruction might cost more than its base cycle count.
type OopsClass uint8

const (
	None OopsClass = iota
	PageBoundaryCrossed
	BranchTaken
)

// DecodedOp is everything the CPU core needs to execute one opcode
// byte: which instruction, which addressing mode, how many bytes it
// consumes, its base cycle cost, and its oops class.
type DecodedOp struct {
	Instruction Instruction
	Mode        AddressingMode
	Length      uint8 // 1, 2 or 3 bytes including the opcode byte itself
	BaseCycles  uint8 // 2..7
	Oops        OopsClass
}

// UnknownOpcodeError is returned by Decode for any of the 6502's
// illegal/undocumented opcodes, which this core does not implement.
type UnknownOpcodeError struct {
	Opcode byte
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("decoder: unknown opcode %#02x", e.Opcode)
}

func op(inst Instruction, mode AddressingMode, length, cycles uint8, oops OopsClass) DecodedOp {
	return DecodedOp{Instruction: inst, Mode: mode, Length: length, BaseCycles: cycles, Oops: oops}
}

// table is the flat opcode -> DecodedOp map for the full documented
// 6502 instruction set (151 entries, per spec.md §4.7).
var table = map[byte]DecodedOp{
	0x69: op(ADC, Immediate, 2, 2, None),
	0x65: op(ADC, ZeroPage, 2, 3, None),
	0x75: op(ADC, ZeroPageX, 2, 4, None),
	0x6D: op(ADC, Absolute, 3, 4, None),
	0x7D: op(ADC, AbsoluteX, 3, 4, PageBoundaryCrossed),
	0x79: op(ADC, AbsoluteY, 3, 4, PageBoundaryCrossed),
	0x61: op(ADC, IndirectX, 2, 6, None),
	0x71: op(ADC, IndirectY, 2, 5, PageBoundaryCrossed),

	0x29: op(AND, Immediate, 2, 2, None),
	0x25: op(AND, ZeroPage, 2, 3, None),
	0x35: op(AND, ZeroPageX, 2, 4, None),
	0x2D: op(AND, Absolute, 3, 4, None),
	0x3D: op(AND, AbsoluteX, 3, 4, PageBoundaryCrossed),
	0x39: op(AND, AbsoluteY, 3, 4, PageBoundaryCrossed),
	0x21: op(AND, IndirectX, 2, 6, None),
	0x31: op(AND, IndirectY, 2, 5, PageBoundaryCrossed),

	0x0A: op(ASL, Accumulator, 1, 2, None),
	0x06: op(ASL, ZeroPage, 2, 5, None),
	0x16: op(ASL, ZeroPageX, 2, 6, None),
	0x0E: op(ASL, Absolute, 3, 6, None),
	0x1E: op(ASL, AbsoluteX, 3, 7, None),

	0x90: op(BCC, Relative, 2, 2, BranchTaken),
	0xB0: op(BCS, Relative, 2, 2, BranchTaken),
	0xF0: op(BEQ, Relative, 2, 2, BranchTaken),

	0x24: op(BIT, ZeroPage, 2, 3, None),
	0x2C: op(BIT, Absolute, 3, 4, None),

	0x30: op(BMI, Relative, 2, 2, BranchTaken),
	0xD0: op(BNE, Relative, 2, 2, BranchTaken),
	0x10: op(BPL, Relative, 2, 2, BranchTaken),

	0x00: op(BRK, Implied, 2, 7, None),

	0x50: op(BVC, Relative, 2, 2, BranchTaken),
	0x70: op(BVS, Relative, 2, 2, BranchTaken),

	0x18: op(CLC, Implied, 1, 2, None),
	0xD8: op(CLD, Implied, 1, 2, None),
	0x58: op(CLI, Implied, 1, 2, None),
	0xB8: op(CLV, Implied, 1, 2, None),

	0xC9: op(CMP, Immediate, 2, 2, None),
	0xC5: op(CMP, ZeroPage, 2, 3, None),
	0xD5: op(CMP, ZeroPageX, 2, 4, None),
	0xCD: op(CMP, Absolute, 3, 4, None),
	0xDD: op(CMP, AbsoluteX, 3, 4, PageBoundaryCrossed),
	0xD9: op(CMP, AbsoluteY, 3, 4, PageBoundaryCrossed),
	0xC1: op(CMP, IndirectX, 2, 6, None),
	0xD1: op(CMP, IndirectY, 2, 5, PageBoundaryCrossed),

	0xE0: op(CPX, Immediate, 2, 2, None),
	0xE4: op(CPX, ZeroPage, 2, 3, None),
	0xEC: op(CPX, Absolute, 3, 4, None),

	0xC0: op(CPY, Immediate, 2, 2, None),
	0xC4: op(CPY, ZeroPage, 2, 3, None),
	0xCC: op(CPY, Absolute, 3, 4, None),

	0xC6: op(DEC, ZeroPage, 2, 5, None),
	0xD6: op(DEC, ZeroPageX, 2, 6, None),
	0xCE: op(DEC, Absolute, 3, 6, None),
	0xDE: op(DEC, AbsoluteX, 3, 7, None),

	0xCA: op(DEX, Implied, 1, 2, None),
	0x88: op(DEY, Implied, 1, 2, None),

	0x49: op(EOR, Immediate, 2, 2, None),
	0x45: op(EOR, ZeroPage, 2, 3, None),
	0x55: op(EOR, ZeroPageX, 2, 4, None),
	0x4D: op(EOR, Absolute, 3, 4, None),
	0x5D: op(EOR, AbsoluteX, 3, 4, PageBoundaryCrossed),
	0x59: op(EOR, AbsoluteY, 3, 4, PageBoundaryCrossed),
	0x41: op(EOR, IndirectX, 2, 6, None),
	0x51: op(EOR, IndirectY, 2, 5, PageBoundaryCrossed),

	0xE6: op(INC, ZeroPage, 2, 5, None),
	0xF6: op(INC, ZeroPageX, 2, 6, None),
	0xEE: op(INC, Absolute, 3, 6, None),
	0xFE: op(INC, AbsoluteX, 3, 7, None),

	0xE8: op(INX, Implied, 1, 2, None),
	0xC8: op(INY, Implied, 1, 2, None),

	0x4C: op(JMP, Absolute, 3, 3, None),
	0x6C: op(JMP, Indirect, 3, 5, None),

	0x20: op(JSR, Absolute, 3, 6, None),

	0xA9: op(LDA, Immediate, 2, 2, None),
	0xA5: op(LDA, ZeroPage, 2, 3, None),
	0xB5: op(LDA, ZeroPageX, 2, 4, None),
	0xAD: op(LDA, Absolute, 3, 4, None),
	0xBD: op(LDA, AbsoluteX, 3, 4, PageBoundaryCrossed),
	0xB9: op(LDA, AbsoluteY, 3, 4, PageBoundaryCrossed),
	0xA1: op(LDA, IndirectX, 2, 6, None),
	0xB1: op(LDA, IndirectY, 2, 5, PageBoundaryCrossed),

	0xA2: op(LDX, Immediate, 2, 2, None),
	0xA6: op(LDX, ZeroPage, 2, 3, None),
	0xB6: op(LDX, ZeroPageY, 2, 4, None),
	0xAE: op(LDX, Absolute, 3, 4, None),
	0xBE: op(LDX, AbsoluteY, 3, 4, PageBoundaryCrossed),

	0xA0: op(LDY, Immediate, 2, 2, None),
	0xA4: op(LDY, ZeroPage, 2, 3, None),
	0xB4: op(LDY, ZeroPageX, 2, 4, None),
	0xAC: op(LDY, Absolute, 3, 4, None),
	0xBC: op(LDY, AbsoluteX, 3, 4, PageBoundaryCrossed),

	0x4A: op(LSR, Accumulator, 1, 2, None),
	0x46: op(LSR, ZeroPage, 2, 5, None),
	0x56: op(LSR, ZeroPageX, 2, 6, None),
	0x4E: op(LSR, Absolute, 3, 6, None),
	0x5E: op(LSR, AbsoluteX, 3, 7, None),

	0xEA: op(NOP, Implied, 1, 2, None),

	0x09: op(ORA, Immediate, 2, 2, None),
	0x05: op(ORA, ZeroPage, 2, 3, None),
	0x15: op(ORA, ZeroPageX, 2, 4, None),
	0x0D: op(ORA, Absolute, 3, 4, None),
	0x1D: op(ORA, AbsoluteX, 3, 4, PageBoundaryCrossed),
	0x19: op(ORA, AbsoluteY, 3, 4, PageBoundaryCrossed),
	0x01: op(ORA, IndirectX, 2, 6, None),
	0x11: op(ORA, IndirectY, 2, 5, PageBoundaryCrossed),

	0x48: op(PHA, Implied, 1, 3, None),
	0x08: op(PHP, Implied, 1, 3, None),
	0x68: op(PLA, Implied, 1, 4, None),
	0x28: op(PLP, Implied, 1, 4, None),

	0x2A: op(ROL, Accumulator, 1, 2, None),
	0x26: op(ROL, ZeroPage, 2, 5, None),
	0x36: op(ROL, ZeroPageX, 2, 6, None),
	0x2E: op(ROL, Absolute, 3, 6, None),
	0x3E: op(ROL, AbsoluteX, 3, 7, None),

	0x6A: op(ROR, Accumulator, 1, 2, None),
	0x66: op(ROR, ZeroPage, 2, 5, None),
	0x76: op(ROR, ZeroPageX, 2, 6, None),
	0x6E: op(ROR, Absolute, 3, 6, None),
	0x7E: op(ROR, AbsoluteX, 3, 7, None),

	0x40: op(RTI, Implied, 1, 6, None),
	0x60: op(RTS, Implied, 1, 6, None),

	0xE9: op(SBC, Immediate, 2, 2, None),
	0xE5: op(SBC, ZeroPage, 2, 3, None),
	0xF5: op(SBC, ZeroPageX, 2, 4, None),
	0xED: op(SBC, Absolute, 3, 4, None),
	0xFD: op(SBC, AbsoluteX, 3, 4, PageBoundaryCrossed),
	0xF9: op(SBC, AbsoluteY, 3, 4, PageBoundaryCrossed),
	0xE1: op(SBC, IndirectX, 2, 6, None),
	0xF1: op(SBC, IndirectY, 2, 5, PageBoundaryCrossed),

	0x38: op(SEC, Implied, 1, 2, None),
	0xF8: op(SED, Implied, 1, 2, None),
	0x78: op(SEI, Implied, 1, 2, None),

	0x85: op(STA, ZeroPage, 2, 3, None),
	0x95: op(STA, ZeroPageX, 2, 4, None),
	0x8D: op(STA, Absolute, 3, 4, None),
	0x9D: op(STA, AbsoluteX, 3, 5, None),
	0x99: op(STA, AbsoluteY, 3, 5, None),
	0x81: op(STA, IndirectX, 2, 6, None),
	0x91: op(STA, IndirectY, 2, 6, None),

	0x86: op(STX, ZeroPage, 2, 3, None),
	0x96: op(STX, ZeroPageY, 2, 4, None),
	0x8E: op(STX, Absolute, 3, 4, None),

	0x84: op(STY, ZeroPage, 2, 3, None),
	0x94: op(STY, ZeroPageX, 2, 4, None),
	0x8C: op(STY, Absolute, 3, 4, None),

	0xAA: op(TAX, Implied, 1, 2, None),
	0xA8: op(TAY, Implied, 1, 2, None),
	0xBA: op(TSX, Implied, 1, 2, None),
	0x8A: op(TXA, Implied, 1, 2, None),
	0x9A: op(TXS, Implied, 1, 2, None),
	0x98: op(TYA, Implied, 1, 2, None),
}

// Decode maps one opcode byte to its DecodedOp. An opcode outside the
// documented instruction set returns an *UnknownOpcodeError.
func Decode(opcode byte) (DecodedOp, error) {
	d, ok := table[opcode]
	if !ok {
		return DecodedOp{}, &UnknownOpcodeError{Opcode: opcode}
	}
	return d, nil
}
