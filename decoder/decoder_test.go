package decoder

import "testing"

func TestAllEntriesRespectLengthAndCycleBounds(t *testing.T) {
	for opcode, d := range table {
		if d.Length < 1 || d.Length > 3 {
			t.Errorf("opcode %#02x: Length = %d, want 1..3", opcode, d.Length)
		}
		if d.BaseCycles < 2 || d.BaseCycles > 7 {
			t.Errorf("opcode %#02x: BaseCycles = %d, want 2..7", opcode, d.BaseCycles)
		}
	}
}

func TestTableSize(t *testing.T) {
	if len(table) != 151 {
		t.Errorf("len(table) = %d, want 151", len(table))
	}
}

func TestKnownOpcodes(t *testing.T) {
	cases := []struct {
		opcode byte
		want   DecodedOp
	}{
		{0xA9, DecodedOp{LDA, Immediate, 2, 2, None}},
		{0x20, DecodedOp{JSR, Absolute, 3, 6, None}},
		{0x6C, DecodedOp{JMP, Indirect, 3, 5, None}},
		{0x90, DecodedOp{BCC, Relative, 2, 2, BranchTaken}},
		{0x71, DecodedOp{ADC, IndirectY, 2, 5, PageBoundaryCrossed}},
		{0x00, DecodedOp{BRK, Implied, 2, 7, None}},
		{0x60, DecodedOp{RTS, Implied, 1, 6, None}},
	}

	for _, tc := range cases {
		got, err := Decode(tc.opcode)
		if err != nil {
			t.Fatalf("Decode(%#02x): unexpected error %v", tc.opcode, err)
		}
		if got != tc.want {
			t.Errorf("Decode(%#02x) = %+v, want %+v", tc.opcode, got, tc.want)
		}
	}
}

func TestUnknownOpcode(t *testing.T) {
	// 0xFF is not a documented opcode.
	if _, err := Decode(0xFF); err == nil {
		t.Errorf("Decode(0xFF) didn't return an error")
	}
}

func TestInstructionAndAddressingModeStringers(t *testing.T) {
	if LDA.String() != "LDA" {
		t.Errorf("LDA.String() = %q, want LDA", LDA.String())
	}
	if AbsoluteX.String() != "AbsoluteX" {
		t.Errorf("AbsoluteX.String() = %q, want AbsoluteX", AbsoluteX.String())
	}
}
