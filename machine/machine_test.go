package machine

import "testing"

// prgImage builds a 32 KiB PRG block with program bytes placed at
// CPU address 0x8000 (the start of the lower bank) and the reset
// vector pointing there.
func prgImage(program ...byte) [32768]byte {
	var data [32768]byte
	copy(data[:], program)
	data[0x7FFC] = 0x00 // reset vector low byte -> $8000
	data[0x7FFD] = 0x80 // reset vector high byte
	return data
}

func TestFromPrgImageResetsToProgramStart(t *testing.T) {
	m := FromPrgImage(prgImage(0xA9, 0x42)) // LDA #$42
	if m.CPUState().PC != 0x8000 {
		t.Fatalf("PC = %#04x, want 0x8000", m.CPUState().PC)
	}
	m.Tick()
	if m.CPUState().A != 0x42 {
		t.Errorf("A = %#02x, want 0x42", m.CPUState().A)
	}
}

func TestMachineReadWriteRoundTripsThroughLowMemory(t *testing.T) {
	m := FromPrgImage(prgImage())
	m.Write(0x0010, 0x99)
	if got := m.Read(0x0010); got != 0x99 {
		t.Errorf("Read(0x0010) = %#02x, want 0x99", got)
	}
	// mirrored at 0x0810
	if got := m.Read(0x0810); got != 0x99 {
		t.Errorf("Read(0x0810) = %#02x, want 0x99 (mirrored)", got)
	}
}

func TestMachineStackScenarioEndToEnd(t *testing.T) {
	m := FromPrgImage(prgImage(
		0xA9, 0x37, // LDA #$37
		0x48,       // PHA
		0xA9, 0x00, // LDA #$00
		0x68, // PLA
	))
	for i := 0; i < 4; i++ {
		m.Tick()
	}
	if m.CPUState().A != 0x37 {
		t.Errorf("A = %#02x, want 0x37", m.CPUState().A)
	}
}

func TestFromInesBytesRejectsTruncatedImage(t *testing.T) {
	_, err := FromInesBytes([]byte{'N', 'E', 'S'})
	if err == nil {
		t.Fatal("FromInesBytes on 3 bytes didn't return an error")
	}
}

func TestFromInesBytesBuildsRunnableMachine(t *testing.T) {
	data := make([]byte, 16+16384+8192)
	copy(data[0:4], "NES\x1A")
	data[4] = 1 // 1 PRG bank
	data[5] = 1 // 1 CHR bank
	prgStart := 16
	data[prgStart+0x3FFC] = 0x00
	data[prgStart+0x3FFD] = 0x80
	data[prgStart] = 0xA9 // LDA #$7B at $8000
	data[prgStart+1] = 0x7B

	m, err := FromInesBytes(data)
	if err != nil {
		t.Fatalf("FromInesBytes: %v", err)
	}
	m.Tick()
	if m.CPUState().A != 0x7B {
		t.Errorf("A = %#02x, want 0x7B", m.CPUState().A)
	}
	// single-bank cartridge mirrors into the upper half too.
	if got := m.Read(0xC000); got != 0xA9 {
		t.Errorf("Read(0xC000) = %#02x, want 0xA9 (mirrored upper bank)", got)
	}
}
