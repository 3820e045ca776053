package mmu

import (
	"testing"

	"github.com/bdwalton/gintendo/apuregs"
	"github.com/bdwalton/gintendo/cartridge"
	"github.com/bdwalton/gintendo/ppuregs"
)

func newTestMmu(t *testing.T) (*Mmu, *ppuregs.Registers, *apuregs.Registers) {
	t.Helper()

	var data [2 * 16384]byte
	c := cartridge.NewFromPrgImage(data)

	ppu := ppuregs.New()
	apu := apuregs.New()
	m := New(&LowerMemory{}, ppu, apu, c)
	return m, ppu, apu
}

func TestLowMemoryMirroring(t *testing.T) {
	m, _, _ := newTestMmu(t)

	for a := uint16(0); a <= 0x07FF; a++ {
		m.Write(a, uint8(a))
	}

	for base := uint16(0); base <= 0x1800; base += 0x0800 {
		for a := uint16(0); a <= 0x07FF; a++ {
			if got := m.Read(base + a); got != uint8(a) {
				t.Fatalf("Read(%#04x) = %#02x, want %#02x", base+a, got, uint8(a))
			}
		}
	}
}

func TestPpuRegisterMirroring(t *testing.T) {
	m, ppu, _ := newTestMmu(t)

	m.Write(0x2003, 0x55)
	if got := ppu.Read(3); got != 0x55 {
		t.Fatalf("direct ppu.Read(3) = %#02x, want 0x55", got)
	}

	for base := uint16(0x2000); base <= 0x3FF8; base += 8 {
		if got := m.Read(base + 3); got != 0x55 {
			t.Errorf("Read(%#04x) = %#02x, want 0x55", base+3, got)
		}
	}
}

func TestApuWindow(t *testing.T) {
	m, _, apu := newTestMmu(t)

	m.Write(0x4000, 0x10)
	m.Write(0x4017, 0x20)

	if got := apu.Read(0); got != 0x10 {
		t.Errorf("apu.Read(0) = %#02x, want 0x10", got)
	}
	if got := apu.Read(23); got != 0x20 {
		t.Errorf("apu.Read(23) = %#02x, want 0x20", got)
	}
}

func TestExpansionAndSRAMReadsAreZero(t *testing.T) {
	m, _, _ := newTestMmu(t)

	m.Write(0x4020, 0xFF) // ignored: expansion
	m.Write(0x6000, 0xFF) // ignored: battery-backed RAM

	if got := m.Read(0x4020); got != 0 {
		t.Errorf("Read(0x4020) = %#02x, want 0", got)
	}
	if got := m.Read(0x6000); got != 0 {
		t.Errorf("Read(0x6000) = %#02x, want 0", got)
	}
}

func TestBankSelectionTwoBanksUsesBank0AndBank1(t *testing.T) {
	m, _, _ := newTestMmu(t)

	if got := m.Read(0xFFFC); got != m.cart.ReadPrg(1, 0x3FFC) {
		t.Errorf("0xFFFC should read from bank 1 of a two-bank cartridge")
	}
	if got := m.Read(0x8000); got != m.cart.ReadPrg(0, 0) {
		t.Errorf("0x8000 should read from bank 0")
	}
}

func TestBankSelectionSingleBankMirrorsBothHalves(t *testing.T) {
	var data [16384]byte
	data[0] = 0x42
	data[0x3FFC] = 0x99 // offset of 0xFFFC within the 16 KiB bank

	c := cartridge.NewSingleBank(data)
	ppu, apu := ppuregs.New(), apuregs.New()
	m := New(&LowerMemory{}, ppu, apu, c)

	if got := m.Read(0x8000); got != 0x42 {
		t.Errorf("Read(0x8000) = %#02x, want 0x42 (lower half of mirrored bank)", got)
	}
	if got := m.Read(0xC000); got != 0x42 {
		t.Errorf("Read(0xC000) = %#02x, want 0x42 (upper half mirrors the same bank)", got)
	}
	if got := m.Read(0xFFFC); got != 0x99 {
		t.Errorf("Read(0xFFFC) = %#02x, want 0x99 (reset vector readable with one PRG bank)", got)
	}
}
