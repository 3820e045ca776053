// Package cartridge models the PRG/CHR banks owned by a loaded NES
// cartridge. Only mapper 0 (NROM, static bank assignment) is
// supported; the mmu package is responsible for deciding which PRG
// bank is visible at which CPU address.
package cartridge

import (
	"fmt"

	"github.com/bdwalton/gintendo/ines"
)

const (
	prgBankSize = 16384
	chrBankSize = 8192
)

// Cartridge owns the PRG and CHR banks read from an iNES image, plus
// the header metadata the MMU and a future PPU need.
type Cartridge struct {
	header ines.Header
	prg    []ines.PrgBank
	chr    []ines.ChrBank
}

// New builds a Cartridge from a fully parsed iNES image.
func New(img *ines.Image) (*Cartridge, error) {
	if len(img.Prg) == 0 {
		return nil, fmt.Errorf("cartridge: image has zero PRG banks")
	}
	return &Cartridge{header: img.Header, prg: img.Prg, chr: img.Chr}, nil
}

// NewFromPrgImage builds a two-bank (32 KiB) cartridge directly from
// a raw byte block, for unit tests that want to hand-assemble PRG
// contents without going through the iNES container format.
func NewFromPrgImage(data [2 * prgBankSize]byte) *Cartridge {
	var bank0, bank1 ines.PrgBank
	copy(bank0[:], data[:prgBankSize])
	copy(bank1[:], data[prgBankSize:])

	return &Cartridge{
		header: ines.Header{PrgBanks: 2, ChrBanks: 1},
		prg:    []ines.PrgBank{bank0, bank1},
		chr:    []ines.ChrBank{{}},
	}
}

// NewSingleBank builds a one-bank (16 KiB) cartridge directly from a
// raw byte block, for tests exercising the Mmu's single-bank mirroring
// rule (spec.md §4.6).
func NewSingleBank(data [prgBankSize]byte) *Cartridge {
	var bank ines.PrgBank
	copy(bank[:], data[:])

	return &Cartridge{
		header: ines.Header{PrgBanks: 1, ChrBanks: 1},
		prg:    []ines.PrgBank{bank},
		chr:    []ines.ChrBank{{}},
	}
}

// ReadPrg reads one byte from bank bankIndex at offset. An
// out-of-range bank is a wiring bug and panics.
func (c *Cartridge) ReadPrg(bankIndex int, offset uint16) uint8 {
	c.checkBank(bankIndex)
	return c.prg[bankIndex][offset]
}

// WritePrg writes one byte to bank bankIndex at offset. Real NROM
// cartridges are read-only; this exists so test harnesses can poke
// PRG contents symmetrically with ReadPrg.
func (c *Cartridge) WritePrg(bankIndex int, offset uint16, val uint8) {
	c.checkBank(bankIndex)
	c.prg[bankIndex][offset] = val
}

func (c *Cartridge) checkBank(bankIndex int) {
	if bankIndex < 0 || bankIndex >= len(c.prg) {
		panic(fmt.Sprintf("cartridge: PRG bank index %d out of range [0, %d)", bankIndex, len(c.prg)))
	}
}

// PrgBankCount returns how many 16 KiB PRG banks the cartridge has.
func (c *Cartridge) PrgBankCount() int {
	return len(c.prg)
}

// ChrBankCount returns how many 8 KiB CHR banks the cartridge has (at
// least one, even for CHR-RAM boards).
func (c *Cartridge) ChrBankCount() int {
	return len(c.chr)
}

// Mirroring returns the cartridge's nametable mirroring mode, read
// from the iNES header for a future PPU to consume.
func (c *Cartridge) Mirroring() ines.Mirroring {
	return c.header.Mirroring
}

// ChrBank returns a copy of the CHR bank at index i, for a PPU
// collaborator. Index 0 always exists.
func (c *Cartridge) ChrBank(i int) ines.ChrBank {
	if i < 0 || i >= len(c.chr) {
		panic(fmt.Sprintf("cartridge: CHR bank index %d out of range [0, %d)", i, len(c.chr)))
	}
	return c.chr[i]
}

func (c *Cartridge) String() string {
	return fmt.Sprintf("cartridge{%s}", c.header)
}
