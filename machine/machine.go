// Package machine wires a Cartridge, the CPU-side Mmu and the
// PPU/APU register windows into one runnable unit and drives the CPU
// loop. It is the top-level assembly point spec.md calls out in
// §4.8/§5: everything else in this module is a pure collaborator with
// no notion of the other pieces.
package machine

import (
	"fmt"

	"github.com/bdwalton/gintendo/apuregs"
	"github.com/bdwalton/gintendo/cartridge"
	"github.com/bdwalton/gintendo/cpu"
	"github.com/bdwalton/gintendo/ines"
	"github.com/bdwalton/gintendo/mmu"
	"github.com/bdwalton/gintendo/ppuregs"
)

// Machine owns one loaded cartridge and the CPU that runs against it.
type Machine struct {
	cart *cartridge.Cartridge
	ppu  *ppuregs.Registers
	apu  *apuregs.Registers
	mem  *mmu.LowerMemory
	bus  *mmu.Mmu
	cpu  *cpu.CPU
}

// New builds a Machine from an already-loaded cartridge.
func New(cart *cartridge.Cartridge) *Machine {
	m := &Machine{
		cart: cart,
		ppu:  ppuregs.New(),
		apu:  apuregs.New(),
		mem:  &mmu.LowerMemory{},
	}
	m.bus = mmu.New(m.mem, m.ppu, m.apu, cart)
	m.cpu = cpu.New(m.bus)
	return m
}

// FromInesBytes parses a complete iNES image and builds a Machine
// around it, per spec.md §6.1's load sequence.
func FromInesBytes(data []byte) (*Machine, error) {
	img, err := ines.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}
	cart, err := cartridge.New(img)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}
	return New(cart), nil
}

// FromPrgImage builds a Machine directly from a 32 KiB PRG block,
// bypassing the iNES container — a test-harness convenience spec.md
// §6.3 expects (load_prg(bytes)).
func FromPrgImage(data [32768]byte) *Machine {
	return New(cartridge.NewFromPrgImage(data))
}

// Tick runs exactly one CPU instruction.
func (m *Machine) Tick() {
	m.cpu.Tick()
}

// Reset re-runs the CPU's power-on reset sequence.
func (m *Machine) Reset() {
	m.cpu.Reset()
}

// NMI raises a non-maskable interrupt on the CPU.
func (m *Machine) NMI() {
	m.cpu.NMI()
}

// IRQ raises a maskable interrupt on the CPU.
func (m *Machine) IRQ() {
	m.cpu.IRQ()
}

// Read returns the byte the CPU would see at addr, for test-harness
// observation (spec.md §6.3 cpu_memory_read(addr)).
func (m *Machine) Read(addr uint16) uint8 {
	return m.bus.Read(addr)
}

// Write pokes a byte at addr through the CPU's memory map, for
// test-harness setup.
func (m *Machine) Write(addr uint16, val uint8) {
	m.bus.Write(addr, val)
}

// CPUState returns the CPU's register file (spec.md §6.3 cpu_state()).
func (m *Machine) CPUState() *cpu.State {
	return m.cpu.State()
}

// Cartridge returns the loaded cartridge, mostly for diagnostics.
func (m *Machine) Cartridge() *cartridge.Cartridge {
	return m.cart
}

func (m *Machine) String() string {
	return fmt.Sprintf("machine{%s %s}", m.cart, m.cpu)
}
