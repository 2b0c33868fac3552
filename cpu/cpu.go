// Package cpu implements a cycle-approximate MOS 6502: opcode decode,
// micro-operation sequencing, and the datapath those micro-ops execute
// against. See the package-level documentation on Chip for the CPU loop
// itself.
package cpu

import (
	"fmt"

	"github.com/sixfiveohtwo/mos6502/memory"
)

// InvalidCPUState is the error type of Init's error result. No ChipDef
// currently produces it: a nil ChipDef or nil Ram is replaced with
// defaults, so Init always succeeds.
type InvalidCPUState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid cpu state: %s", e.Reason)
}

// ChipDef configures a new Chip. It exists mainly so callers can supply a
// pre-seeded memory.Memory; a zero ChipDef gets a fresh, zeroed one.
type ChipDef struct {
	// Ram is the memory image the Chip will execute against. If nil, a
	// fresh zeroed 64 KiB image is allocated.
	Ram *memory.Memory
}

// Chip is the MOS 6502 datapath: memory, registers, and the two
// transient latches (addr_bus, data_bus) micro-ops communicate through
// within one instruction. Their values are unspecified across
// instruction boundaries; no micro-op may assume they survive a fetch.
type Chip struct {
	Mem *memory.Memory
	Reg Registers

	addrBus uint16
	dataBus uint8

	cycles uint64
}

// Init builds a Chip from the given ChipDef in power-on state: A, X, Y
// zeroed, S at 0xFF, PC at 0, every flag cleared, and the cycle counter
// at 1 (the constructor's own first, implicit cycle; see DESIGN.md for
// why the counter doesn't start at 0).
func Init(def *ChipDef) (*Chip, error) {
	if def == nil {
		def = &ChipDef{}
	}
	ram := def.Ram
	if ram == nil {
		ram = memory.New()
	}
	return &Chip{
		Mem:    ram,
		Reg:    NewRegisters(),
		cycles: 1,
	}, nil
}

// NewChip returns a Chip over a fresh, zeroed 64 KiB memory image. It
// never fails and is the common case; Init exists for callers that want
// to supply their own memory.Memory.
func NewChip() *Chip {
	c, _ := Init(nil)
	return c
}

// ReadByte is the harness's unconditional read façade.
func (c *Chip) ReadByte(addr uint16) uint8 {
	return c.Mem.Read(addr)
}

// WriteByte is the harness's unconditional write façade.
func (c *Chip) WriteByte(addr uint16, val uint8) {
	c.Mem.Write(addr, val)
}

// Registers returns a live pointer to the architectural register state,
// for both reading post-conditions and seeding pre-conditions in tests.
func (c *Chip) Registers() *Registers {
	return &c.Reg
}

// Cycles returns the running cycle count. It only advances inside
// Step() and is safe to read any time no Step() is in flight.
func (c *Chip) Cycles() uint64 {
	return c.cycles
}

// Step executes exactly one instruction: fetch the opcode at PC
// (advancing PC), decode it into a micro-op sequence, and execute that
// sequence in order. The cycle counter increases by one per micro-op.
// Unknown opcodes decode to an empty sequence and are charged one cycle
// for the fetch; Step never fails and never panics on any input byte.
func (c *Chip) Step() {
	opcode := c.Mem.Read(c.Reg.PC)
	c.Reg.PC++
	seq := c.Sequence(opcode)
	if len(seq) == 0 {
		c.cycles++
	}
	for _, op := range seq {
		c.execute(op)
		c.cycles++
	}
}

// Run repeatedly calls Step until the byte at PC is 0x00 (BRK), the
// external harness's conventional halt marker. The BRK opcode itself is
// not executed by Run.
func (c *Chip) Run() {
	for c.Mem.Read(c.Reg.PC) != 0x00 {
		c.Step()
	}
}
