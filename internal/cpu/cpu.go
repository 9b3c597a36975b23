package cpu

import (
	"errors"
	"fmt"
	"io"

	"github.com/patchwork-emu/patchwork-dmg/internal/memory"
	"github.com/patchwork-emu/patchwork-dmg/internal/types"
	"github.com/patchwork-emu/patchwork-dmg/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the DMG CPU in Hz.
	ClockSpeed = 4194304
)

// ErrInvalidTarget is returned when a pair-scoped instruction is
// dispatched against a register that is not addressable as a pair half.
var ErrInvalidTarget = errors.New("cpu: invalid register target")

// CPU represents the DMG CPU. It owns the full 64 KiB address space and
// is mutated exclusively through Cycle and the load helpers; an external
// driver controls pacing by calling Cycle at whatever rate it chooses.
type CPU struct {
	// A is the accumulator, the arithmetic and logic focal register.
	A types.Register
	// SP is the stack pointer.
	SP uint16
	// PC is the program counter, it points to the next byte to fetch.
	PC uint16
	// IR is the instruction register. It holds the opcode byte just
	// fetched, as a debugging aid.
	IR uint16
	// MAR is the memory address register, staging the address of a
	// pending memory write.
	MAR uint16
	// MDR is the memory data register, staging the value of a pending
	// memory read or write.
	MDR uint16

	B, C types.Register
	D, E types.Register
	H, L types.Register

	BC *types.RegisterPair
	DE *types.RegisterPair
	HL *types.RegisterPair

	Flags Flags

	// Cycles counts clock cycles since construction. It only ever
	// increases.
	Cycles uint64

	memory *memory.Memory
	log    log.Logger
}

// New creates a zero-initialized CPU owning a zero-initialized memory.
func New(logger log.Logger) *CPU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	c := &CPU{
		memory: memory.New(logger),
		log:    logger,
	}
	// create register pairs
	c.BC = &types.RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &types.RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &types.RegisterPair{High: &c.H, Low: &c.L}

	return c
}

// Cycle executes exactly one fetch-decode-execute step. The opcode byte
// is consumed here; the handler consumes any operand bytes and adds the
// instruction's cycle cost. An error is returned only when a handler
// targets an invalid register, in which case no state beyond the fetch
// has been touched.
func (c *CPU) Cycle() error {
	c.IR = uint16(c.memory.Read(c.PC))
	c.PC++
	return InstructionSet[c.IR].fn(c)
}

// WriteBytes bulk-loads a program or data block into memory, rejecting
// the whole write if it would run past the end of the address space.
func (c *CPU) WriteBytes(values []byte, start int) error {
	return c.memory.WriteBytes(values, start)
}

// MemoryChecksum returns the xxhash digest of the memory image.
func (c *CPU) MemoryChecksum() uint64 {
	return c.memory.Checksum()
}

// Target selects which register a pair-scoped instruction operates on.
// Modelling the selection as a closed tag keeps the invalid cases (A and
// SP are not pair halves) representable and reportable.
type Target uint8

const (
	TargetB Target = iota
	TargetC
	TargetD
	TargetE
	TargetH
	TargetL
	TargetA
	TargetSP
)

var targetNames = map[Target]string{
	TargetB: "B", TargetC: "C", TargetD: "D", TargetE: "E",
	TargetH: "H", TargetL: "L", TargetA: "A", TargetSP: "SP",
}

// pairHalf resolves a Target to its register pair and half. The
// accumulator and the stack pointer are not addressable as pair halves.
func (c *CPU) pairHalf(target Target) (*types.RegisterPair, bool, error) {
	switch target {
	case TargetB:
		return c.BC, true, nil
	case TargetC:
		return c.BC, false, nil
	case TargetD:
		return c.DE, true, nil
	case TargetE:
		return c.DE, false, nil
	case TargetH:
		return c.HL, true, nil
	case TargetL:
		return c.HL, false, nil
	default:
		return nil, false, fmt.Errorf("%w: %s", ErrInvalidTarget, targetNames[target])
	}
}

// registerPointer returns the Register for the given 3-bit encoding used
// by the LD r, r' block of the opcode table.
func (c *CPU) registerPointer(index uint8) *types.Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("invalid register index: %d", index))
}

var registerNameMap = map[uint8]string{
	0: "B", 1: "C", 2: "D", 3: "E", 4: "H", 5: "L", 7: "A",
}

// DumpRegisters writes a human readable register summary, used by the
// operator monitor.
func (c *CPU) DumpRegisters(w io.Writer) {
	fmt.Fprintf(w, " A: %02x  F: %02x  BC: %04x  DE: %04x  HL: %04x\n",
		c.A, c.Flags.F(), c.BC.Uint16(), c.DE.Uint16(), c.HL.Uint16())
	fmt.Fprintf(w, " SP: %04x  PC: %04x  IR: %02x  MAR: %04x  MDR: %04x\n",
		c.SP, c.PC, c.IR, c.MAR, c.MDR)
	fmt.Fprintf(w, " cycles: %d  next: %s\n", c.Cycles, InstructionSet[c.memory.Read(c.PC)].Name())
}

var _ types.Stater = (*CPU)(nil)

func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.Flags.SetF(s.Read8())
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.IR = s.Read16()
	c.MAR = s.Read16()
	c.MDR = s.Read16()
	c.Cycles = s.Read64()
	c.memory.Load(s)
}

func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.Flags.F())
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.Write16(c.IR)
	s.Write16(c.MAR)
	s.Write16(c.MDR)
	s.Write64(c.Cycles)
	c.memory.Save(s)
}
