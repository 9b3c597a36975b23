package cpu

import (
	"fmt"
)

type Instruction struct {
	name string
	fn   func(*CPU) error
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// InstructionSet is the 256-entry dispatch table, indexed by opcode byte.
// Every entry is populated: opcodes without a handler hold an explicit
// unimplemented marker so that missing coverage stays visible.
var InstructionSet = unimplementedSet()

// DefineInstruction defines the instruction in the InstructionSet with
// the provided opcode, replacing the unimplemented marker.
func DefineInstruction(opcode uint8, name string, fn func(*CPU) error) {
	InstructionSet[opcode] = Instruction{
		name: name,
		fn:   fn,
	}
}

func unimplementedSet() [256]Instruction {
	var set [256]Instruction
	for i := range set {
		opcode := uint8(i)
		set[i] = Instruction{
			name: fmt.Sprintf("UNIMPLEMENTED %#02x", opcode),
			fn: func(c *CPU) error {
				// Unrecognized opcodes cost a fetch and nothing else.
				c.log.Debugf("unimplemented opcode %#02x at %#04x", opcode, c.PC-1)
				c.Cycles += 4
				return nil
			},
		}
	}
	return set
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) error {
		c.Cycles += 4
		return nil
	})
	DefineInstruction(0x2F, "CPL", func(c *CPU) error {
		c.A = 0xFF ^ c.A
		c.Flags.Subtract = true
		c.Flags.HalfCarry = true
		c.Cycles += 4
		return nil
	})
	DefineInstruction(0x37, "SCF", func(c *CPU) error {
		c.Flags.Carry = true
		c.Flags.Subtract = false
		c.Flags.HalfCarry = false
		c.Cycles += 4
		return nil
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU) error {
		c.Flags.Carry = !c.Flags.Carry
		c.Flags.Subtract = false
		c.Flags.HalfCarry = false
		c.Cycles += 4
		return nil
	})
}
