package cpu

import "github.com/patchwork-emu/patchwork-dmg/internal/types"

// rotateLeftAccumulator rotates the accumulator left by 1 bit. The most
// significant bit is copied to both the carry flag and the least
// significant bit.
//
//	RLCA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftAccumulator() {
	carry := c.A & types.Bit7
	c.A = c.A<<1 | carry>>7
	c.setFlags(false, false, false, carry == types.Bit7)
	c.Cycles += 4
}

// rotateRightAccumulator rotates the accumulator right by 1 bit. The
// least significant bit is copied to both the carry flag and the most
// significant bit.
//
//	RRCA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightAccumulator() {
	carry := c.A & types.Bit0
	c.A = c.A>>1 | carry<<7
	c.setFlags(false, false, false, carry == types.Bit0)
	c.Cycles += 4
}

// rotateLeftAccumulatorThroughCarry rotates the accumulator left by 1
// bit. The carry flag is copied to the least significant bit, and the
// most significant bit is copied to the carry flag.
//
//	RLA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftAccumulatorThroughCarry() {
	carry := c.A & types.Bit7
	c.A <<= 1
	if c.Flags.Carry {
		c.A |= types.Bit0
	}
	c.setFlags(false, false, false, carry == types.Bit7)
	c.Cycles += 4
}

// rotateRightAccumulatorThroughCarry rotates the accumulator right by 1
// bit. The carry flag is copied to the most significant bit, and the
// least significant bit is copied to the carry flag.
//
//	RRA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightAccumulatorThroughCarry() {
	carry := c.A&types.Bit0 == types.Bit0
	c.A >>= 1
	if c.Flags.Carry {
		c.A |= types.Bit7
	}
	c.setFlags(false, false, false, carry)
	c.Cycles += 4
}

func init() {
	DefineInstruction(0x07, "RLCA", func(c *CPU) error { c.rotateLeftAccumulator(); return nil })
	DefineInstruction(0x0F, "RRCA", func(c *CPU) error { c.rotateRightAccumulator(); return nil })
	DefineInstruction(0x17, "RLA", func(c *CPU) error { c.rotateLeftAccumulatorThroughCarry(); return nil })
	DefineInstruction(0x1F, "RRA", func(c *CPU) error { c.rotateRightAccumulatorThroughCarry(); return nil })
}
