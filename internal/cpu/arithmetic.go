package cpu

import (
	"github.com/patchwork-emu/patchwork-dmg/internal/types"
)

// incrementPair increments the given RegisterPair by 1, wrapping at
// 0xFFFF.
//
//	INC nn
//	nn = BC, DE, HL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Not affected.
//	H - Not affected.
//	C - Not affected.
func (c *CPU) incrementPair(pair *types.RegisterPair) {
	pair.SetUint16(pair.Uint16() + 1)
	c.Cycles += 8
}

// decrementPair decrements the given RegisterPair by 1, wrapping at 0.
//
//	DEC nn
//	nn = BC, DE, HL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Not affected.
//	H - Not affected.
//	C - Not affected.
func (c *CPU) decrementPair(pair *types.RegisterPair) {
	pair.SetUint16(pair.Uint16() - 1)
	c.Cycles += 8
}

// incrementHalf increments the BCD-encoded half-register selected by the
// given target. The byte is decoded to decimal, incremented modulo 100
// and re-encoded.
//
//	INC n
//	n = B, C, D, E, H, L
//
// Flags affected:
//
//	Z - Set if the new decimal value is zero.
//	N - Reset.
//	H - Set if the units digit wrapped past 9.
//	C - Not affected.
func (c *CPU) incrementHalf(target Target) error {
	pair, high, err := c.pairHalf(target)
	if err != nil {
		return err
	}
	old := *pair.Low
	if high {
		old = *pair.High
	}
	dec := (types.BCDToDecimal(old) + 1) % 100
	if high {
		err = pair.SetHighBCD(dec)
	} else {
		err = pair.SetLowBCD(dec)
	}
	if err != nil {
		return err
	}
	c.setFlags(dec == 0, false, old&0x0F == 0x09, c.Flags.Carry)
	c.Cycles += 4
	return nil
}

// decrementHalf decrements the BCD-encoded half-register selected by the
// given target, wrapping from 0 to 99.
//
//	DEC n
//	n = B, C, D, E, H, L
//
// Flags affected:
//
//	Z - Set if the new decimal value is zero.
//	N - Set.
//	H - Set if the units digit borrowed from the tens digit.
//	C - Not affected.
func (c *CPU) decrementHalf(target Target) error {
	pair, high, err := c.pairHalf(target)
	if err != nil {
		return err
	}
	old := *pair.Low
	if high {
		old = *pair.High
	}
	dec := (types.BCDToDecimal(old) + 99) % 100
	if high {
		err = pair.SetHighBCD(dec)
	} else {
		err = pair.SetLowBCD(dec)
	}
	if err != nil {
		return err
	}
	c.setFlags(dec == 0, true, old&0x0F == 0x00, c.Flags.Carry)
	c.Cycles += 4
	return nil
}

// addHL adds the given 16-bit value to the HL RegisterPair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(value uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(value)
	c.setFlags(c.Flags.Zero, false, hl&0xFFF+value&0xFFF > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
	c.Cycles += 8
}

func init() {
	DefineInstruction(0x03, "INC BC", func(c *CPU) error { c.incrementPair(c.BC); return nil })
	DefineInstruction(0x04, "INC B", func(c *CPU) error { return c.incrementHalf(TargetB) })
	DefineInstruction(0x05, "DEC B", func(c *CPU) error { return c.decrementHalf(TargetB) })
	DefineInstruction(0x09, "ADD HL, BC", func(c *CPU) error { c.addHL(c.BC.Uint16()); return nil })
	DefineInstruction(0x0B, "DEC BC", func(c *CPU) error { c.decrementPair(c.BC); return nil })
	DefineInstruction(0x0C, "INC C", func(c *CPU) error { return c.incrementHalf(TargetC) })
	DefineInstruction(0x0D, "DEC C", func(c *CPU) error { return c.decrementHalf(TargetC) })
	DefineInstruction(0x13, "INC DE", func(c *CPU) error { c.incrementPair(c.DE); return nil })
	DefineInstruction(0x14, "INC D", func(c *CPU) error { return c.incrementHalf(TargetD) })
	DefineInstruction(0x15, "DEC D", func(c *CPU) error { return c.decrementHalf(TargetD) })
	DefineInstruction(0x19, "ADD HL, DE", func(c *CPU) error { c.addHL(c.DE.Uint16()); return nil })
	DefineInstruction(0x1B, "DEC DE", func(c *CPU) error { c.decrementPair(c.DE); return nil })
	DefineInstruction(0x1C, "INC E", func(c *CPU) error { return c.incrementHalf(TargetE) })
	DefineInstruction(0x1D, "DEC E", func(c *CPU) error { return c.decrementHalf(TargetE) })
	DefineInstruction(0x23, "INC HL", func(c *CPU) error { c.incrementPair(c.HL); return nil })
	DefineInstruction(0x24, "INC H", func(c *CPU) error { return c.incrementHalf(TargetH) })
	DefineInstruction(0x25, "DEC H", func(c *CPU) error { return c.decrementHalf(TargetH) })
	DefineInstruction(0x29, "ADD HL, HL", func(c *CPU) error { c.addHL(c.HL.Uint16()); return nil })
	DefineInstruction(0x2B, "DEC HL", func(c *CPU) error { c.decrementPair(c.HL); return nil })
	DefineInstruction(0x2C, "INC L", func(c *CPU) error { return c.incrementHalf(TargetL) })
	DefineInstruction(0x2D, "DEC L", func(c *CPU) error { return c.decrementHalf(TargetL) })
	DefineInstruction(0x33, "INC SP", func(c *CPU) error {
		c.SP++
		c.Cycles += 8
		return nil
	})
	DefineInstruction(0x39, "ADD HL, SP", func(c *CPU) error { c.addHL(c.SP); return nil })
	DefineInstruction(0x3B, "DEC SP", func(c *CPU) error {
		c.SP--
		c.Cycles += 8
		return nil
	})
	// INC A and DEC A surface the invalid-target error: the accumulator
	// is not addressable as a pair half.
	DefineInstruction(0x3C, "INC A", func(c *CPU) error { return c.incrementHalf(TargetA) })
	DefineInstruction(0x3D, "DEC A", func(c *CPU) error { return c.decrementHalf(TargetA) })
}
