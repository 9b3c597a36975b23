package cpu

import "github.com/patchwork-emu/patchwork-dmg/internal/types"

// Flags holds the four condition flags of the CPU. Every instruction that
// documents an effect on a flag recomputes it from scratch; instructions
// that don't leave it untouched.
type Flags struct {
	// Zero is set when the result of an operation is 0. (Z)
	Zero bool
	// Subtract is set when the last operation was a subtraction, for BCD. (N)
	Subtract bool
	// HalfCarry is set on a carry out of the low nibble, for BCD. (H)
	HalfCarry bool
	// Carry is set on a carry out of the high bit. (C)
	Carry bool
}

// setFlags sets all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.Flags = Flags{
		Zero:      zero,
		Subtract:  subtract,
		HalfCarry: halfCarry,
		Carry:     carry,
	}
}

// F packs the flags into the hardware layout of the F register, with
// Z in bit 7 down to C in bit 4.
func (f Flags) F() uint8 {
	var v uint8
	if f.Zero {
		v |= types.Bit7
	}
	if f.Subtract {
		v |= types.Bit6
	}
	if f.HalfCarry {
		v |= types.Bit5
	}
	if f.Carry {
		v |= types.Bit4
	}
	return v
}

// SetF unpacks the hardware F register layout into the flags.
func (f *Flags) SetF(v uint8) {
	f.Zero = v&types.Bit7 != 0
	f.Subtract = v&types.Bit6 != 0
	f.HalfCarry = v&types.Bit5 != 0
	f.Carry = v&types.Bit4 != 0
}
