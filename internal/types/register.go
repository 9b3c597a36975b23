package types

import (
	"errors"
	"fmt"
)

// ErrBCDRange is returned when a value cannot be represented as two
// packed BCD digits.
var ErrBCDRange = errors.New("value not representable in two BCD digits")

// Register represents a DMG Register which is used to hold an 8-bit value.
// The CPU has 7 general registers: A, B, C, D, E, H and L.
type Register = uint8

// RegisterPair represents a pair of DMG Registers which is used to hold a
// 16-bit value. The CPU has 3 register pairs: BC, DE and HL.
//
// A pair byte is written through one of two paths: the wide path
// (SetUint16), which stores raw binary bytes, or the BCD path
// (SetHighBCD/SetLowBCD), which stores packed two-digit decimals. The pair
// does not track which path last wrote a byte; callers must not mix the
// two interpretations on the same byte without re-encoding.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value,
// splitting it into raw high/low bytes without BCD conversion.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// SetHighBCD stores the given decimal value (0-99) in the high byte as
// packed BCD.
func (r *RegisterPair) SetHighBCD(dec uint8) error {
	b, err := DecimalToBCD(dec)
	if err != nil {
		return err
	}
	*r.High = b
	return nil
}

// SetLowBCD stores the given decimal value (0-99) in the low byte as
// packed BCD.
func (r *RegisterPair) SetLowBCD(dec uint8) error {
	b, err := DecimalToBCD(dec)
	if err != nil {
		return err
	}
	*r.Low = b
	return nil
}

// ToInt interprets both bytes of the pair as packed BCD and returns the
// decimal number high*100 + low. It is only meaningful for bytes written
// through the BCD path.
func (r *RegisterPair) ToInt() uint16 {
	return uint16(BCDToDecimal(*r.High))*100 + uint16(BCDToDecimal(*r.Low))
}

// BCDToDecimal converts a packed BCD byte to its decimal value. It is
// defined for any byte; nibbles above 9 produce nonsensical but
// non-failing output.
func BCDToDecimal(bcd uint8) uint8 {
	return (bcd>>4)*10 + bcd&0x0F
}

// DecimalToBCD converts a decimal value (0-99) to a packed BCD byte with
// the tens digit in the high nibble.
func DecimalToBCD(dec uint8) (uint8, error) {
	if dec > 99 {
		return 0, fmt.Errorf("%w: %d", ErrBCDRange, dec)
	}
	return (dec/10%10)<<4 | dec%10, nil
}
