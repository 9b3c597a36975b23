package types

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func newPair() (*RegisterPair, *Register, *Register) {
	var high, low Register
	return &RegisterPair{High: &high, Low: &low}, &high, &low
}

func TestRegisterPair_WideRoundTrip(t *testing.T) {
	pair, high, low := newPair()
	for v := 0; v <= 0xFFFF; v += 0x101 {
		pair.SetUint16(uint16(v))
		assert.Equal(t, uint8(v>>8), *high)
		assert.Equal(t, uint8(v&0xFF), *low)
		assert.Equal(t, uint16(v), pair.Uint16())
	}
}

func TestBCD_RoundTrip(t *testing.T) {
	for d := uint8(0); d <= 99; d++ {
		b, err := DecimalToBCD(d)
		assert.NoError(t, err)
		assert.Equal(t, d, BCDToDecimal(b))
	}
}

func TestDecimalToBCD(t *testing.T) {
	b, err := DecimalToBCD(42)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0b0100_0010), b)

	_, err = DecimalToBCD(100)
	assert.True(t, errors.Is(err, ErrBCDRange))
}

func TestRegisterPair_BCDPaths(t *testing.T) {
	pair, high, low := newPair()

	assert.NoError(t, pair.SetHighBCD(13))
	assert.NoError(t, pair.SetLowBCD(34))
	assert.Equal(t, uint8(0x13), *high)
	assert.Equal(t, uint8(0x34), *low)
	assert.Equal(t, uint16(1334), pair.ToInt())

	assert.True(t, errors.Is(pair.SetHighBCD(210), ErrBCDRange))
	assert.True(t, errors.Is(pair.SetLowBCD(100), ErrBCDRange))
	// failed writes leave the pair untouched
	assert.Equal(t, uint16(1334), pair.ToInt())
}

func TestBCDToDecimal_TotalOverAllBytes(t *testing.T) {
	// nonsense nibbles still produce a value, never a failure
	assert.Equal(t, uint8(10*10+15), BCDToDecimal(0xAF))
}
