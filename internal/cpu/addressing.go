package cpu

import "github.com/patchwork-emu/patchwork-dmg/internal/types"

// AddressingMode names the strategy used to compute an operand value for
// an instruction. Modes that carry data (a direct address, a register
// pair) are built with the constructor of the same name.
type AddressingMode struct {
	kind    addressingKind
	address uint16
	pair    *types.RegisterPair
	high    bool
}

type addressingKind uint8

const (
	implied addressingKind = iota
	immediateEight
	immediateSixteen
	unsignedEight
	addressSixteen
	signedEight
	registerPairDirect
	registerDirect
)

// Implied performs no memory access; the resolver returns the current
// memory data register unchanged.
func Implied() AddressingMode {
	return AddressingMode{kind: implied}
}

// ImmediateEight reads the single operand byte at the program counter.
func ImmediateEight() AddressingMode {
	return AddressingMode{kind: immediateEight}
}

// ImmediateSixteen reads the little-endian operand word at the program
// counter.
func ImmediateSixteen() AddressingMode {
	return AddressingMode{kind: immediateSixteen}
}

// UnsignedEight reads the byte at 0xFF00 offset by the program counter,
// the high-page style access used by the 0xE0/0xF0 family.
func UnsignedEight() AddressingMode {
	return AddressingMode{kind: unsignedEight}
}

// AddressSixteen reads the byte at the given address directly.
func AddressSixteen(address uint16) AddressingMode {
	return AddressingMode{kind: addressSixteen, address: address}
}

// SignedEight reads the operand byte at the program counter and
// reinterprets it as two's complement, sign-extended.
func SignedEight() AddressingMode {
	return AddressingMode{kind: signedEight}
}

// RegisterPairDirect reads the byte at the address held in the given
// register pair.
func RegisterPairDirect(pair *types.RegisterPair) AddressingMode {
	return AddressingMode{kind: registerPairDirect, pair: pair}
}

// RegisterDirect reads the byte at the address given by the raw content
// of one half of the register pair, zero-page style.
func RegisterDirect(pair *types.RegisterPair, high bool) AddressingMode {
	return AddressingMode{kind: registerDirect, pair: pair, high: high}
}

// ReadMemory resolves the given addressing mode against the current CPU
// state and returns the operand value. It never advances the program
// counter and never mutates a register; consuming operand bytes is the
// responsibility of the instruction handler that called it. Debuggers
// and display collaborators may call it freely to inspect memory.
func (c *CPU) ReadMemory(mode AddressingMode) uint16 {
	switch mode.kind {
	case implied:
		return c.MDR
	case immediateEight:
		return uint16(c.memory.Read(c.PC))
	case immediateSixteen:
		return c.memory.ReadWord(c.PC)
	case unsignedEight:
		return uint16(c.memory.Read(0xFF00 + c.PC))
	case addressSixteen:
		return uint16(c.memory.Read(mode.address))
	case signedEight:
		return uint16(int16(int8(c.memory.Read(c.PC))))
	case registerPairDirect:
		return uint16(c.memory.Read(mode.pair.Uint16()))
	case registerDirect:
		if mode.high {
			return uint16(c.memory.Read(uint16(*mode.pair.High)))
		}
		return uint16(c.memory.Read(uint16(*mode.pair.Low)))
	}
	return uint16(c.memory.Read(c.PC))
}
