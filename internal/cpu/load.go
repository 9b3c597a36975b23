package cpu

import (
	"fmt"

	"github.com/patchwork-emu/patchwork-dmg/internal/types"
)

// loadRegisterPair resolves the 16-bit immediate through the memory data
// register and writes it into the pair's wide value.
//
//	LD nn, d16
//	nn = BC, DE, HL
func (c *CPU) loadRegisterPair(pair *types.RegisterPair) {
	c.MDR = c.ReadMemory(ImmediateSixteen())
	pair.SetUint16(c.MDR)
	c.PC += 2
	c.Cycles += 12
}

// storeAccumulatorIndirect stages the accumulator and the target address
// in the MDR/MAR pair, then commits the write.
//
//	LD (nn), A
//	nn = BC, DE, HL
func (c *CPU) storeAccumulatorIndirect(pair *types.RegisterPair) {
	c.MDR = uint16(c.A)
	c.MAR = pair.Uint16()
	c.memory.Write(c.MAR, uint8(c.MDR))
	c.Cycles += 8
}

// loadAccumulatorIndirect loads the byte at the address held in the given
// register pair into the accumulator.
//
//	LD A, (nn)
//	nn = BC, DE, HL
func (c *CPU) loadAccumulatorIndirect(pair *types.RegisterPair) {
	c.MDR = c.ReadMemory(RegisterPairDirect(pair))
	c.A = uint8(c.MDR)
	c.Cycles += 8
}

// loadRegister8 loads the 8-bit immediate into the given register. The
// operand is stored as a raw byte, never BCD-encoded.
//
//	LD n, d8
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegister8(reg *types.Register) {
	*reg = uint8(c.ReadMemory(ImmediateEight()))
	c.PC++
	c.Cycles += 8
}

// loadRegisterToRegister loads the value of the given Register into the
// given Register.
//
//	LD n, n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToRegister(register, value *types.Register) {
	*register = *value
	c.Cycles += 4
}

func init() {
	DefineInstruction(0x01, "LD BC, d16", func(c *CPU) error { c.loadRegisterPair(c.BC); return nil })
	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) error { c.storeAccumulatorIndirect(c.BC); return nil })
	DefineInstruction(0x06, "LD B, d8", func(c *CPU) error { c.loadRegister8(&c.B); return nil })
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU) error {
		c.MAR = c.ReadMemory(ImmediateSixteen())
		c.memory.Write(c.MAR, uint8(c.SP))
		c.memory.Write(c.MAR+1, uint8(c.SP>>8))
		c.PC += 2
		c.Cycles += 20
		return nil
	})
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) error { c.loadAccumulatorIndirect(c.BC); return nil })
	DefineInstruction(0x0E, "LD C, d8", func(c *CPU) error { c.loadRegister8(&c.C); return nil })
	DefineInstruction(0x11, "LD DE, d16", func(c *CPU) error { c.loadRegisterPair(c.DE); return nil })
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) error { c.storeAccumulatorIndirect(c.DE); return nil })
	DefineInstruction(0x16, "LD D, d8", func(c *CPU) error { c.loadRegister8(&c.D); return nil })
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) error { c.loadAccumulatorIndirect(c.DE); return nil })
	DefineInstruction(0x1E, "LD E, d8", func(c *CPU) error { c.loadRegister8(&c.E); return nil })
	DefineInstruction(0x21, "LD HL, d16", func(c *CPU) error { c.loadRegisterPair(c.HL); return nil })
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) error {
		c.storeAccumulatorIndirect(c.HL)
		c.HL.SetUint16(c.HL.Uint16() + 1)
		return nil
	})
	DefineInstruction(0x26, "LD H, d8", func(c *CPU) error { c.loadRegister8(&c.H); return nil })
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) error {
		c.loadAccumulatorIndirect(c.HL)
		c.HL.SetUint16(c.HL.Uint16() + 1)
		return nil
	})
	DefineInstruction(0x2E, "LD L, d8", func(c *CPU) error { c.loadRegister8(&c.L); return nil })
	DefineInstruction(0x31, "LD SP, d16", func(c *CPU) error {
		c.MDR = c.ReadMemory(ImmediateSixteen())
		c.SP = c.MDR
		c.PC += 2
		c.Cycles += 12
		return nil
	})
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) error {
		c.storeAccumulatorIndirect(c.HL)
		c.HL.SetUint16(c.HL.Uint16() - 1)
		return nil
	})
	DefineInstruction(0x36, "LD (HL), d8", func(c *CPU) error {
		c.MDR = c.ReadMemory(ImmediateEight())
		c.MAR = c.HL.Uint16()
		c.memory.Write(c.MAR, uint8(c.MDR))
		c.PC++
		c.Cycles += 12
		return nil
	})
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) error {
		c.loadAccumulatorIndirect(c.HL)
		c.HL.SetUint16(c.HL.Uint16() - 1)
		return nil
	})
	DefineInstruction(0x3E, "LD A, d8", func(c *CPU) error { c.loadRegister8(&c.A); return nil })
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) error {
		// The operand offsets the high page implicitly through the
		// program counter, mirroring the UnsignedEight read mode.
		c.MDR = uint16(c.A)
		c.MAR = 0xFF00 + c.PC
		c.memory.Write(c.MAR, uint8(c.MDR))
		c.PC++
		c.Cycles += 12
		return nil
	})
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) error {
		c.MDR = uint16(c.A)
		c.MAR = uint16(c.C)
		c.memory.Write(c.MAR, uint8(c.MDR))
		c.Cycles += 8
		return nil
	})
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) error {
		c.MAR = c.ReadMemory(ImmediateSixteen())
		c.memory.Write(c.MAR, c.A)
		c.PC += 2
		c.Cycles += 16
		return nil
	})
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) error {
		c.MDR = c.ReadMemory(UnsignedEight())
		c.A = uint8(c.MDR)
		c.PC++
		c.Cycles += 12
		return nil
	})
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) error {
		c.MDR = c.ReadMemory(RegisterDirect(c.BC, false))
		c.A = uint8(c.MDR)
		c.Cycles += 8
		return nil
	})
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU) error {
		c.SP = c.HL.Uint16()
		c.Cycles += 8
		return nil
	})
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) error {
		c.MAR = c.ReadMemory(ImmediateSixteen())
		c.MDR = c.ReadMemory(AddressSixteen(c.MAR))
		c.A = uint8(c.MDR)
		c.PC += 2
		c.Cycles += 16
		return nil
	})

	generateLoadRegisterToRegisterInstructions()
}

// generateLoadRegisterToRegisterInstructions generates the instructions
// for loading a register to another register. (e.g. LD B, A)
//
// The instructions are generated in the following format:
//
//	0x40 LD B, B
//	0x41 LD B, C
//	....
//	0x7F LD A, A
func generateLoadRegisterToRegisterInstructions() {
	for i := uint8(0); i < 8; i++ {
		// handle the special case of LD (HL), r
		if i == 6 {
			for j := uint8(0); j < 8; j++ {
				// skip 0x76 (HALT)
				if j == 6 {
					continue
				}
				fromRegister := j
				DefineInstruction(0x70+j, fmt.Sprintf("LD (HL), %s", registerNameMap[fromRegister]), func(c *CPU) error {
					c.MDR = uint16(*c.registerPointer(fromRegister))
					c.MAR = c.HL.Uint16()
					c.memory.Write(c.MAR, uint8(c.MDR))
					c.Cycles += 8
					return nil
				})
			}
			continue
		}

		for j := uint8(0); j < 8; j++ {
			toRegister := i
			// if j is 6, then we are loading from memory
			if j == 6 {
				DefineInstruction(0x40+i*8+j, fmt.Sprintf("LD %s, (HL)", registerNameMap[toRegister]), func(c *CPU) error {
					*c.registerPointer(toRegister) = uint8(c.ReadMemory(RegisterPairDirect(c.HL)))
					c.Cycles += 8
					return nil
				})
				continue
			}
			fromRegister := j
			DefineInstruction(
				0x40+(i*8)+j,
				fmt.Sprintf("LD %s, %s", registerNameMap[toRegister], registerNameMap[fromRegister]),
				func(c *CPU) error {
					c.loadRegisterToRegister(c.registerPointer(toRegister), c.registerPointer(fromRegister))
					return nil
				})
		}
	}
}
