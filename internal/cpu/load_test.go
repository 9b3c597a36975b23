package cpu

import (
	"testing"
)

func TestLoadRegisterPairImmediate(t *testing.T) {
	c := newTestCPU(t, 0x01, 0xCD, 0xAB) // LD BC, 0xABCD
	step(t, c)
	if c.BC.Uint16() != 0xABCD {
		t.Errorf("BC got %#04x want 0xABCD", c.BC.Uint16())
	}
	if c.PC != 3 {
		t.Errorf("PC got %#04x want 3", c.PC)
	}
	if c.Cycles != 12 {
		t.Errorf("cycles got %d want 12", c.Cycles)
	}
}

func TestLoadStackPointerImmediate(t *testing.T) {
	c := newTestCPU(t, 0x31, 0xFE, 0xFF) // LD SP, 0xFFFE
	step(t, c)
	if c.SP != 0xFFFE {
		t.Errorf("SP got %#04x want 0xFFFE", c.SP)
	}
	if c.PC != 3 || c.Cycles != 12 {
		t.Errorf("PC=%#04x cycles=%d", c.PC, c.Cycles)
	}
}

func TestStoreAccumulatorIndirect(t *testing.T) {
	c := newTestCPU(t, 0x02) // LD (BC), A
	c.A = 0x42
	c.BC.SetUint16(0x1234)
	step(t, c)
	if got := c.memory.Read(0x1234); got != 0x42 {
		t.Errorf("memory at 0x1234 got %#02x want 0x42", got)
	}
	if c.MAR != 0x1234 || c.MDR != 0x42 {
		t.Errorf("staging registers got MAR=%#04x MDR=%#04x", c.MAR, c.MDR)
	}
	if c.PC != 1 || c.Cycles != 8 {
		t.Errorf("PC=%#04x cycles=%d", c.PC, c.Cycles)
	}
}

func TestLoadAccumulatorIndirect(t *testing.T) {
	c := newTestCPU(t, 0x1A) // LD A, (DE)
	c.DE.SetUint16(0x2000)
	c.memory.Write(0x2000, 0x55)
	step(t, c)
	if c.A != 0x55 {
		t.Errorf("A got %#02x want 0x55", c.A)
	}
}

// LD r, d8 stores the raw operand byte, never BCD-encoded.
func TestLoadRegisterImmediate_Raw(t *testing.T) {
	c := newTestCPU(t, 0x06, 0x42) // LD B, 0x42
	step(t, c)
	if c.B != 0x42 {
		t.Errorf("B got %#02x want raw 0x42", c.B)
	}
	if c.PC != 2 || c.Cycles != 8 {
		t.Errorf("PC=%#04x cycles=%d", c.PC, c.Cycles)
	}
}

func TestStoreStackPointerAbsolute(t *testing.T) {
	c := newTestCPU(t, 0x08, 0x00, 0xC0) // LD (0xC000), SP
	c.SP = 0xABCD
	step(t, c)
	if lo := c.memory.Read(0xC000); lo != 0xCD {
		t.Errorf("low byte got %#02x want 0xCD", lo)
	}
	if hi := c.memory.Read(0xC001); hi != 0xAB {
		t.Errorf("high byte got %#02x want 0xAB", hi)
	}
	if c.PC != 3 || c.Cycles != 20 {
		t.Errorf("PC=%#04x cycles=%d", c.PC, c.Cycles)
	}
}

func TestLoadAccumulatorHLPostIncrement(t *testing.T) {
	c := newTestCPU(t, 0x2A) // LD A, (HL+)
	c.HL.SetUint16(0x3000)
	c.memory.Write(0x3000, 0x99)
	step(t, c)
	if c.A != 0x99 {
		t.Errorf("A got %#02x want 0x99", c.A)
	}
	if c.HL.Uint16() != 0x3001 {
		t.Errorf("HL got %#04x want 0x3001", c.HL.Uint16())
	}
}

func TestStoreAccumulatorHLPostDecrement(t *testing.T) {
	c := newTestCPU(t, 0x32) // LD (HL-), A
	c.A = 0x17
	c.HL.SetUint16(0x3000)
	step(t, c)
	if got := c.memory.Read(0x3000); got != 0x17 {
		t.Errorf("memory got %#02x want 0x17", got)
	}
	if c.HL.Uint16() != 0x2FFF {
		t.Errorf("HL got %#04x want 0x2FFF", c.HL.Uint16())
	}
}

func TestLoadRegisterToRegister(t *testing.T) {
	c := newTestCPU(t, 0x41) // LD B, C
	c.C = 0x07
	step(t, c)
	if c.B != 0x07 {
		t.Errorf("B got %#02x want 0x07", c.B)
	}
	if c.Cycles != 4 {
		t.Errorf("cycles got %d want 4", c.Cycles)
	}
}

func TestLoadRegisterFromHL(t *testing.T) {
	c := newTestCPU(t, 0x7E) // LD A, (HL)
	c.HL.SetUint16(0x4000)
	c.memory.Write(0x4000, 0x33)
	step(t, c)
	if c.A != 0x33 {
		t.Errorf("A got %#02x want 0x33", c.A)
	}
	if c.Cycles != 8 {
		t.Errorf("cycles got %d want 8", c.Cycles)
	}
}

func TestStoreRegisterToHL(t *testing.T) {
	c := newTestCPU(t, 0x70) // LD (HL), B
	c.B = 0x44
	c.HL.SetUint16(0x4000)
	step(t, c)
	if got := c.memory.Read(0x4000); got != 0x44 {
		t.Errorf("memory got %#02x want 0x44", got)
	}
}

func TestLoadMemoryImmediateToHL(t *testing.T) {
	c := newTestCPU(t, 0x36, 0x88) // LD (HL), 0x88
	c.HL.SetUint16(0x5000)
	step(t, c)
	if got := c.memory.Read(0x5000); got != 0x88 {
		t.Errorf("memory got %#02x want 0x88", got)
	}
	if c.PC != 2 || c.Cycles != 12 {
		t.Errorf("PC=%#04x cycles=%d", c.PC, c.Cycles)
	}
}

func TestLoadAccumulatorAbsolute(t *testing.T) {
	c := newTestCPU(t, 0xFA, 0x34, 0x12) // LD A, (0x1234)
	c.memory.Write(0x1234, 0x66)
	step(t, c)
	if c.A != 0x66 {
		t.Errorf("A got %#02x want 0x66", c.A)
	}
	if c.PC != 3 || c.Cycles != 16 {
		t.Errorf("PC=%#04x cycles=%d", c.PC, c.Cycles)
	}
}

func TestStoreAccumulatorAbsolute(t *testing.T) {
	c := newTestCPU(t, 0xEA, 0x00, 0xD0) // LD (0xD000), A
	c.A = 0x29
	step(t, c)
	if got := c.memory.Read(0xD000); got != 0x29 {
		t.Errorf("memory got %#02x want 0x29", got)
	}
}

// The high-page loads key the 0xFF00 offset off the program counter
// itself, mirroring the UnsignedEight read mode.
func TestLoadHighPage(t *testing.T) {
	c := newTestCPU(t, 0xF0, 0x00) // LDH A, (a8)
	c.memory.Write(0xFF01, 0x9C)   // 0xFF00 + operand position
	step(t, c)
	if c.A != 0x9C {
		t.Errorf("A got %#02x want 0x9C", c.A)
	}
	if c.PC != 2 || c.Cycles != 12 {
		t.Errorf("PC=%#04x cycles=%d", c.PC, c.Cycles)
	}
}

func TestStoreHighPage(t *testing.T) {
	c := newTestCPU(t, 0xE0, 0x00) // LDH (a8), A
	c.A = 0x77
	step(t, c)
	if got := c.memory.Read(0xFF01); got != 0x77 {
		t.Errorf("memory at 0xFF01 got %#02x want 0x77", got)
	}
}

func TestLoadAccumulatorRegisterDirect(t *testing.T) {
	c := newTestCPU(t, 0xF2) // LD A, (C)
	c.C = 0x46
	c.memory.Write(0x0046, 0x20)
	step(t, c)
	if c.A != 0x20 {
		t.Errorf("A got %#02x want 0x20", c.A)
	}
}

func TestStoreAccumulatorRegisterDirect(t *testing.T) {
	c := newTestCPU(t, 0xE2) // LD (C), A
	c.A = 0x31
	c.C = 0x80
	step(t, c)
	if got := c.memory.Read(0x0080); got != 0x31 {
		t.Errorf("memory got %#02x want 0x31", got)
	}
}

func TestLoadStackPointerFromHL(t *testing.T) {
	c := newTestCPU(t, 0xF9) // LD SP, HL
	c.HL.SetUint16(0x8000)
	step(t, c)
	if c.SP != 0x8000 {
		t.Errorf("SP got %#04x want 0x8000", c.SP)
	}
}
