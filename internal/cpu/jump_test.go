package cpu

import (
	"testing"
)

func TestJumpRelative_Forward(t *testing.T) {
	c := newTestCPU(t, 0x18, 0x05) // JR +5
	step(t, c)
	if c.PC != 0x0007 {
		t.Errorf("PC got %#04x want 0x0007", c.PC)
	}
	if c.Cycles != 12 {
		t.Errorf("cycles got %d want 12", c.Cycles)
	}
}

func TestJumpRelative_Backward(t *testing.T) {
	c := newTestCPU(t)
	if err := c.WriteBytes([]byte{0x18, 0xFB}, 0x10); err != nil { // JR -5
		t.Fatal(err)
	}
	c.PC = 0x10
	step(t, c)
	if c.PC != 0x000D {
		t.Errorf("PC got %#04x want 0x000D", c.PC)
	}
}

func TestJumpRelative_ConditionNotTaken(t *testing.T) {
	c := newTestCPU(t, 0x20, 0x05) // JR NZ, +5
	c.Flags.Zero = true
	step(t, c)
	if c.PC != 0x0002 {
		t.Errorf("PC got %#04x want fall-through 0x0002", c.PC)
	}
	if c.Cycles != 8 {
		t.Errorf("cycles got %d want 8 when not taken", c.Cycles)
	}
}

func TestJumpRelative_ConditionTaken(t *testing.T) {
	c := newTestCPU(t, 0x28, 0x03) // JR Z, +3
	c.Flags.Zero = true
	step(t, c)
	if c.PC != 0x0005 {
		t.Errorf("PC got %#04x want 0x0005", c.PC)
	}
	if c.Cycles != 12 {
		t.Errorf("cycles got %d want 12 when taken", c.Cycles)
	}
}

func TestJumpRelative_CarryConditions(t *testing.T) {
	c := newTestCPU(t, 0x38, 0x02) // JR C, +2
	c.Flags.Carry = true
	step(t, c)
	if c.PC != 0x0004 {
		t.Errorf("JR C PC got %#04x want 0x0004", c.PC)
	}

	c = newTestCPU(t, 0x30, 0x02) // JR NC, +2
	c.Flags.Carry = true
	step(t, c)
	if c.PC != 0x0002 {
		t.Errorf("JR NC PC got %#04x want fall-through 0x0002", c.PC)
	}
}

// A tight countdown loop: LD B, 3; DEC B; JR NZ, -3.
func TestJumpRelative_Loop(t *testing.T) {
	c := newTestCPU(t,
		0x06, 0x03, // LD B, 3
		0x05,       // DEC B
		0x20, 0xFD, // JR NZ, -3
	)
	step(t, c) // LD
	for i := 0; i < 3; i++ {
		step(t, c) // DEC B
		step(t, c) // JR NZ
	}
	if c.B != 0 {
		t.Errorf("B got %#02x want 0", c.B)
	}
	if !c.Flags.Zero {
		t.Error("expected zero flag after countdown")
	}
	if c.PC != 0x0005 {
		t.Errorf("PC got %#04x want 0x0005 after loop exit", c.PC)
	}
}
