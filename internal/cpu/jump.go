package cpu

// jumpRelative reads the signed displacement operand and, if the
// condition holds, applies it to the program counter after the operand
// byte has been consumed.
//
//	JR cc, r8
//	cc = NZ, Z, NC, C or unconditional
func (c *CPU) jumpRelative(condition bool) {
	offset := c.ReadMemory(SignedEight())
	c.PC++
	if condition {
		c.PC += offset
		c.Cycles += 12
	} else {
		c.Cycles += 8
	}
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU) error { c.jumpRelative(true); return nil })
	DefineInstruction(0x20, "JR NZ, r8", func(c *CPU) error { c.jumpRelative(!c.Flags.Zero); return nil })
	DefineInstruction(0x28, "JR Z, r8", func(c *CPU) error { c.jumpRelative(c.Flags.Zero); return nil })
	DefineInstruction(0x30, "JR NC, r8", func(c *CPU) error { c.jumpRelative(!c.Flags.Carry); return nil })
	DefineInstruction(0x38, "JR C, r8", func(c *CPU) error { c.jumpRelative(c.Flags.Carry); return nil })
}
