package cpu

// The eight conditional branches all match the low 5 bits 0b10000
// regardless of CC. Bits 6-7 select the tested flag; bit 5 is the
// expected value of that flag.
const (
	branchRestMask   = 0b00011111
	branchPattern    = 0b00010000
	branchSelectMask = 0b11000000
	branchCmpMask    = 0b00100000

	branchNegative = 0b00
	branchOverflow = 0b01
	branchCarry    = 0b10
	branchZero     = 0b11
)

// sequenceBranch decodes one of BPL/BMI/BVC/BVS/BCC/BCS/BNE/BEQ. It needs
// read access to the Chip because the page-cross decision has to be made
// at decode time, before AddToPC actually runs: it peeks the not-yet
// consumed operand byte and the current PC to predict whether the branch,
// if taken, lands on a different page.
func (c *Chip) sequenceBranch(opcode uint8) ([]microOp, bool) {
	if opcode&branchRestMask != branchPattern {
		return nil, false
	}

	which := (opcode & branchSelectMask) >> 6
	want := (opcode & branchCmpMask) >> 5

	seq := []microOp{mMemToDataBus(SrcPC), mIdle()}

	var flag bool
	switch which {
	case branchNegative:
		flag = c.Reg.P.N
	case branchOverflow:
		flag = c.Reg.P.V
	case branchCarry:
		flag = c.Reg.P.C
	case branchZero:
		flag = c.Reg.P.Z
	}

	var flagBit uint8
	if flag {
		flagBit = 1
	}
	if flagBit != want {
		return seq, true
	}

	seq = append(seq, mAddToPC())
	if branchCrossesPage(c.Reg.PC+1, c.Mem.Read(c.Reg.PC)) {
		seq = append(seq, mIdle())
	}
	return seq, true
}

// branchCrossesPage reports whether adding the sign-extended displacement
// rel to pc lands on a different page than pc itself.
func branchCrossesPage(pc uint16, rel uint8) bool {
	disp := uint16(int16(int8(rel)))
	return (pc+disp)>>8 != pc>>8
}
