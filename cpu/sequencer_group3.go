package cpu

// Group three (CC=00): BIT, JMP, JMP (abs), STY, LDY, CPY, CPX.
const (
	g3BIT    = 0b001
	g3JMP    = 0b010
	g3JMPInd = 0b011
	g3STY    = 0b100
	g3LDY    = 0b101
	g3CPY    = 0b110
	g3CPX    = 0b111
)

const (
	g3IM  = 0b000
	g3ZP  = 0b001
	g3Abs = 0b011
	g3ZPX = 0b101
	g3AbsX = 0b111
)

// sequenceGroupThree decodes one CC=00 opcode. Pure function of the
// opcode byte.
func sequenceGroupThree(opcode uint8) ([]microOp, bool) {
	op := (opcode & opcodeMask) >> 5
	mode := (opcode & addrModeMask) >> 2
	var seq []microOp

	switch mode {
	case g3ZP:
		seq = append(seq, mLoadZPAddr())
	case g3ZPX:
		seq = append(seq, mLoadZPAddr(), mAddToAddrBus(RegX))
	case g3Abs:
		seq = append(seq, mLoadAddr(SrcPC), mIdle())
	case g3AbsX:
		seq = append(seq, mLoadAddr(SrcPC), mIdle(), mAddToAddrBus(RegX))
	case g3IM:
		// Operand comes straight off PC; no effective-address steps.
	default:
		return nil, false
	}

	switch {
	case op == g3STY:
		seq = append(seq, mRegToDataBus(RegY), mDataBusToMem(SrcAddrBus))

	case op == g3LDY && mode == g3IM:
		seq = append(seq, mMemToDataBus(SrcPC), mDataBusToReg(RegY))
	case op == g3LDY:
		seq = append(seq, mMemToDataBus(SrcAddrBus), mDataBusToReg(RegY))

	case op == g3CPX && mode == g3IM:
		seq = append(seq, mMemToDataBus(SrcPC), mCompareWithReg(RegX))
	case op == g3CPX:
		seq = append(seq, mMemToDataBus(SrcAddrBus), mCompareWithReg(RegX))

	case op == g3CPY && mode == g3IM:
		seq = append(seq, mMemToDataBus(SrcPC), mCompareWithReg(RegY))
	case op == g3CPY:
		seq = append(seq, mMemToDataBus(SrcAddrBus), mCompareWithReg(RegY))

	case op == g3JMP && mode == g3Abs:
		seq = append(seq, mMoveAddrToPc())

	case op == g3JMPInd && mode == g3Abs:
		seq = append(seq, mLoadAddr(SrcAddrBus), mIdle(), mMoveAddrToPc())

	case (op == g3BIT) && (mode == g3Abs || mode == g3ZP):
		seq = append(seq, mMemToDataBus(SrcAddrBus), mSetBitTestFlags())

	default:
		return nil, false
	}

	return seq, true
}
