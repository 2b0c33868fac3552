package cpu

// Group one (CC=01): ORA, AND, EOR, ADC, STA, LDA, CMP, SBC.
const (
	g1ORA = 0b000
	g1AND = 0b001
	g1EOR = 0b010
	g1ADC = 0b011
	g1STA = 0b100
	g1LDA = 0b101
	g1CMP = 0b110
	g1SBC = 0b111
)

const (
	g1ZPXInd = 0b000
	g1ZP     = 0b001
	g1IM     = 0b010
	g1Abs    = 0b011
	g1ZPIndY = 0b100
	g1ZPX    = 0b101
	g1AbsY   = 0b110
	g1AbsX   = 0b111
)

// sequenceGroupOne decodes one CC=01 opcode. It is a pure function of the
// opcode byte: none of group one's addressing modes need to peek live
// register or memory state ahead of execution.
func sequenceGroupOne(opcode uint8) ([]microOp, bool) {
	op := (opcode & opcodeMask) >> 5
	mode := (opcode & addrModeMask) >> 2
	var seq []microOp

	switch mode {
	case g1ZP:
		seq = append(seq, mLoadZPAddr())
	case g1ZPX:
		seq = append(seq, mLoadZPAddr(), mAddToAddrBus(RegX))
	case g1ZPXInd:
		seq = append(seq, mLoadZPAddr(), mAddToAddrBus(RegX), mLoadAddr(SrcAddrBus), mIdle())
	case g1ZPIndY:
		seq = append(seq, mLoadZPAddr(), mLoadAddr(SrcAddrBus), mIdle(), mAddToAddrBus(RegY))
	case g1Abs:
		seq = append(seq, mLoadAddr(SrcPC), mIdle())
	case g1AbsX:
		seq = append(seq, mLoadAddr(SrcPC), mIdle(), mAddToAddrBus(RegX))
	case g1AbsY:
		seq = append(seq, mLoadAddr(SrcPC), mIdle(), mAddToAddrBus(RegY))
	case g1IM:
		// Operand comes straight off PC; no effective-address steps.
	default:
		return nil, false
	}

	src := SrcAddrBus
	if mode == g1IM {
		src = SrcPC
	}

	switch op {
	case g1LDA:
		seq = append(seq, mMemToDataBus(src), mDataBusToReg(RegA))
	case g1STA:
		seq = append(seq, mRegToDataBus(RegA), mDataBusToMem(SrcAddrBus))
	case g1ADC:
		seq = append(seq, mMemToDataBus(src), mAddToReg(RegA))
	case g1SBC:
		seq = append(seq, mMemToDataBus(src), mSubFromReg(RegA))
	case g1ORA:
		seq = append(seq, mMemToDataBus(src), mORWithReg(RegA))
	case g1AND:
		seq = append(seq, mMemToDataBus(src), mANDWithReg(RegA))
	case g1EOR:
		seq = append(seq, mMemToDataBus(src), mXORWithReg(RegA))
	case g1CMP:
		seq = append(seq, mMemToDataBus(src), mCompareWithReg(RegA))
	default:
		return nil, false
	}

	return seq, true
}
