package cpu

// Group two (CC=10): ASL, ROL, LSR, ROR, STX, LDX, DEC, INC.
const (
	g2ASL = 0b000
	g2ROL = 0b001
	g2LSR = 0b010
	g2ROR = 0b011
	g2STX = 0b100
	g2LDX = 0b101
	g2DEC = 0b110
	g2INC = 0b111
)

const (
	g2IM  = 0b000
	g2ZP  = 0b001
	g2Acc = 0b010
	g2Abs = 0b011
	g2ZPX = 0b101
	g2AbsX = 0b111
)

// sequenceGroupTwo decodes one CC=10 opcode. Pure function of the opcode
// byte.
func sequenceGroupTwo(opcode uint8) ([]microOp, bool) {
	op := (opcode & opcodeMask) >> 5
	mode := (opcode & addrModeMask) >> 2
	var seq []microOp

	switch mode {
	case g2ZP:
		seq = append(seq, mLoadZPAddr())
	case g2ZPX:
		idx := RegX
		if op == g2STX || op == g2LDX {
			idx = RegY
		}
		seq = append(seq, mLoadZPAddr(), mAddToAddrBus(idx))
	case g2Abs:
		seq = append(seq, mLoadAddr(SrcPC), mIdle())
	case g2AbsX:
		idx := RegX
		if op == g2LDX {
			idx = RegY
		}
		seq = append(seq, mLoadAddr(SrcPC), mIdle(), mAddToAddrBus(idx))
	case g2Acc:
		seq = append(seq, mIdle())
	case g2IM:
		// Operand comes straight off PC; no effective-address steps.
	default:
		return nil, false
	}

	switch {
	case mode == g2Acc && (op == g2DEC || op == g2STX || op == g2LDX):
		return nil, false

	case op == g2ASL && mode == g2Acc:
		seq = append(seq, mShift(DirLeft, SrcReg))
	case op == g2ASL:
		seq = append(seq, mMemToDataBus(SrcAddrBus), mShift(DirLeft, SrcDataBus), mIdle(), mDataBusToMem(SrcAddrBus))

	case op == g2ROL && mode == g2Acc:
		seq = append(seq, mRotate(DirLeft, SrcReg))
	case op == g2ROL:
		seq = append(seq, mMemToDataBus(SrcAddrBus), mRotate(DirLeft, SrcDataBus), mIdle(), mDataBusToMem(SrcAddrBus))

	case op == g2LSR && mode == g2Acc:
		seq = append(seq, mShift(DirRight, SrcReg))
	case op == g2LSR:
		seq = append(seq, mMemToDataBus(SrcAddrBus), mShift(DirRight, SrcDataBus), mIdle(), mDataBusToMem(SrcAddrBus))

	case op == g2ROR && mode == g2Acc:
		seq = append(seq, mRotate(DirRight, SrcReg))
	case op == g2ROR:
		seq = append(seq, mMemToDataBus(SrcAddrBus), mRotate(DirRight, SrcDataBus), mIdle(), mDataBusToMem(SrcAddrBus))

	case op == g2STX:
		seq = append(seq, mRegToDataBus(RegX), mDataBusToMem(SrcAddrBus))

	case op == g2LDX && mode == g2IM:
		seq = append(seq, mMemToDataBus(SrcPC), mDataBusToReg(RegX))
	case op == g2LDX:
		seq = append(seq, mMemToDataBus(SrcAddrBus), mDataBusToReg(RegX))

	case op == g2DEC:
		seq = append(seq, mMemToDataBus(SrcAddrBus), mDecDataBus(), mIdle(), mDataBusToMem(SrcAddrBus))

	case op == g2INC:
		seq = append(seq, mMemToDataBus(SrcAddrBus), mIncDataBus(), mIdle(), mDataBusToMem(SrcAddrBus))

	default:
		return nil, false
	}

	return seq, true
}
