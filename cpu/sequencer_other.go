package cpu

// Single-byte opcodes matched by their exact value: implied-mode
// register transfers/increments, flag set/clear, stack push/pull, and
// the subroutine/return/interrupt-return instructions.
const (
	opBRK = 0x00
	opJSR = 0x20
	opRTI = 0x40
	opRTS = 0x60
	opPHP = 0x08
	opPLP = 0x28
	opPHA = 0x48
	opPLA = 0x68
	opDEY = 0x88
	opTAY = 0xA8
	opINY = 0xC8
	opINX = 0xE8
	opCLC = 0x18
	opSEC = 0x38
	opCLI = 0x58
	opSEI = 0x78
	opTYA = 0x98
	opCLV = 0xB8
	opCLD = 0xD8
	opSED = 0xF8
	opTXA = 0x8A
	opTXS = 0x9A
	opTAX = 0xAA
	opTSX = 0xBA
	opDEX = 0xCA
	opNOP = 0xEA
)

// sequenceOther decodes the single-byte implied/stack/transfer
// instructions matched by their full opcode value. Every one of these
// starts with one Idle — the classic dummy read of the next opcode byte
// that 6502 implied-mode instructions perform before doing their real
// work.
func sequenceOther(opcode uint8) ([]microOp, bool) {
	seq := []microOp{mIdle()}

	switch opcode {
	case opJSR:
		seq = append(seq, mLoadStackPointer(), mPushPC(), mIdle(), mLoadAddr(SrcPC), mMoveAddrToPc())
	case opRTS:
		seq = append(seq, mIdle(), mPullPC(), mIdle(), mIncPC(), mIdle())
	case opRTI:
		seq = append(seq, mIdle(), mPullToStatus(), mPullPC(), mIdle())
	case opBRK:
		// The IRQ-vector jump is a documented gap: PC is pushed and B is
		// set, but control does not transfer to the BRK/IRQ vector.
		seq = append(seq, mPushPC(), mIdle(), mSetFlags(FlagB), mIdle(), mIdle(), mIdle())
	case opINX:
		seq = append(seq, mIncReg(RegX))
	case opINY:
		seq = append(seq, mIncReg(RegY))
	case opDEX:
		seq = append(seq, mDecReg(RegX))
	case opDEY:
		seq = append(seq, mDecReg(RegY))
	case opNOP:
		seq = append(seq, mIdle())
	case opTAX:
		seq = append(seq, mTransferReg(RegA, RegX))
	case opTAY:
		seq = append(seq, mTransferReg(RegA, RegY))
	case opTSX:
		seq = append(seq, mTransferReg(RegS, RegX))
	case opTXA:
		seq = append(seq, mTransferReg(RegX, RegA))
	case opTXS:
		seq = append(seq, mTransferReg(RegX, RegS))
	case opTYA:
		seq = append(seq, mTransferReg(RegY, RegA))
	case opPLA:
		seq = append(seq, mPullToReg(RegA))
	case opPHA:
		seq = append(seq, mPushFromReg(RegA))
	case opPLP:
		seq = append(seq, mPullToStatus())
	case opPHP:
		seq = append(seq, mPushStatus())
	case opCLC:
		seq = append(seq, mClearFlags(FlagC))
	case opCLD:
		seq = append(seq, mClearFlags(FlagD))
	case opCLI:
		seq = append(seq, mClearFlags(FlagI))
	case opCLV:
		seq = append(seq, mClearFlags(FlagV))
	case opSEC:
		seq = append(seq, mSetFlags(FlagC))
	case opSED:
		seq = append(seq, mSetFlags(FlagD))
	case opSEI:
		seq = append(seq, mSetFlags(FlagI))
	default:
		return nil, false
	}

	return seq, true
}
