package cpu

// The opcode byte splits as AAA.BBB.CC: CC selects a major group (or the
// branch/single-byte carve-outs), BBB selects addressing mode within a
// group, and AAA selects the operation. These masks extract each field.
const (
	opcodeMask   = 0b11100000
	addrModeMask = 0b00011100
	opcodeCCMask = 0b00000011
	ccGroupOne   = 0b01
	ccGroupTwo   = 0b10
	ccGroupThree = 0b00
)

// Sequence decodes one opcode byte into its ordered list of micro-ops.
// Decoding proceeds conditional-branch detector, then single-byte
// implied/stack/transfer instructions, then group-based decomposition —
// in that order, matching the documented decode precedence. An opcode
// matching nothing is unknown and returns an empty sequence (a one-cycle
// no-op at the CPU loop level).
//
// Sequence takes the Chip (not just the opcode byte) because branch
// decoding needs to peek the not-yet-consumed operand byte and the
// current flag value to decide, at decode time, whether the taken branch
// crosses a page and needs an extra idle cycle.
func (c *Chip) Sequence(opcode uint8) []microOp {
	if seq, ok := c.sequenceBranch(opcode); ok {
		return seq
	}
	if seq, ok := sequenceOther(opcode); ok {
		return seq
	}
	switch opcode & opcodeCCMask {
	case ccGroupOne:
		if seq, ok := sequenceGroupOne(opcode); ok {
			return seq
		}
	case ccGroupTwo:
		if seq, ok := sequenceGroupTwo(opcode); ok {
			return seq
		}
	case ccGroupThree:
		if seq, ok := sequenceGroupThree(opcode); ok {
			return seq
		}
	}
	return nil
}
