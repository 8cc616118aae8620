// Package decoder decodes single 6502 instructions from a bank of program code.
package decoder

import (
	"fmt"

	"github.com/retroenv/nesbankdisasm/internal/opcode"
)

// Kind defines how an instruction is emitted.
type Kind int

const (
	// Code is a symbolic instruction.
	Code Kind = iota
	// Data is a single raw byte, used for unknown opcodes and the bank tail.
	Data
	// HexFallback outputs all instruction bytes raw, used for absolute class
	// operands with a zero high byte.
	HexFallback
	// Repaired is a branch whose target label does not exist in the bank.
	Repaired
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Code:
		return "code"
	case Data:
		return "data"
	case HexFallback:
		return "hex"
	case Repaired:
		return "repaired"
	default:
		return "unknown"
	}
}

// Instruction is a decoded instruction or data byte at an offset of a bank.
type Instruction struct {
	Bank    int
	Offset  int    // offset within the bank
	Bytes   []byte // opcode and operand bytes
	Kind    Kind
	Entry   opcode.Entry
	Operand string // operand text of a Code instruction
	Target  int    // target offset of a branch, can be outside of the bank
	Labeled bool   // a label is defined at the offset of the instruction
}

// Length returns the number of bytes of the instruction.
func (i Instruction) Length() int {
	return len(i.Bytes)
}

// IsBranch returns whether the instruction is a symbolic branch that references a label.
func (i Instruction) IsBranch() bool {
	return i.Kind == Code && i.Entry.Branch
}

// Label returns the name of the label defined at the instruction offset.
func (i Instruction) Label() string {
	return Label(i.Bank, i.Offset)
}

// TargetLabel returns the name of the label that a branch references.
func (i Instruction) TargetLabel() string {
	return Label(i.Bank, i.Target)
}

// Label returns the bank qualified name of a label at the given bank offset.
func Label(bank, offset int) string {
	return fmt.Sprintf("B%d_%04x", bank, uint16(offset))
}

// BranchTarget returns the target offset of a relative branch at the given
// offset. The displacement is relative to the end of the 2 byte branch instruction.
func BranchTarget(offset int, displacement byte) int {
	return offset + int(int8(displacement)) + 2
}

// Decode decodes the instruction at the cursor position and advances the cursor
// by its length. It never fails, opcodes that are unknown or that would read
// past the end of the bank are returned as a single data byte.
func Decode(c *Cursor) Instruction {
	offset := c.Pos()
	b, _ := c.Peek(0)
	entry := opcode.Lookup(b)

	ins := Instruction{
		Bank:    c.Bank(),
		Offset:  offset,
		Entry:   entry,
		Labeled: true,
	}

	if !entry.Known() || entry.Length() > c.Remaining() {
		ins.Kind = Data
		ins.Bytes = c.Advance(1)
		return ins
	}

	ins.Bytes = c.Advance(entry.Length())

	switch entry.OperandLength {
	case 1:
		ins.Operand = byteOperand(ins.Bank, offset, entry, ins.Bytes[1])
		if entry.Branch {
			ins.Target = BranchTarget(offset, ins.Bytes[1])
		}

	case 2:
		if ins.Bytes[2] == 0 {
			ins.Kind = HexFallback
			return ins
		}
		ins.Operand = wordOperand(entry, ins.Bytes[1], ins.Bytes[2])

	default:
		if entry.Mode == opcode.Accumulator {
			ins.Operand = "a"
		}
	}

	return ins
}

// Tail returns all remaining bytes of the cursor as unlabeled data bytes.
func Tail(c *Cursor) []Instruction {
	var tail []Instruction
	for c.Remaining() > 0 {
		offset := c.Pos()
		tail = append(tail, Instruction{
			Bank:   c.Bank(),
			Offset: offset,
			Bytes:  c.Advance(1),
			Kind:   Data,
		})
	}
	return tail
}

func byteOperand(bank, offset int, entry opcode.Entry, value byte) string {
	switch entry.Mode {
	case opcode.Immediate:
		return fmt.Sprintf("#$%02x", value)
	case opcode.ZeroPageX:
		return fmt.Sprintf("$%02x, x", value)
	case opcode.ZeroPageY:
		return fmt.Sprintf("$%02x, y", value)
	case opcode.IndirectX:
		return fmt.Sprintf("($%02x, x)", value)
	case opcode.IndirectY:
		return fmt.Sprintf("($%02x), y", value)
	case opcode.Relative:
		return Label(bank, BranchTarget(offset, value))
	default:
		return fmt.Sprintf("$%02x", value)
	}
}

func wordOperand(entry opcode.Entry, low, high byte) string {
	switch entry.Mode {
	case opcode.AbsoluteX:
		return fmt.Sprintf("$%02x%02x, x", high, low)
	case opcode.AbsoluteY:
		return fmt.Sprintf("$%02x%02x, y", high, low)
	case opcode.Indirect:
		return fmt.Sprintf("($%02x%02x)", high, low)
	default:
		return fmt.Sprintf("$%02x%02x", high, low)
	}
}
