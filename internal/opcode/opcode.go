// Package opcode provides the opcode table of the official 6502 instruction set.
package opcode

// MaxLength is the maximum length in bytes of an instruction including its opcode byte.
const MaxLength = 3

// Entry describes a single opcode byte value.
type Entry struct {
	Mnemonic      string
	Mode          AddressingMode
	OperandLength int  // 0, 1 or 2
	Branch        bool // relative addressed conditional branch
}

// Known returns whether the entry describes a defined opcode.
func (e Entry) Known() bool {
	return e.Mode != Unknown
}

// Length returns the total instruction length including the opcode byte.
func (e Entry) Length() int {
	return 1 + e.OperandLength
}

// Lookup returns the table entry for the given opcode byte. Byte values that
// are not part of the official instruction set return an entry with the
// Unknown addressing mode.
func Lookup(b byte) Entry {
	return table[b]
}

// Count returns the number of defined opcodes in the table.
func Count() int {
	count := 0
	for _, entry := range table {
		if entry.Known() {
			count++
		}
	}
	return count
}

func op(mnemonic string, mode AddressingMode) Entry {
	return Entry{
		Mnemonic:      mnemonic,
		Mode:          mode,
		OperandLength: mode.OperandLength(),
		Branch:        mode == Relative,
	}
}
