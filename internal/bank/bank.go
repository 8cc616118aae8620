// Package bank implements the linear sweep disassembly of a single PRG bank.
package bank

import (
	"github.com/retroenv/nesbankdisasm/internal/decoder"
	"github.com/retroenv/nesbankdisasm/internal/opcode"
)

// Default origin addresses of the first bank.
const (
	OriginMulti  uint16 = 0x8000 // more than one 16KB PRG unit
	OriginSingle uint16 = 0xc000 // a single 16KB PRG unit, mirrored to the top of the address space
)

// TailMode defines where the linear sweep of a bank stops decoding instructions.
type TailMode int

const (
	// TailOverrun decodes until the next instruction would read past the end
	// of the bank, the remaining bytes are output as data.
	TailOverrun TailMode = iota
	// TailFixed stops decoding 2 bytes before the end of the bank and always
	// outputs the last bytes as data.
	TailFixed
)

// fixedTailSize is the number of bytes that TailFixed never decodes.
const fixedTailSize = 2

// Options of the bank disassembler.
type Options struct {
	Tail TailMode
}

// Bank is a fixed size slice of the PRG region that gets disassembled
// independently with its own label namespace.
type Bank struct {
	Index  int
	Origin uint16
	Data   []byte
}

// Size returns the size of the bank in bytes.
func (b Bank) Size() int {
	return len(b.Data)
}

// Listing is the disassembled content of a bank.
type Listing struct {
	Bank         Bank
	Instructions []decoder.Instruction
	Repaired     int // number of branches that were converted to data
}

// Disassemble decodes every instruction of the bank in a linear sweep, each
// instruction start gets a label. The returned instructions cover every byte
// of the bank exactly once.
func Disassemble(b Bank, opts Options) []decoder.Instruction {
	c := decoder.NewCursor(b.Index, b.Data)
	instructions := make([]decoder.Instruction, 0, b.Size())

	for decoding(c, opts.Tail) {
		instructions = append(instructions, decoder.Decode(c))
	}

	return append(instructions, decoder.Tail(c)...)
}

// decoding returns whether the instruction at the cursor position gets decoded
// or whether the tail emission starts.
func decoding(c *decoder.Cursor, mode TailMode) bool {
	if mode == TailFixed {
		return c.Pos() < c.Len()-fixedTailSize
	}

	if c.Remaining() == 0 {
		return false
	}
	b, _ := c.Peek(0)
	return opcode.Lookup(b).Length() <= c.Remaining()
}
