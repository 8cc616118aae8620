package asm6

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/nesbankdisasm/internal/bank"
	"github.com/retroenv/nesbankdisasm/internal/decoder"
)

const repairedComment = "label removed"

// Options of the listing output.
type Options struct {
	HexComments bool // output the instruction bytes as comment
}

// Line returns the listing line of an instruction.
func Line(ins decoder.Instruction, opts Options) string {
	var sb strings.Builder
	if ins.Labeled {
		sb.WriteString(ins.Label())
		sb.WriteByte(':')
	}
	sb.WriteByte('\t')

	switch ins.Kind {
	case decoder.Data:
		fmt.Fprintf(&sb, ".db $%02x", ins.Bytes[0])

	case decoder.HexFallback:
		sb.WriteString(".hex ")
		sb.WriteString(hexBytes(ins.Bytes))

	case decoder.Repaired:
		sb.WriteString(".hex ")
		sb.WriteString(hexBytes(ins.Bytes))
		sb.WriteString("\t; ")
		sb.WriteString(repairedComment)

	default:
		sb.WriteString(ins.Entry.Mnemonic)
		if ins.Operand != "" {
			sb.WriteByte(' ')
			sb.WriteString(ins.Operand)
		}
		if opts.HexComments {
			sb.WriteString("\t; ")
			sb.WriteString(hexBytes(ins.Bytes))
		}
	}

	return sb.String()
}

// WriteBank writes the listing of a single bank, starting with a comment
// that contains the name of the listing.
func WriteBank(w io.Writer, name string, listing bank.Listing, opts Options) error {
	buf := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(buf, ";%s\n\n\n", name); err != nil {
		return fmt.Errorf("writing bank header: %w", err)
	}

	for _, ins := range listing.Instructions {
		if _, err := fmt.Fprintln(buf, Line(ins, opts)); err != nil {
			return fmt.Errorf("writing bank %d offset %04x: %w", listing.Bank.Index, ins.Offset, err)
		}
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flushing bank %d: %w", listing.Bank.Index, err)
	}
	return nil
}

// Bytes returns the concatenated bytes of all instructions.
func Bytes(instructions []decoder.Instruction) []byte {
	size := 0
	for _, ins := range instructions {
		size += ins.Length()
	}

	b := make([]byte, 0, size)
	for _, ins := range instructions {
		b = append(b, ins.Bytes...)
	}
	return b
}

func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(parts, " ")
}
