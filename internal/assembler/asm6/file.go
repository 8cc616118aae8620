// Package asm6 provides helpers to create asm6 assembler compatible asm output.
package asm6

import (
	"fmt"
	"io"

	"github.com/retroenv/nesbankdisasm/internal/disasm"
	"github.com/retroenv/nesbankdisasm/internal/mapper"
)

var iNESHeader = `.db "NES", $1a`

var headerByte = ".db %d%s\n"

// MainInfo contains the cartridge information of the main listing.
type MainInfo struct {
	FileName string   // name of the disassembled ROM file
	BaseName string   // base name of all generated files
	Header   [16]byte // raw iNES header
	HasCHR   bool
}

// FileWriter writes the main listing that contains the header and includes
// the bank listings.
type FileWriter struct {
	info       MainInfo
	fragments  []disasm.Fragment
	mainWriter io.Writer
}

type headerByteWrite struct {
	value   byte
	comment string
}

type segmentWrite struct {
	address uint16
}

type fragmentWrite struct {
	fragment disasm.Fragment
}

type customWrite func() error

type lineWrite string

// New creates a new main listing writer.
func New(info MainInfo, fragments []disasm.Fragment, mainWriter io.Writer) FileWriter {
	return FileWriter{
		info:       info,
		fragments:  fragments,
		mainWriter: mainWriter,
	}
}

// Write writes the main listing content including header, bank includes and CHR.
func (f FileWriter) Write() error {
	h := f.info.Header
	number := mapper.Number(h)

	writes := []any{
		lineWrite(fmt.Sprintf("; %s disassembly", f.info.FileName)),
		lineWrite("; for asm6\n"),
		lineWrite("; *** HEADER ***\n"),
		lineWrite(iNESHeader),
		headerByteWrite{value: h[4], comment: " ; = number of PRG banks * $4000"},
		headerByteWrite{value: h[5], comment: " ; = number of CHR banks * $2000"},
		headerByteWrite{value: h[6], comment: "\t; " + mapper.Name(number)},
		headerByteWrite{value: h[7]},
		headerByteWrite{value: h[8]},
		headerByteWrite{value: h[9]},
		headerByteWrite{value: h[10]},
		lineWrite(".db 0,0,0,0,0\n"),
		lineWrite("; *** PRG ROM ***"),
	}

	for i, fragment := range f.fragments {
		if i == 0 {
			writes = append(writes, segmentWrite{address: fragment.Origin})
		}
		writes = append(writes, fragmentWrite{fragment: fragment})
	}

	writes = append(writes,
		lineWrite("; *** CHR ROM ***\n"),
		customWrite(f.writeCHR),
	)

	for _, write := range writes {
		switch t := write.(type) {
		case headerByteWrite:
			if _, err := fmt.Fprintf(f.mainWriter, headerByte, t.value, t.comment); err != nil {
				return fmt.Errorf("writing header: %w", err)
			}

		case segmentWrite:
			if err := f.writeSegment(t.address); err != nil {
				return err
			}

		case fragmentWrite:
			if err := f.writeFragment(t.fragment); err != nil {
				return err
			}

		case lineWrite:
			if _, err := fmt.Fprintln(f.mainWriter, t); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}

		case customWrite:
			if err := t(); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeSegment writes a base address directive to the output.
func (f FileWriter) writeSegment(address uint16) error {
	if _, err := fmt.Fprintf(f.mainWriter, "\n.base $%04x\n\n", address); err != nil {
		return fmt.Errorf("writing segment: %w", err)
	}
	return nil
}

// writeFragment writes the include of a bank listing and the base address
// that resets the address after it.
func (f FileWriter) writeFragment(fragment disasm.Fragment) error {
	if _, err := fmt.Fprintf(f.mainWriter, ".include %s\n\n", fragment.Include); err != nil {
		return fmt.Errorf("writing include: %w", err)
	}
	if !fragment.HasBase {
		return nil
	}
	if _, err := fmt.Fprintf(f.mainWriter, ".base $%04x\n\n", fragment.Base); err != nil {
		return fmt.Errorf("writing base: %w", err)
	}
	return nil
}

// writeCHR writes the CHR include to the output.
func (f FileWriter) writeCHR() error {
	line := ";No CHR ROM"
	if f.info.HasCHR {
		line = fmt.Sprintf(".incbin %s.chr", f.info.BaseName)
	}
	if _, err := fmt.Fprintln(f.mainWriter, line); err != nil {
		return fmt.Errorf("writing CHR: %w", err)
	}
	return nil
}
