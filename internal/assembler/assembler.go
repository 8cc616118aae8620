// Package assembler defines the available assembler output formats.
package assembler

import (
	"io"
)

const (
	Asm6 = "asm6"
)

// NewBankWriter is a callback that creates a new file for a bank listing
// that the main listing includes.
type NewBankWriter func(fileName string) (io.WriteCloser, error)
