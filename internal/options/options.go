// Package options contains the program options.
package options

import (
	"github.com/retroenv/nesbankdisasm/internal/bank"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Output string `flag:"o" usage:"output directory (default: directory of the input file)"`
	Config string `flag:"c" usage:"JSON config file"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.nes)"`
}

// Flags contains behavior options.
type Flags struct {
	BankSize     int  `flag:"b" usage:"bank size: 8192, 16384 or 32768 (default: mapper recommendation)"`
	Workers      int  `flag:"j" usage:"number of banks to disassemble in parallel"`
	FixedTail    bool `flag:"fixed-tail" usage:"never decode the last 2 bytes of a bank"`
	Print        bool `flag:"print" usage:"print the bank listings to the console"`
	NoColor      bool `flag:"no-color" usage:"disable syntax highlighting of printed listings"`
	AssembleTest bool `flag:"verify" usage:"verify output by reassembling and comparing to input"`
	Debug        bool `flag:"debug" usage:"enable debug logging"`
	Quiet        bool `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	NoHexComments bool `flag:"nohexcomments" usage:"omit hex opcode bytes in comments"`
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	BankSize    int // 0 selects the bank size recommended for the mapper
	Workers     int
	Tail        bank.TailMode
	HexComments bool
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		HexComments: true,
	}
}

// NewDisassemblerFromProgram returns the disassembler options that the program options select.
func NewDisassemblerFromProgram(opts Program) Disassembler {
	disasmOpts := NewDisassembler()
	disasmOpts.BankSize = opts.BankSize
	disasmOpts.Workers = opts.Workers
	disasmOpts.HexComments = !opts.NoHexComments
	if opts.FixedTail {
		disasmOpts.Tail = bank.TailFixed
	}
	return disasmOpts
}
