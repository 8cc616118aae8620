// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"

	"github.com/retroenv/nesbankdisasm/internal/config"
	"github.com/retroenv/nesbankdisasm/internal/mapper"
	"github.com/retroenv/nesbankdisasm/internal/options"
	"github.com/spf13/cobra"
)

// RunFunc processes the files selected by the parsed options.
type RunFunc func(cmd *cobra.Command, opts options.Program, disasmOpts options.Disassembler) error

// NewRootCommand returns the root command of the disassembler.
func NewRootCommand(version string, run RunFunc) *cobra.Command {
	var opts options.Program

	cmd := &cobra.Command{
		Use:   "nesbankdisasm [options] <file to disassemble>",
		Short: "Bank-wise 6502 disassembler for NES ROMs",
		Long: `nesbankdisasm splits the PRG ROM of an iNES file into fixed size banks and
disassembles every bank into an asm6 compatible listing. A main listing
recreates the iNES header, includes all banks and the CHR ROM.`,
		Example: `
# Disassemble using the bank size recommended for the mapper
nesbankdisasm game.nes

# Disassemble in 8KB banks into the out directory
nesbankdisasm -b 8192 -o out game.nes

# Disassemble all ROMs of a directory
nesbankdisasm --batch "roms/*.nes"
  `,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			return validateArgs(opts, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			programOpts, disasmOpts, err := ParseFlags(cmd, opts, args)
			if err != nil {
				return err
			}
			return run(cmd, programOpts, disasmOpts)
		},
	}

	readOptionFlags(cmd, &opts)
	cmd.AddCommand(newSchemaCommand())
	return cmd
}

// ParseFlags completes the options that were read from the command line flags
// with the positional input file and the optional config file and validates them.
func ParseFlags(cmd *cobra.Command, opts options.Program, args []string) (options.Program, options.Disassembler, error) {
	if len(args) > 0 {
		opts.Input = args[0]
	}

	if opts.Config != "" {
		f, err := config.Load(opts.Config)
		if err != nil {
			return opts, options.Disassembler{}, err
		}
		f.Apply(&opts, cmd.Flags().Changed)
	}

	if err := validateOptions(opts); err != nil {
		return opts, options.Disassembler{}, err
	}

	return opts, options.NewDisassemblerFromProgram(opts), nil
}

// validateArgs checks that either a single file or a batch pattern is passed.
func validateArgs(opts options.Program, args []string) error {
	switch {
	case opts.Batch != "" && len(args) > 0:
		return errors.New("a file to disassemble can not be combined with the batch option")
	case opts.Batch == "" && len(args) != 1:
		return errors.New("expected exactly one file to disassemble")
	default:
		return nil
	}
}

// validateOptions checks option values and combinations.
func validateOptions(opts options.Program) error {
	if opts.BankSize != 0 && !mapper.IsValidBankSize(opts.BankSize) {
		return fmt.Errorf("unsupported bank size %d, valid sizes: %v", opts.BankSize, mapper.ValidBankSizes)
	}
	if opts.Workers < 0 {
		return fmt.Errorf("invalid number of workers %d", opts.Workers)
	}
	if opts.Debug && opts.Quiet {
		return errors.New("debug and quiet options can not be combined")
	}
	return nil
}

func readOptionFlags(cmd *cobra.Command, opts *options.Program) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.Output, "output", "o", "", "output directory of the generated files (default: directory of the input file)")
	flags.StringVarP(&opts.Config, "config", "c", "", "JSON config file, see the schema command")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask, for example *.nes")
	flags.IntVarP(&opts.BankSize, "bank-size", "b", 0, "bank size in bytes: 8192, 16384 or 32768 (default: recommendation for the mapper)")
	flags.IntVarP(&opts.Workers, "workers", "j", 1, "number of banks to disassemble in parallel")
	flags.BoolVar(&opts.FixedTail, "fixed-tail", false, "always output the last 2 bytes of a bank as data (classic fixed bank tail) instead of decoding instructions that fit")
	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in comments")
	flags.BoolVar(&opts.Print, "print", false, "print the bank listings on the console")
	flags.BoolVar(&opts.NoColor, "no-color", false, "disable syntax highlighting of printed listings")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "perform operations quietly")
	flags.BoolVar(&opts.AssembleTest, "verify", false, "verify the generated output by assembling with asm6f and check if it matches the input")
}
