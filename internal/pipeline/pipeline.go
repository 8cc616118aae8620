// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"

	"github.com/retroenv/nesbankdisasm/internal/disasm"
	"github.com/retroenv/nesbankdisasm/internal/loader"
	"github.com/retroenv/nesbankdisasm/internal/mapper"
	"github.com/retroenv/nesbankdisasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Output of a pipeline run.
type Output struct {
	ROM      *loader.ROM
	BankSize int
	Result   *disasm.Result
}

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute loads the input file and disassembles all of its PRG banks.
// baseName is the file name prefix of the generated bank listings.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler,
	baseName string) (*Output, error) {

	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading cartridge: %w", err)
	}

	return p.ExecuteWithROM(ctx, rom, opts, disasmOpts, baseName)
}

// ExecuteWithROM runs the disassembly pipeline with a pre-loaded cartridge.
// This is useful for testing and programmatic usage where the cartridge is already in memory.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom *loader.ROM, opts options.Program,
	disasmOpts options.Disassembler, baseName string) (*Output, error) {

	p.printInfo(opts, rom)

	bankSize := p.chooseBankSize(disasmOpts.BankSize, rom)
	dis := disasm.New(p.logger, disasm.Config{
		BankSize: bankSize,
		Workers:  disasmOpts.Workers,
		Tail:     disasmOpts.Tail,
	})

	result, err := dis.Process(ctx, rom.PRG, rom.MultiPRG(), baseName)
	if err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	repaired := 0
	for _, listing := range result.Banks {
		repaired += listing.Repaired
	}
	p.logger.Debug("Disassembly finished",
		log.Int("banks", len(result.Banks)),
		log.Int("repaired_labels", repaired))

	return &Output{
		ROM:      rom,
		BankSize: bankSize,
		Result:   result,
	}, nil
}

// chooseBankSize returns the requested bank size or the recommendation for
// the mapper. A bank size that exceeds the PRG size is reduced to it.
func (p *Pipeline) chooseBankSize(requested int, rom *loader.ROM) int {
	recommended := mapper.RecommendedBankSize(rom.PRGUnits, rom.Mapper)

	size := requested
	switch {
	case size == 0:
		size = recommended
	case size != recommended:
		p.logger.Warn("Bank size differs from the recommendation for the mapper",
			log.Int("bank_size", size),
			log.Int("recommended", recommended))
	}

	if size > len(rom.PRG) {
		p.logger.Warn("Bank size exceeds total PRG ROM size",
			log.Int("bank_size", size),
			log.Int("prg_size", len(rom.PRG)))
		size = len(rom.PRG)
	}

	p.logger.Debug("Bank size selected", log.Int("bank_size", size))
	return size
}

// printInfo prints information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, rom *loader.ROM) {
	if rom.HasTrainer() {
		p.logger.Warn("Trainer is not included in the listing, the reassembled file will differ",
			log.String("file", opts.Input))
	}
	if rom.DirtyHeader() {
		p.logger.Warn("Unused header bytes 11-15 are set and will be written as zero",
			log.String("file", opts.Input),
			log.String("header_tail", fmt.Sprintf("% x", rom.Header[11:])))
	}

	if opts.Quiet {
		return
	}

	p.logger.Info("Processing NES ROM",
		log.String("file", opts.Input),
		log.Uint8("mapper", rom.Mapper),
		log.String("mapper_name", mapper.Name(rom.Mapper)),
		log.Int("prg_size", len(rom.PRG)),
		log.Int("chr_size", len(rom.CHR)),
		log.String("mirroring", mapper.Mirroring(rom.Header)),
	)
	if mapper.HasExtraRAM(rom.Header) {
		p.logger.Info("Cartridge has extra RAM at $6000")
	}
}
