// Package disasm splits the PRG region of a cartridge into banks and
// disassembles them independently.
package disasm

import (
	"context"
	"fmt"

	"github.com/retroenv/nesbankdisasm/internal/bank"
	"github.com/retroenv/nesbankdisasm/internal/labels"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sync/errgroup"
)

// Config of the bank orchestrator.
type Config struct {
	BankSize int
	Workers  int // number of banks processed in parallel, 0 or 1 is sequential
	Tail     bank.TailMode
}

// ConfigurationError is returned when the bank configuration does not fit the
// PRG region. The disassembler refuses to start instead of truncating the region.
type ConfigurationError struct {
	RegionLength int
	BankSize     int
	Reason       string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid bank size %d for PRG size %d: %s", e.BankSize, e.RegionLength, e.Reason)
}

// Fragment is an entry of the main listing that places a bank listing.
type Fragment struct {
	Include string // name of the included bank listing
	Origin  uint16 // address that the bank is assembled at
	Base    uint16 // base address that follows the include
	HasBase bool
}

// Result of the disassembly of all banks, ordered by bank index.
type Result struct {
	Banks     []bank.Listing
	Fragments []Fragment
}

// Disasm disassembles the PRG region of a cartridge bank by bank.
type Disasm struct {
	logger *log.Logger
	cfg    Config
}

// New returns a new bank orchestrator.
func New(logger *log.Logger, cfg Config) *Disasm {
	return &Disasm{
		logger: logger,
		cfg:    cfg,
	}
}

// Validate checks that the region can be split into banks of the given size.
func Validate(regionLength, bankSize int) error {
	var reason string
	switch {
	case bankSize <= 0:
		reason = "bank size has to be positive"
	case bankSize > regionLength:
		reason = "bank size exceeds PRG size"
	case regionLength%bankSize != 0:
		reason = "PRG size is not a multiple of the bank size"
	default:
		return nil
	}

	return &ConfigurationError{
		RegionLength: regionLength,
		BankSize:     bankSize,
		Reason:       reason,
	}
}

// Process disassembles all banks of the PRG region. multiPRG defines whether
// the cartridge has more than one 16KB PRG unit, which sets the origin of the
// first bank. baseName is used to name the bank listings in the fragments.
func (dis *Disasm) Process(ctx context.Context, prg []byte, multiPRG bool, baseName string) (*Result, error) {
	if err := Validate(len(prg), dis.cfg.BankSize); err != nil {
		return nil, err
	}

	count := len(prg) / dis.cfg.BankSize
	banks := make([]bank.Bank, count)
	for i := range banks {
		start := i * dis.cfg.BankSize
		banks[i] = bank.Bank{
			Index:  i,
			Origin: origin(i, multiPRG),
			Data:   prg[start : start+dis.cfg.BankSize : start+dis.cfg.BankSize],
		}
	}

	dis.logger.Debug("Disassembling PRG",
		log.Int("banks", count),
		log.Int("bank_size", dis.cfg.BankSize),
		log.Int("workers", dis.cfg.Workers))

	listings := make([]bank.Listing, count)
	if err := dis.processBanks(ctx, banks, listings); err != nil {
		return nil, err
	}

	return &Result{
		Banks:     listings,
		Fragments: Fragments(baseName, banks),
	}, nil
}

// processBanks disassembles the banks into the listing slot with the same
// index, so that the listing order does not depend on the worker scheduling.
func (dis *Disasm) processBanks(ctx context.Context, banks []bank.Bank, listings []bank.Listing) error {
	if dis.cfg.Workers <= 1 {
		for i, b := range banks {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("disassembling bank %d: %w", i, err)
			}
			listings[i] = dis.processBank(b)
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(dis.cfg.Workers)
	for i, b := range banks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("disassembling bank %d: %w", i, err)
			}
			listings[i] = dis.processBank(b)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("processing banks: %w", err)
	}
	return nil
}

func (dis *Disasm) processBank(b bank.Bank) bank.Listing {
	instructions := bank.Disassemble(b, bank.Options{Tail: dis.cfg.Tail})
	repaired := labels.Repair(instructions)

	dis.logger.Debug("Disassembled bank",
		log.Int("bank", b.Index),
		log.Hex("origin", b.Origin),
		log.Int("size", b.Size()),
		log.Int("instructions", len(instructions)),
		log.Int("repaired_labels", repaired))

	return bank.Listing{
		Bank:         b,
		Instructions: instructions,
		Repaired:     repaired,
	}
}

// Fragments returns the main listing entries of the banks. Every bank but
// the last one is followed by a base that sets the origin of the next bank.
func Fragments(baseName string, banks []bank.Bank) []Fragment {
	fragments := make([]Fragment, len(banks))
	for i, b := range banks {
		fragments[i] = Fragment{
			Include: fmt.Sprintf("%s%d.asm", baseName, b.Index),
			Origin:  b.Origin,
		}
		if i < len(banks)-1 {
			fragments[i].Base = banks[i+1].Origin
			fragments[i].HasBase = true
		}
	}
	return fragments
}

func origin(index int, multiPRG bool) uint16 {
	if index > 0 || multiPRG {
		return bank.OriginMulti
	}
	return bank.OriginSingle
}
