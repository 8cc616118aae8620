// Package verification verifies that the generated output files recreate the input.
package verification

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/nesbankdisasm/internal/assembler/asm6"
	"github.com/retroenv/retrogolib/arch/system/nes/cartridge"
	"github.com/retroenv/retrogolib/log"
)

// VerifyOutput assembles the main listing and verifies that the result
// recreates the exact input file.
func VerifyOutput(ctx context.Context, logger *log.Logger, input, mainAsm string, debug bool) error {
	dir := filepath.Dir(mainAsm)

	var outputName string
	if debug {
		outputName = filepath.Join(dir, "debug.nes")
	} else {
		outputFile, err := os.CreateTemp("", filepath.Base(mainAsm)+".*.nes")
		if err != nil {
			return fmt.Errorf("creating temp file: %w", err)
		}
		outputName = outputFile.Name()
		_ = outputFile.Close()
		defer func() {
			_ = os.Remove(outputName)
		}()
	}

	absOutput, err := filepath.Abs(outputName)
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}
	if err := asm6.AssembleUsingExternalApp(ctx, dir, filepath.Base(mainAsm), absOutput); err != nil {
		return fmt.Errorf("reassembling .nes file using asm6 failed: %w", err)
	}

	source, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading source file for comparison: %w", err)
	}

	destination, err := os.ReadFile(absOutput)
	if err != nil {
		return fmt.Errorf("reading destination file for comparison: %w", err)
	}

	if err = compareCartridgeDetails(logger, source, destination); err != nil {
		return fmt.Errorf("comparing cartridge details: %w", err)
	}

	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}

func compareCartridgeDetails(logger *log.Logger, input, output []byte) error {
	cart1, err := cartridge.LoadFile(bytes.NewReader(input))
	if err != nil {
		return fmt.Errorf("loading cartridge file: %w", err)
	}
	cart2, err := cartridge.LoadFile(bytes.NewReader(output))
	if err != nil {
		return fmt.Errorf("loading cartridge file: %w", err)
	}

	if err := checkBufferEqual(logger, cart1.PRG, cart2.PRG); err != nil {
		return fmt.Errorf("segment PRG mismatch: %w", err)
	}
	if err := checkBufferEqual(logger, cart1.CHR, cart2.CHR); err != nil {
		return fmt.Errorf("segment CHR mismatch: %w", err)
	}
	if cart1.Mapper != cart2.Mapper {
		return fmt.Errorf("mapper mismatch, expected %d but got %d", cart1.Mapper, cart2.Mapper)
	}
	if cart1.Mirror != cart2.Mirror {
		return fmt.Errorf("mirror mismatch, expected %d but got %d", cart1.Mirror, cart2.Mirror)
	}
	if cart1.Battery != cart2.Battery {
		return fmt.Errorf("battery mismatch, expected %d but got %d", cart1.Battery, cart2.Battery)
	}
	if err := checkBufferEqual(logger, input, output); err != nil {
		return fmt.Errorf("file mismatch: %w", err)
	}
	return nil
}
