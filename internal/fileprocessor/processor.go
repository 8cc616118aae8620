// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/nesbankdisasm/internal/assembler"
	"github.com/retroenv/nesbankdisasm/internal/assembler/asm6"
	"github.com/retroenv/nesbankdisasm/internal/disasm"
	"github.com/retroenv/nesbankdisasm/internal/highlight"
	"github.com/retroenv/nesbankdisasm/internal/loader"
	"github.com/retroenv/nesbankdisasm/internal/options"
	"github.com/retroenv/nesbankdisasm/internal/pipeline"
	"github.com/retroenv/nesbankdisasm/internal/verification"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, disasmOpts options.Disassembler) error {
	base := OutputBaseName(opts.Input, opts.Output)
	dir := filepath.Dir(base)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	pipe := pipeline.New(logger)
	out, err := pipe.Execute(ctx, opts, disasmOpts, filepath.Base(base))
	if err != nil {
		return err
	}

	if err := SplitRegions(logger, base, out.ROM); err != nil {
		return err
	}

	newFileWriter := func(fileName string) (io.WriteCloser, error) {
		path := filepath.Join(dir, fileName)
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("creating file %s: %w", path, err)
		}
		logger.Info("Created file", log.String("file", path))
		return f, nil
	}

	listingOpts := asm6.Options{HexComments: disasmOpts.HexComments}
	if err := WriteListings(newFileWriter, filepath.Base(base), filepath.Base(opts.Input), out, listingOpts); err != nil {
		return err
	}

	if opts.Print {
		if err := PrintListings(os.Stdout, out.Result, listingOpts, !opts.NoColor); err != nil {
			return err
		}
	}

	if opts.AssembleTest {
		if err := verification.VerifyOutput(ctx, logger, opts.Input, base+".asm", opts.Debug); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		logger.Info("Verification successful")
	}

	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// OutputBaseName returns the path prefix of all files generated for the
// input file. The files are written next to the input file if no output
// directory is given.
func OutputBaseName(inputFile, outputDir string) string {
	name := filepath.Base(inputFile)
	name = name[:len(name)-len(filepath.Ext(name))]
	if outputDir == "" {
		outputDir = filepath.Dir(inputFile)
	}
	return filepath.Join(outputDir, name)
}

// SplitRegions writes the PRG region to <base>.bin and the CHR region, if
// the cartridge has one, to <base>.chr.
func SplitRegions(logger *log.Logger, base string, rom *loader.ROM) error {
	if err := writeRegion(logger, base+".bin", rom.PRG); err != nil {
		return err
	}
	if len(rom.CHR) == 0 {
		logger.Info("No CHR ROM")
		return nil
	}
	return writeRegion(logger, base+".chr", rom.CHR)
}

func writeRegion(logger *log.Logger, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	logger.Info("Created file", log.String("file", path), log.Int("size", len(data)))
	return nil
}

// WriteListings writes the listing of every bank to <baseName><bank>.asm and
// the main listing that includes them to <baseName>.asm.
func WriteListings(newFileWriter assembler.NewBankWriter, baseName, inputName string,
	out *pipeline.Output, opts asm6.Options) error {

	for _, listing := range out.Result.Banks {
		name := fmt.Sprintf("%s%d", baseName, listing.Bank.Index)
		if err := writeFile(newFileWriter, name+".asm", func(w io.Writer) error {
			return asm6.WriteBank(w, name, listing, opts)
		}); err != nil {
			return err
		}
	}

	info := asm6.MainInfo{
		FileName: inputName,
		BaseName: baseName,
		Header:   out.ROM.Header,
		HasCHR:   len(out.ROM.CHR) > 0,
	}
	return writeFile(newFileWriter, baseName+".asm", func(w io.Writer) error {
		return asm6.New(info, out.Result.Fragments, w).Write()
	})
}

// PrintListings writes all bank listings to the writer, highlighted for a
// terminal if color is set.
func PrintListings(w io.Writer, result *disasm.Result, opts asm6.Options, color bool) error {
	var buf bytes.Buffer
	for _, listing := range result.Banks {
		if err := asm6.WriteBank(&buf, fmt.Sprintf("bank %d", listing.Bank.Index), listing, opts); err != nil {
			return err
		}
	}

	text := buf.String()
	if color {
		colored, err := highlight.Colorize(text)
		if err != nil {
			return fmt.Errorf("highlighting listing: %w", err)
		}
		text = colored
	}

	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("printing listing: %w", err)
	}
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := buildinfo.Version(version, commit, date)
	logger.Info("nesbankdisasm", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

func writeFile(newFileWriter assembler.NewBankWriter, name string, write func(w io.Writer) error) error {
	w, err := newFileWriter(name)
	if err != nil {
		return err
	}

	if err := write(w); err != nil {
		_ = w.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	return nil
}
