package fileprocessor

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/nesbankdisasm/internal/assembler/asm6"
	"github.com/retroenv/nesbankdisasm/internal/loader"
	"github.com/retroenv/nesbankdisasm/internal/options"
	"github.com/retroenv/nesbankdisasm/internal/pipeline"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestOutputBaseName(t *testing.T) {
	tests := []struct {
		input     string
		outputDir string
		expected  string
	}{
		{"game.nes", "", "game"},
		{filepath.Join("roms", "game.nes"), "", filepath.Join("roms", "game")},
		{filepath.Join("roms", "game.nes"), "out", filepath.Join("out", "game")},
		{"game", "out", filepath.Join("out", "game")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, OutputBaseName(tt.input, tt.outputDir))
	}
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.nes", "b.nes", "c.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	opts := &options.Program{}
	opts.Batch = filepath.Join(dir, "*.nes")
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(files))

	opts = &options.Program{}
	opts.Input = "game.nes"
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"game.nes"}, files)
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "game.nes")
	data := createMinimalNESROM(createTestCode())
	assert.NoError(t, os.WriteFile(input, data, 0644))

	outDir := filepath.Join(dir, "out")
	opts := options.Program{}
	opts.Input = input
	opts.Output = outDir
	opts.Quiet = true

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewDisassemblerFromProgram(opts))
	assert.NoError(t, err)

	prg, err := os.ReadFile(filepath.Join(outDir, "game.bin"))
	assert.NoError(t, err)
	assert.Equal(t, data[16:16+16384], prg)

	chr, err := os.ReadFile(filepath.Join(outDir, "game.chr"))
	assert.NoError(t, err)
	assert.Equal(t, 8192, len(chr))

	main, err := os.ReadFile(filepath.Join(outDir, "game.asm"))
	assert.NoError(t, err)
	assert.Contains(t, string(main), "; game.nes disassembly")
	assert.Contains(t, string(main), ".base $c000")
	assert.Contains(t, string(main), ".include game0.asm")
	assert.Contains(t, string(main), ".incbin game.chr")

	bank, err := os.ReadFile(filepath.Join(outDir, "game0.asm"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(bank), ";game0\n"))
	assert.Contains(t, string(bank), "B0_0000:\tlda #$00\t; a9 00\n")
	assert.Contains(t, string(bank), "B0_0002:\tsta $0200\t; 8d 00 02\n")
	assert.Contains(t, string(bank), "B0_0005:\trts\t; 60\n")
}

func TestProcessFileInvalidBankSize(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "game.nes")
	data := make([]byte, 16+3*16384)
	copy(data, []byte{'N', 'E', 'S', 0x1a})
	data[4] = 3
	assert.NoError(t, os.WriteFile(input, data, 0644))

	opts := options.Program{}
	opts.Input = input
	opts.BankSize = 32768

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewDisassemblerFromProgram(opts))
	assert.ErrorContains(t, err, "not a multiple")

	_, err = os.Stat(filepath.Join(dir, "game.asm"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteListings(t *testing.T) {
	single := createMinimalNESROM(createTestCode())
	data := make([]byte, 0, len(single)+16384)
	data = append(data, single[:16+16384]...)
	data = append(data, make([]byte, 16384)...) // second PRG unit
	data = append(data, single[16+16384:]...)
	data[4] = 2
	rom := loadROM(t, data)

	out, err := pipeline.New(log.NewTestLogger(t)).ExecuteWithROM(context.Background(), rom,
		options.Program{}, options.NewDisassembler(), "game")
	assert.NoError(t, err)

	files := map[string]*bytes.Buffer{}
	newWriter := func(name string) (io.WriteCloser, error) {
		buf := &bytes.Buffer{}
		files[name] = buf
		return nopCloser{buf}, nil
	}

	assert.NoError(t, WriteListings(newWriter, "game", "game.nes", out, asm6.Options{}))
	assert.Equal(t, 2, len(files))
	assert.NotNil(t, files["game0.asm"])
	assert.NotNil(t, files["game.asm"])
	assert.Contains(t, files["game0.asm"].String(), "B0_0000:\tlda #$00\n")
	assert.Contains(t, files["game.asm"].String(), ".db 2 ; = number of PRG banks * $4000")
}

func TestPrintListings(t *testing.T) {
	rom := loadROM(t, createMinimalNESROM(createTestCode()))
	out, err := pipeline.New(log.NewTestLogger(t)).ExecuteWithROM(context.Background(), rom,
		options.Program{}, options.NewDisassembler(), "game")
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, PrintListings(&buf, out.Result, asm6.Options{HexComments: true}, false))
	assert.True(t, strings.HasPrefix(buf.String(), ";bank 0\n"))
	assert.Contains(t, buf.String(), "B0_0005:\trts\t; 60\n")
}

func TestSplitRegionsWithoutCHR(t *testing.T) {
	data := createMinimalNESROM(createTestCode())
	data[5] = 0
	rom := loadROM(t, data[:16+16384])

	base := filepath.Join(t.TempDir(), "game")
	assert.NoError(t, SplitRegions(log.NewTestLogger(t), base, rom))

	_, err := os.Stat(base + ".bin")
	assert.NoError(t, err)
	_, err = os.Stat(base + ".chr")
	assert.True(t, os.IsNotExist(err))
}

func createTestCode() []byte {
	// Simple 6502 program: LDA #$00, STA $0200, RTS
	return []byte{
		0xa9, 0x00, // LDA #$00
		0x8d, 0x00, 0x02, // STA $0200
		0x60, // RTS
	}
}

// createMinimalNESROM creates a minimal valid NES ROM with the given code
func createMinimalNESROM(code []byte) []byte {
	rom := make([]byte, 0, 16+16384+8192) // Header + 16KB PRG + 8KB CHR

	// iNES header (16 bytes)
	header := []byte{
		0x4E, 0x45, 0x53, 0x1A, // "NES" + MS-DOS EOF
		0x01,       // 1x 16KB PRG-ROM
		0x01,       // 1x 8KB CHR-ROM
		0x00,       // Mapper 0, horizontal mirroring
		0x00,       // Mapper 0
		0x00,       // No PRG-RAM
		0x00,       // NTSC
		0x00, 0x00, // Unused
		0x00, 0x00, 0x00, 0x00, // Padding
	}
	rom = append(rom, header...)

	prgROM := make([]byte, 16384)
	copy(prgROM, code)
	rom = append(rom, prgROM...)

	chrROM := make([]byte, 8192)
	return append(rom, chrROM...)
}

func loadROM(t *testing.T, data []byte) *loader.ROM {
	t.Helper()
	rom, err := loader.New().LoadBytes(data)
	assert.NoError(t, err)
	return rom
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
