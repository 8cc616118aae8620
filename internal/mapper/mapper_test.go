package mapper

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		number   byte
		expected string
	}{
		{0, "NROM"},
		{1, "MMC1 SxROM"},
		{4, "MMC3 TxROM"},
		{34, "BNROM or NINA-001"},
		{119, "TQROM"},
		{6, "Other"},
		{255, "Other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Name(tt.number))
	}
}

func TestNumber(t *testing.T) {
	var header [16]byte
	header[6] = 0x41
	header[7] = 0x20
	assert.Equal(t, byte(0x24), Number(header))

	header[6] = 0x01
	header[7] = 0x0f
	assert.Equal(t, byte(0), Number(header))
}

func TestRecommendedBankSize(t *testing.T) {
	tests := []struct {
		name     string
		prgUnits int
		number   byte
		expected int
	}{
		{"nrom single unit", 1, 0, 0x4000},
		{"nrom two units", 2, 0, 0x8000},
		{"mmc1", 8, 1, 0x4000},
		{"mmc3", 16, 4, 0x2000},
		{"mmc3 two units", 2, 4, 0x2000},
		{"axrom", 8, 7, 0x8000},
		{"bnrom", 4, 34, 0x8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RecommendedBankSize(tt.prgUnits, tt.number))
		})
	}
}

func TestIsValidBankSize(t *testing.T) {
	assert.True(t, IsValidBankSize(8192))
	assert.True(t, IsValidBankSize(16384))
	assert.True(t, IsValidBankSize(32768))
	assert.False(t, IsValidBankSize(0))
	assert.False(t, IsValidBankSize(4096))
}

func TestMirroring(t *testing.T) {
	tests := []struct {
		flags    byte
		expected string
	}{
		{0x00, "horizontal"},
		{0x01, "vertical"},
		{0x08, "4 screen"},
		{0x09, "4 screen"},
	}

	for _, tt := range tests {
		var header [16]byte
		header[6] = tt.flags
		assert.Equal(t, tt.expected, Mirroring(header))
	}
}

func TestHasExtraRAM(t *testing.T) {
	var header [16]byte
	assert.False(t, HasExtraRAM(header))
	header[6] = 0x02
	assert.True(t, HasExtraRAM(header))
}
