// Package loader handles cartridge file loading operations.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/nesbankdisasm/internal/mapper"
	"github.com/retroenv/retrogolib/arch/system/nes/cartridge"
)

const (
	headerSize = 16
	prgUnit    = 0x4000
	chrUnit    = 0x2000
	trainer    = 512
)

var (
	errInvalidHeader = errors.New("could not find iNES header")
	errNoPRG         = errors.New("cartridge has no PRG ROM")
)

var magic = []byte{'N', 'E', 'S', 0x1a}

// ROM is a loaded iNES cartridge.
type ROM struct {
	Header   [headerSize]byte // raw iNES header as stored in the file
	PRG      []byte
	CHR      []byte
	Mapper   byte
	PRGUnits int // number of 16KB PRG units
}

// MultiPRG returns whether the cartridge has more than one 16KB PRG unit.
func (r *ROM) MultiPRG() bool {
	return r.PRGUnits > 1
}

// HasTrainer returns whether the file contains a 512 byte trainer in front
// of the PRG region. The trainer is not part of the generated listing.
func (r *ROM) HasTrainer() bool {
	return r.Header[6]&0x04 != 0
}

// DirtyHeader returns whether any of the unused header bytes 11 to 15 is
// set. The generated listing always writes them as zero.
func (r *ROM) DirtyHeader() bool {
	for _, b := range r.Header[11:] {
		if b != 0 {
			return true
		}
	}
	return false
}

// Loader handles loading cartridge files from disk.
type Loader struct{}

// New creates a new cartridge loader.
func New() *Loader {
	return &Loader{}
}

// Load loads and parses the iNES cartridge file at the given path.
func (l *Loader) Load(path string) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return l.LoadBytes(data)
}

// LoadBytes parses an iNES cartridge image.
func (l *Loader) LoadBytes(data []byte) (*ROM, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("file too small for iNES header: %d bytes", len(data))
	}
	if !bytes.Equal(data[:len(magic)], magic) {
		return nil, errInvalidHeader
	}
	if expected := expectedSize(data); len(data) < expected {
		return nil, fmt.Errorf("file size %d is smaller than the %d bytes described by the header", len(data), expected)
	}

	cart, err := cartridge.LoadFile(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading cartridge: %w", err)
	}
	if len(cart.PRG) == 0 {
		return nil, errNoPRG
	}

	rom := &ROM{
		PRG:      cart.PRG,
		PRGUnits: len(cart.PRG) / prgUnit,
	}
	copy(rom.Header[:], data[:headerSize])
	// a cartridge without CHR ROM uses CHR RAM, which is not part of the file
	if rom.Header[5] > 0 {
		rom.CHR = cart.CHR
	}
	rom.Mapper = mapper.Number(rom.Header)
	return rom, nil
}

// expectedSize returns the file size that the iNES header describes.
func expectedSize(data []byte) int {
	size := headerSize + int(data[4])*prgUnit + int(data[5])*chrUnit
	if data[6]&0x04 != 0 {
		size += trainer
	}
	return size
}
