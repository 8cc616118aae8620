// Package mapper provides the iNES header metadata that controls how the PRG
// region of a cartridge is split into banks.
package mapper

// Bank sizes that the PRG region can be split into.
const (
	BankSize8K  = 0x2000
	BankSize16K = 0x4000
	BankSize32K = 0x8000
)

// ValidBankSizes lists the bank sizes that can be selected.
var ValidBankSizes = []int{BankSize8K, BankSize16K, BankSize32K}

// Header flags of byte 6.
const (
	flagVertical   = 0x01
	flagExtraRAM   = 0x02
	flagFourScreen = 0x08
)

// names of the common mappers.
var names = map[byte]string{
	0:   "NROM",
	1:   "MMC1 SxROM",
	2:   "UxROM",
	3:   "CNROM",
	4:   "MMC3 TxROM",
	5:   "MMC5 ExROM",
	7:   "AxROM",
	9:   "MMC2 PxROM",
	10:  "MMC4 FxROM",
	11:  "COLOR DREAMS",
	13:  "CPROM",
	16:  "Bandai",
	18:  "Jaleco",
	19:  "Namco 163",
	20:  "FDS",
	21:  "Konami VRC4",
	22:  "Konami VRC2",
	23:  "Konami variation",
	24:  "Konami VRC6",
	25:  "Konami variation",
	26:  "Konami VRC6",
	28:  "Action 53",
	30:  "UNROM RetroUSB",
	31:  "NSF music",
	32:  "Irem's G-101",
	33:  "Taito's TC0190",
	34:  "BNROM or NINA-001",
	36:  "TXC",
	48:  "Taito's TC0690",
	64:  "Tengen RAMBO-1",
	65:  "Irem's H3001",
	66:  "GxROM or MHROM",
	67:  "Sunsoft-3",
	68:  "Sunsoft-4",
	69:  "Sunsoft FME-7",
	70:  "Bandai",
	71:  "Codemasters",
	72:  "Jaleco's JF-17",
	73:  "Konami VRC3",
	74:  "Eastern games",
	75:  "Konami VRC1",
	76:  "Namcot 108",
	77:  "Irem",
	78:  "Irem",
	79:  "NINA-03 or NINA-06",
	80:  "Taito's X1-005",
	82:  "Taito's X1-017",
	85:  "Konami VRC7",
	86:  "Jaleco's JF-13",
	87:  "Jaleco",
	88:  "Namco",
	89:  "Sunsoft",
	93:  "Sunsoft",
	94:  "HVC-UN1ROM",
	99:  "Vs. System",
	118: "TKSROM and TLSROM",
	119: "TQROM",
}

// bankSizes contains the mappers that switch PRG in a bank size other than
// the default.
var bankSizes = map[byte]int{
	4:  BankSize8K,
	7:  BankSize32K,
	34: BankSize32K,
}

// Name returns the name of the mapper.
func Name(number byte) string {
	name, ok := names[number]
	if !ok {
		return "Other"
	}
	return name
}

// Number returns the mapper number that is encoded in the header flag bytes.
func Number(header [16]byte) byte {
	return header[6]>>4 | header[7]&0xf0
}

// RecommendedBankSize returns the bank size to use for a cartridge with the
// given number of 16KB PRG units and mapper. A known mapper bank size takes
// precedence over the PRG size.
func RecommendedBankSize(prgUnits int, number byte) int {
	if size, ok := bankSizes[number]; ok {
		return size
	}
	if prgUnits == 2 {
		return BankSize32K
	}
	return BankSize16K
}

// IsValidBankSize returns whether the bank size can be selected.
func IsValidBankSize(size int) bool {
	for _, valid := range ValidBankSizes {
		if size == valid {
			return true
		}
	}
	return false
}

// Mirroring returns the nametable mirroring described by the header.
func Mirroring(header [16]byte) string {
	switch {
	case header[6]&flagFourScreen != 0:
		return "4 screen"
	case header[6]&flagVertical != 0:
		return "vertical"
	default:
		return "horizontal"
	}
}

// HasExtraRAM returns whether the cartridge has RAM at $6000.
func HasExtraRAM(header [16]byte) bool {
	return header[6]&flagExtraRAM != 0
}
