package opcode

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name          string
		opcode        byte
		mnemonic      string
		mode          AddressingMode
		operandLength int
		branch        bool
	}{
		{"brk implied", 0x00, "brk", Implied, 0, false},
		{"asl accumulator", 0x0a, "asl", Accumulator, 0, false},
		{"lda immediate", 0xa9, "lda", Immediate, 1, false},
		{"sta zeropage", 0x85, "sta", ZeroPage, 1, false},
		{"ldx zeropage y", 0xb6, "ldx", ZeroPageY, 1, false},
		{"ora indirect x", 0x01, "ora", IndirectX, 1, false},
		{"lda indirect y", 0xb1, "lda", IndirectY, 1, false},
		{"bne relative", 0xd0, "bne", Relative, 1, true},
		{"jmp absolute", 0x4c, "jmp", Absolute, 2, false},
		{"jmp indirect", 0x6c, "jmp", Indirect, 2, false},
		{"ldx absolute y", 0xbe, "ldx", AbsoluteY, 2, false},
		{"inc absolute x", 0xfe, "inc", AbsoluteX, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := Lookup(tt.opcode)
			assert.True(t, entry.Known())
			assert.Equal(t, tt.mnemonic, entry.Mnemonic)
			assert.Equal(t, tt.mode, entry.Mode)
			assert.Equal(t, tt.operandLength, entry.OperandLength)
			assert.Equal(t, tt.operandLength+1, entry.Length())
			assert.Equal(t, tt.branch, entry.Branch)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, b := range []byte{0x02, 0x1a, 0x80, 0xa3, 0xeb, 0xff} {
		entry := Lookup(b)
		assert.False(t, entry.Known())
		assert.Equal(t, Unknown, entry.Mode)
		assert.Equal(t, 1, entry.Length())
		assert.False(t, entry.Branch)
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, 151, Count())
}

func TestBranchesAreRelative(t *testing.T) {
	branches := map[string]struct{}{}
	for i := range 256 {
		entry := Lookup(byte(i))
		assert.Equal(t, entry.Mode == Relative, entry.Branch)
		if entry.Branch {
			branches[entry.Mnemonic] = struct{}{}
		}
	}
	assert.Equal(t, 8, len(branches))
	for _, name := range []string{"bpl", "bmi", "bvc", "bvs", "bcc", "bcs", "bne", "beq"} {
		_, ok := branches[name]
		assert.True(t, ok, "branch %s", name)
	}
}

func TestOperandLengthMatchesMode(t *testing.T) {
	for i := range 256 {
		entry := Lookup(byte(i))
		assert.Equal(t, entry.Mode.OperandLength(), entry.OperandLength, "opcode %02x", i)
		assert.True(t, entry.Length() <= MaxLength, "opcode %02x", i)
		if entry.Known() {
			assert.Equal(t, strings.ToLower(entry.Mnemonic), entry.Mnemonic, "opcode %02x", i)
		}
	}
}

func TestMnemonics(t *testing.T) {
	mnemonics := map[string]struct{}{}
	for i := range 256 {
		if entry := Lookup(byte(i)); entry.Known() {
			mnemonics[entry.Mnemonic] = struct{}{}
		}
	}
	assert.Equal(t, 56, len(mnemonics))
}

func TestAddressingModeString(t *testing.T) {
	assert.Equal(t, "immediate", Immediate.String())
	assert.Equal(t, "(indirect),y", IndirectY.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "unknown", AddressingMode(99).String())
}
