package opcode

import (
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/m6502"
)

// addressingModes maps the retrogolib addressing modes to the local ones.
var addressingModes = map[m6502.AddressingMode]AddressingMode{
	m6502.ImpliedAddressing:     Implied,
	m6502.AccumulatorAddressing: Accumulator,
	m6502.ImmediateAddressing:   Immediate,
	m6502.ZeroPageAddressing:    ZeroPage,
	m6502.ZeroPageXAddressing:   ZeroPageX,
	m6502.ZeroPageYAddressing:   ZeroPageY,
	m6502.RelativeAddressing:    Relative,
	m6502.AbsoluteAddressing:    Absolute,
	m6502.AbsoluteXAddressing:   AbsoluteX,
	m6502.AbsoluteYAddressing:   AbsoluteY,
	m6502.IndirectAddressing:    Indirect,
	m6502.IndirectXAddressing:   IndirectX,
	m6502.IndirectYAddressing:   IndirectY,
}

// table maps every opcode byte value to its entry, undefined and unofficial
// values are left as the zero value which has the Unknown addressing mode.
var table = buildTable()

func buildTable() [256]Entry {
	var entries [256]Entry
	for i, ref := range m6502.Opcodes {
		if ref.Instruction == nil || ref.Instruction.Unofficial {
			continue
		}
		mode, ok := addressingModes[ref.Addressing]
		if !ok {
			continue
		}
		entries[i] = op(strings.ToLower(ref.Instruction.Name), mode)
	}
	return entries
}
