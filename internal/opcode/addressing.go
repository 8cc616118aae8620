package opcode

// AddressingMode defines how the operand bytes of an instruction are interpreted.
type AddressingMode int

// Addressing modes of the 6502 official instruction set.
const (
	Unknown     AddressingMode = iota
	Implied                    // no operand
	Accumulator                // operates on register a
	Immediate                  // #$xx
	ZeroPage                   // $xx
	ZeroPageX                  // $xx, x
	ZeroPageY                  // $xx, y
	Relative                   // signed displacement of a branch
	Absolute                   // $xxxx
	AbsoluteX                  // $xxxx, x
	AbsoluteY                  // $xxxx, y
	Indirect                   // ($xxxx), jmp only
	IndirectX                  // ($xx, x)
	IndirectY                  // ($xx), y
)

// String returns the name of the addressing mode.
func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "implied"
	case Accumulator:
		return "accumulator"
	case Immediate:
		return "immediate"
	case ZeroPage:
		return "zeropage"
	case ZeroPageX:
		return "zeropage,x"
	case ZeroPageY:
		return "zeropage,y"
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	case AbsoluteX:
		return "absolute,x"
	case AbsoluteY:
		return "absolute,y"
	case Indirect:
		return "indirect"
	case IndirectX:
		return "(indirect,x)"
	case IndirectY:
		return "(indirect),y"
	default:
		return "unknown"
	}
}

// OperandLength returns the number of operand bytes that follow the opcode byte.
func (m AddressingMode) OperandLength() int {
	switch m {
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, Relative, IndirectX, IndirectY:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 0
	}
}
