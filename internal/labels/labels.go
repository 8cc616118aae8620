// Package labels implements the label repair pass that runs on the linear
// sweep output of a bank. A branch that references an offset without a label
// would fail to assemble, such branches are converted to raw bytes.
package labels

import (
	"github.com/retroenv/nesbankdisasm/internal/decoder"
	"github.com/retroenv/retrogolib/set"
)

// Defined returns the set of all bank offsets that have a label.
func Defined(instructions []decoder.Instruction) set.Set[int] {
	defined := set.New[int]()
	for _, ins := range instructions {
		if ins.Labeled {
			defined.Add(ins.Offset)
		}
	}
	return defined
}

// Dangling returns the indexes of all branches whose target offset has no
// label in the bank. Targets outside of the bank are always dangling.
func Dangling(instructions []decoder.Instruction) []int {
	defined := Defined(instructions)

	var dangling []int
	for i, ins := range instructions {
		if !ins.IsBranch() {
			continue
		}
		if ins.Target < 0 || !defined.Contains(ins.Target) {
			dangling = append(dangling, i)
		}
	}
	return dangling
}

// Repair converts every dangling branch to a repaired raw byte instruction
// and returns the number of converted branches. The set of defined labels
// is not changed by the conversion, running Repair again is a no-op.
func Repair(instructions []decoder.Instruction) int {
	dangling := Dangling(instructions)
	for _, i := range dangling {
		instructions[i].Kind = decoder.Repaired
		instructions[i].Operand = ""
	}
	return len(dangling)
}
