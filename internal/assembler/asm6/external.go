package asm6

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// assemblerNames lists the supported assembler binaries in order of preference.
var assemblerNames = []string{"asm6f", "asm6"}

// AssembleUsingExternalApp calls the external assembler to generate a binary
// from the given main asm file. The bank listings are included relative to
// the directory of the main file, which is used as working directory.
func AssembleUsingExternalApp(ctx context.Context, dir, asmFile, outputFile string) error {
	name, err := findAssembler()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, name, asmFile, outputFile)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("assembling file: %s: %w", strings.TrimSpace(string(out)), err)
	}

	return nil
}

func findAssembler() (string, error) {
	for _, name := range assemblerNames {
		if _, err := exec.LookPath(name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("%s is not installed", strings.Join(assemblerNames, " or "))
}
