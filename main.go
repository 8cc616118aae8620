// Package main implements the main entry point for a bank-wise NES disassembler
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/retroenv/nesbankdisasm/internal/cli"
	"github.com/retroenv/nesbankdisasm/internal/config"
	"github.com/retroenv/nesbankdisasm/internal/fileprocessor"
	"github.com/retroenv/nesbankdisasm/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	rootCmd := cli.NewRootCommand(buildinfo.Version(version, commit, date), run)
	if err := fang.Execute(ctx, rootCmd, fang.WithNotifySignal(os.Interrupt)); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts options.Program, disasmOpts options.Disassembler) error {
	ctx := cmd.Context()
	logger := config.CreateLogger(opts)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		return err
	}

	var failed int
	for _, file := range files {
		opts.Input = file

		if err := fileprocessor.ProcessFile(ctx, logger, opts, disasmOpts); err != nil {
			// Handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				return nil
			}
			logger.Error("Disassembling failed", log.String("file", file), log.Err(err))
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("disassembling failed for %d of %d files", failed, len(files))
	}
	return nil
}
