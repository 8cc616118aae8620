package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/nesbankdisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		quiet bool
	}{
		{"default", false, false},
		{"debug", true, false},
		{"quiet", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts options.Program
			opts.Debug = tt.debug
			opts.Quiet = tt.quiet
			assert.NotNil(t, CreateLogger(opts))
		})
	}
}

func TestApplyLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		changed bool
		debug   bool
		quiet   bool
	}{
		{"unset", "", false, false, false},
		{"debug", LogLevelDebug, false, true, false},
		{"info", LogLevelInfo, false, false, false},
		{"error", LogLevelError, false, false, true},
		{"flag wins", LogLevelDebug, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts options.Program
			f := &File{LogLevel: tt.level}
			f.Apply(&opts, func(flag string) bool { return tt.changed && flag == "quiet" })
			assert.Equal(t, tt.debug, opts.Debug)
			assert.Equal(t, tt.quiet, opts.Quiet)
		})
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{"bankSize": 8192, "workers": 4, "hexComments": false, "outputDir": "out"}`)

	f, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 8192, f.BankSize)
	assert.Equal(t, 4, f.Workers)
	assert.NotNil(t, f.HexComments)
	assert.False(t, *f.HexComments)
	assert.Equal(t, "out", f.OutputDir)
	assert.Equal(t, "", f.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "reading config file")

	_, err = Load(writeConfig(t, `{"bankSize": "large"}`))
	assert.ErrorContains(t, err, "decoding config file")

	_, err = Load(writeConfig(t, `{"assembler": "ca65"}`))
	assert.ErrorContains(t, err, "decoding config file")

	_, err = Load(writeConfig(t, `{"logLevel": "verbose"}`))
	assert.ErrorContains(t, err, "unsupported log level")
}

func TestApply(t *testing.T) {
	hexComments := false
	f := &File{
		BankSize:    8192,
		Workers:     2,
		HexComments: &hexComments,
		OutputDir:   "out",
	}

	t.Run("file values", func(t *testing.T) {
		var opts options.Program
		f.Apply(&opts, func(string) bool { return false })
		assert.Equal(t, 8192, opts.BankSize)
		assert.Equal(t, 2, opts.Workers)
		assert.True(t, opts.NoHexComments)
		assert.Equal(t, "out", opts.Output)
	})

	t.Run("explicit flags win", func(t *testing.T) {
		opts := options.Program{}
		opts.BankSize = 32768
		opts.Output = "cli"
		f.Apply(&opts, func(flag string) bool { return flag == "bank-size" || flag == "output" })
		assert.Equal(t, 32768, opts.BankSize)
		assert.Equal(t, "cli", opts.Output)
		assert.Equal(t, 2, opts.Workers)
	})
}

func TestSchema(t *testing.T) {
	bts, err := Schema()
	assert.NoError(t, err)

	var schema map[string]any
	assert.NoError(t, json.Unmarshal(bts, &schema))
	assert.Contains(t, string(bts), "bankSize")
	assert.Contains(t, string(bts), "hexComments")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
