package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/retroenv/nesbankdisasm/internal/options"
)

// File is the optional JSON config file. Values that are set in the file are
// used for all options that are not passed explicitly on the command line.
type File struct {
	BankSize    int    `json:"bankSize,omitempty" jsonschema:"title=Bank Size,description=PRG bank size in bytes,enum=0,enum=8192,enum=16384,enum=32768"`
	Workers     int    `json:"workers,omitempty" jsonschema:"title=Workers,description=Number of banks to disassemble in parallel,minimum=0"`
	HexComments *bool  `json:"hexComments,omitempty" jsonschema:"title=Hex Comments,description=Output opcode bytes as hex comments"`
	OutputDir   string `json:"outputDir,omitempty" jsonschema:"title=Output Directory,description=Directory to write the generated files to"`
	LogLevel    string `json:"logLevel,omitempty" jsonschema:"title=Log Level,description=Logging verbosity,enum=debug,enum=info,enum=error"`
}

// Load reads and decodes the config file at the given path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding config file %s: %w", path, err)
	}

	switch f.LogLevel {
	case "", LogLevelDebug, LogLevelInfo, LogLevelError:
	default:
		return nil, fmt.Errorf("config file %s: unsupported log level '%s'", path, f.LogLevel)
	}
	return &f, nil
}

// Apply sets all program options that are defined in the config file and
// for which changed returns false. changed is called with the long flag name.
func (f *File) Apply(opts *options.Program, changed func(flag string) bool) {
	if f.BankSize != 0 && !changed("bank-size") {
		opts.BankSize = f.BankSize
	}
	if f.Workers != 0 && !changed("workers") {
		opts.Workers = f.Workers
	}
	if f.HexComments != nil && !changed("nohexcomments") {
		opts.NoHexComments = !*f.HexComments
	}
	if f.OutputDir != "" && !changed("output") {
		opts.Output = f.OutputDir
	}
	applyLogLevel(f.LogLevel, opts, changed)
}

// Schema returns the JSON schema of the config file.
func Schema() ([]byte, error) {
	reflector := new(jsonschema.Reflector)
	bts, err := json.MarshalIndent(reflector.Reflect(&File{}), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	return bts, nil
}
