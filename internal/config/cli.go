package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// ExitError carries the process exit code for a configuration failure.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// Parse builds a Config from command line arguments, loading the settings
// file named by -config when present. It returns flag.ErrHelp when usage was
// requested.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	cfg.Bind(fs)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage:\n  %s [options]\n\nOptions:\n", name)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", fs.Args())}
	}
	if cfg.ConfigFile != "" {
		if err := cfg.LoadFile(cfg.ConfigFile, fs); err != nil {
			return nil, &ExitError{Code: 2, Message: err.Error()}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, nil
}
