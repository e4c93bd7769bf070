package cmdutil

import (
	"io"
	"os"
	"sync"

	"github.com/schmitthub/refgen/internal/config"
)

// Factory provides shared dependencies for CLI commands.
// It is a dependency injection container: the struct defines what
// dependencies exist (the contract), while New wires the real
// implementations. Commands extract only the fields they need.
type Factory struct {
	// Configuration from flags (set before command execution)
	ConfigPath string
	Debug      bool

	// Version info (set at build time via ldflags)
	Version string
	Commit  string

	// IO streams for output (for testability)
	Out    io.Writer
	ErrOut io.Writer

	// Config loads the tool configuration lazily, once.
	Config func() (*config.Config, error)
}

// New creates a Factory wired to the real implementations.
func New(version, commit string) *Factory {
	f := &Factory{
		Version: version,
		Commit:  commit,
		Out:     os.Stdout,
		ErrOut:  os.Stderr,
	}

	var (
		once sync.Once
		cfg  *config.Config
		err  error
	)
	f.Config = func() (*config.Config, error) {
		once.Do(func() {
			cfg, err = config.Load(f.ConfigPath)
		})
		return cfg, err
	}

	return f
}
