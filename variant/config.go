package variant

import (
	"fmt"
	"io"
	"os"
)

// Config is the runtime context for the variant operations.
type Config struct {
	// Args holds the additional arguments for `command run`.
	Args []string
	// Command is the category.operation path for `command run`.
	Command string
	// Noop makes the mutating operations display commands instead of
	// running them.
	Noop bool
	// RepoDir is the directory containing the repository assets.
	RepoDir string
	// RepoType is the repository channel to install.
	RepoType RepoType
	// Verbose enables diagnostic output.
	Verbose bool

	// diagSink is where Diag writes to; only the tests in this package
	// ever point it away from stderr.
	diagSink io.Writer
}

// Diag writes a diagnostic message when verbose operation is enabled.
func (c *Config) Diag(format string, args ...interface{}) {
	if c == nil || !c.Verbose {
		return
	}
	sink := c.diagSink
	if sink == nil {
		sink = os.Stderr
	}
	fmt.Fprintf(sink, format+"\n", args...)
}
