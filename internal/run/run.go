// Package run executes commands on the local host.
package run

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/alessio/shellescape"
	log "github.com/sirupsen/logrus"
)

// Runner runs commands on behalf of the variant operations.
type Runner interface {
	// Run executes a command, passing the standard streams through.
	Run(name string, args ...string) error
	// Output executes a command and captures its standard output.
	Output(name string, args ...string) ([]byte, error)
}

// Local executes commands directly on this host.
type Local struct{}

// Run implements Runner.
func (Local) Run(name string, args ...string) error {
	log.Debugf("running `%s`", shellescape.QuoteCommand(append([]string{name}, args...)))
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("`%s` failed: %w", shellescape.QuoteCommand(append([]string{name}, args...)), err)
	}
	return nil
}

// Output implements Runner.
func (Local) Output(name string, args ...string) ([]byte, error) {
	log.Debugf("running `%s`", shellescape.QuoteCommand(append([]string{name}, args...)))
	cmd := exec.Command(name, args...)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("`%s` failed: %w", shellescape.QuoteCommand(append([]string{name}, args...)), err)
	}
	return out, nil
}

// Noop displays the commands it is asked to run instead of running them.
type Noop struct {
	Out io.Writer
}

func (n Noop) writer() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return os.Stdout
}

// Run implements Runner.
func (n Noop) Run(name string, args ...string) error {
	fmt.Fprintln(n.writer(), shellescape.QuoteCommand(append([]string{name}, args...)))
	return nil
}

// Output implements Runner.
func (n Noop) Output(name string, args ...string) ([]byte, error) {
	fmt.Fprintln(n.writer(), shellescape.QuoteCommand(append([]string{name}, args...)))
	return nil, nil
}
