package action

import (
	"fmt"

	"github.com/alessio/shellescape"

	"github.com/sp-viktori/sp-variant/internal/run"
	"github.com/sp-viktori/sp-variant/variant"
)

// CommandRun resolves a distribution-specific command and executes it
// with additional arguments appended.
type CommandRun struct {
	Path   string
	Args   []string
	Noop   bool
	Runner run.Runner
}

// Run resolves the category.operation path against the variant and
// either executes the command or, in noop mode, displays it.
func (a CommandRun) Run(cfg *variant.Config, vnt *variant.Variant) error {
	cmd, err := vnt.Command(a.Path)
	if err != nil {
		return err
	}
	full := append(append([]string{}, cmd...), a.Args...)
	cfg.Diag("About to run `%s`", shellescape.QuoteCommand(full))
	if a.Noop {
		fmt.Println(shellescape.QuoteCommand(full))
		return nil
	}
	return a.Runner.Run(full[0], full[1:]...)
}
