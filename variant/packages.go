package variant

import (
	"fmt"
	"strings"

	"github.com/sp-viktori/sp-variant/internal/run"
)

// OSPackage is a single entry in the OS package database.
type OSPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Arch    string `json:"arch"`
	Status  string `json:"status"`
}

// ListAllPackages queries the OS package database for the packages
// matching the given name patterns and returns the installed ones.
func ListAllPackages(runner run.Runner, vnt *Variant, patterns []string) ([]OSPackage, error) {
	cmd := append(append([]string{}, vnt.Commands.Package.ListAll...), patterns...)
	out, err := runner.Output(cmd[0], cmd[1:]...)
	if err != nil {
		return nil, fmt.Errorf("could not list the OS packages: %w", err)
	}

	var res []OSPackage
	for _, line := range strings.Split(string(out), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			continue
		}
		// dpkg-query pads the status abbreviation to three characters.
		if strings.TrimSpace(fields[3]) != "ii" {
			continue
		}
		res = append(res, OSPackage{
			Name:    fields[0],
			Version: fields[1],
			Arch:    fields[2],
			Status:  strings.TrimSpace(fields[3]),
		})
	}
	return res, nil
}
