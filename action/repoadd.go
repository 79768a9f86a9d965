// Package action implements the operations behind the CLI commands.
package action

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"github.com/sp-viktori/sp-variant/internal/run"
	"github.com/sp-viktori/sp-variant/variant"
)

func step(title string) {
	log.Infof(aurora.Green("==> %s").String(), title)
}

// AddExtension inserts the repository channel extension before the last
// extension of an asset file name. A name without a dot in it is a
// configuration error.
func AddExtension(name string, rtype variant.RepoType) (string, error) {
	idx := strings.LastIndexByte(name, '.')
	if idx < 1 {
		return "", fmt.Errorf("unexpected repository file name without an extension: %q", name)
	}
	return name[:idx] + rtype.Extension + name[idx:], nil
}

// RepoAdd installs the StorPool repository configuration for a variant.
type RepoAdd struct {
	RepoDir  string
	RepoType variant.RepoType
	Force    bool
	Noop     bool
	Runner   run.Runner

	rpmkeys string
}

// Run installs the repository definition, the keyring, and any
// prerequisite packages for the given variant, then refreshes the
// package metadata. The first failing command aborts the sequence.
func (a RepoAdd) Run(cfg *variant.Config, vnt *variant.Variant) error {
	vardir := filepath.Join(a.RepoDir, vnt.Name)
	info, err := os.Stat(vardir)
	if err != nil {
		return fmt.Errorf("could not examine %s: %w", vardir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", vardir)
	}

	if !a.confirmed() {
		return fmt.Errorf("aborted, no changes made to the host")
	}

	switch {
	case vnt.Repo.Deb != nil:
		return a.addDeb(cfg, vnt, vardir)
	case vnt.Repo.Yum != nil:
		return a.addYum(cfg, vnt, vardir)
	default:
		return fmt.Errorf("%s: no repository definition", vnt.Name)
	}
}

func (a RepoAdd) confirmed() bool {
	if a.Force || a.Noop {
		return true
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return true
	}
	confirmed := false
	prompt := &survey.Confirm{
		Message: "This will modify the package repository configuration of this host. Continue?",
	}
	_ = survey.AskOne(prompt, &confirmed)
	return confirmed
}

// install copies a file into a system configuration directory with the
// owner, group, and mode the package managers expect.
func (a RepoAdd) install(cfg *variant.Config, src, dstdir string) error {
	dst := filepath.Join(dstdir, filepath.Base(src))
	cfg.Diag("%s -> %s [0644]", src, dst)
	if err := a.Runner.Run("install", "-o", "root", "-g", "root", "-m", "0644", "--", src, dst); err != nil {
		return fmt.Errorf("could not copy %s over to %s: %w", src, dst, err)
	}
	return nil
}

func (a RepoAdd) addDeb(cfg *variant.Config, vnt *variant.Variant, vardir string) error {
	repo := vnt.Repo.Deb

	if len(repo.ReqPackages) > 0 {
		step("Installing the prerequisite packages")
		install, err := vnt.Command("package.install")
		if err != nil {
			return err
		}
		cmd := append(append([]string{}, install...), repo.ReqPackages...)
		if err := a.Runner.Run(cmd[0], cmd[1:]...); err != nil {
			return fmt.Errorf("could not install %s: %w", strings.Join(repo.ReqPackages, " "), err)
		}
	}

	step("Installing the repository configuration")
	sources, err := AddExtension(filepath.Base(repo.Sources), a.RepoType)
	if err != nil {
		return err
	}
	if err := a.install(cfg, filepath.Join(vardir, sources), "/etc/apt/sources.list.d"); err != nil {
		return err
	}
	if err := a.install(cfg, filepath.Join(vardir, filepath.Base(repo.Keyring)), "/usr/share/keyrings"); err != nil {
		return err
	}

	step("Updating the package database")
	if err := a.Runner.Run("apt-get", "update"); err != nil {
		return fmt.Errorf("could not update the APT package database: %w", err)
	}
	return nil
}

func (a RepoAdd) rpmkeysBin() string {
	if a.rpmkeys != "" {
		return a.rpmkeys
	}
	return "/usr/bin/rpmkeys"
}

func (a RepoAdd) addYum(cfg *variant.Config, vnt *variant.Variant, vardir string) error {
	repo := vnt.Repo.Yum

	step("Installing the prerequisite packages")
	if err := a.Runner.Run("yum", "--disablerepo=storpool-*", "install", "-q", "-y", "ca-certificates"); err != nil {
		return fmt.Errorf("could not install ca-certificates: %w", err)
	}

	step("Installing the repository configuration")
	yumdef, err := AddExtension(filepath.Base(repo.YumDef), a.RepoType)
	if err != nil {
		return err
	}
	if err := a.install(cfg, filepath.Join(vardir, yumdef), "/etc/yum.repos.d"); err != nil {
		return err
	}
	keyring := filepath.Base(repo.Keyring)
	if err := a.install(cfg, filepath.Join(vardir, keyring), "/etc/pki/rpm-gpg"); err != nil {
		return err
	}

	// Ancient yum versions do not ship rpmkeys at all.
	if _, err := os.Stat(a.rpmkeysBin()); err == nil {
		step("Importing the repository signing key")
		if err := a.Runner.Run(a.rpmkeysBin(), "--import", filepath.Join("/etc/pki/rpm-gpg", keyring)); err != nil {
			return fmt.Errorf("could not import the %s key: %w", keyring, err)
		}
	}

	step("Refreshing the repository metadata")
	if err := a.Runner.Run("yum", "--disablerepo=*", "--enablerepo=storpool-"+a.RepoType.Name, "clean", "metadata"); err != nil {
		return fmt.Errorf("could not refresh the %s repository metadata: %w", a.RepoType.Name, err)
	}
	return nil
}
