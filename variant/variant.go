// Package variant describes the OS distributions supported as StorPool
// build variants and figures out which one the current host is running.
package variant

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

const (
	// Version is the version of the variant data provided by this package.
	Version = "3.0.0"

	// RepoFormatVersion is the version of the repository directory layout
	// consumed by `repo add`.
	RepoFormatVersion = "0.2"

	// FormatMajor and FormatMinor describe the JSON export document format.
	FormatMajor = 1
	FormatMinor = 3
)

// Pattern is a compiled regular expression that serializes to its source text.
type Pattern struct {
	*regexp.Regexp
}

// MarshalJSON encodes the pattern as its source string.
func (p Pattern) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func pattern(expr string) Pattern {
	return Pattern{regexp.MustCompile(expr)}
}

// DetectSpec is a recipe for recognizing a single variant: the release file to
// examine with its expected contents, and the os-release identification.
type DetectSpec struct {
	Filename       string  `json:"filename" validate:"required"`
	Regex          Pattern `json:"regex"`
	OSID           string  `json:"os_id" validate:"required"`
	OSVersionRegex Pattern `json:"os_version_regex"`
}

// CommandsPackage holds the package management commands for a variant.
type CommandsPackage struct {
	UpdateDB   []string `json:"update_db" validate:"required"`
	Install    []string `json:"install" validate:"required"`
	ListAll    []string `json:"list_all" validate:"required"`
	Purge      []string `json:"purge" validate:"required"`
	Remove     []string `json:"remove" validate:"required"`
	RemoveImpl []string `json:"remove_impl" validate:"required"`
}

// CommandsPkgFile holds the commands operating on package files.
type CommandsPkgFile struct {
	DepQuery []string `json:"dep_query" validate:"required"`
	Install  []string `json:"install" validate:"required"`
}

// Commands holds all the distribution-specific command templates.
type Commands struct {
	Package CommandsPackage `json:"package"`
	PkgFile CommandsPkgFile `json:"pkgfile"`
}

// DebRepo describes the APT repository definition for a Debian-like variant.
type DebRepo struct {
	Codename    string   `json:"codename"`
	Vendor      string   `json:"vendor"`
	Sources     string   `json:"sources"`
	Keyring     string   `json:"keyring"`
	ReqPackages []string `json:"req_packages"`
}

// YumRepo describes the Yum repository definition for an RPM-based variant.
type YumRepo struct {
	YumDef  string `json:"yumdef"`
	Keyring string `json:"keyring"`
}

// Repo holds the repository definition for a variant; exactly one of the
// two members is non-nil.
type Repo struct {
	Deb *DebRepo
	Yum *YumRepo
}

// MarshalJSON encodes whichever repository definition is present.
func (r Repo) MarshalJSON() ([]byte, error) {
	switch {
	case r.Deb != nil:
		return json.Marshal(r.Deb)
	case r.Yum != nil:
		return json.Marshal(r.Yum)
	default:
		return nil, errors.New("neither a Deb nor a Yum repository definition")
	}
}

// Builder describes the container image used for building StorPool
// packages for a variant.
type Builder struct {
	Alias         string `json:"alias" validate:"required"`
	BaseImage     string `json:"base_image" validate:"required"`
	Branch        string `json:"branch"`
	KernelPackage string `json:"kernel_package" validate:"required"`
	Utf8Locale    string `json:"utf8_locale" validate:"required"`
}

// Variant is the full definition of a single supported build variant.
type Variant struct {
	Name            string            `json:"name" validate:"required"`
	Descr           string            `json:"descr" validate:"required"`
	Parent          string            `json:"parent"`
	Family          string            `json:"family" validate:"required,oneof=debian redhat"`
	Detect          DetectSpec        `json:"detect"`
	Commands        Commands          `json:"commands"`
	MinSysPython    string            `json:"min_sys_python" validate:"required"`
	Repo            Repo              `json:"repo"`
	Package         map[string]string `json:"package" validate:"required"`
	SystemdLib      string            `json:"systemd_lib" validate:"required"`
	FileExt         string            `json:"file_ext" validate:"required,oneof=deb rpm"`
	InitramfsFlavor string            `json:"initramfs_flavor" validate:"required"`
	Builder         Builder           `json:"builder"`

	commandIndex map[string]map[string][]string
}

// RepoType is a single repository channel (contrib, staging, infra).
type RepoType struct {
	Name      string `json:"name" yaml:"name" validate:"required"`
	Extension string `json:"extension" yaml:"extension"`
	URL       string `json:"url" yaml:"url" validate:"required,url"`
}

// RepoTypes lists the supported repository channels; the first one is
// the default for the CLI commands.
var RepoTypes = []RepoType{
	{Name: "contrib", Extension: "", URL: "https://repo.storpool.com/public/"},
	{Name: "staging", Extension: "-staging", URL: "https://repo.storpool.com/public/"},
	{Name: "infra", Extension: "-infra", URL: "https://intrepo.storpool.com/repo/"},
}

// RepoTypeByName returns the repository channel with the given name.
func RepoTypeByName(name string) (RepoType, error) {
	names := make([]string, 0, len(RepoTypes))
	for _, rtype := range RepoTypes {
		if rtype.Name == name {
			return rtype, nil
		}
		names = append(names, rtype.Name)
	}
	return RepoType{}, &UnknownRepoTypeError{Name: name, Known: names}
}

// UnknownRepoTypeError is returned for repository channel names that are
// not in RepoTypes.
type UnknownRepoTypeError struct {
	Name  string
	Known []string
}

func (e *UnknownRepoTypeError) Error() string {
	return "unknown repository type \"" + e.Name + "\", should be one of: " + strings.Join(e.Known, " ")
}
