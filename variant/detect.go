package variant

import (
	"os"
	"strings"
)

// FileReader reads the release files examined during detection.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

type hostFS struct{}

func (hostFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

const osReleaseFile = "/etc/os-release"

// Detect examines the running host and returns its build variant.
func Detect(cfg *Config) (*Variant, error) {
	reg, err := Build()
	if err != nil {
		return nil, err
	}
	return DetectFrom(reg, cfg, hostFS{})
}

// DetectFrom matches the filesystem visible through reader against the
// registry's detection order and returns the first variant that
// matches. It first consults the os-release data, then falls back to
// the per-distribution release files; a missing or unparseable file
// only rules out the rules that depend on it.
func DetectFrom(reg *Registry, cfg *Config, reader FileReader) (*Variant, error) {
	var probed []string
	seen := make(map[string]bool)
	probe := func(name string) {
		if !seen[name] {
			seen[name] = true
			probed = append(probed, name)
		}
	}

	probe(osReleaseFile)
	if contents, err := reader.ReadFile(osReleaseFile); err == nil {
		data, perr := ParseOSRelease(string(contents))
		if perr != nil {
			cfg.Diag("Could not parse %s: %v", osReleaseFile, perr)
		} else {
			for _, vnt := range reg.DetectOrder() {
				if vnt.matchOSRelease(data) {
					cfg.Diag("Matched %s against the %s data", vnt.Name, osReleaseFile)
					return vnt, nil
				}
			}
		}
	}

	for _, vnt := range reg.DetectOrder() {
		probe(vnt.Detect.Filename)
		contents, err := reader.ReadFile(vnt.Detect.Filename)
		if err != nil {
			continue
		}
		for _, line := range strings.Split(string(contents), "\n") {
			if vnt.Detect.Regex.MatchString(line) {
				cfg.Diag("Matched %s against %s", vnt.Name, vnt.Detect.Filename)
				return vnt, nil
			}
		}
	}
	return nil, &NoMatchError{Probed: probed}
}

func (v *Variant) matchOSRelease(data map[string]string) bool {
	if data["ID"] != v.Detect.OSID {
		return false
	}
	if version := data["VERSION_ID"]; version != "" && v.Detect.OSVersionRegex.MatchString(version) {
		return true
	}
	// Derivatives and pre-release installs sometimes carry no usable
	// VERSION_ID; for the Debian family the codename identifies the
	// release just as well.
	if deb := v.Repo.Deb; deb != nil {
		if codename := data["VERSION_CODENAME"]; codename != "" && codename == deb.Codename {
			return true
		}
	}
	return false
}
