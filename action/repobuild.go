package action

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/a8m/envsubst/parse"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/creasty/defaults"
	"github.com/gammazero/workerpool"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	"github.com/sp-viktori/sp-variant/variant"
)

const concurrentRenders = 4

// BuildConfig configures the repository asset build.
type BuildConfig struct {
	Templates string             `yaml:"templates" default:"templates" validate:"required"`
	Output    string             `yaml:"output" default:"dist" validate:"required"`
	RepoTypes []variant.RepoType `yaml:"repotypes" validate:"omitempty,dive"`
}

// UnmarshalYAML sets the default values after decoding.
func (c *BuildConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type buildConfig BuildConfig
	yc := (*buildConfig)(c)
	if err := unmarshal(yc); err != nil {
		return err
	}
	return defaults.Set(c)
}

// Validate checks the build configuration.
func (c *BuildConfig) Validate() error {
	return validator.New().Struct(c)
}

// LoadBuildConfig reads the optional YAML build configuration; an empty
// path yields the default configuration with the standard repository
// channels.
func LoadBuildConfig(path string) (*BuildConfig, error) {
	cfg := &BuildConfig{}
	if path == "" {
		if err := defaults.Set(cfg); err != nil {
			return nil, err
		}
	} else {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", path, err)
		}
	}
	if len(cfg.RepoTypes) == 0 {
		cfg.RepoTypes = variant.RepoTypes
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid build configuration: %w", err)
	}
	return cfg, nil
}

// RepoBuild renders the per-variant repository asset tree that
// `repo add` consumes.
type RepoBuild struct {
	Config *BuildConfig
}

// Run renders every *.in template under the templates directory for
// every variant of the matching family and every repository channel,
// writing the results under <output>/<variant name>/.
func (a RepoBuild) Run(cfg *variant.Config, reg *variant.Registry) error {
	templates, err := doublestar.FilepathGlob(filepath.Join(a.Config.Templates, "**", "*.in"))
	if err != nil {
		return fmt.Errorf("could not scan %s for templates: %w", a.Config.Templates, err)
	}
	if len(templates) == 0 {
		return fmt.Errorf("no *.in templates found under %s", a.Config.Templates)
	}

	variants := reg.DetectOrder()
	step(fmt.Sprintf("Rendering %d templates for %d variants", len(templates), len(variants)))

	var (
		mu   sync.Mutex
		errs []string
	)
	pool := workerpool.New(concurrentRenders)
	for _, vnt := range variants {
		vnt := vnt
		pool.Submit(func() {
			if err := a.renderVariant(cfg, vnt, templates); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Sprintf("%s: %v", vnt.Name, err))
				mu.Unlock()
			}
		})
	}
	pool.StopWait()

	if len(errs) > 0 {
		sort.Strings(errs)
		return fmt.Errorf("could not render %d variants:\n - %s", len(errs), strings.Join(errs, "\n - "))
	}
	return nil
}

func (a RepoBuild) renderVariant(cfg *variant.Config, vnt *variant.Variant, templates []string) error {
	outdir := filepath.Join(a.Config.Output, vnt.Name)
	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return err
	}

	for _, tmpl := range templates {
		rel, err := filepath.Rel(a.Config.Templates, tmpl)
		if err != nil {
			return err
		}
		// The top-level template directories mirror the families.
		if family := strings.Split(rel, string(filepath.Separator))[0]; family != vnt.Family {
			continue
		}
		contents, err := os.ReadFile(tmpl)
		if err != nil {
			return err
		}

		base := strings.TrimSuffix(filepath.Base(tmpl), ".in")
		for _, rtype := range a.Config.RepoTypes {
			name, err := AddExtension(base, rtype)
			if err != nil {
				return err
			}
			parser := parse.New("repo-template", templateEnv(vnt, rtype),
				&parse.Restrictions{NoUnset: true})
			rendered, err := parser.Parse(string(contents))
			if err != nil {
				return fmt.Errorf("could not render %s for %s: %w", rel, rtype.Name, err)
			}

			dst := filepath.Join(outdir, name)
			if err := os.WriteFile(dst, []byte(rendered), 0o644); err != nil {
				return err
			}
			cfg.Diag("rendered %s -> %s", rel, dst)
		}
	}
	return nil
}

// templateEnv is the substitution environment the templates see.
func templateEnv(vnt *variant.Variant, rtype variant.RepoType) []string {
	env := []string{
		"NAME=" + vnt.Name,
		"FAMILY=" + vnt.Family,
		"REPOTYPE=" + rtype.Name,
		"EXTENSION=" + rtype.Extension,
		"URL=" + rtype.URL,
	}
	if deb := vnt.Repo.Deb; deb != nil {
		env = append(env,
			"VENDOR="+deb.Vendor,
			"CODENAME="+deb.Codename,
			"KEYRING="+filepath.Base(deb.Keyring),
		)
	}
	if yum := vnt.Repo.Yum; yum != nil {
		env = append(env, "KEYRING="+filepath.Base(yum.Keyring))
	}
	return env
}
