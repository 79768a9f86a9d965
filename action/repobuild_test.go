package action

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sp-viktori/sp-variant/variant"
)

func TestLoadBuildConfigDefaults(t *testing.T) {
	cfg, err := LoadBuildConfig("")
	require.NoError(t, err)
	require.Equal(t, "templates", cfg.Templates)
	require.Equal(t, "dist", cfg.Output)
	require.Equal(t, variant.RepoTypes, cfg.RepoTypes)
}

func TestLoadBuildConfigFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "build.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`---
output: rendered
repotypes:
  - name: contrib
    extension: ""
    url: https://mirror.example.com/storpool/
`), 0o644))

	cfg, err := LoadBuildConfig(path)
	require.NoError(t, err)
	require.Equal(t, "templates", cfg.Templates)
	require.Equal(t, "rendered", cfg.Output)
	require.Len(t, cfg.RepoTypes, 1)
	require.Equal(t, "https://mirror.example.com/storpool/", cfg.RepoTypes[0].URL)
}

func TestLoadBuildConfigInvalid(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "build.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`---
repotypes:
  - name: contrib
    url: not-a-url
`), 0o644))

	_, err := LoadBuildConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid build configuration")
}

func writeTemplate(t *testing.T, dir, name, contents string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestRepoBuild(t *testing.T) {
	reg, err := variant.Build()
	require.NoError(t, err)

	dir := t.TempDir()
	templates := filepath.Join(dir, "templates")
	output := filepath.Join(dir, "dist")
	writeTemplate(t, templates, "debian/storpool.sources.in",
		"Types: deb\nURIs: ${URL}${VENDOR}\nSuites: ${CODENAME}\nSigned-By: /usr/share/keyrings/${KEYRING}\n")
	writeTemplate(t, templates, "redhat/storpool-centos.repo.in",
		"[storpool-${REPOTYPE}]\nbaseurl=${URL}redhat\ngpgkey=file:///etc/pki/rpm-gpg/${KEYRING}\n")

	build := RepoBuild{Config: &BuildConfig{
		Templates: templates,
		Output:    output,
		RepoTypes: variant.RepoTypes,
	}}
	require.NoError(t, build.Run(&variant.Config{}, reg))

	sources, err := os.ReadFile(filepath.Join(output, "UBUNTU1804", "storpool.sources"))
	require.NoError(t, err)
	require.Contains(t, string(sources), "https://repo.storpool.com/public/ubuntu")
	require.Contains(t, string(sources), "Suites: bionic")

	infra, err := os.ReadFile(filepath.Join(output, "UBUNTU1804", "storpool-infra.sources"))
	require.NoError(t, err)
	require.Contains(t, string(infra), "https://intrepo.storpool.com/repo/ubuntu")

	repo, err := os.ReadFile(filepath.Join(output, "CENTOS7", "storpool-centos-staging.repo"))
	require.NoError(t, err)
	require.Contains(t, string(repo), "[storpool-staging]")
	require.Contains(t, string(repo), "RPM-GPG-KEY-StorPool")

	// A Debian variant gets no files from the redhat templates.
	_, err = os.Stat(filepath.Join(output, "DEBIAN12", "storpool-centos.repo"))
	require.ErrorIs(t, err, os.ErrNotExist)

	// Every variant directory is there.
	for _, vnt := range reg.DetectOrder() {
		info, err := os.Stat(filepath.Join(output, vnt.Name))
		require.NoError(t, err)
		require.True(t, info.IsDir())
	}
}

func TestRepoBuildUnknownVariable(t *testing.T) {
	dir := t.TempDir()
	templates := filepath.Join(dir, "templates")
	writeTemplate(t, templates, "debian/storpool.sources.in", "URIs: ${NO_SUCH_VARIABLE}\n")

	reg, err := variant.Build()
	require.NoError(t, err)

	build := RepoBuild{Config: &BuildConfig{
		Templates: templates,
		Output:    filepath.Join(dir, "dist"),
		RepoTypes: variant.RepoTypes,
	}}
	err = build.Run(&variant.Config{}, reg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not render")
}

func TestRepoBuildNoTemplates(t *testing.T) {
	dir := t.TempDir()
	reg, err := variant.Build()
	require.NoError(t, err)

	build := RepoBuild{Config: &BuildConfig{
		Templates: filepath.Join(dir, "missing"),
		Output:    filepath.Join(dir, "dist"),
		RepoTypes: variant.RepoTypes,
	}}
	err = build.Run(&variant.Config{}, reg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no *.in templates")
}
