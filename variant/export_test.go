package variant_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sp-viktori/sp-variant/variant"
)

func TestExportAll(t *testing.T) {
	reg, err := variant.Build()
	require.NoError(t, err)

	raw, err := json.Marshal(reg.ExportAll())
	require.NoError(t, err)

	var doc struct {
		Format struct {
			Version struct {
				Major int `json:"major"`
				Minor int `json:"minor"`
			} `json:"version"`
		} `json:"format"`
		Order    []string                   `json:"order"`
		Variants map[string]json.RawMessage `json:"variants"`
		Version  string                     `json:"version"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	require.Equal(t, 1, doc.Format.Version.Major)
	require.Equal(t, 3, doc.Format.Version.Minor)
	require.Equal(t, "3.0.0", doc.Version)

	require.Len(t, doc.Order, len(doc.Variants))
	for _, name := range doc.Order {
		require.Contains(t, doc.Variants, name)
	}
}

func TestExportSingle(t *testing.T) {
	vnt, err := variant.GetVariant("UBUNTU1804")
	require.NoError(t, err)

	raw, err := json.Marshal(variant.ExportSingle(vnt))
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Equal(t, "3.0.0", doc["version"])

	data, ok := doc["variant"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "UBUNTU1804", data["name"])
	require.Equal(t, "UBUNTU2004", data["parent"])
	require.Equal(t, "2.7", data["min_sys_python"])

	detect, ok := data["detect"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "/etc/os-release", detect["filename"])
	// Regular expressions are exported as their pattern text.
	require.IsType(t, "", detect["regex"])
	require.Contains(t, detect["regex"], "18")

	repo, ok := data["repo"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "bionic", repo["codename"])
	require.NotContains(t, repo, "yumdef")
}

func TestExportYumRepo(t *testing.T) {
	vnt, err := variant.GetVariant("ALMA8")
	require.NoError(t, err)

	raw, err := json.Marshal(vnt)
	require.NoError(t, err)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &data))
	repo, ok := data["repo"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "redhat/repo/storpool-centos.repo", repo["yumdef"])
	require.NotContains(t, repo, "codename")
}
