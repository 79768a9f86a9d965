package variant

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiagVerbose(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Verbose: true, diagSink: &buf}
	cfg.Diag("probing %s", "/etc/os-release")
	require.Equal(t, "probing /etc/os-release\n", buf.String())
}

func TestDiagQuiet(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{diagSink: &buf}
	cfg.Diag("should not appear")
	require.Empty(t, buf.String())
}

func TestDiagNilConfig(t *testing.T) {
	var cfg *Config
	require.NotPanics(t, func() {
		cfg.Diag("nothing to see")
	})
}
