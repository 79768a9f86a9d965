package run_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sp-viktori/sp-variant/internal/run"
)

func TestNoopDisplaysCommands(t *testing.T) {
	var buf bytes.Buffer
	noop := run.Noop{Out: &buf}

	require.NoError(t, noop.Run("apt-get", "install", "--", "storpool beacon"))
	out, err := noop.Output("dpkg-query", "-W")
	require.NoError(t, err)
	require.Nil(t, out)

	require.Equal(t, "apt-get install -- 'storpool beacon'\ndpkg-query -W\n", buf.String())
}

func TestLocalOutput(t *testing.T) {
	out, err := run.Local{}.Output("sh", "-c", "printf 'one\\ttwo'")
	require.NoError(t, err)
	require.Equal(t, "one\ttwo", string(out))
}

func TestLocalRunFailure(t *testing.T) {
	err := run.Local{}.Run("sh", "-c", "exit 42")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed")
}
