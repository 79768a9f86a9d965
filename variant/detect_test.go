package variant

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

type fixtureFS map[string]string

func (f fixtureFS) ReadFile(name string) ([]byte, error) {
	contents, ok := f[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return []byte(contents), nil
}

func detectFixture(t *testing.T, files fixtureFS) (*Variant, error) {
	t.Helper()
	reg, err := Build()
	require.NoError(t, err)
	return DetectFrom(reg, nil, files)
}

func TestDetectFromOSRelease(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		expected string
	}{
		{
			"ubuntu bionic by codename only",
			"ID=ubuntu\nVERSION_CODENAME=bionic\n",
			"UBUNTU1804",
		},
		{
			"ubuntu bionic by version id",
			"ID=ubuntu\nVERSION_ID=\"18.04\"\n",
			"UBUNTU1804",
		},
		{
			"debian bullseye",
			"ID=debian\nVERSION_ID=\"11\"\nVERSION_CODENAME=bullseye\n",
			"DEBIAN11",
		},
		{
			"alma 9",
			"ID=alma\nVERSION_ID=\"9.2\"\n",
			"ALMA9",
		},
		{
			"rocky 8",
			"ID=rocky\nVERSION_ID=\"8.8\"\n",
			"ROCKY8",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vnt, err := detectFixture(t, fixtureFS{"/etc/os-release": tc.contents})
			require.NoError(t, err)
			require.Equal(t, tc.expected, vnt.Name)
		})
	}
}

func TestDetectFromReleaseFiles(t *testing.T) {
	t.Run("centos 7", func(t *testing.T) {
		vnt, err := detectFixture(t, fixtureFS{
			"/etc/redhat-release": "CentOS Linux release 7.9.2009 (Core)\n",
		})
		require.NoError(t, err)
		require.Equal(t, "CENTOS7", vnt.Name)
	})

	t.Run("oracle beats the compatible redhat release", func(t *testing.T) {
		vnt, err := detectFixture(t, fixtureFS{
			"/etc/redhat-release": "Red Hat Enterprise Linux Server release 7.9 (Maipo)\n",
			"/etc/oracle-release": "Oracle Linux Server release 7.9\n",
		})
		require.NoError(t, err)
		require.Equal(t, "ORACLE7", vnt.Name)
	})

	t.Run("rocky 9", func(t *testing.T) {
		vnt, err := detectFixture(t, fixtureFS{
			"/etc/redhat-release": "Rocky Linux release 9.3 (Blue Onyx)\n",
		})
		require.NoError(t, err)
		require.Equal(t, "ROCKY9", vnt.Name)
	})

	t.Run("unparseable os-release falls through", func(t *testing.T) {
		vnt, err := detectFixture(t, fixtureFS{
			"/etc/os-release":     "NAME='\n",
			"/etc/redhat-release": "AlmaLinux release 8.9 (Midnight Oncilla)\n",
		})
		require.NoError(t, err)
		require.Equal(t, "ALMA8", vnt.Name)
	})
}

func TestDetectDeterministic(t *testing.T) {
	files := fixtureFS{
		"/etc/os-release": "PRETTY_NAME=\"Debian GNU/Linux 12 (bookworm)\"\nID=debian\nVERSION_ID=\"12\"\n",
	}
	first, err := detectFixture(t, files)
	require.NoError(t, err)
	second, err := detectFixture(t, files)
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, "DEBIAN12", first.Name)
}

func TestDetectNoMatch(t *testing.T) {
	_, err := detectFixture(t, fixtureFS{})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotDetected)

	var nomatch *NoMatchError
	require.ErrorAs(t, err, &nomatch)
	require.NotEmpty(t, nomatch.Probed)
	require.Equal(t, osReleaseFile, nomatch.Probed[0])
}

func TestDetectOrderPriority(t *testing.T) {
	generic := &Variant{
		Name:   "GENERIC",
		Detect: DetectSpec{Filename: "/etc/stub-release", Regex: pattern(`^Stub`)},
	}
	specific := &Variant{
		Name:   "SPECIFIC",
		Detect: DetectSpec{Filename: "/etc/stub-release", Regex: pattern(`^Stub\s+Remix`)},
	}
	files := fixtureFS{"/etc/stub-release": "Stub Remix release 1.0\n"}

	reg := &Registry{order: []*Variant{specific, generic}}
	vnt, err := DetectFrom(reg, nil, files)
	require.NoError(t, err)
	require.Same(t, specific, vnt)

	reg = &Registry{order: []*Variant{generic, specific}}
	vnt, err = DetectFrom(reg, nil, files)
	require.NoError(t, err)
	require.Same(t, generic, vnt)
}
