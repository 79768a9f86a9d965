package variant_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sp-viktori/sp-variant/variant"
)

func TestBuildOnce(t *testing.T) {
	first, err := variant.Build()
	require.NoError(t, err)
	second, err := variant.Build()
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestGetVariant(t *testing.T) {
	vnt, err := variant.GetVariant("CENTOS7")
	require.NoError(t, err)
	require.Equal(t, "CENTOS7", vnt.Name)
	require.Equal(t, "CentOS 7.x", vnt.Descr)
	require.Equal(t, "redhat", vnt.Family)
	require.Equal(t, "rpm", vnt.FileExt)
	require.Nil(t, vnt.Repo.Deb)
	require.NotNil(t, vnt.Repo.Yum)

	_, err = variant.GetVariant("ARCH")
	require.Error(t, err)
	require.ErrorIs(t, err, variant.ErrUnknownVariant)
}

func TestDebianRepoData(t *testing.T) {
	vnt, err := variant.GetVariant("UBUNTU1804")
	require.NoError(t, err)
	repo := vnt.Repo.Deb
	require.NotNil(t, repo)
	require.Equal(t, "ubuntu", repo.Vendor)
	require.Equal(t, "bionic", repo.Codename)
	require.Equal(t, []string{"ca-certificates"}, repo.ReqPackages)

	vnt, err = variant.GetVariant("DEBIAN9")
	require.NoError(t, err)
	repo = vnt.Repo.Deb
	require.NotNil(t, repo)
	require.Equal(t, "debian", repo.Vendor)
	require.Equal(t, "stretch", repo.Codename)
	require.Contains(t, repo.ReqPackages, "apt-transport-https")
}

func TestAliasRoundtrip(t *testing.T) {
	reg, err := variant.Build()
	require.NoError(t, err)
	for _, name := range reg.Names() {
		vnt, err := reg.Get(name)
		require.NoError(t, err)
		require.NotEmpty(t, vnt.Builder.Alias)

		back, err := reg.ByAlias(vnt.Builder.Alias)
		require.NoError(t, err)
		require.Same(t, vnt, back)
	}

	vnt, err := variant.GetByAlias("centos7")
	require.NoError(t, err)
	require.Equal(t, "CENTOS7", vnt.Name)

	_, err = variant.GetByAlias("no-such-alias")
	require.ErrorIs(t, err, variant.ErrUnknownVariant)
}

func TestDetectOrder(t *testing.T) {
	reg, err := variant.Build()
	require.NoError(t, err)
	order := reg.DetectOrder()
	names := reg.Names()
	require.Len(t, order, len(names))

	position := make(map[string]int, len(order))
	for idx, vnt := range order {
		require.NotContains(t, position, vnt.Name)
		position[vnt.Name] = idx
	}
	for _, name := range names {
		require.Contains(t, position, name)
	}

	// The derivatives must come before the distributions their release
	// files would also match.
	require.Less(t, position["ORACLE7"], position["CENTOS7"])
	require.Less(t, position["ROCKY8"], position["CENTOS8"])
	require.Less(t, position["CENTOS8"], position["ALMA8"])
	require.Less(t, position["UBUNTU1804"], position["DEBIAN10"])
	require.Equal(t, len(order)-1, position["DEBIAN12"])
}

func TestCommandResolutionStable(t *testing.T) {
	vnt, err := variant.GetVariant("CENTOS7")
	require.NoError(t, err)

	first, err := vnt.Command("package.install")
	require.NoError(t, err)
	require.Equal(t, "yum", first[0])

	second, err := vnt.Command("package.install")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestUpdateDBNoop(t *testing.T) {
	vnt, err := variant.GetVariant("ALMA9")
	require.NoError(t, err)
	cmd, err := vnt.Command("package.update_db")
	require.NoError(t, err)
	require.Equal(t, []string{"true"}, cmd)

	vnt, err = variant.GetVariant("DEBIAN12")
	require.NoError(t, err)
	cmd, err = vnt.Command("package.update_db")
	require.NoError(t, err)
	require.Equal(t, []string{"apt-get", "-q", "-y", "update"}, cmd)
}

func TestRepoTypeByName(t *testing.T) {
	rtype, err := variant.RepoTypeByName("staging")
	require.NoError(t, err)
	require.Equal(t, "-staging", rtype.Extension)

	rtype, err = variant.RepoTypeByName("contrib")
	require.NoError(t, err)
	require.Empty(t, rtype.Extension)

	_, err = variant.RepoTypeByName("nightly")
	require.Error(t, err)
	var unknown *variant.UnknownRepoTypeError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, []string{"contrib", "staging", "infra"}, unknown.Known)
}

func TestErrorKinds(t *testing.T) {
	nomatch := &variant.NoMatchError{Probed: []string{"/etc/os-release"}}
	require.ErrorIs(t, nomatch, variant.ErrNotDetected)
	require.False(t, errors.Is(nomatch, variant.ErrUnknownVariant))
	require.Contains(t, nomatch.Error(), "/etc/os-release")
}
