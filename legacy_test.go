package protover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeForOldTor(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{
			"advertises its own list",
			"0.2.9.3-alpha",
			"",
		},
		{
			"newer than the mechanism",
			"0.4.8.1",
			"",
		},
		{
			"late legacy line",
			"0.2.8.10",
			"Cons=1-2,Desc=1-2,DirCache=1,HSDir=1,HSIntro=3,HSRend=1,Link=1-4,LinkAuth=1,Microdesc=1-2,Relay=1-2",
		},
		{
			"exact late threshold",
			"0.2.7.5",
			"Cons=1-2,Desc=1-2,DirCache=1,HSDir=1,HSIntro=3,HSRend=1,Link=1-4,LinkAuth=1,Microdesc=1-2,Relay=1-2",
		},
		{
			"early legacy line",
			"0.2.5.12",
			"Cons=1,Desc=1,DirCache=1,HSDir=1,HSIntro=3,HSRend=1,Link=1-4,LinkAuth=1,Microdesc=1,Relay=1-2",
		},
		{
			"exact early threshold",
			"0.2.4.19",
			"Cons=1,Desc=1,DirCache=1,HSDir=1,HSIntro=3,HSRend=1,Link=1-4,LinkAuth=1,Microdesc=1,Relay=1-2",
		},
		{
			"older than the table",
			"0.2.4.18-rc",
			"",
		},
		{
			"ancient",
			"0.1.2.17",
			"",
		},
		{
			"three-component version",
			"0.2.5",
			"Cons=1,Desc=1,DirCache=1,HSDir=1,HSIntro=3,HSRend=1,Link=1-4,LinkAuth=1,Microdesc=1,Relay=1-2",
		},
		{
			"malformed version",
			"banana",
			"",
		},
		{
			"empty version",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ComputeForOldTor(tt.version).String())
		})
	}
}

func TestComputeForOldTorStatusTags(t *testing.T) {
	// 0.2.9.3-alpha is the first release to advertise; the stable 0.2.9.3
	// and a dev build of the alpha are at least as new.
	require.Equal(t, "", ComputeForOldTor("0.2.9.3").String())
	require.Equal(t, "", ComputeForOldTor("0.2.9.3-alpha-dev").String())

	// An alpha of the same numeric release as a stable threshold predates it.
	late := ComputeForOldTor("0.2.7.5").String()
	early := ComputeForOldTor("0.2.7.5-alpha").String()
	require.NotEqual(t, late, early)
	require.Equal(t, ComputeForOldTor("0.2.4.19").String(), early)
}

func TestComputeForOldTorDeterministic(t *testing.T) {
	for _, version := range []string{"0.2.8.10", "0.2.5.1", "junk", "0.3.1.7"} {
		first := ComputeForOldTor(version).String()
		for i := 0; i < 20; i++ {
			require.Equal(t, first, ComputeForOldTor(version).String())
		}
	}
}

func TestParseLegacyRelease(t *testing.T) {
	r, ok := parseLegacyRelease("0.2.9.3-alpha")
	require.True(t, ok)
	require.Equal(t, legacyRelease{major: 0, minor: 2, micro: 9, patch: 3, status: statusAlpha}, r)

	r, ok = parseLegacyRelease("0.2.7.5")
	require.True(t, ok)
	require.Equal(t, statusStable, r.status)

	for _, bad := range []string{"", "1.2", "1.2.3.4.5", "a.b.c", "1..2.3"} {
		_, ok := parseLegacyRelease(bad)
		require.False(t, ok, "%q should not parse", bad)
	}
}

func TestLegacyReleaseOrdering(t *testing.T) {
	newer := mustLegacyRelease("0.2.9.3")
	older := mustLegacyRelease("0.2.9.3-alpha")
	require.True(t, newer.atLeast(older))
	require.False(t, older.atLeast(newer))
	require.True(t, older.atLeast(older))
}
