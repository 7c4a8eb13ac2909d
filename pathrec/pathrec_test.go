package pathrec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkgmgo/bmssp/pathrec"
)

func TestPath_LessLexicographic(t *testing.T) {
	testCases := []struct {
		name string
		a, b pathrec.Path
		want bool
	}{
		{
			name: "shorter length wins",
			a:    pathrec.Path{Length: 1, Hops: 5, Node: 9},
			b:    pathrec.Path{Length: 2, Hops: 0, Node: 0},
			want: true,
		},
		{
			name: "equal length, fewer hops wins",
			a:    pathrec.Path{Length: 4, Hops: 1, Node: 9},
			b:    pathrec.Path{Length: 4, Hops: 2, Node: 0},
			want: true,
		},
		{
			name: "equal length and hops, smaller node wins",
			a:    pathrec.Path{Length: 4, Hops: 2, Node: 1},
			b:    pathrec.Path{Length: 4, Hops: 2, Node: 3},
			want: true,
		},
		{
			name: "identical records are not strictly less",
			a:    pathrec.Path{Length: 4, Hops: 2, Node: 3},
			b:    pathrec.Path{Length: 4, Hops: 2, Node: 3},
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.Less(tc.b))
		})
	}
}

func TestPath_EqualIgnoresParent(t *testing.T) {
	a := pathrec.Path{Length: 3, Hops: 1, Node: 5, Parent: 0}
	b := pathrec.Path{Length: 3, Hops: 1, Node: 5, Parent: 9}
	require.True(t, a.Equal(b))
}

func TestPath_InfiniteRecordsToDifferentNodesAreUnequal(t *testing.T) {
	// Open question in the algorithm's design notes: two unreachable +Inf
	// paths to different nodes must compare unequal. Node still participates.
	a := pathrec.Unset(1)
	b := pathrec.Unset(2)
	require.False(t, a.Equal(b))
	require.NotEqual(t, a.Less(b), b.Less(a))
}

func TestRelax(t *testing.T) {
	u := pathrec.Path{Length: 2, Hops: 1, Node: 4, Parent: 0}
	got := pathrec.Relax(u, 7, 3)
	want := pathrec.Path{Length: 5, Hops: 2, Node: 7, Parent: 4}
	require.Equal(t, want, got)
}

func TestBound_IsMaximal(t *testing.T) {
	b := pathrec.Bound()
	p := pathrec.Path{Length: 1e6, Hops: 50, Node: 999}
	require.True(t, p.Less(b))
	require.False(t, b.Less(p))
}

func TestSource_ZeroLength(t *testing.T) {
	s := pathrec.Source(3)
	require.Equal(t, 0.0, s.Length)
	require.Equal(t, pathrec.NoParent, s.Parent)
}
