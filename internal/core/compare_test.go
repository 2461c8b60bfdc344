package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkgdep/internal/types"
)

func mustParse(t *testing.T, s string) *types.Dep {
	t.Helper()
	dep, err := Parse(s)
	require.NoError(t, err)
	return dep
}

func TestCompareOrderingKey(t *testing.T) {
	cases := []struct {
		a, b     string
		expected int
	}{
		{"a/pkg", "b/pkg", -1},
		{"cat/aaa", "cat/bbb", -1},
		{"cat/pkg", "cat/pkg", 0},
		{"cat/pkg", "cat/pkg-1", -1},
		{"cat/pkg-2", "cat/pkg-1", 1},
		{"cat/pkg-1.01", "cat/pkg-1.1", 0},
		// slot, use, repo, and blocker stay out of the ordering key
		{"cat/pkg:1", "cat/pkg:2", 0},
		{"cat/pkg[a]", "cat/pkg[b]", 0},
		{"cat/pkg::r1", "cat/pkg::r2", 0},
		{"!cat/pkg", "cat/pkg", 0},
	}
	for _, tc := range cases {
		a, b := mustParse(t, tc.a), mustParse(t, tc.b)
		assert.Equal(t, tc.expected, Compare(a, b), "%s vs %s", tc.a, tc.b)
		assert.Equal(t, -tc.expected, Compare(b, a), "%s vs %s inverted", tc.b, tc.a)
	}
}

func TestEqualStructural(t *testing.T) {
	equal := []struct{ a, b string }{
		{"cat/pkg-1.0", "cat/pkg-1.0-r0"},
		{"cat/pkg-1.01", "cat/pkg-1.1"},
		{"cat/pkg[a,b]", "cat/pkg[b,a]"},
		{"!cat/pkg:1/2=::repo", "!cat/pkg:1/2=::repo"},
	}
	for _, tc := range equal {
		assert.True(t, Equal(mustParse(t, tc.a), mustParse(t, tc.b)), "%s == %s", tc.a, tc.b)
	}

	unequal := []struct{ a, b string }{
		{"cat/pkg", "cat/pkg-1"},
		{"cat/pkg::r1", "cat/pkg::r2"},
		{"cat/pkg::repo", "cat/pkg"},
		{"cat/pkg:1", "cat/pkg:2"},
		{"cat/pkg:1", "cat/pkg"},
		{"cat/pkg:1", "cat/pkg:1="},
		{"cat/pkg[a]", "cat/pkg[a=]"},
		{"cat/pkg[a]", "cat/pkg[a,b]"},
		{"cat/pkg[a(+)]", "cat/pkg[a]"},
		{"!cat/pkg", "cat/pkg"},
		{"!cat/pkg", "!!cat/pkg"},
	}
	for _, tc := range unequal {
		assert.False(t, Equal(mustParse(t, tc.a), mustParse(t, tc.b)), "%s != %s", tc.a, tc.b)
	}
}

func TestSortDepsStable(t *testing.T) {
	deps := []*types.Dep{
		mustParse(t, "sys/zlib-2"),
		mustParse(t, "app/tool-1::second"),
		mustParse(t, "app/tool-1::first"),
		mustParse(t, "app/tool"),
		mustParse(t, "sys/zlib-1.9"),
	}
	SortDeps(deps)

	rendered := make([]string, len(deps))
	for i, d := range deps {
		rendered[i] = d.String()
	}
	// order-equal records keep their input order
	assert.Equal(t, []string{
		"app/tool",
		"app/tool-1::second",
		"app/tool-1::first",
		"sys/zlib-1.9",
		"sys/zlib-2",
	}, rendered)
}

func TestDedupDeps(t *testing.T) {
	deps := []*types.Dep{
		mustParse(t, "cat/pkg-1.0"),
		mustParse(t, "cat/pkg-1.0-r0"),
		mustParse(t, "cat/pkg-1.0::repo"),
		mustParse(t, "cat/pkg-1.00"),
		mustParse(t, "cat/other"),
	}
	out := DedupDeps(deps)
	require.Len(t, out, 3)
	assert.Same(t, deps[0], out[0])
	assert.Same(t, deps[2], out[1])
	assert.Same(t, deps[4], out[2])
}
