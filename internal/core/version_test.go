package core

import (
	"errors"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type versionFixtures struct {
	Compares []string   `yaml:"compares"`
	Sorting  [][]string `yaml:"sorting"`
	Equal    [][]string `yaml:"equal"`
}

func loadVersionFixtures(t *testing.T) versionFixtures {
	t.Helper()
	data, err := os.ReadFile("testdata/versions.yaml")
	require.NoError(t, err)
	var fixtures versionFixtures
	require.NoError(t, yaml.Unmarshal(data, &fixtures))
	return fixtures
}

// ---------------------------------------------------------------------------
// ParseVersion
// ---------------------------------------------------------------------------

func TestParseVersionRoundTrip(t *testing.T) {
	for _, s := range []string{
		"1", "1.0", "1.2.3", "1.2.3a", "2.0_alpha", "2.0_alpha1",
		"1.0_beta2_p3", "1.2.3-r1", "0.01.2", "4.9z_rc10-r7",
	} {
		v, err := ParseVersion(s)
		require.NoError(t, err, "parsing %q", s)
		assert.Equal(t, s, v.String(), "round-trip of %q", s)
	}
}

func TestParseVersionInvalid(t *testing.T) {
	for _, s := range []string{
		"", ".", "1.", ".1", "1..2", "a", "1b2", "1_", "1_x", "1_alphab",
		"1-r", "1-1", "1-r1x", "1.2.3_pre-r", "1A",
	} {
		_, err := ParseVersion(s)
		require.Error(t, err, "parsing %q", s)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr, "parsing %q", s)
		assert.Equal(t, ErrInvalidVersion, parseErr.Kind, "parsing %q", s)
	}
}

func TestParseVersionOverflow(t *testing.T) {
	_, err := ParseVersion("99999999999999999999999999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestParseVersionRevisionText(t *testing.T) {
	v, err := ParseVersion("1.0-r3")
	require.NoError(t, err)
	rev, ok := v.RevisionText()
	assert.True(t, ok)
	assert.Equal(t, "3", rev)
	assert.Equal(t, "1.0", v.Base())

	v, err = ParseVersion("1.0")
	require.NoError(t, err)
	_, ok = v.RevisionText()
	assert.False(t, ok)
}

// ---------------------------------------------------------------------------
// CompareVersions
// ---------------------------------------------------------------------------

func TestCompareVersionsGolden(t *testing.T) {
	fixtures := loadVersionFixtures(t)
	require.NotEmpty(t, fixtures.Compares)

	for _, expr := range fixtures.Compares {
		parts := strings.Fields(expr)
		require.Len(t, parts, 3, "bad fixture: %s", expr)

		v1, err := ParseVersion(parts[0])
		require.NoError(t, err, expr)
		v2, err := ParseVersion(parts[2])
		require.NoError(t, err, expr)

		var expected int
		switch parts[1] {
		case "<":
			expected = -1
		case ">":
			expected = 1
		case "==":
			expected = 0
		default:
			t.Fatalf("bad operator in fixture: %s", expr)
		}

		assert.Equal(t, expected, CompareVersions(v1, v2), "comparing %s", expr)
		assert.Equal(t, -expected, CompareVersions(v2, v1), "inverted %s", expr)
	}
}

func TestCompareVersionsSortingGolden(t *testing.T) {
	fixtures := loadVersionFixtures(t)
	require.NotEmpty(t, fixtures.Sorting)

	for _, sorted := range fixtures.Sorting {
		comparator, err := NewSchemeComparator("ebuild")
		require.NoError(t, err)

		shuffled := make([]string, len(sorted))
		copy(shuffled, sorted)
		rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		require.NoError(t, comparator.Sort(shuffled))
		assert.Equal(t, sorted, shuffled)
	}
}

func TestCompareVersionsEqualGroups(t *testing.T) {
	fixtures := loadVersionFixtures(t)
	require.NotEmpty(t, fixtures.Equal)

	for _, group := range fixtures.Equal {
		for _, a := range group {
			for _, b := range group {
				v1, err := ParseVersion(a)
				require.NoError(t, err)
				v2, err := ParseVersion(b)
				require.NoError(t, err)
				assert.Zero(t, CompareVersions(v1, v2), "%s vs %s", a, b)
			}
		}
	}
}

// Transitivity spot check over a mixed set: sorting twice from
// different input orders must agree.
func TestCompareVersionsTotalOrder(t *testing.T) {
	values := []string{
		"1", "1.0", "1_alpha", "1_p", "1-r1", "2.0_rc1", "2.0", "2.0_p1",
		"0.9", "1.0a", "1.0a_pre1", "10", "1.10", "1.9",
	}

	first := make([]string, len(values))
	copy(first, values)
	comparator, err := NewSchemeComparator("ebuild")
	require.NoError(t, err)
	require.NoError(t, comparator.Sort(first))

	second := make([]string, len(values))
	for i, v := range values {
		second[len(values)-1-i] = v
	}
	require.NoError(t, comparator.Sort(second))

	assert.Equal(t, first, second)
}

func TestParseVersionErrorOffset(t *testing.T) {
	_, err := ParseVersion("1..2")
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Offset)
}
