package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkgdep/internal/types"
)

func TestNewSchemeComparatorRejectsUnknownScheme(t *testing.T) {
	_, err := NewSchemeComparator("rpm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported version scheme")
}

func TestSchemeComparatorEbuild(t *testing.T) {
	comparator, err := NewSchemeComparator(types.VersionSchemeEbuild)
	require.NoError(t, err)

	result, err := comparator.Compare("1.0_rc1", "1.0")
	require.NoError(t, err)
	assert.Equal(t, -1, result)

	// repeated lookups hit the cache
	result, err = comparator.Compare("1.0", "1.0_rc1")
	require.NoError(t, err)
	assert.Equal(t, 1, result)

	_, err = comparator.Compare("not-a-version", "1.0")
	require.Error(t, err)
}

func TestSchemeComparatorDeb(t *testing.T) {
	comparator, err := NewSchemeComparator(types.VersionSchemeDeb)
	require.NoError(t, err)

	result, err := comparator.Compare("1.0-1", "1.0-2")
	require.NoError(t, err)
	assert.Negative(t, result)

	result, err = comparator.Compare("2:1.0", "1:9.9")
	require.NoError(t, err)
	assert.Positive(t, result)
}

func TestSchemeComparatorPip(t *testing.T) {
	comparator, err := NewSchemeComparator(types.VersionSchemePip)
	require.NoError(t, err)

	result, err := comparator.Compare("1.0rc1", "1.0")
	require.NoError(t, err)
	assert.Negative(t, result)

	result, err = comparator.Compare("1.0.post1", "1.0")
	require.NoError(t, err)
	assert.Positive(t, result)

	_, err = comparator.Compare("???", "1.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pep440 version")
}

func TestSchemeComparatorSort(t *testing.T) {
	comparator, err := NewSchemeComparator(types.VersionSchemeDeb)
	require.NoError(t, err)

	values := []string{"1.0-2", "0.9", "1.0-1"}
	require.NoError(t, comparator.Sort(values))
	assert.Equal(t, []string{"0.9", "1.0-1", "1.0-2"}, values)
}

func TestSchemeComparatorSortRejectsInvalidValue(t *testing.T) {
	comparator, err := NewSchemeComparator(types.VersionSchemeEbuild)
	require.NoError(t, err)

	values := []string{"1.0", "bogus!", "2.0"}
	err = comparator.Sort(values)
	require.Error(t, err)
	// input left untouched on failure
	assert.Equal(t, []string{"1.0", "bogus!", "2.0"}, values)
}
