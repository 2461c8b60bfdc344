package core

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"pkgdep/internal/types"
)

// SchemeComparator compares version strings under a selected scheme,
// memoizing parsed versions so repeated comparisons during sorting
// don't re-parse.
type SchemeComparator struct {
	scheme types.VersionScheme
	ebuild map[string]*types.Version
	deb    map[string]debversion.Version
	pep    map[string]pep440.Version
}

// NewSchemeComparator creates an empty comparator for the given scheme.
func NewSchemeComparator(scheme types.VersionScheme) (*SchemeComparator, error) {
	switch scheme {
	case types.VersionSchemeEbuild, types.VersionSchemeDeb, types.VersionSchemePip:
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported version scheme: %s", scheme))
	}
	return &SchemeComparator{
		scheme: scheme,
		ebuild: map[string]*types.Version{},
		deb:    map[string]debversion.Version{},
		pep:    map[string]pep440.Version{},
	}, nil
}

// ebuildVersion returns a parsed native version, caching the result.
func (c *SchemeComparator) ebuildVersion(value string) (*types.Version, error) {
	if parsed, ok := c.ebuild[value]; ok {
		return parsed, nil
	}
	parsed, err := ParseVersion(value)
	if err != nil {
		return nil, err
	}
	c.ebuild[value] = parsed
	return parsed, nil
}

// debVersion returns a parsed Debian version, caching the result.
func (c *SchemeComparator) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid deb version: %s", value)).
			WithCause(err)
	}
	c.deb[value] = parsed
	return parsed, nil
}

// pepVersion returns a parsed PEP 440 version, caching the result.
func (c *SchemeComparator) pepVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid pep440 version: %s", value)).
			WithCause(err)
	}
	c.pep[value] = parsed
	return parsed, nil
}

// Compare returns -1, 0, or 1 comparing two version strings under the
// comparator's scheme.
func (c *SchemeComparator) Compare(a, b string) (int, error) {
	switch c.scheme {
	case types.VersionSchemeEbuild:
		v1, err := c.ebuildVersion(a)
		if err != nil {
			return 0, err
		}
		v2, err := c.ebuildVersion(b)
		if err != nil {
			return 0, err
		}
		return CompareVersions(v1, v2), nil
	case types.VersionSchemeDeb:
		v1, err := c.debVersion(a)
		if err != nil {
			return 0, err
		}
		v2, err := c.debVersion(b)
		if err != nil {
			return 0, err
		}
		return v1.Compare(v2), nil
	default:
		v1, err := c.pepVersion(a)
		if err != nil {
			return 0, err
		}
		v2, err := c.pepVersion(b)
		if err != nil {
			return 0, err
		}
		return v1.Compare(v2), nil
	}
}

// Sort sorts version strings ascending in place. Every value is parsed
// up front so the sort itself only hits the cache.
func (c *SchemeComparator) Sort(values []string) error {
	for _, value := range values {
		if _, err := c.Compare(value, value); err != nil {
			return err
		}
	}
	sort.SliceStable(values, func(i, j int) bool {
		result, _ := c.Compare(values[i], values[j])
		return result < 0
	})
	return nil
}
