package core

import (
	"sort"
	"strings"

	"pkgdep/internal/types"
)

// Compare orders two records by category, package, then version, each
// most significant first. Records without a version sort before
// versioned records. Slot, use, repository, and blocker fields do not
// participate in ordering.
func Compare(a, b *types.Dep) int {
	if c := strings.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	if c := strings.Compare(a.Package, b.Package); c != 0 {
		return c
	}
	switch {
	case a.Version == nil && b.Version == nil:
		return 0
	case a.Version == nil:
		return -1
	case b.Version == nil:
		return 1
	default:
		return CompareVersions(a.Version, b.Version)
	}
}

// Equal reports structural equality over every field, including those
// excluded from the ordering key. Versions compare by value, so a
// zero-padded component or an explicit -r0 still matches.
func Equal(a, b *types.Dep) bool {
	if Compare(a, b) != 0 {
		return false
	}
	if a.Blocker != b.Blocker || a.Repo != b.Repo {
		return false
	}
	if (a.Slot == nil) != (b.Slot == nil) {
		return false
	}
	if a.Slot != nil && *a.Slot != *b.Slot {
		return false
	}
	return useDepsEqual(a.UseDeps, b.UseDeps)
}

// useDepsEqual compares two flag sets ignoring entry order; flag names
// are unique within a record.
func useDepsEqual(a, b []types.UseDep) bool {
	if len(a) != len(b) {
		return false
	}
	byFlag := make(map[string]types.UseDep, len(a))
	for _, u := range a {
		byFlag[u.Flag] = u
	}
	for _, u := range b {
		if got, ok := byFlag[u.Flag]; !ok || got != u {
			return false
		}
	}
	return true
}

// SortDeps sorts records in place using the ordering key. The sort is
// stable so order-equal records keep their input order.
func SortDeps(deps []*types.Dep) {
	sort.SliceStable(deps, func(i, j int) bool {
		return Compare(deps[i], deps[j]) < 0
	})
}

// DedupDeps returns records with structural duplicates removed, keeping
// the first occurrence. Order-equal records that differ structurally
// are all retained.
func DedupDeps(deps []*types.Dep) []*types.Dep {
	out := make([]*types.Dep, 0, len(deps))
	for _, d := range deps {
		dup := false
		for _, kept := range out {
			if Equal(kept, d) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, d)
		}
	}
	return out
}
