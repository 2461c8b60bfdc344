package core

import (
	"strconv"
	"strings"

	"pkgdep/internal/types"
)

// suffixTokens lists release-type tokens in match order. "pre" must
// precede "p" so the longer token wins.
var suffixTokens = []struct {
	token string
	kind  types.SuffixKind
}{
	{"alpha", types.SuffixAlpha},
	{"beta", types.SuffixBeta},
	{"pre", types.SuffixPre},
	{"rc", types.SuffixRc},
	{"p", types.SuffixP},
}

// ParseVersion parses a standalone version string, revision included.
func ParseVersion(s string) (*types.Version, error) {
	if s == "" {
		return nil, parseError(ErrInvalidVersion, s, 0, "empty version")
	}
	return parseVersionSpan(s, 0, len(s))
}

// parseVersionSpan parses input[start:end] as a version. Offsets in
// errors are relative to the full input so specifier-level reports stay
// stable.
func parseVersionSpan(input string, start, end int) (*types.Version, error) {
	v := &types.Version{}
	i := start

	// dotted numeric components
	for {
		n, next, err := scanNumber(input, i, end)
		if err != nil {
			return nil, err
		}
		v.Components = append(v.Components, n)
		i = next
		if i < end && input[i] == '.' {
			i++
			continue
		}
		break
	}

	// single trailing letter on the final component
	if i < end && input[i] >= 'a' && input[i] <= 'z' {
		v.Letter = input[i]
		i++
	}

	// release-type suffixes
	for i < end && input[i] == '_' {
		i++
		matched := false
		for _, st := range suffixTokens {
			if !strings.HasPrefix(input[i:end], st.token) {
				continue
			}
			suffix := types.Suffix{Kind: st.kind}
			i += len(st.token)
			if i < end && isDigit(input[i]) {
				n, next, err := scanNumber(input, i, end)
				if err != nil {
					return nil, err
				}
				suffix.Number = &n
				i = next
			}
			v.Suffixes = append(v.Suffixes, suffix)
			matched = true
			break
		}
		if !matched {
			return nil, parseError(ErrInvalidVersion, input, i, "unknown release-type suffix")
		}
	}

	// revision
	if i < end && input[i] == '-' {
		if i+1 >= end || input[i+1] != 'r' {
			return nil, parseError(ErrInvalidVersion, input, i, "expected revision after '-'")
		}
		n, next, err := scanNumber(input, i+2, end)
		if err != nil {
			return nil, err
		}
		v.Revision = &n
		i = next
	}

	if i != end {
		return nil, parseError(ErrInvalidVersion, input, i, "unexpected character in version")
	}
	return v, nil
}

// scanNumber reads a run of digits starting at i and returns the parsed
// component plus the index after it.
func scanNumber(input string, i, end int) (types.Number, int, error) {
	j := i
	for j < end && isDigit(input[j]) {
		j++
	}
	if j == i {
		return types.Number{}, 0, parseError(ErrInvalidVersion, input, i, "expected digits")
	}
	value, err := strconv.ParseUint(input[i:j], 10, 64)
	if err != nil {
		return types.Number{}, 0, parseError(ErrInvalidVersion, input, i, "numeric component too large")
	}
	return types.Number{Raw: input[i:j], Value: value}, j, nil
}

// CompareVersions returns -1, 0, or 1 ordering a against b. Components
// compare by numeric value with an absent component sorting below an
// explicit zero, letters compare with absence first, suffix chains
// compare by (rank, number) with the no-suffix state between rc and p,
// and an absent revision equals revision 0.
func CompareVersions(a, b *types.Version) int {
	shared := len(a.Components)
	if len(b.Components) < shared {
		shared = len(b.Components)
	}
	for i := 0; i < shared; i++ {
		if c := compareUint(a.Components[i].Value, b.Components[i].Value); c != 0 {
			return c
		}
	}
	if len(a.Components) != len(b.Components) {
		if len(a.Components) > len(b.Components) {
			return 1
		}
		return -1
	}

	if a.Letter != b.Letter {
		if a.Letter > b.Letter {
			return 1
		}
		return -1
	}

	for i := 0; ; i++ {
		inA, inB := i < len(a.Suffixes), i < len(b.Suffixes)
		switch {
		case inA && inB:
			sa, sb := a.Suffixes[i], b.Suffixes[i]
			if sa.Kind != sb.Kind {
				if sa.Kind > sb.Kind {
					return 1
				}
				return -1
			}
			if c := compareUint(suffixNumber(sa), suffixNumber(sb)); c != 0 {
				return c
			}
		case inA:
			if a.Suffixes[i].Kind == types.SuffixP {
				return 1
			}
			return -1
		case inB:
			if b.Suffixes[i].Kind == types.SuffixP {
				return -1
			}
			return 1
		default:
			return compareUint(revisionValue(a), revisionValue(b))
		}
	}
}

func suffixNumber(s types.Suffix) uint64 {
	if s.Number == nil {
		return 0
	}
	return s.Number.Value
}

func revisionValue(v *types.Version) uint64 {
	if v.Revision == nil {
		return 0
	}
	return v.Revision.Value
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
