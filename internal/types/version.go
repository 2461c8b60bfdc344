package types

import "strings"

// Number is a version component that keeps its raw digit text alongside
// the numeric value, so zero-padded components compare numerically but
// round-trip unchanged.
type Number struct {
	Raw   string
	Value uint64
}

func (n Number) String() string {
	return n.Raw
}

// SuffixKind is a release-type marker ordered by precedence. The
// no-suffix state ranks between SuffixRc and SuffixP.
type SuffixKind int

const (
	SuffixAlpha SuffixKind = iota + 1
	SuffixBeta
	SuffixPre
	SuffixRc
	SuffixP
)

func (k SuffixKind) String() string {
	switch k {
	case SuffixAlpha:
		return "alpha"
	case SuffixBeta:
		return "beta"
	case SuffixPre:
		return "pre"
	case SuffixRc:
		return "rc"
	case SuffixP:
		return "p"
	default:
		return ""
	}
}

// Suffix is one release-type marker with an optional number.
type Suffix struct {
	Kind   SuffixKind
	Number *Number // nil when the suffix carries no number
}

func (s Suffix) String() string {
	if s.Number == nil {
		return s.Kind.String()
	}
	return s.Kind.String() + s.Number.Raw
}

// Version is a parsed package version: dotted numeric components, an
// optional trailing letter, a release-type suffix chain, and an
// optional revision. An absent revision compares equal to revision 0
// but renders distinctly.
type Version struct {
	Components []Number
	Letter     byte // 0 when absent
	Suffixes   []Suffix
	Revision   *Number // nil when absent
}

// Base returns the version text without its revision.
func (v *Version) Base() string {
	var b strings.Builder
	for i, n := range v.Components {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(n.Raw)
	}
	if v.Letter != 0 {
		b.WriteByte(v.Letter)
	}
	for _, s := range v.Suffixes {
		b.WriteByte('_')
		b.WriteString(s.String())
	}
	return b.String()
}

// RevisionText returns the revision digits and whether one was present.
func (v *Version) RevisionText() (string, bool) {
	if v.Revision == nil {
		return "", false
	}
	return v.Revision.Raw, true
}

func (v *Version) String() string {
	if v.Revision == nil {
		return v.Base()
	}
	return v.Base() + "-r" + v.Revision.Raw
}
