package types

import "strings"

// Slot is the slot part of a specifier. SubSlot is only meaningful when
// Name is set; Op is SlotOperatorNone when absent.
type Slot struct {
	Name    string
	SubSlot string
	Op      SlotOperator
}

func (s Slot) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	if s.SubSlot != "" {
		b.WriteByte('/')
		b.WriteString(s.SubSlot)
	}
	b.WriteString(string(s.Op))
	return b.String()
}

// UseDep is one conditional build-flag requirement.
type UseDep struct {
	Flag    string
	Kind    UseDepKind
	Default UseDepDefault
}

func (u UseDep) String() string {
	return u.Kind.prefix() + u.Flag + string(u.Default) + u.Kind.suffix()
}

// Dep is a parsed dependency specifier. Records are constructed by the
// parser and treated as immutable afterwards; optional fields are nil
// or the zero enum value when absent.
type Dep struct {
	Blocker  Blocker
	Category string
	Package  string
	Version  *Version
	Slot     *Slot
	UseDeps  []UseDep
	Repo     string // "" when absent; repository names are never empty
}

// CPN returns the canonical "category/package" projection.
func (d *Dep) CPN() string {
	return d.Category + "/" + d.Package
}

// CPV returns "category/package-version", or the CPN when unversioned.
func (d *Dep) CPV() string {
	if d.Version == nil {
		return d.CPN()
	}
	return d.CPN() + "-" + d.Version.String()
}

// P returns "package-version" without the revision.
func (d *Dep) P() string {
	if d.Version == nil {
		return d.Package
	}
	return d.Package + "-" + d.Version.Base()
}

// PF returns "package-version-rN" including the revision when present.
func (d *Dep) PF() string {
	if d.Version == nil {
		return d.Package
	}
	return d.Package + "-" + d.Version.String()
}

// PR returns the revision as "rN", defaulting to "r0" for versioned
// records without an explicit revision.
func (d *Dep) PR() string {
	if d.Version == nil {
		return ""
	}
	if rev, ok := d.Version.RevisionText(); ok {
		return "r" + rev
	}
	return "r0"
}

// PVR returns the version text including any revision.
func (d *Dep) PVR() string {
	if d.Version == nil {
		return ""
	}
	return d.Version.String()
}

func (d *Dep) String() string {
	var b strings.Builder
	b.WriteString(string(d.Blocker))
	b.WriteString(d.CPV())
	if d.Slot != nil {
		b.WriteByte(':')
		b.WriteString(d.Slot.String())
	}
	if len(d.UseDeps) > 0 {
		b.WriteByte('[')
		for i, u := range d.UseDeps {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(u.String())
		}
		b.WriteByte(']')
	}
	if d.Repo != "" {
		b.WriteString("::")
		b.WriteString(d.Repo)
	}
	return b.String()
}
