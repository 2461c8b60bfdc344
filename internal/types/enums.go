package types

// Blocker marks a specifier as blocking the matched package.
type Blocker string

const (
	BlockerNone   Blocker = ""
	BlockerWeak   Blocker = "!"
	BlockerStrong Blocker = "!!"
)

// SlotOperator controls rebuild behavior across slot changes.
type SlotOperator string

const (
	SlotOperatorNone  SlotOperator = ""
	SlotOperatorEqual SlotOperator = "="
	SlotOperatorStar  SlotOperator = "*"
)

// ParseSlotOperator converts a grammar token into a SlotOperator.
func ParseSlotOperator(token string) (SlotOperator, bool) {
	switch SlotOperator(token) {
	case SlotOperatorEqual:
		return SlotOperatorEqual, true
	case SlotOperatorStar:
		return SlotOperatorStar, true
	default:
		return SlotOperatorNone, false
	}
}

// UseDepKind is the requirement polarity of a USE dependency.
type UseDepKind string

const (
	UseDepEnabled             UseDepKind = "enabled"              // flag
	UseDepDisabled            UseDepKind = "disabled"             // -flag
	UseDepEqual               UseDepKind = "equal"                // flag=
	UseDepNotEqual            UseDepKind = "not-equal"            // !flag=
	UseDepEnabledConditional  UseDepKind = "enabled-conditional"  // flag?
	UseDepDisabledConditional UseDepKind = "disabled-conditional" // !flag?
)

// ParseUseDepKind converts a kind name into a UseDepKind.
func ParseUseDepKind(name string) (UseDepKind, bool) {
	switch UseDepKind(name) {
	case UseDepEnabled, UseDepDisabled, UseDepEqual, UseDepNotEqual,
		UseDepEnabledConditional, UseDepDisabledConditional:
		return UseDepKind(name), true
	default:
		return "", false
	}
}

// prefix returns the marker preceding the flag name in specifier text.
func (k UseDepKind) prefix() string {
	switch k {
	case UseDepDisabled:
		return "-"
	case UseDepNotEqual, UseDepDisabledConditional:
		return "!"
	default:
		return ""
	}
}

// suffix returns the marker following the flag name in specifier text.
func (k UseDepKind) suffix() string {
	switch k {
	case UseDepEqual, UseDepNotEqual:
		return "="
	case UseDepEnabledConditional, UseDepDisabledConditional:
		return "?"
	default:
		return ""
	}
}

// UseDepDefault is the fallback state applied when the flag is missing
// from the target package.
type UseDepDefault string

const (
	UseDepDefaultNone     UseDepDefault = ""
	UseDepDefaultEnabled  UseDepDefault = "(+)"
	UseDepDefaultDisabled UseDepDefault = "(-)"
)

// VersionScheme selects the version comparison semantics.
type VersionScheme string

const (
	VersionSchemeEbuild VersionScheme = "ebuild"
	VersionSchemeDeb    VersionScheme = "deb"
	VersionSchemePip    VersionScheme = "pip"
)
