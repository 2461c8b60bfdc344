package core

import (
	"strings"

	"pkgdep/internal/types"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || isDigit(c)
}

// Category, package, slot, and repository names must not begin with a
// hyphen, dot, or plus sign.
func isNameStart(c byte) bool {
	return isAlnum(c) || c == '_'
}

func isNameChar(c byte) bool {
	return isAlnum(c) || c == '_' || c == '-' || c == '+' || c == '.'
}

func isUseFlagStart(c byte) bool {
	return isAlnum(c)
}

func isUseFlagChar(c byte) bool {
	return isAlnum(c) || c == '_' || c == '-' || c == '+' || c == '@'
}

func isRepoChar(c byte) bool {
	return isAlnum(c) || c == '_' || c == '-'
}

func isSlotChar(c byte) bool {
	return isAlnum(c) || c == '_' || c == '-' || c == '+' || c == '.'
}

// Parse parses a dependency specifier of the form
//
//	[!|!!]category/package[-version[-rN]][:slot[/subslot][=|*]][[use,...]][::repo]
//
// into its structured record. Construction is all-or-nothing: on
// failure the returned error carries the first offending byte offset.
func Parse(input string) (*types.Dep, error) {
	if input == "" {
		return nil, parseError(ErrMalformedSpecifier, input, 0, "empty specifier")
	}

	dep := &types.Dep{}
	start, end := 0, len(input)

	if strings.HasPrefix(input, "!!") {
		dep.Blocker = types.BlockerStrong
		start = 2
	} else if input[0] == '!' {
		dep.Blocker = types.BlockerWeak
		start = 1
	}

	// repository pin must be the final token
	if rel := strings.Index(input[start:end], "::"); rel >= 0 {
		repoStart := start + rel + 2
		repo, err := repoName(input, repoStart, end)
		if err != nil {
			return nil, err
		}
		dep.Repo = repo
		end = start + rel
	}

	// use dependency list
	if rel := strings.IndexByte(input[start:end], '['); rel >= 0 {
		open := start + rel
		closeRel := strings.IndexByte(input[open:end], ']')
		if closeRel < 0 {
			return nil, parseError(ErrMalformedSpecifier, input, open, "unterminated use dependency list")
		}
		if open+closeRel != end-1 {
			return nil, parseError(ErrMalformedSpecifier, input, open+closeRel+1, "unexpected text after use dependency list")
		}
		useDeps, err := parseUseList(input, open+1, end-1)
		if err != nil {
			return nil, err
		}
		dep.UseDeps = useDeps
		end = open
	}

	// slot part
	if rel := strings.IndexByte(input[start:end], ':'); rel >= 0 {
		colon := start + rel
		slot, err := parseSlot(input, colon+1, end)
		if err != nil {
			return nil, err
		}
		dep.Slot = slot
		end = colon
	}

	return parseCPV(dep, input, start, end)
}

// parseCPV fills in category, package, and optional version from
// input[start:end]. The package/version ambiguity is resolved by a
// single left-to-right hyphen scan taking the longest suffix that
// parses as a full version.
func parseCPV(dep *types.Dep, input string, start, end int) (*types.Dep, error) {
	i := start
	if i >= end {
		return nil, parseError(ErrMalformedSpecifier, input, i, "expected category name")
	}
	if !isNameStart(input[i]) {
		return nil, parseError(ErrMalformedSpecifier, input, i, "invalid category name")
	}
	j := i + 1
	for j < end && isNameChar(input[j]) {
		j++
	}
	if j >= end || input[j] != '/' {
		return nil, parseError(ErrMalformedSpecifier, input, j, "expected '/' between category and package")
	}
	dep.Category = input[i:j]

	pkgStart := j + 1
	if pkgStart >= end {
		return nil, parseError(ErrMalformedSpecifier, input, pkgStart, "expected package name")
	}
	if !isNameStart(input[pkgStart]) {
		return nil, parseError(ErrMalformedSpecifier, input, pkgStart, "invalid package name")
	}

	pkgEnd := end
	for k := pkgStart + 1; k < end; k++ {
		if input[k] != '-' || k+1 >= end || !isDigit(input[k+1]) {
			continue
		}
		if v, err := parseVersionSpan(input, k+1, end); err == nil {
			dep.Version = v
			pkgEnd = k
			break
		}
	}

	for k := pkgStart + 1; k < pkgEnd; k++ {
		if !isNameChar(input[k]) {
			return nil, parseError(ErrMalformedSpecifier, input, k, "invalid character in package name")
		}
	}
	if input[pkgEnd-1] == '-' {
		return nil, parseError(ErrMalformedSpecifier, input, pkgEnd-1, "dangling version separator")
	}
	dep.Package = input[pkgStart:pkgEnd]
	return dep, nil
}

// repoName validates input[i:end] as a repository name.
func repoName(input string, i, end int) (string, error) {
	if i >= end {
		return "", parseError(ErrMalformedSpecifier, input, i, "expected repository name")
	}
	if !isNameStart(input[i]) {
		return "", parseError(ErrMalformedSpecifier, input, i, "invalid repository name")
	}
	for k := i + 1; k < end; k++ {
		if !isRepoChar(input[k]) {
			return "", parseError(ErrMalformedSpecifier, input, k, "invalid character in repository name")
		}
	}
	return input[i:end], nil
}

// ParseRepoName validates a standalone repository name, as used for
// repository overrides supplied outside the specifier text.
func ParseRepoName(s string) (string, error) {
	return repoName(s, 0, len(s))
}

// parseSlot parses the text after the ':' separator.
func parseSlot(input string, i, end int) (*types.Slot, error) {
	if i >= end {
		return nil, parseError(ErrMalformedSpecifier, input, i, "expected slot name")
	}

	slot := &types.Slot{}
	opEnd := end
	if op, ok := types.ParseSlotOperator(string(input[end-1])); ok {
		slot.Op = op
		opEnd = end - 1
		if opEnd == i {
			return nil, parseError(ErrConstraintViolation, input, i, "slot operator requires a slot")
		}
	}

	if !isNameStart(input[i]) {
		return nil, parseError(ErrMalformedSpecifier, input, i, "invalid slot name")
	}
	j := i + 1
	for j < opEnd && isSlotChar(input[j]) {
		j++
	}
	slot.Name = input[i:j]

	if j < opEnd {
		if input[j] != '/' {
			return nil, parseError(ErrMalformedSpecifier, input, j, "invalid character in slot name")
		}
		subStart := j + 1
		if subStart >= opEnd {
			return nil, parseError(ErrMalformedSpecifier, input, subStart, "expected subslot name")
		}
		if !isNameStart(input[subStart]) {
			return nil, parseError(ErrMalformedSpecifier, input, subStart, "invalid subslot name")
		}
		k := subStart + 1
		for k < opEnd && isSlotChar(input[k]) {
			k++
		}
		if k != opEnd {
			return nil, parseError(ErrMalformedSpecifier, input, k, "invalid character in subslot name")
		}
		slot.SubSlot = input[subStart:opEnd]
	}
	return slot, nil
}

// parseUseList parses the comma-separated entries between brackets.
func parseUseList(input string, i, end int) ([]types.UseDep, error) {
	if i >= end {
		return nil, parseError(ErrInvalidUseDependency, input, i, "empty use dependency list")
	}

	var deps []types.UseDep
	seen := make(map[string]struct{})
	entryStart := i
	for pos := i; pos <= end; pos++ {
		if pos != end && input[pos] != ',' {
			continue
		}
		u, err := parseUseDep(input, entryStart, pos)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[u.Flag]; dup {
			return nil, parseError(ErrConstraintViolation, input, entryStart, "duplicate use flag")
		}
		seen[u.Flag] = struct{}{}
		deps = append(deps, u)
		entryStart = pos + 1
	}
	return deps, nil
}

// parseUseDep parses one entry: [!|-]flag[(+)|(-)][=|?].
func parseUseDep(input string, i, end int) (types.UseDep, error) {
	u := types.UseDep{Kind: types.UseDepEnabled}

	conditional := false
	if i < end && input[i] == '!' {
		conditional = true
		i++
	} else if i < end && input[i] == '-' {
		u.Kind = types.UseDepDisabled
		i++
	}

	if i >= end || !isUseFlagStart(input[i]) {
		return u, parseError(ErrInvalidUseDependency, input, i, "expected use flag")
	}
	j := i + 1
	for j < end && isUseFlagChar(input[j]) {
		j++
	}
	u.Flag = input[i:j]

	if j < end && input[j] == '(' {
		switch {
		case strings.HasPrefix(input[j:end], string(types.UseDepDefaultEnabled)):
			u.Default = types.UseDepDefaultEnabled
			j += 3
		case strings.HasPrefix(input[j:end], string(types.UseDepDefaultDisabled)):
			u.Default = types.UseDepDefaultDisabled
			j += 3
		default:
			return u, parseError(ErrInvalidUseDependency, input, j, "invalid use default marker")
		}
	}

	if j < end {
		switch input[j] {
		case '=':
			if u.Kind == types.UseDepDisabled {
				return u, parseError(ErrInvalidUseDependency, input, j, "'-' cannot combine with '='")
			}
			if conditional {
				u.Kind = types.UseDepNotEqual
			} else {
				u.Kind = types.UseDepEqual
			}
			j++
		case '?':
			if u.Kind == types.UseDepDisabled {
				return u, parseError(ErrInvalidUseDependency, input, j, "'-' cannot combine with '?'")
			}
			if conditional {
				u.Kind = types.UseDepDisabledConditional
			} else {
				u.Kind = types.UseDepEnabledConditional
			}
			j++
		default:
			return u, parseError(ErrInvalidUseDependency, input, j, "invalid character in use flag")
		}
	}

	if conditional && u.Kind != types.UseDepNotEqual && u.Kind != types.UseDepDisabledConditional {
		return u, parseError(ErrInvalidUseDependency, input, end, "'!' requires a trailing '=' or '?'")
	}
	if j != end {
		return u, parseError(ErrInvalidUseDependency, input, j, "unexpected text after use dependency")
	}
	return u, nil
}
