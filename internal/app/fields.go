package app

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgdep/internal/types"
)

// FieldKeys lists the keys accepted by Field, in display order.
var FieldKeys = []string{
	"BLOCKER", "CATEGORY", "P", "PF", "PN", "PR", "PV", "PVR",
	"CPN", "CPV", "SLOT", "SUBSLOT", "SLOT_OP", "USE", "REPO", "DEP",
}

// Field returns one named projection of a record. Absent fields expand
// to the empty string.
func (s Service) Field(dep *types.Dep, key string) (string, error) {
	if dep == nil {
		return "", boundaryViolation("record must not be nil")
	}
	switch key {
	case "BLOCKER":
		return string(dep.Blocker), nil
	case "CATEGORY":
		return dep.Category, nil
	case "P":
		return dep.P(), nil
	case "PF":
		return dep.PF(), nil
	case "PN":
		return dep.Package, nil
	case "PR":
		return dep.PR(), nil
	case "PV":
		if dep.Version == nil {
			return "", nil
		}
		return dep.Version.Base(), nil
	case "PVR":
		return dep.PVR(), nil
	case "CPN":
		return dep.CPN(), nil
	case "CPV":
		return dep.CPV(), nil
	case "SLOT":
		if dep.Slot == nil {
			return "", nil
		}
		return dep.Slot.Name, nil
	case "SUBSLOT":
		if dep.Slot == nil {
			return "", nil
		}
		return dep.Slot.SubSlot, nil
	case "SLOT_OP":
		if dep.Slot == nil {
			return "", nil
		}
		return string(dep.Slot.Op), nil
	case "USE":
		flags, err := s.UseFlags(dep)
		if err != nil {
			return "", err
		}
		return strings.Join(flags, ","), nil
	case "REPO":
		return dep.Repo, nil
	case "DEP":
		return dep.String(), nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown field key: %s", key))
	}
}
