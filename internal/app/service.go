// Package app exposes the parsing and comparison engine as a service
// façade. It owns the boundary contract: inputs are validated before
// reaching the core, and every returned value is a detached copy the
// caller owns outright.
package app

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pkgdep/internal/core"
	"pkgdep/internal/types"
)

type Service struct{}

func NewService() Service {
	return Service{}
}

// Parse parses a specifier. A non-empty repoOverride pins the record to
// that repository, taking precedence over any ::repo in the text.
func (Service) Parse(ctx context.Context, text string, repoOverride string) (*types.Dep, error) {
	if strings.TrimSpace(text) == "" {
		return nil, boundaryViolation("specifier must not be empty")
	}
	dep, err := core.Parse(text)
	if err != nil {
		return nil, err
	}
	assert.NotEmpty(ctx, dep.Category, "parsed record must carry a category")
	assert.NotEmpty(ctx, dep.Package, "parsed record must carry a package name")
	if repoOverride != "" {
		repo, err := core.ParseRepoName(repoOverride)
		if err != nil {
			return nil, err
		}
		dep.Repo = repo
	}
	log.Ctx(ctx).Debug().Str("dep", dep.String()).Msg("specifier parsed")
	return dep, nil
}

// Compare returns the three-way ordering of two records.
func (Service) Compare(a, b *types.Dep) (int, error) {
	if a == nil || b == nil {
		return 0, boundaryViolation("compare requires two records")
	}
	return core.Compare(a, b), nil
}

// Equal reports full structural equality of two records.
func (Service) Equal(a, b *types.Dep) (bool, error) {
	if a == nil || b == nil {
		return false, boundaryViolation("equality requires two records")
	}
	return core.Equal(a, b), nil
}

// UseFlags returns the ordered USE dependency texts, nil when the
// record has none. The slice is freshly allocated per call.
func (Service) UseFlags(dep *types.Dep) ([]string, error) {
	if dep == nil {
		return nil, boundaryViolation("record must not be nil")
	}
	if len(dep.UseDeps) == 0 {
		return nil, nil
	}
	flags := make([]string, len(dep.UseDeps))
	for i, u := range dep.UseDeps {
		flags[i] = u.String()
	}
	return flags, nil
}

// Fields returns the record's fields as a detached projection.
func (Service) Fields(dep *types.Dep) (types.DepFields, error) {
	if dep == nil {
		return types.DepFields{}, boundaryViolation("record must not be nil")
	}
	fields := types.DepFields{
		Dep:      dep.String(),
		Blocker:  string(dep.Blocker),
		Category: dep.Category,
		Package:  dep.Package,
		Repo:     dep.Repo,
	}
	if dep.Version != nil {
		fields.Version = dep.Version.Base()
		if rev, ok := dep.Version.RevisionText(); ok {
			fields.Revision = rev
		}
	}
	if dep.Slot != nil {
		fields.Slot = dep.Slot.Name
		fields.SubSlot = dep.Slot.SubSlot
		fields.SlotOp = string(dep.Slot.Op)
	}
	if len(dep.UseDeps) > 0 {
		fields.Use = make([]string, len(dep.UseDeps))
		for i, u := range dep.UseDeps {
			fields.Use[i] = u.String()
		}
	}
	return fields, nil
}

func boundaryViolation(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("boundary contract violation: " + msg)
}
