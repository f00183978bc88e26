package core

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"devrando/internal/types"
)

// ClassifySpecifier reports whether a version specifier is the unpinned
// marker, a single exact version or a range. Nothing is resolved.
func ClassifySpecifier(specifier string) types.SpecifierKind {
	trimmed := strings.TrimSpace(specifier)
	switch trimmed {
	case types.LatestVersion, "*", "":
		return types.SpecifierLatest
	}
	if _, err := semver.StrictNewVersion(strings.TrimPrefix(trimmed, "=")); err == nil {
		return types.SpecifierExact
	}
	if _, err := semver.NewConstraint(trimmed); err == nil {
		return types.SpecifierRange
	}
	return types.SpecifierUnknown
}
