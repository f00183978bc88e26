package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"devrando/internal/types"
)

// ConfigInput collects everything the committed config is derived from.
type ConfigInput struct {
	ChallengeSlug    string
	SeedBundleSlug   string
	Seed             string
	Approach         string
	AlgorithmVersion string
	RequiredPackages []string
	MinDependencies  int
	Dependencies     types.DependencyMap
	DevDependencies  types.DependencyMap
}

type ConfigBuilder struct{}

func NewConfigBuilder() ConfigBuilder {
	return ConfigBuilder{}
}

// Build normalizes both maps, fingerprints the normalized pair and stores
// exactly that pair as the allowed set.
func (b ConfigBuilder) Build(ctx context.Context, input ConfigInput) (types.BundleConfig, error) {
	runtime := SortDependencies(input.Dependencies)
	dev := SortDependencies(input.DevDependencies)
	fingerprint, err := FingerprintSorted(runtime, dev)
	if err != nil {
		return types.BundleConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to fingerprint dependencies").
			WithCause(err)
	}
	assert.NotEmpty(ctx, fingerprint, "fingerprint must be set")

	required := DefaultRequiredPackages(input.RequiredPackages)
	// The allowed set is exact, so a larger minimum could never be met.
	if allowed := len(runtime) + len(dev); input.MinDependencies > allowed {
		return types.BundleConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("minimum dependency count %d exceeds the %d allowed dependencies", input.MinDependencies, allowed))
	}
	minDeps := input.MinDependencies
	if minDeps < 1 {
		minDeps = len(required)
	}
	algorithm := strings.TrimSpace(input.AlgorithmVersion)
	if algorithm == "" {
		algorithm = types.LocalAlgorithmVersion
	}
	config := types.BundleConfig{
		ChallengeSlug:    input.ChallengeSlug,
		SeedBundleSlug:   input.SeedBundleSlug,
		Seed:             input.Seed,
		Approach:         input.Approach,
		AlgorithmVersion: algorithm,
		Ecosystem:        types.EcosystemNPM,
		Fingerprint:      fingerprint,
		Allowed: types.AllowedDependencies{
			Dependencies:    runtime,
			DevDependencies: dev,
		},
		Constraints: types.BundleConstraints{
			RequiredPackages: required,
			MinDependencies:  minDeps,
		},
	}
	log.Ctx(ctx).Debug().
		Str("fingerprint", fingerprint).
		Int("deps", len(runtime)).
		Int("dev_deps", len(dev)).
		Msg("bundle config built")
	return config, nil
}

// DefaultRequiredPackages trims the list and falls back to the built-in
// package when nothing usable remains.
func DefaultRequiredPackages(packages []string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, name := range packages {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return []string{types.DefaultRequiredPackage}
	}
	return out
}
