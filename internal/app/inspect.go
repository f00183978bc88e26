package app

import (
	"path/filepath"
	"strings"

	"devrando/internal/core"
	"devrando/internal/types"
)

// Inspect summarizes a project's committed config. It reports whether the
// stored fingerprint still matches the stored allowed maps.
func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	projectDir := strings.TrimSpace(req.ProjectDir)
	if projectDir == "" {
		projectDir = "."
	}
	config, err := s.ProjectReader.ReadConfig(filepath.Join(projectDir, types.ConfigFileName))
	if err != nil {
		return InspectResult{}, err
	}
	recomputed, err := core.Fingerprint(config.Allowed.Dependencies.Map(), config.Allowed.DevDependencies.Map())
	if err != nil {
		return InspectResult{}, err
	}
	result := InspectResult{
		ChallengeSlug:    config.ChallengeSlug,
		SeedBundleSlug:   config.SeedBundleSlug,
		Approach:         config.Approach,
		AlgorithmVersion: config.AlgorithmVersion,
		Fingerprint:      config.Fingerprint,
		ConfigConsistent: recomputed == config.Fingerprint,
		RequiredPackages: config.Constraints.RequiredPackages,
		MinDependencies:  config.Constraints.MinDependencies,
	}
	result.Dependencies = append(result.Dependencies, summarizeDependencies("runtime", config.Allowed.Dependencies)...)
	result.Dependencies = append(result.Dependencies, summarizeDependencies("dev", config.Allowed.DevDependencies)...)
	return result, nil
}

func summarizeDependencies(scope string, deps types.SortedDependencies) []InspectDependency {
	out := make([]InspectDependency, 0, len(deps))
	for _, entry := range core.SortDependencies(deps.Map()) {
		out = append(out, InspectDependency{
			Name:    entry.Name,
			Version: entry.Version,
			Scope:   scope,
			Kind:    core.ClassifySpecifier(entry.Version),
		})
	}
	return out
}
