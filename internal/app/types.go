package app

import "devrando/internal/types"

type CreateRequest struct {
	TargetDir      string
	Force          bool
	HTTPTimeoutSec int
	Options        types.ResolveOptions
}

type CreateResult struct {
	TargetDir string
	Slug      string
	Mode      types.ResolveMode
	Files     []string
}

type VerifyRequest struct {
	ProjectDir string
}

type VerifyResult struct {
	Report types.ValidationReport
}

type InspectRequest struct {
	ProjectDir string
}

type InspectDependency struct {
	Name    string              `yaml:"name"`
	Version string              `yaml:"version"`
	Scope   string              `yaml:"scope"`
	Kind    types.SpecifierKind `yaml:"kind"`
}

type InspectResult struct {
	ChallengeSlug    string              `yaml:"challenge"`
	SeedBundleSlug   string              `yaml:"bundle"`
	Approach         string              `yaml:"approach"`
	AlgorithmVersion string              `yaml:"algorithm_version"`
	Fingerprint      string              `yaml:"fingerprint"`
	ConfigConsistent bool                `yaml:"config_consistent"`
	RequiredPackages []string            `yaml:"required_packages"`
	MinDependencies  int                 `yaml:"min_dependencies"`
	Dependencies     []InspectDependency `yaml:"dependencies"`
}
