package types

const (
	DefaultApproach           = "balanced"
	DefaultDependencyCount    = 3
	DefaultDevDependencyCount = 1
	DefaultPackageName        = "rando-app"
	DefaultTargetDir          = "rando-app"
	DefaultRequiredPackage    = "express"
	DefaultChallengeSlug      = "dependency-selection"
	LatestVersion             = "latest"
	LocalAlgorithmVersion     = "v1"
	EcosystemNPM              = "npm"
)

// ResolveOptions is built once per invocation and passed by value.
type ResolveOptions struct {
	BundleURL          string
	APIBase            string
	Seed               string
	Approach           string
	DependencyCount    int
	DevDependencyCount int
	ChallengeSlug      string
	PackageName        string
	RequiredPackages   []string
	MinDependencies    int
}
