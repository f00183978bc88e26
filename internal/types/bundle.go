package types

const (
	ConfigFileName    = "devrando.config.json"
	ManifestFileName  = "package.json"
	ValidatorFileName = "scripts/verify-deps.mjs"
	EntryFileName     = "src/index.js"
	IgnoreFileName    = ".gitignore"
	ReadmeFileName    = "README.md"
)

type AllowedDependencies struct {
	Dependencies    SortedDependencies `json:"dependencies"`
	DevDependencies SortedDependencies `json:"devDependencies"`
}

type BundleConstraints struct {
	RequiredPackages []string `json:"requiredPackages"`
	MinDependencies  int      `json:"minDependencies"`
}

// BundleConfig is the committed contract persisted as devrando.config.json.
// Allowed and Fingerprint are derived together and never edited apart.
type BundleConfig struct {
	ChallengeSlug    string              `json:"challengeSlug"`
	SeedBundleSlug   string              `json:"seedBundleSlug"`
	Seed             string              `json:"seed"`
	Approach         string              `json:"approach"`
	AlgorithmVersion string              `json:"algorithmVersion"`
	Ecosystem        string              `json:"ecosystem"`
	Fingerprint      string              `json:"fingerprint"`
	Allowed          AllowedDependencies `json:"allowed"`
	Constraints      BundleConstraints   `json:"constraints"`
}

type StarterFiles struct {
	Files map[string]string `json:"files"`
}

// BundlePayload is the normalized result of bundle acquisition. Starter is a
// pointer so a response without the key can be told apart from an empty one.
type BundlePayload struct {
	Slug    string        `json:"slug"`
	Starter *StarterFiles `json:"starter"`
}

// FileCount returns the number of starter files, zero when absent.
func (p BundlePayload) FileCount() int {
	if p.Starter == nil {
		return 0
	}
	return len(p.Starter.Files)
}

type ResolveMode string

const (
	ResolveModeHostedGet    ResolveMode = "hosted-get"
	ResolveModeHostedCreate ResolveMode = "hosted-create"
	ResolveModeLocal        ResolveMode = "local"
)

// CreateBundleRequest is the JSON body of the hosted creation call.
type CreateBundleRequest struct {
	Seed               string `json:"seed,omitempty"`
	Approach           string `json:"approach"`
	DependencyCount    int    `json:"dependency_count"`
	DevDependencyCount int    `json:"dev_dependency_count"`
	ChallengeSlug      string `json:"challenge_slug,omitempty"`
	PackageName        string `json:"package_name"`
}
