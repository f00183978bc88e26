package types

// PackageManifest is the subset of package.json the scaffold writes and the
// validator reads.
type PackageManifest struct {
	Name            string             `json:"name"`
	Version         string             `json:"version"`
	Private         bool               `json:"private"`
	Type            string             `json:"type"`
	Scripts         map[string]string  `json:"scripts,omitempty"`
	Dependencies    SortedDependencies `json:"dependencies"`
	DevDependencies SortedDependencies `json:"devDependencies"`
}

// InstalledPackage is one node of the installed dependency tree.
type InstalledPackage struct {
	Name       string
	Version    string
	Extraneous bool
	Missing    bool
}

// ValidationReport holds the outcome of every validator check.
type ValidationReport struct {
	ExpectedFingerprint string
	ActualFingerprint   string
	Unexpected          []string
	Missing             []string
	DependencyCount     int
	MinDependencies     int
	Extraneous          []string
	Failures            []string
}

func (r ValidationReport) Passed() bool {
	return len(r.Failures) == 0
}

type SpecifierKind string

const (
	SpecifierLatest  SpecifierKind = "latest"
	SpecifierExact   SpecifierKind = "exact"
	SpecifierRange   SpecifierKind = "range"
	SpecifierUnknown SpecifierKind = "other"
)
