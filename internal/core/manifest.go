package core

import (
	"bytes"
	"encoding/json"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"devrando/internal/types"
)

const (
	manifestVersion = "0.1.0"
	verifyCommand   = "node scripts/verify-deps.mjs"
)

// NewManifest returns the package.json written for a locally synthesized
// bundle. Its dependency maps are the config's allowed maps.
func NewManifest(packageName string, config types.BundleConfig) types.PackageManifest {
	return types.PackageManifest{
		Name:    packageName,
		Version: manifestVersion,
		Private: true,
		Type:    "module",
		Scripts: map[string]string{
			"dev":         "node src/index.js",
			"verify":      verifyCommand,
			"postinstall": verifyCommand,
		},
		Dependencies:    config.Allowed.Dependencies,
		DevDependencies: config.Allowed.DevDependencies,
	}
}

// EncodeDocument renders a JSON file body: two-space indent, no HTML
// escaping, trailing newline.
func EncodeDocument(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode json document").
			WithCause(err)
	}
	return buf.Bytes(), nil
}
