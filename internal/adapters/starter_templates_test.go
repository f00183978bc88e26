package adapters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"devrando/internal/core"
	"devrando/internal/types"
)

func TestStarterTemplateAdapterRender(t *testing.T) {
	config, err := core.NewConfigBuilder().Build(t.Context(), core.ConfigInput{
		ChallengeSlug:    "deps-101",
		SeedBundleSlug:   "local-abc",
		Approach:         "balanced",
		RequiredPackages: []string{"express", "zod"},
		MinDependencies:  2,
		Dependencies:     types.DependencyMap{"express": "latest", "zod": "latest"},
	})
	require.NoError(t, err)

	files, err := NewStarterTemplateAdapter().Render("demo-app", config)
	require.NoError(t, err)
	require.Len(t, files, 4)

	readme := files[types.ReadmeFileName]
	require.Contains(t, readme, "# demo-app")
	require.Contains(t, readme, "Required packages: express, zod")
	require.Contains(t, readme, "Minimum dependencies: 2")
	require.Contains(t, readme, config.Fingerprint)
	require.Contains(t, readme, "npm run dev")

	require.Contains(t, files[types.EntryFileName], `const name = "demo-app";`)
	require.True(t, strings.HasPrefix(files[types.IgnoreFileName], "node_modules/"))

	validator := files[types.ValidatorFileName]
	require.True(t, strings.HasPrefix(validator, "#!/usr/bin/env node"))
	require.Contains(t, validator, `createHash("sha256")`)
	require.Contains(t, validator, "devrando.config.json")
	require.Contains(t, validator, `"ls", "--json", "--all"`)
}
