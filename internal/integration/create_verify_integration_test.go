package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"devrando/internal/adapters"
	"devrando/internal/app"
	"devrando/internal/core"
	"devrando/internal/types"
)

// TestHostedCreateThenVerify serves a bundle built by the local resolver over
// HTTP, writes it with the file adapter and verifies it with a stubbed npm.
func TestHostedCreateThenVerify(t *testing.T) {
	payload := synthesizedPayload(t)
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(server.Close)

	service := app.NewService()
	service.Installed = stubNpm(t, `{"name":"demo","dependencies":{"express":{"version":"4.19.2"},"zod":{"version":"3.23.8"}}}`)
	target := filepath.Join(t.TempDir(), "demo")

	created, err := service.Create(t.Context(), app.CreateRequest{
		TargetDir: target,
		Options: types.ResolveOptions{
			APIBase:     server.URL,
			PackageName: "demo",
		},
	})
	require.NoError(t, err)
	require.Equal(t, types.ResolveModeHostedCreate, created.Mode)
	require.Equal(t, "/api/v1/seed_bundles", gotPath)
	require.Equal(t, payload.Slug, created.Slug)

	verified, err := service.Verify(t.Context(), app.VerifyRequest{ProjectDir: target})
	require.NoError(t, err)
	require.True(t, verified.Report.Passed())
	require.Equal(t, 2, verified.Report.DependencyCount)
}

func TestVerifyReportsExtraneousInstall(t *testing.T) {
	payload := synthesizedPayload(t)
	target := filepath.Join(t.TempDir(), "demo")
	files := adapters.NewProjectFilesAdapter()
	require.NoError(t, files.EnsureTarget(target, false))
	_, err := files.WriteFiles(target, payload.Starter.Files)
	require.NoError(t, err)

	service := app.NewService()
	service.Installed = stubNpm(t, `{"dependencies":{"express":{"version":"4.19.2","dependencies":{"left-pad":{"version":"1.3.0","extraneous":true}}}}}`)

	result, err := service.Verify(t.Context(), app.VerifyRequest{ProjectDir: target})
	require.Error(t, err)
	require.True(t, core.IsValidationError(err))
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	require.Equal(t, []string{"left-pad"}, result.Report.Extraneous)
	require.Equal(t, result.Report.ExpectedFingerprint, result.Report.ActualFingerprint)
}

func synthesizedPayload(t *testing.T) types.BundlePayload {
	t.Helper()
	resolver := core.NewBundleResolver(nil, adapters.NewStarterTemplateAdapter())
	payload, err := resolver.Synthesize(t.Context(), types.ResolveOptions{
		Seed:             "5eed5eed",
		PackageName:      "demo",
		RequiredPackages: []string{"zod", "express"},
	})
	require.NoError(t, err)
	return payload
}

func stubNpm(t *testing.T, tree string) adapters.NpmTreeAdapter {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stub requires a POSIX shell")
	}
	dir := t.TempDir()
	treePath := filepath.Join(dir, "tree.json")
	require.NoError(t, os.WriteFile(treePath, []byte(tree), 0644))
	script := filepath.Join(dir, "npm")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\ncat '"+treePath+"'\nexit 1\n"), 0755))
	return adapters.NpmTreeAdapter{Binary: script}
}
