package core

import (
	"context"

	"devrando/internal/types"
)

type fakeBundleSource struct {
	payload       types.BundlePayload
	err           error
	fetchURLs     []string
	fetchPackages []string
	createBases   []string
	createBodies  []types.CreateBundleRequest
}

func (f *fakeBundleSource) FetchBundle(_ context.Context, bundleURL string, packageName string) (types.BundlePayload, error) {
	f.fetchURLs = append(f.fetchURLs, bundleURL)
	f.fetchPackages = append(f.fetchPackages, packageName)
	return f.payload, f.err
}

func (f *fakeBundleSource) CreateBundle(_ context.Context, apiBase string, request types.CreateBundleRequest) (types.BundlePayload, error) {
	f.createBases = append(f.createBases, apiBase)
	f.createBodies = append(f.createBodies, request)
	return f.payload, f.err
}

type fakeTemplates struct {
	calls int
}

func (f *fakeTemplates) Render(packageName string, _ types.BundleConfig) (map[string]string, error) {
	f.calls++
	return map[string]string{
		types.ValidatorFileName: "// validator",
		types.EntryFileName:     "console.log('" + packageName + "')\n",
		types.IgnoreFileName:    "node_modules/\n",
		types.ReadmeFileName:    "# " + packageName + "\n",
	}, nil
}

type fakeInstalled struct {
	packages []types.InstalledPackage
	err      error
	dirs     []string
}

func (f *fakeInstalled) ListInstalledPackages(_ context.Context, projectDir string) ([]types.InstalledPackage, error) {
	f.dirs = append(f.dirs, projectDir)
	return f.packages, f.err
}

func hostedPayload() types.BundlePayload {
	return types.BundlePayload{
		Slug: "hosted-1",
		Starter: &types.StarterFiles{Files: map[string]string{
			"package.json": "{}",
		}},
	}
}
