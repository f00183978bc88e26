package ports

import (
	"context"

	"devrando/internal/types"
)

// BundleSourcePort talks to a hosted bundle service. Implementations return
// the decoded body as-is; shape validation is the resolver's job.
type BundleSourcePort interface {
	// FetchBundle retrieves an existing bundle with its starter files.
	FetchBundle(ctx context.Context, bundleURL string, packageName string) (types.BundlePayload, error)

	// CreateBundle asks the service to create a seed bundle under apiBase.
	CreateBundle(ctx context.Context, apiBase string, request types.CreateBundleRequest) (types.BundlePayload, error)
}

// StarterTemplatePort renders the static starter files for local synthesis.
type StarterTemplatePort interface {
	Render(packageName string, config types.BundleConfig) (map[string]string, error)
}
