package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"devrando/internal/core"
	"devrando/internal/ports"
	"devrando/internal/types"
)

const seedBundlesPath = "/api/v1/seed_bundles"

// BundleHTTPAdapter reaches a hosted bundle service over HTTP. A zero
// Timeout leaves the transport default in place.
type BundleHTTPAdapter struct {
	Client  *http.Client
	Timeout time.Duration
}

func NewBundleHTTPAdapter(timeoutSec int) BundleHTTPAdapter {
	timeout := time.Duration(timeoutSec) * time.Second
	if timeout < 0 {
		timeout = 0
	}
	return BundleHTTPAdapter{Timeout: timeout}
}

func (a BundleHTTPAdapter) FetchBundle(ctx context.Context, bundleURL string, packageName string) (types.BundlePayload, error) {
	target, err := bundleQueryURL(bundleURL, packageName)
	if err != nil {
		return types.BundlePayload{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return types.BundlePayload{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create bundle request").
			WithCause(err)
	}
	req.Header.Set("Accept", "application/json")
	return a.do(req)
}

func (a BundleHTTPAdapter) CreateBundle(ctx context.Context, apiBase string, request types.CreateBundleRequest) (types.BundlePayload, error) {
	base := strings.TrimRight(strings.TrimSpace(apiBase), "/")
	if base == "" {
		return types.BundlePayload{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("api base is empty")
	}
	body, err := json.Marshal(request)
	if err != nil {
		return types.BundlePayload{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode seed bundle request").
			WithCause(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+seedBundlesPath, bytes.NewReader(body))
	if err != nil {
		return types.BundlePayload{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create seed bundle request").
			WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return a.do(req)
}

func (a BundleHTTPAdapter) do(req *http.Request) (types.BundlePayload, error) {
	resp, err := a.client().Do(req)
	if err != nil {
		return types.BundlePayload{}, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("hosted bundle request failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.BundlePayload{}, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to read hosted bundle response").
			WithCause(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return types.BundlePayload{}, core.HostedBundleError(resp.StatusCode, req.URL.String(), string(body))
	}
	var payload types.BundlePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return types.BundlePayload{}, errbuilder.New().
			WithCode(errbuilder.CodeDataLoss).
			WithMsg("hosted bundle response is not valid json").
			WithCause(err)
	}
	return payload, nil
}

func (a BundleHTTPAdapter) client() *http.Client {
	if a.Client != nil {
		return a.Client
	}
	return &http.Client{Timeout: a.Timeout}
}

// bundleQueryURL appends include_starter and package_name to any query the
// bundle URL already carries.
func bundleQueryURL(bundleURL string, packageName string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(bundleURL))
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bundle url is invalid").
			WithCause(err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bundle url is not an absolute url")
	}
	query := parsed.Query()
	query.Set("include_starter", "true")
	query.Set("package_name", packageName)
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

var _ ports.BundleSourcePort = BundleHTTPAdapter{}
