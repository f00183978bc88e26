package adapters

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"devrando/internal/core"
	"devrando/internal/types"
)

const bundleResponse = `{"slug":"seed-42","starter":{"files":{"package.json":"{}","src/index.js":"console.log(1)"}}}`

func TestBundleHTTPAdapterFetch(t *testing.T) {
	var gotQuery map[string]string
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = map[string]string{
			"include_starter": r.URL.Query().Get("include_starter"),
			"package_name":    r.URL.Query().Get("package_name"),
			"token":           r.URL.Query().Get("token"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, bundleResponse)
	}))
	defer server.Close()

	adapter := NewBundleHTTPAdapter(5)
	payload, err := adapter.FetchBundle(t.Context(), server.URL+"/bundles/42?token=abc", "my-app")
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, gotMethod)
	want := map[string]string{"include_starter": "true", "package_name": "my-app", "token": "abc"}
	if diff := cmp.Diff(want, gotQuery); diff != "" {
		t.Fatalf("unexpected query (-want +got):\n%s", diff)
	}
	require.Equal(t, "seed-42", payload.Slug)
	require.Equal(t, 2, payload.FileCount())
}

func TestBundleHTTPAdapterCreate(t *testing.T) {
	var gotPath, gotMethod, gotContentType string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, bundleResponse)
	}))
	defer server.Close()

	adapter := NewBundleHTTPAdapter(0)
	payload, err := adapter.CreateBundle(t.Context(), server.URL+"/", types.CreateBundleRequest{
		Approach:           "chaos",
		DependencyCount:    4,
		DevDependencyCount: 1,
		PackageName:        "my-app",
	})
	require.NoError(t, err)
	require.Equal(t, "/api/v1/seed_bundles", gotPath)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, "seed-42", payload.Slug)
	want := map[string]any{
		"approach":             "chaos",
		"dependency_count":     float64(4),
		"dev_dependency_count": float64(1),
		"package_name":         "my-app",
	}
	if diff := cmp.Diff(want, gotBody); diff != "" {
		t.Fatalf("unexpected request body (-want +got):\n%s", diff)
	}
}

func TestBundleHTTPAdapterErrorStatus(t *testing.T) {
	longBody := strings.Repeat("x", 2000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, longBody)
	}))
	defer server.Close()

	adapter := NewBundleHTTPAdapter(5)
	_, err := adapter.FetchBundle(t.Context(), server.URL, "app")
	require.Error(t, err)
	require.True(t, core.IsHostedBundleError(err))
	require.Contains(t, err.Error(), "503")
	require.NotContains(t, err.Error(), longBody)

	_, err = adapter.CreateBundle(t.Context(), server.URL, types.CreateBundleRequest{PackageName: "app"})
	require.Error(t, err)
	require.True(t, core.IsHostedBundleError(err))
}

func TestBundleHTTPAdapterInvalidInput(t *testing.T) {
	adapter := NewBundleHTTPAdapter(5)
	_, err := adapter.FetchBundle(t.Context(), "not a url", "app")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	_, err = adapter.CreateBundle(t.Context(), "  ", types.CreateBundleRequest{})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestBundleHTTPAdapterMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "<html>")
	}))
	defer server.Close()

	_, err := NewBundleHTTPAdapter(5).FetchBundle(t.Context(), server.URL, "app")
	require.Error(t, err)
	require.True(t, core.IsPayloadShapeError(err))
}
