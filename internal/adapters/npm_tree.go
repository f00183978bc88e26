package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"devrando/internal/ports"
	"devrando/internal/shared"
	"devrando/internal/types"
)

// NpmTreeAdapter lists the installed tree with `npm ls --json --all`.
type NpmTreeAdapter struct {
	Binary string
}

func NewNpmTreeAdapter() NpmTreeAdapter {
	return NpmTreeAdapter{Binary: "npm"}
}

type npmTreeNode struct {
	Version      string                 `json:"version"`
	Extraneous   bool                   `json:"extraneous"`
	Missing      bool                   `json:"missing"`
	Dependencies map[string]npmTreeNode `json:"dependencies"`
}

func (a NpmTreeAdapter) ListInstalledPackages(ctx context.Context, projectDir string) ([]types.InstalledPackage, error) {
	binary := strings.TrimSpace(a.Binary)
	if binary == "" {
		binary = "npm"
	}
	cmd := exec.CommandContext(ctx, binary, "ls", "--json", "--all")
	cmd.Dir = projectDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()
	if runErr != nil {
		// npm ls exits non-zero on missing or extraneous packages but still
		// prints the tree.
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) || len(bytes.TrimSpace(stdout.Bytes())) == 0 {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("npm ls failed").
				WithCause(shared.CommandError(stderr.Bytes(), runErr))
		}
	}
	return ParseNpmTree(stdout.Bytes())
}

// ParseNpmTree flattens npm's JSON tree into a name-sorted package list.
func ParseNpmTree(data []byte) ([]types.InstalledPackage, error) {
	var root npmTreeNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse npm ls output").
			WithCause(err)
	}
	var out []types.InstalledPackage
	collectNpmNodes(root.Dependencies, &out)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Version < out[j].Version
	})
	return out, nil
}

func collectNpmNodes(nodes map[string]npmTreeNode, out *[]types.InstalledPackage) {
	for name, node := range nodes {
		*out = append(*out, types.InstalledPackage{
			Name:       name,
			Version:    node.Version,
			Extraneous: node.Extraneous,
			Missing:    node.Missing,
		})
		collectNpmNodes(node.Dependencies, out)
	}
}

var _ ports.InstalledPackagesPort = NpmTreeAdapter{}
