package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"devrando/tests/testutil"
)

func TestCreateInspectCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	target := filepath.Join(t.TempDir(), "demo-app")

	cmd := exec.Command("go", "run", "./cmd/devrando", "create", target,
		"--seed", "0badf00d",
		"--required", "zod,express",
		"--challenge", "dependency-selection",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	require.Contains(t, string(out), "local-0badf00d")
	require.Contains(t, string(out), "npm install")

	files := testutil.ProjectFiles(t, target)
	for _, name := range []string{
		".gitignore", "README.md", "devrando.config.json",
		"package.json", "scripts/verify-deps.mjs", "src/index.js",
	} {
		require.Contains(t, files, name)
	}
	require.Contains(t, files["package.json"], `"name": "demo-app"`)

	cmd = exec.Command("go", "run", "./cmd/devrando", "inspect", target, "--format", "yaml")
	cmd.Dir = root
	out, err = cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	require.Contains(t, string(out), "config_consistent: true")
	require.Contains(t, string(out), "bundle: local-0badf00d")
}

func TestCreateRefusesNonEmptyTargetE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep.txt"), []byte("x"), 0644))

	cmd := exec.Command("go", "run", "./cmd/devrando", "create", target, "--seed", "0badf00d")
	cmd.Dir = root
	out, err := cmd.CombinedOutput()
	require.Error(t, err)
	require.True(t, strings.Contains(string(out), "is not empty"), string(out))

	data, readErr := os.ReadFile(filepath.Join(target, "keep.txt"))
	require.NoError(t, readErr)
	require.Equal(t, "x", string(data))
	_, statErr := os.Stat(filepath.Join(target, "package.json"))
	require.True(t, os.IsNotExist(statErr))
}

func TestUnknownFlagExitsWithUsageCodeE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	cmd := exec.Command("go", "run", "./cmd/devrando", "create", "--no-such-flag")
	cmd.Dir = root
	out, err := cmd.CombinedOutput()
	require.Error(t, err, string(out))
}
