package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"devrando/internal/core"
	"devrando/internal/ports"
	"devrando/internal/types"
)

// ProjectFilesAdapter reads and writes scaffolded project files.
type ProjectFilesAdapter struct{}

func NewProjectFilesAdapter() ProjectFilesAdapter {
	return ProjectFilesAdapter{}
}

func (a ProjectFilesAdapter) ReadManifest(path string) (types.PackageManifest, error) {
	var manifest types.PackageManifest
	if err := readJSONFile(path, types.ManifestFileName, &manifest); err != nil {
		return types.PackageManifest{}, err
	}
	return manifest, nil
}

func (a ProjectFilesAdapter) ReadConfig(path string) (types.BundleConfig, error) {
	var config types.BundleConfig
	if err := readJSONFile(path, types.ConfigFileName, &config); err != nil {
		return types.BundleConfig{}, err
	}
	if strings.TrimSpace(config.Fingerprint) == "" {
		return types.BundleConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s has no fingerprint", types.ConfigFileName))
	}
	return config, nil
}

func readJSONFile(path string, label string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("%s not found", label)).
			WithCause(err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse %s", label)).
			WithCause(err)
	}
	return nil
}

func (a ProjectFilesAdapter) EnsureTarget(dir string, force bool) error {
	if strings.TrimSpace(dir) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("target directory is empty")
	}
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to inspect target directory").
			WithCause(err)
	}
	if !info.IsDir() {
		return errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("target %s exists and is not a directory", dir))
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read target directory").
			WithCause(err)
	}
	if len(entries) > 0 && !force {
		return core.DirectoryConflictError(dir)
	}
	return nil
}

// WriteFiles writes each file under dir in path order. Writes are not
// transactional; a failure leaves earlier files in place.
func (a ProjectFilesAdapter) WriteFiles(dir string, files map[string]string) ([]string, error) {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	written := make([]string, 0, len(paths))
	for _, rel := range paths {
		target, err := safeJoin(dir, rel)
		if err != nil {
			return written, err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return written, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create project directory").
				WithCause(err)
		}
		if err := os.WriteFile(target, []byte(files[rel]), 0644); err != nil {
			return written, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("failed to write %s", rel)).
				WithCause(err)
		}
		written = append(written, rel)
	}
	return written, nil
}

// safeJoin rejects bundle paths that are absolute or escape dir.
func safeJoin(dir string, rel string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if rel == "" || filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("bundle file path %q escapes the project directory", rel))
	}
	return filepath.Join(dir, cleaned), nil
}

var _ ports.ProjectReaderPort = ProjectFilesAdapter{}
var _ ports.ProjectWriterPort = ProjectFilesAdapter{}
