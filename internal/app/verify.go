package app

import (
	"context"
	"path/filepath"
	"strings"

	"devrando/internal/core"
	"devrando/internal/types"
)

func (s Service) Verify(ctx context.Context, req VerifyRequest) (VerifyResult, error) {
	projectDir := strings.TrimSpace(req.ProjectDir)
	if projectDir == "" {
		projectDir = "."
	}
	config, err := s.ProjectReader.ReadConfig(filepath.Join(projectDir, types.ConfigFileName))
	if err != nil {
		return VerifyResult{}, err
	}
	manifest, err := s.ProjectReader.ReadManifest(filepath.Join(projectDir, types.ManifestFileName))
	if err != nil {
		return VerifyResult{}, err
	}
	report, err := core.NewValidator(s.Installed).Validate(ctx, core.ValidateInput{
		ProjectDir: projectDir,
		Manifest:   manifest,
		Config:     config,
	})
	return VerifyResult{Report: report}, err
}
