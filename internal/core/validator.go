package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"devrando/internal/ports"
	"devrando/internal/types"
)

type ValidateInput struct {
	ProjectDir string
	Manifest   types.PackageManifest
	Config     types.BundleConfig
}

// Validator checks a materialized project against its committed config.
type Validator struct {
	Installed ports.InstalledPackagesPort
}

func NewValidator(installed ports.InstalledPackagesPort) Validator {
	return Validator{Installed: installed}
}

// Validate runs every check and returns the full report. The error is a
// ValidationError listing each failed assertion when any check fails.
func (v Validator) Validate(ctx context.Context, input ValidateInput) (types.ValidationReport, error) {
	logger := log.Ctx(ctx)
	manifest := input.Manifest
	config := input.Config
	report := types.ValidationReport{
		ExpectedFingerprint: config.Fingerprint,
		MinDependencies:     config.Constraints.MinDependencies,
	}

	actual, err := Fingerprint(manifest.Dependencies.Map(), manifest.DevDependencies.Map())
	if err != nil {
		return report, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to fingerprint manifest").
			WithCause(err)
	}
	report.ActualFingerprint = actual
	if actual != config.Fingerprint {
		report.Failures = append(report.Failures,
			fmt.Sprintf("integrity check failed: expected fingerprint %s, got %s", config.Fingerprint, actual))
	}

	declared := declaredNames(manifest.Dependencies, manifest.DevDependencies)
	allowed := declaredNames(config.Allowed.Dependencies, config.Allowed.DevDependencies)
	report.Unexpected = difference(declared, allowed)
	report.Missing = difference(allowed, declared)
	if len(report.Unexpected) > 0 {
		report.Failures = append(report.Failures,
			fmt.Sprintf("unexpected dependencies: %s", strings.Join(report.Unexpected, ", ")))
	}
	if len(report.Missing) > 0 {
		report.Failures = append(report.Failures,
			fmt.Sprintf("missing dependencies: %s", strings.Join(report.Missing, ", ")))
	}

	report.DependencyCount = len(declared)
	if report.DependencyCount < report.MinDependencies {
		report.Failures = append(report.Failures,
			fmt.Sprintf("dependency count %d is below the required minimum %d", report.DependencyCount, report.MinDependencies))
	}

	if v.Installed == nil {
		return report, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("installed package source is not configured")
	}
	installed, err := v.Installed.ListInstalledPackages(ctx, input.ProjectDir)
	if err != nil {
		logger.Debug().Err(err).Msg("installed package listing failed")
		report.Failures = append(report.Failures,
			fmt.Sprintf("could not read the installed package tree: %s", errorText(err)))
	}
	report.Extraneous = extraneousNames(installed)
	if len(report.Extraneous) > 0 {
		report.Failures = append(report.Failures,
			fmt.Sprintf("extraneous packages installed: %s", strings.Join(report.Extraneous, ", ")))
	}

	logger.Debug().
		Int("declared", report.DependencyCount).
		Int("installed", len(installed)).
		Int("failures", len(report.Failures)).
		Msg("validation finished")
	if !report.Passed() {
		return report, ValidationError(report.Failures)
	}
	return report, nil
}

func declaredNames(runtime types.SortedDependencies, dev types.SortedDependencies) map[string]struct{} {
	names := map[string]struct{}{}
	for _, entry := range runtime {
		names[entry.Name] = struct{}{}
	}
	for _, entry := range dev {
		names[entry.Name] = struct{}{}
	}
	return names
}

// difference returns the names in a that are not in b, canonically sorted.
func difference(a map[string]struct{}, b map[string]struct{}) []string {
	var out []string
	for name := range a {
		if _, ok := b[name]; !ok {
			out = append(out, name)
		}
	}
	SortNames(out)
	return out
}

func extraneousNames(installed []types.InstalledPackage) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, pkg := range installed {
		if !pkg.Extraneous {
			continue
		}
		if _, ok := seen[pkg.Name]; ok {
			continue
		}
		seen[pkg.Name] = struct{}{}
		out = append(out, pkg.Name)
	}
	SortNames(out)
	return out
}

// errorText prefers the short errbuilder message over the full chain.
func errorText(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
