package core

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"devrando/internal/ports"
	"devrando/internal/types"
)

// BundleResolver selects one acquisition mode per invocation: bundle URL,
// then API base, then local synthesis. A hosted failure is returned as-is.
type BundleResolver struct {
	Source    ports.BundleSourcePort
	Templates ports.StarterTemplatePort
	Configs   ConfigBuilder
	NewSeed   func() (string, error)
}

func NewBundleResolver(source ports.BundleSourcePort, templates ports.StarterTemplatePort) BundleResolver {
	return BundleResolver{
		Source:    source,
		Templates: templates,
		Configs:   NewConfigBuilder(),
		NewSeed:   RandomSeed,
	}
}

// SelectMode reports which acquisition mode the options select.
func SelectMode(opts types.ResolveOptions) types.ResolveMode {
	if strings.TrimSpace(opts.BundleURL) != "" {
		return types.ResolveModeHostedGet
	}
	if strings.TrimSpace(opts.APIBase) != "" {
		return types.ResolveModeHostedCreate
	}
	return types.ResolveModeLocal
}

func (r BundleResolver) Resolve(ctx context.Context, opts types.ResolveOptions) (types.BundlePayload, types.ResolveMode, error) {
	mode := SelectMode(opts)
	logger := log.Ctx(ctx)
	logger.Debug().Str("mode", string(mode)).Msg("bundle mode selected")

	var (
		payload types.BundlePayload
		err     error
	)
	switch mode {
	case types.ResolveModeHostedGet:
		if strings.TrimSpace(opts.APIBase) != "" {
			logger.Warn().Str("api_base", opts.APIBase).Msg("api base ignored because a bundle url was given")
		}
		payload, err = r.fetchHosted(ctx, opts)
	case types.ResolveModeHostedCreate:
		payload, err = r.createHosted(ctx, opts)
	default:
		payload, err = r.Synthesize(ctx, opts)
	}
	if err != nil {
		return types.BundlePayload{}, mode, err
	}
	if err := CheckPayload(payload, string(mode)); err != nil {
		return types.BundlePayload{}, mode, err
	}
	logger.Debug().Str("slug", payload.Slug).Int("files", payload.FileCount()).Msg("bundle resolved")
	return payload, mode, nil
}

func (r BundleResolver) fetchHosted(ctx context.Context, opts types.ResolveOptions) (types.BundlePayload, error) {
	if r.Source == nil {
		return types.BundlePayload{}, missingSourceError()
	}
	return r.Source.FetchBundle(ctx, strings.TrimSpace(opts.BundleURL), packageNameOrDefault(opts.PackageName))
}

func (r BundleResolver) createHosted(ctx context.Context, opts types.ResolveOptions) (types.BundlePayload, error) {
	if r.Source == nil {
		return types.BundlePayload{}, missingSourceError()
	}
	request := types.CreateBundleRequest{
		Seed:               strings.TrimSpace(opts.Seed),
		Approach:           approachOrDefault(opts.Approach),
		DependencyCount:    opts.DependencyCount,
		DevDependencyCount: opts.DevDependencyCount,
		ChallengeSlug:      strings.TrimSpace(opts.ChallengeSlug),
		PackageName:        packageNameOrDefault(opts.PackageName),
	}
	return r.Source.CreateBundle(ctx, strings.TrimSpace(opts.APIBase), request)
}

// Synthesize builds a bundle locally from the required package list.
func (r BundleResolver) Synthesize(ctx context.Context, opts types.ResolveOptions) (types.BundlePayload, error) {
	if r.Templates == nil {
		return types.BundlePayload{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("starter templates are not configured")
	}
	seed := strings.TrimSpace(opts.Seed)
	if seed == "" {
		newSeed := r.NewSeed
		if newSeed == nil {
			newSeed = RandomSeed
		}
		generated, err := newSeed()
		if err != nil {
			return types.BundlePayload{}, err
		}
		seed = generated
	}
	required := DefaultRequiredPackages(opts.RequiredPackages)
	deps := make(types.DependencyMap, len(required))
	for _, name := range required {
		deps[name] = types.LatestVersion
	}
	challenge := strings.TrimSpace(opts.ChallengeSlug)
	if challenge == "" {
		challenge = types.DefaultChallengeSlug
	}
	config, err := r.Configs.Build(ctx, ConfigInput{
		ChallengeSlug:    challenge,
		SeedBundleSlug:   "local-" + seed,
		Seed:             seed,
		Approach:         approachOrDefault(opts.Approach),
		AlgorithmVersion: types.LocalAlgorithmVersion,
		RequiredPackages: required,
		MinDependencies:  opts.MinDependencies,
		Dependencies:     deps,
		DevDependencies:  types.DependencyMap{},
	})
	if err != nil {
		return types.BundlePayload{}, err
	}

	packageName := packageNameOrDefault(opts.PackageName)
	files, err := r.Templates.Render(packageName, config)
	if err != nil {
		return types.BundlePayload{}, err
	}
	if files == nil {
		files = map[string]string{}
	}
	manifestBytes, err := EncodeDocument(NewManifest(packageName, config))
	if err != nil {
		return types.BundlePayload{}, err
	}
	configBytes, err := EncodeDocument(config)
	if err != nil {
		return types.BundlePayload{}, err
	}
	files[types.ManifestFileName] = string(manifestBytes)
	files[types.ConfigFileName] = string(configBytes)

	return types.BundlePayload{
		Slug:    config.SeedBundleSlug,
		Starter: &types.StarterFiles{Files: files},
	}, nil
}

// CheckPayload rejects payloads without a non-empty starter.files map.
func CheckPayload(payload types.BundlePayload, source string) error {
	if payload.FileCount() == 0 {
		return PayloadShapeError(source)
	}
	return nil
}

// RandomSeed returns eight random hex characters.
func RandomSeed() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to generate seed").
			WithCause(err)
	}
	return hex.EncodeToString(buf), nil
}

func packageNameOrDefault(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return types.DefaultPackageName
	}
	return trimmed
}

func approachOrDefault(approach string) string {
	trimmed := strings.TrimSpace(approach)
	if trimmed == "" {
		return types.DefaultApproach
	}
	return trimmed
}

func missingSourceError() error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("hosted bundle source is not configured")
}
