package app

import (
	"context"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"devrando/internal/core"
)

// Create checks the target, resolves one bundle and writes its files. The
// target check happens before any network activity.
func (s Service) Create(ctx context.Context, req CreateRequest) (CreateResult, error) {
	targetDir := strings.TrimSpace(req.TargetDir)
	if targetDir == "" {
		return CreateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("target directory is required")
	}
	if err := s.ProjectWriter.EnsureTarget(targetDir, req.Force); err != nil {
		return CreateResult{}, err
	}

	resolveCtx := ctx
	if req.HTTPTimeoutSec > 0 {
		var cancel context.CancelFunc
		resolveCtx, cancel = context.WithTimeout(ctx, time.Duration(req.HTTPTimeoutSec)*time.Second)
		defer cancel()
	}
	resolver := core.NewBundleResolver(s.BundleSource, s.Templates)
	if s.NewSeed != nil {
		resolver.NewSeed = s.NewSeed
	}
	payload, mode, err := resolver.Resolve(resolveCtx, req.Options)
	if err != nil {
		return CreateResult{}, err
	}

	written, err := s.ProjectWriter.WriteFiles(targetDir, payload.Starter.Files)
	if err != nil {
		return CreateResult{}, err
	}
	log.Ctx(ctx).Debug().
		Str("target", targetDir).
		Str("mode", string(mode)).
		Int("files", len(written)).
		Msg("project written")
	return CreateResult{
		TargetDir: targetDir,
		Slug:      payload.Slug,
		Mode:      mode,
		Files:     written,
	}, nil
}
