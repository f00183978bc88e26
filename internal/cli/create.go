package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"devrando/internal/app"
	"devrando/internal/shared"
	"devrando/internal/types"
)

type createOptions struct {
	BundleURL          string
	APIBase            string
	Seed               string
	Approach           string
	DependencyCount    int
	DevDependencyCount int
	ChallengeSlug      string
	PackageName        string
	RequiredPackages   []string
	MinDependencies    int
	Force              bool
	HTTPTimeoutSec     int
}

func newCreateCommand() *cobra.Command {
	opts := createOptions{}
	cmd := &cobra.Command{
		Use:   "create [dir]",
		Short: "Scaffold a challenge project from a hosted or local bundle",
		Long: "Scaffold a challenge project. --bundle-url takes precedence over --api-base; " +
			"with neither, the bundle is synthesized locally.",
		Args: argsUsage(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd.Context(), cmd, targetArg(args, types.DefaultTargetDir), opts)
		},
	}

	cmd.Flags().StringVar(&opts.BundleURL, "bundle-url", "", "Fetch an existing hosted bundle from this URL")
	cmd.Flags().StringVar(&opts.APIBase, "api-base", "", "Create a bundle through the API at this base URL")
	cmd.Flags().StringVar(&opts.Seed, "seed", "", "Bundle seed (random when empty)")
	cmd.Flags().StringVar(&opts.Approach, "approach", types.DefaultApproach, "Generation approach (balanced, stable, chaos)")
	cmd.Flags().IntVar(&opts.DependencyCount, "deps", types.DefaultDependencyCount, "Runtime dependency count for hosted creation")
	cmd.Flags().IntVar(&opts.DevDependencyCount, "dev-deps", types.DefaultDevDependencyCount, "Dev dependency count for hosted creation")
	cmd.Flags().StringVar(&opts.ChallengeSlug, "challenge", "", "Challenge slug")
	cmd.Flags().StringVar(&opts.PackageName, "package-name", "", "package.json name (defaults to the directory name)")
	cmd.Flags().StringSliceVar(&opts.RequiredPackages, "required", nil, "Required packages for local synthesis")
	cmd.Flags().IntVar(&opts.MinDependencies, "min-deps", 0, "Minimum dependency count (defaults to the required package count)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Write into a non-empty target directory")
	cmd.Flags().IntVar(&opts.HTTPTimeoutSec, "http-timeout", 0, "Hosted request timeout in seconds (0 uses the transport default)")

	_ = viper.BindPFlag("bundle_url", cmd.Flags().Lookup("bundle-url"))
	_ = viper.BindPFlag("api_base", cmd.Flags().Lookup("api-base"))
	_ = viper.BindPFlag("seed", cmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("approach", cmd.Flags().Lookup("approach"))
	_ = viper.BindPFlag("deps", cmd.Flags().Lookup("deps"))
	_ = viper.BindPFlag("dev_deps", cmd.Flags().Lookup("dev-deps"))
	_ = viper.BindPFlag("challenge", cmd.Flags().Lookup("challenge"))
	_ = viper.BindPFlag("package_name", cmd.Flags().Lookup("package-name"))
	_ = viper.BindPFlag("required", cmd.Flags().Lookup("required"))
	_ = viper.BindPFlag("min_deps", cmd.Flags().Lookup("min-deps"))
	_ = viper.BindPFlag("force", cmd.Flags().Lookup("force"))
	_ = viper.BindPFlag("http_timeout", cmd.Flags().Lookup("http-timeout"))

	return cmd
}

// buildCreateRequest resolves flags, env and config file into one request.
// Nothing below the CLI reads viper.
func buildCreateRequest(cmd *cobra.Command, targetDir string, opts createOptions) app.CreateRequest {
	packageName := resolveString(cmd, opts.PackageName, "package_name", "package-name")
	if packageName == "" {
		packageName = packageNameFromDir(targetDir)
	}
	return app.CreateRequest{
		TargetDir:      targetDir,
		Force:          resolveBool(cmd, opts.Force, "force", "force"),
		HTTPTimeoutSec: resolveInt(cmd, opts.HTTPTimeoutSec, "http_timeout", "http-timeout"),
		Options: types.ResolveOptions{
			BundleURL:          resolveString(cmd, opts.BundleURL, "bundle_url", "bundle-url"),
			APIBase:            resolveString(cmd, opts.APIBase, "api_base", "api-base"),
			Seed:               resolveString(cmd, opts.Seed, "seed", "seed"),
			Approach:           resolveString(cmd, opts.Approach, "approach", "approach"),
			DependencyCount:    resolveInt(cmd, opts.DependencyCount, "deps", "deps"),
			DevDependencyCount: resolveInt(cmd, opts.DevDependencyCount, "dev_deps", "dev-deps"),
			ChallengeSlug:      resolveString(cmd, opts.ChallengeSlug, "challenge", "challenge"),
			PackageName:        packageName,
			RequiredPackages:   shared.NormalizeList(resolveStrings(cmd, opts.RequiredPackages, "required", "required")),
			MinDependencies:    resolveInt(cmd, opts.MinDependencies, "min_deps", "min-deps"),
		},
	}
}

func runCreate(ctx context.Context, cmd *cobra.Command, targetDir string, opts createOptions) error {
	service := newAppService()
	result, err := service.Create(ctx, buildCreateRequest(cmd, targetDir, opts))
	if err != nil {
		return err
	}
	fmt.Printf("created %s from bundle %s (%s, %d files)\n", result.TargetDir, result.Slug, result.Mode, len(result.Files))
	fmt.Println("Next steps:")
	fmt.Printf("1) cd %s\n", result.TargetDir)
	fmt.Println("2) npm install")
	fmt.Println("3) npm run dev")
	return nil
}

// npmNamePattern accepts lowercase, URL-safe names with an optional scope.
var npmNamePattern = regexp.MustCompile(`^(@[a-z0-9~-][a-z0-9._~-]*/)?[a-z0-9~-][a-z0-9._~-]*$`)

// packageNameFromDir names the package after the target directory, falling
// back to the default name when the directory name is not a valid npm name.
func packageNameFromDir(targetDir string) string {
	dir := filepath.Clean(targetDir)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	name := filepath.Base(dir)
	if len(name) > 214 || !npmNamePattern.MatchString(name) {
		return types.DefaultPackageName
	}
	return name
}
