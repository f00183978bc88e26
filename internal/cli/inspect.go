package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"devrando/internal/app"
)

type inspectOptions struct {
	Format string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect [dir]",
		Short: "Summarize a project's committed dependency config",
		Args:  argsUsage(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, targetArg(args, "."), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format (text, yaml)")
	_ = viper.BindPFlag("inspect_format", cmd.Flags().Lookup("format"))
	return cmd
}

func runInspect(cmd *cobra.Command, projectDir string, opts inspectOptions) error {
	format := strings.ToLower(resolveString(cmd, opts.Format, "inspect_format", "format"))
	if format != "text" && format != "yaml" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown format %q", format))
	}
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{ProjectDir: projectDir})
	if err != nil {
		return err
	}
	if format == "yaml" {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(result)
	}

	fmt.Printf("challenge: %s\n", result.ChallengeSlug)
	fmt.Printf("bundle: %s (approach %s, algorithm %s)\n", result.SeedBundleSlug, result.Approach, result.AlgorithmVersion)
	fmt.Printf("fingerprint: %s\n", result.Fingerprint)
	if !result.ConfigConsistent {
		fmt.Println("warning: fingerprint does not match the allowed dependencies in the config")
	}
	fmt.Printf("required: %s (minimum %d)\n", strings.Join(result.RequiredPackages, ", "), result.MinDependencies)
	fmt.Println("allowed dependencies:")
	for _, dep := range result.Dependencies {
		fmt.Printf("- %s@%s [%s, %s]\n", dep.Name, dep.Version, dep.Scope, dep.Kind)
	}
	return nil
}
