package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"devrando/internal/app"
)

func newVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [dir]",
		Short: "Check a project's manifest against its committed dependency config",
		Args:  argsUsage(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd.Context(), targetArg(args, "."))
		},
	}
	return cmd
}

func runVerify(ctx context.Context, projectDir string) error {
	service := newAppService()
	result, err := service.Verify(ctx, app.VerifyRequest{ProjectDir: projectDir})
	if err != nil {
		return err
	}
	fmt.Printf("verified: %d dependencies match fingerprint %s\n", result.Report.DependencyCount, result.Report.ActualFingerprint)
	return nil
}
