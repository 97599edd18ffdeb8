package cli

import "github.com/spf13/cobra"

// readinessToken is the constant answer of the healthcheck operation.
const readinessToken = "ok"

// newHealthcheckCmd creates the healthcheck command. It prints a constant
// readiness token so shells and supervisors can verify the binary runs.
func newHealthcheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "healthcheck",
		Short: "Print a constant readiness token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Println(readinessToken)
			return nil
		},
	}
}
