package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Umesh-Bhati/Blynd/internal/setup"
)

// formatStatus returns a verdict marker appropriate for the output mode.
func formatStatus(ok, nonInteractive bool) string {
	if nonInteractive {
		if ok {
			return "[OK]"
		}
		return "[ERR]"
	}
	if ok {
		return "✓" // ✓
	}
	return "✗" // ✗
}

// newSetupCmd creates the setup command: the one-click first-run
// sequence of detect, install, activate, and socket verification. The
// command is idempotent and safe to rerun.
func newSetupCmd(app *App) *cobra.Command {
	var nonInteractive bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "One-click Blender bridge setup",
		Long: `Locates the installed Blender, installs the companion addon into its
newest version directory, enables the addon through a headless Blender
run, and verifies the addon socket with a bounded retry.

The command is idempotent - it is safe to run multiple times. The addon
file is overwritten in place and re-enabling an enabled addon is a no-op.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !nonInteractive && !isTerminal(os.Stdin) {
				nonInteractive = true
			}

			orchestrator := setup.New(app.Platform, app.Client, setup.Config{
				Host:           app.Config.Socket.Host,
				Port:           app.Config.Socket.Port,
				VerifyAttempts: app.Config.Verify.Attempts,
				VerifyDelay:    app.Config.Verify.Delay.Std(),
			})

			outcome, err := orchestrator.Run(cmd.Context())
			if err != nil {
				return err
			}

			return renderResult(cmd, outcome, func() {
				for _, line := range outcome.Details {
					cmd.Printf("  %s\n", line)
				}
				cmd.Println()
				cmd.Printf("%s %s\n", formatStatus(outcome.OK, nonInteractive), outcome.Message)
			})
		},
	}

	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false,
		"Disable TTY-dependent output (status symbols)")

	return cmd
}
