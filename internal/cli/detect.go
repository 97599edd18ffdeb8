package cli

import "github.com/spf13/cobra"

// newDetectCmd creates the detect command, which scans well-known
// installation roots for a Blender executable. Not finding one is a
// normal outcome, not a failure.
func newDetectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Detect an installed Blender",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scan := app.Platform.DetectInstallation(cmd.Context())

			return renderResult(cmd, scan, func() {
				cmd.Println(scan.Message)
				if scan.Found {
					cmd.Printf("Executable: %s\n", scan.ExecutablePath)
				}
				for _, path := range scan.SearchedPaths {
					cmd.Printf("  searched: %s\n", path)
				}
			})
		},
	}
}
