package cli

import "github.com/spf13/cobra"

// newAddonCmd creates the addon command group.
func newAddonCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{Use: "addon", Short: "Companion addon management"}
	cmd.AddCommand(newAddonInstallCmd(app))
	return cmd
}

// newAddonInstallCmd creates the addon install command. Installation is
// idempotent: rerunning overwrites the addon file in the newest detected
// Blender version directory.
func newAddonInstallCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the companion addon into Blender",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.Platform.InstallAddon(cmd.Context())
			if err != nil {
				return err
			}

			return renderResult(cmd, result, func() {
				cmd.Println(result.Message)
				cmd.Printf("Addon path: %s\n", result.AddonPath)
			})
		},
	}
}
