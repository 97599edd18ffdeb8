package cli

import "github.com/spf13/cobra"

// newSocketCmd creates the socket command group.
func newSocketCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{Use: "socket", Short: "Addon socket operations"}
	cmd.AddCommand(newSocketCheckCmd(app))
	return cmd
}

// newSocketCheckCmd creates the socket check command, a single
// connectivity probe against the addon listener. An unreachable socket
// is reported as a status, not as a command failure.
func newSocketCheckCmd(app *App) *cobra.Command {
	var (
		host string
		port uint16
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Probe the Blender addon socket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolvedHost, resolvedPort := app.resolveEndpoint(cmd, host, port)
			status := app.Client.CheckSocket(cmd.Context(), resolvedHost, resolvedPort)

			return renderResult(cmd, status, func() {
				cmd.Println(status.Message)
			})
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "addon socket host (default from config)")
	cmd.Flags().Uint16Var(&port, "port", 0, "addon socket port (default from config)")

	return cmd
}

// resolveEndpoint applies config defaults to unset host/port flags.
func (a *App) resolveEndpoint(cmd *cobra.Command, host string, port uint16) (string, uint16) {
	if host == "" {
		host = a.Config.Socket.Host
	}
	if !cmd.Flags().Changed("port") || port == 0 {
		port = a.Config.Socket.Port
	}
	return host, port
}
