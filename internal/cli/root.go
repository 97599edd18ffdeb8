// Package cli exposes the bridge operations as cobra commands. It is the
// request/response boundary the desktop shell and scripts talk to.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Umesh-Bhati/Blynd/assets/addon"
	"github.com/Umesh-Bhati/Blynd/internal/blender"
	"github.com/Umesh-Bhati/Blynd/internal/config"
	"github.com/Umesh-Bhati/Blynd/internal/rpc"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// App bundles the dependencies the commands operate on. It is populated
// once in the root command's PersistentPreRunE.
type App struct {
	Config   *config.Config
	Client   *rpc.Client
	Platform blender.Platform
}

// NewRootCmd creates the root cobra command for the blynd CLI and wires
// up logging, configuration, and the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "blynd",
		Short: "Remote-control Blender through the Blynd bridge",
		Long: "Blynd: drive a running Blender instance over the companion addon's TCP socket,\n" +
			"and automate first-time addon setup.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.init(cmd)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Bool("json", false, "render results as JSON")

	cmd.AddCommand(
		newHealthcheckCmd(),
		newDetectCmd(app),
		newAddonCmd(app),
		newSocketCmd(app),
		newExecCmd(app),
		newSetupCmd(app),
	)

	return cmd
}

const rootCmdExample = `  # One-click first-run setup
  blynd setup

  # Check whether Blender is installed
  blynd detect

  # Install the companion addon into the newest Blender version
  blynd addon install

  # Probe the addon socket
  blynd socket check --host 127.0.0.1 --port 9876

  # Run a Python snippet inside Blender
  blynd exec 'bpy.ops.mesh.primitive_cube_add()'`

// init loads configuration, sets up logging on the command context, and
// builds the shared client and platform.
func (a *App) init(cmd *cobra.Command) error {
	cfg, err := config.New()
	if err != nil {
		// A broken config file should not brick the CLI; fall back to
		// defaults and tell the user.
		cmd.PrintErrf("Warning: %v, using defaults\n", err)
		cfg = config.Default()
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Logging.Level = "debug"
		cfg.Logging.Format = "console"
		cfg.Logging.File = ""
	}

	a.Config = cfg
	a.Client = rpc.NewClient(cfg.RPC.ToRPC())
	a.Platform = blender.NewPlatform(addon.Source)

	cmd.SetContext(setupLogging(cmd, cfg))
	return nil
}

// renderResult prints v either as indented JSON (--json) or through the
// human renderer.
func renderResult(cmd *cobra.Command, v any, human func()) error {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}
	human()
	return nil
}
