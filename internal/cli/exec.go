package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newExecCmd creates the exec command, which forwards a Blender Python
// snippet to the addon for execution. The code may be given as the
// positional argument or loaded from a file with --file.
func newExecCmd(app *App) *cobra.Command {
	var (
		host     string
		port     uint16
		codeFile string
	)

	cmd := &cobra.Command{
		Use:   "exec [code]",
		Short: "Execute Python code inside Blender",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var code string
			switch {
			case codeFile != "":
				data, err := os.ReadFile(codeFile)
				if err != nil {
					return fmt.Errorf("reading code file: %w", err)
				}
				code = string(data)
			case len(args) == 1:
				code = args[0]
			}

			resolvedHost, resolvedPort := app.resolveEndpoint(cmd, host, port)
			result, err := app.Client.ExecuteCode(cmd.Context(), resolvedHost, resolvedPort, code)
			if err != nil {
				return err
			}

			return renderResult(cmd, result, func() {
				cmd.Println(result.Message)
				if len(result.Result) > 0 {
					cmd.Printf("Result: %s\n", string(result.Result))
				}
			})
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "addon socket host (default from config)")
	cmd.Flags().Uint16Var(&port, "port", 0, "addon socket port (default from config)")
	cmd.Flags().StringVarP(&codeFile, "file", "f", "", "read the code from a file")

	return cmd
}
