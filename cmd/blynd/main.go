// Command blynd is the Blender control bridge CLI.
package main

import (
	"os"

	"github.com/Umesh-Bhati/Blynd/internal/cli"
	"github.com/Umesh-Bhati/Blynd/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps failure to exit code 1.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
