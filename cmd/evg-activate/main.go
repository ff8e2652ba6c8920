// Command evg-activate activates the task generated by a running generator
// task in its Evergreen build.
package main

import (
	"os"

	"github.com/evg-tools/evgactivate/internal/cli"
	"github.com/evg-tools/evgactivate/internal/logging"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Error("command failed", "error", err)
		os.Exit(1)
	}
}
