// Command mini is a minimal local version control system.
package main

import (
	"os"

	"github.com/kilupskalvis/mini/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
