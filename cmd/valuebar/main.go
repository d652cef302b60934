// Command valuebar renders and previews ValueBar widgets.
package main

import (
	"os"

	"github.com/go-drift/valuebar/cmd/valuebar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
