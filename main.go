// Planner - A command-line personal planner
package main

import (
	"os"

	"github.com/manav03panchal/planner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
