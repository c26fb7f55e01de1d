package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/zhar97/solar-om-analytics/internal/cli/commands"
	"github.com/zhar97/solar-om-analytics/internal/cli/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "unknown command") {
			ui.PrintError("%s", errMsg)
			fmt.Println("\nRun 'solarctl --help' for usage.")
		}
		os.Exit(1)
	}
}
