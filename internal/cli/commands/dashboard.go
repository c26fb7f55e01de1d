package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhar97/solar-om-analytics/internal/cli/tui"
	"github.com/zhar97/solar-om-analytics/internal/cli/ui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "open the interactive analytics dashboard",
	Long: `Open a full-screen dashboard with the anomaly, pattern and insight
views on tabs. Filters, sorting and pagination are driven from the
keyboard; a row can be expanded into a detail panel with enter.`,
	Example: `  $ solarctl dashboard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, _, err := newAPIClient()
		if err != nil {
			ui.PrintError("%v", err)
			return fmt.Errorf("client setup failed")
		}

		if err := tui.NewDashboardProgram(apiClient).Run(); err != nil {
			ui.PrintError("dashboard exited with error: %v", err)
			return fmt.Errorf("dashboard failed")
		}
		return nil
	},
}

func init() {
	dashboardCmd.SilenceUsage = true
}
