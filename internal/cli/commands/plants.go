package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zhar97/solar-om-analytics/internal/cli/ui"
)

var plantsCmd = &cobra.Command{
	Use:   "plants",
	Short: "list monitored plants",
	Long:  `List the solar plants the analytics service tracks, with their id, name, location and installed capacity.`,
	Example: `  $ solarctl plants`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		apiClient, _, err := newAPIClient()
		if err != nil {
			ui.PrintError("%v", err)
			return fmt.Errorf("client setup failed")
		}

		plants, err := apiClient.ListPlants(ctx)
		if err != nil {
			fmt.Println(ui.RenderFailure(err.Error()))
			return fmt.Errorf("list operation failed")
		}

		if len(plants) == 0 {
			fmt.Println(ui.RenderEmpty("plants"))
			return nil
		}

		fmt.Println()
		fmt.Print(ui.RenderPlantTable(plants))
		return nil
	},
}

func init() {
	plantsCmd.SilenceUsage = true
}
