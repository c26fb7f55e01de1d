package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zhar97/solar-om-analytics/internal/cli/config"
	"github.com/zhar97/solar-om-analytics/internal/cli/query"
	"github.com/zhar97/solar-om-analytics/internal/cli/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "view or change CLI configuration",
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			ui.PrintError("%v", err)
			return fmt.Errorf("config load failed")
		}

		path, _ := config.GetConfigPath()
		ui.PrintBold("Configuration (%s)", path)
		fmt.Printf("  server:    %s\n", cfg.Server)
		if cfg.PageSize != 0 {
			fmt.Printf("  page_size: %d\n", cfg.PageSize)
		} else {
			fmt.Printf("  page_size: %d (default)\n", query.Anomalies().DefaultPageSize)
		}
		return nil
	},
}

var configSetServerCmd = &cobra.Command{
	Use:   "set-server <url>",
	Short: "set the analytics API server address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			ui.PrintError("%v", err)
			return fmt.Errorf("config load failed")
		}

		cfg.Server = args[0]
		if err := cfg.Save(); err != nil {
			ui.PrintError("%v", err)
			return fmt.Errorf("config save failed")
		}

		ui.PrintSuccess("server set to %s", cfg.Server)
		return nil
	},
}

var configSetPageSizeCmd = &cobra.Command{
	Use:   "set-page-size <n>",
	Short: "set the preferred records-per-page for list views",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := strconv.Atoi(args[0])
		if err != nil || !query.Anomalies().AllowsPageSize(size) {
			ui.PrintError("invalid page size %q (one of %v)", args[0], query.Anomalies().PageSizes)
			return fmt.Errorf("invalid arguments")
		}

		cfg, err := config.Load()
		if err != nil {
			ui.PrintError("%v", err)
			return fmt.Errorf("config load failed")
		}

		cfg.PageSize = size
		if err := cfg.Save(); err != nil {
			ui.PrintError("%v", err)
			return fmt.Errorf("config save failed")
		}

		ui.PrintSuccess("page size set to %d", size)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configSetServerCmd)
	configCmd.AddCommand(configSetPageSizeCmd)
}
