package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhar97/solar-om-analytics/internal/cli/ui"
)

const version = "0.1.0"

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "solarctl",
	Short:   "Solar plant analytics dashboard",
	Version: version,
	Long: `A command-line dashboard for solar plant telemetry analytics. Browses the
anomalies, detected patterns and AI-generated insights produced by the
analytics API, with filtering, sorting and pagination.`,
	Example: `  # Point the CLI at the analytics API
  $ solarctl config set-server http://localhost:8080

  # List recent anomalies for one plant
  $ solarctl anomalies --plant PLANT_001 --severity high

  # High-confidence patterns, oldest first
  $ solarctl patterns --min-confidence 80 --sort first_observed_date --order asc

  # Open the interactive dashboard
  $ solarctl dashboard

  # Get help on a specific command
  $ solarctl insights --help`,
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(formatVersion())
	return rootCmd.Execute()
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(anomaliesCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(plantsCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(configCmd)

	// Set custom template with bold uppercase headers
	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Bold.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Bold.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Bold.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Bold.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

// formatVersion formats the version output
func formatVersion() string {
	return fmt.Sprintf("solarctl version %s\n", version)
}
