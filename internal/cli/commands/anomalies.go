package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/zhar97/solar-om-analytics/internal/cli/controller"
	"github.com/zhar97/solar-om-analytics/internal/cli/query"
	"github.com/zhar97/solar-om-analytics/internal/cli/types"
	"github.com/zhar97/solar-om-analytics/internal/cli/ui"
)

var (
	anomalyFlags       listFlags
	anomalyPlant       string
	anomalyMetric      string
	anomalySeverity    string
	anomalyInteractive bool
)

// anomaliesCmd is the anomaly list command
var anomaliesCmd = &cobra.Command{
	Use:   "anomalies",
	Short: "list detected anomalies",
	Long: `List anomalies detected across the fleet, or for a single plant.

Each anomaly records the metric that deviated, the actual and expected
values, a severity level and the statistical method that flagged it
(z-score or IQR bounds). Results are paginated and sortable by date or
severity.`,
	Example: `  # Most recent anomalies across all plants
  $ solarctl anomalies

  # Critical anomalies for one plant, worst first
  $ solarctl anomalies --plant PLANT_001 --severity critical --sort severity

  # Second page of 25
  $ solarctl anomalies --page 2 --page-size 25

  # Pick the filters interactively
  $ solarctl anomalies -i`,
	RunE: runAnomalies,
}

func init() {
	anomalyFlags.register(anomaliesCmd.Flags())
	anomaliesCmd.Flags().StringVar(&anomalyPlant, "plant", "", "only anomalies for this plant id")
	anomaliesCmd.Flags().StringVar(&anomalyMetric, "metric", "", "only anomalies for this metric (e.g. power_output_kwh)")
	anomaliesCmd.Flags().StringVar(&anomalySeverity, "severity", "", "only anomalies at this severity (low, medium, high, critical)")
	anomaliesCmd.Flags().BoolVarP(&anomalyInteractive, "interactive", "i", false, "prompt for filters")

	anomaliesCmd.SilenceUsage = true
}

func runAnomalies(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if anomalySeverity != "" && !types.Severity(anomalySeverity).Valid() {
		ui.PrintError("invalid severity %q (low, medium, high, critical)", anomalySeverity)
		return fmt.Errorf("invalid arguments")
	}

	if anomalyInteractive {
		if err := promptAnomalyFilters(); err != nil {
			return err
		}
	}

	apiClient, cfg, err := newAPIClient()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("client setup failed")
	}

	st, err := buildState(query.Anomalies(), &anomalyFlags, map[string]string{
		"plant_id": anomalyPlant,
		"metric":   anomalyMetric,
		"severity": anomalySeverity,
	}, cfg.PageSize)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("invalid arguments")
	}

	ctrl := controller.New(st.Schema, func(ctx context.Context, d query.Descriptor) (controller.Result[types.Anomaly], error) {
		items, total, err := apiClient.ListAnomalies(ctx, d)
		return controller.Result[types.Anomaly]{Items: items, Total: total}, err
	}, controller.WithState[types.Anomaly](st))

	ticket := ctrl.Refresh()
	if anomalyFlags.verbose {
		ui.PrintInfo("GET %s%s", apiClient.Server(), ticket.Descriptor.Encode())
	}

	if err := ctrl.Run(ctx, ticket); err != nil {
		fmt.Println(ui.RenderFailure(ctrl.Err()))
		return fmt.Errorf("list operation failed")
	}

	renderAnomalyList(ctrl)
	return nil
}

func renderAnomalyList(ctrl *controller.Controller[types.Anomaly]) {
	items := ctrl.Items()
	if len(items) == 0 {
		fmt.Println(ui.RenderEmpty("anomalies"))
		return
	}

	if anomalyFlags.detail != "" {
		ctrl.Select(anomalyFlags.detail)
	}

	fmt.Println()
	fmt.Print(ui.RenderAnomalyTable(items, ctrl.Selected()))
	fmt.Println(ui.RenderPageSummary(ctrl.State().Page, ctrl.TotalPages(), ctrl.Total(), "anomalies"))

	if selected, ok := ctrl.SelectedItem(func(a types.Anomaly) string { return a.AnomalyID }); ok {
		fmt.Println()
		fmt.Println(ui.RenderAnomalyDetail(selected))
	}
}

func promptAnomalyFilters() error {
	questions := []*survey.Question{
		{
			Name:   "plant",
			Prompt: &survey.Input{Message: "Plant id (empty for all plants):"},
		},
		{
			Name:   "metric",
			Prompt: &survey.Input{Message: "Metric name (empty for all metrics):"},
		},
		{
			Name: "severity",
			Prompt: &survey.Select{
				Message: "Severity:",
				Options: []string{"any", "low", "medium", "high", "critical"},
				Default: "any",
			},
		},
	}

	answers := struct {
		Plant    string
		Metric   string
		Severity string
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return fmt.Errorf("prompt cancelled")
	}

	anomalyPlant = answers.Plant
	anomalyMetric = answers.Metric
	if answers.Severity != "any" {
		anomalySeverity = answers.Severity
	}
	return nil
}
