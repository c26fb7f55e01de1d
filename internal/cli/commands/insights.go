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
	insightFlags         listFlags
	insightPlant         string
	insightType          string
	insightUrgency       string
	insightMinConfidence int
	insightInteractive   bool
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "list actionable insights",
	Long: `List insights generated from detected anomalies and patterns.

An insight carries a recommendation, an urgency level, a confidence
percentage and the potential impact of acting on it. Results are
paginated and sortable by confidence, urgency or generation date.`,
	Example: `  # Most urgent insights first
  $ solarctl insights --sort urgency

  # Maintenance recommendations for one plant
  $ solarctl insights --plant PLANT_002 --type maintenance_recommendation

  # Only high-confidence insights
  $ solarctl insights --min-confidence 75`,
	RunE: runInsights,
}

func init() {
	insightFlags.register(insightsCmd.Flags())
	insightsCmd.Flags().StringVar(&insightPlant, "plant", "", "only insights for this plant id")
	insightsCmd.Flags().StringVar(&insightType, "type", "", "only insights of this type (pattern_explanation, performance_trend, ...)")
	insightsCmd.Flags().StringVar(&insightUrgency, "urgency", "", "only insights at this urgency (low, medium, high, critical)")
	insightsCmd.Flags().IntVar(&insightMinConfidence, "min-confidence", 0, "only insights at or above this confidence percentage")
	insightsCmd.Flags().BoolVarP(&insightInteractive, "interactive", "i", false, "prompt for filters")

	insightsCmd.SilenceUsage = true
}

func runInsights(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if insightUrgency != "" && !types.Urgency(insightUrgency).Valid() {
		ui.PrintError("invalid urgency %q (low, medium, high, critical)", insightUrgency)
		return fmt.Errorf("invalid arguments")
	}

	if insightInteractive {
		if err := promptInsightFilters(); err != nil {
			return err
		}
	}

	minConfidence, err := minConfidenceValue(insightMinConfidence)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("invalid arguments")
	}

	apiClient, cfg, err := newAPIClient()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("client setup failed")
	}

	st, err := buildState(query.Insights(), &insightFlags, map[string]string{
		"plant_id":       insightPlant,
		"insight_type":   insightType,
		"urgency":        insightUrgency,
		"min_confidence": minConfidence,
	}, cfg.PageSize)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("invalid arguments")
	}

	ctrl := controller.New(st.Schema, func(ctx context.Context, d query.Descriptor) (controller.Result[types.Insight], error) {
		items, total, err := apiClient.ListInsights(ctx, d)
		return controller.Result[types.Insight]{Items: items, Total: total}, err
	}, controller.WithState[types.Insight](st))

	ticket := ctrl.Refresh()
	if insightFlags.verbose {
		ui.PrintInfo("GET %s%s", apiClient.Server(), ticket.Descriptor.Encode())
	}

	if err := ctrl.Run(ctx, ticket); err != nil {
		fmt.Println(ui.RenderFailure(ctrl.Err()))
		return fmt.Errorf("list operation failed")
	}

	items := ctrl.Items()
	if len(items) == 0 {
		fmt.Println(ui.RenderEmpty("insights"))
		return nil
	}

	if insightFlags.detail != "" {
		ctrl.Select(insightFlags.detail)
	}

	fmt.Println()
	fmt.Print(ui.RenderInsightTable(items, ctrl.Selected()))
	fmt.Println(ui.RenderPageSummary(ctrl.State().Page, ctrl.TotalPages(), ctrl.Total(), "insights"))

	if selected, ok := ctrl.SelectedItem(func(in types.Insight) string { return in.InsightID }); ok {
		fmt.Println()
		fmt.Println(ui.RenderInsightDetail(selected))
	}
	return nil
}

func promptInsightFilters() error {
	questions := []*survey.Question{
		{
			Name:   "plant",
			Prompt: &survey.Input{Message: "Plant id (empty for all plants):"},
		},
		{
			Name: "type",
			Prompt: &survey.Select{
				Message: "Insight type:",
				Options: []string{"any", "anomaly_cause_hypothesis", "pattern_explanation", "performance_trend", "maintenance_recommendation", "operational_insight"},
				Default: "any",
			},
		},
		{
			Name: "urgency",
			Prompt: &survey.Select{
				Message: "Urgency:",
				Options: []string{"any", "low", "medium", "high", "critical"},
				Default: "any",
			},
		},
		{
			Name:   "confidence",
			Prompt: &survey.Input{Message: "Minimum confidence percentage (0 for no minimum):", Default: "0"},
		},
	}

	answers := struct {
		Plant      string
		Type       string
		Urgency    string
		Confidence int
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return fmt.Errorf("prompt cancelled")
	}

	insightPlant = answers.Plant
	if answers.Type != "any" {
		insightType = answers.Type
	}
	if answers.Urgency != "any" {
		insightUrgency = answers.Urgency
	}
	insightMinConfidence = answers.Confidence
	return nil
}
