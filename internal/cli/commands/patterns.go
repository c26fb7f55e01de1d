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
	patternFlags         listFlags
	patternPlant         string
	patternType          string
	patternMinConfidence int
	patternInteractive   bool
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "list recurring performance patterns",
	Long: `List recurring patterns mined from plant telemetry.

A pattern groups repeated behavior such as seasonal output swings,
degradation trends or weather correlations, with a confidence
percentage and a significance score. Results are paginated and
sortable by confidence, significance or first observation date.`,
	Example: `  # Highest-confidence patterns first
  $ solarctl patterns

  # Degradation patterns above 80% confidence
  $ solarctl patterns --type degradation --min-confidence 80

  # Patterns for one plant, oldest observation first
  $ solarctl patterns --plant PLANT_003 --sort first_observed_date --order asc`,
	RunE: runPatterns,
}

func init() {
	patternFlags.register(patternsCmd.Flags())
	patternsCmd.Flags().StringVar(&patternPlant, "plant", "", "only patterns for this plant id")
	patternsCmd.Flags().StringVar(&patternType, "type", "", "only patterns of this type (seasonal, weekly_cycle, degradation)")
	patternsCmd.Flags().IntVar(&patternMinConfidence, "min-confidence", 0, "only patterns at or above this confidence percentage")
	patternsCmd.Flags().BoolVarP(&patternInteractive, "interactive", "i", false, "prompt for filters")

	patternsCmd.SilenceUsage = true
}

func runPatterns(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if patternInteractive {
		if err := promptPatternFilters(); err != nil {
			return err
		}
	}

	minConfidence, err := minConfidenceValue(patternMinConfidence)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("invalid arguments")
	}

	apiClient, cfg, err := newAPIClient()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("client setup failed")
	}

	st, err := buildState(query.Patterns(), &patternFlags, map[string]string{
		"plant_id":       patternPlant,
		"pattern_type":   patternType,
		"min_confidence": minConfidence,
	}, cfg.PageSize)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("invalid arguments")
	}

	ctrl := controller.New(st.Schema, func(ctx context.Context, d query.Descriptor) (controller.Result[types.Pattern], error) {
		items, total, err := apiClient.ListPatterns(ctx, d)
		return controller.Result[types.Pattern]{Items: items, Total: total}, err
	}, controller.WithState[types.Pattern](st))

	ticket := ctrl.Refresh()
	if patternFlags.verbose {
		ui.PrintInfo("GET %s%s", apiClient.Server(), ticket.Descriptor.Encode())
	}

	if err := ctrl.Run(ctx, ticket); err != nil {
		fmt.Println(ui.RenderFailure(ctrl.Err()))
		return fmt.Errorf("list operation failed")
	}

	items := ctrl.Items()
	if len(items) == 0 {
		fmt.Println(ui.RenderEmpty("patterns"))
		return nil
	}

	if patternFlags.detail != "" {
		ctrl.Select(patternFlags.detail)
	}

	fmt.Println()
	fmt.Print(ui.RenderPatternTable(items, ctrl.Selected()))
	fmt.Println(ui.RenderPageSummary(ctrl.State().Page, ctrl.TotalPages(), ctrl.Total(), "patterns"))

	if selected, ok := ctrl.SelectedItem(func(p types.Pattern) string { return p.PatternID }); ok {
		fmt.Println()
		fmt.Println(ui.RenderPatternDetail(selected))
	}
	return nil
}

func promptPatternFilters() error {
	questions := []*survey.Question{
		{
			Name:   "plant",
			Prompt: &survey.Input{Message: "Plant id (empty for all plants):"},
		},
		{
			Name: "type",
			Prompt: &survey.Select{
				Message: "Pattern type:",
				Options: []string{"any", "seasonal", "weekly_cycle", "degradation"},
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
		Confidence int
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return fmt.Errorf("prompt cancelled")
	}

	patternPlant = answers.Plant
	if answers.Type != "any" {
		patternType = answers.Type
	}
	patternMinConfidence = answers.Confidence
	return nil
}
