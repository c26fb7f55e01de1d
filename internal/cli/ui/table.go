package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/zhar97/solar-om-analytics/internal/cli/types"
)

// Tables are rendered with dynamic column widths computed in a first
// pass over the rows, so narrow terminals are not wasted on padding.
// The selected row is marked with a pointer instead of re-styling the
// whole line; a selection that references a record outside the current
// page simply marks nothing.

// ColorSeverity returns a colored severity label.
func ColorSeverity(s types.Severity) string {
	switch s {
	case types.SeverityCritical:
		return color.New(color.FgRed, color.Bold).Sprint(string(s))
	case types.SeverityHigh:
		return color.RedString(string(s))
	case types.SeverityMedium:
		return color.YellowString(string(s))
	case types.SeverityLow:
		return color.GreenString(string(s))
	}
	return string(s)
}

// ColorUrgency returns a colored urgency label.
func ColorUrgency(u types.Urgency) string {
	return ColorSeverity(types.Severity(u))
}

func marker(selected bool) string {
	if selected {
		return "▸"
	}
	return " "
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

type columns struct {
	widths []int
}

func newColumns(headers []string) *columns {
	c := &columns{widths: make([]int, len(headers))}
	c.fit(headers)
	return c
}

func (c *columns) fit(cells []string) {
	for i, cell := range cells {
		if len(cell) > c.widths[i] {
			c.widths[i] = len(cell)
		}
	}
}

func (c *columns) render(prefix string, cells []string, colored []string) string {
	parts := make([]string, len(cells))
	for i := range cells {
		cell := pad(cells[i], c.widths[i])
		if colored != nil && colored[i] != "" {
			// Re-apply padding around the ANSI-wrapped value.
			cell = colored[i] + strings.Repeat(" ", c.widths[i]-len(cells[i]))
		}
		parts[i] = cell
	}
	return prefix + " " + strings.Join(parts, "  ")
}

func renderHeader(c *columns, headers []string) string {
	return Styles.Bold.Render(c.render(" ", headers, nil))
}

// RenderAnomalyTable renders the anomaly list view.
func RenderAnomalyTable(anomalies []types.Anomaly, selectedID string) string {
	headers := []string{"DATE", "PLANT", "METRIC", "ACTUAL", "EXPECTED", "DEV%", "SEVERITY", "METHOD", "STATUS"}
	cols := newColumns(headers)

	rows := make([][]string, 0, len(anomalies))
	for _, a := range anomalies {
		row := []string{
			a.Date,
			a.PlantID,
			a.MetricName,
			fmt.Sprintf("%.1f", a.ActualValue),
			fmt.Sprintf("%.1f", a.ExpectedValue),
			fmt.Sprintf("%+.1f", a.DeviationPct),
			string(a.Severity),
			a.DetectedBy,
			a.Status,
		}
		cols.fit(row)
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(renderHeader(cols, headers))
	b.WriteString("\n")
	for i, a := range anomalies {
		colored := make([]string, len(headers))
		colored[6] = ColorSeverity(a.Severity)
		b.WriteString(cols.render(marker(a.AnomalyID == selectedID), rows[i], colored))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPatternTable renders the pattern list view.
func RenderPatternTable(patterns []types.Pattern, selectedID string) string {
	headers := []string{"PLANT", "TYPE", "FREQ", "CONF%", "SIGNIF", "OCCUR", "FLEET", "DESCRIPTION"}
	cols := newColumns(headers)

	rows := make([][]string, 0, len(patterns))
	for _, p := range patterns {
		fleet := "no"
		if p.IsFleetWide {
			fleet = "yes"
		}
		row := []string{
			p.PlantID,
			p.PatternType,
			p.Frequency,
			fmt.Sprintf("%.0f", p.ConfidencePct),
			fmt.Sprintf("%.0f", p.SignificanceScore),
			fmt.Sprintf("%d", p.OccurrenceCount),
			fleet,
			truncate(p.Description, 48),
		}
		cols.fit(row)
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(renderHeader(cols, headers))
	b.WriteString("\n")
	for i, p := range patterns {
		b.WriteString(cols.render(marker(p.PatternID == selectedID), rows[i], nil))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderInsightTable renders the insight list view.
func RenderInsightTable(insights []types.Insight, selectedID string) string {
	headers := []string{"PLANT", "TYPE", "URGENCY", "CONF%", "TITLE"}
	cols := newColumns(headers)

	rows := make([][]string, 0, len(insights))
	for _, in := range insights {
		row := []string{
			in.PlantID,
			in.InsightType,
			string(in.Urgency),
			fmt.Sprintf("%.0f", in.Confidence),
			truncate(in.Title, 56),
		}
		cols.fit(row)
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(renderHeader(cols, headers))
	b.WriteString("\n")
	for i, in := range insights {
		colored := make([]string, len(headers))
		colored[2] = ColorUrgency(in.Urgency)
		b.WriteString(cols.render(marker(in.InsightID == selectedID), rows[i], colored))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPlantTable renders the plant summary view.
func RenderPlantTable(plants []types.Plant) string {
	headers := []string{"PLANT", "NAME", "LOCATION", "CAPACITY", "HEALTH", "7D", "30D"}
	cols := newColumns(headers)

	rows := make([][]string, 0, len(plants))
	for _, p := range plants {
		row := []string{
			p.PlantID,
			p.PlantName,
			p.Location,
			fmt.Sprintf("%.0f kW", p.CapacityKW),
			fmt.Sprintf("%.1f", p.CurrentHealthScore),
			fmt.Sprintf("%d", p.AnomalyCount7D),
			fmt.Sprintf("%d", p.AnomalyCount30D),
		}
		cols.fit(row)
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(renderHeader(cols, headers))
	b.WriteString("\n")
	for i := range plants {
		b.WriteString(cols.render(" ", rows[i], nil))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPageSummary renders the pagination footer, e.g.
// "Page 2 of 10 (100 anomalies)".
func RenderPageSummary(page, totalPages, total int, noun string) string {
	if total == 1 {
		noun = strings.TrimSuffix(noun, "s")
	}
	return Styles.Dim.Render(fmt.Sprintf("Page %d of %d (%d %s)", page, totalPages, total, noun))
}

// RenderEmpty renders the no-results affordance.
func RenderEmpty(noun string) string {
	return Styles.Key.Render(fmt.Sprintf("No %s found. Try widening or clearing the filters.", noun))
}

// RenderFailure renders the failure banner with the retained message.
func RenderFailure(message string) string {
	return Styles.ErrorBox.Render(errorColor.Sprint("Request failed") + "\n\n" + message)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
