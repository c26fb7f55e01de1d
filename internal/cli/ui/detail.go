package ui

import (
	"fmt"
	"strings"

	"github.com/zhar97/solar-om-analytics/internal/cli/types"
)

// Detail panels show every field of the selected record, not just the
// table-visible columns. Optional segments (method statistics, the
// recommended action) are omitted when absent.

func formatKeyValue(key, value string) string {
	return fmt.Sprintf("%s %s", Styles.Key.Render(key), value)
}

func joinDetail(title string, lines []string) string {
	body := Styles.Highlight.Render(title) + "\n" + strings.Join(lines, "\n")
	return Styles.DetailBox.Render(body)
}

// RenderAnomalyDetail renders the expanded view of one anomaly.
func RenderAnomalyDetail(a types.Anomaly) string {
	lines := []string{
		formatKeyValue("Plant:", a.PlantID),
		formatKeyValue("Date:", a.Date),
		formatKeyValue("Metric:", a.MetricName),
		formatKeyValue("Actual:", fmt.Sprintf("%.2f", a.ActualValue)),
		formatKeyValue("Expected:", fmt.Sprintf("%.2f", a.ExpectedValue)),
		formatKeyValue("Deviation:", fmt.Sprintf("%+.1f%%", a.DeviationPct)),
		formatKeyValue("Severity:", ColorSeverity(a.Severity)),
		formatKeyValue("Detected by:", a.DetectedBy),
		formatKeyValue("Status:", a.Status),
	}

	if stats, ok := a.Detection(); ok {
		switch stats.Method {
		case types.MethodZScore:
			lines = append(lines, formatKeyValue("Z-score:", fmt.Sprintf("%.2f", stats.ZScore)))
		case types.MethodIQR:
			lines = append(lines, formatKeyValue("IQR bounds:", fmt.Sprintf("%.2f .. %.2f", stats.Bounds.Lower, stats.Bounds.Upper)))
		}
	}

	if a.DetectionTimestamp != "" {
		lines = append(lines, formatKeyValue("Detected at:", a.DetectionTimestamp))
	}

	return joinDetail("Anomaly "+a.AnomalyID, lines)
}

// RenderPatternDetail renders the expanded view of one pattern.
func RenderPatternDetail(p types.Pattern) string {
	fleet := "no"
	if p.IsFleetWide {
		fleet = "yes"
	}
	affected := strings.Join(p.AffectedPlants, ", ")
	if affected == "" {
		affected = "-"
	}

	lines := []string{
		formatKeyValue("Plant:", p.PlantID),
		formatKeyValue("Type:", p.PatternType),
		formatKeyValue("Metric:", p.MetricName),
		formatKeyValue("Description:", p.Description),
		formatKeyValue("Frequency:", p.Frequency),
		formatKeyValue("Amplitude:", fmt.Sprintf("%.2f", p.Amplitude)),
		formatKeyValue("Significance:", fmt.Sprintf("%.1f", p.SignificanceScore)),
		formatKeyValue("Confidence:", fmt.Sprintf("%.1f%%", p.ConfidencePct)),
		formatKeyValue("First observed:", p.FirstObservedDate),
		formatKeyValue("Last observed:", p.LastObservedDate),
		formatKeyValue("Occurrences:", fmt.Sprintf("%d", p.OccurrenceCount)),
		formatKeyValue("Affected plants:", affected),
		formatKeyValue("Fleet-wide:", fleet),
	}

	return joinDetail("Pattern "+p.PatternID, lines)
}

// RenderInsightDetail renders the expanded view of one insight.
func RenderInsightDetail(in types.Insight) string {
	linkedPatterns := strings.Join(in.LinkedPatterns, ", ")
	if linkedPatterns == "" {
		linkedPatterns = "-"
	}
	linkedAnomalies := strings.Join(in.LinkedAnomalies, ", ")
	if linkedAnomalies == "" {
		linkedAnomalies = "-"
	}

	lines := []string{
		formatKeyValue("Plant:", in.PlantID),
		formatKeyValue("Type:", in.InsightType),
		formatKeyValue("Title:", in.Title),
		formatKeyValue("Description:", in.Description),
		formatKeyValue("Reasoning:", in.Reasoning),
		formatKeyValue("Business impact:", in.BusinessImpact),
		formatKeyValue("Confidence:", fmt.Sprintf("%.1f%%", in.Confidence)),
		formatKeyValue("Urgency:", ColorUrgency(in.Urgency)),
	}

	if in.RecommendedAction != "" {
		lines = append(lines, formatKeyValue("Recommended action:", in.RecommendedAction))
	}

	lines = append(lines,
		formatKeyValue("Linked patterns:", linkedPatterns),
		formatKeyValue("Linked anomalies:", linkedAnomalies),
		formatKeyValue("Generated:", in.GenerationDate),
	)

	return joinDetail("Insight "+in.InsightID, lines)
}
