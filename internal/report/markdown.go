// Package report renders the human-facing summary: a markdown document with
// the scalar statistics and figure references, plus its HTML conversion.
package report

import (
	"fmt"
	"strings"

	"stride/domain/activity"
	"stride/domain/core"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Figures names the four plot files referenced from the document
type Figures struct {
	HistogramRaw     string
	HistogramImputed string
	IntervalPattern  string
	DayKindPanels    string
}

// Data is everything the rendered document needs
type Data struct {
	ReportID    core.ReportID
	GeneratedAt core.Timestamp
	SourceFile  string

	Census  activity.MissingCensus
	Raw     activity.DailySummary
	Imputed activity.DailySummary
	Peaks   []activity.IntervalProfile

	Figures Figures
}

// BuildMarkdown renders the report document as markdown text
func BuildMarkdown(d Data) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Activity Report\n\n")
	fmt.Fprintf(&b, "- Report ID: `%s`\n", d.ReportID)
	fmt.Fprintf(&b, "- Generated: %s\n", d.GeneratedAt)
	fmt.Fprintf(&b, "- Source: `%s`\n\n", d.SourceFile)

	fmt.Fprintf(&b, "## Missing values\n\n")
	fmt.Fprintf(&b, "%d of %d observations are missing (%.1f%%), spread over %d days.\n\n",
		d.Census.Missing, d.Census.Observations, 100*d.Census.MissingRate, len(d.Census.ByDate))

	fmt.Fprintf(&b, "## Daily totals\n\n")
	fmt.Fprintf(&b, "| | Before imputation | After imputation |\n")
	fmt.Fprintf(&b, "|---|---|---|\n")
	fmt.Fprintf(&b, "| Days with data | %d of %d | %d of %d |\n",
		d.Raw.DefinedDays, d.Raw.Days, d.Imputed.DefinedDays, d.Imputed.Days)
	fmt.Fprintf(&b, "| Mean | %.2f | %.2f |\n", d.Raw.Mean, d.Imputed.Mean)
	fmt.Fprintf(&b, "| Median | %.2f | %.2f |\n", d.Raw.Median, d.Imputed.Median)
	fmt.Fprintf(&b, "| Std dev | %.2f | %.2f |\n\n", d.Raw.StdDev, d.Imputed.StdDev)

	fmt.Fprintf(&b, "![Daily totals before imputation](%s)\n\n", d.Figures.HistogramRaw)
	fmt.Fprintf(&b, "![Daily totals after imputation](%s)\n\n", d.Figures.HistogramImputed)

	fmt.Fprintf(&b, "## Intra-day pattern\n\n")
	if len(d.Peaks) > 0 {
		fmt.Fprintf(&b, "Peak activity at interval **%s** with a mean of %.2f steps.\n",
			d.Peaks[0].Interval, d.Peaks[0].MeanSteps)
		if len(d.Peaks) > 1 {
			labels := make([]string, len(d.Peaks))
			for i, p := range d.Peaks {
				labels[i] = p.Interval.String()
			}
			fmt.Fprintf(&b, "Tied peak intervals: %s.\n", strings.Join(labels, ", "))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "![Mean steps by interval](%s)\n\n", d.Figures.IntervalPattern)

	fmt.Fprintf(&b, "## Weekdays vs. weekends\n\n")
	fmt.Fprintf(&b, "![Interval pattern by day type](%s)\n", d.Figures.DayKindPanels)

	return b.String()
}

// RenderHTML converts the markdown document into a standalone HTML page
func RenderHTML(md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{
		Title: "Activity Report",
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML(md, p, renderer)
}
