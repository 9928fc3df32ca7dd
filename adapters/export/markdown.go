package export

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"causalbench/internal/analysis"
)

// Markdown renders a grid-search report as a markdown document with a
// summary line and a trial table.
func Markdown(rep *analysis.Report) []byte {
	var sb strings.Builder

	failed := 0
	for _, t := range rep.Trials {
		if t.Failed() {
			failed++
		}
	}

	fmt.Fprintf(&sb, "# Grid search: %s\n\n", rep.Algorithm)
	fmt.Fprintf(&sb, "Dataset **%s**: %d trials, %d failed.\n\n", rep.Dataset, len(rep.Trials), failed)

	header := headerRow(rep)
	sb.WriteString("| " + strings.Join(header, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat(" --- |", len(header)) + "\n")
	for _, trial := range rep.Trials {
		sb.WriteString("| " + strings.Join(trialRow(rep, trial), " | ") + " |\n")
	}

	return []byte(sb.String())
}

// RenderHTML converts the markdown report to HTML for the web surface.
func RenderHTML(rep *analysis.Report) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse(Markdown(rep))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}
