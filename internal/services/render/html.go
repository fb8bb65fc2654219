package render

import (
	"fmt"
	"strings"

	"github.com/anilsoylu/contentforge/internal/models"
)

// BuildTableHTML builds the HTML comparison table. Returns empty
// output when there are no rows or no columns.
func BuildTableHTML(rows []models.TableRow, columns []models.TableColumn) string {
	if len(rows) == 0 || len(columns) == 0 {
		return ""
	}

	lines := []string{
		`<table class="table table-striped">`,
		"  <thead>",
		"    <tr>",
	}

	for _, col := range columns {
		lines = append(lines, fmt.Sprintf("      <th>%s</th>", col.Header))
	}

	lines = append(lines,
		"    </tr>",
		"  </thead>",
		"  <tbody>",
	)

	for _, row := range rows {
		lines = append(lines, "    <tr>")
		for _, col := range columns {
			value := row.Get(col.Name)
			if col.Type == models.ColumnTypeStars {
				value = ValueToStars(value)
			}
			lines = append(lines, fmt.Sprintf("      <td>%s</td>", value))
		}
		lines = append(lines, "    </tr>")
	}

	lines = append(lines,
		"  </tbody>",
		"</table>",
	)

	return strings.Join(lines, "\n")
}

// TextToHTML converts plain generated text to HTML paragraph and list
// markup, then applies keyword highlighting.
func TextToHTML(text string, keywords []string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var parts []string
	for _, b := range segment(text) {
		switch b.kind {
		case blockParagraph:
			parts = append(parts, fmt.Sprintf("<p>%s</p>", strings.Join(b.lines, " ")))
		case blockList:
			items := make([]string, len(b.lines))
			for i, item := range b.lines {
				items[i] = fmt.Sprintf("  <li>%s</li>", item)
			}
			parts = append(parts, fmt.Sprintf("<ul>\n%s\n</ul>", strings.Join(items, "\n")))
		}
	}

	html := strings.Join(parts, "\n")

	return HighlightHTML(html, keywords)
}

// BuildFullHTML assembles the complete HTML document: title heading,
// intro, optional table block, one block per section, conclusion. The
// table block is omitted entirely when empty.
func BuildFullHTML(title string, content models.GeneratedContent, headings, keywords []string) string {
	lines := []string{
		fmt.Sprintf("<h1>%s</h1>", title),
		"",
		`<div class="intro">`,
		TextToHTML(content.Intro, keywords),
		"</div>",
		"",
	}

	if strings.TrimSpace(content.TableHTML) != "" {
		lines = append(lines,
			`<div class="comparison-table">`,
			"<h2>Comparison</h2>",
			strings.TrimSpace(content.TableHTML),
			"</div>",
			"",
		)
	}

	for i, heading := range headings {
		if i >= len(content.Sections) {
			break
		}
		lines = append(lines,
			"<section>",
			fmt.Sprintf("<h2>%s</h2>", heading),
			TextToHTML(content.Sections[i], keywords),
			"</section>",
			"",
		)
	}

	lines = append(lines,
		`<div class="conclusion">`,
		"<h2>Conclusion</h2>",
		TextToHTML(content.Conclusion, keywords),
		"</div>",
	)

	return strings.Join(lines, "\n")
}
