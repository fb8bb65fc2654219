package render

import (
	"fmt"
	"strings"

	"github.com/anilsoylu/contentforge/internal/models"
)

// BuildTableMarkdown builds the Markdown comparison table. Returns
// empty output when there are no rows or no columns.
func BuildTableMarkdown(rows []models.TableRow, columns []models.TableColumn) string {
	if len(rows) == 0 || len(columns) == 0 {
		return ""
	}

	headers := make([]string, len(columns))
	separators := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
		separators[i] = "---"
	}

	lines := []string{
		"| " + strings.Join(headers, " | ") + " |",
		"| " + strings.Join(separators, " | ") + " |",
	}

	for _, row := range rows {
		values := make([]string, len(columns))
		for i, col := range columns {
			value := row.Get(col.Name)
			if col.Type == models.ColumnTypeStars {
				value = ValueToStars(value)
			}
			values[i] = value
		}
		lines = append(lines, "| "+strings.Join(values, " | ")+" |")
	}

	return strings.Join(lines, "\n")
}

// TextToMarkdown converts plain generated text to Markdown paragraph
// and list blocks, then applies keyword highlighting.
func TextToMarkdown(text string, keywords []string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var parts []string
	for _, b := range segment(text) {
		switch b.kind {
		case blockParagraph:
			parts = append(parts, strings.Join(b.lines, " "))
		case blockList:
			items := make([]string, len(b.lines))
			for i, item := range b.lines {
				items[i] = "- " + item
			}
			parts = append(parts, strings.Join(items, "\n"))
		}
	}

	md := strings.Join(parts, "\n\n")

	return HighlightMarkdown(md, keywords)
}

// BuildFullMarkdown assembles the complete Markdown document in the
// same fixed order as the HTML builder.
func BuildFullMarkdown(title string, content models.GeneratedContent, headings, keywords []string) string {
	lines := []string{
		fmt.Sprintf("# %s", title),
		"",
		TextToMarkdown(content.Intro, keywords),
		"",
	}

	if strings.TrimSpace(content.TableMD) != "" {
		lines = append(lines,
			"## Comparison",
			"",
			strings.TrimSpace(content.TableMD),
			"",
		)
	}

	for i, heading := range headings {
		if i >= len(content.Sections) {
			break
		}
		lines = append(lines,
			fmt.Sprintf("## %s", heading),
			"",
			TextToMarkdown(content.Sections[i], keywords),
			"",
		)
	}

	lines = append(lines,
		"## Conclusion",
		"",
		TextToMarkdown(content.Conclusion, keywords),
	)

	return strings.Join(lines, "\n")
}

// BuildDocument renders the full document in the requested output
// format; any value other than "md" selects HTML.
func BuildDocument(title string, content models.GeneratedContent, headings, keywords []string, format string) string {
	if format == models.OutputFormatMarkdown {
		return BuildFullMarkdown(title, content, headings, keywords)
	}
	return BuildFullHTML(title, content, headings, keywords)
}
