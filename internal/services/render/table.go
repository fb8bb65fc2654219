package render

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/anilsoylu/contentforge/internal/models"
)

// markdownFencePattern matches code-fence delimiters with an optional
// language tag (```html, ``` etc.) plus trailing whitespace.
var markdownFencePattern = regexp.MustCompile("```\\w*\\s*")

// StripMarkdownFences removes code-fence markers a model may wrap
// around structured output.
func StripMarkdownFences(text string) string {
	return strings.TrimSpace(markdownFencePattern.ReplaceAllString(text, ""))
}

// ValueToStars converts a rating value to star glyphs: the integer is
// clamped to [1,5] and rendered as that many stars. Non-numeric input
// passes through unchanged.
func ValueToStars(value string) string {
	num, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return value
	}
	if num < 1 {
		num = 1
	}
	if num > 5 {
		num = 5
	}
	return strings.Repeat("⭐", num)
}

// ParseTableData parses pipe-separated table output into rows. Fences
// are stripped first. A line is kept only when it yields at least as
// many fields as there are columns; the first N fields map positionally
// to column names, extra trailing fields are ignored, and short lines
// are dropped silently.
func ParseTableData(raw string, columns []models.TableColumn) []models.TableRow {
	raw = StripMarkdownFences(raw)

	var rows []models.TableRow
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "|") {
			continue
		}

		// Enclosing pipes (markdown-style rows) would shift the
		// positional mapping; strip one from each end before splitting.
		line = strings.TrimPrefix(line, "|")
		line = strings.TrimSuffix(line, "|")

		parts := strings.Split(line, "|")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) < len(columns) {
			continue
		}

		values := make(map[string]string, len(columns))
		for i, col := range columns {
			values[col.Name] = parts[i]
		}
		rows = append(rows, models.TableRow{Values: values})
	}

	return rows
}
