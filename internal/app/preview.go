package app

import (
	"fmt"
	"io"

	"github.com/anilsoylu/contentforge/internal/models"
)

// costPerCall is a rough per-request cost estimate shown in preview
const costPerCall = 0.0002

// Preview writes the document structure and run estimates without
// making any API calls.
func Preview(w io.Writer, cfg *models.ContentConfig) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, "   PREVIEW MODE (no API calls will be made)")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "STRUCTURE:")
	fmt.Fprintf(w, "   <h1>%s</h1>\n\n", cfg.Title)
	fmt.Fprintln(w, "   <div class=\"intro\">")
	fmt.Fprintf(w, "      ~%d words intro paragraph\n", cfg.IntroWords)
	fmt.Fprintln(w, "   </div>")
	fmt.Fprintln(w)

	if cfg.TableEnabled() {
		headers := make([]string, len(cfg.Table.Columns))
		for i, col := range cfg.Table.Columns {
			headers[i] = col.Header
		}
		fmt.Fprintln(w, "   <div class=\"comparison-table\">")
		fmt.Fprintln(w, "      <h2>Comparison</h2>")
		fmt.Fprintf(w, "      <table> %d rows, %d columns </table>\n", cfg.Table.Rows, len(headers))
		fmt.Fprintln(w, "   </div>")
		fmt.Fprintln(w)
	}

	for _, section := range cfg.Sections {
		fmt.Fprintln(w, "   <section>")
		fmt.Fprintf(w, "      <h2>%s</h2>\n", section.Heading)
		fmt.Fprintf(w, "      ~%d words content\n", section.Words)
		fmt.Fprintln(w, "   </section>")
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "   <div class=\"conclusion\">")
	fmt.Fprintln(w, "      <h2>Conclusion</h2>")
	fmt.Fprintf(w, "      ~%d words summary\n", cfg.ConclusionWords)
	fmt.Fprintln(w, "   </div>")
	fmt.Fprintln(w)

	calls := cfg.APICallCount()
	fmt.Fprintln(w, "ESTIMATES:")
	fmt.Fprintf(w, "   Total words: ~%d\n", cfg.TotalWords())
	fmt.Fprintf(w, "   API calls: %d\n", calls)
	fmt.Fprintf(w, "   Model: %s\n", cfg.Model)
	fmt.Fprintf(w, "   Output format: %s\n", cfg.Output)
	fmt.Fprintf(w, "   Language: %s\n", cfg.Language)
	fmt.Fprintf(w, "   Estimated cost: ~$%.4f\n", float64(calls)*costPerCall)
	fmt.Fprintln(w)
}
