// Package output persists generated documents. The generation core
// returns a single document string; everything filesystem-related
// lives here.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/anilsoylu/contentforge/internal/common"
	"github.com/anilsoylu/contentforge/internal/models"
)

// timestampLayout produces filenames like 2026-08-29-14-05.html
const timestampLayout = "2006-01-02-15-04"

// Writer saves rendered documents under the configured output
// directory with generated filenames.
type Writer struct {
	cfg    common.OutputConfig
	logger arbor.ILogger

	// now is replaceable for tests
	now func() time.Time
}

// NewWriter creates a document writer
func NewWriter(cfg common.OutputConfig, logger arbor.ILogger) *Writer {
	return &Writer{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Filename returns the timestamped filename for a format. When the
// name is already taken a short random suffix keeps runs within the
// same minute from overwriting each other.
func (w *Writer) Filename(format string) string {
	ext := "html"
	if format == models.OutputFormatMarkdown {
		ext = "md"
	}

	base := w.now().Format(timestampLayout)
	name := fmt.Sprintf("%s.%s", base, ext)
	if _, err := os.Stat(filepath.Join(w.cfg.Dir, name)); err == nil {
		name = fmt.Sprintf("%s-%s.%s", base, uuid.New().String()[:8], ext)
	}
	return name
}

// Save writes the document and returns the full file path. For
// markdown output with preview_html enabled, a rendered HTML preview
// is written next to it.
func (w *Writer) Save(document, format string) (string, error) {
	if err := os.MkdirAll(w.cfg.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", w.cfg.Dir, err)
	}

	name := w.Filename(format)
	path := filepath.Join(w.cfg.Dir, name)

	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return "", fmt.Errorf("failed to write document %s: %w", path, err)
	}

	w.logger.Info().
		Str("file", path).
		Int("chars", len(document)).
		Msg("Document saved")

	if format == models.OutputFormatMarkdown && w.cfg.PreviewHTML {
		previewPath := path[:len(path)-len("md")] + "html"
		html, err := MarkdownToHTML(document)
		if err != nil {
			w.logger.Warn().Err(err).Msg("Failed to render HTML preview")
		} else if err := os.WriteFile(previewPath, []byte(html), 0644); err != nil {
			w.logger.Warn().Err(err).Str("file", previewPath).Msg("Failed to write HTML preview")
		} else {
			w.logger.Info().Str("file", previewPath).Msg("HTML preview saved")
		}
	}

	return path, nil
}
