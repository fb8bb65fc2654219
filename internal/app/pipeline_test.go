package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anilsoylu/contentforge/internal/common"
	"github.com/anilsoylu/contentforge/internal/interfaces"
	"github.com/anilsoylu/contentforge/internal/models"
)

func testConfig() *models.ContentConfig {
	return &models.ContentConfig{
		Title:           "Widget Guide",
		IntroWords:      80,
		ConclusionWords: 60,
		Sections: []models.Section{
			{Heading: "Getting Started", Words: 100},
			{Heading: "Pricing", Words: 120},
		},
		Table: models.TableConfig{
			Enabled: true,
			Rows:    3,
			Columns: []models.TableColumn{
				{Name: "item", Header: "Item", Type: models.ColumnTypeText},
				{Name: "rating", Header: "Rating", Type: models.ColumnTypeStars},
			},
		},
		Model:    "openai/gpt-4o-mini",
		SEO:      models.SEOConfig{Tone: "informative"},
		Output:   models.OutputFormatHTML,
		Language: "English",
	}
}

func TestBuildTasksOrder(t *testing.T) {
	tasks := BuildTasks(testConfig())

	require.Len(t, tasks, 5)
	assert.Equal(t, models.TaskIntro, tasks[0].Name)
	assert.Equal(t, models.TaskTable, tasks[1].Name)
	assert.Equal(t, "section_0", tasks[2].Name)
	assert.Equal(t, "section_1", tasks[3].Name)
	assert.Equal(t, models.TaskConclusion, tasks[4].Name)

	for _, task := range tasks {
		assert.NotEmpty(t, task.Prompt, "task %s has empty prompt", task.Name)
	}
}

func TestBuildTasksTableDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Table.Enabled = false

	tasks := BuildTasks(cfg)
	require.Len(t, tasks, 4)
	for _, task := range tasks {
		assert.NotEqual(t, models.TaskTable, task.Name)
	}
}

func TestBuildTasksPreviousTopics(t *testing.T) {
	tasks := BuildTasks(testConfig())

	// first section has no preceding headings
	assert.NotContains(t, tasks[2].Prompt, "DO NOT REPEAT (already covered)")
	// second section must avoid the first section's heading
	assert.Contains(t, tasks[3].Prompt, "DO NOT REPEAT (already covered): Getting Started")
}

func TestAssembleContent(t *testing.T) {
	cfg := testConfig()
	results := map[string]string{
		models.TaskIntro:      "the intro",
		models.TaskTable:      "Widget A | 5\nWidget B | 3",
		"section_0":           "first section body",
		"section_1":           "second section body",
		models.TaskConclusion: "the conclusion",
	}

	content := AssembleContent(cfg, results)

	assert.Equal(t, "the intro", content.Intro)
	assert.Equal(t, "the conclusion", content.Conclusion)
	assert.Equal(t, []string{"first section body", "second section body"}, content.Sections)
	assert.Contains(t, content.TableHTML, "Widget A")
	assert.Contains(t, content.TableHTML, strings.Repeat("⭐", 5))
	assert.Contains(t, content.TableMD, "| Widget B | ⭐⭐⭐ |")
}

func TestAssembleContentWithoutTable(t *testing.T) {
	cfg := testConfig()
	cfg.Table.Enabled = false
	results := map[string]string{
		models.TaskIntro:      "i",
		"section_0":           "a",
		"section_1":           "b",
		models.TaskConclusion: "c",
	}

	content := AssembleContent(cfg, results)
	assert.Empty(t, content.TableHTML)
	assert.Empty(t, content.TableMD)
}

// scriptedService answers prompts from a canned table, keyed by a
// marker substring.
type scriptedService struct {
	openErr  error
	closed   bool
	respond  func(prompt string) (string, error)
}

func (s *scriptedService) Open() error  { return s.openErr }
func (s *scriptedService) Close() error { s.closed = true; return nil }
func (s *scriptedService) Complete(_ context.Context, prompt, _ string) (string, error) {
	return s.respond(prompt)
}

func newTestGenerator(service interfaces.CompletionService) *Generator {
	g := NewGenerator(common.NewDefaultSettings(), common.GetLogger())
	g.newService = func(string, *models.ContentConfig) interfaces.CompletionService {
		return service
	}
	return g
}

func TestGenerateDocument(t *testing.T) {
	service := &scriptedService{
		respond: func(prompt string) (string, error) {
			switch {
			case strings.Contains(prompt, "INTRODUCTION"):
				return "intro text", nil
			case strings.Contains(prompt, "separated by pipe"):
				return "Widget A | 4\nWidget B | 2", nil
			case strings.Contains(prompt, "CONCLUSION"):
				return "conclusion text", nil
			default:
				return "section text", nil
			}
		},
	}

	g := newTestGenerator(service)
	document, err := g.GenerateDocument(context.Background(), testConfig(), "sk-test")
	require.NoError(t, err)

	assert.True(t, service.closed)
	assert.Contains(t, document, "<h1>Widget Guide</h1>")
	assert.Contains(t, document, "intro text")
	assert.Contains(t, document, "<h2>Getting Started</h2>")
	assert.Contains(t, document, "<h2>Pricing</h2>")
	assert.Contains(t, document, "Widget A")
	assert.Contains(t, document, "conclusion text")
}

func TestGenerateDocumentTaskFailure(t *testing.T) {
	service := &scriptedService{
		respond: func(prompt string) (string, error) {
			if strings.Contains(prompt, "CONCLUSION") {
				return "", fmt.Errorf("upstream unavailable")
			}
			return "ok", nil
		},
	}

	g := newTestGenerator(service)
	document, err := g.GenerateDocument(context.Background(), testConfig(), "sk-test")
	require.Error(t, err)
	assert.Empty(t, document)
	assert.Contains(t, err.Error(), "task conclusion")
	assert.True(t, service.closed)
}

func TestGenerateDocumentOpenFailure(t *testing.T) {
	service := &scriptedService{openErr: errors.New("dial failed")}

	g := newTestGenerator(service)
	_, err := g.GenerateDocument(context.Background(), testConfig(), "sk-test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dial failed")
}
