// Package app wires the prompt builders, the batch orchestrator, and
// the document renderer into the document generation pipeline.
package app

import (
	"context"
	"sync/atomic"

	"github.com/ternarybob/arbor"

	"github.com/anilsoylu/contentforge/internal/common"
	"github.com/anilsoylu/contentforge/internal/interfaces"
	"github.com/anilsoylu/contentforge/internal/models"
	"github.com/anilsoylu/contentforge/internal/services/completion"
	"github.com/anilsoylu/contentforge/internal/services/prompts"
	"github.com/anilsoylu/contentforge/internal/services/render"
)

// Generator runs the full generation pipeline for one document
type Generator struct {
	settings *common.Settings
	logger   arbor.ILogger

	// newService allows tests to substitute the completion service
	newService func(apiKey string, cfg *models.ContentConfig) interfaces.CompletionService
}

// NewGenerator creates a generator using the given app settings
func NewGenerator(settings *common.Settings, logger arbor.ILogger) *Generator {
	g := &Generator{
		settings: settings,
		logger:   logger,
	}
	g.newService = g.newClient
	return g
}

func (g *Generator) newClient(apiKey string, cfg *models.ContentConfig) interfaces.CompletionService {
	return completion.NewClient(apiKey, cfg.Model,
		completion.WithSiteURL(cfg.Site.URL),
		completion.WithTimeout(g.settings.OpenRouter.Timeout),
		completion.WithRetryPolicy(g.settings.OpenRouter.MaxRetries, g.settings.OpenRouter.RetryDelay),
		completion.WithRateLimit(g.settings.OpenRouter.RateLimit),
		completion.WithLogger(g.logger),
	)
}

// BuildTasks constructs the batch tasks for one document in dispatch
// order: intro, optional table, one per section, conclusion.
func BuildTasks(cfg *models.ContentConfig) []models.GenerationTask {
	headings := cfg.Headings()

	tasks := []models.GenerationTask{
		{
			Name:   models.TaskIntro,
			Prompt: prompts.BuildIntroPrompt(cfg.Title, headings, cfg.IntroWords, cfg.SEO, cfg.Language),
		},
	}

	if cfg.TableEnabled() {
		tasks = append(tasks, models.GenerationTask{
			Name:   models.TaskTable,
			Prompt: prompts.BuildTablePrompt(cfg.Title, cfg.Table, cfg.Language),
		})
	}

	for i, section := range cfg.Sections {
		tasks = append(tasks, models.GenerationTask{
			Name: models.SectionTaskName(i),
			Prompt: prompts.BuildSectionPrompt(
				cfg.Title, section.Heading, section.Words,
				i, len(cfg.Sections), headings[:i],
				cfg.SEO, cfg.Placeholders, cfg.Language,
			),
		})
	}

	tasks = append(tasks, models.GenerationTask{
		Name:   models.TaskConclusion,
		Prompt: prompts.BuildConclusionPrompt(cfg.Title, headings, cfg.ConclusionWords, cfg.SEO, cfg.Language),
	})

	return tasks
}

// AssembleContent reorders batch results into document sequence and
// builds both table formats from the raw table output. Section order
// comes from the section_<i> task names, never from completion order.
func AssembleContent(cfg *models.ContentConfig, results map[string]string) models.GeneratedContent {
	content := models.GeneratedContent{
		Intro:      results[models.TaskIntro],
		Conclusion: results[models.TaskConclusion],
	}

	if raw, ok := results[models.TaskTable]; ok {
		rows := render.ParseTableData(raw, cfg.Table.Columns)
		content.TableHTML = render.BuildTableHTML(rows, cfg.Table.Columns)
		content.TableMD = render.BuildTableMarkdown(rows, cfg.Table.Columns)
	}

	content.Sections = make([]string, len(cfg.Sections))
	for i := range cfg.Sections {
		content.Sections[i] = results[models.SectionTaskName(i)]
	}

	return content
}

// GenerateDocument builds all prompts, runs them as one concurrent
// batch, and renders the assembled document in the configured output
// format. On any task failure nothing is returned; there is no partial
// document output.
func (g *Generator) GenerateDocument(ctx context.Context, cfg *models.ContentConfig, apiKey string) (string, error) {
	_, document, err := g.Generate(ctx, cfg, apiKey)
	return document, err
}

// Generate is GenerateDocument plus the assembled content, for callers
// that feed additional exporters.
func (g *Generator) Generate(ctx context.Context, cfg *models.ContentConfig, apiKey string) (models.GeneratedContent, string, error) {
	tasks := BuildTasks(cfg)

	g.logger.Info().
		Int("tasks", len(tasks)).
		Str("model", cfg.Model).
		Str("output", cfg.Output).
		Msg("Starting content generation batch")

	service := g.newService(apiKey, cfg)
	if err := service.Open(); err != nil {
		return models.GeneratedContent{}, "", err
	}
	defer service.Close()

	var completed atomic.Int64
	total := len(tasks)
	batch := completion.NewBatch(service,
		completion.WithBatchLogger(g.logger),
		completion.WithProgress(func() {
			g.logger.Info().
				Int64("completed", completed.Add(1)).
				Int("total", total).
				Msg("Generation task completed")
		}),
	)

	results, err := batch.Run(ctx, tasks, cfg.SystemPrompt)
	if err != nil {
		return models.GeneratedContent{}, "", err
	}

	content := AssembleContent(cfg, results)
	document := render.BuildDocument(cfg.Title, content, cfg.Headings(), cfg.SEO.AllKeywords(), cfg.Output)

	g.logger.Info().
		Int("chars", len(document)).
		Msg("Document assembled")

	return content, document, nil
}
