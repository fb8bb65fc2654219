package completion

import (
	"context"
	"fmt"
	"sync"

	"github.com/ternarybob/arbor"

	"github.com/anilsoylu/contentforge/internal/interfaces"
	"github.com/anilsoylu/contentforge/internal/models"
)

// Batch dispatches a set of named generation tasks concurrently
// against a shared CompletionService and enforces all-or-nothing
// semantics: every task runs to completion, then the first failure in
// dispatch order fails the whole batch and all partial successes are
// discarded.
type Batch struct {
	service  interfaces.CompletionService
	logger   arbor.ILogger
	progress interfaces.ProgressFunc
}

// BatchOption configures a Batch.
type BatchOption func(*Batch)

// WithProgress registers a callback invoked once per successfully
// completed task. Callbacks fire from the task goroutines and may run
// concurrently.
func WithProgress(progress interfaces.ProgressFunc) BatchOption {
	return func(b *Batch) {
		b.progress = progress
	}
}

// WithBatchLogger sets a logger.
func WithBatchLogger(logger arbor.ILogger) BatchOption {
	return func(b *Batch) {
		b.logger = logger
	}
}

// NewBatch creates a batch orchestrator over a completion service.
func NewBatch(service interfaces.CompletionService, opts ...BatchOption) *Batch {
	b := &Batch{service: service}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// taskOutcome is one task's settled result slot. Each goroutine writes
// only its own slot, so no mutual exclusion is needed.
type taskOutcome struct {
	name    string
	content string
	err     error
}

// Run dispatches every task concurrently and waits for all of them to
// settle. Dispatch order matches task order; completion order is
// unconstrained, so results are re-keyed by task name. In-flight peers
// are not cancelled when a sibling fails; their results are simply
// discarded.
func (b *Batch) Run(ctx context.Context, tasks []models.GenerationTask, systemPrompt string) (map[string]string, error) {
	if len(tasks) == 0 {
		return map[string]string{}, nil
	}

	outcomes := make([]taskOutcome, len(tasks))

	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task models.GenerationTask) {
			defer wg.Done()
			content, err := b.service.Complete(ctx, task.Prompt, systemPrompt)
			outcomes[i] = taskOutcome{name: task.Name, content: content, err: err}
			if err == nil && b.progress != nil {
				b.progress()
			}
		}(i, task)
	}
	wg.Wait()

	results := make(map[string]string, len(tasks))
	for _, outcome := range outcomes {
		if outcome.err != nil {
			if b.logger != nil {
				b.logger.Error().
					Err(outcome.err).
					Str("task", outcome.name).
					Msg("Batch task failed, discarding all results")
			}
			return nil, fmt.Errorf("task %s: %w", outcome.name, outcome.err)
		}
		results[outcome.name] = outcome.content
	}

	return results, nil
}
