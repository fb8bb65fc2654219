package interfaces

import "context"

// ProgressFunc is invoked once per successfully completed batch task.
// It carries no data beyond "one unit completed" and must not affect
// control flow.
type ProgressFunc func()

// CompletionService defines the interface for chat-completion
// operations against a remote language-model endpoint.
type CompletionService interface {
	// Open acquires the network session. Must be called before
	// Complete; callers pair it with Close on all exit paths.
	Open() error

	// Complete issues one retrying completion request and returns the
	// generated text. systemPrompt supplies the system directive and is
	// sent verbatim.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout control
	//   - prompt: User prompt to complete
	//   - systemPrompt: System directive sent with the prompt
	//
	// Returns:
	//   - string: Completion text from the first choice
	//   - error: RetriesExhaustedError after the retry ceiling
	Complete(ctx context.Context, prompt, systemPrompt string) (string, error)

	// Close releases the underlying connections. Safe to call once
	// after all in-flight requests have settled.
	Close() error
}
