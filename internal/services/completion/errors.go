package completion

import "fmt"

// Error taxonomy for completion requests. ConnectionError and
// ResponseShapeError are retryable; any other error is also retried
// but preserved verbatim for reporting. RetriesExhaustedError is
// terminal per task and wraps the last observed failure.

// ConnectionError indicates a transport-level failure (dial, TLS,
// timeout, or non-2xx status).
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ResponseShapeError indicates the endpoint answered but the payload
// did not carry choices[0].message.content.
type ResponseShapeError struct {
	Detail string
}

func (e *ResponseShapeError) Error() string {
	return fmt.Sprintf("unexpected API response: %s", e.Detail)
}

// RetriesExhaustedError is returned after the retry ceiling. Attempts
// names the attempt count; Err is the last observed failure, which is
// representative of the earlier ones.
type RetriesExhaustedError struct {
	Attempts int
	Err      error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("API call failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RetriesExhaustedError) Unwrap() error {
	return e.Err
}
