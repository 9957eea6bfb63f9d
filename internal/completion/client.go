package completion

import (
	"context"
	"fmt"
)

// MaxTokens caps the completion length requested from the API. The form
// controller references this value in the warning shown when a response is
// truncated.
const MaxTokens = 1200

// TruncationReason is the finish reason the API reports when the response was
// cut off at the token limit.
const TruncationReason = "length"

// Result carries the usable parts of a completion payload. ResponseMessage is
// returned exactly as the API produced it, including any leading-whitespace
// artifacts; normalization is the caller's concern.
type Result struct {
	ResponseMessage string
	Reason          string
}

// Requester performs a single completion call against the API.
type Requester interface {
	SendCompletionRequest(ctx context.Context, credential string, prompt string, model string) (Result, error)
}

// StatusError reports a non-2xx HTTP response from the completion endpoint.
type StatusError struct {
	StatusCode  int
	BodyPreview string
}

func (statusError *StatusError) Error() string {
	return fmt.Sprintf("completion http error %d: %s", statusError.StatusCode, statusError.BodyPreview)
}
