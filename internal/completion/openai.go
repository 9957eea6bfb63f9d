package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const chatCompletionsPath = "/chat/completions"

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	HTTPBaseURL string
	HTTPClient  *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	MaxCompletionTokens int           `json:"max_completion_tokens,omitempty"`
}

type chatMessageResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionChoice struct {
	Message      chatMessageResponse `json:"message"`
	FinishReason string              `json:"finish_reason"`
}

type chatCompletionResponse struct {
	Choices []chatCompletionChoice `json:"choices"`
}

func truncateForLog(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}

// SendCompletionRequest posts a single-message chat completion and returns the
// first choice. Non-2xx statuses surface as *StatusError so callers can map
// auth and quota failures to the right user-facing message.
func (c Client) SendCompletionRequest(ctx context.Context, credential string, prompt string, model string) (Result, error) {
	requestPayload := chatCompletionRequest{
		Model:               model,
		Messages:            []chatMessage{{Role: "user", Content: prompt}},
		MaxCompletionTokens: MaxTokens,
	}
	requestBytes, marshalErr := json.Marshal(requestPayload)
	if marshalErr != nil {
		return Result{}, marshalErr
	}
	httpRequest, buildErr := http.NewRequestWithContext(ctx, http.MethodPost, c.HTTPBaseURL+chatCompletionsPath, bytes.NewReader(requestBytes))
	if buildErr != nil {
		return Result{}, buildErr
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("Authorization", "Bearer "+credential)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	httpResponse, httpErr := httpClient.Do(httpRequest)
	if httpErr != nil {
		return Result{}, httpErr
	}
	defer func(closer io.ReadCloser) { _ = closer.Close() }(httpResponse.Body)

	bodyBytes, readErr := io.ReadAll(httpResponse.Body)
	if readErr != nil {
		return Result{}, readErr
	}
	bodyPreview := truncateForLog(string(bodyBytes), 512)

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		return Result{}, &StatusError{StatusCode: httpResponse.StatusCode, BodyPreview: bodyPreview}
	}

	var completionPayload chatCompletionResponse
	if decodeErr := json.Unmarshal(bodyBytes, &completionPayload); decodeErr != nil {
		return Result{}, fmt.Errorf("decode chat completion: %w (body=%s)", decodeErr, bodyPreview)
	}
	if len(completionPayload.Choices) == 0 {
		return Result{}, fmt.Errorf("chat completion returned no choices (status=%d body=%s)", httpResponse.StatusCode, bodyPreview)
	}

	choice := completionPayload.Choices[0]
	return Result{ResponseMessage: choice.Message.Content, Reason: choice.FinishReason}, nil
}
