package completion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendCompletionRequestSuccess(t *testing.T) {
	var received map[string]any
	var authorization string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		authorization = request.Header.Get("Authorization")
		if err := json.NewDecoder(request.Body).Decode(&received); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		writer.Header().Set("Content-Type", "application/json")
		payload := map[string]any{
			"choices": []any{
				map[string]any{
					"message": map[string]any{
						"content": "\n\nBook A, Book B",
						"role":    "assistant",
					},
					"finish_reason": "stop",
				},
			},
		}
		if err := json.NewEncoder(writer).Encode(payload); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer server.Close()

	client := Client{HTTPBaseURL: server.URL}
	result, err := client.SendCompletionRequest(context.Background(), "sk-test", "recommend something", "model-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ResponseMessage != "\n\nBook A, Book B" {
		t.Fatalf("expected raw message preserved, got %q", result.ResponseMessage)
	}
	if result.Reason != "stop" {
		t.Fatalf("expected finish reason stop, got %q", result.Reason)
	}
	if authorization != "Bearer sk-test" {
		t.Fatalf("expected bearer credential, got %q", authorization)
	}
	if received["model"] != "model-a" {
		t.Fatalf("expected model model-a in request, got %v", received["model"])
	}
	if received["max_completion_tokens"] != float64(MaxTokens) {
		t.Fatalf("expected max_completion_tokens %d, got %v", MaxTokens, received["max_completion_tokens"])
	}
}

func TestSendCompletionRequestLengthFinishReason(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		payload := map[string]any{
			"choices": []any{
				map[string]any{
					"message": map[string]any{
						"content": "Book A, Book B, Boo",
						"role":    "assistant",
					},
					"finish_reason": "length",
				},
			},
		}
		if err := json.NewEncoder(writer).Encode(payload); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer server.Close()

	client := Client{HTTPBaseURL: server.URL}
	result, err := client.SendCompletionRequest(context.Background(), "sk-test", "prompt", "model-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Reason != TruncationReason {
		t.Fatalf("expected truncation reason, got %q", result.Reason)
	}
}

func TestSendCompletionRequestStatusError(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
	}{
		{name: "unauthorized", statusCode: http.StatusUnauthorized},
		{name: "too many requests", statusCode: http.StatusTooManyRequests},
		{name: "server error", statusCode: http.StatusInternalServerError},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(testCase.statusCode)
				_, _ = writer.Write([]byte(`{"error":{"message":"nope"}}`))
			}))
			defer server.Close()

			client := Client{HTTPBaseURL: server.URL}
			_, err := client.SendCompletionRequest(context.Background(), "sk-test", "prompt", "model-a")
			if err == nil {
				t.Fatalf("expected error for status %d", testCase.statusCode)
			}
			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("expected *StatusError, got %T: %v", err, err)
			}
			if statusErr.StatusCode != testCase.statusCode {
				t.Fatalf("expected status %d, got %d", testCase.statusCode, statusErr.StatusCode)
			}
			if !strings.Contains(statusErr.Error(), "nope") {
				t.Fatalf("expected body preview in error, got %q", statusErr.Error())
			}
		})
	}
}

func TestSendCompletionRequestNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := Client{HTTPBaseURL: server.URL}
	_, err := client.SendCompletionRequest(context.Background(), "sk-test", "prompt", "model-a")
	if err == nil {
		t.Fatalf("expected error for empty choices")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Fatalf("empty choices should not be a status error: %v", err)
	}
}
