package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestMapOpenAIError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want any
	}{
		{
			name: "401 maps to unauthorized",
			err:  &openai.APIError{HTTPStatusCode: http.StatusUnauthorized},
			want: &ErrUnauthorized{},
		},
		{
			name: "429 maps to rate limit",
			err:  &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests},
			want: &ErrRateLimit{},
		},
		{
			name: "500 maps to unavailable",
			err:  &openai.APIError{HTTPStatusCode: http.StatusInternalServerError},
			want: &ErrProviderUnavailable{},
		},
		{
			name: "503 maps to unavailable",
			err:  &openai.APIError{HTTPStatusCode: http.StatusServiceUnavailable},
			want: &ErrProviderUnavailable{},
		},
		{
			name: "deadline exceeded maps to timeout",
			err:  context.DeadlineExceeded,
			want: &ErrTimeout{},
		},
		{
			name: "timeout substring maps to timeout",
			err:  fmt.Errorf("Post \"https://openrouter.ai\": net/http: request timeout"),
			want: &ErrTimeout{},
		},
		{
			name: "unknown maps to unavailable",
			err:  fmt.Errorf("connection refused"),
			want: &ErrProviderUnavailable{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapOpenAIError(tt.err)

			switch tt.want.(type) {
			case *ErrUnauthorized:
				var e *ErrUnauthorized
				if !errors.As(got, &e) {
					t.Fatalf("expected ErrUnauthorized, got %T", got)
				}
			case *ErrRateLimit:
				var e *ErrRateLimit
				if !errors.As(got, &e) {
					t.Fatalf("expected ErrRateLimit, got %T", got)
				}
			case *ErrTimeout:
				var e *ErrTimeout
				if !errors.As(got, &e) {
					t.Fatalf("expected ErrTimeout, got %T", got)
				}
			case *ErrProviderUnavailable:
				var e *ErrProviderUnavailable
				if !errors.As(got, &e) {
					t.Fatalf("expected ErrProviderUnavailable, got %T", got)
				}
			}
		})
	}
}

func TestBuildOpenAIMessages(t *testing.T) {
	req := Request{
		System: "sistema",
		Messages: []Message{
			{Role: RoleUser, Content: "klausimas"},
			{Role: RoleAssistant, Content: "atsakymas"},
			{Role: RoleUser, Content: "dar vienas"},
		},
	}

	msgs := buildOpenAIMessages(req)
	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem || msgs[0].Content != "sistema" {
		t.Errorf("expected system message first, got %+v", msgs[0])
	}
	if msgs[2].Role != openai.ChatMessageRoleAssistant {
		t.Errorf("expected assistant role at index 2, got %q", msgs[2].Role)
	}
}
