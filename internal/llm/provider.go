package llm

import "context"

// Provider is the core abstraction for chat completion.
// Consumers call Complete with an ordered message list and receive the
// generated text of a single completion.
type Provider interface {
	// Complete sends the assembled conversation to the model and returns
	// the generated text. No retry is attempted; transient failures are
	// surfaced to the caller as typed errors.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the conversation: expanded history plus the current
	// user message, in order.
	Messages []Message

	// Sampling controls generation parameters for this request.
	Sampling Sampling
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Sampling holds generation parameters passed through to the provider.
type Sampling struct {
	Temperature      float32
	MaxTokens        int
	TopP             float32
	FrequencyPenalty float32
	PresencePenalty  float32
}

// Response holds the model's output.
type Response struct {
	// Content is the generated text of the first completion choice.
	Content string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
