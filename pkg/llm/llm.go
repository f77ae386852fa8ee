package llm

import "context"

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// DocumentParser runs an extraction over the raw document on the provider
// side (file search over an uploaded file) instead of locally extracted
// text. Implementations own the lifecycle of any provider-side resources
// they create for the request.
type DocumentParser interface {
	ParseDocument(ctx context.Context, filename, mimeType string, data []byte, instructions, userTurn string) (string, error)
}
