package resume

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/poojan0106/mini-parser/pkg/llm"
)

// ParseService describes the application use cases for resume parsing.
// Every call runs its full pipeline on the request and keeps no state.
type ParseService interface {
	// ParseText extracts text locally and asks the chat model for the
	// nested schema.
	ParseText(ctx context.Context, data []byte, fileType string) (string, error)
	// ParseLegacy extracts text locally and asks for the legacy flat shape.
	ParseLegacy(ctx context.Context, data []byte, fileType string) (string, error)
	// ParseDocument hands the raw blob to the provider-side file-search
	// workflow; no local extraction happens.
	ParseDocument(ctx context.Context, data []byte, fileType string) (string, error)
}

type parseService struct {
	chat       llm.ChatModel
	legacyChat llm.ChatModel
	docs       llm.DocumentParser
}

// NewParseService creates the default implementation. chat serves the
// nested schema at zero temperature, legacyChat the flat one, docs the
// document-grounded workflow.
func NewParseService(chat, legacyChat llm.ChatModel, docs llm.DocumentParser) ParseService {
	return &parseService{
		chat:       chat,
		legacyChat: legacyChat,
		docs:       docs,
	}
}

func (s *parseService) ParseText(ctx context.Context, data []byte, fileType string) (string, error) {
	text, err := ExtractText(data, fileType)
	if err != nil {
		return "", err
	}
	// The cleaned text goes into the prompt in full; the provider enforces
	// its own context limit and reports overruns as request errors.
	return s.chat.Ask(ctx, ParserPrompt, ChatUserPrompt(text))
}

func (s *parseService) ParseLegacy(ctx context.Context, data []byte, fileType string) (string, error) {
	text, err := ExtractText(data, fileType)
	if err != nil {
		return "", err
	}
	return s.legacyChat.Ask(ctx, LegacySystemPrompt, LegacyPrompt(text))
}

func (s *parseService) ParseDocument(ctx context.Context, data []byte, fileType string) (string, error) {
	ext := NormalizeFileType(fileType)
	if ext == "" {
		ext = "bin"
	}
	// Unique name per request; the provider keys uploads by it.
	filename := fmt.Sprintf("resume-%s.%s", uuid.New(), ext)
	return s.docs.ParseDocument(ctx, filename, MimeType(ext), data, ParserPrompt, AssistantUserTurn)
}
