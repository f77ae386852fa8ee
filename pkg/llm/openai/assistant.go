package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/rs/zerolog/log"
)

// Parser runs the provider-side file-search extraction workflow: upload the
// document, bind it to a one-shot assistant through a vector store, run one
// user turn and read back the assistant reply. Every resource created for
// the request is released before ParseDocument returns.
type Parser struct {
	client       *Client
	Model        string
	PollInterval time.Duration
	PollTimeout  time.Duration
}

// NewParser wraps a Client for the assistants workflow. Zero durations fall
// back to a 1s interval and a 120s budget.
func NewParser(c *Client, model string, pollInterval, pollTimeout time.Duration) *Parser {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	if pollTimeout <= 0 {
		pollTimeout = 120 * time.Second
	}
	return &Parser{client: c, Model: model, PollInterval: pollInterval, PollTimeout: pollTimeout}
}

type idResponse struct {
	ID string `json:"id"`
}

type statusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type threadMessage struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content []struct {
		Type string `json:"type"`
		Text struct {
			Value string `json:"value"`
		} `json:"text"`
	} `json:"content"`
}

type messageList struct {
	Data []threadMessage `json:"data"`
}

// ParseDocument implements llm.DocumentParser.
func (p *Parser) ParseDocument(ctx context.Context, filename, mimeType string, data []byte, instructions, userTurn string) (string, error) {
	deadline := time.Now().Add(p.PollTimeout)

	fileID, err := p.uploadFile(ctx, filename, mimeType, data)
	if err != nil {
		return "", fmt.Errorf("upload file: %w", err)
	}
	defer p.release(ctx, http.MethodDelete, "/files/"+fileID)

	var assistant idResponse
	err = p.client.doJSON(ctx, http.MethodPost, "/assistants", map[string]any{
		"name":         "Resume Parser",
		"instructions": instructions,
		"model":        p.Model,
		"tools":        []map[string]string{{"type": "file_search"}},
	}, &assistant)
	if err != nil {
		return "", fmt.Errorf("create assistant: %w", err)
	}
	defer p.release(ctx, http.MethodDelete, "/assistants/"+assistant.ID)

	var store idResponse
	err = p.client.doJSON(ctx, http.MethodPost, "/vector_stores", map[string]any{
		"name": "Resume Store",
	}, &store)
	if err != nil {
		return "", fmt.Errorf("create vector store: %w", err)
	}
	defer p.release(ctx, http.MethodDelete, "/vector_stores/"+store.ID)

	err = p.client.doJSON(ctx, http.MethodPost, "/vector_stores/"+store.ID+"/files", map[string]any{
		"file_id": fileID,
	}, nil)
	if err != nil {
		return "", fmt.Errorf("attach file to vector store: %w", err)
	}

	// Wait until the provider has indexed the file.
	err = p.poll(ctx, deadline, "file processing", func(ctx context.Context) (string, error) {
		var st statusResponse
		if err := p.client.doJSON(ctx, http.MethodGet, "/vector_stores/"+store.ID+"/files/"+fileID, nil, &st); err != nil {
			return "", err
		}
		return st.Status, nil
	})
	if err != nil {
		return "", err
	}

	err = p.client.doJSON(ctx, http.MethodPost, "/assistants/"+assistant.ID, map[string]any{
		"tool_resources": map[string]any{
			"file_search": map[string]any{"vector_store_ids": []string{store.ID}},
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("bind vector store: %w", err)
	}

	var thread idResponse
	if err := p.client.doJSON(ctx, http.MethodPost, "/threads", map[string]any{}, &thread); err != nil {
		return "", fmt.Errorf("create thread: %w", err)
	}

	err = p.client.doJSON(ctx, http.MethodPost, "/threads/"+thread.ID+"/messages", map[string]any{
		"role":    "user",
		"content": userTurn,
	}, nil)
	if err != nil {
		return "", fmt.Errorf("post message: %w", err)
	}

	var run statusResponse
	err = p.client.doJSON(ctx, http.MethodPost, "/threads/"+thread.ID+"/runs", map[string]any{
		"assistant_id": assistant.ID,
	}, &run)
	if err != nil {
		return "", fmt.Errorf("create run: %w", err)
	}

	err = p.poll(ctx, deadline, "run", func(ctx context.Context) (string, error) {
		var st statusResponse
		if err := p.client.doJSON(ctx, http.MethodGet, "/threads/"+thread.ID+"/runs/"+run.ID, nil, &st); err != nil {
			return "", err
		}
		return st.Status, nil
	})
	if err != nil {
		return "", err
	}

	var messages messageList
	if err := p.client.doJSON(ctx, http.MethodGet, "/threads/"+thread.ID+"/messages", nil, &messages); err != nil {
		return "", fmt.Errorf("list messages: %w", err)
	}
	for _, msg := range messages.Data {
		if msg.Role != "assistant" {
			continue
		}
		for _, part := range msg.Content {
			if part.Type == "text" {
				return part.Text.Value, nil
			}
		}
	}
	return "", errors.New("no response from assistant")
}

// poll re-reads a status field until it reaches a terminal state or the
// budget runs out. "completed" is the success state; failed, cancelled and
// expired are terminal failures.
func (p *Parser) poll(ctx context.Context, deadline time.Time, what string, fetch func(ctx context.Context) (string, error)) error {
	ticker := time.NewTicker(p.PollInterval)
	defer ticker.Stop()
	for {
		status, err := fetch(ctx)
		if err != nil {
			return err
		}
		switch status {
		case "completed":
			return nil
		case "failed", "cancelled", "expired":
			return fmt.Errorf("%s failed with status: %s", what, status)
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%s timed out after %s (last status: %s)", what, p.PollTimeout, status)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// release deletes one provider-side resource. It runs on every exit path,
// outlives request cancellation, and a failure is only logged so it never
// masks the primary result or error.
func (p *Parser) release(ctx context.Context, method, path string) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 15*time.Second)
	defer cancel()
	if err := p.client.doJSON(cctx, method, path, nil, nil); err != nil {
		log.Warn().Err(err).Str("resource", path).Msg("openai cleanup failed")
	}
}

// uploadFile sends the document to the provider files endpoint with
// purpose=assistants and returns the file ID.
func (p *Parser) uploadFile(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
	if p.client.APIKey == "" {
		return "", errors.New("openai api key is empty")
	}
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("purpose", "assistants"); err != nil {
		return "", err
	}
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	hdr.Set("Content-Type", mimeType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.client.BaseURL+"/files", &buf)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+p.client.APIKey)

	resp, err := p.client.httpDo.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return "", fmt.Errorf("openai http %d on /files: %v", resp.StatusCode, errMap)
	}
	var out idResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.ID, nil
}
