package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	var gotReq chatCompletionsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": `{"skills":[]}`}},
			},
		})
	}))
	defer srv.Close()

	c := New("sk-test", srv.URL, "gpt-4o", Temp(0))
	reply, err := c.Ask(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"skills":[]}`, reply)
	assert.Equal(t, "gpt-4o", gotReq.Model)
	require.NotNil(t, gotReq.Temperature)
	assert.Equal(t, float32(0), *gotReq.Temperature)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
}

func TestAskWithoutTemperatureOmitsField(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer srv.Close()

	c := New("sk-test", srv.URL, "gpt-3.5-turbo-1106", nil)
	_, err := c.Ask(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.NotContains(t, raw, "temperature")
}

func TestAskErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	c := New("sk-test", srv.URL, "gpt-4o", nil)
	_, err := c.Ask(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")

	// Missing key fails locally before any request.
	noKey := New("", srv.URL, "gpt-4o", nil)
	_, err = noKey.Ask(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}

// assistantFixture fakes the provider side of the file-search workflow.
type assistantFixture struct {
	mu        sync.Mutex
	runStatus string
	deleted   []string
}

func (f *assistantFixture) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	reply := func(w http.ResponseWriter, v any) {
		_ = json.NewEncoder(w).Encode(v)
	}
	mux.HandleFunc("POST /files", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "assistants", r.FormValue("purpose"))
		_, hdr, err := r.FormFile("file")
		if assert.NoError(t, err) {
			assert.NotEmpty(t, hdr.Filename)
		}
		reply(w, map[string]string{"id": "file-1"})
	})
	mux.HandleFunc("POST /assistants", func(w http.ResponseWriter, r *http.Request) {
		reply(w, map[string]string{"id": "asst-1"})
	})
	mux.HandleFunc("POST /assistants/asst-1", func(w http.ResponseWriter, r *http.Request) {
		reply(w, map[string]string{"id": "asst-1"})
	})
	mux.HandleFunc("POST /vector_stores", func(w http.ResponseWriter, r *http.Request) {
		reply(w, map[string]string{"id": "vs-1"})
	})
	mux.HandleFunc("POST /vector_stores/vs-1/files", func(w http.ResponseWriter, r *http.Request) {
		reply(w, map[string]string{"id": "vsf-1", "status": "in_progress"})
	})
	mux.HandleFunc("GET /vector_stores/vs-1/files/file-1", func(w http.ResponseWriter, r *http.Request) {
		reply(w, map[string]string{"id": "vsf-1", "status": "completed"})
	})
	mux.HandleFunc("POST /threads", func(w http.ResponseWriter, r *http.Request) {
		reply(w, map[string]string{"id": "thread-1"})
	})
	mux.HandleFunc("POST /threads/thread-1/messages", func(w http.ResponseWriter, r *http.Request) {
		reply(w, map[string]string{"id": "msg-1"})
	})
	mux.HandleFunc("POST /threads/thread-1/runs", func(w http.ResponseWriter, r *http.Request) {
		reply(w, map[string]string{"id": "run-1", "status": "queued"})
	})
	mux.HandleFunc("GET /threads/thread-1/runs/run-1", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		status := f.runStatus
		f.mu.Unlock()
		reply(w, map[string]string{"id": "run-1", "status": status})
	})
	mux.HandleFunc("GET /threads/thread-1/messages", func(w http.ResponseWriter, r *http.Request) {
		reply(w, map[string]any{
			"data": []map[string]any{
				{
					"id":   "msg-2",
					"role": "assistant",
					"content": []map[string]any{
						{"type": "text", "text": map[string]string{"value": `{"summary":"parsed"}`}},
					},
				},
			},
		})
	})
	mux.HandleFunc("DELETE /", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.deleted = append(f.deleted, r.URL.Path)
		f.mu.Unlock()
		reply(w, map[string]any{"deleted": true})
	})
	return mux
}

func (f *assistantFixture) deletedPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

func TestParseDocument(t *testing.T) {
	fx := &assistantFixture{runStatus: "completed"}
	srv := httptest.NewServer(fx.handler(t))
	defer srv.Close()

	p := NewParser(New("sk-test", srv.URL, "gpt-4o", nil), "gpt-4o", time.Millisecond, time.Second)
	reply, err := p.ParseDocument(context.Background(), "resume.pdf", "application/pdf",
		[]byte("%PDF-1.4"), "instructions", "user turn")
	require.NoError(t, err)
	assert.Equal(t, `{"summary":"parsed"}`, reply)

	// File, vector store and assistant are all released.
	assert.ElementsMatch(t, []string{"/files/file-1", "/vector_stores/vs-1", "/assistants/asst-1"}, fx.deletedPaths())
}

func TestParseDocumentRunFailed(t *testing.T) {
	fx := &assistantFixture{runStatus: "failed"}
	srv := httptest.NewServer(fx.handler(t))
	defer srv.Close()

	p := NewParser(New("sk-test", srv.URL, "gpt-4o", nil), "gpt-4o", time.Millisecond, time.Second)
	_, err := p.ParseDocument(context.Background(), "resume.pdf", "application/pdf",
		[]byte("%PDF-1.4"), "instructions", "user turn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed with status: failed")

	// Cleanup still runs on the failure path.
	assert.ElementsMatch(t, []string{"/files/file-1", "/vector_stores/vs-1", "/assistants/asst-1"}, fx.deletedPaths())
}

func TestParseDocumentPollTimeout(t *testing.T) {
	fx := &assistantFixture{runStatus: "in_progress"}
	srv := httptest.NewServer(fx.handler(t))
	defer srv.Close()

	p := NewParser(New("sk-test", srv.URL, "gpt-4o", nil), "gpt-4o", time.Millisecond, 50*time.Millisecond)
	_, err := p.ParseDocument(context.Background(), "resume.pdf", "application/pdf",
		[]byte("%PDF-1.4"), "instructions", "user turn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}
