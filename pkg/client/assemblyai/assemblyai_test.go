package assemblyai_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-scribe/pkg/client/assemblyai"
	"github.com/mutablelogic/go-scribe/pkg/schema"
	"github.com/mutablelogic/go-server/pkg/types"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Client_001(t *testing.T) {
	assert := assert.New(t)
	var polls atomic.Int32
	var submitted map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/upload", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("secret", r.Header.Get("authorization"))
		assert.Equal(http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.Equal("RIFF", string(body))
		writeJSON(w, map[string]any{"upload_url": "https://cdn.example.com/u/1"})
	})
	mux.HandleFunc("/v2/transcript", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("secret", r.Header.Get("authorization"))
		assert.NoError(json.NewDecoder(r.Body).Decode(&submitted))
		writeJSON(w, map[string]any{"id": "t1", "status": "queued"})
	})
	mux.HandleFunc("/v2/transcript/t1", func(w http.ResponseWriter, r *http.Request) {
		if polls.Add(1) < 2 {
			writeJSON(w, map[string]any{"id": "t1", "status": "processing"})
			return
		}
		writeJSON(w, map[string]any{
			"id":             "t1",
			"status":         "completed",
			"text":           "hello world",
			"summary":        "- hello",
			"audio_duration": 2.5,
			"utterances": []map[string]any{
				{"speaker": "A", "start": 0, "end": 1200, "text": "hello"},
				{"speaker": "B", "start": 1200, "end": 2500, "text": "world"},
			},
		})
	})
	c := newClient(t, mux)

	path := filepath.Join(t.TempDir(), "audio.wav")
	assert.NoError(os.WriteFile(path, []byte("RIFF"), 0o600))

	transcript, err := c.Transcribe(context.Background(), &schema.ProviderRequest{
		Audio:         path,
		SpeechModel:   schema.SpeechModelBest,
		Summarization: types.BoolPtr(true),
		SummaryType:   schema.SummaryTypeBullets,
		SummaryModel:  schema.SummaryModelInformative,
		Punctuate:     true,
		FormatText:    true,
	})
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("https://cdn.example.com/u/1", submitted["audio_url"])
	assert.NotContains(submitted, "audio")
	assert.Equal(true, submitted["summarization"])
	assert.Equal(assemblyai.StatusCompleted, transcript.Status)
	assert.Equal(int32(2), polls.Load())

	result := transcript.Result()
	assert.Equal("hello world", result.Text)
	assert.Equal("- hello", result.Summary)
	assert.Equal(schema.Timestamp(2500*time.Millisecond), result.Duration)
	if assert.Len(result.Segments, 2) {
		assert.Equal("B", result.Segments[1].Speaker)
		assert.Equal(schema.Timestamp(1200*time.Millisecond), result.Segments[1].Start)
	}

	// The raw payload is kept verbatim
	var raw map[string]any
	if assert.NoError(json.Unmarshal(result.Raw, &raw)) {
		assert.Equal("t1", raw["id"])
		assert.Contains(raw, "utterances")
	}
}

func Test_Client_002(t *testing.T) {
	assert := assert.New(t)
	uploaded := false

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/upload", func(w http.ResponseWriter, r *http.Request) {
		uploaded = true
	})
	mux.HandleFunc("/v2/transcript", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"id": "t2", "status": "error", "error": "unsupported media"})
	})
	c := newClient(t, mux)

	// Remote audio is not uploaded, and a failed transcript is not an error
	transcript, err := c.Transcribe(context.Background(), &schema.ProviderRequest{
		Audio: "https://example.com/audio.mp3",
	})
	if assert.NoError(err) {
		assert.False(uploaded)
		assert.Equal(assemblyai.StatusError, transcript.Status)
		assert.Equal("unsupported media", transcript.Error)
	}
}

func Test_Client_003(t *testing.T) {
	assert := assert.New(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/transcript", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"id": "t3", "status": "queued"})
	})
	mux.HandleFunc("/v2/transcript/t3", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"id": "t3", "status": "processing"})
	})
	c := newClient(t, mux)

	// Polling stops when the context is cancelled
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.Transcribe(ctx, &schema.ProviderRequest{Audio: "https://example.com/a.mp3"})
	assert.Error(err)
}

func Test_Client_004(t *testing.T) {
	assert := assert.New(t)
	var paths []string
	var body map[string]any

	mux := http.NewServeMux()
	handler := func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		body = nil
		assert.NoError(json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, map[string]any{"request_id": "r1", "response": "answer"})
	}
	mux.HandleFunc("/lemur/v3/generate/task", handler)
	mux.HandleFunc("/lemur/v3/generate/summary", handler)
	c := newClient(t, mux)

	req := &schema.LemurRequest{
		Type:          schema.LemurBasic,
		TranscriptIDs: []string{"t1"},
		Prompt:        "what happened?",
		FinalModel:    "anthropic/claude-3-5-sonnet",
		MaxOutputSize: 100,
	}
	resp, err := c.Task(context.Background(), req)
	if assert.NoError(err) {
		assert.Equal("answer", resp.Response)
		assert.Equal([]any{"t1"}, body["transcript_ids"])
	}
	_, err = c.Summary(context.Background(), req)
	assert.NoError(err)
	assert.Equal([]string{"/lemur/v3/generate/task", "/lemur/v3/generate/summary"}, paths)
}

func Test_Client_005(t *testing.T) {
	assert := assert.New(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/transcript", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid API key"}`))
	})
	c := newClient(t, mux)

	_, err := c.Transcribe(context.Background(), &schema.ProviderRequest{Audio: "https://example.com/a.mp3"})
	assert.Error(err)
}

func Test_Client_006(t *testing.T) {
	assert := assert.New(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/transcript", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"id": "t6", "status": "queued"})
	})
	mux.HandleFunc("/v2/transcript/t6", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"id":         "t6",
			"status":     "completed",
			"text":       "hi",
			"confidence": 0.93,
			"words":      []map[string]any{{"text": "hi", "start": 0, "end": 400}},
		})
	})
	c := newClient(t, mux)

	// Fields the client does not model are kept in the raw transcript
	transcript, err := c.Transcribe(context.Background(), &schema.ProviderRequest{Audio: "https://example.com/a.mp3"})
	if !assert.NoError(err) {
		t.FailNow()
	}
	var raw map[string]any
	if assert.NoError(json.Unmarshal(transcript.Result().Raw, &raw)) {
		assert.Equal(0.93, raw["confidence"])
		assert.Contains(raw, "words")
		assert.Equal("hi", raw["text"])
	}
}

func Test_Client_007(t *testing.T) {
	assert := assert.New(t)
	var polls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/transcript", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"id": "t7", "status": "queued"})
	})
	mux.HandleFunc("/v2/transcript/t7", func(w http.ResponseWriter, r *http.Request) {
		polls.Add(1)
		writeJSON(w, map[string]any{"id": "t7", "status": "paused"})
	})
	c := newClient(t, mux)

	// An unknown status stops polling straight away
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := c.Transcribe(ctx, &schema.ProviderRequest{Audio: "https://example.com/a.mp3"})
	if assert.Error(err) {
		assert.Contains(err.Error(), "paused")
		assert.NoError(ctx.Err())
	}
	assert.Equal(int32(1), polls.Load())

	// So does a missing status
	_, err = c.Wait(ctx, &assemblyai.Transcript{Id: "t7"})
	assert.Error(err)
	assert.Equal(int32(1), polls.Load())
}

func Test_Client_008(t *testing.T) {
	assert := assert.New(t)

	// Decoding keeps a copy of the payload
	data := []byte(`{"id":"t8","status":"completed","text":"hi","language_code":"en"}`)
	var transcript assemblyai.Transcript
	if assert.NoError(json.Unmarshal(data, &transcript)) {
		assert.Equal("t8", transcript.Id)
		assert.Equal("hi", transcript.Text)
		assert.JSONEq(string(data), string(transcript.Raw))
	}
	data[2] = 'X'
	assert.Contains(string(transcript.Raw), `"id"`)

	// Responses which are not served as application/json decode the same way
	var other assemblyai.Transcript
	if assert.NoError(other.Unmarshal("text/plain", bytes.NewReader([]byte(`{"id":"t9","status":"queued"}`)))) {
		assert.Equal("t9", other.Id)
		assert.True(other.Pending())
		assert.False(other.Done())
		assert.JSONEq(`{"id":"t9","status":"queued"}`, string(other.Raw))
	}
}

///////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func newClient(t *testing.T, handler http.Handler) *assemblyai.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c, err := assemblyai.New("secret", client.OptEndpoint(server.URL))
	if err != nil {
		t.Fatal(err)
	}
	c.SetPollInterval(5 * time.Millisecond)
	return c
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
