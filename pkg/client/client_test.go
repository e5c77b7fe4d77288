package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	// Packages
	"github.com/mutablelogic/go-scribe/pkg/client"
	"github.com/mutablelogic/go-scribe/pkg/schema"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Client_001(t *testing.T) {
	assert := assert.New(t)
	var cfg schema.TranscriptConfig
	var data string

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/api/upload", r.URL.Path)
		assert.NoError(r.ParseMultipartForm(1 << 20))
		assert.NoError(json.Unmarshal([]byte(r.FormValue("assemblyai")), &cfg))
		if f, _, err := r.FormFile("file"); assert.NoError(err) {
			body, _ := io.ReadAll(f)
			data = string(body)
		}
		writeJSON(w, schema.TranscriptResponse{
			Transcript:  json.RawMessage(`{"id":"t1","status":"completed","text":"hello","utterances":[{"speaker":"A","start":0,"end":500,"text":"hello"}]}`),
			CodeSnippet: "snippet",
		})
	})

	resp, err := c.Transcribe(context.Background(), "key", strings.NewReader("RIFF"),
		client.OptSpeechModel("nano"),
		client.OptWordBoost("scribe", " ", "go"),
		client.OptFilterProfanity(),
		client.OptAudioRange(time.Second, 2*time.Second),
		client.OptSummarization("catchy", ""),
	)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("RIFF", data)
	assert.Equal("key", cfg.APIKey)
	assert.Equal(schema.SpeechModelNano, cfg.SpeechSettings.SpeechModel)
	assert.Equal([]string{"scribe", "go"}, cfg.SpeechSettings.WordBoost)
	assert.True(cfg.SpeechSettings.FilterProfanity)
	assert.Equal(uint64(1000), cfg.SpeechSettings.AudioStartFrom)
	assert.Equal(uint64(2000), cfg.SpeechSettings.AudioEndAt)
	assert.Equal(schema.SummaryTypeHeadline, cfg.AudioIntelligence.SummaryType)

	assert.Equal("snippet", resp.CodeSnippet)
	if assert.NotNil(resp.Result) {
		assert.Equal("hello", resp.Result.Text)
		assert.Len(resp.Result.Segments, 1)
	}
}

func Test_Client_002(t *testing.T) {
	assert := assert.New(t)
	var cfg schema.TranscriptConfig
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(r.Header.Get("Content-Type"), "application/json")
		assert.NoError(json.NewDecoder(r.Body).Decode(&cfg))
		writeJSON(w, schema.TranscriptResponse{Transcript: json.RawMessage(`{"id":"t1"}`)})
	})

	_, err := c.TranscribeURL(context.Background(), "key", "https://example.com/a.mp3", client.OptDualChannel())
	if assert.NoError(err) {
		assert.Equal("https://example.com/a.mp3", cfg.FileURL)
		assert.True(cfg.SpeechSettings.DualChannel)
	}
}

func Test_Client_003(t *testing.T) {
	assert := assert.New(t)
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	})

	// Options are checked before anything is sent
	for _, opt := range []client.Opt{
		client.OptSpeechModel("huge"),
		client.OptAudioRange(2*time.Second, time.Second),
		client.OptSummarization("catchy", "bullets"),
		client.OptSummarization("unknown", ""),
	} {
		_, err := c.TranscribeURL(context.Background(), "key", "https://example.com/a.mp3", opt)
		assert.Error(err)
	}
}

func Test_Client_004(t *testing.T) {
	assert := assert.New(t)
	var req schema.SummaryEnvelope
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/api/summary", r.URL.Path)
		assert.NoError(json.NewDecoder(r.Body).Decode(&req))
		writeJSON(w, schema.SummaryResponse{Summary: "done"})
	})

	resp, err := c.Summary(context.Background(), schema.SummaryConfig{
		Type:          schema.LemurBasic,
		APIKey:        "key",
		TranscriptID:  "t1",
		Prompt:        "what happened?",
		MaxOutputSize: 100,
	})
	if assert.NoError(err) {
		assert.Equal("done", resp.Summary)
		assert.Equal("t1", req.Config.TranscriptID)
	}
}

func Test_Client_005(t *testing.T) {
	assert := assert.New(t)
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":400,"reason":"missing audio source"}`))
	})
	_, err := c.TranscribeURL(context.Background(), "key", "")
	assert.Error(err)
}

///////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func newClient(t *testing.T, fn http.HandlerFunc) *client.Client {
	server := httptest.NewServer(fn)
	t.Cleanup(server.Close)
	c, err := client.New(server.URL + "/api")
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
