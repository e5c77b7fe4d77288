package client

import (
	"slices"
	"strings"
	"time"

	// Packages
	"github.com/mutablelogic/go-scribe/pkg/params"
	"github.com/mutablelogic/go-scribe/pkg/schema"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt sets a transcription option
type Opt func(*schema.TranscriptConfig) error

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewConfig returns the transcription configuration for an API key, an
// optional audio URL and options
func NewConfig(apikey, url string, opt ...Opt) (*schema.TranscriptConfig, error) {
	cfg := &schema.TranscriptConfig{
		FileURL: url,
		APIKey:  apikey,
	}
	for _, opt := range opt {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Set the speech model (best, nano)
func OptSpeechModel(v string) Opt {
	return func(cfg *schema.TranscriptConfig) error {
		if v == "" {
			return nil
		}
		model := schema.SpeechModel(v)
		if !slices.Contains(schema.SpeechModels, model) {
			return httpresponse.ErrBadRequest.Withf("speech model %q not supported", v)
		}
		cfg.SpeechSettings.SpeechModel = model
		return nil
	}
}

// Words or phrases to boost the likelihood of
func OptWordBoost(words ...string) Opt {
	return func(cfg *schema.TranscriptConfig) error {
		for _, word := range words {
			if word = strings.TrimSpace(word); word != "" {
				cfg.SpeechSettings.WordBoost = append(cfg.SpeechSettings.WordBoost, word)
			}
		}
		return nil
	}
}

// Mask profanity in the transcript
func OptFilterProfanity() Opt {
	return func(cfg *schema.TranscriptConfig) error {
		cfg.SpeechSettings.FilterProfanity = true
		return nil
	}
}

// Transcribe only part of the audio. A zero end transcribes to the end.
func OptAudioRange(start, end time.Duration) Opt {
	return func(cfg *schema.TranscriptConfig) error {
		if start < 0 || end < 0 || (end > 0 && end < start) {
			return httpresponse.ErrBadRequest.Withf("invalid audio range %v to %v", start, end)
		}
		cfg.SpeechSettings.AudioStartFrom = uint64(start.Milliseconds())
		cfg.SpeechSettings.AudioEndAt = uint64(end.Milliseconds())
		return nil
	}
}

// Summarize the transcript with a summary model and type. Empty values use
// the default model and its first supported type.
func OptSummarization(model, typ string) Opt {
	return func(cfg *schema.TranscriptConfig) error {
		preset := params.PresetFor(schema.SummaryModel(model))
		if model != "" && preset.Model != schema.SummaryModel(model) {
			return httpresponse.ErrBadRequest.Withf("summary model %q not supported", model)
		}
		summaryType := schema.SummaryType(typ)
		if typ == "" {
			summaryType = preset.Types[0]
		} else if !preset.Supports(summaryType) {
			return httpresponse.ErrBadRequest.Withf("summary type %q not supported by %q", typ, preset.Model)
		}
		cfg.AudioIntelligence = schema.AudioIntelligence{
			Summarization: true,
			SummaryType:   summaryType,
			SummaryModel:  preset.Model,
		}
		return nil
	}
}

// Transcribe each channel of stereo audio separately
func OptDualChannel() Opt {
	return func(cfg *schema.TranscriptConfig) error {
		cfg.SpeechSettings.DualChannel = true
		return nil
	}
}
