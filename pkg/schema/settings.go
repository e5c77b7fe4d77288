package schema

import (
	"encoding/json"
	"strings"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// SpeechModel selects the provider's recognition model
type SpeechModel string

// SummaryModel selects the provider's summarization model
type SummaryModel string

// SummaryType is the shape of the summary the provider returns
type SummaryType string

// SpeechSettings are the user-supplied recognition options
type SpeechSettings struct {
	SpeechModel     SpeechModel `json:"speech_model,omitempty"`
	WordBoost       []string    `json:"word_boost,omitempty"`
	FilterProfanity bool        `json:"filter_profanity"`
	AudioStartFrom  uint64      `json:"audio_start_from"`       // milliseconds
	AudioEndAt      uint64      `json:"audio_end_at,omitempty"` // milliseconds, zero means the end of the media
	DualChannel     bool        `json:"dual_channel,omitempty"`
}

// AudioIntelligence are the user-supplied summarization options
type AudioIntelligence struct {
	Summarization bool         `json:"summarization"`
	SummaryType   SummaryType  `json:"summary_type,omitempty"`
	SummaryModel  SummaryModel `json:"summary_model,omitempty"`
}

// TranscriptConfig is the configuration submitted alongside the audio
type TranscriptConfig struct {
	FileURL           string            `json:"fileUrl,omitempty"`
	APIKey            string            `json:"apiKey"`
	SpeechSettings    SpeechSettings    `json:"speechSettings"`
	AudioIntelligence AudioIntelligence `json:"audioIntelligence"`
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	SpeechModelBest SpeechModel = "best"
	SpeechModelNano SpeechModel = "nano"
)

const (
	SummaryModelInformative    SummaryModel = "informative"
	SummaryModelConversational SummaryModel = "conversational"
	SummaryModelCatchy         SummaryModel = "catchy"
)

const (
	SummaryTypeBullets        SummaryType = "bullets"
	SummaryTypeBulletsVerbose SummaryType = "bullets_verbose"
	SummaryTypeGist           SummaryType = "gist"
	SummaryTypeHeadline       SummaryType = "headline"
	SummaryTypeParagraph      SummaryType = "paragraph"
)

var (
	SpeechModels = []SpeechModel{SpeechModelBest, SpeechModelNano}
)

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s SpeechSettings) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (a AudioIntelligence) String() string {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

// String omits the API key
func (c TranscriptConfig) String() string {
	c.APIKey = redact(c.APIKey)
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Boost returns the word boost list as an ordered set: entries are trimmed,
// empty entries are dropped and only the first of any duplicate is kept.
func (s SpeechSettings) Boost() []string {
	var result []string
	seen := make(map[string]struct{}, len(s.WordBoost))
	for _, word := range s.WordBoost {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		if _, exists := seen[word]; exists {
			continue
		}
		seen[word] = struct{}{}
		result = append(result, word)
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func redact(key string) string {
	if key == "" {
		return ""
	}
	return "********"
}
