package schema

import (
	"encoding/json"
	"net/url"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// ProviderRequest is the derived transcription request. Field order matches
// the order in which parameters are applied, and is the order in which they
// are serialized.
type ProviderRequest struct {
	Audio           string       `json:"audio"`
	SpeechModel     SpeechModel  `json:"speech_model"`
	WordBoost       []string     `json:"word_boost,omitempty"`
	BoostParam      *string      `json:"boost_param,omitempty"`
	FilterProfanity bool         `json:"filter_profanity"`
	AudioStartFrom  uint64       `json:"audio_start_from"`
	AudioEndAt      *uint64      `json:"audio_end_at,omitempty"`
	Summarization   *bool        `json:"summarization,omitempty"`
	SummaryType     SummaryType  `json:"summary_type,omitempty"`
	SummaryModel    SummaryModel `json:"summary_model,omitempty"`
	Punctuate       bool         `json:"punctuate"`
	FormatText      bool         `json:"format_text"`
	SpeakerLabels   *bool        `json:"speaker_labels,omitempty"`
	DualChannel     *bool        `json:"dual_channel,omitempty"`
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	BoostParamHigh = "high"
)

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ProviderRequest) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Copy returns a deep copy of the request
func (r *ProviderRequest) Copy() *ProviderRequest {
	dup := *r
	if r.WordBoost != nil {
		dup.WordBoost = append([]string(nil), r.WordBoost...)
	}
	dup.BoostParam = copyPtr(r.BoostParam)
	dup.AudioEndAt = copyPtr(r.AudioEndAt)
	dup.Summarization = copyPtr(r.Summarization)
	dup.SpeakerLabels = copyPtr(r.SpeakerLabels)
	dup.DualChannel = copyPtr(r.DualChannel)
	return &dup
}

// HasSummary returns true if the request asks for a summary
func (r *ProviderRequest) HasSummary() bool {
	return r.Summarization != nil && *r.Summarization
}

// IsRemote returns true if the audio is a http or https URL
func IsRemote(audio string) bool {
	u, err := url.Parse(audio)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	dup := *v
	return &dup
}
