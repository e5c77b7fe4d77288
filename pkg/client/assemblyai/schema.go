package assemblyai

import (
	"encoding/json"
	"io"

	// Packages
	"github.com/mutablelogic/go-scribe/pkg/schema"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

// TranscriptRequest is the body of a transcript submission
type TranscriptRequest struct {
	AudioURL        string              `json:"audio_url"`
	SpeechModel     schema.SpeechModel  `json:"speech_model,omitempty"`
	WordBoost       []string            `json:"word_boost,omitempty"`
	BoostParam      *string             `json:"boost_param,omitempty"`
	FilterProfanity bool                `json:"filter_profanity"`
	AudioStartFrom  uint64              `json:"audio_start_from,omitempty"`
	AudioEndAt      *uint64             `json:"audio_end_at,omitempty"`
	Summarization   *bool               `json:"summarization,omitempty"`
	SummaryType     schema.SummaryType  `json:"summary_type,omitempty"`
	SummaryModel    schema.SummaryModel `json:"summary_model,omitempty"`
	Punctuate       bool                `json:"punctuate"`
	FormatText      bool                `json:"format_text"`
	SpeakerLabels   *bool               `json:"speaker_labels,omitempty"`
	DualChannel     *bool               `json:"dual_channel,omitempty"`
}

// Transcript is the transcript resource, as returned on submission and
// while polling
type Transcript struct {
	Id            string          `json:"id"`
	Status        string          `json:"status"`
	AudioURL      string          `json:"audio_url,omitempty"`
	Text          string          `json:"text,omitempty"`
	Summary       string          `json:"summary,omitempty"`
	AudioDuration float64         `json:"audio_duration,omitempty"` // seconds
	Utterances    []*Utterance    `json:"utterances,omitempty"`
	Error         string          `json:"error,omitempty"`
	Raw           json.RawMessage `json:"-"`
}

type Utterance struct {
	Speaker    string  `json:"speaker"`
	Start      int64   `json:"start"` // milliseconds
	End        int64   `json:"end"`   // milliseconds
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence,omitempty"`
}

type UploadResponse struct {
	URL string `json:"upload_url"`
}

type LemurResponse struct {
	RequestId string `json:"request_id,omitempty"`
	Response  string `json:"response"`
}

/////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Endpoint       = "https://api.assemblyai.com/"
	UploadPath     = "v2/upload"
	TranscriptPath = "v2/transcript"
	LemurPath      = "lemur/v3/generate"
)

const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

/////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTranscriptRequest returns the submission body for a derived request,
// with the audio replaced by a fetchable URL
func NewTranscriptRequest(url string, req *schema.ProviderRequest) TranscriptRequest {
	req = req.Copy()
	return TranscriptRequest{
		AudioURL:        url,
		SpeechModel:     req.SpeechModel,
		WordBoost:       req.WordBoost,
		BoostParam:      req.BoostParam,
		FilterProfanity: req.FilterProfanity,
		AudioStartFrom:  req.AudioStartFrom,
		AudioEndAt:      req.AudioEndAt,
		Summarization:   req.Summarization,
		SummaryType:     req.SummaryType,
		SummaryModel:    req.SummaryModel,
		Punctuate:       req.Punctuate,
		FormatText:      req.FormatText,
		SpeakerLabels:   req.SpeakerLabels,
		DualChannel:     req.DualChannel,
	}
}

/////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r TranscriptRequest) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (t Transcript) String() string {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

/////////////////////////////////////////////////////////////////////////////////
// UNMARSHALL

// UnmarshalJSON decodes the transcript and keeps the provider's JSON verbatim
func (t *Transcript) UnmarshalJSON(data []byte) error {
	type transcript Transcript
	var v transcript
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = Transcript(v)
	t.Raw = append(json.RawMessage(nil), data...)

	// Return success
	return nil
}

// Unmarshal decodes a response which is not served as application/json
func (t *Transcript) Unmarshal(mimetype string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return t.UnmarshalJSON(data)
}

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Done returns true when the transcript has reached a terminal status
func (t *Transcript) Done() bool {
	return t.Status == StatusCompleted || t.Status == StatusError
}

// Pending returns true when the provider is still working on the transcript
func (t *Transcript) Pending() bool {
	return t.Status == StatusQueued || t.Status == StatusProcessing
}

// Result converts the transcript into the schema representation
func (t *Transcript) Result() *schema.Transcript {
	result := &schema.Transcript{
		Id:       t.Id,
		Status:   t.Status,
		Duration: schema.SecToTimestamp(t.AudioDuration),
		Text:     t.Text,
		Summary:  t.Summary,
		Segments: make([]*schema.Segment, 0, len(t.Utterances)),
		Error:    t.Error,
		Raw:      t.Raw,
	}
	for i, u := range t.Utterances {
		result.Segments = append(result.Segments, &schema.Segment{
			Id:      int32(i + 1),
			Start:   schema.MsToTimestamp(u.Start),
			End:     schema.MsToTimestamp(u.End),
			Speaker: u.Speaker,
			Text:    u.Text,
		})
	}
	return result
}
