package schema

import (
	"encoding/json"
	"fmt"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// LemurType selects between a prompted task and a contextual summary
type LemurType string

// SummaryContext describes the circumstances of the recording
type SummaryContext struct {
	Happening  string `json:"happening"`
	Location   string `json:"location"`
	Additional string `json:"additional"`
}

// SummaryConfig is the user-supplied configuration for a summary job
type SummaryConfig struct {
	Type          LemurType      `json:"summary_type" validate:"required,oneof=basic custom"`
	APIKey        string         `json:"apiKey" validate:"required"`
	TranscriptID  string         `json:"transcriptId" validate:"required"`
	FinalModel    string         `json:"finalModel,omitempty"`
	Prompt        string         `json:"prompt,omitempty" validate:"required_if=Type basic"`
	Temperature   float64        `json:"temperature" validate:"gte=0,lte=1"`
	Context       SummaryContext `json:"context"`
	AnswerFormat  string         `json:"answerFormat,omitempty"`
	MaxOutputSize uint           `json:"maxOutputSize" validate:"gte=1,lte=4000"`
}

// LemurRequest is the derived summary request
type LemurRequest struct {
	Type          LemurType `json:"-"`
	TranscriptIDs []string  `json:"transcript_ids"`
	Prompt        string    `json:"prompt"`
	FinalModel    string    `json:"final_model"`
	MaxOutputSize uint      `json:"max_output_size"`
	Temperature   float64   `json:"temperature"`
	Context       *string   `json:"context,omitempty"`
	AnswerFormat  *string   `json:"answer_format,omitempty"`
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	LemurBasic  LemurType = "basic"
	LemurCustom LemurType = "custom"
)

const (
	// The label for the first field is spelled as the provider has always
	// received it
	contextFormat = "happing:%s location:%s additional:%s"
)

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

// String omits the API key
func (c SummaryConfig) String() string {
	c.APIKey = redact(c.APIKey)
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (r LemurRequest) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Flatten renders the context as a single delimited string
func (c SummaryContext) Flatten() string {
	return fmt.Sprintf(contextFormat, c.Happening, c.Location, c.Additional)
}

// Endpoint returns the LeMUR endpoint name for the request
func (r *LemurRequest) Endpoint() string {
	if r.Type == LemurCustom {
		return "summary"
	}
	return "task"
}
