package schema

import (
	"encoding/json"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// TranscriptResponse is returned by a transcription job. The transcript is
// the provider's own representation, and the code snippet is the typescript
// rendering, with all renderings in CodeSnippets keyed by language.
type TranscriptResponse struct {
	Transcript   json.RawMessage   `json:"transcript"`
	CodeSnippet  string            `json:"codeSnippet"`
	CodeSnippets map[string]string `json:"codeSnippets,omitempty"`
	Result       *Transcript       `json:"-"`
}

// SummaryResponse is returned by a summary job
type SummaryResponse struct {
	Summary      string            `json:"summary"`
	CodeSnippet  string            `json:"codeSnippet"`
	CodeSnippets map[string]string `json:"codeSnippets,omitempty"`
}

// SummaryEnvelope wraps the summary configuration in a request body
type SummaryEnvelope struct {
	Config SummaryConfig `json:"config"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r TranscriptResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (r SummaryResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
