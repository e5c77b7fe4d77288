package schema

import (
	"encoding/json"
	"fmt"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Outcome tags the variant held by a JobResult
type Outcome uint

// JobResult is the terminal result of a dispatched job
type JobResult struct {
	Outcome    Outcome     `json:"outcome"`
	Text       string      `json:"text,omitempty"`
	Summary    string      `json:"summary,omitempty"`
	Transcript *Transcript `json:"transcript,omitempty"`
	Message    string      `json:"message,omitempty"`
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Success Outcome = iota
	ProviderError
	TransportError
)

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewSuccess returns a successful result for a transcript
func NewSuccess(t *Transcript) JobResult {
	return JobResult{
		Outcome:    Success,
		Text:       t.Text,
		Summary:    t.Summary,
		Transcript: t,
	}
}

// NewText returns a successful result carrying free text
func NewText(text string) JobResult {
	return JobResult{Outcome: Success, Text: text}
}

// NewProviderError returns a result for a failure reported by the provider
func NewProviderError(message string) JobResult {
	return JobResult{Outcome: ProviderError, Message: message}
}

// NewTransportError returns a result for a failure talking to the provider
func NewTransportError(err error) JobResult {
	return JobResult{Outcome: TransportError, Message: err.Error()}
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case ProviderError:
		return "provider_error"
	case TransportError:
		return "transport_error"
	default:
		return fmt.Sprint("outcome_", uint(o))
	}
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (r JobResult) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// OK returns true for a successful result
func (r JobResult) OK() bool {
	return r.Outcome == Success
}

// Err returns nil on success, or an error wrapping ErrProvider or ErrTransport
func (r JobResult) Err() error {
	switch r.Outcome {
	case Success:
		return nil
	case ProviderError:
		return fmt.Errorf("%w: %s", ErrProvider, r.Message)
	default:
		return fmt.Errorf("%w: %s", ErrTransport, r.Message)
	}
}
