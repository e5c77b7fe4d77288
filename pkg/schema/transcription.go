package schema

import (
	"encoding/json"
	"time"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Timestamp is a media offset, serialized as integer milliseconds
type Timestamp time.Duration

// Transcript is the payload of a successful transcription
type Transcript struct {
	Id       string          `json:"id" writer:",width:36"`
	Status   string          `json:"status" writer:",width:10"`
	Duration Timestamp       `json:"duration,omitempty" writer:",width:8,right"`
	Text     string          `json:"text,omitempty" writer:",width:60,wrap"`
	Summary  string          `json:"summary,omitempty" writer:",width:40,wrap"`
	Segments []*Segment      `json:"utterances,omitempty" writer:"-"`
	Error    string          `json:"error,omitempty" writer:",width:40,wrap"`
	Raw      json.RawMessage `json:"-" writer:"-"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t *Transcript) String() string {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(t).Milliseconds())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return err
	}
	*t = MsToTimestamp(ms)
	return nil
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// MsToTimestamp converts milliseconds to a Timestamp
func MsToTimestamp(ms int64) Timestamp {
	return Timestamp(time.Duration(ms) * time.Millisecond)
}

// SecToTimestamp converts seconds to a Timestamp
func SecToTimestamp(sec float64) Timestamp {
	return Timestamp(time.Duration(sec * float64(time.Second)))
}
