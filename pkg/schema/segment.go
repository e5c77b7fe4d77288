package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Segment is a speaker utterance, present when speaker labels were requested
type Segment struct {
	Id      int32     `json:"-" writer:",right,width:5"`
	Start   Timestamp `json:"start" writer:",right,width:8"`
	End     Timestamp `json:"end" writer:",right,width:8"`
	Speaker string    `json:"speaker,omitempty" writer:",width:8"`
	Text    string    `json:"text" writer:",wrap,width:70"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s *Segment) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WriteText writes the utterance as a paragraph, prefixed by the speaker
func (seg *Segment) WriteText(w io.Writer) {
	if seg.Speaker != "" {
		fmt.Fprintf(w, "[Speaker %s] ", seg.Speaker)
	}
	fmt.Fprintf(w, "%s\n\n", strings.TrimSpace(seg.Text))
}

// WriteSRT writes the utterance as a SubRip cue
func (seg *Segment) WriteSRT(w io.Writer) {
	fmt.Fprintf(w, "%d\n%s --> %s\n", seg.Id, tsToSrt(time.Duration(seg.Start)), tsToSrt(time.Duration(seg.End)))
	if seg.Speaker != "" {
		fmt.Fprintf(w, "[%s] ", seg.Speaker)
	}
	fmt.Fprintf(w, "%s\n\n", strings.TrimSpace(seg.Text))
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func tsToSrt(ts time.Duration) string {
	hours := int(ts.Hours())
	minutes := int(ts.Minutes()) % 60
	seconds := int(ts.Seconds()) % 60
	milliseconds := int(ts.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, milliseconds)
}
