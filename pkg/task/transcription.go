package task

import (
	"io"

	// Packages
	"github.com/mutablelogic/go-scribe/pkg/schema"
)

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WriteText writes the utterances of a transcript as paragraphs, or the
// transcript text when there are no utterances
func WriteText(w io.Writer, t *schema.Transcript) {
	if len(t.Segments) == 0 {
		io.WriteString(w, t.Text+"\n")
		return
	}
	for _, seg := range t.Segments {
		seg.WriteText(w)
	}
}

// WriteSRT writes the utterances of a transcript as SubRip cues
func WriteSRT(w io.Writer, t *schema.Transcript) {
	for _, seg := range t.Segments {
		seg.WriteSRT(w)
	}
}
