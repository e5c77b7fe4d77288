package source

import (
	"fmt"

	// Packages
	"github.com/mutablelogic/go-scribe/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Source is the audio for a job, either a staged upload or a remote URL
type Source struct {
	Audio string // Path to the staged file, or the URL
	Local bool   // True when the audio is a staged file
	File  *File  // The staged file, or nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Resolve returns the audio source for a job. An upload takes precedence
// over a URL.
func Resolve(file *File, url string) (*Source, error) {
	switch {
	case file != nil:
		return &Source{Audio: file.Path, Local: true, File: file}, nil
	case url == "":
		return nil, schema.ErrMissingAudioSource
	case !schema.IsRemote(url):
		return nil, fmt.Errorf("%w: %q", schema.ErrInvalidAudioURL, url)
	default:
		return &Source{Audio: url}, nil
	}
}

// Remote returns true when the audio is a URL
func (s *Source) Remote() bool {
	return !s.Local
}
