package schema

import (
	"errors"
)

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	// Client errors, reported before anything is dispatched
	ErrMissingAudioSource         = errors.New("missing audio source")
	ErrInvalidAudioURL            = errors.New("invalid audio url")
	ErrInvalidSummaryTypeForModel = errors.New("invalid summary type for model")
	ErrInvalidSpeechModel         = errors.New("invalid speech model")
	ErrInvalidAudioRange          = errors.New("invalid audio range")
	ErrInvalidSummaryConfig       = errors.New("invalid summary configuration")
	ErrFileTooLarge               = errors.New("file too large")

	// Job failures
	ErrProvider  = errors.New("provider error")
	ErrTransport = errors.New("transport error")
)

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// IsClientError returns true if the error was caused by the request itself
func IsClientError(err error) bool {
	for _, target := range []error{
		ErrMissingAudioSource,
		ErrInvalidAudioURL,
		ErrInvalidSummaryTypeForModel,
		ErrInvalidSpeechModel,
		ErrInvalidAudioRange,
		ErrInvalidSummaryConfig,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
