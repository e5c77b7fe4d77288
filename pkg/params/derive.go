package params

import (
	"fmt"
	"slices"

	// Packages
	"github.com/mutablelogic/go-scribe/pkg/schema"
	"github.com/mutablelogic/go-server/pkg/types"
)

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Derive builds the provider request for an audio source from the user's
// speech settings and audio intelligence options. It has no side effects,
// and the same input always produces the same request.
func Derive(audio string, speech schema.SpeechSettings, intel schema.AudioIntelligence) (*schema.ProviderRequest, error) {
	if err := Validate(speech, intel); err != nil {
		return nil, err
	}

	// Settings copied verbatim
	req := &schema.ProviderRequest{
		Audio:           audio,
		SpeechModel:     speech.SpeechModel,
		FilterProfanity: speech.FilterProfanity,
		AudioStartFrom:  speech.AudioStartFrom,
	}
	if req.SpeechModel == "" {
		req.SpeechModel = schema.SpeechModelBest
	}
	if end := speech.AudioEndAt; end > 0 {
		req.AudioEndAt = &end
	}

	// An absent word list, rather than an empty one, disables boosting
	if boost := speech.Boost(); len(boost) > 0 {
		req.WordBoost = boost
		req.BoostParam = types.StringPtr(schema.BoostParamHigh)
	}

	// Summarization
	if intel.Summarization {
		req.Summarization = types.BoolPtr(true)
		req.SummaryType = intel.SummaryType
		req.SummaryModel = intel.SummaryModel
	}

	// Parameters required by the summary model are present whether or not
	// summarization is enabled
	PresetFor(intel.SummaryModel).apply(req)
	if speech.DualChannel {
		req.DualChannel = types.BoolPtr(true)
	}

	// Return success
	return req, nil
}

// Validate checks the user's options without building a request
func Validate(speech schema.SpeechSettings, intel schema.AudioIntelligence) error {
	if speech.SpeechModel != "" && !slices.Contains(schema.SpeechModels, speech.SpeechModel) {
		return fmt.Errorf("%w: %q", schema.ErrInvalidSpeechModel, speech.SpeechModel)
	}
	if speech.AudioEndAt > 0 && speech.AudioEndAt < speech.AudioStartFrom {
		return fmt.Errorf("%w: audio_end_at %d is before audio_start_from %d", schema.ErrInvalidAudioRange, speech.AudioEndAt, speech.AudioStartFrom)
	}
	if intel.Summarization || intel.SummaryType != "" {
		if preset := PresetFor(intel.SummaryModel); !preset.Supports(intel.SummaryType) {
			return fmt.Errorf("%w: %q does not support %q (supported: %v)", schema.ErrInvalidSummaryTypeForModel, preset.Model, intel.SummaryType, preset.Types)
		}
	}

	// Return success
	return nil
}
