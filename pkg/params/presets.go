package params

import (
	"slices"

	// Packages
	"github.com/mutablelogic/go-scribe/pkg/schema"
	"github.com/mutablelogic/go-server/pkg/types"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Preset describes a summary model: which summary types it supports and the
// parameters the provider requires alongside it
type Preset struct {
	Model         schema.SummaryModel  `json:"model" writer:",width:15"`
	Default       bool                 `json:"default" writer:",width:7"`
	Types         []schema.SummaryType `json:"supported_summary_types" writer:",width:40,wrap"`
	SpeakerLabels bool                 `json:"speaker_labels" writer:",width:8"`
	WhenToUse     string               `json:"when_to_use" writer:",width:50,wrap"`
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	presets = []Preset{
		{
			Model:     schema.SummaryModelInformative,
			Default:   true,
			Types:     []schema.SummaryType{schema.SummaryTypeBullets, schema.SummaryTypeBulletsVerbose, schema.SummaryTypeHeadline, schema.SummaryTypeParagraph},
			WhenToUse: "Best for files with a single speaker, such as presentations or lectures.",
		},
		{
			Model:         schema.SummaryModelConversational,
			Types:         []schema.SummaryType{schema.SummaryTypeBullets, schema.SummaryTypeBulletsVerbose, schema.SummaryTypeHeadline, schema.SummaryTypeParagraph},
			SpeakerLabels: true,
			WhenToUse:     "Best for any 2-person conversation, such as customer/agent or interview/interviewee calls.",
		},
		{
			Model:     schema.SummaryModelCatchy,
			Types:     []schema.SummaryType{schema.SummaryTypeHeadline, schema.SummaryTypeGist},
			WhenToUse: "Best for creating video, podcast, or media titles.",
		},
	}
)

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Models returns the summary model presets
func Models() []Preset {
	return slices.Clone(presets)
}

// PresetFor returns the preset for a summary model. Unknown or empty models
// return the default preset.
func PresetFor(model schema.SummaryModel) Preset {
	for _, preset := range presets {
		if preset.Model == model {
			return preset
		}
	}
	for _, preset := range presets {
		if preset.Default {
			return preset
		}
	}
	return presets[0]
}

// Supports returns true if the preset supports the summary type
func (p Preset) Supports(t schema.SummaryType) bool {
	return slices.Contains(p.Types, t)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// apply merges the preset's required parameters into the request
func (p Preset) apply(req *schema.ProviderRequest) {
	req.Punctuate = true
	req.FormatText = true
	if p.SpeakerLabels {
		req.SpeakerLabels = types.BoolPtr(true)
	}
}
