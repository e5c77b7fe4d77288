package params

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	// Packages
	validator "github.com/go-playground/validator/v10"
	"github.com/mutablelogic/go-scribe/pkg/schema"
	"github.com/mutablelogic/go-server/pkg/types"
)

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultLemurModel = "anthropic/claude-3-5-sonnet"
)

var (
	LemurModels = []string{
		"anthropic/claude-3-5-sonnet",
		"anthropic/claude-3-opus",
		"anthropic/claude-3-haiku",
		"anthropic/claude-3-sonnet",
		"anthropic/claude-2-1",
		"anthropic/claude-2",
	}
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Summary validates the summary configuration and builds the LeMUR request.
// A custom summary additionally carries the flattened context and the
// answer format.
func Summary(cfg schema.SummaryConfig) (*schema.LemurRequest, error) {
	if err := ValidateSummary(cfg); err != nil {
		return nil, err
	}

	req := &schema.LemurRequest{
		Type:          cfg.Type,
		TranscriptIDs: []string{cfg.TranscriptID},
		Prompt:        cfg.Prompt,
		FinalModel:    cfg.FinalModel,
		MaxOutputSize: cfg.MaxOutputSize,
		Temperature:   cfg.Temperature,
	}
	if req.FinalModel == "" {
		req.FinalModel = DefaultLemurModel
	}
	if cfg.Type == schema.LemurCustom {
		req.Context = types.StringPtr(cfg.Context.Flatten())
		req.AnswerFormat = types.StringPtr(cfg.AnswerFormat)
	}

	// Return success
	return req, nil
}

// ValidateSummary checks the summary configuration
func ValidateSummary(cfg schema.SummaryConfig) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, verr := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", verr.Field(), verr.Tag()))
			}
			return fmt.Errorf("%w: %s", schema.ErrInvalidSummaryConfig, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", schema.ErrInvalidSummaryConfig, err)
	}

	// Return success
	return nil
}
