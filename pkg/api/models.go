package api

import (
	"context"
	"net/http"

	// Packages
	"github.com/mutablelogic/go-scribe/pkg/params"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type respModels struct {
	Object      string          `json:"object,omitempty"`
	Models      []params.Preset `json:"models"`
	LemurModels []string        `json:"lemur_models"`
	LemurModel  string          `json:"lemur_default"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func ListModels(ctx context.Context, w http.ResponseWriter) error {
	return httpresponse.JSON(w, http.StatusOK, 2, respModels{
		Object:      "list",
		Models:      params.Models(),
		LemurModels: params.LemurModels,
		LemurModel:  params.DefaultLemurModel,
	})
}
