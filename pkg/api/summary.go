package api

import (
	"context"
	"net/http"

	// Packages
	"github.com/mutablelogic/go-scribe"
	"github.com/mutablelogic/go-scribe/pkg/schema"
	"github.com/mutablelogic/go-server/pkg/httprequest"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func Summary(ctx context.Context, service *scribe.Scribe, w http.ResponseWriter, r *http.Request) error {
	noStore(w)

	// Read the request
	var req schema.SummaryEnvelope
	if err := httprequest.Read(r, &req); err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}

	// Run the job
	response, err := service.Summary(ctx, req.Config)
	if err != nil {
		return writeError(w, err)
	}

	// Return success
	return httpresponse.JSON(w, http.StatusOK, 2, response)
}
