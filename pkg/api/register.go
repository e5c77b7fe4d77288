package api

import (
	"net/http"
	"os"

	// Packages
	"github.com/mutablelogic/go-scribe"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-server/pkg/logger"
	"github.com/mutablelogic/go-server/pkg/types"
)

/////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func RegisterEndpoints(base string, service *scribe.Scribe, mux *http.ServeMux, debug bool) *http.ServeMux {
	// Create a new router
	if mux == nil {
		mux = http.NewServeMux()
	}

	// Create a logger
	logger := logger.New(os.Stderr, logger.Term, debug)

	// Not Found: GET /
	//   returns a not found response
	mux.HandleFunc("/", logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		httpresponse.Error(w, httpresponse.ErrNotFound)
	}))

	// Health: GET /health
	//   returns an empty OK response
	mux.HandleFunc(types.JoinPath(base, "health"), logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodGet:
			httpresponse.Empty(w, http.StatusOK)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}))

	// List Models: GET /models
	//   returns the summary model presets and the LeMUR models
	mux.HandleFunc(types.JoinPath(base, "models"), logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodGet:
			ListModels(r.Context(), w)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}))

	// Transcribe: POST /upload
	//   multipart with an optional "file" part and an "assemblyai" configuration
	//   field, or a JSON configuration with a file URL. Returns the transcript
	//   and the code which reproduces it.
	mux.HandleFunc(types.JoinPath(base, "upload"), logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodPost:
			Transcribe(r.Context(), service, w, r)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}))

	// Summary: POST /summary
	//   runs a LeMUR task or summary over an existing transcript
	mux.HandleFunc(types.JoinPath(base, "summary"), logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodPost:
			Summary(r.Context(), service, w, r)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}))

	// Return mux
	return mux
}
