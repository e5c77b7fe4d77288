package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	// Packages
	"github.com/mutablelogic/go-scribe"
	"github.com/mutablelogic/go-scribe/pkg/params"
	"github.com/mutablelogic/go-scribe/pkg/schema"
	"github.com/mutablelogic/go-scribe/pkg/source"
	"github.com/mutablelogic/go-server/pkg/httprequest"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ContentTypeMultipart = "multipart/form-data"

	// Form fields
	FieldFile   = "file"
	FieldConfig = "assemblyai"

	maxConfigSize = 1 << 20
)

var (
	errMalformed = errors.New("malformed request")
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func Transcribe(ctx context.Context, service *scribe.Scribe, w http.ResponseWriter, r *http.Request) error {
	noStore(w)

	// Read the request
	mimetype, err := types.ParseContentType(r.Header.Get(types.ContentTypeHeader))
	if err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}
	var file *source.File
	var cfg schema.TranscriptConfig
	switch mimetype {
	case ContentTypeMultipart:
		if file, cfg, err = readMultipart(service, r); err != nil {
			return writeError(w, err)
		}
	case types.ContentTypeJSON:
		if err := httprequest.Read(r, &cfg); err != nil {
			return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
		}
	default:
		return httpresponse.Error(w, httpresponse.Err(http.StatusUnsupportedMediaType), mimetype)
	}

	// Run the job; the staged file is removed whatever the outcome
	response, err := service.Transcribe(ctx, file, cfg)
	if err != nil {
		return writeError(w, err)
	}

	// Return success
	return httpresponse.JSON(w, http.StatusOK, 2, response)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// readMultipart stages the "file" part as it is read, and decodes and
// validates the "assemblyai" field. Parts may arrive in any order. On error,
// any staged file is removed.
func readMultipart(service *scribe.Scribe, r *http.Request) (*source.File, schema.TranscriptConfig, error) {
	var file *source.File
	var cfg schema.TranscriptConfig

	reader, err := r.MultipartReader()
	if err != nil {
		return nil, cfg, fmt.Errorf("%w: %v", errMalformed, err)
	}
	fail := func(err error) (*source.File, schema.TranscriptConfig, error) {
		service.Cleanup(file)
		return nil, cfg, err
	}

	config := false
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return fail(fmt.Errorf("%w: %v", errMalformed, err))
		}

		switch part.FormName() {
		case FieldFile:
			// A file field without a filename, such as "null", is not an upload
			if part.FileName() == "" || file != nil {
				break
			}
			if staged, err := service.Stage(part.FileName(), part); err != nil {
				part.Close()
				return fail(err)
			} else {
				file = staged
			}
		case FieldConfig:
			data, err := io.ReadAll(io.LimitReader(part, maxConfigSize))
			if err != nil {
				part.Close()
				return fail(fmt.Errorf("%w: %v", errMalformed, err))
			} else if err := json.Unmarshal(data, &cfg); err != nil {
				part.Close()
				return fail(fmt.Errorf("%w: %s: %v", errMalformed, FieldConfig, err))
			} else if err := params.Validate(cfg.SpeechSettings, cfg.AudioIntelligence); err != nil {
				// Rejected before a later file part is staged
				part.Close()
				return fail(err)
			}
			config = true
		}
		part.Close()
	}
	if !config {
		return fail(fmt.Errorf("%w: missing %q field", errMalformed, FieldConfig))
	}

	// Return success
	return file, cfg, nil
}

// writeError maps an error onto a response status
func writeError(w http.ResponseWriter, err error) error {
	switch {
	case errors.Is(err, errMalformed), schema.IsClientError(err):
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	case errors.Is(err, schema.ErrFileTooLarge):
		return httpresponse.Error(w, httpresponse.Err(http.StatusRequestEntityTooLarge), err.Error())
	default:
		return httpresponse.Error(w, httpresponse.ErrInternalError, err.Error())
	}
}

// noStore marks a response as not cacheable, since it carries the API key
func noStore(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
}
