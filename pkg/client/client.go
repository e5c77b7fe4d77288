package client

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-client/pkg/multipart"
	"github.com/mutablelogic/go-scribe/pkg/client/assemblyai"
	"github.com/mutablelogic/go-scribe/pkg/params"
	"github.com/mutablelogic/go-scribe/pkg/schema"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client calls a scribe server
type Client struct {
	*client.Client
}

type reqUpload struct {
	File   multipart.File `json:"file"`
	Config string         `json:"assemblyai"`
}

// Models are the models supported by a scribe server
type Models struct {
	Models      []params.Preset `json:"models"`
	LemurModels []string        `json:"lemur_models"`
	LemurModel  string          `json:"lemur_default"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	UploadPath  = "upload"
	SummaryPath = "summary"
	ModelsPath  = "models"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client for a scribe server endpoint, such as
// http://localhost:8080/api
func New(endpoint string, opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endpoint),
	}, opts...)
	if client, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{Client: client}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListModels returns the summary model presets and LeMUR models
func (c *Client) ListModels(ctx context.Context) (*Models, error) {
	var response Models
	if err := c.DoWithContext(ctx, client.MethodGet, &response, client.OptPath(ModelsPath)); err != nil {
		return nil, err
	}
	return &response, nil
}

// Transcribe uploads audio for transcription
func (c *Client) Transcribe(ctx context.Context, apikey string, r io.Reader, opt ...Opt) (*schema.TranscriptResponse, error) {
	if r == nil {
		return nil, httpresponse.ErrBadRequest.With("audio is required")
	}
	cfg, err := NewConfig(apikey, "", opt...)
	if err != nil {
		return nil, err
	}
	config, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	// Set the filename from the reader, if it is a file
	req := reqUpload{
		File:   multipart.File{Path: "audio", Body: r},
		Config: string(config),
	}
	if f, ok := r.(*os.File); ok {
		req.File.Path = filepath.Base(f.Name())
	}

	// Create multipart request, and execute it
	var response schema.TranscriptResponse
	if payload, err := client.NewMultipartRequest(req, client.ContentTypeAny); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response, client.OptPath(UploadPath), client.OptNoTimeout()); err != nil {
		return nil, err
	}

	// Return success
	return result(&response)
}

// TranscribeURL transcribes audio the provider can fetch from a URL
func (c *Client) TranscribeURL(ctx context.Context, apikey, url string, opt ...Opt) (*schema.TranscriptResponse, error) {
	cfg, err := NewConfig(apikey, url, opt...)
	if err != nil {
		return nil, err
	}

	var response schema.TranscriptResponse
	if payload, err := client.NewJSONRequest(cfg); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response, client.OptPath(UploadPath), client.OptNoTimeout()); err != nil {
		return nil, err
	}

	// Return success
	return result(&response)
}

// Summary runs a LeMUR task or summary over an existing transcript
func (c *Client) Summary(ctx context.Context, cfg schema.SummaryConfig) (*schema.SummaryResponse, error) {
	var response schema.SummaryResponse
	if payload, err := client.NewJSONRequest(schema.SummaryEnvelope{Config: cfg}); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response, client.OptPath(SummaryPath), client.OptNoTimeout()); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// result decodes the provider transcript carried in the response
func result(response *schema.TranscriptResponse) (*schema.TranscriptResponse, error) {
	if len(response.Transcript) == 0 {
		return response, nil
	}
	var transcript assemblyai.Transcript
	if err := json.Unmarshal(response.Transcript, &transcript); err != nil {
		return nil, err
	}
	response.Result = transcript.Result()
	return response, nil
}
