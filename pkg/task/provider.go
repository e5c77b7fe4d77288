package task

import (
	"context"
	"time"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-scribe/pkg/client/assemblyai"
	"github.com/mutablelogic/go-scribe/pkg/schema"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Provider performs transcription and summary calls for a single credential
type Provider interface {
	// Transcribe returns the terminal transcript. A transcript with status
	// "error" is a failure reported by the provider.
	Transcribe(context.Context, *schema.ProviderRequest) (*schema.Transcript, error)

	// Task runs a prompt over transcripts and returns the response text
	Task(context.Context, *schema.LemurRequest) (string, error)

	// Summary summarizes transcripts and returns the response text
	Summary(context.Context, *schema.LemurRequest) (string, error)
}

// Factory returns a provider bound to an API key
type Factory func(apikey string) (Provider, error)

type assemblyaiProvider struct {
	*assemblyai.Client
}

var _ Provider = (*assemblyaiProvider)(nil)

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewAssemblyAI returns a factory for AssemblyAI providers. A zero poll
// interval uses the client default.
func NewAssemblyAI(poll time.Duration, opts ...client.ClientOpt) Factory {
	return func(apikey string) (Provider, error) {
		if client, err := assemblyai.New(apikey, opts...); err != nil {
			return nil, err
		} else {
			client.SetPollInterval(poll)
			return &assemblyaiProvider{client}, nil
		}
	}
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (p *assemblyaiProvider) Transcribe(ctx context.Context, req *schema.ProviderRequest) (*schema.Transcript, error) {
	if transcript, err := p.Client.Transcribe(ctx, req); err != nil {
		return nil, err
	} else {
		return transcript.Result(), nil
	}
}

func (p *assemblyaiProvider) Task(ctx context.Context, req *schema.LemurRequest) (string, error) {
	if response, err := p.Client.Task(ctx, req); err != nil {
		return "", err
	} else {
		return response.Response, nil
	}
}

func (p *assemblyaiProvider) Summary(ctx context.Context, req *schema.LemurRequest) (string, error) {
	if response, err := p.Client.Summary(ctx, req); err != nil {
		return "", err
	} else {
		return response.Response, nil
	}
}
