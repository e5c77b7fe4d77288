package task

import (
	"context"
	"errors"
	"time"

	// Packages
	"github.com/mutablelogic/go-scribe/pkg/schema"
	zerolog "github.com/rs/zerolog"
	semaphore "golang.org/x/sync/semaphore"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Dispatcher sends jobs to the provider, one attempt each, and classifies
// the outcome
type Dispatcher struct {
	factory Factory
	sem     *semaphore.Weighted
	log     zerolog.Logger
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultMaxConcurrent = 8
)

var (
	errNoProvider = errors.New("no provider")
)

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewDispatcher returns a dispatcher which runs at most limit jobs at once
func NewDispatcher(factory Factory, limit int64, log zerolog.Logger) *Dispatcher {
	if limit <= 0 {
		limit = DefaultMaxConcurrent
	}
	return &Dispatcher{
		factory: factory,
		sem:     semaphore.NewWeighted(limit),
		log:     log,
	}
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Transcribe dispatches a transcription job
func (d *Dispatcher) Transcribe(ctx context.Context, apikey string, req *schema.ProviderRequest) schema.JobResult {
	start := time.Now()
	result := d.transcribe(ctx, apikey, req)
	d.done("transcribe", start, result)
	return result
}

// Summary dispatches a summary job to the task or summary endpoint
func (d *Dispatcher) Summary(ctx context.Context, apikey string, req *schema.LemurRequest) schema.JobResult {
	start := time.Now()
	result := d.summary(ctx, apikey, req)
	d.done(req.Endpoint(), start, result)
	return result
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (d *Dispatcher) transcribe(ctx context.Context, apikey string, req *schema.ProviderRequest) schema.JobResult {
	provider, release, err := d.acquire(ctx, apikey)
	if err != nil {
		return schema.NewTransportError(err)
	}
	defer release()

	transcript, err := provider.Transcribe(ctx, req)
	switch {
	case err != nil:
		return schema.NewTransportError(err)
	case transcript == nil:
		return schema.NewTransportError(errors.New("empty response"))
	case transcript.Status == "error":
		message := transcript.Error
		if message == "" {
			message = "transcription failed"
		}
		return schema.NewProviderError(message)
	default:
		return schema.NewSuccess(transcript)
	}
}

func (d *Dispatcher) summary(ctx context.Context, apikey string, req *schema.LemurRequest) schema.JobResult {
	provider, release, err := d.acquire(ctx, apikey)
	if err != nil {
		return schema.NewTransportError(err)
	}
	defer release()

	var text string
	if req.Type == schema.LemurCustom {
		text, err = provider.Summary(ctx, req)
	} else {
		text, err = provider.Task(ctx, req)
	}
	if err != nil {
		return schema.NewTransportError(err)
	}
	return schema.NewText(text)
}

// acquire waits for a slot and creates a provider for the key
func (d *Dispatcher) acquire(ctx context.Context, apikey string) (Provider, func(), error) {
	if d.factory == nil {
		return nil, nil, errNoProvider
	}
	if err := d.sem.Acquire(ctx, 1); err != nil {
		return nil, nil, err
	}
	release := func() { d.sem.Release(1) }
	provider, err := d.factory(apikey)
	if err != nil {
		release()
		return nil, nil, err
	}
	return provider, release, nil
}

func (d *Dispatcher) done(job string, start time.Time, result schema.JobResult) {
	var evt *zerolog.Event
	if result.OK() {
		evt = d.log.Info()
	} else {
		evt = d.log.Warn().Str("message", result.Message)
	}
	evt.Str("job", job).Stringer("outcome", result.Outcome).Dur("elapsed", time.Since(start)).Msg("dispatched")
}
