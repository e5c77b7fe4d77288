package scribe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	// Packages
	"github.com/mutablelogic/go-scribe/pkg/params"
	"github.com/mutablelogic/go-scribe/pkg/schema"
	"github.com/mutablelogic/go-scribe/pkg/snippet"
	"github.com/mutablelogic/go-scribe/pkg/source"
	"github.com/mutablelogic/go-scribe/pkg/task"
	"github.com/mutablelogic/go-scribe/pkg/wav"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Scribe runs transcription and summary jobs against the provider, and
// renders the code which reproduces each job
type Scribe struct {
	stager     *source.Stager
	dispatcher *task.Dispatcher
	log        zerolog.Logger
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func New(opt ...Opt) (*Scribe, error) {
	o := opts{
		maxsize:    source.DefaultMaxSize,
		concurrent: task.DefaultMaxConcurrent,
		log:        zerolog.Nop(),
	}
	for _, fn := range opt {
		if err := fn(&o); err != nil {
			return nil, err
		}
	}
	if o.factory == nil {
		o.factory = task.NewAssemblyAI(o.poll, o.clientopts...)
	}

	// Staging directory
	stager, err := source.NewStager(o.dir, source.OptMaxSize(o.maxsize), source.OptLogger(o.log))
	if err != nil {
		return nil, err
	}

	// Return success
	return &Scribe{
		stager:     stager,
		dispatcher: task.NewDispatcher(o.factory, o.concurrent, o.log),
		log:        o.log,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Stage writes an upload to the staging directory. The file is removed by
// Transcribe, or by Cleanup if the job is never submitted.
func (s *Scribe) Stage(name string, r io.Reader) (*source.File, error) {
	return s.stager.Stage(name, r)
}

// Cleanup removes a staged upload
func (s *Scribe) Cleanup(file *source.File) {
	s.stager.Cleanup(file)
}

// Transcribe submits a transcription job for a staged file or the URL in the
// configuration. The staged file is removed before returning, whatever the
// outcome.
func (s *Scribe) Transcribe(ctx context.Context, file *source.File, cfg schema.TranscriptConfig) (*schema.TranscriptResponse, error) {
	if file != nil {
		defer s.stager.Cleanup(file)
	}

	// Resolve the audio and derive the request
	src, err := source.Resolve(file, strings.TrimSpace(cfg.FileURL))
	if err != nil {
		return nil, err
	}
	req, err := params.Derive(src.Audio, s.settings(src, cfg.SpeechSettings), cfg.AudioIntelligence)
	if err != nil {
		return nil, err
	}

	// Dispatch the job
	result := s.dispatcher.Transcribe(ctx, cfg.APIKey, req)
	if err := result.Err(); err != nil {
		return nil, err
	} else if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", schema.ErrTransport, err)
	}

	// Render the snippets
	snippets, err := render(snippet.NewProgram(req, cfg.APIKey, src.Remote()))
	if err != nil {
		return nil, err
	}
	transcript := result.Transcript.Raw
	if len(transcript) == 0 {
		if transcript, err = json.Marshal(result.Transcript); err != nil {
			return nil, err
		}
	}

	// Return success
	return &schema.TranscriptResponse{
		Transcript:   transcript,
		CodeSnippet:  snippets[snippet.Default],
		CodeSnippets: snippets,
		Result:       result.Transcript,
	}, nil
}

// Summary submits a summary job for an existing transcript
func (s *Scribe) Summary(ctx context.Context, cfg schema.SummaryConfig) (*schema.SummaryResponse, error) {
	req, err := params.Summary(cfg)
	if err != nil {
		return nil, err
	}

	// Dispatch the job
	result := s.dispatcher.Summary(ctx, cfg.APIKey, req)
	if err := result.Err(); err != nil {
		return nil, err
	} else if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", schema.ErrTransport, err)
	}

	// Render the snippets
	snippets, err := render(snippet.NewSummaryProgram(req, cfg.APIKey))
	if err != nil {
		return nil, err
	}

	// Return success
	return &schema.SummaryResponse{
		Summary:      result.Text,
		CodeSnippet:  snippets[snippet.Default],
		CodeSnippets: snippets,
	}, nil
}

// Snippets renders the code for a transcription job without submitting it.
// Audio which is not a URL is treated as a local file.
func (s *Scribe) Snippets(audio string, cfg schema.TranscriptConfig) (map[string]string, error) {
	if audio == "" {
		return nil, schema.ErrMissingAudioSource
	}
	remote := schema.IsRemote(audio)
	req, err := params.Derive(audio, cfg.SpeechSettings, cfg.AudioIntelligence)
	if err != nil {
		return nil, err
	}
	return render(snippet.NewProgram(req, cfg.APIKey, remote))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// settings returns the speech settings for a source. When no end is set on a
// staged WAV file, the end defaults to the duration of the file.
func (s *Scribe) settings(src *source.Source, speech schema.SpeechSettings) schema.SpeechSettings {
	if !src.Local || speech.AudioEndAt != 0 {
		return speech
	}
	duration, err := wav.Duration(src.Audio)
	if err != nil {
		s.log.Debug().Err(err).Msg("unable to probe audio duration")
		return speech
	}
	if end := uint64(duration.Milliseconds()); end > speech.AudioStartFrom {
		speech.AudioEndAt = end
	}
	return speech
}

func render(program *snippet.Program, err error) (map[string]string, error) {
	if err != nil {
		return nil, err
	}
	return program.RenderAll()
}
