package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Packages
	client "github.com/mutablelogic/go-scribe/pkg/client"
	schema "github.com/mutablelogic/go-scribe/pkg/schema"
	source "github.com/mutablelogic/go-scribe/pkg/source"
	task "github.com/mutablelogic/go-scribe/pkg/task"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type SpeechFlags struct {
	SpeechModel     string        `name:"speech-model" help:"Speech model" enum:"best,nano" default:"best"`
	WordBoost       []string      `name:"boost" help:"Words or phrases to boost"`
	FilterProfanity bool          `name:"filter-profanity" help:"Mask profanity in the transcript"`
	Start           time.Duration `name:"start" help:"Offset to start transcribing from"`
	End             time.Duration `name:"end" help:"Offset to stop transcribing at"`
	DualChannel     bool          `name:"dual-channel" help:"Transcribe each channel separately"`
	Summarize       bool          `name:"summarize" help:"Summarize the transcript"`
	SummaryModel    string        `name:"summary-model" help:"Summary model" enum:"informative,conversational,catchy" default:"informative"`
	SummaryType     string        `name:"summary-type" help:"Summary type, defaults to the first type the model supports"`
}

type TranscribeCmd struct {
	Path   string `arg:"" help:"Path to an audio file, or a URL"`
	Format string `flag:"" help:"Output format" default:"text" enum:"text,srt,json"`
	Remote bool   `flag:"" help:"Use the remote scribe service"`
	Code   string `flag:"" help:"Also print the code for the request in this language" enum:"none,typescript,python,go" default:"none"`
	SpeechFlags
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *TranscribeCmd) Run(app *Globals) error {
	var response *schema.TranscriptResponse
	var err error
	if cmd.Remote {
		response, err = cmd.run_remote(app)
	} else {
		response, err = cmd.run_local(app)
	}
	if err != nil {
		return err
	}
	if response.Result != nil {
		app.log.Info().Str("id", response.Result.Id).Msg("transcribed")
	}

	// Write the transcript
	switch cmd.Format {
	case "json":
		var buf bytes.Buffer
		if err := json.Indent(&buf, response.Transcript, "", "  "); err != nil {
			return err
		}
		fmt.Println(buf.String())
	case "srt":
		if response.Result != nil {
			task.WriteSRT(os.Stdout, response.Result)
		}
	default:
		if response.Result != nil {
			task.WriteText(os.Stdout, response.Result)
			if response.Result.Summary != "" {
				fmt.Println("Summary:")
				fmt.Println(response.Result.Summary)
			}
		}
	}

	// Write the code
	return writeCode(cmd.Code, response.CodeSnippets)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *TranscribeCmd) run_local(app *Globals) (*schema.TranscriptResponse, error) {
	service, err := app.service()
	if err != nil {
		return nil, err
	}

	// Stage the file, or use the URL
	url := ""
	var file *source.File
	if schema.IsRemote(cmd.Path) {
		url = cmd.Path
	} else {
		f, err := os.Open(cmd.Path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if file, err = service.Stage(filepath.Base(cmd.Path), f); err != nil {
			return nil, err
		}
	}

	// Perform the transcription
	cfg, err := client.NewConfig(app.APIKey, url, cmd.opts()...)
	if err != nil {
		service.Cleanup(file)
		return nil, err
	}
	return service.Transcribe(app.ctx, file, *cfg)
}

func (cmd *TranscribeCmd) run_remote(app *Globals) (*schema.TranscriptResponse, error) {
	remote, err := app.remote()
	if err != nil {
		return nil, err
	}
	if schema.IsRemote(cmd.Path) {
		return remote.TranscribeURL(app.ctx, app.APIKey, cmd.Path, cmd.opts()...)
	}

	// Open the audio file
	f, err := os.Open(cmd.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return remote.Transcribe(app.ctx, app.APIKey, f, cmd.opts()...)
}

func (flags SpeechFlags) opts() []client.Opt {
	opts := []client.Opt{
		client.OptSpeechModel(flags.SpeechModel),
		client.OptWordBoost(flags.WordBoost...),
		client.OptAudioRange(flags.Start, flags.End),
	}
	if flags.FilterProfanity {
		opts = append(opts, client.OptFilterProfanity())
	}
	if flags.DualChannel {
		opts = append(opts, client.OptDualChannel())
	}
	if flags.Summarize {
		opts = append(opts, client.OptSummarization(flags.SummaryModel, flags.SummaryType))
	}
	return opts
}

func writeCode(lang string, snippets map[string]string) error {
	if lang == "" || lang == "none" {
		return nil
	}
	code, exists := snippets[lang]
	if !exists {
		return fmt.Errorf("no code for %q", lang)
	}
	fmt.Println(code)
	return nil
}
