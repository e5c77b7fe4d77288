package main

import (
	"fmt"

	// Packages
	schema "github.com/mutablelogic/go-scribe/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type SummaryCmd struct {
	Transcript   string  `arg:"" help:"Transcript identifier"`
	Prompt       string  `flag:"" help:"Prompt for a task"`
	Custom       bool    `flag:"" help:"Summarize with context, rather than running a prompted task"`
	Model        string  `flag:"" help:"LeMUR model" default:"${LEMUR_MODEL}"`
	Temperature  float64 `flag:"" help:"Sampling temperature, between 0 and 1" default:"0.7"`
	MaxOutput    uint    `flag:"" help:"Maximum output size" default:"4000"`
	Happening    string  `flag:"" help:"What is happening in the recording"`
	Location     string  `flag:"" help:"Where the recording took place"`
	Additional   string  `flag:"" help:"Additional context"`
	AnswerFormat string  `flag:"" help:"Format of the summary, such as bullet points"`
	Remote       bool    `flag:"" help:"Use the remote scribe service"`
	Code         string  `flag:"" help:"Also print the code for the request in this language" enum:"none,typescript,python,go" default:"none"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *SummaryCmd) Run(app *Globals) error {
	cfg := schema.SummaryConfig{
		Type:          schema.LemurBasic,
		APIKey:        app.APIKey,
		TranscriptID:  cmd.Transcript,
		FinalModel:    cmd.Model,
		Prompt:        cmd.Prompt,
		Temperature:   cmd.Temperature,
		MaxOutputSize: cmd.MaxOutput,
		AnswerFormat:  cmd.AnswerFormat,
		Context: schema.SummaryContext{
			Happening:  cmd.Happening,
			Location:   cmd.Location,
			Additional: cmd.Additional,
		},
	}
	if cmd.Custom {
		cfg.Type = schema.LemurCustom
	}

	// Run the summary
	var response *schema.SummaryResponse
	if cmd.Remote {
		remote, err := app.remote()
		if err != nil {
			return err
		}
		if response, err = remote.Summary(app.ctx, cfg); err != nil {
			return err
		}
	} else {
		service, err := app.service()
		if err != nil {
			return err
		}
		if response, err = service.Summary(app.ctx, cfg); err != nil {
			return err
		}
	}

	// Write the summary and code
	fmt.Println(response.Summary)
	return writeCode(cmd.Code, response.CodeSnippets)
}
