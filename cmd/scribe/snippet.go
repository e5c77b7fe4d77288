package main

import (
	"fmt"

	// Packages
	client "github.com/mutablelogic/go-scribe/pkg/client"
	snippet "github.com/mutablelogic/go-scribe/pkg/snippet"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type SnippetCmd struct {
	Path string `arg:"" help:"Path to an audio file, or a URL"`
	Lang string `flag:"" help:"Language" enum:"typescript,python,go" default:"typescript"`
	SpeechFlags
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *SnippetCmd) Run(app *Globals) error {
	service, err := app.service()
	if err != nil {
		return err
	}
	cfg, err := client.NewConfig(app.APIKey, "", cmd.opts()...)
	if err != nil {
		return err
	}
	snippets, err := service.Snippets(cmd.Path, *cfg)
	if err != nil {
		return err
	}
	code, exists := snippets[cmd.Lang]
	if !exists {
		return fmt.Errorf("%w: %q", snippet.ErrUnknownLanguage, cmd.Lang)
	}
	fmt.Println(code)
	return nil
}
