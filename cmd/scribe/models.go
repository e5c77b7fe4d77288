package main

import (
	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	params "github.com/mutablelogic/go-scribe/pkg/params"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

type ModelsCmd struct {
	Remote bool `flag:"" help:"List models from the remote scribe service"`
}

func (cmd ModelsCmd) Run(app *Globals) error {
	if cmd.Remote {
		return run_remote_models(app)
	} else {
		return app.writer.Write(params.Models(), tablewriter.OptHeader())
	}
}

func run_remote_models(app *Globals) error {
	remote, err := app.remote()
	if err != nil {
		return err
	}

	// List models
	models, err := remote.ListModels(app.ctx)
	if err != nil {
		return err
	} else if len(models.Models) == 0 {
		return httpresponse.ErrNotFound.With("no models found")
	} else {
		return app.writer.Write(models.Models, tablewriter.OptHeader())
	}
}
