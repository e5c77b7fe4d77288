package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	// Packages
	scribe "github.com/mutablelogic/go-scribe"
	api "github.com/mutablelogic/go-scribe/pkg/api"
	errgroup "golang.org/x/sync/errgroup"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ServeCmd struct {
	Listen     string `name:"listen" env:"SCRIBE_LISTEN" help:"Address to listen on" default:"localhost:8080"`
	Base       string `name:"base" help:"Path prefix for the endpoints" default:"/api"`
	MaxUpload  int64  `name:"max-upload" help:"Largest upload accepted, in bytes" default:"${MAX_UPLOAD}"`
	Concurrent int64  `name:"concurrent" help:"Jobs sent to the provider at once" default:"${MAX_CONCURRENT}"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	shutdownTimeout = 10 * time.Second
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ServeCmd) Run(app *Globals) error {
	service, err := app.service(
		scribe.OptMaxUploadSize(cmd.MaxUpload),
		scribe.OptMaxConcurrent(cmd.Concurrent),
	)
	if err != nil {
		return err
	}

	// Create the server
	server := &http.Server{
		Addr:              cmd.Listen,
		Handler:           api.RegisterEndpoints(cmd.Base, service, nil, app.Debug),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Serve until the context is cancelled, then shut down
	group, ctx := errgroup.WithContext(app.ctx)
	group.Go(func() error {
		app.log.Info().Str("listen", cmd.Listen).Str("base", cmd.Base).Msg("serving")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		app.log.Info().Msg("shutting down")
		shutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdown)
	})
	return group.Wait()
}
