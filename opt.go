package scribe

import (
	"errors"
	"io"
	"time"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-scribe/pkg/task"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type opts struct {
	dir        string
	maxsize    int64
	concurrent int64
	poll       time.Duration
	clientopts []client.ClientOpt
	log        zerolog.Logger
	factory    task.Factory
}

type Opt func(*opts) error

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// OptUploadDir sets the directory uploads are staged in
func OptUploadDir(dir string) Opt {
	return func(o *opts) error {
		o.dir = dir
		return nil
	}
}

// OptMaxUploadSize sets the largest upload accepted, in bytes
func OptMaxUploadSize(v int64) Opt {
	return func(o *opts) error {
		if v < 0 {
			return errors.New("invalid maximum upload size")
		}
		o.maxsize = v
		return nil
	}
}

// OptMaxConcurrent sets the number of jobs dispatched to the provider at once
func OptMaxConcurrent(v int64) Opt {
	return func(o *opts) error {
		if v < 1 {
			return errors.New("invalid concurrency")
		}
		o.concurrent = v
		return nil
	}
}

// OptPollInterval sets how often a pending transcript is checked
func OptPollInterval(d time.Duration) Opt {
	return func(o *opts) error {
		if d <= 0 {
			return errors.New("invalid poll interval")
		}
		o.poll = d
		return nil
	}
}

// OptEndpoint sets the provider endpoint
func OptEndpoint(url string) Opt {
	return func(o *opts) error {
		o.clientopts = append(o.clientopts, client.OptEndpoint(url))
		return nil
	}
}

// OptTimeout sets the provider request timeout
func OptTimeout(d time.Duration) Opt {
	return func(o *opts) error {
		o.clientopts = append(o.clientopts, client.OptTimeout(d))
		return nil
	}
}

// OptTrace writes provider requests and responses
func OptTrace(w io.Writer, verbose bool) Opt {
	return func(o *opts) error {
		o.clientopts = append(o.clientopts, client.OptTrace(w, verbose))
		return nil
	}
}

// OptLogger sets the application logger
func OptLogger(log zerolog.Logger) Opt {
	return func(o *opts) error {
		o.log = log
		return nil
	}
}

// OptProvider replaces the provider factory
func OptProvider(fn task.Factory) Opt {
	return func(o *opts) error {
		if fn == nil {
			return errors.New("provider factory is nil")
		}
		o.factory = fn
		return nil
	}
}
