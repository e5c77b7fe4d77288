package assemblyai

import (
	"time"

	// Packages
	"github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	poll time.Duration
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultPollInterval = 3 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client, with the assemblyai api key
func New(apikey string, opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{
		client.OptEndpoint(Endpoint),
		client.OptHeader("authorization", apikey),
	}, opts...)
	if client, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{Client: client, poll: DefaultPollInterval}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// SetPollInterval sets the interval between transcript status requests
func (c *Client) SetPollInterval(d time.Duration) {
	if d > 0 {
		c.poll = d
	}
}
