package assemblyai

import (
	"context"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-scribe/pkg/schema"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Task runs a free-form prompt over one or more transcripts
func (c *Client) Task(ctx context.Context, req *schema.LemurRequest) (*LemurResponse, error) {
	return c.lemur(ctx, "task", req)
}

// Summary summarizes one or more transcripts
func (c *Client) Summary(ctx context.Context, req *schema.LemurRequest) (*LemurResponse, error) {
	return c.lemur(ctx, "summary", req)
}

/////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) lemur(ctx context.Context, endpoint string, req *schema.LemurRequest) (*LemurResponse, error) {
	var response LemurResponse
	if payload, err := client.NewJSONRequest(req); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response, client.OptPath(LemurPath, endpoint), client.OptNoTimeout()); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
