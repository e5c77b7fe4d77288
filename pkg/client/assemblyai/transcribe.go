package assemblyai

import (
	"context"
	"time"

	// Packages
	goerrors "github.com/djthorpe/go-errors"
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-scribe/pkg/schema"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Submit queues a transcript
func (c *Client) Submit(ctx context.Context, req TranscriptRequest) (*Transcript, error) {
	var response Transcript
	if payload, err := client.NewJSONRequest(req); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response, client.OptPath(TranscriptPath)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// Get returns the current state of a transcript
func (c *Client) Get(ctx context.Context, id string) (*Transcript, error) {
	var response Transcript
	if err := c.DoWithContext(ctx, client.MethodGet, &response, client.OptPath(TranscriptPath, id)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// Transcribe uploads local audio when necessary, submits the request and
// waits for the transcript to reach a terminal status. A transcript with
// status "error" is returned without an error.
func (c *Client) Transcribe(ctx context.Context, req *schema.ProviderRequest) (*Transcript, error) {
	url := req.Audio
	if !schema.IsRemote(url) {
		if uploaded, err := c.UploadFile(ctx, url); err != nil {
			return nil, err
		} else {
			url = uploaded
		}
	}

	transcript, err := c.Submit(ctx, NewTranscriptRequest(url, req))
	if err != nil {
		return nil, err
	}
	return c.Wait(ctx, transcript)
}

// Wait polls a transcript until it completes or fails
func (c *Client) Wait(ctx context.Context, transcript *Transcript) (*Transcript, error) {
	ticker := time.NewTicker(c.poll)
	defer ticker.Stop()
	for !transcript.Done() {
		if !transcript.Pending() {
			return nil, goerrors.ErrUnexpectedResponse.Withf("transcript %q has status %q", transcript.Id, transcript.Status)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			if t, err := c.Get(ctx, transcript.Id); err != nil {
				return nil, err
			} else {
				transcript = t
			}
		}
	}

	// Return success
	return transcript, nil
}
