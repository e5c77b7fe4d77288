package assemblyai

import (
	"context"
	"io"
	"net/http"
	"os"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-server/pkg/types"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

// binary is a raw request body
type binary struct {
	io.Reader
}

/////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ContentTypeBinary = "application/octet-stream"
)

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Upload sends media to the provider and returns a URL the provider can
// transcribe from
func (c *Client) Upload(ctx context.Context, r io.Reader) (string, error) {
	var response UploadResponse
	if err := c.DoWithContext(ctx, binary{r}, &response, client.OptPath(UploadPath), client.OptNoTimeout()); err != nil {
		return "", err
	}

	// Return success
	return response.URL, nil
}

// UploadFile uploads media from the local filesystem
func (c *Client) UploadFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return c.Upload(ctx, f)
}

/////////////////////////////////////////////////////////////////////////////////
// PAYLOAD

func (binary) Method() string {
	return http.MethodPost
}

func (binary) Accept() string {
	return types.ContentTypeJSON
}

func (binary) Type() string {
	return ContentTypeBinary
}
