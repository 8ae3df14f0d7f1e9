// Package classifier talks to the external leaf classification service.
// The service is a black box reached over one multipart HTTP request; its
// failures never touch the history store.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

var (
	// ErrTransport marks an unreachable endpoint or a malformed response.
	ErrTransport = errors.New("classification service unreachable")
	// ErrService marks a well-formed error reply from the service.
	ErrService = errors.New("classification failed")
)

// Client requests a classification for an uploaded image.
type Client interface {
	// Predict sends the image bytes and returns the raw predicted label.
	Predict(ctx context.Context, imageName string, image io.Reader) (string, error)
}

// prediction mirrors the service's JSON reply.
type prediction struct {
	Label string `json:"prediksi"`
	Error string `json:"error"`
}

// HTTPClient implements Client against the configured base address.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Predict uploads the image as the "file" field of a multipart form to
// <base>/predict. Transport failures and undecodable bodies are reported as
// ErrTransport; error replies from the service as ErrService.
func (c *HTTPClient) Predict(ctx context.Context, imageName string, image io.Reader) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", imageName)
	if err != nil {
		return "", fmt.Errorf("%w: building request: %v", ErrTransport, err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("%w: reading image: %v", ErrTransport, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%w: building request: %v", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	var p prediction
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return "", fmt.Errorf("%w: undecodable reply: %v", ErrTransport, err)
	}

	if p.Error != "" {
		return "", fmt.Errorf("%w: %s", ErrService, p.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", ErrService, resp.StatusCode)
	}
	if p.Label == "" {
		return "", fmt.Errorf("%w: empty prediction", ErrService)
	}

	return p.Label, nil
}
