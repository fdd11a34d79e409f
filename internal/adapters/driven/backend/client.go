// Package backend is the HTTP client for the external FIR service.
//
// Each call is one request bounded by the configured timeout and paced by
// a token-bucket limiter. Failures are reported, never retried; the
// registration outbox decides when to try again.
package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/time/rate"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driven"
	"github.com/nyayvidhi/nyaya/internal/logger"
)

const (
	// MaxDocumentSize caps a downloaded FIR document.
	MaxDocumentSize = 32 << 20

	// HeaderSubmissionID carries the outbox id so the service can
	// recognise a resubmission.
	HeaderSubmissionID = "X-Submission-ID"

	submitPath = "/submit-fir"
)

// Verify interface compliance.
var _ driven.Backend = (*Client)(nil)

// Client talks to the FIR service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its timeout is
// overwritten by the configured one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a client for the given settings.
func NewClient(settings domain.BackendSettings, opts ...Option) (*Client, error) {
	u, err := url.Parse(settings.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: backend url %q", domain.ErrInvalidInput, settings.URL)
	}

	limit := rate.Inf
	if settings.RatePerSecond > 0 {
		limit = rate.Limit(settings.RatePerSecond)
	}

	c := &Client{
		baseURL: strings.TrimRight(settings.URL, "/"),
		http:    &http.Client{},
		limiter: rate.NewLimiter(limit, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.Timeout = settings.Timeout
	return c, nil
}

// FetchDocument downloads the document filed for a FIR.
func (c *Client) FetchDocument(ctx context.Context, firID string) (*domain.Document, error) {
	endpoint := c.baseURL + "/fir/" + url.PathEscape(firID) + "/document"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", domain.ErrDocumentMissing, firID)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, statusError(resp)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading document: %v", domain.ErrBackendUnavailable, err)
	}
	if len(data) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: document exceeds %d bytes", domain.ErrInvalidInput, MaxDocumentSize)
	}

	contentType := resp.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mt
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	logger.Debug("fetched %s document: %d bytes (%s)", firID, len(data), contentType)
	return &domain.Document{FIRID: firID, ContentType: contentType, Data: data}, nil
}

// Submit posts a registration as multipart form data. Text fields keep
// their form names; attachments go under voiceSamples and documents.
func (c *Client) Submit(ctx context.Context, sub domain.Submission) error {
	body, contentType, err := encodeForm(sub.Registration)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+submitPath, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(HeaderSubmissionID, sub.ID)

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	logger.Debug("submitted %s: %s", sub.ID, resp.Status)
	return nil
}

// do waits for the limiter and sends req. Transport failures are
// reported as ErrBackendUnavailable.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}
	logger.Debug("%s %s", req.Method, req.URL)

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return resp, nil
}

func statusError(resp *http.Response) error {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.TrimSpace(string(detail))
	if msg == "" {
		return fmt.Errorf("%w: %s", domain.ErrBackendUnavailable, resp.Status)
	}
	return fmt.Errorf("%w: %s: %s", domain.ErrBackendUnavailable, resp.Status, msg)
}

func encodeForm(reg domain.Registration) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range reg.FormFields() {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return nil, "", fmt.Errorf("writing %s: %w", field[0], err)
		}
	}
	for _, path := range reg.VoiceSamples {
		if err := attach(w, "voiceSamples", path); err != nil {
			return nil, "", err
		}
	}
	for _, path := range reg.Documents {
		if err := attach(w, "documents", path); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func attach(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: attachment: %v", domain.ErrInvalidInput, err)
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filepath.Base(path)))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("creating %s part: %w", field, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copying %s: %w", path, err)
	}
	return nil
}
