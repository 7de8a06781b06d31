// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/danielhkuo/votaciones/models"
)

// DefaultTimeout bounds every backend call
const DefaultTimeout = 10 * time.Second

// Backend paths, relative to the base URL
const (
	PathCandidates     = "/getCandidatos"
	PathCreateVote     = "/create"
	PathCandidateVotes = "/getCandidateVotes"
)

// StatusError is returned when the backend answers with a non-2xx status
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

// Client talks to the voting backend. It serves both the voting flow
// (ListCandidates, SubmitVote) and the results dashboard (CandidateVotes).
type Client struct {
	base    *url.URL
	http    *http.Client
	timeout time.Duration
}

// New validates the base URL and returns a client. A nil httpClient uses
// http.DefaultClient; a non-positive timeout uses DefaultTimeout.
func New(rawBase string, timeout time.Duration, httpClient *http.Client) (*Client, error) {
	base, err := NormalizeBaseURL(rawBase)
	if err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{base: base, http: httpClient, timeout: timeout}, nil
}

// BaseURL returns the normalized backend base URL
func (c *Client) BaseURL() *url.URL {
	u := *c.base
	return &u
}

// ListCandidates handles GET {base}/getCandidatos
// Records are returned as sent; callers normalize them.
func (c *Client) ListCandidates(ctx context.Context) ([]models.CandidateRecord, error) {
	var records []models.CandidateRecord
	if err := c.getJSON(ctx, PathCandidates, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SubmitVote handles POST {base}/create with {"id_candidato": id}
// Any 2xx is success; the response body is discarded.
func (c *Client) SubmitVote(ctx context.Context, candidateID string) error {
	body, err := json.Marshal(models.VoteRequest{IDCandidato: candidateID})
	if err != nil {
		return fmt.Errorf("encode vote: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(PathCreateVote), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build vote request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("submit vote: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: http.MethodPost, Path: PathCreateVote, StatusCode: resp.StatusCode}
	}

	slog.Debug("vote submitted", "candidate_id", candidateID, "status", resp.StatusCode)
	return nil
}

// CandidateVotes handles GET {base}/getCandidateVotes
func (c *Client) CandidateVotes(ctx context.Context) ([]models.TallyRecord, error) {
	var records []models.TallyRecord
	if err := c.getJSON(ctx, PathCandidateVotes, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{Method: http.MethodGet, Path: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) endpoint(path string) string {
	return c.base.String() + path
}
