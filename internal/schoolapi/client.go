// Package schoolapi is the HTTP client for the schools REST API.
//
// It knows two endpoints:
//
//	POST /api/schools/create/   create a school
//	GET  /api/schools/          list every school
//
// Any 2xx status is success. Everything else, including transport
// failures, is returned as an error.
package schoolapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aanand-mishra/schools-directory/internal/types"
)

const (
	createPath = "/api/schools/create/"
	listPath   = "/api/schools/"
)

// ErrUnexpectedStatus is wrapped by errors for non-2xx responses.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Client talks to the schools API at a fixed base URL.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// New returns a Client for baseURL (e.g. "http://localhost:8000").
// A nil httpClient means http.DefaultClient; no extra timeout is added.
func New(baseURL string, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

// CreateSchool posts req to the creation endpoint. The response body is
// not read beyond draining it.
func (c *Client) CreateSchool(ctx context.Context, req types.CreateSchoolRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("CreateSchool: encode: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("CreateSchool: new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Debug("create school failed", slog.String("error", err.Error()))
		return fmt.Errorf("CreateSchool: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if !ok(resp.StatusCode) {
		c.log.Debug("create school rejected", slog.Int("status", resp.StatusCode))
		return fmt.Errorf("CreateSchool: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	c.log.Debug("school created", slog.Int("status", resp.StatusCode))
	return nil
}

// ListSchools fetches the full collection.
func (c *Client) ListSchools(ctx context.Context) ([]types.School, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+listPath, nil)
	if err != nil {
		return nil, fmt.Errorf("ListSchools: new request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Debug("list schools failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("ListSchools: %w", err)
	}
	defer resp.Body.Close()

	if !ok(resp.StatusCode) {
		c.log.Debug("list schools rejected", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("ListSchools: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var schools []types.School
	if err := json.NewDecoder(resp.Body).Decode(&schools); err != nil {
		return nil, fmt.Errorf("ListSchools: decode: %w", err)
	}

	c.log.Debug("schools listed", slog.Int("count", len(schools)))
	return schools, nil
}

func ok(status int) bool {
	return status >= 200 && status < 300
}
