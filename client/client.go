// Copyright (c) 2026 Hinolugi.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hinolugi/scoreboard/models"
	"github.com/hinolugi/scoreboard/store"
)

// ErrRequestInFlight is returned when the control that triggered an
// operation still has a previous request outstanding. The browser app
// disables the button for the duration; callers here get this error
// instead.
var ErrRequestInFlight = errors.New("request already in flight")

// Client talks to the cloud scoreboard store. Each operation has its own
// in-flight guard, mirroring the one-button-one-request rule, released on
// every return path.
type Client struct {
	endpoint string
	http     *http.Client

	saving  atomic.Bool
	loading atomic.Bool
	listing atomic.Bool
}

// New creates a client for the given endpoint URL.
func New(endpoint string) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Save posts an export to the store and returns the stored filename.
func (c *Client) Save(ctx context.Context, export models.Export) (string, error) {
	if !c.saving.CompareAndSwap(false, true) {
		return "", ErrRequestInFlight
	}
	defer c.saving.Store(false)

	body, err := json.Marshal(export)
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build save request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("save request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read save response: %w", err)
	}

	var envelope struct {
		Status   string `json:"status"`
		Filename string `json:"filename"`
		Message  string `json:"message"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return "", fmt.Errorf("parse save response: %w", err)
	}
	if envelope.Status != "success" {
		if envelope.Message == "" {
			envelope.Message = "unknown error"
		}
		return "", fmt.Errorf("save rejected: %s", envelope.Message)
	}
	return envelope.Filename, nil
}

// Load fetches the last-saved ongoing session.
func (c *Client) Load(ctx context.Context) ([]byte, error) {
	if !c.loading.CompareAndSwap(false, true) {
		return nil, ErrRequestInFlight
	}
	defer c.loading.Store(false)

	return c.get(ctx, c.endpoint)
}

// ListFinished fetches the finished-game record names.
func (c *Client) ListFinished(ctx context.Context) ([]string, error) {
	if !c.listing.CompareAndSwap(false, true) {
		return nil, ErrRequestInFlight
	}
	defer c.listing.Store(false)

	payload, err := c.get(ctx, c.endpoint+"?request=list")
	if err != nil {
		return nil, err
	}
	var names []string
	if err := json.Unmarshal(payload, &names); err != nil {
		return nil, fmt.Errorf("parse list response: %w", err)
	}
	return names, nil
}

// LoadFinished fetches one finished-game record by name.
func (c *Client) LoadFinished(ctx context.Context, filename string) ([]byte, error) {
	if !strings.HasPrefix(filename, store.FinishedPrefix) {
		return nil, fmt.Errorf("invalid finished-game filename %q", filename)
	}
	if !c.listing.CompareAndSwap(false, true) {
		return nil, ErrRequestInFlight
	}
	defer c.listing.Store(false)

	return c.get(ctx, c.endpoint+"?request=load&file="+url.QueryEscape(filename))
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	// Error envelopes can arrive with any HTTP status.
	var envelope models.ErrorEnvelope
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Status == "error" {
		return nil, fmt.Errorf("store error: %s", envelope.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return payload, nil
}
