// Package formclient talks to a running cardform HTTP API.
package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alovak/cardform/api/models"
)

type Client struct {
	Base string
	HTTP *http.Client
}

func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

func (c *Client) Format(ctx context.Context, req models.FormatRequest) (models.FormatResponse, error) {
	var resp models.FormatResponse
	err := c.post(ctx, "/cards/format", req, &resp)
	return resp, err
}

func (c *Client) ValidateCard(ctx context.Context, number string) (models.ValidateCardResponse, error) {
	var resp models.ValidateCardResponse
	err := c.post(ctx, "/cards/validate", models.ValidateCardRequest{CardNumber: number}, &resp)
	return resp, err
}

func (c *Client) ValidateCVV(ctx context.Context, cvv, schemeName string) (bool, error) {
	var resp models.ValidateCVVResponse
	err := c.post(ctx, "/cvv/validate", models.ValidateCVVRequest{CVV: cvv, Scheme: schemeName}, &resp)
	return resp.Valid, err
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s status=%d body=%s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
