package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"
)

// Response is the business tier's reply, relayed to the caller verbatim.
type Response struct {
	Status int
	Body   []byte
}

// Client forwards validated requests to the business tier.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg config.GatewayConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.ServerURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Do sends one request downstream. A non-nil userID becomes the identity
// header; any HTTP status is a valid result, only transport failures error.
func (c *Client) Do(ctx context.Context, method, path string, userID *int64, query url.Values, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(data)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build downstream request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != nil {
		req.Header.Set(middleware.SharerHeader, strconv.FormatInt(*userID, 10))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "downstream request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read downstream response")
	}

	return &Response{Status: resp.StatusCode, Body: data}, nil
}
