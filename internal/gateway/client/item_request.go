package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	reqdto "shareit/internal/handler/dto/request"
)

type RequestClient struct {
	c *Client
}

func NewRequestClient(c *Client) *RequestClient {
	return &RequestClient{c: c}
}

func (r *RequestClient) Create(ctx context.Context, userID int64, req reqdto.CreateItemRequestRequest) (*Response, error) {
	return r.c.Do(ctx, http.MethodPost, "/requests", &userID, nil, req)
}

func (r *RequestClient) ListOwn(ctx context.Context, userID int64) (*Response, error) {
	return r.c.Do(ctx, http.MethodGet, "/requests", &userID, nil, nil)
}

func (r *RequestClient) ListAll(ctx context.Context, userID int64, from, size int32) (*Response, error) {
	query := url.Values{
		"from": []string{strconv.FormatInt(int64(from), 10)},
		"size": []string{strconv.FormatInt(int64(size), 10)},
	}
	return r.c.Do(ctx, http.MethodGet, "/requests/all", &userID, query, nil)
}

func (r *RequestClient) Get(ctx context.Context, requestID int64) (*Response, error) {
	return r.c.Do(ctx, http.MethodGet, fmt.Sprintf("/requests/%d", requestID), nil, nil, nil)
}
