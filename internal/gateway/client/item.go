package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	reqdto "shareit/internal/handler/dto/request"
)

type ItemClient struct {
	c *Client
}

func NewItemClient(c *Client) *ItemClient {
	return &ItemClient{c: c}
}

func (i *ItemClient) Create(ctx context.Context, userID int64, req reqdto.CreateItemRequest) (*Response, error) {
	return i.c.Do(ctx, http.MethodPost, "/items", &userID, nil, req)
}

func (i *ItemClient) Update(ctx context.Context, userID, itemID int64, req reqdto.UpdateItemRequest) (*Response, error) {
	return i.c.Do(ctx, http.MethodPatch, fmt.Sprintf("/items/%d", itemID), &userID, nil, req)
}

func (i *ItemClient) Get(ctx context.Context, userID, itemID int64) (*Response, error) {
	return i.c.Do(ctx, http.MethodGet, fmt.Sprintf("/items/%d", itemID), &userID, nil, nil)
}

func (i *ItemClient) ListOwner(ctx context.Context, userID int64) (*Response, error) {
	return i.c.Do(ctx, http.MethodGet, "/items", &userID, nil, nil)
}

func (i *ItemClient) Search(ctx context.Context, userID int64, text string) (*Response, error) {
	query := url.Values{"text": []string{text}}
	return i.c.Do(ctx, http.MethodGet, "/items/search", &userID, query, nil)
}

func (i *ItemClient) Delete(ctx context.Context, itemID int64) (*Response, error) {
	return i.c.Do(ctx, http.MethodDelete, fmt.Sprintf("/items/%d", itemID), nil, nil, nil)
}

func (i *ItemClient) AddComment(ctx context.Context, userID, itemID int64, req reqdto.CreateCommentRequest) (*Response, error) {
	return i.c.Do(ctx, http.MethodPost, fmt.Sprintf("/items/%d/comment", itemID), &userID, nil, req)
}
