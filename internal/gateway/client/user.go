package client

import (
	"context"
	"fmt"
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
)

type UserClient struct {
	c *Client
}

func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

func (u *UserClient) Create(ctx context.Context, req reqdto.CreateUserRequest) (*Response, error) {
	return u.c.Do(ctx, http.MethodPost, "/users", nil, nil, req)
}

func (u *UserClient) Update(ctx context.Context, id int64, req reqdto.UpdateUserRequest) (*Response, error) {
	return u.c.Do(ctx, http.MethodPatch, fmt.Sprintf("/users/%d", id), nil, nil, req)
}

func (u *UserClient) Get(ctx context.Context, id int64) (*Response, error) {
	return u.c.Do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, nil)
}

func (u *UserClient) List(ctx context.Context) (*Response, error) {
	return u.c.Do(ctx, http.MethodGet, "/users", nil, nil, nil)
}

func (u *UserClient) Delete(ctx context.Context, id int64) (*Response, error) {
	return u.c.Do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, nil)
}
