// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/model-hub-client/models"
	"github.com/go-resty/resty/v2"
)

type authAPI struct {
	client *Client
}

// Register implements [AuthAPI]: POST /auth/register.
func (a *authAPI) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	return call[models.User](ctx, a.client, resty.MethodPost, "/auth/register", withBody(reg))
}

// Login implements [AuthAPI]: POST /auth/login.
func (a *authAPI) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	return call[models.Token](ctx, a.client, resty.MethodPost, "/auth/login", withBody(creds))
}

// Me implements [AuthAPI]: GET /auth/me.
func (a *authAPI) Me(ctx context.Context) (models.User, error) {
	return call[models.User](ctx, a.client, resty.MethodGet, "/auth/me")
}

// UpdateMe implements [AuthAPI]: PUT /auth/me?username=&bio=&avatar=.
func (a *authAPI) UpdateMe(ctx context.Context, update models.UserUpdate) (models.User, error) {
	return call[models.User](ctx, a.client, resty.MethodPut, "/auth/me", withQuery(update))
}

// Logout implements [AuthAPI]: POST /auth/logout.
func (a *authAPI) Logout(ctx context.Context) (models.Message, error) {
	return call[models.Message](ctx, a.client, resty.MethodPost, "/auth/logout")
}
