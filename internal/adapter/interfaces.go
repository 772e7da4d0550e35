// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the single configured entry point for every call to the
// model-hub server.
//
// [Client] owns a go-resty pipeline with a fixed base URL and timeout and
// three interception points shared by all calls:
//   - before each request the session token is read from durable storage and,
//     when present, sent as "Authorization: Bearer <token>";
//   - after each response a non-2xx status is turned into an [*APIError]
//     carrying the server's "detail" message;
//   - every failed call (transport error, timeout, rejected interception or
//     non-2xx status) is reported exactly once to the injected
//     [notify.Reporter] and the error is still returned to the caller.
//
// The calls themselves are grouped by resource into [AuthAPI], [ModelAPI] and
// [InteractionAPI]. They return decoded payloads only; callers never see the
// HTTP envelope.
package adapter

import (
	"context"

	"github.com/MKhiriev/model-hub-client/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAPI groups the account endpoints.
type AuthAPI interface {
	// Register creates a new account and returns its profile. It does not
	// log the user in.
	Register(ctx context.Context, reg models.Registration) (models.User, error)

	// Login exchanges credentials for an access token.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// Me returns the profile of the user owning the current token.
	Me(ctx context.Context) (models.User, error)

	// UpdateMe changes profile fields of the current user. The fields are
	// sent as query parameters, the request has no body.
	UpdateMe(ctx context.Context, update models.UserUpdate) (models.User, error)

	// Logout notifies the server. The token stays valid until it expires;
	// forgetting it locally is the caller's job.
	Logout(ctx context.Context) (models.Message, error)
}

// ModelAPI groups the model resource endpoints.
type ModelAPI interface {
	List(ctx context.Context, params models.ModelListParams) (models.ModelList, error)
	Get(ctx context.Context, id uuid.UUID) (models.Model, error)
	Create(ctx context.Context, model models.ModelCreate) (models.Model, error)
	Update(ctx context.Context, id uuid.UUID, update models.ModelUpdate) (models.Model, error)
	Delete(ctx context.Context, id uuid.UUID) (models.Message, error)

	// Download triggers a download: the server counts it and returns where
	// the file can be fetched from.
	Download(ctx context.Context, id uuid.UUID) (models.DownloadInfo, error)
}

// InteractionAPI groups comment and like endpoints. Everything is scoped to a
// model except comment deletion, which is scoped to the comment itself.
type InteractionAPI interface {
	ListComments(ctx context.Context, modelID uuid.UUID, page models.PageParams) ([]models.Comment, error)
	CreateComment(ctx context.Context, modelID uuid.UUID, comment models.CommentCreate) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) (models.Message, error)

	Like(ctx context.Context, modelID uuid.UUID) (models.Like, error)
	Unlike(ctx context.Context, modelID uuid.UUID) (models.Message, error)
	LikeStatus(ctx context.Context, modelID uuid.UUID) (models.LikeStatus, error)
}
