// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/model-hub-client/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type interactionAPI struct {
	client *Client
}

func (i *interactionAPI) ListComments(ctx context.Context, id uuid.UUID, page models.PageParams) ([]models.Comment, error) {
	return call[[]models.Comment](ctx, i.client, resty.MethodGet, modelPath+"/comments", modelID(id), withQuery(page))
}

func (i *interactionAPI) CreateComment(ctx context.Context, id uuid.UUID, comment models.CommentCreate) (models.Comment, error) {
	return call[models.Comment](ctx, i.client, resty.MethodPost, modelPath+"/comments", modelID(id), withBody(comment))
}

func (i *interactionAPI) DeleteComment(ctx context.Context, commentID uuid.UUID) (models.Message, error) {
	return call[models.Message](ctx, i.client, resty.MethodDelete, "/comments/{commentID}",
		withPathParam("commentID", commentID.String()))
}

func (i *interactionAPI) Like(ctx context.Context, id uuid.UUID) (models.Like, error) {
	return call[models.Like](ctx, i.client, resty.MethodPost, modelPath+"/like", modelID(id))
}

func (i *interactionAPI) Unlike(ctx context.Context, id uuid.UUID) (models.Message, error) {
	return call[models.Message](ctx, i.client, resty.MethodDelete, modelPath+"/like", modelID(id))
}

func (i *interactionAPI) LikeStatus(ctx context.Context, id uuid.UUID) (models.LikeStatus, error) {
	return call[models.LikeStatus](ctx, i.client, resty.MethodGet, modelPath+"/like/status", modelID(id))
}
