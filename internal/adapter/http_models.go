// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/model-hub-client/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const modelPath = "/models/{modelID}"

type modelAPI struct {
	client *Client
}

func (m *modelAPI) List(ctx context.Context, params models.ModelListParams) (models.ModelList, error) {
	return call[models.ModelList](ctx, m.client, resty.MethodGet, "/models", withQuery(params))
}

func (m *modelAPI) Get(ctx context.Context, id uuid.UUID) (models.Model, error) {
	return call[models.Model](ctx, m.client, resty.MethodGet, modelPath, modelID(id))
}

func (m *modelAPI) Create(ctx context.Context, model models.ModelCreate) (models.Model, error) {
	return call[models.Model](ctx, m.client, resty.MethodPost, "/models", withBody(model))
}

func (m *modelAPI) Update(ctx context.Context, id uuid.UUID, update models.ModelUpdate) (models.Model, error) {
	return call[models.Model](ctx, m.client, resty.MethodPut, modelPath, modelID(id), withBody(update))
}

func (m *modelAPI) Delete(ctx context.Context, id uuid.UUID) (models.Message, error) {
	return call[models.Message](ctx, m.client, resty.MethodDelete, modelPath, modelID(id))
}

func (m *modelAPI) Download(ctx context.Context, id uuid.UUID) (models.DownloadInfo, error) {
	return call[models.DownloadInfo](ctx, m.client, resty.MethodPost, modelPath+"/download", modelID(id))
}

func modelID(id uuid.UUID) requestOption {
	return withPathParam("modelID", id.String())
}
