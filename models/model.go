// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// SortOrder selects the ordering of a model listing.
type SortOrder string

const (
	// SortLatest orders by creation time, newest first. It is the server default.
	SortLatest SortOrder = "latest"
	// SortPopular orders by number of likes.
	SortPopular SortOrder = "popular"
	// SortDownloads orders by number of downloads.
	SortDownloads SortOrder = "downloads"
)

// Model is a published model as returned by the server.
type Model struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Framework   *string   `json:"framework,omitempty"`
	Version     string    `json:"version"`

	FileURL    *string `json:"file_url,omitempty"`
	FileSize   int64   `json:"file_size"`
	FileFormat *string `json:"file_format,omitempty"`

	APIEndpoint *string `json:"api_endpoint,omitempty"`
	APIDocs     *string `json:"api_docs,omitempty"`

	Downloads     int64 `json:"downloads"`
	LikesCount    int64 `json:"likes_count"`
	CommentsCount int64 `json:"comments_count"`
	Views         int64 `json:"views"`

	AuthorID uuid.UUID `json:"author_id"`
	Author   *User     `json:"author,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ModelCreate is the request body for publishing a new model.
// Version defaults to "1.0.0" on the server when left empty.
type ModelCreate struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags,omitempty"`
	Framework   *string  `json:"framework,omitempty"`
	Version     string   `json:"version,omitempty"`

	FileURL    *string `json:"file_url,omitempty"`
	FileSize   int64   `json:"file_size,omitempty"`
	FileFormat *string `json:"file_format,omitempty"`

	APIEndpoint *string `json:"api_endpoint,omitempty"`
	APIDocs     *string `json:"api_docs,omitempty"`
}

// ModelUpdate is a partial update: only non-nil fields are sent.
type ModelUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Framework   *string   `json:"framework,omitempty"`
	Version     *string   `json:"version,omitempty"`
	FileURL     *string   `json:"file_url,omitempty"`
	FileSize    *int64    `json:"file_size,omitempty"`
	FileFormat  *string   `json:"file_format,omitempty"`
	APIEndpoint *string   `json:"api_endpoint,omitempty"`
	APIDocs     *string   `json:"api_docs,omitempty"`
}

// ModelList is one page of a model listing.
type ModelList struct {
	Items    []Model `json:"items"`
	Total    int64   `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

// ModelListParams filters and paginates a model listing.
// Zero values are omitted so that server defaults apply.
type ModelListParams struct {
	Page     int       `url:"page,omitempty"`
	PageSize int       `url:"page_size,omitempty"`
	Category string    `url:"category,omitempty"`
	Search   string    `url:"search,omitempty"`
	Sort     SortOrder `url:"sort,omitempty"`
}

// DownloadInfo is returned when a download is triggered; the server
// increments the download counter as a side effect.
type DownloadInfo struct {
	DownloadURL string  `json:"download_url"`
	FileSize    int64   `json:"file_size"`
	FileFormat  *string `json:"file_format,omitempty"`
}
