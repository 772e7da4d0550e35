// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// PageParams paginates collection endpoints. Zero values are omitted.
type PageParams struct {
	Page     int `url:"page,omitempty"`
	PageSize int `url:"page_size,omitempty"`
}

// Comment is a user review attached to a model.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	ModelID   uuid.UUID `json:"model_id"`
	UserID    uuid.UUID `json:"user_id"`
	User      *User     `json:"user,omitempty"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentCreate is the request body of a new comment.
// Content must be 1..2000 characters and Rating 1..5 (5 when omitted).
type CommentCreate struct {
	Content string `json:"content"`
	Rating  int    `json:"rating,omitempty"`
}

// Like records that a user liked a model.
type Like struct {
	ID        uuid.UUID `json:"id"`
	ModelID   uuid.UUID `json:"model_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeStatus tells whether the current user has liked a model.
type LikeStatus struct {
	Liked bool `json:"liked"`
}
