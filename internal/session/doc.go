// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the authentication state of the client: the session
// token and the profile of the user it belongs to.
//
// A [Store] is constructed explicitly and injected where needed. It has two
// observable states:
//
//	Anonymous      token empty, user nil
//	Authenticated  token set, user set (or nil while it is being fetched)
//
// and four operations ([Store.Login], [Store.Register], [Store.FetchUser],
// [Store.Logout]) that move between them. The token is mirrored in durable
// storage under [store.TokenKey]; that copy is what the HTTP client attaches
// to outgoing requests.
//
// Operations are not serialized against each other. Concurrent Login and
// Logout calls race and the last write wins; callers that need stronger
// guarantees must serialize them. A failed user fetch only ends the session
// it was started for.
package session
