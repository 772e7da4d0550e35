// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify provides the failure reporter capability: the single place
// where a user-facing message about a failed server call is shown.
//
// The HTTP client wrapper calls [Reporter.Report] exactly once per failed
// call. Front-ends choose how the message is surfaced by injecting a
// reporter: [Console] for terminals, [Log] for headless use, [Recorder] for
// tests or for UIs that poll for messages.
package notify

import (
	"context"
	"sync"

	"github.com/MKhiriev/model-hub-client/internal/logger"
)

// Reporter surfaces a user-facing failure message.
// Implementations must be safe for concurrent use.
type Reporter interface {
	Report(ctx context.Context, message string)
}

// ReporterFunc adapts a plain function to [Reporter].
type ReporterFunc func(ctx context.Context, message string)

// Report implements [Reporter].
func (f ReporterFunc) Report(ctx context.Context, message string) {
	f(ctx, message)
}

// Nop returns a reporter that discards every message.
func Nop() Reporter {
	return ReporterFunc(func(context.Context, string) {})
}

// Multi fans a message out to every non-nil reporter in order.
func Multi(reporters ...Reporter) Reporter {
	list := make([]Reporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			list = append(list, r)
		}
	}

	return ReporterFunc(func(ctx context.Context, message string) {
		for _, r := range list {
			r.Report(ctx, message)
		}
	})
}

type logReporter struct {
	logger *logger.Logger
}

// Log returns a reporter that writes each message as a warning entry.
func Log(log *logger.Logger) Reporter {
	return &logReporter{logger: log}
}

func (l *logReporter) Report(_ context.Context, message string) {
	l.logger.Warn().Str("notification", message).Msg("request failed")
}

// Recorder keeps every reported message in memory.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

// NewRecorder returns an empty [Recorder].
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Report implements [Reporter].
func (r *Recorder) Report(_ context.Context, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

// Messages returns a copy of the messages reported so far, oldest first.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

// Reset forgets every recorded message.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
}
