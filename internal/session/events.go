// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/asaskevich/EventBus"
)

const stateTopicPrefix = "session:state:"

// events fans state changes out to subscribers in subscription order.
// EventBus identifies handlers by their code pointer, so every subscription
// gets a topic of its own.
//
// The bus holds its lock while a handler runs, so no bus method may be called
// from inside a handler. One goroutine at a time delivers: changes published
// meanwhile are queued, and subscription changes are applied between
// deliveries.
type events struct {
	bus EventBus.Bus

	mu         sync.Mutex
	topics     []string
	nextID     uint64
	queue      []State
	deferred   []func()
	delivering bool
}

func newEvents(bus EventBus.Bus) *events {
	return &events{bus: bus}
}

func (e *events) subscribe(fn func(State)) (func(), error) {
	if fn == nil {
		return nil, errors.New("session: nil subscriber")
	}

	e.mu.Lock()
	e.nextID++
	topic := fmt.Sprintf("%s%d", stateTopicPrefix, e.nextID)
	if e.delivering {
		e.deferred = append(e.deferred, func() { _ = e.bus.Subscribe(topic, fn) })
	} else if err := e.bus.Subscribe(topic, fn); err != nil {
		e.mu.Unlock()
		return nil, fmt.Errorf("subscribe to session changes: %w", err)
	}
	e.topics = append(e.topics, topic)
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()

			e.topics = slices.DeleteFunc(e.topics, func(t string) bool { return t == topic })
			drop := func() { _ = e.bus.Unsubscribe(topic, fn) }
			if e.delivering {
				e.deferred = append(e.deferred, drop)
				return
			}
			drop()
		})
	}, nil
}

func (e *events) publish(state State) {
	e.mu.Lock()
	e.queue = append(e.queue, state)
	if e.delivering {
		e.mu.Unlock()
		return
	}
	e.delivering = true
	e.mu.Unlock()

	e.drain()
}

func (e *events) drain() {
	done := false
	defer func() {
		if done {
			return
		}
		// A subscriber panicked: give up the pending changes so later
		// publishers are not queued forever.
		e.mu.Lock()
		e.delivering = false
		e.queue = nil
		deferred := e.deferred
		e.deferred = nil
		e.mu.Unlock()

		for _, op := range deferred {
			op()
		}
	}()

	for {
		e.mu.Lock()
		deferred := e.deferred
		e.deferred = nil
		if len(e.queue) == 0 && len(deferred) == 0 {
			e.delivering = false
			e.mu.Unlock()
			done = true
			return
		}
		e.mu.Unlock()

		for _, op := range deferred {
			op()
		}

		e.mu.Lock()
		if len(e.queue) == 0 {
			e.mu.Unlock()
			continue
		}
		next := e.queue[0]
		e.queue = e.queue[1:]
		topics := slices.Clone(e.topics)
		e.mu.Unlock()

		for _, topic := range topics {
			if e.subscribed(topic) && e.bus.HasCallback(topic) {
				e.bus.Publish(topic, next.clone())
			}
		}
	}
}

// subscribed reports whether topic has not been unsubscribed yet.
func (e *events) subscribed(topic string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Contains(e.topics, topic)
}
