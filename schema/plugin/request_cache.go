/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package plugin

import (
	"sync"

	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/internal/util"
)

// RequestCache holds per-request plugin state. Entries are keyed by a request handle, usually the
// application context of ResolveInfo, and created on first access. Callers remove an entry with
// Delete when the request completes.
type RequestCache[T any] struct {
	mutex   sync.Mutex
	create  func(request interface{}) (T, error)
	entries map[interface{}]T
}

// NewRequestCache creates a RequestCache that calls create to initialize the state of a request.
func NewRequestCache[T any](create func(request interface{}) (T, error)) *RequestCache[T] {
	return &RequestCache[T]{
		create:  create,
		entries: map[interface{}]T{},
	}
}

// Get returns the state for request, creating it if absent. create runs at most once per request
// as long as it succeeds; a failed create is retried on the next Get.
func (cache *RequestCache[T]) Get(request interface{}) (T, error) {
	var zero T
	if !util.IsHashable(request) {
		return zero, graphql.NewError("request handle must be a non-nil comparable value",
			graphql.Op("plugin.RequestCache.Get"), graphql.ErrKindInternal)
	}

	cache.mutex.Lock()
	defer cache.mutex.Unlock()

	if data, exists := cache.entries[request]; exists {
		return data, nil
	}

	data, err := cache.create(request)
	if err != nil {
		return zero, err
	}
	cache.entries[request] = data
	return data, nil
}

// Delete drops the state for request.
func (cache *RequestCache[T]) Delete(request interface{}) {
	if !util.IsHashable(request) {
		return
	}
	cache.mutex.Lock()
	delete(cache.entries, request)
	cache.mutex.Unlock()
}

// Len returns the number of requests with state.
func (cache *RequestCache[T]) Len() int {
	cache.mutex.Lock()
	defer cache.mutex.Unlock()
	return len(cache.entries)
}
