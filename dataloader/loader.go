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

// Package dataloader batches and caches loads of values identified by keys, in the manner of
// facebook/dataloader.
//
// Load returns a future.Future right away and queues the key. The queue is handed to the
// BatchLoader in one call when Dispatch runs or when one of the returned futures is first polled,
// so every key requested before that point shares a single batch.
package dataloader

import (
	"context"
	"fmt"
	"sync"

	"github.com/botobag/forge/concurrent"
	"github.com/botobag/forge/concurrent/future"
	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/internal/util"
)

// Key identifies a value loaded by a Loader. It must be comparable when the cache is enabled.
type Key interface{}

// BatchLoader loads the values at keys. It returns one entry per key in the same order; an entry
// that is an error fails the load of its key only. A returned error fails every key in the batch.
type BatchLoader interface {
	Load(ctx context.Context, keys []Key) ([]interface{}, error)
}

// BatchLoadFunc is an adapter to allow the use of ordinary functions as BatchLoader.
type BatchLoadFunc func(ctx context.Context, keys []Key) ([]interface{}, error)

// Load implements BatchLoader by calling f(ctx, keys).
func (f BatchLoadFunc) Load(ctx context.Context, keys []Key) ([]interface{}, error) {
	return f(ctx, keys)
}

// Config specifies how a Loader fetches and caches data.
type Config struct {
	// (Required) BatchLoader fetches the data.
	BatchLoader BatchLoader

	// (Optional) MaxBatchSize caps the number of keys given to one BatchLoader call. 0 means
	// unlimited and 1 disables batching.
	MaxBatchSize uint

	// (Optional) DisableCache makes every Load queue its key even if it was loaded before.
	DisableCache bool

	// (Optional) Executor runs batches. Without one, batches run on the goroutine that dispatches
	// them. A batch the executor refuses runs on the dispatching goroutine too.
	Executor concurrent.Executor
}

// A Loader loads data from a data backend with unique keys such as the id column of a SQL table.
type Loader struct {
	config Config

	// mutex guards queue and cache.
	mutex sync.Mutex
	queue []*task
	cache map[Key]*task
}

// New creates a Loader from config.
func New(config Config) (*Loader, error) {
	if config.BatchLoader == nil {
		return nil, graphql.NewError("batch loader is required to construct a Loader",
			graphql.Op("dataloader.New"), graphql.ErrKindInvalidType)
	}

	loader := &Loader{
		config: config,
	}
	if !config.DisableCache {
		loader.cache = map[Key]*task{}
	}
	return loader, nil
}

// Load requests the value at key. The returned future completes once the key has been loaded.
func (loader *Loader) Load(ctx context.Context, key Key) (future.Future, error) {
	if key == nil {
		return nil, graphql.NewError("must specify key to identify data to be loaded",
			graphql.Op("dataloader.Load"), graphql.ErrKindInternal)
	}
	if loader.cache != nil && !util.IsHashable(key) {
		return nil, graphql.NewError(fmt.Sprintf("key %v cannot be cached; disable the cache to load it", key),
			graphql.Op("dataloader.Load"), graphql.ErrKindInvalidType)
	}

	loader.mutex.Lock()
	t, cached := loader.cache[key]
	if !cached {
		t = newTask(key)
		if loader.cache != nil {
			loader.cache[key] = t
		}
		loader.queue = append(loader.queue, t)
	}
	loader.mutex.Unlock()

	if value, done, err := t.result(nil); done {
		if err != nil {
			return future.Err(err), nil
		}
		return future.Ready(value), nil
	}

	return &taskFuture{
		ctx:    ctx,
		loader: loader,
		task:   t,
	}, nil
}

// LoadMany requests values at several keys. The returned future completes with a []interface{} in
// key order, or with the first error.
func (loader *Loader) LoadMany(ctx context.Context, keys []Key) (future.Future, error) {
	futures := make([]future.Future, 0, len(keys))
	for _, key := range keys {
		f, err := loader.Load(ctx, key)
		if err != nil {
			return nil, err
		}
		futures = append(futures, f)
	}
	return future.Join(futures...), nil
}

// Dispatch hands every queued key to the BatchLoader, in batches of at most MaxBatchSize keys.
func (loader *Loader) Dispatch(ctx context.Context) {
	loader.mutex.Lock()
	queue := loader.queue
	loader.queue = nil
	loader.mutex.Unlock()

	if len(queue) == 0 {
		return
	}

	batchSize := int(loader.config.MaxBatchSize)
	if batchSize == 0 {
		batchSize = len(queue)
	}

	for len(queue) > 0 {
		n := batchSize
		if n > len(queue) {
			n = len(queue)
		}
		loader.dispatchBatch(ctx, queue[:n])
		queue = queue[n:]
	}
}

func (loader *Loader) dispatchBatch(ctx context.Context, tasks []*task) {
	if loader.config.Executor != nil {
		_, err := loader.config.Executor.Submit(concurrent.TaskFunc(func() (interface{}, error) {
			loader.runBatch(ctx, tasks)
			return nil, nil
		}))
		if err == nil {
			return
		}
	}
	loader.runBatch(ctx, tasks)
}

func (loader *Loader) runBatch(ctx context.Context, tasks []*task) {
	keys := make([]Key, len(tasks))
	for i, t := range tasks {
		keys[i] = t.key
	}

	values, err := loader.config.BatchLoader.Load(ctx, keys)
	if err == nil && len(values) != len(keys) {
		err = graphql.NewError(
			fmt.Sprintf("%T must return one value per key: it was given %d keys but returned %d values",
				loader.config.BatchLoader, len(keys), len(values)),
			graphql.Op("dataloader.Dispatch"), graphql.ErrKindInternal)
	}

	if err != nil {
		for _, t := range tasks {
			t.complete(nil, err)
		}
		// Failed loads are not cached so that they can be retried.
		loader.clearTasks(tasks)
		return
	}

	for i, t := range tasks {
		if valueErr, ok := values[i].(error); ok {
			t.complete(nil, valueErr)
		} else {
			t.complete(values[i], nil)
		}
	}
}

func (loader *Loader) clearTasks(tasks []*task) {
	if loader.cache == nil {
		return
	}
	loader.mutex.Lock()
	for _, t := range tasks {
		if loader.cache[t.key] == t {
			delete(loader.cache, t.key)
		}
	}
	loader.mutex.Unlock()
}

// Clear removes the value at key from the cache.
func (loader *Loader) Clear(key Key) {
	if loader.cache == nil || !util.IsHashable(key) {
		return
	}
	loader.mutex.Lock()
	delete(loader.cache, key)
	loader.mutex.Unlock()
}

// ClearAll empties the cache.
func (loader *Loader) ClearAll() {
	if loader.cache == nil {
		return
	}
	loader.mutex.Lock()
	loader.cache = map[Key]*task{}
	loader.mutex.Unlock()
}

// Prime adds value at key to the cache. If the key is already cached, no change is made.
func (loader *Loader) Prime(key Key, value interface{}) {
	if loader.cache == nil || !util.IsHashable(key) {
		return
	}
	loader.mutex.Lock()
	if _, exists := loader.cache[key]; !exists {
		t := newTask(key)
		t.complete(value, nil)
		loader.cache[key] = t
	}
	loader.mutex.Unlock()
}
