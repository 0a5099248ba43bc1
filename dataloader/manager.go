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

package dataloader

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/botobag/forge/graphql"
)

// Manager holds a collection of Loaders by name, typically the loaders of one request.
type Manager struct {
	mutex   sync.Mutex
	loaders map[string]*Loader
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{
		loaders: map[string]*Loader{},
	}
}

// GetOrCreate returns the Loader registered under name. If there is none, a Loader is created from
// config and registered.
func (manager *Manager) GetOrCreate(name string, config Config) (*Loader, error) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	if loader, exists := manager.loaders[name]; exists {
		return loader, nil
	}

	loader, err := New(config)
	if err != nil {
		return nil, graphql.NewError(fmt.Sprintf("cannot create loader %s", name), err)
	}
	manager.loaders[name] = loader
	return loader, nil
}

// Names returns the names of registered loaders in lexical order.
func (manager *Manager) Names() []string {
	manager.mutex.Lock()
	names := make([]string, 0, len(manager.loaders))
	for name := range manager.loaders {
		names = append(names, name)
	}
	manager.mutex.Unlock()

	sort.Strings(names)
	return names
}

// DispatchAll dispatches every registered Loader.
func (manager *Manager) DispatchAll(ctx context.Context) {
	manager.mutex.Lock()
	loaders := make([]*Loader, 0, len(manager.loaders))
	for _, loader := range manager.loaders {
		loaders = append(loaders, loader)
	}
	manager.mutex.Unlock()

	for _, loader := range loaders {
		loader.Dispatch(ctx)
	}
}
