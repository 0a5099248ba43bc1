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
	"fmt"
	"sort"
	"sync"

	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/internal/util"
)

// Factory creates a new instance of a plugin.
type Factory func() Plugin

var registry = struct {
	sync.RWMutex
	factories map[string]Factory
}{
	factories: map[string]Factory{},
}

// Register makes a plugin available to New under name.
func Register(name string, factory Factory) error {
	const op graphql.Op = "plugin.Register"

	if len(name) == 0 || factory == nil {
		return graphql.NewError("plugin must be registered with a name and a factory", op)
	}

	registry.Lock()
	defer registry.Unlock()

	if _, exists := registry.factories[name]; exists {
		return graphql.NewError(fmt.Sprintf("received multiple implementations for plugin %s", name), op)
	}
	registry.factories[name] = factory
	return nil
}

// MustRegister is like Register but panics on failure. It is meant to be called from init.
func MustRegister(name string, factory Factory) {
	if err := Register(name, factory); err != nil {
		panic(err)
	}
}

// New creates an instance of the plugin registered under name.
func New(name string) (Plugin, error) {
	registry.RLock()
	factory, exists := registry.factories[name]
	registry.RUnlock()

	if !exists {
		return nil, graphql.NewError(
			fmt.Sprintf("plugin %s is not registered.%s", name,
				util.DidYouMean(util.SuggestionList(name, Registered()))),
			graphql.Op("plugin.New"))
	}
	return factory(), nil
}

// Registered returns the names of all registered plugins in lexical order.
func Registered() []string {
	registry.RLock()
	defer registry.RUnlock()

	names := make([]string, 0, len(registry.factories))
	for name := range registry.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
