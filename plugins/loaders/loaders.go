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

// Package loaders is a plugin that resolves fields through per-request data loaders.
//
// A field opts in by setting the "loader" builder option to a *FieldLoader. Its resolver then
// returns the key of the value to load (or a slice of keys for a list field) and the plugin turns
// the key into a future that completes once the batch containing it has been loaded. Loaders live
// for one request, identified by the application context of ResolveInfo; call Release when the
// request completes.
package loaders

import (
	"context"
	"fmt"
	"reflect"

	"github.com/botobag/forge/concurrent"
	"github.com/botobag/forge/dataloader"
	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/schema"
	"github.com/botobag/forge/schema/plugin"
)

// Name of the plugin in the plugin registry
const Name = "dataloader"

// OptionKey is the key of the field option read by the plugin.
const OptionKey = "loader"

func init() {
	plugin.MustRegister(Name, func() plugin.Plugin {
		return New()
	})
}

// FieldLoader configures the loader of a field.
type FieldLoader struct {
	// Name of the loader within a request. Fields that share a name share the loader (and its
	// batches and cache). It defaults to "Type.field".
	Name string

	// Load fetches values by key.
	Load dataloader.BatchLoader

	MaxBatchSize uint
	DisableCache bool
}

// Plugin wires data loaders into field resolvers.
type Plugin struct {
	plugin.BasePlugin
	executor concurrent.Executor
	requests *plugin.RequestCache[*dataloader.Manager]
}

var _ plugin.Plugin = (*Plugin)(nil)

// Option configures the plugin.
type Option func(p *Plugin)

// WithExecutor runs the batches of every loader on executor.
func WithExecutor(executor concurrent.Executor) Option {
	return func(p *Plugin) {
		p.executor = executor
	}
}

// New creates the plugin.
func New(opts ...Option) *Plugin {
	p := &Plugin{
		BasePlugin: plugin.NewBasePlugin(Name),
		requests: plugin.NewRequestCache(func(interface{}) (*dataloader.Manager, error) {
			return dataloader.NewManager(), nil
		}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func fieldLoaderOf(config *schema.FieldConfig) (*FieldLoader, error) {
	value := config.Options.Get(OptionKey)
	if value == nil {
		return nil, nil
	}

	loader, ok := value.(*FieldLoader)
	if !ok || loader == nil || loader.Load == nil {
		return nil, graphql.NewError(
			fmt.Sprintf("%s.%s: %q option must be a *FieldLoader with a Load function but got %T",
				config.ParentType, config.Name, OptionKey, value),
			graphql.Op("loaders.OnOutputFieldConfig"), graphql.ErrKindInvalidType)
	}
	return loader, nil
}

// OnOutputFieldConfig implements plugin.Plugin. It rejects malformed loader options and names
// unnamed loaders after their field.
func (p *Plugin) OnOutputFieldConfig(config *schema.FieldConfig) error {
	loader, err := fieldLoaderOf(config)
	if err != nil || loader == nil {
		return err
	}
	if len(loader.Name) == 0 {
		loader.Name = config.ParentType + "." + config.Name
	}
	return nil
}

// WrapOutputField implements plugin.Plugin.
func (p *Plugin) WrapOutputField(config *schema.FieldConfig, options *plugin.BuildOptions) []plugin.FieldWrapper {
	loader, _ := fieldLoaderOf(config)
	if loader == nil {
		return nil
	}

	list := config.Type != nil && config.Type.OfType != nil

	return []plugin.FieldWrapper{
		plugin.FieldWrapperFuncs{
			Resolver: func(resolver graphql.FieldResolver, config *schema.FieldConfig) graphql.FieldResolver {
				return graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
					key, err := resolver.Resolve(ctx, source, info)
					if err != nil || key == nil {
						return key, err
					}
					return p.load(ctx, info.AppContext(), loader, key, list)
				})
			},
		},
	}
}

func (p *Plugin) load(
	ctx context.Context,
	request interface{},
	fieldLoader *FieldLoader,
	key interface{},
	list bool) (interface{}, error) {
	manager, err := p.requests.Get(request)
	if err != nil {
		return nil, err
	}

	loader, err := manager.GetOrCreate(fieldLoader.Name, dataloader.Config{
		BatchLoader:  fieldLoader.Load,
		MaxBatchSize: fieldLoader.MaxBatchSize,
		DisableCache: fieldLoader.DisableCache,
		Executor:     p.executor,
	})
	if err != nil {
		return nil, err
	}

	if !list {
		return loader.Load(ctx, key)
	}

	v := reflect.ValueOf(key)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, graphql.NewError(
			fmt.Sprintf("loader %s expects a list of keys for a list field but got %T", fieldLoader.Name, key),
			graphql.Op("loaders.load"), graphql.ErrKindInvalidType)
	}
	keys := make([]dataloader.Key, v.Len())
	for i := range keys {
		keys[i] = v.Index(i).Interface()
	}
	return loader.LoadMany(ctx, keys)
}

// Manager returns the loaders of request, creating an empty set on first use. Use it to prime
// loaders or to dispatch them explicitly.
func (p *Plugin) Manager(request interface{}) (*dataloader.Manager, error) {
	return p.requests.Get(request)
}

// Release drops the loaders of request.
func (p *Plugin) Release(request interface{}) {
	p.requests.Delete(request)
}

// Requests returns the number of requests that hold loaders.
func (p *Plugin) Requests() int {
	return p.requests.Len()
}
