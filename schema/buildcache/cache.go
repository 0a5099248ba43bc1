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

// Package buildcache turns the configs of a closed config store into graphql types.
//
// BuildAll creates one graphql type per config. Edges between types (fields, interfaces, union
// members) are thunks that look types up by name in the cache when the graphql type is finalized,
// so types may refer to each other in any order and in cycles.
package buildcache

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/schema"
	"github.com/botobag/forge/schema/configstore"
	"github.com/botobag/forge/schema/plugin"
)

// resolverPair is the composed resolver and subscriber of a field.
type resolverPair struct {
	resolver   graphql.FieldResolver
	subscriber graphql.FieldResolver
}

// Cache maps type names to built graphql types.
type Cache struct {
	logger  *slog.Logger
	store   *configstore.Store
	plugin  plugin.Plugin
	options *plugin.BuildOptions

	types map[string]graphql.NamedType

	// mutex guards the memos below. Type resolvers consult implementers while serving requests.
	mutex        sync.Mutex
	implementers map[string][]*schema.TypeConfig
	resolvers    map[*schema.FieldConfig]resolverPair
}

// Option configures a Cache.
type Option func(cache *Cache)

// WithLogger sets the logger for debug messages. slog.Default() is used if not given.
func WithLogger(logger *slog.Logger) Option {
	return func(cache *Cache) {
		cache.logger = logger
	}
}

// WithBuildOptions sets the options passed to the wrap hooks of the plugin.
func WithBuildOptions(options *plugin.BuildOptions) Option {
	return func(cache *Cache) {
		cache.options = options
	}
}

// New creates a Cache that builds the configs in store. p may be nil if no plugin is used.
func New(store *configstore.Store, p plugin.Plugin, opts ...Option) *Cache {
	if p == nil {
		p = plugin.NewBasePlugin("")
	}
	cache := &Cache{
		logger:       slog.Default(),
		store:        store,
		plugin:       p,
		options:      &plugin.BuildOptions{},
		types:        map[string]graphql.NamedType{},
		implementers: map[string][]*schema.TypeConfig{},
		resolvers:    map[*schema.FieldConfig]resolverPair{},
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

// BuildAll runs the config hooks of the plugin on every type, field, argument, input field and
// enum value, then builds a graphql type for every config in the store. Errors from hooks are
// returned as is.
func (cache *Cache) BuildAll() error {
	const op graphql.Op = "buildcache.BuildAll"

	if !cache.store.Closed() {
		return graphql.NewError("config store must be prepared for build before building types", op,
			graphql.ErrKindInvalidType)
	}

	configs := cache.store.TypeConfigs()
	for _, config := range configs {
		if _, exists := cache.types[config.Name]; exists {
			return nameCollisionError(op, config.Name)
		}
	}

	for _, config := range configs {
		if err := cache.runConfigHooks(config); err != nil {
			return err
		}
	}

	for _, config := range configs {
		t, err := cache.buildType(config)
		if err != nil {
			return err
		}
		if err := cache.addType(op, config.Name, t); err != nil {
			return err
		}
		cache.logger.Debug("built type", "name", config.Name, "kind", config.Kind.String())
	}

	return nil
}

func (cache *Cache) runConfigHooks(config *schema.TypeConfig) error {
	if err := cache.plugin.OnTypeConfig(config); err != nil {
		return err
	}

	switch {
	case config.Kind.HasFields():
		fields, err := cache.store.Fields(config.Name, config.Kind)
		if err != nil {
			return err
		}
		for _, name := range sortedFieldNames(fields) {
			field := fields[name]
			if err := cache.plugin.OnOutputFieldConfig(field); err != nil {
				return err
			}
			for _, argName := range sortedInputFieldNames(field.Args) {
				if err := cache.plugin.OnInputFieldConfig(field.Args[argName]); err != nil {
					return err
				}
			}
		}

	case config.Kind == schema.KindInputObject:
		fields, err := cache.store.InputFields(config.Name)
		if err != nil {
			return err
		}
		for _, name := range sortedInputFieldNames(fields) {
			if err := cache.plugin.OnInputFieldConfig(fields[name]); err != nil {
				return err
			}
		}

	case config.Kind == schema.KindEnum:
		for _, value := range config.Values {
			if len(value.ParentType) == 0 {
				value.ParentType = config.Name
			}
			if err := cache.plugin.OnEnumValueConfig(value); err != nil {
				return err
			}
		}
	}

	return nil
}

func (cache *Cache) addType(op graphql.Op, name string, t graphql.NamedType) error {
	if _, exists := cache.types[name]; exists {
		return nameCollisionError(op, name)
	}
	cache.types[name] = t
	return nil
}

func nameCollisionError(op graphql.Op, name string) error {
	return graphql.NewError(
		fmt.Sprintf("reference or name has already been used to create another type (%s)", name),
		op, graphql.ErrKindNameCollision, graphql.ErrorExtensions{"ref": name})
}

func typeKindMismatchError(op graphql.Op, ref interface{}, format string, args ...interface{}) error {
	return graphql.NewError(fmt.Sprintf(format, args...), op, graphql.ErrKindTypeKindMismatch,
		graphql.ErrorExtensions{"ref": schema.RefString(ref)})
}

// Type returns the built type ref resolves to. Refs and names of the built-in scalars resolve to
// the singletons in the graphql package.
func (cache *Cache) Type(ref interface{}) (graphql.NamedType, error) {
	const op graphql.Op = "buildcache.Type"

	if name, ok := schema.BuiltinScalarName(ref); ok {
		return graphql.BuiltinScalar(name), nil
	}
	if name, ok := ref.(string); ok {
		if scalar := graphql.BuiltinScalar(name); scalar != nil {
			return scalar, nil
		}
	}

	config, err := cache.store.TypeConfig(ref)
	if err != nil {
		return nil, err
	}

	t, exists := cache.types[config.Name]
	if !exists {
		return nil, graphql.NewError(fmt.Sprintf("missing implementation of type %s", config.Name),
			op, graphql.ErrKindUnknownType, graphql.ErrorExtensions{"ref": config.Name})
	}
	return t, nil
}

// OutputType returns the built type for ref and checks that it may be the type of a field.
func (cache *Cache) OutputType(ref interface{}) (graphql.NamedType, error) {
	t, err := cache.Type(ref)
	if err != nil {
		return nil, err
	}
	if _, ok := t.(graphql.InputObject); ok {
		return nil, typeKindMismatchError("buildcache.OutputType", ref,
			"expected %s to be an output type but it was defined as an InputObject", schema.RefString(ref))
	}
	return t, nil
}

// InputType returns the built type for ref and checks that it may be the type of an argument or
// an input field.
func (cache *Cache) InputType(ref interface{}) (graphql.NamedType, error) {
	t, err := cache.Type(ref)
	if err != nil {
		return nil, err
	}
	switch t.(type) {
	case graphql.Scalar, graphql.Enum, graphql.InputObject:
		return t, nil
	}
	return nil, typeKindMismatchError("buildcache.InputType", ref,
		"expected %s to be an input type but it was defined as %s", schema.RefString(ref), kindOf(t))
}

// TypeOfKind returns the built type for ref and checks that it was built from a config of the
// given kind. Root kinds are treated as Object.
func (cache *Cache) TypeOfKind(ref interface{}, kind schema.Kind) (graphql.NamedType, error) {
	t, err := cache.Type(ref)
	if err != nil {
		return nil, err
	}
	if kindOf(t) != kind.GraphQLKind() {
		return nil, typeKindMismatchError("buildcache.TypeOfKind", ref,
			"expected %s to be of kind %s but it was defined as %s", schema.RefString(ref), kind, kindOf(t))
	}
	return t, nil
}

// kindOf returns the kind of config a built type corresponds to.
func kindOf(t graphql.Type) schema.Kind {
	switch t.(type) {
	case graphql.Object:
		return schema.KindObject
	case graphql.Interface:
		return schema.KindInterface
	case graphql.Union:
		return schema.KindUnion
	case graphql.Enum:
		return schema.KindEnum
	case graphql.Scalar:
		return schema.KindScalar
	case graphql.InputObject:
		return schema.KindInputObject
	}
	return 0
}

// Implementers returns the configs of Object types that declare to implement the named interface,
// in declaration order. The result is computed once per interface.
func (cache *Cache) Implementers(interfaceName string) []*schema.TypeConfig {
	cache.mutex.Lock()
	defer cache.mutex.Unlock()

	if implementers, exists := cache.implementers[interfaceName]; exists {
		return implementers
	}

	var implementers []*schema.TypeConfig
	for _, config := range cache.store.TypeConfigs() {
		if config.Kind != schema.KindObject {
			continue
		}
		for _, ref := range config.Interfaces {
			iface, err := cache.store.TypeConfig(ref)
			if err == nil && iface.Name == interfaceName {
				implementers = append(implementers, config)
				break
			}
		}
	}

	cache.implementers[interfaceName] = implementers
	return implementers
}

// RootTypes holds the root operation types of a schema. Missing roots are nil.
type RootTypes struct {
	Query        graphql.Object
	Mutation     graphql.Object
	Subscription graphql.Object
}

// RootTypes returns the types built from configs of kind Query, Mutation and Subscription.
func (cache *Cache) RootTypes() RootTypes {
	var roots RootTypes
	for _, config := range cache.store.TypeConfigs() {
		object, _ := cache.types[config.Name].(graphql.Object)
		switch config.Kind {
		case schema.KindQuery:
			roots.Query = object
		case schema.KindMutation:
			roots.Mutation = object
		case schema.KindSubscription:
			roots.Subscription = object
		}
	}
	return roots
}

// Types returns every built type in name order.
func (cache *Cache) Types() []graphql.NamedType {
	names := make([]string, 0, len(cache.types))
	for name := range cache.types {
		names = append(names, name)
	}
	sort.Strings(names)

	types := make([]graphql.NamedType, len(names))
	for i, name := range names {
		types[i] = cache.types[name]
	}
	return types
}

func sortedFieldNames(fields schema.FieldConfigMap) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedInputFieldNames(fields schema.InputFieldConfigMap) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
