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

// Package schemabuilder is the entry point for building a schema in code.
//
// A Builder owns a config store and the plugin pipeline of one schema. Application code registers
// types and fields through it in any order and calls ToSchema once to get the built schema.
//
//	builder, err := schemabuilder.New(nil)
//	userRef := schema.NewTypeRef(schema.KindObject, "User")
//	queryRef, err := builder.QueryType(schema.FieldConfigMap{
//		"me": {Type: builder.Output(userRef)},
//	})
//	err = builder.AddType(&schema.TypeConfig{Kind: schema.KindObject, Name: "User"}, userRef)
//	s, err := builder.ToSchema(nil)
package schemabuilder

import (
	"fmt"
	"log/slog"

	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/internal/util"
	"github.com/botobag/forge/schema"
	"github.com/botobag/forge/schema/buildcache"
	"github.com/botobag/forge/schema/configstore"
	"github.com/botobag/forge/schema/plugin"
)

// Builder collects the declarations of one schema.
type Builder struct {
	options *Options
	logger  *slog.Logger
	store   *configstore.Store

	// plugins in pipeline order and the pipeline merged from them
	plugins  []plugin.Plugin
	pipeline plugin.Plugin

	cache *buildcache.Cache
}

// New creates a Builder. The plugins named in options are created from the plugin registry and run
// ahead of the given plugins. A nil options means DefaultOptions().
func New(options *Options, plugins ...plugin.Plugin) (*Builder, error) {
	const op graphql.Op = "schemabuilder.New"

	if options == nil {
		options = DefaultOptions()
	}

	logger, err := options.logger()
	if err != nil {
		return nil, err
	}

	enabled := make([]plugin.Plugin, 0, len(options.Plugins)+len(plugins))
	for _, name := range options.Plugins {
		p, err := plugin.New(name)
		if err != nil {
			return nil, err
		}
		enabled = append(enabled, p)
	}
	enabled = append(enabled, plugins...)

	seen := map[string]bool{}
	for _, p := range enabled {
		if seen[p.Name()] {
			return nil, graphql.NewError(fmt.Sprintf("plugin %s is enabled more than once", p.Name()), op)
		}
		seen[p.Name()] = true
	}

	builder := &Builder{
		options:  options,
		logger:   logger,
		store:    configstore.New(configstore.WithLogger(logger)),
		plugins:  enabled,
		pipeline: plugin.Merge(enabled...),
	}

	for _, ref := range schema.BuiltinScalarRefs() {
		name, _ := schema.BuiltinScalarName(ref)
		if err := builder.store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindScalar, Name: name}, ref); err != nil {
			return nil, err
		}
	}

	logger.Debug("schema builder created", "plugins", len(enabled))
	return builder, nil
}

// Options returns the options of the builder.
func (builder *Builder) Options() *Options {
	return builder.options
}

// Store returns the config store of the builder.
func (builder *Builder) Store() *configstore.Store {
	return builder.store
}

// Plugin returns the enabled plugin with the given name.
func (builder *Builder) Plugin(name string) (plugin.Plugin, error) {
	names := make([]string, 0, len(builder.plugins))
	for _, p := range builder.plugins {
		if p.Name() == name {
			return p, nil
		}
		names = append(names, p.Name())
	}
	return nil, graphql.NewError(
		fmt.Sprintf("plugin %s is not enabled.%s", name, util.DidYouMean(util.SuggestionList(name, names))),
		graphql.Op("schemabuilder.Plugin"), graphql.ErrKindUnknownType)
}

// AddType registers a type config under ref.
func (builder *Builder) AddType(config *schema.TypeConfig, ref interface{}) error {
	return builder.store.AddTypeConfig(config, ref)
}

// AddFields adds output fields to the Object or Interface referenced by ref.
func (builder *Builder) AddFields(ref interface{}, fields schema.FieldConfigMap) error {
	return builder.store.AddFields(ref, fields)
}

// AddInputFields adds fields to the InputObject referenced by ref.
func (builder *Builder) AddInputFields(ref interface{}, fields schema.InputFieldConfigMap) error {
	return builder.store.AddInputFields(ref, fields)
}

// AssociateRefWithName lets key stand for the type name in every place a reference is accepted.
func (builder *Builder) AssociateRefWithName(key interface{}, name string) error {
	return builder.store.AssociateRefWithName(key, name)
}

func (builder *Builder) rootType(kind schema.Kind, fields schema.FieldConfigMap) (*schema.TypeRef, error) {
	name := kind.String()
	ref := schema.NewTypeRef(kind, name)
	if err := builder.store.AddTypeConfig(&schema.TypeConfig{Kind: kind, Name: name}, ref); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := builder.store.AddFields(ref, fields); err != nil {
			return nil, err
		}
	}
	return ref, nil
}

// QueryType declares the Query root type with the given fields and returns its reference.
func (builder *Builder) QueryType(fields schema.FieldConfigMap) (*schema.TypeRef, error) {
	return builder.rootType(schema.KindQuery, fields)
}

// MutationType declares the Mutation root type.
func (builder *Builder) MutationType(fields schema.FieldConfigMap) (*schema.TypeRef, error) {
	return builder.rootType(schema.KindMutation, fields)
}

// SubscriptionType declares the Subscription root type.
func (builder *Builder) SubscriptionType(fields schema.FieldConfigMap) (*schema.TypeRef, error) {
	return builder.rootType(schema.KindSubscription, fields)
}

// Output returns the type of an output field referring to ref with the default field nullability.
func (builder *Builder) Output(ref interface{}) *schema.TypeParam {
	return schema.NamedType(ref, builder.options.DefaultFieldNullability)
}

// OutputList is like Output for a list of ref. The list and its items take the default nullability.
func (builder *Builder) OutputList(ref interface{}) *schema.TypeParam {
	return schema.ListType(builder.Output(ref), builder.options.DefaultFieldNullability)
}

// Input returns the type of an argument or input field referring to ref with the default
// requiredness.
func (builder *Builder) Input(ref interface{}) *schema.TypeParam {
	return schema.NamedType(ref, !builder.options.DefaultInputFieldRequiredness)
}

// InputList is like Input for a list of ref.
func (builder *Builder) InputList(ref interface{}) *schema.TypeParam {
	return schema.ListType(builder.Input(ref), !builder.options.DefaultInputFieldRequiredness)
}

// Cache returns the build cache once ToSchema has run and nil before.
func (builder *Builder) Cache() *buildcache.Cache {
	return builder.cache
}

// ToSchema closes the builder and builds the schema. It can be called only once.
func (builder *Builder) ToSchema(options *plugin.BuildOptions) (*graphql.Schema, error) {
	if err := builder.store.PrepareForBuild(); err != nil {
		return nil, err
	}

	if err := builder.pipeline.BeforeBuild(options); err != nil {
		return nil, err
	}

	cache := buildcache.New(builder.store, builder.pipeline,
		buildcache.WithLogger(builder.logger),
		buildcache.WithBuildOptions(options))
	if err := cache.BuildAll(); err != nil {
		return nil, err
	}
	builder.cache = cache

	types := cache.Types()
	config := &graphql.SchemaConfig{
		Types: make([]graphql.Type, 0, len(types)),
	}
	for _, t := range types {
		config.Types = append(config.Types, t)
	}
	roots := cache.RootTypes()
	config.Query = roots.Query
	config.Mutation = roots.Mutation
	config.Subscription = roots.Subscription

	s, err := graphql.NewSchema(config)
	if err != nil {
		return nil, err
	}

	if err := builder.pipeline.AfterBuild(s, options); err != nil {
		return nil, err
	}

	builder.logger.Info("schema built", "types", s.TypeMap().Len())
	return s, nil
}
