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

// Package plugin defines the extension protocol of the schema build pipeline.
//
// A Plugin observes every config before it is built and may decorate the resolvers of built fields
// and abstract types. Plugins embed BasePlugin to pick up no-op defaults and override only the hooks
// they care about. Merge chains several plugins into the single pipeline the build cache drives.
package plugin

import (
	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/schema"
)

// BuildOptions are given to ToSchema and passed through to every build hook.
type BuildOptions struct {
	// Values holds arbitrary options; each plugin reads the entries it owns.
	Values map[string]interface{}
}

// Get returns the option value for key or nil. It is safe to call on a nil BuildOptions.
func (options *BuildOptions) Get(key string) interface{} {
	if options == nil {
		return nil
	}
	return options.Values[key]
}

// Plugin is the set of hooks a plugin may implement.
//
// The On*Config hooks run once per entity during BuildAll, before the entity is built. They may
// modify the config in place; the built type sees the modified config. A returned error aborts the
// build and is handed to the caller unmodified.
//
// The Wrap* hooks return a replacement for the given resolver. Returning the input as is declines
// to wrap.
type Plugin interface {
	// Name identifies the plugin.
	Name() string

	OnTypeConfig(config *schema.TypeConfig) error
	OnOutputFieldConfig(config *schema.FieldConfig) error
	OnInputFieldConfig(config *schema.InputFieldConfig) error
	OnEnumValueConfig(config *schema.EnumValueConfig) error

	// BeforeBuild is called after the config store is closed and before any type is built.
	BeforeBuild(options *BuildOptions) error

	// AfterBuild is called with the assembled schema.
	AfterBuild(s *graphql.Schema, options *BuildOptions) error

	// WrapOutputField returns the per-field wrappers for the field. They are applied to the raw
	// resolver and subscriber before WrapResolve and WrapSubscribe.
	WrapOutputField(config *schema.FieldConfig, options *BuildOptions) []FieldWrapper

	// WrapResolve decorates the resolver of an output field.
	WrapResolve(
		resolver graphql.FieldResolver,
		config *schema.FieldConfig,
		options *BuildOptions) graphql.FieldResolver

	// WrapSubscribe decorates the subscriber of an output field. subscriber may be nil.
	WrapSubscribe(
		subscriber graphql.FieldResolver,
		config *schema.FieldConfig,
		options *BuildOptions) graphql.FieldResolver

	// WrapResolveType decorates the type resolver of an Interface or a Union.
	WrapResolveType(
		resolver graphql.TypeResolver,
		config *schema.TypeConfig,
		options *BuildOptions) graphql.TypeResolver
}

// BasePlugin implements every hook of Plugin as a no-op. Embed it in a plugin struct.
type BasePlugin struct {
	name string
}

// NewBasePlugin returns a BasePlugin reporting name from Name.
func NewBasePlugin(name string) BasePlugin {
	return BasePlugin{name}
}

var _ Plugin = BasePlugin{}

// Name implements Plugin.
func (p BasePlugin) Name() string {
	return p.name
}

// OnTypeConfig implements Plugin.
func (BasePlugin) OnTypeConfig(*schema.TypeConfig) error {
	return nil
}

// OnOutputFieldConfig implements Plugin.
func (BasePlugin) OnOutputFieldConfig(*schema.FieldConfig) error {
	return nil
}

// OnInputFieldConfig implements Plugin.
func (BasePlugin) OnInputFieldConfig(*schema.InputFieldConfig) error {
	return nil
}

// OnEnumValueConfig implements Plugin.
func (BasePlugin) OnEnumValueConfig(*schema.EnumValueConfig) error {
	return nil
}

// BeforeBuild implements Plugin.
func (BasePlugin) BeforeBuild(*BuildOptions) error {
	return nil
}

// AfterBuild implements Plugin.
func (BasePlugin) AfterBuild(*graphql.Schema, *BuildOptions) error {
	return nil
}

// WrapOutputField implements Plugin.
func (BasePlugin) WrapOutputField(*schema.FieldConfig, *BuildOptions) []FieldWrapper {
	return nil
}

// WrapResolve implements Plugin.
func (BasePlugin) WrapResolve(
	resolver graphql.FieldResolver,
	config *schema.FieldConfig,
	options *BuildOptions) graphql.FieldResolver {
	return resolver
}

// WrapSubscribe implements Plugin.
func (BasePlugin) WrapSubscribe(
	subscriber graphql.FieldResolver,
	config *schema.FieldConfig,
	options *BuildOptions) graphql.FieldResolver {
	return subscriber
}

// WrapResolveType implements Plugin.
func (BasePlugin) WrapResolveType(
	resolver graphql.TypeResolver,
	config *schema.TypeConfig,
	options *BuildOptions) graphql.TypeResolver {
	return resolver
}
