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
	"strings"

	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/schema"
)

// pipeline chains plugins. Notification hooks run in order; wrap hooks compose so that the first
// plugin's wrapper is the outermost one.
type pipeline struct {
	plugins []Plugin
}

var _ Plugin = (*pipeline)(nil)

// Merge combines plugins into one Plugin. Merging a single plugin returns it as is.
func Merge(plugins ...Plugin) Plugin {
	if len(plugins) == 1 {
		return plugins[0]
	}

	p := &pipeline{}
	for _, plugin := range plugins {
		// Flatten nested pipelines.
		if nested, ok := plugin.(*pipeline); ok {
			p.plugins = append(p.plugins, nested.plugins...)
		} else {
			p.plugins = append(p.plugins, plugin)
		}
	}
	return p
}

// Name implements Plugin. It joins the names of the merged plugins with ",".
func (p *pipeline) Name() string {
	names := make([]string, len(p.plugins))
	for i, plugin := range p.plugins {
		names[i] = plugin.Name()
	}
	return strings.Join(names, ",")
}

// OnTypeConfig implements Plugin.
func (p *pipeline) OnTypeConfig(config *schema.TypeConfig) error {
	for _, plugin := range p.plugins {
		if err := plugin.OnTypeConfig(config); err != nil {
			return err
		}
	}
	return nil
}

// OnOutputFieldConfig implements Plugin.
func (p *pipeline) OnOutputFieldConfig(config *schema.FieldConfig) error {
	for _, plugin := range p.plugins {
		if err := plugin.OnOutputFieldConfig(config); err != nil {
			return err
		}
	}
	return nil
}

// OnInputFieldConfig implements Plugin.
func (p *pipeline) OnInputFieldConfig(config *schema.InputFieldConfig) error {
	for _, plugin := range p.plugins {
		if err := plugin.OnInputFieldConfig(config); err != nil {
			return err
		}
	}
	return nil
}

// OnEnumValueConfig implements Plugin.
func (p *pipeline) OnEnumValueConfig(config *schema.EnumValueConfig) error {
	for _, plugin := range p.plugins {
		if err := plugin.OnEnumValueConfig(config); err != nil {
			return err
		}
	}
	return nil
}

// BeforeBuild implements Plugin.
func (p *pipeline) BeforeBuild(options *BuildOptions) error {
	for _, plugin := range p.plugins {
		if err := plugin.BeforeBuild(options); err != nil {
			return err
		}
	}
	return nil
}

// AfterBuild implements Plugin.
func (p *pipeline) AfterBuild(s *graphql.Schema, options *BuildOptions) error {
	for _, plugin := range p.plugins {
		if err := plugin.AfterBuild(s, options); err != nil {
			return err
		}
	}
	return nil
}

// WrapOutputField implements Plugin. Wrappers of all plugins are collected in plugin order.
func (p *pipeline) WrapOutputField(config *schema.FieldConfig, options *BuildOptions) []FieldWrapper {
	var wrappers []FieldWrapper
	for _, plugin := range p.plugins {
		wrappers = append(wrappers, plugin.WrapOutputField(config, options)...)
	}
	return wrappers
}

// WrapResolve implements Plugin.
func (p *pipeline) WrapResolve(
	resolver graphql.FieldResolver,
	config *schema.FieldConfig,
	options *BuildOptions) graphql.FieldResolver {
	for i := len(p.plugins) - 1; i >= 0; i-- {
		resolver = p.plugins[i].WrapResolve(resolver, config, options)
	}
	return resolver
}

// WrapSubscribe implements Plugin.
func (p *pipeline) WrapSubscribe(
	subscriber graphql.FieldResolver,
	config *schema.FieldConfig,
	options *BuildOptions) graphql.FieldResolver {
	for i := len(p.plugins) - 1; i >= 0; i-- {
		subscriber = p.plugins[i].WrapSubscribe(subscriber, config, options)
	}
	return subscriber
}

// WrapResolveType implements Plugin.
func (p *pipeline) WrapResolveType(
	resolver graphql.TypeResolver,
	config *schema.TypeConfig,
	options *BuildOptions) graphql.TypeResolver {
	for i := len(p.plugins) - 1; i >= 0; i-- {
		resolver = p.plugins[i].WrapResolveType(resolver, config, options)
	}
	return resolver
}
