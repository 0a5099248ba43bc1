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

// Package directives is a plugin that turns the "directives" builder option of types, fields,
// arguments and enum values into applied directives recorded in the extensions of the built schema.
//
// The option accepts one of:
//
//	[]schema.AppliedDirective
//	map[string]interface{}   // directive name to its arguments, applied in name order
//	[]interface{}            // list of directive names or {name: ..., args: {...}} maps
//
// The last form is what a YAML or JSON document decodes into.
package directives

import (
	"fmt"
	"sort"

	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/internal/util"
	"github.com/botobag/forge/schema"
	"github.com/botobag/forge/schema/plugin"
)

// Name of the plugin in the plugin registry
const Name = "directives"

// OptionKey is the key of the builder option read by the plugin.
const OptionKey = "directives"

func init() {
	plugin.MustRegister(Name, func() plugin.Plugin {
		return New()
	})
}

// Plugin records directives given in builder options.
type Plugin struct {
	plugin.BasePlugin

	// known lists accepted directive names; every name is accepted if it is empty.
	known []string
}

var _ plugin.Plugin = (*Plugin)(nil)

// New creates the plugin. If known is given, applying a directive not in it fails the build.
func New(known ...string) *Plugin {
	known = append([]string(nil), known...)
	sort.Strings(known)
	return &Plugin{
		BasePlugin: plugin.NewBasePlugin(Name),
		known:      known,
	}
}

// OnTypeConfig implements plugin.Plugin.
func (p *Plugin) OnTypeConfig(config *schema.TypeConfig) error {
	return p.apply(&config.Extensions, config.Options, config.Name)
}

// OnOutputFieldConfig implements plugin.Plugin.
func (p *Plugin) OnOutputFieldConfig(config *schema.FieldConfig) error {
	return p.apply(&config.Extensions, config.Options, config.ParentType+"."+config.Name)
}

// OnInputFieldConfig implements plugin.Plugin.
func (p *Plugin) OnInputFieldConfig(config *schema.InputFieldConfig) error {
	owner := config.ParentType + "." + config.Name
	if config.Kind == schema.InputFieldKindArg {
		owner = fmt.Sprintf("%s.%s(%s:)", config.ParentType, config.ParentField, config.Name)
	}
	return p.apply(&config.Extensions, config.Options, owner)
}

// OnEnumValueConfig implements plugin.Plugin.
func (p *Plugin) OnEnumValueConfig(config *schema.EnumValueConfig) error {
	return p.apply(&config.Extensions, config.Options, config.ParentType+"."+config.Name)
}

func (p *Plugin) apply(extensions *graphql.Extensions, options schema.Options, owner string) error {
	value := options.Get(OptionKey)
	if value == nil {
		return nil
	}

	applied, err := Parse(value)
	if err != nil {
		return graphql.NewError(fmt.Sprintf("invalid directives on %s", owner), err)
	}

	if len(p.known) > 0 {
		for _, directive := range applied {
			i := sort.SearchStrings(p.known, directive.Name)
			if i == len(p.known) || p.known[i] != directive.Name {
				return graphql.NewError(
					fmt.Sprintf("unknown directive @%s on %s.%s", directive.Name, owner,
						util.DidYouMean(util.SuggestionList(directive.Name, p.known))),
					graphql.Op("directives.apply"), graphql.ErrKindUnknownType)
			}
		}
	}

	if len(applied) == 0 {
		return nil
	}

	if *extensions == nil {
		*extensions = graphql.Extensions{}
	}
	prev, _ := (*extensions)[schema.DirectivesExtensionKey].([]schema.AppliedDirective)
	(*extensions)[schema.DirectivesExtensionKey] = append(prev, applied...)
	return nil
}

// Parse normalizes the value of the directives option.
func Parse(value interface{}) ([]schema.AppliedDirective, error) {
	const op graphql.Op = "directives.Parse"

	switch value := value.(type) {
	case nil:
		return nil, nil

	case []schema.AppliedDirective:
		for _, directive := range value {
			if len(directive.Name) == 0 {
				return nil, graphql.NewError("directive must have a name", op, graphql.ErrKindInvalidType)
			}
		}
		return value, nil

	case map[string]interface{}:
		names := make([]string, 0, len(value))
		for name := range value {
			names = append(names, name)
		}
		sort.Strings(names)

		result := make([]schema.AppliedDirective, 0, len(names))
		for _, name := range names {
			args, err := argsOf(name, value[name])
			if err != nil {
				return nil, err
			}
			result = append(result, schema.AppliedDirective{Name: name, Args: args})
		}
		return result, nil

	case []interface{}:
		result := make([]schema.AppliedDirective, 0, len(value))
		for _, item := range value {
			switch item := item.(type) {
			case string:
				result = append(result, schema.AppliedDirective{Name: item})

			case map[string]interface{}:
				name, _ := item["name"].(string)
				if len(name) == 0 {
					return nil, graphql.NewError(
						fmt.Sprintf("directive entry %v must have a name", item), op, graphql.ErrKindInvalidType)
				}
				for key := range item {
					if key != "name" && key != "args" {
						return nil, graphql.NewError(
							fmt.Sprintf("unexpected key %q in directive @%s", key, name), op, graphql.ErrKindInvalidType)
					}
				}
				args, err := argsOf(name, item["args"])
				if err != nil {
					return nil, err
				}
				result = append(result, schema.AppliedDirective{Name: name, Args: args})

			default:
				return nil, graphql.NewError(
					fmt.Sprintf("unexpected directive entry of type %T", item), op, graphql.ErrKindInvalidType)
			}
		}
		return result, nil
	}

	return nil, graphql.NewError(fmt.Sprintf("unexpected directives value of type %T", value), op,
		graphql.ErrKindInvalidType)
}

func argsOf(name string, value interface{}) (map[string]interface{}, error) {
	switch value := value.(type) {
	case nil:
		return nil, nil
	case map[string]interface{}:
		return value, nil
	}
	return nil, graphql.NewError(
		fmt.Sprintf("arguments of directive @%s must be a map but got %T", name, value),
		graphql.Op("directives.Parse"), graphql.ErrKindInvalidType)
}
