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

package buildcache

import (
	"fmt"

	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/schema"
	"github.com/botobag/forge/schema/plugin"
)

func (cache *Cache) buildType(config *schema.TypeConfig) (graphql.NamedType, error) {
	switch config.Kind {
	case schema.KindObject, schema.KindQuery, schema.KindMutation, schema.KindSubscription:
		return cache.buildObject(config)
	case schema.KindInterface:
		return cache.buildInterface(config)
	case schema.KindUnion:
		return cache.buildUnion(config)
	case schema.KindEnum:
		return cache.buildEnum(config)
	case schema.KindScalar:
		return cache.buildScalar(config)
	case schema.KindInputObject:
		return cache.buildInputObject(config)
	}
	return nil, graphql.NewError(fmt.Sprintf("type %s has unknown kind %s", config.Name, config.Kind),
		graphql.Op("buildcache.buildType"), graphql.ErrKindInvalidType)
}

// withOptions returns a copy of extensions with options recorded under schema.OptionsExtensionKey.
func withOptions(extensions graphql.Extensions, options schema.Options) graphql.Extensions {
	if options == nil {
		return extensions
	}
	result := make(graphql.Extensions, len(extensions)+1)
	for key, value := range extensions {
		result[key] = value
	}
	result[schema.OptionsExtensionKey] = options
	return result
}

func (cache *Cache) buildObject(config *schema.TypeConfig) (graphql.NamedType, error) {
	objectConfig := &graphql.ObjectConfig{
		Name:        config.Name,
		Description: config.Description,
		IsTypeOf:    config.IsTypeOf,
		Extensions:  withOptions(config.Extensions, config.Options),
		Fields: func() (graphql.Fields, error) {
			return cache.fieldsOf(config, nil)
		},
	}

	// Root types implement no interface.
	if !config.Kind.IsRoot() {
		objectConfig.Interfaces = func() ([]graphql.Interface, error) {
			return cache.interfacesOf(config)
		}
	}

	return graphql.NewObject(objectConfig)
}

func (cache *Cache) buildInterface(config *schema.TypeConfig) (graphql.NamedType, error) {
	return graphql.NewInterface(&graphql.InterfaceConfig{
		Name:        config.Name,
		Description: config.Description,
		Extensions:  withOptions(config.Extensions, config.Options),
		Interfaces: func() ([]graphql.Interface, error) {
			return cache.interfacesOf(config)
		},
		Fields: func() (graphql.Fields, error) {
			return cache.fieldsOf(config, nil)
		},
		TypeResolver: cache.plugin.WrapResolveType(cache.interfaceTypeResolver(config), config, cache.options),
	})
}

func (cache *Cache) buildUnion(config *schema.TypeConfig) (graphql.NamedType, error) {
	return graphql.NewUnion(&graphql.UnionConfig{
		Name:        config.Name,
		Description: config.Description,
		Extensions:  withOptions(config.Extensions, config.Options),
		Types: func() ([]graphql.Object, error) {
			members := make([]graphql.Object, 0, len(config.Types))
			for _, ref := range config.Types {
				t, err := cache.TypeOfKind(ref, schema.KindObject)
				if err != nil {
					return nil, err
				}
				members = append(members, t.(graphql.Object))
			}
			return members, nil
		},
		TypeResolver: cache.plugin.WrapResolveType(cache.unionTypeResolver(config), config, cache.options),
	})
}

func (cache *Cache) buildEnum(config *schema.TypeConfig) (graphql.NamedType, error) {
	values := make([]graphql.EnumValueConfig, len(config.Values))
	for i, value := range config.Values {
		values[i] = graphql.EnumValueConfig{
			Name:        value.Name,
			Value:       value.Value,
			Description: value.Description,
			Deprecation: value.Deprecation,
			Extensions:  withOptions(value.Extensions, value.Options),
		}
	}

	return graphql.NewEnum(&graphql.EnumConfig{
		Name:        config.Name,
		Description: config.Description,
		Values:      values,
		Extensions:  withOptions(config.Extensions, config.Options),
	})
}

func (cache *Cache) buildScalar(config *schema.TypeConfig) (graphql.NamedType, error) {
	if scalar := graphql.BuiltinScalar(config.Name); scalar != nil {
		return scalar, nil
	}

	return graphql.NewScalar(&graphql.ScalarConfig{
		Name:          config.Name,
		Description:   config.Description,
		ResultCoercer: config.ResultCoercer,
		InputCoercer:  config.InputCoercer,
		Extensions:    withOptions(config.Extensions, config.Options),
	})
}

func (cache *Cache) buildInputObject(config *schema.TypeConfig) (graphql.NamedType, error) {
	return graphql.NewInputObject(&graphql.InputObjectConfig{
		Name:        config.Name,
		Description: config.Description,
		Extensions:  withOptions(config.Extensions, config.Options),
		Fields: func() (graphql.InputFields, error) {
			configs, err := cache.store.InputFields(config.Name)
			if err != nil {
				return nil, err
			}

			fields := make(graphql.InputFields, len(configs))
			for name, fieldConfig := range configs {
				t, err := cache.inputTypeParam(fieldConfig.Type)
				if err != nil {
					return nil, err
				}
				fields[name] = graphql.InputFieldConfig{
					Description:  fieldConfig.Description,
					Type:         t,
					DefaultValue: fieldConfig.DefaultValue,
					Extensions:   withOptions(fieldConfig.Extensions, fieldConfig.Options),
				}
			}
			return fields, nil
		},
	})
}

// interfacesOf resolves the interfaces declared by an Object or an Interface config.
func (cache *Cache) interfacesOf(config *schema.TypeConfig) ([]graphql.Interface, error) {
	interfaces := make([]graphql.Interface, 0, len(config.Interfaces))
	for _, ref := range config.Interfaces {
		t, err := cache.TypeOfKind(ref, schema.KindInterface)
		if err != nil {
			return nil, err
		}
		interfaces = append(interfaces, t.(graphql.Interface))
	}
	return interfaces, nil
}

// fieldsOf builds the fields of an Object or an Interface. Fields of implemented interfaces are
// inherited; when two interfaces define the same field, the one declared first wins. Fields of the
// type itself override inherited ones. Root types only have their own fields. visiting guards
// against interfaces that implement each other.
func (cache *Cache) fieldsOf(config *schema.TypeConfig, visiting map[string]bool) (graphql.Fields, error) {
	const op graphql.Op = "buildcache.fieldsOf"

	if visiting[config.Name] {
		return nil, graphql.NewError(fmt.Sprintf("interface %s implements itself", config.Name),
			op, graphql.ErrKindInvalidType, graphql.ErrorExtensions{"ref": config.Name})
	}

	own, err := cache.store.Fields(config.Name, config.Kind)
	if err != nil {
		return nil, err
	}

	fields := graphql.Fields{}
	if !config.Kind.IsRoot() && len(config.Interfaces) > 0 {
		if visiting == nil {
			visiting = map[string]bool{}
		}
		visiting[config.Name] = true
		defer delete(visiting, config.Name)

		for _, ref := range config.Interfaces {
			iface, err := cache.store.TypeConfig(ref)
			if err != nil {
				return nil, err
			}
			if iface.Kind != schema.KindInterface {
				return nil, typeKindMismatchError(op, ref,
					"expected %s to be of kind %s but it was defined as %s",
					schema.RefString(ref), schema.KindInterface, iface.Kind)
			}

			inherited, err := cache.fieldsOf(iface, visiting)
			if err != nil {
				return nil, err
			}
			for name, field := range inherited {
				if _, exists := fields[name]; !exists {
					fields[name] = field
				}
			}
		}
	}

	for name, fieldConfig := range own {
		field, err := cache.buildField(fieldConfig)
		if err != nil {
			return nil, err
		}
		fields[name] = field
	}

	return fields, nil
}

func (cache *Cache) buildField(config *schema.FieldConfig) (graphql.FieldConfig, error) {
	t, err := cache.outputTypeParam(config.Type)
	if err != nil {
		return graphql.FieldConfig{}, err
	}

	var args graphql.ArgumentConfigMap
	if len(config.Args) > 0 {
		args = make(graphql.ArgumentConfigMap, len(config.Args))
		for name, argConfig := range config.Args {
			argType, err := cache.inputTypeParam(argConfig.Type)
			if err != nil {
				return graphql.FieldConfig{}, err
			}

			defaultValue := argConfig.DefaultValue
			if defaultValue == graphql.NilInputFieldDefaultValue {
				defaultValue = graphql.NilArgumentDefaultValue
			}

			args[name] = graphql.ArgumentConfig{
				Description:  argConfig.Description,
				Type:         argType,
				DefaultValue: defaultValue,
				Extensions:   withOptions(argConfig.Extensions, argConfig.Options),
			}
		}
	}

	resolvers := cache.fieldResolvers(config)
	return graphql.FieldConfig{
		Description: config.Description,
		Type:        t,
		Args:        args,
		Resolver:    resolvers.resolver,
		Subscriber:  resolvers.subscriber,
		Deprecation: config.Deprecation,
		Extensions:  withOptions(config.Extensions, config.Options),
	}, nil
}

// fieldResolvers composes the resolver and subscriber of a field: field wrappers of the plugin wrap
// the raw functions first, then WrapResolve and WrapSubscribe wrap the result. The composition is
// done once per field config, so interfaces and the objects inheriting their fields share it.
func (cache *Cache) fieldResolvers(config *schema.FieldConfig) resolverPair {
	cache.mutex.Lock()
	defer cache.mutex.Unlock()

	if pair, exists := cache.resolvers[config]; exists {
		return pair
	}

	wrappers := cache.plugin.WrapOutputField(config, cache.options)

	resolver := config.Resolver
	if resolver == nil {
		resolver = graphql.DefaultFieldResolver()
	}
	resolver = plugin.ApplyResolverWrappers(resolver, config, wrappers)
	subscriber := plugin.ApplySubscriberWrappers(config.Subscriber, config, wrappers)

	pair := resolverPair{
		resolver:   cache.plugin.WrapResolve(resolver, config, cache.options),
		subscriber: cache.plugin.WrapSubscribe(subscriber, config, cache.options),
	}
	cache.resolvers[config] = pair
	return pair
}

func (cache *Cache) outputTypeParam(param *schema.TypeParam) (graphql.Type, error) {
	return cache.typeParam(param, cache.OutputType)
}

func (cache *Cache) inputTypeParam(param *schema.TypeParam) (graphql.Type, error) {
	return cache.typeParam(param, cache.InputType)
}

// typeParam converts a TypeParam into a graphql type, looking named types up with lookup.
func (cache *Cache) typeParam(
	param *schema.TypeParam,
	lookup func(ref interface{}) (graphql.NamedType, error)) (graphql.Type, error) {
	if param == nil {
		return nil, graphql.NewError("missing type parameter", graphql.Op("buildcache.typeParam"),
			graphql.ErrKindInvalidType)
	}

	var (
		t   graphql.Type
		err error
	)
	if param.IsList() {
		elementType, err := cache.typeParam(param.OfType, lookup)
		if err != nil {
			return nil, err
		}
		t, err = graphql.NewListOf(elementType)
		if err != nil {
			return nil, err
		}
	} else {
		t, err = lookup(param.Ref)
		if err != nil {
			return nil, err
		}
	}

	if !param.Nullable {
		return graphql.NewNonNullOf(t)
	}
	return t, nil
}
