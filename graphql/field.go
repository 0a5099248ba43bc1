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

package graphql

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// FieldResolver resolves field value during execution.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ResolveFieldValue()
type FieldResolver interface {
	// Context carries deadlines and cancelation signals.
	//
	// Source is the "source" value. It contains the value that has been resolved by field's enclosing
	// object.
	//
	// Info contains a collection of information about the current execution state.
	//
	// The returned value may be a future.Future.
	Resolve(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)
}

// FieldResolverFunc is an adapter to allow the use of ordinary functions as FieldResolver.
type FieldResolverFunc func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)

// Resolve calls f(ctx, source, info).
func (f FieldResolverFunc) Resolve(
	ctx context.Context,
	source interface{},
	info ResolveInfo) (interface{}, error) {
	return f(ctx, source, info)
}

// FieldResolverFunc implements FieldResolver.
var _ FieldResolver = FieldResolverFunc(nil)

// defaultFieldResolver reads a property named after the field from the source value.
type defaultFieldResolver struct{}

// Resolve implements FieldResolver. It looks up source[fieldName] on maps and the exported struct
// field matching the field name (or its json tag) on structs.
func (defaultFieldResolver) Resolve(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
	name := info.FieldName()
	if m, ok := source.(map[string]interface{}); ok {
		return m[name], nil
	}

	v := reflect.ValueOf(source)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		tag := strings.Split(sf.Tag.Get("json"), ",")[0]
		if tag == name || strings.EqualFold(sf.Name, name) {
			return v.Field(i).Interface(), nil
		}
	}
	return nil, nil
}

// DefaultFieldResolver is used for fields that do not specify a resolver.
func DefaultFieldResolver() FieldResolver {
	return defaultFieldResolver{}
}

// Fields maps field name to its definition. In general, this should be named as "FieldConfigMap".
// However, this type is used frequently so we try to make it shorter to save some typing efforts.
type Fields map[string]FieldConfig

// FieldConfig provides definition of a field when defining an object or an interface.
type FieldConfig struct {
	// Description of the defining field
	Description string

	// Type of the defining field; must be an output type.
	Type Type

	// Argument configuration of the field
	Args ArgumentConfigMap

	// Resolver for resolving field value during execution; DefaultFieldResolver is used when nil.
	Resolver FieldResolver

	// Subscriber produces the event stream of a subscription field.
	Subscriber FieldResolver

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation

	// Extensions attached to the field
	Extensions Extensions
}

// FieldMap maps field name to the Field.
type FieldMap map[string]Field

// Field representing a field in an object or an interface. It yields a value of a specific type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Objects
type Field interface {
	// Name of the field
	Name() string

	// Description of the field
	Description() string

	// Type of value yielded by the field
	Type() Type

	// Args specifies the definitions of arguments being taken when querying this field, sorted by
	// name.
	Args() []Argument

	// Resolver determines the result value for the field from the value resolved by parent Object.
	Resolver() FieldResolver

	// Subscriber returns the event stream for a subscription field or nil.
	Subscriber() FieldResolver

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation() *Deprecation

	// Extensions attached to the field
	Extensions() Extensions
}

// field is our built-in implementation for Field.
type field struct {
	config FieldConfig
	name   string
	args   []Argument
}

var _ Field = (*field)(nil)

// Name implements Field.
func (f *field) Name() string {
	return f.name
}

// Description implements Field.
func (f *field) Description() string {
	return f.config.Description
}

// Type implements Field.
func (f *field) Type() Type {
	return f.config.Type
}

// Args implements Field.
func (f *field) Args() []Argument {
	return f.args
}

// Resolver implements Field.
func (f *field) Resolver() FieldResolver {
	if f.config.Resolver == nil {
		return DefaultFieldResolver()
	}
	return f.config.Resolver
}

// Subscriber implements Field.
func (f *field) Subscriber() FieldResolver {
	return f.config.Subscriber
}

// Deprecation implements Field.
func (f *field) Deprecation() *Deprecation {
	return f.config.Deprecation
}

// Extensions implements Field.
func (f *field) Extensions() Extensions {
	return f.config.Extensions
}

// buildFieldMap builds a FieldMap from given Fields. typeName is used in error messages.
func buildFieldMap(typeName string, fieldConfigMap Fields) (FieldMap, error) {
	fieldMap := make(FieldMap, len(fieldConfigMap))
	for name, fieldConfig := range fieldConfigMap {
		if fieldConfig.Type == nil {
			return nil, NewError(fmt.Sprintf("%s.%s field type must be defined.", typeName, name),
				ErrKindInvalidType)
		}
		if !IsOutputType(fieldConfig.Type) {
			return nil, NewError(fmt.Sprintf("The type of %s.%s must be Output Type but got: %s.",
				typeName, name, fieldConfig.Type), ErrKindTypeKindMismatch)
		}

		args, err := buildArguments(fmt.Sprintf("%s.%s", typeName, name), fieldConfig.Args)
		if err != nil {
			return nil, err
		}

		fieldMap[name] = &field{
			config: fieldConfig,
			name:   name,
			args:   args,
		}
	}
	return fieldMap, nil
}

// argumentNilValueType is the type of NilArgumentDefaultValue.
type argumentNilValueType int

// NilArgumentDefaultValue is given to the DefaultValue of an ArgumentConfig to set the default
// value to nil. A nil DefaultValue means the argument has no default.
const NilArgumentDefaultValue argumentNilValueType = 0

// ArgumentConfigMap maps argument name to its definition.
type ArgumentConfigMap map[string]ArgumentConfig

// ArgumentConfig provides definition of an argument taken by a field.
type ArgumentConfig struct {
	// Description of the argument
	Description string

	// Type of the argument; must be an input type.
	Type Type

	// DefaultValue of the argument; see NilArgumentDefaultValue.
	DefaultValue interface{}

	// Extensions attached to the argument
	Extensions Extensions
}

// Argument is a built argument of a field.
type Argument struct {
	name   string
	config ArgumentConfig
}

// Name of the argument
func (arg *Argument) Name() string {
	return arg.name
}

// Description of the argument
func (arg *Argument) Description() string {
	return arg.config.Description
}

// Type of the argument
func (arg *Argument) Type() Type {
	return arg.config.Type
}

// HasDefaultValue returns true if the argument has a default value (possibly nil).
func (arg *Argument) HasDefaultValue() bool {
	return arg.config.DefaultValue != nil
}

// DefaultValue returns the default value of the argument or nil.
func (arg *Argument) DefaultValue() interface{} {
	if arg.config.DefaultValue == NilArgumentDefaultValue {
		return nil
	}
	return arg.config.DefaultValue
}

// Extensions attached to the argument
func (arg *Argument) Extensions() Extensions {
	return arg.config.Extensions
}

func buildArguments(owner string, configs ArgumentConfigMap) ([]Argument, error) {
	if len(configs) == 0 {
		return nil, nil
	}

	args := make([]Argument, 0, len(configs))
	for name, config := range configs {
		if config.Type == nil {
			return nil, NewError(fmt.Sprintf("%s(%s:) argument type must be defined.", owner, name),
				ErrKindInvalidType)
		}
		if !IsInputType(config.Type) {
			return nil, NewError(fmt.Sprintf("The type of %s(%s:) must be Input Type but got: %s.",
				owner, name, config.Type), ErrKindTypeKindMismatch)
		}
		args = append(args, Argument{name, config})
	}
	sort.Slice(args, func(i, j int) bool {
		return args[i].name < args[j].name
	})
	return args, nil
}
