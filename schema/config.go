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

package schema

import (
	"github.com/botobag/forge/graphql"
)

// OptionsExtensionKey is the key under which the builder options of a config are exposed in the
// extensions of the built type, field, argument or enum value.
const OptionsExtensionKey = "builderOptions"

// DirectivesExtensionKey is the extension key under which a []AppliedDirective is recorded on a
// built type, field, argument or enum value.
const DirectivesExtensionKey = "directives"

// AppliedDirective is a directive applied to a schema element, such as @cacheControl(maxAge: 30).
type AppliedDirective struct {
	Name string
	Args map[string]interface{}
}

// Options is an opaque bag of values supplied by the builder layer. The pipeline never interprets
// it; plugins read it to decide what to do with a config.
type Options map[string]interface{}

// Get returns the value for key or nil. It is safe to call on a nil map.
func (o Options) Get(key string) interface{} {
	return o[key]
}

// TypeConfig describes one type of the schema before it is built. Which fields are meaningful
// depends on Kind.
type TypeConfig struct {
	Kind        Kind
	Name        string
	Description string

	// Interfaces holds references to the interfaces implemented by an Object or an Interface.
	Interfaces []interface{}

	// IsTypeOf is the membership predicate of an Object. Interfaces use it to resolve the concrete
	// type of a value.
	IsTypeOf graphql.IsTypeOfFunc

	// Types holds references to the members of a Union.
	Types []interface{}

	// ResolveType resolves the concrete type of a Union value. It may return a name, a
	// graphql.Object, a reference known to the config store or a future.Future of any of these.
	ResolveType graphql.TypeResolver

	// Values of an Enum in declaration order
	Values []*EnumValueConfig

	// Coercers of a Scalar
	ResultCoercer graphql.ScalarResultCoercer
	InputCoercer  graphql.ScalarInputCoercer

	// Options supplied by the builder
	Options Options

	// Extensions added to the built type; plugins may write to it.
	Extensions graphql.Extensions
}

// FieldConfig describes an output field of an Object or an Interface.
type FieldConfig struct {
	Name string

	// ParentType is the name of the type that owns the field. It is set when the field is merged
	// into its type.
	ParentType string

	// Kind is the kind of the owning type.
	Kind Kind

	Description string
	Type        *TypeParam
	Args        InputFieldConfigMap

	// Resolver computes the value of the field; the default resolver is used when nil.
	Resolver graphql.FieldResolver

	// Subscriber produces the event stream of a subscription field.
	Subscriber graphql.FieldResolver

	Deprecation *graphql.Deprecation
	Options     Options
	Extensions  graphql.Extensions
}

// FieldConfigMap maps field name to its config.
type FieldConfigMap map[string]*FieldConfig

// InputFieldKind tells whether an InputFieldConfig describes an argument or an input object field.
type InputFieldKind uint8

// Enumeration of InputFieldKind
const (
	InputFieldKindArg InputFieldKind = iota + 1
	InputFieldKindInputObject
)

func (k InputFieldKind) String() string {
	if k == InputFieldKindArg {
		return "Arg"
	}
	return "InputObject"
}

// InputFieldConfig describes an argument of an output field or a field of an InputObject.
type InputFieldConfig struct {
	Name string
	Kind InputFieldKind

	// ParentType is the name of the type that owns the field (or the field taking the argument).
	ParentType string

	// ParentField is the name of the field taking the argument. It is empty for input object fields.
	ParentField string

	Description string
	Type        *TypeParam

	// DefaultValue of the field; see graphql.NilInputFieldDefaultValue.
	DefaultValue interface{}

	Options    Options
	Extensions graphql.Extensions
}

// InputFieldConfigMap maps field (or argument) name to its config.
type InputFieldConfigMap map[string]*InputFieldConfig

// EnumValueConfig describes a value of an Enum.
type EnumValueConfig struct {
	Name string

	// ParentType is the name of the Enum.
	ParentType string

	// Value is the internal value; the name is used when it is nil.
	Value interface{}

	Description string
	Deprecation *graphql.Deprecation
	Options     Options
	Extensions  graphql.Extensions
}
