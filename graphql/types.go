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
)

// Type interfaces provided by a GraphQL type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Types
type Type interface {
	// String returns the type in GraphQL notation such as "[Int!]!".
	String() string

	// graphqlType is a special mark to indicate a Type. It makes sure that only types defined in this
	// package can be a Type.
	graphqlType()
}

// TypeWithName is implemented by named types.
type TypeWithName interface {
	Type
	Name() string
}

// TypeWithDescription is implemented by types that carry a description.
type TypeWithDescription interface {
	Type
	Description() string
}

// NamedType is implemented by every type that is not a wrapping type.
type NamedType interface {
	TypeWithName
	TypeWithDescription

	// Extensions returns data attached to the type by the schema builder.
	Extensions() Extensions
}

// LeafType can be used as a result or an input and have no fields.
type LeafType interface {
	NamedType
	graphqlLeafType()
}

// AbstractType requires a TypeResolver to determine the concrete Object type of a value.
type AbstractType interface {
	NamedType
	TypeResolver() TypeResolver
	graphqlAbstractType()
}

// WrappingType wraps another type: List or NonNull.
type WrappingType interface {
	Type
	ElementType() Type
	graphqlWrappingType()
}

// Finalizer is implemented by types that compute their edges to other types lazily. Finalize is
// idempotent and returns the same error on every call.
type Finalizer interface {
	Finalize() error
}

// Deprecation contains information about deprecation for a field or an enum value.
type Deprecation struct {
	Reason string
}

// Defined returns true if d is not nil.
func (d *Deprecation) Defined() bool {
	return d != nil
}

// Extensions is an opaque bag of data attached to a type, field, argument or enum value by schema
// builders and plugins.
type Extensions map[string]interface{}

// Get returns the value for key or nil. It is safe to call on a nil map.
func (e Extensions) Get(key string) interface{} {
	return e[key]
}

// TypeResolver determines the concrete Object type of a value whose static type is abstract.
//
// Resolve returns one of:
//
//	* an Object or the name (string) of an Object;
//	* nil if the type cannot be determined;
//	* a future.Future whose value is any of the above.
type TypeResolver interface {
	Resolve(ctx context.Context, value interface{}, info ResolveInfo) (interface{}, error)
}

// TypeResolverFunc is an adapter to allow the use of ordinary functions as TypeResolver.
type TypeResolverFunc func(ctx context.Context, value interface{}, info ResolveInfo) (interface{}, error)

var _ TypeResolver = TypeResolverFunc(nil)

// Resolve calls f(ctx, value, info).
func (f TypeResolverFunc) Resolve(ctx context.Context, value interface{}, info ResolveInfo) (interface{}, error) {
	return f(ctx, value, info)
}

// IsTypeOfFunc tells whether value belongs to an Object type. It returns a bool or a future.Future
// whose value is a bool.
type IsTypeOfFunc func(ctx context.Context, value interface{}, info ResolveInfo) (interface{}, error)

// NamedTypeOf unwraps all List and NonNull wrappers of t.
func NamedTypeOf(t Type) NamedType {
	for {
		switch wrapping := t.(type) {
		case WrappingType:
			t = wrapping.ElementType()
		case NamedType:
			return wrapping
		default:
			return nil
		}
	}
}

// NullableTypeOf removes the outermost NonNull of t if there is one.
func NullableTypeOf(t Type) Type {
	if nonNull, ok := t.(NonNull); ok {
		return nonNull.ElementType()
	}
	return t
}

// IsInputType returns true if t may be used as the type of an argument or an input field.
func IsInputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case Scalar, Enum, InputObject:
		return true
	}
	return false
}

// IsOutputType returns true if t may be used as the type of a field.
func IsOutputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case Scalar, Enum, Object, Interface, Union:
		return true
	}
	return false
}

// IsCompositeType returns true if t is an Object, an Interface or a Union.
func IsCompositeType(t Type) bool {
	switch t.(type) {
	case Object, Interface, Union:
		return true
	}
	return false
}

// IsLeafType returns true if t is a Scalar or an Enum.
func IsLeafType(t Type) bool {
	_, ok := t.(LeafType)
	return ok
}

// IsAbstractType returns true if t is an Interface or a Union.
func IsAbstractType(t Type) bool {
	_, ok := t.(AbstractType)
	return ok
}

// IsNullableType returns true if t is not a NonNull.
func IsNullableType(t Type) bool {
	_, ok := t.(NonNull)
	return !ok
}
