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
	"fmt"
	"reflect"
	"sort"
)

// TypeMap keeps track of all named types referenced within the schema.
type TypeMap struct {
	types map[string]NamedType
}

// Lookup finds a type with given name.
func (typeMap TypeMap) Lookup(name string) NamedType {
	return typeMap.types[name]
}

// Names returns the names of all types in lexical order.
func (typeMap TypeMap) Names() []string {
	names := make([]string, 0, len(typeMap.types))
	for name := range typeMap.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of types in the map.
func (typeMap TypeMap) Len() int {
	return len(typeMap.types)
}

// add a type and all types it references into the map. Lazy types are finalized on the way so the
// first broken thunk is reported.
func (typeMap TypeMap) add(t Type) error {
	stack := []Type{t}

	for len(stack) > 0 {
		t, stack = stack[len(stack)-1], stack[:len(stack)-1]

		// Skip nil type quickly; roots may be absent.
		if t == nil || reflect.ValueOf(t).IsNil() {
			continue
		}

		if namedType, ok := t.(NamedType); ok {
			name := namedType.Name()
			prev, exists := typeMap.types[name]
			if exists {
				if prev != namedType {
					return NewError(fmt.Sprintf(
						"Schema must contain unique named types but contains multiple types named %s.", name),
						ErrKindNameCollision)
				}
				continue
			}
			typeMap.types[name] = namedType
		}

		if finalizer, ok := t.(Finalizer); ok {
			if err := finalizer.Finalize(); err != nil {
				return err
			}
		}

		switch t := t.(type) {
		case Scalar, Enum:
			// Leaf types reference nothing.

		case Object:
			for _, iface := range t.Interfaces() {
				stack = append(stack, iface)
			}
			stack = appendFieldTypes(stack, t.Fields())

		case Interface:
			for _, iface := range t.Interfaces() {
				stack = append(stack, iface)
			}
			stack = appendFieldTypes(stack, t.Fields())

		case Union:
			for _, possibleType := range t.PossibleTypes() {
				stack = append(stack, possibleType)
			}

		case InputObject:
			for _, field := range t.Fields() {
				stack = append(stack, field.Type())
			}

		case WrappingType:
			stack = append(stack, t.ElementType())

		default:
			return NewError(fmt.Sprintf("Cannot add %s to schema: unsupported type %T", t, t),
				ErrKindInvalidType)
		}
	}

	return nil
}

func appendFieldTypes(stack []Type, fields FieldMap) []Type {
	for _, field := range fields {
		stack = append(stack, field.Type())
		args := field.Args()
		for i := range args {
			stack = append(stack, args[i].Type())
		}
	}
	return stack
}

// SchemaConfig contains configuration to define a GraphQL schema.
type SchemaConfig struct {
	// Query, Mutation and Subscription returns GraphQL Root Operation defined by the schema.
	Query        Object
	Mutation     Object
	Subscription Object

	// List of types that are declared in the schema.
	Types []Type
}

// Schema Definition
//
// A GraphQL service’s collective type system capabilities are referred to as that service’s
// “schema”. A schema is defined in terms of the types it supports as well as the root operation
// types for each kind of operation: query, mutation, and subscription.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Schema
type Schema struct {
	query        Object
	mutation     Object
	subscription Object

	// typeMap contains all named type defined in the schema.
	typeMap TypeMap

	// implementations keeps track of all implementations by interface name.
	implementations map[string][]Object
}

// NewSchema initializes a Schema from the given config. Every reachable type is finalized.
func NewSchema(config *SchemaConfig) (*Schema, error) {
	schema := &Schema{
		query:        config.Query,
		mutation:     config.Mutation,
		subscription: config.Subscription,
	}

	typeMap := TypeMap{
		types: map[string]NamedType{},
	}

	roots := []Type{Int(), Float(), String(), Boolean(), ID()}
	if config.Query != nil {
		roots = append(roots, config.Query)
	}
	if config.Mutation != nil {
		roots = append(roots, config.Mutation)
	}
	if config.Subscription != nil {
		roots = append(roots, config.Subscription)
	}
	roots = append(roots, config.Types...)

	for _, t := range roots {
		if err := typeMap.add(t); err != nil {
			return nil, err
		}
	}
	schema.typeMap = typeMap

	// Create a reverse link from the Interface to the Objects that implement it, in type name order.
	schema.implementations = map[string][]Object{}
	for _, name := range typeMap.Names() {
		if object, ok := typeMap.types[name].(Object); ok {
			for _, iface := range object.Interfaces() {
				schema.implementations[iface.Name()] = append(schema.implementations[iface.Name()], object)
			}
		}
	}

	return schema, nil
}

// TypeMap keeps track of all named types referenced within the schema.
func (schema *Schema) TypeMap() TypeMap {
	return schema.typeMap
}

// Query is one of the three GraphQL Root Operations.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Root-Operation-Types
func (schema *Schema) Query() Object {
	return schema.query
}

// Mutation is one of the three GraphQL Root Operations.
func (schema *Schema) Mutation() Object {
	return schema.mutation
}

// Subscription is one of the three GraphQL Root Operations.
func (schema *Schema) Subscription() Object {
	return schema.subscription
}

// PossibleTypes returns concrete types for an abstract type in the schema. For Interface, this is
// the list of Object type that implement it. For Union, this is the list of its member types.
func (schema *Schema) PossibleTypes(t AbstractType) []Object {
	switch t := t.(type) {
	case Union:
		return t.PossibleTypes()
	case Interface:
		return schema.implementations[t.Name()]
	default:
		return nil
	}
}
