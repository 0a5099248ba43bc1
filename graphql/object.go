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

// ObjectConfig provides specification to define a Object type.
type ObjectConfig struct {
	// Name of the defining Object
	Name string

	// Description for the Object type
	Description string

	// Interfaces that implemented by the defining Object
	Interfaces InterfacesThunk

	// Fields in the object
	Fields FieldsThunk

	// IsTypeOf tells whether a value belongs to the Object; optional.
	IsTypeOf IsTypeOfFunc

	// Extensions attached to the type
	Extensions Extensions
}

// Object Type Definition
//
// Almost all of the GraphQL types you define will be object types. Object types have a name, but
// most importantly describe their fields.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Objects
type Object interface {
	NamedType
	Finalizer

	// Fields in the object; nil if Finalize failed.
	Fields() FieldMap

	// Interfaces includes interfaces that implemented by the object; nil if Finalize failed.
	Interfaces() []Interface

	// IsTypeOf returns the membership predicate or nil.
	IsTypeOf() IsTypeOfFunc

	// graphqlObjectType puts a special mark for an Object type.
	graphqlObjectType()
}

// ThisIsObjectType is required to be embedded in struct that intends to be an Object.
type ThisIsObjectType struct{}

func (*ThisIsObjectType) graphqlType()       {}
func (*ThisIsObjectType) graphqlObjectType() {}

// object is our built-in implementation for Object.
type object struct {
	ThisIsObjectType
	config     ObjectConfig
	finalizer  onceFinalizer
	fields     FieldMap
	interfaces []Interface
}

var _ Object = (*object)(nil)

// NewObject defines an Object type from a ObjectConfig. Thunks in config are not evaluated until
// the Object is finalized.
func NewObject(config *ObjectConfig) (Object, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Object.", ErrKindInvalidType)
	}
	return &object{
		config: *config,
	}, nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics on failure instead of
// returning an error.
func MustNewObject(config *ObjectConfig) Object {
	o, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// Finalize implements Finalizer.
func (o *object) Finalize() error {
	return o.finalizer.run(func() error {
		fields, err := resolveFields(o.config.Name, o.config.Fields)
		if err != nil {
			return err
		}

		interfaces, err := resolveInterfaces(o.config.Interfaces)
		if err != nil {
			return err
		}

		o.fields = fields
		o.interfaces = interfaces
		return nil
	})
}

// Name implements TypeWithName.
func (o *object) Name() string {
	return o.config.Name
}

// Description implements TypeWithDescription.
func (o *object) Description() string {
	return o.config.Description
}

// Extensions implements NamedType.
func (o *object) Extensions() Extensions {
	return o.config.Extensions
}

// String implements Type.
func (o *object) String() string {
	return o.config.Name
}

// Fields implements Object.
func (o *object) Fields() FieldMap {
	o.Finalize()
	return o.fields
}

// Interfaces implements Object.
func (o *object) Interfaces() []Interface {
	o.Finalize()
	return o.interfaces
}

// IsTypeOf implements Object.
func (o *object) IsTypeOf() IsTypeOfFunc {
	return o.config.IsTypeOf
}
