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

// InterfaceConfig provides specification to define an Interface type.
type InterfaceConfig struct {
	// Name of the defining Interface
	Name string

	// Description for the Interface type
	Description string

	// Interfaces implemented by the defining Interface
	Interfaces InterfacesThunk

	// Fields in the Interface Type
	Fields FieldsThunk

	// TypeResolver determines the concrete Object type of a value of this Interface.
	TypeResolver TypeResolver

	// Extensions attached to the type
	Extensions Extensions
}

// Interface Type Definition
//
// When a field can return one of a heterogeneous set of types, an Interface type is used to
// describe what types are possible, what fields are in common across all types, as well as a
// function to determine which type is actually used when the field is resolved.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Interfaces
type Interface interface {
	AbstractType
	Finalizer

	// Fields in the interface; nil if Finalize failed.
	Fields() FieldMap

	// Interfaces implemented by the interface; nil if Finalize failed.
	Interfaces() []Interface

	// graphqlInterfaceType puts a special mark for an Interface type.
	graphqlInterfaceType()
}

// ThisIsInterfaceType is required to be embedded in struct that intends to be an Interface.
type ThisIsInterfaceType struct{}

func (*ThisIsInterfaceType) graphqlType()          {}
func (*ThisIsInterfaceType) graphqlAbstractType()  {}
func (*ThisIsInterfaceType) graphqlInterfaceType() {}

// iface is our built-in implementation for Interface.
type iface struct {
	ThisIsInterfaceType
	config     InterfaceConfig
	finalizer  onceFinalizer
	fields     FieldMap
	interfaces []Interface
}

var _ Interface = (*iface)(nil)

// NewInterface defines an Interface type from an InterfaceConfig.
func NewInterface(config *InterfaceConfig) (Interface, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Interface.", ErrKindInvalidType)
	}
	return &iface{
		config: *config,
	}, nil
}

// MustNewInterface is a convenience function equivalent to NewInterface but panics on failure
// instead of returning an error.
func MustNewInterface(config *InterfaceConfig) Interface {
	i, err := NewInterface(config)
	if err != nil {
		panic(err)
	}
	return i
}

// Finalize implements Finalizer.
func (i *iface) Finalize() error {
	return i.finalizer.run(func() error {
		fields, err := resolveFields(i.config.Name, i.config.Fields)
		if err != nil {
			return err
		}

		interfaces, err := resolveInterfaces(i.config.Interfaces)
		if err != nil {
			return err
		}

		i.fields = fields
		i.interfaces = interfaces
		return nil
	})
}

// Name implements TypeWithName.
func (i *iface) Name() string {
	return i.config.Name
}

// Description implements TypeWithDescription.
func (i *iface) Description() string {
	return i.config.Description
}

// Extensions implements NamedType.
func (i *iface) Extensions() Extensions {
	return i.config.Extensions
}

// String implements Type.
func (i *iface) String() string {
	return i.config.Name
}

// TypeResolver implements AbstractType.
func (i *iface) TypeResolver() TypeResolver {
	return i.config.TypeResolver
}

// Fields implements Interface.
func (i *iface) Fields() FieldMap {
	i.Finalize()
	return i.fields
}

// Interfaces implements Interface.
func (i *iface) Interfaces() []Interface {
	i.Finalize()
	return i.interfaces
}
