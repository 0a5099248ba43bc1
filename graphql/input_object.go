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
	"sort"
)

// inputFieldNilValueType is the type of NilInputFieldDefaultValue.
type inputFieldNilValueType int

// NilInputFieldDefaultValue is given to the DefaultValue of an InputFieldConfig to set the default
// value to nil. A nil DefaultValue means the field has no default.
const NilInputFieldDefaultValue inputFieldNilValueType = 0

// InputFields maps field name to its definition in an InputObject.
type InputFields map[string]InputFieldConfig

// InputFieldConfig provides definition of a field in an InputObject.
type InputFieldConfig struct {
	// Description of the field
	Description string

	// Type of the field; must be an input type.
	Type Type

	// DefaultValue of the field; see NilInputFieldDefaultValue.
	DefaultValue interface{}

	// Extensions attached to the field
	Extensions Extensions
}

// InputField is a built field of an InputObject.
type InputField struct {
	name   string
	config InputFieldConfig
}

// Name of the field
func (f *InputField) Name() string {
	return f.name
}

// Description of the field
func (f *InputField) Description() string {
	return f.config.Description
}

// Type of the field
func (f *InputField) Type() Type {
	return f.config.Type
}

// HasDefaultValue returns true if the field has a default value (possibly nil).
func (f *InputField) HasDefaultValue() bool {
	return f.config.DefaultValue != nil
}

// DefaultValue returns the default value of the field or nil.
func (f *InputField) DefaultValue() interface{} {
	if f.config.DefaultValue == NilInputFieldDefaultValue {
		return nil
	}
	return f.config.DefaultValue
}

// Extensions attached to the field
func (f *InputField) Extensions() Extensions {
	return f.config.Extensions
}

// InputFieldMap maps field name to the built InputField.
type InputFieldMap map[string]*InputField

// Names returns field names in lexical order.
func (m InputFieldMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InputObjectConfig provides specification to define an InputObject type.
type InputObjectConfig struct {
	// Name of the defining InputObject
	Name string

	// Description for the InputObject type
	Description string

	// Fields of the InputObject
	Fields InputFieldsThunk

	// Extensions attached to the type
	Extensions Extensions
}

// InputObject Type Definition
//
// An input object defines a structured collection of fields which may be supplied to a field
// argument.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Input-Objects
type InputObject interface {
	NamedType
	Finalizer

	// Fields in the input object; nil if Finalize failed.
	Fields() InputFieldMap

	// graphqlInputObjectType puts a special mark for an InputObject type.
	graphqlInputObjectType()
}

// ThisIsInputObjectType is required to be embedded in struct that intends to be an InputObject.
type ThisIsInputObjectType struct{}

func (*ThisIsInputObjectType) graphqlType()            {}
func (*ThisIsInputObjectType) graphqlInputObjectType() {}

type inputObject struct {
	ThisIsInputObjectType
	config    InputObjectConfig
	finalizer onceFinalizer
	fields    InputFieldMap
}

var _ InputObject = (*inputObject)(nil)

// NewInputObject defines an InputObject type from an InputObjectConfig.
func NewInputObject(config *InputObjectConfig) (InputObject, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for InputObject.", ErrKindInvalidType)
	}
	return &inputObject{
		config: *config,
	}, nil
}

// MustNewInputObject is a convenience function equivalent to NewInputObject but panics on failure
// instead of returning an error.
func MustNewInputObject(config *InputObjectConfig) InputObject {
	o, err := NewInputObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// Finalize implements Finalizer.
func (o *inputObject) Finalize() error {
	return o.finalizer.run(func() error {
		fields := InputFieldMap{}
		if o.config.Fields != nil {
			configs, err := o.config.Fields()
			if err != nil {
				return err
			}

			for name, config := range configs {
				if config.Type == nil {
					return NewError(fmt.Sprintf("%s.%s field type must be defined.", o.config.Name, name),
						ErrKindInvalidType)
				}
				if !IsInputType(config.Type) {
					return NewError(fmt.Sprintf("The type of %s.%s must be Input Type but got: %s.",
						o.config.Name, name, config.Type), ErrKindTypeKindMismatch)
				}
				fields[name] = &InputField{name, config}
			}
		}
		o.fields = fields
		return nil
	})
}

// Name implements TypeWithName.
func (o *inputObject) Name() string {
	return o.config.Name
}

// Description implements TypeWithDescription.
func (o *inputObject) Description() string {
	return o.config.Description
}

// Extensions implements NamedType.
func (o *inputObject) Extensions() Extensions {
	return o.config.Extensions
}

// String implements Type.
func (o *inputObject) String() string {
	return o.config.Name
}

// Fields implements InputObject.
func (o *inputObject) Fields() InputFieldMap {
	o.Finalize()
	return o.fields
}
