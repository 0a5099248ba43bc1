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
)

// EnumValueConfig provides definition for a value in an Enum.
type EnumValueConfig struct {
	// Name of the value as it appears in queries and results
	Name string

	// Value is the internal value; the name is used when it is nil.
	Value interface{}

	// Description of the value
	Description string

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation

	// Extensions attached to the value
	Extensions Extensions
}

// EnumConfig provides specification to define an Enum type.
type EnumConfig struct {
	// Name of the defining Enum
	Name string

	// Description for the Enum type
	Description string

	// Values in declaration order
	Values []EnumValueConfig

	// Extensions attached to the type
	Extensions Extensions
}

// EnumValue is a built value of an Enum.
type EnumValue struct {
	config EnumValueConfig
}

// Name of the value
func (v *EnumValue) Name() string {
	return v.config.Name
}

// Value returns the internal value.
func (v *EnumValue) Value() interface{} {
	return v.config.Value
}

// Description of the value
func (v *EnumValue) Description() string {
	return v.config.Description
}

// Deprecation is non-nil when the value is tagged as deprecated.
func (v *EnumValue) Deprecation() *Deprecation {
	return v.config.Deprecation
}

// Extensions attached to the value
func (v *EnumValue) Extensions() Extensions {
	return v.config.Extensions
}

// Enum Type Definition
//
// Some leaf values of requests and input values are Enums. GraphQL serializes Enum values as
// strings, however internally Enums can be represented by any kind of type, often integers.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Enums
type Enum interface {
	LeafType

	// Values return all enum values defined in this Enum type in declaration order.
	Values() []*EnumValue

	// Value finds the value with the given name or returns nil.
	Value(name string) *EnumValue

	// CoerceResultValue maps an internal value to the name of its EnumValue.
	CoerceResultValue(value interface{}) (interface{}, error)

	// CoerceInputValue maps the name of an EnumValue to its internal value.
	CoerceInputValue(value interface{}) (interface{}, error)

	// graphqlEnumType puts a special mark for an Enum type.
	graphqlEnumType()
}

// ThisIsEnumType is required to be embedded in struct that intends to be a Enum.
type ThisIsEnumType struct{}

func (*ThisIsEnumType) graphqlType()     {}
func (*ThisIsEnumType) graphqlLeafType() {}
func (*ThisIsEnumType) graphqlEnumType() {}

type enum struct {
	ThisIsEnumType
	config EnumConfig
	values []*EnumValue
	byName map[string]*EnumValue
}

var _ Enum = (*enum)(nil)

// NewEnum defines an Enum type from an EnumConfig.
func NewEnum(config *EnumConfig) (Enum, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Enum.", ErrKindInvalidType)
	}

	e := &enum{
		config: *config,
		values: make([]*EnumValue, 0, len(config.Values)),
		byName: make(map[string]*EnumValue, len(config.Values)),
	}
	for _, valueConfig := range config.Values {
		if _, exists := e.byName[valueConfig.Name]; exists {
			return nil, NewError(fmt.Sprintf("Enum %s can include value %s only once.",
				config.Name, valueConfig.Name), ErrKindInvalidType)
		}
		if valueConfig.Value == nil {
			valueConfig.Value = valueConfig.Name
		}
		value := &EnumValue{valueConfig}
		e.values = append(e.values, value)
		e.byName[valueConfig.Name] = value
	}
	return e, nil
}

// MustNewEnum is a convenience function equivalent to NewEnum but panics on failure instead of
// returning an error.
func MustNewEnum(config *EnumConfig) Enum {
	e, err := NewEnum(config)
	if err != nil {
		panic(err)
	}
	return e
}

// Name implements TypeWithName.
func (e *enum) Name() string {
	return e.config.Name
}

// Description implements TypeWithDescription.
func (e *enum) Description() string {
	return e.config.Description
}

// Extensions implements NamedType.
func (e *enum) Extensions() Extensions {
	return e.config.Extensions
}

// String implements Type.
func (e *enum) String() string {
	return e.config.Name
}

// Values implements Enum.
func (e *enum) Values() []*EnumValue {
	return e.values
}

// Value implements Enum.
func (e *enum) Value(name string) *EnumValue {
	return e.byName[name]
}

// CoerceResultValue implements Enum.
func (e *enum) CoerceResultValue(value interface{}) (interface{}, error) {
	for _, v := range e.values {
		if reflect.DeepEqual(v.config.Value, value) {
			return v.config.Name, nil
		}
	}
	return nil, NewError(fmt.Sprintf("Enum %s cannot represent value: %v", e.config.Name, value),
		ErrKindCoercion)
}

// CoerceInputValue implements Enum.
func (e *enum) CoerceInputValue(value interface{}) (interface{}, error) {
	if name, ok := value.(string); ok {
		if v := e.byName[name]; v != nil {
			return v.config.Value, nil
		}
	}
	return nil, NewError(fmt.Sprintf("Value %v does not exist in %s enum.", value, e.config.Name),
		ErrKindCoercion)
}
