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

// ScalarResultCoercer serializes an internal value into a result value for the Scalar type.
type ScalarResultCoercer interface {
	CoerceResultValue(value interface{}) (interface{}, error)
}

// CoerceScalarResultFunc is an adapter to allow the use of ordinary functions as
// ScalarResultCoercer.
type CoerceScalarResultFunc func(value interface{}) (interface{}, error)

// CoerceResultValue calls f(value).
func (f CoerceScalarResultFunc) CoerceResultValue(value interface{}) (interface{}, error) {
	return f(value)
}

// ScalarInputCoercer parses an externally provided value into the internal value of the Scalar
// type.
type ScalarInputCoercer interface {
	CoerceInputValue(value interface{}) (interface{}, error)
}

// CoerceScalarInputFunc is an adapter to allow the use of ordinary functions as
// ScalarInputCoercer.
type CoerceScalarInputFunc func(value interface{}) (interface{}, error)

// CoerceInputValue calls f(value).
func (f CoerceScalarInputFunc) CoerceInputValue(value interface{}) (interface{}, error) {
	return f(value)
}

// identityCoercer passes values through. It is used when a ScalarConfig leaves a coercer unset.
type identityCoercer struct{}

func (identityCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	return value, nil
}

func (identityCoercer) CoerceInputValue(value interface{}) (interface{}, error) {
	return value, nil
}

// ScalarConfig provides specification to define a Scalar type.
type ScalarConfig struct {
	// Name of the defining Scalar
	Name string

	// Description for the Scalar type
	Description string

	// ResultCoercer serializes values. Values pass through unchanged if it is nil.
	ResultCoercer ScalarResultCoercer

	// InputCoercer parses input values. Values pass through unchanged if it is nil.
	InputCoercer ScalarInputCoercer

	// Extensions attached to the type
	Extensions Extensions
}

// Scalar Type Definition
//
// The leaf values of any request and input values to arguments are Scalars (or Enums) and are
// defined with a name and a series of functions used to parse input from ast or variables and to
// ensure validity.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Scalars
type Scalar interface {
	LeafType
	ScalarResultCoercer
	ScalarInputCoercer

	// graphqlScalarType puts a special mark for a Scalar type.
	graphqlScalarType()
}

// ThisIsScalarType is required to be embedded in struct that intends to be a Scalar.
type ThisIsScalarType struct{}

func (*ThisIsScalarType) graphqlType()       {}
func (*ThisIsScalarType) graphqlLeafType()   {}
func (*ThisIsScalarType) graphqlScalarType() {}

type scalar struct {
	ThisIsScalarType
	config        ScalarConfig
	resultCoercer ScalarResultCoercer
	inputCoercer  ScalarInputCoercer
}

var _ Scalar = (*scalar)(nil)

// NewScalar defines a Scalar type from a ScalarConfig.
func NewScalar(config *ScalarConfig) (Scalar, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.", ErrKindInvalidType)
	}

	s := &scalar{
		config:        *config,
		resultCoercer: config.ResultCoercer,
		inputCoercer:  config.InputCoercer,
	}
	if s.resultCoercer == nil {
		s.resultCoercer = identityCoercer{}
	}
	if s.inputCoercer == nil {
		s.inputCoercer = identityCoercer{}
	}
	return s, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics on failure instead of
// returning an error.
func MustNewScalar(config *ScalarConfig) Scalar {
	s, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return s
}

// Name implements TypeWithName.
func (s *scalar) Name() string {
	return s.config.Name
}

// Description implements TypeWithDescription.
func (s *scalar) Description() string {
	return s.config.Description
}

// Extensions implements NamedType.
func (s *scalar) Extensions() Extensions {
	return s.config.Extensions
}

// String implements Type.
func (s *scalar) String() string {
	return s.config.Name
}

// CoerceResultValue implements ScalarResultCoercer.
func (s *scalar) CoerceResultValue(value interface{}) (interface{}, error) {
	return s.resultCoercer.CoerceResultValue(value)
}

// CoerceInputValue implements ScalarInputCoercer.
func (s *scalar) CoerceInputValue(value interface{}) (interface{}, error) {
	return s.inputCoercer.CoerceInputValue(value)
}
