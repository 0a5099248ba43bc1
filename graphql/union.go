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

import "fmt"

// UnionConfig provides specification to define a Union type.
type UnionConfig struct {
	// Name of the defining Union
	Name string

	// Description for the Union type
	Description string

	// Types returns the member Object types of the Union.
	Types PossibleTypesThunk

	// TypeResolver determines the concrete Object type of a value of this Union.
	TypeResolver TypeResolver

	// Extensions attached to the type
	Extensions Extensions
}

// Union Type Definition
//
// When a field can return one of a heterogeneous set of types, a Union type is used to describe
// what types are possible as well as providing a function to determine which type is actually used
// when the field is resolved.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Unions
type Union interface {
	AbstractType
	Finalizer

	// PossibleTypes returns member types of the Union; nil if Finalize failed.
	PossibleTypes() []Object

	// graphqlUnionType puts a special mark for an Union type.
	graphqlUnionType()
}

// ThisIsUnionType is required to be embedded in struct that intends to be an Union.
type ThisIsUnionType struct{}

func (*ThisIsUnionType) graphqlType()         {}
func (*ThisIsUnionType) graphqlAbstractType() {}
func (*ThisIsUnionType) graphqlUnionType()    {}

type union struct {
	ThisIsUnionType
	config        UnionConfig
	finalizer     onceFinalizer
	possibleTypes []Object
}

var _ Union = (*union)(nil)

// NewUnion defines a Union type from a UnionConfig.
func NewUnion(config *UnionConfig) (Union, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Union.", ErrKindInvalidType)
	}
	return &union{
		config: *config,
	}, nil
}

// MustNewUnion is a convenience function equivalent to NewUnion but panics on failure instead of
// returning an error.
func MustNewUnion(config *UnionConfig) Union {
	u, err := NewUnion(config)
	if err != nil {
		panic(err)
	}
	return u
}

// Finalize implements Finalizer.
func (u *union) Finalize() error {
	return u.finalizer.run(func() error {
		if u.config.Types == nil {
			return nil
		}

		types, err := u.config.Types()
		if err != nil {
			return err
		}

		for _, t := range types {
			if t == nil {
				return NewError(fmt.Sprintf("Union %s contains a nil member type.", u.config.Name),
					ErrKindInvalidType)
			}
		}
		u.possibleTypes = types
		return nil
	})
}

// Name implements TypeWithName.
func (u *union) Name() string {
	return u.config.Name
}

// Description implements TypeWithDescription.
func (u *union) Description() string {
	return u.config.Description
}

// Extensions implements NamedType.
func (u *union) Extensions() Extensions {
	return u.config.Extensions
}

// String implements Type.
func (u *union) String() string {
	return u.config.Name
}

// TypeResolver implements AbstractType.
func (u *union) TypeResolver() TypeResolver {
	return u.config.TypeResolver
}

// PossibleTypes implements Union.
func (u *union) PossibleTypes() []Object {
	u.Finalize()
	return u.possibleTypes
}
