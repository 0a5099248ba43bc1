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

// NonNull Type Wrapper
//
// A non-null is a kind of type marker, a wrapping type which points to another type. Non-null
// types enforce that their values are never null and can ensure an error is raised if this ever
// occurs during a request.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Type-System.Non-Null
type NonNull interface {
	WrappingType

	// graphqlNonNullType puts a special mark for a NonNull type.
	graphqlNonNullType()
}

// ThisIsNonNullType is required to be embedded in struct that intends to be a NonNull.
type ThisIsNonNullType struct{}

func (*ThisIsNonNullType) graphqlType()         {}
func (*ThisIsNonNullType) graphqlWrappingType() {}
func (*ThisIsNonNullType) graphqlNonNullType()  {}

type nonNull struct {
	ThisIsNonNullType
	elementType Type
}

var _ NonNull = (*nonNull)(nil)

// NewNonNullOf defines a NonNull type wrapping elementType.
func NewNonNullOf(elementType Type) (NonNull, error) {
	if elementType == nil {
		return nil, NewError("Must provide an non-nil element type for NonNull.", ErrKindInvalidType)
	}
	if _, ok := elementType.(NonNull); ok {
		return nil, NewError("Expected a nullable type for NonNull but got an "+elementType.String()+".",
			ErrKindInvalidType)
	}
	return &nonNull{elementType: elementType}, nil
}

// MustNewNonNullOf is a convenience function equivalent to NewNonNullOf but panics on failure
// instead of returning an error.
func MustNewNonNullOf(elementType Type) NonNull {
	t, err := NewNonNullOf(elementType)
	if err != nil {
		panic(err)
	}
	return t
}

// ElementType implements WrappingType.
func (t *nonNull) ElementType() Type {
	return t.elementType
}

// String implements Type.
func (t *nonNull) String() string {
	return t.elementType.String() + "!"
}
