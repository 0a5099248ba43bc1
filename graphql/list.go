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

// List Type Wrapper
//
// A list is a kind of type marker, a wrapping type which points to another type. Lists are often
// created within the context of defining the fields of an object type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Type-System.List
type List interface {
	WrappingType

	// graphqlListType puts a special mark for a List type.
	graphqlListType()
}

// ThisIsListType is required to be embedded in struct that intends to be a List.
type ThisIsListType struct{}

func (*ThisIsListType) graphqlType()         {}
func (*ThisIsListType) graphqlWrappingType() {}
func (*ThisIsListType) graphqlListType()     {}

type list struct {
	ThisIsListType
	elementType Type
}

var _ List = (*list)(nil)

// NewListOf defines a List type whose elements are of elementType.
func NewListOf(elementType Type) (List, error) {
	if elementType == nil {
		return nil, NewError("Must provide an non-nil element type for List.", ErrKindInvalidType)
	}
	return &list{elementType: elementType}, nil
}

// MustNewListOf is a convenience function equivalent to NewListOf but panics on failure instead of
// returning an error.
func MustNewListOf(elementType Type) List {
	l, err := NewListOf(elementType)
	if err != nil {
		panic(err)
	}
	return l
}

// ElementType implements WrappingType.
func (l *list) ElementType() Type {
	return l.elementType
}

// String implements Type.
func (l *list) String() string {
	return "[" + l.elementType.String() + "]"
}
