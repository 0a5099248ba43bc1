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

package schema

import "strings"

// TypeParam describes the type of a field, an argument or an input field. It is either a named
// type (Ref is set) or a list of another TypeParam (OfType is set). Every level carries its own
// nullability.
type TypeParam struct {
	// Ref is a reference (a *TypeRef, a type name or an associated key) to a named type.
	Ref interface{}

	// OfType is the element type of a list.
	OfType *TypeParam

	// Nullable is false when values of this level must not be null.
	Nullable bool
}

// NamedType returns a TypeParam referring to a named type.
func NamedType(ref interface{}, nullable bool) *TypeParam {
	return &TypeParam{Ref: ref, Nullable: nullable}
}

// ListType returns a TypeParam of a list whose elements are of ofType.
func ListType(ofType *TypeParam, nullable bool) *TypeParam {
	return &TypeParam{OfType: ofType, Nullable: nullable}
}

// IsList returns true if the param describes a list.
func (p *TypeParam) IsList() bool {
	return p.OfType != nil
}

// NamedRef returns the reference of the innermost named type.
func (p *TypeParam) NamedRef() interface{} {
	for p.OfType != nil {
		p = p.OfType
	}
	return p.Ref
}

// String formats the param in GraphQL notation such as "[User!]".
func (p *TypeParam) String() string {
	var b strings.Builder
	p.write(&b)
	return b.String()
}

func (p *TypeParam) write(b *strings.Builder) {
	if p.OfType != nil {
		b.WriteString("[")
		p.OfType.write(b)
		b.WriteString("]")
	} else {
		b.WriteString(RefString(p.Ref))
	}
	if !p.Nullable {
		b.WriteString("!")
	}
}
