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

import "fmt"

// TypeRef stands in for a type that may not be declared yet. Refs compare by identity: two refs
// created with the same label are different refs. A ref is bound to a type name exactly once, when
// a TypeConfig is added to a config store with it.
type TypeRef struct {
	kind  Kind
	label string
}

// NewTypeRef creates a ref for a type of the given kind. label is only used in messages; it is
// usually the name the type is expected to have.
func NewTypeRef(kind Kind, label string) *TypeRef {
	return &TypeRef{kind, label}
}

// Kind returns the kind of type the ref stands for.
func (ref *TypeRef) Kind() Kind {
	return ref.kind
}

// String implements fmt.Stringer.
func (ref *TypeRef) String() string {
	if len(ref.label) == 0 {
		return "<" + ref.kind.String() + " ref>"
	}
	return ref.label
}

// Refs of the built-in scalars
var (
	IDRef      = NewTypeRef(KindScalar, "ID")
	IntRef     = NewTypeRef(KindScalar, "Int")
	FloatRef   = NewTypeRef(KindScalar, "Float")
	BooleanRef = NewTypeRef(KindScalar, "Boolean")
	StringRef  = NewTypeRef(KindScalar, "String")
)

// BuiltinScalarRefs lists refs of the built-in scalars.
func BuiltinScalarRefs() []*TypeRef {
	return []*TypeRef{IDRef, IntRef, FloatRef, BooleanRef, StringRef}
}

// BuiltinScalarName returns the scalar name if ref is one of the built-in scalar refs.
func BuiltinScalarName(ref interface{}) (string, bool) {
	switch ref {
	case IDRef:
		return "ID", true
	case IntRef:
		return "Int", true
	case FloatRef:
		return "Float", true
	case BooleanRef:
		return "Boolean", true
	case StringRef:
		return "String", true
	}
	return "", false
}

// RefString formats any reference (a *TypeRef, a name or an associated key) for messages.
func RefString(ref interface{}) string {
	switch ref := ref.(type) {
	case string:
		return ref
	case interface{ String() string }:
		return ref.String()
	}
	return fmt.Sprintf("%v", ref)
}
