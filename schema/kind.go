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

// Package schema defines the intermediate descriptors that a code-first schema builder records
// before the type graph is built: type references, type configs, field configs and type
// parameters. The configstore package accumulates them and the buildcache package turns them into
// graphql types.
package schema

import "fmt"

// Kind enumerates the kinds of TypeConfig.
type Kind uint8

// Enumeration of Kind
const (
	KindObject Kind = iota + 1
	KindQuery
	KindMutation
	KindSubscription
	KindInterface
	KindUnion
	KindEnum
	KindScalar
	KindInputObject
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "Object"
	case KindQuery:
		return "Query"
	case KindMutation:
		return "Mutation"
	case KindSubscription:
		return "Subscription"
	case KindInterface:
		return "Interface"
	case KindUnion:
		return "Union"
	case KindEnum:
		return "Enum"
	case KindScalar:
		return "Scalar"
	case KindInputObject:
		return "InputObject"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// GraphQLKind maps root kinds (Query, Mutation and Subscription) to KindObject. Other kinds are
// returned as is.
func (k Kind) GraphQLKind() Kind {
	if k.IsRoot() {
		return KindObject
	}
	return k
}

// IsRoot returns true for Query, Mutation and Subscription.
func (k Kind) IsRoot() bool {
	return k == KindQuery || k == KindMutation || k == KindSubscription
}

// HasFields returns true for kinds whose configs own output fields.
func (k Kind) HasFields() bool {
	switch k.GraphQLKind() {
	case KindObject, KindInterface:
		return true
	}
	return false
}

// IsOutput returns true for kinds that may be used as the type of an output field.
func (k Kind) IsOutput() bool {
	return k != KindInputObject
}

// IsInput returns true for kinds that may be used as the type of an argument or input field.
func (k Kind) IsInput() bool {
	switch k {
	case KindScalar, KindEnum, KindInputObject:
		return true
	}
	return false
}
