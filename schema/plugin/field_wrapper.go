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

package plugin

import (
	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/schema"
)

// FieldWrapper decorates the resolver and subscriber of one field. Wrappers are created per field
// by Plugin.WrapOutputField and form the inner layer of resolver composition.
type FieldWrapper interface {
	WrapResolver(resolver graphql.FieldResolver, config *schema.FieldConfig) graphql.FieldResolver

	// WrapSubscriber is only called for fields that have a subscriber.
	WrapSubscriber(subscriber graphql.FieldResolver, config *schema.FieldConfig) graphql.FieldResolver
}

// FieldWrapperFuncs adapts a pair of functions to FieldWrapper. A nil function leaves the
// corresponding resolver alone.
type FieldWrapperFuncs struct {
	Resolver   func(resolver graphql.FieldResolver, config *schema.FieldConfig) graphql.FieldResolver
	Subscriber func(subscriber graphql.FieldResolver, config *schema.FieldConfig) graphql.FieldResolver
}

var _ FieldWrapper = FieldWrapperFuncs{}

// WrapResolver implements FieldWrapper.
func (w FieldWrapperFuncs) WrapResolver(
	resolver graphql.FieldResolver,
	config *schema.FieldConfig) graphql.FieldResolver {
	if w.Resolver == nil {
		return resolver
	}
	return w.Resolver(resolver, config)
}

// WrapSubscriber implements FieldWrapper.
func (w FieldWrapperFuncs) WrapSubscriber(
	subscriber graphql.FieldResolver,
	config *schema.FieldConfig) graphql.FieldResolver {
	if w.Subscriber == nil {
		return subscriber
	}
	return w.Subscriber(subscriber, config)
}

// ApplyResolverWrappers wraps resolver with wrappers. The first wrapper ends up outermost.
func ApplyResolverWrappers(
	resolver graphql.FieldResolver,
	config *schema.FieldConfig,
	wrappers []FieldWrapper) graphql.FieldResolver {
	for i := len(wrappers) - 1; i >= 0; i-- {
		resolver = wrappers[i].WrapResolver(resolver, config)
	}
	return resolver
}

// ApplySubscriberWrappers wraps subscriber with wrappers like ApplyResolverWrappers. A nil
// subscriber stays nil.
func ApplySubscriberWrappers(
	subscriber graphql.FieldResolver,
	config *schema.FieldConfig,
	wrappers []FieldWrapper) graphql.FieldResolver {
	if subscriber == nil {
		return nil
	}
	for i := len(wrappers) - 1; i >= 0; i-- {
		subscriber = wrappers[i].WrapSubscriber(subscriber, config)
	}
	return subscriber
}
