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

package buildcache

import (
	"context"

	"github.com/botobag/forge/concurrent/future"
	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/schema"
)

// candidate is the outcome of one IsTypeOf predicate.
type candidate struct {
	name    string
	matched bool

	// pending is set if the predicate returned a future.
	pending future.Future
}

// interfaceTypeResolver resolves the concrete type of a value of an Interface by asking the IsTypeOf
// predicates of its implementers.
func (cache *Cache) interfaceTypeResolver(config *schema.TypeConfig) graphql.TypeResolver {
	return graphql.TypeResolverFunc(func(ctx context.Context, value interface{}, info graphql.ResolveInfo) (interface{}, error) {
		return resolveByIsTypeOf(ctx, cache.Implementers(config.Name), value, info)
	})
}

// resolveByIsTypeOf returns the name of the first candidate, in the order given, whose IsTypeOf
// accepts value. Predicates may answer synchronously or with a future. A synchronous match is
// returned right away unless a candidate before it is still pending; the answer is then a future
// that waits for the earlier candidates and keeps the declaration order. Candidates without IsTypeOf
// never match. The result is nil if nothing matches.
func resolveByIsTypeOf(
	ctx context.Context,
	candidates []*schema.TypeConfig,
	value interface{},
	info graphql.ResolveInfo) (interface{}, error) {
	var (
		results []candidate
		pending []future.Future
	)

	for _, config := range candidates {
		if config.IsTypeOf == nil {
			continue
		}

		result, err := config.IsTypeOf(ctx, value, info)
		if err != nil {
			return nil, err
		}

		if f, ok := result.(future.Future); ok {
			results = append(results, candidate{name: config.Name, pending: f})
			pending = append(pending, f)
			continue
		}

		if matched, _ := result.(bool); matched {
			if len(pending) == 0 {
				return config.Name, nil
			}
			// Later candidates cannot win over this one.
			results = append(results, candidate{name: config.Name, matched: true})
			break
		}
	}

	if len(pending) == 0 {
		return nil, nil
	}

	return future.MapOk(future.Join(pending...), func(value interface{}) (interface{}, error) {
		answers := value.([]interface{})
		for _, c := range results {
			if c.pending != nil {
				c.matched, _ = answers[0].(bool)
				answers = answers[1:]
			}
			if c.matched {
				return c.name, nil
			}
		}
		return nil, nil
	}), nil
}

// unionTypeResolver wraps the ResolveType of a Union config so that it may return references
// known to the config store as well as names and Objects. Without ResolveType, the IsTypeOf
// predicates of the members decide.
func (cache *Cache) unionTypeResolver(config *schema.TypeConfig) graphql.TypeResolver {
	if config.ResolveType == nil {
		return graphql.TypeResolverFunc(func(ctx context.Context, value interface{}, info graphql.ResolveInfo) (interface{}, error) {
			members := make([]*schema.TypeConfig, 0, len(config.Types))
			for _, ref := range config.Types {
				if member, err := cache.store.TypeConfig(ref); err == nil {
					members = append(members, member)
				}
			}
			return resolveByIsTypeOf(ctx, members, value, info)
		})
	}

	return graphql.TypeResolverFunc(func(ctx context.Context, value interface{}, info graphql.ResolveInfo) (interface{}, error) {
		result, err := config.ResolveType.Resolve(ctx, value, info)
		if err != nil {
			return nil, err
		}

		if f, ok := result.(future.Future); ok {
			return future.MapOk(f, func(value interface{}) (interface{}, error) {
				return cache.normalizeTypeResult(value), nil
			}), nil
		}
		return cache.normalizeTypeResult(result), nil
	})
}

// normalizeTypeResult maps a reference returned by a type resolver to the type name. Names,
// Objects and values the store does not know are returned as is.
func (cache *Cache) normalizeTypeResult(result interface{}) interface{} {
	switch result.(type) {
	case nil, string, graphql.Object:
		return result
	}

	if config, err := cache.store.TypeConfig(result); err == nil {
		return config.Name
	}
	return result
}
