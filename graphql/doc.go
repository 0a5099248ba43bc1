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

// Package graphql provides the GraphQL type system that schema builders produce: named types,
// wrapping types, fields, arguments and the schema that ties them together.
//
// Lazy Type Edges
//
// Object, Interface, Union and InputObject receive the types they refer to through thunks
// (functions) instead of values. A thunk is evaluated at most once, on the first call to Finalize
// or to any accessor that needs its result. Types that refer to each other, or to themselves, can
// therefore be created in any order as long as every referenced type exists by the time the
// thunks run. NewSchema finalizes every reachable type and reports the first thunk error.
package graphql
