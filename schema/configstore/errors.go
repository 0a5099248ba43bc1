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

package configstore

import (
	"fmt"
	"sort"

	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/internal/util"
	"github.com/botobag/forge/schema"
)

func newError(op graphql.Op, kind graphql.ErrKind, ref interface{}, format string, args ...interface{}) error {
	return graphql.NewError(fmt.Sprintf(format, args...), op, kind, graphql.ErrorExtensions{
		"ref": schema.RefString(ref),
	})
}

func storeClosedError(op graphql.Op, ref interface{}) error {
	return newError(op, graphql.ErrKindStoreClosed, ref,
		"cannot register %s: store was already prepared for build", schema.RefString(ref))
}

// unknownTypeError reports a reference that does not resolve. Names similar to a string reference
// are suggested.
func (store *Store) unknownTypeError(op graphql.Op, ref interface{}) error {
	var suggestions string
	if name, ok := ref.(string); ok {
		suggestions = util.DidYouMean(util.SuggestionList(name, store.names()))
	}
	return newError(op, graphql.ErrKindUnknownType, ref,
		"type %s has not been implemented.%s", schema.RefString(ref), suggestions)
}

func (store *Store) names() []string {
	names := make([]string, 0, len(store.order))
	names = append(names, store.order...)
	sort.Strings(names)
	return names
}
