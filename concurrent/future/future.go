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

// Package future models values that may become available later. Resolvers and type predicates in
// a built schema may hand back a Future in place of a plain value; whoever executes the schema
// polls it to completion.
package future

// A Future is a value that may not have finished computing yet.
//
// Futures are inert: they make progress only when polled. Poll must never block. When the value
// is not ready, Poll returns PollResultPending and arranges for waker.Wake to be called once
// polling again may make progress. Only the waker given to the most recent Poll needs to be woken.
//
// Poll returns:
//
//	* (any, err): the future finished with an error.
//	* (PollResultPending, nil): not ready yet.
//	* (value, nil): the future finished with value.
//
// A finished future must not be polled again.
type Future interface {
	Poll(waker Waker) (PollResult, error)
}

// PollFunc is an adapter to allow the use of ordinary functions as Future.
type PollFunc func(waker Waker) (PollResult, error)

var _ Future = (PollFunc)(nil)

// Poll implements Future. It calls f(waker).
func (f PollFunc) Poll(waker Waker) (PollResult, error) {
	return f(waker)
}
