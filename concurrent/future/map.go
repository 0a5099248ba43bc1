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

package future

type mapOk struct {
	input    Future
	callback func(value interface{}) (interface{}, error)
}

// Poll implements Future.
func (f *mapOk) Poll(waker Waker) (PollResult, error) {
	result, err := f.input.Poll(waker)
	if err != nil {
		return nil, err
	}
	if IsPending(result) {
		return PollResultPending, nil
	}
	return f.callback(result)
}

// MapOk returns a Future that finishes with callback applied to the value of input. Errors from
// input are passed through without calling callback.
func MapOk(input Future, callback func(value interface{}) (interface{}, error)) Future {
	return &mapOk{input, callback}
}
