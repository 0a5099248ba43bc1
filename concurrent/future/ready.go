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

import "errors"

type ready struct {
	value interface{}
}

func (f ready) Poll(Waker) (PollResult, error) {
	return f.value, nil
}

type failed struct {
	err error
}

func (f failed) Poll(Waker) (PollResult, error) {
	return nil, f.err
}

// Ready returns a Future that is immediately ready with value.
func Ready(value interface{}) Future {
	return ready{value}
}

// errNilFailure replaces a nil error given to Err.
var errNilFailure = errors.New("future failed with a nil error")

// Err returns a Future that immediately fails with err.
func Err(err error) Future {
	if err == nil {
		err = errNilFailure
	}
	return failed{err}
}
