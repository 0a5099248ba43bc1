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

type join struct {
	inputs  []Future
	results []interface{}
	done    []bool
}

// Poll implements Future.
func (f *join) Poll(waker Waker) (PollResult, error) {
	complete := true
	for i, input := range f.inputs {
		if f.done[i] {
			continue
		}

		result, err := input.Poll(waker)
		if err != nil {
			return nil, err
		}

		if IsPending(result) {
			complete = false
			continue
		}

		f.results[i] = result
		f.done[i] = true
	}

	if !complete {
		return PollResultPending, nil
	}
	return f.results, nil
}

// Join returns a Future that polls every input and finishes with their values collected into an
// []interface{} in input order. It fails with the first error reported by any input.
func Join(inputs ...Future) Future {
	return &join{
		inputs:  inputs,
		results: make([]interface{}, len(inputs)),
		done:    make([]bool, len(inputs)),
	}
}
