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

package future_test

import (
	"errors"

	"github.com/botobag/forge/concurrent/future"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Ready", func() {
	It("is immediately ready with the value", func() {
		Expect(future.Ready(1).Poll(future.NopWaker)).Should(Equal(1))
	})

	It("fails immediately with Err", func() {
		testErr := errors.New("ready with an error")
		_, err := future.Err(testErr).Poll(future.NopWaker)
		Expect(err).Should(MatchError(testErr))
	})

	It("substitutes an error when Err is given nil", func() {
		_, err := future.Err(nil).Poll(future.NopWaker)
		Expect(err).Should(HaveOccurred())
	})
})

var _ = Describe("BlockOn", func() {
	It("waits for a pending future", func() {
		Expect(future.BlockOn(later("done", 3))).Should(Equal("done"))
	})

	It("returns the error of a failed future", func() {
		testErr := errors.New("boom")
		_, err := future.BlockOn(future.Err(testErr))
		Expect(err).Should(MatchError(testErr))
	})
})

var _ = Describe("Join", func() {
	It("finishes immediately with no inputs", func() {
		Expect(future.BlockOn(future.Join())).Should(BeEmpty())
	})

	It("collects values in input order", func() {
		f := future.Join(
			later(1, 2),
			future.Ready(2),
			later(3, 1),
		)
		Expect(future.BlockOn(f)).Should(Equal([]interface{}{1, 2, 3}))
	})

	It("stays pending until every input finishes", func() {
		f := future.Join(future.Ready(1), later(2, 1))
		Expect(f.Poll(future.NopWaker)).Should(Equal(future.PollResultPending))
		Expect(f.Poll(future.NopWaker)).Should(Equal([]interface{}{1, 2}))
	})

	It("fails if one of the inputs fails", func() {
		expectErr := errors.New("an error value")
		f := future.Join(
			future.Ready(1),
			future.Err(expectErr),
			future.Ready(3),
		)
		_, err := future.BlockOn(f)
		Expect(err).Should(MatchError(expectErr))
	})
})

var _ = Describe("MapOk", func() {
	It("applies the callback to the value", func() {
		f := future.MapOk(later(20, 1), func(value interface{}) (interface{}, error) {
			return value.(int) + 1, nil
		})
		Expect(future.BlockOn(f)).Should(Equal(21))
	})

	It("does not call the callback on failure", func() {
		called := false
		expectErr := errors.New("failed")
		f := future.MapOk(future.Err(expectErr), func(value interface{}) (interface{}, error) {
			called = true
			return value, nil
		})
		_, err := future.BlockOn(f)
		Expect(err).Should(MatchError(expectErr))
		Expect(called).Should(BeFalse())
	})

	It("fails with the error returned by the callback", func() {
		expectErr := errors.New("mapped")
		f := future.MapOk(future.Ready(1), func(interface{}) (interface{}, error) {
			return nil, expectErr
		})
		_, err := future.BlockOn(f)
		Expect(err).Should(MatchError(expectErr))
	})
})
