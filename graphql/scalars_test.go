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

package graphql_test

import (
	"github.com/botobag/forge/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Built-in scalars", func() {
	It("are singletons", func() {
		Expect(graphql.Int()).Should(BeIdenticalTo(graphql.Int()))
		Expect(graphql.BuiltinScalar("Int")).Should(BeIdenticalTo(graphql.Int()))
		Expect(graphql.BuiltinScalar("Date")).Should(BeNil())
		Expect(graphql.IsBuiltinScalar(graphql.ID())).Should(BeTrue())
	})

	It("does not treat a custom scalar named after a built-in as built-in", func() {
		custom := graphql.MustNewScalar(&graphql.ScalarConfig{Name: "Int"})
		Expect(graphql.IsBuiltinScalar(custom)).Should(BeFalse())
	})

	It("coerces Int results", func() {
		Expect(graphql.Int().CoerceResultValue(1)).Should(Equal(1))
		Expect(graphql.Int().CoerceResultValue(int64(-1))).Should(Equal(-1))
		Expect(graphql.Int().CoerceResultValue(1e5)).Should(Equal(100000))
		Expect(graphql.Int().CoerceResultValue(true)).Should(Equal(1))
		Expect(graphql.Int().CoerceResultValue("123")).Should(Equal(123))
	})

	It("rejects values outside of 32-bit range and fractions for Int", func() {
		_, err := graphql.Int().CoerceResultValue(int64(1) << 40)
		Expect(graphql.IsErrKind(err, graphql.ErrKindCoercion)).Should(BeTrue())

		_, err = graphql.Int().CoerceInputValue(1.5)
		Expect(err.Error()).Should(ContainSubstring("Int cannot represent 1.5"))
	})

	It("coerces String, Boolean, Float and ID", func() {
		Expect(graphql.String().CoerceResultValue(1.5)).Should(Equal("1.5"))
		Expect(graphql.String().CoerceResultValue(false)).Should(Equal("false"))
		Expect(graphql.Boolean().CoerceResultValue(0)).Should(Equal(false))
		Expect(graphql.Float().CoerceResultValue(int8(3))).Should(Equal(float64(3)))
		Expect(graphql.ID().CoerceResultValue(42)).Should(Equal("42"))
		Expect(graphql.ID().CoerceInputValue("abc")).Should(Equal("abc"))

		_, err := graphql.Boolean().CoerceInputValue("true")
		Expect(err).Should(HaveOccurred())
	})

	It("passes values through when a custom scalar has no coercers", func() {
		date := graphql.MustNewScalar(&graphql.ScalarConfig{Name: "Date"})
		Expect(date.CoerceResultValue("2018-01-01")).Should(Equal("2018-01-01"))
		Expect(date.CoerceInputValue(7)).Should(Equal(7))
	})
})
