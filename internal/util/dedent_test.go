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

package util_test

import (
	"github.com/botobag/forge/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Dedent", func() {
	It("strips the indentation of the first line from every line", func() {
		Expect(util.Dedent(`
			type Query {
				users(first: Int = 10): [User]
			}
		`)).Should(Equal("type Query {\n\tusers(first: Int = 10): [User]\n}\n"))
	})

	It("keeps deeper indentation and blank lines", func() {
		Expect(util.Dedent(`
    enum Role {
      ADMIN

      GUEST
    }
  `)).Should(Equal("enum Role {\n  ADMIN\n\n  GUEST\n}\n"))
	})

	It("leaves escapes alone", func() {
		Expect(util.Dedent(`
			scalar Date @doc(text: "a\tb")
		`)).Should(Equal("scalar Date @doc(text: \"a\\tb\")\n"))
	})

	It("works on text without leading newline or indentation", func() {
		Expect(util.Dedent("scalar Date\n")).Should(Equal("scalar Date\n"))
		Expect(util.Dedent("  scalar Date")).Should(Equal("scalar Date"))
		Expect(util.Dedent("")).Should(Equal(""))
	})
})
