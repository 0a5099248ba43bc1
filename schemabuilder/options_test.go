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

package schemabuilder_test

import (
	"log/slog"
	"os"

	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/schemabuilder"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Options", func() {
	It("defaults to nullable fields and optional inputs", func() {
		options := schemabuilder.DefaultOptions()
		Expect(options.DefaultFieldNullability).Should(BeTrue())
		Expect(options.DefaultInputFieldRequiredness).Should(BeFalse())
		Expect(options.Level()).Should(Equal(slog.LevelInfo))
	})

	It("loads a file and expands environment variables", func() {
		Expect(os.Setenv("FORGE_TEST_LOG_LEVEL", "warn")).Should(Succeed())
		defer os.Unsetenv("FORGE_TEST_LOG_LEVEL")

		options, err := schemabuilder.LoadOptions("testdata/options.yaml")
		Expect(err).ShouldNot(HaveOccurred())

		expected := &schemabuilder.Options{
			Plugins:                       []string{"directives"},
			DefaultFieldNullability:       false,
			DefaultInputFieldRequiredness: true,
			LogLevel:                      "warn",
		}
		Expect(cmp.Diff(expected, options)).Should(BeEmpty())
		Expect(options.Level()).Should(Equal(slog.LevelWarn))
	})

	It("keeps defaults for keys left out", func() {
		options, err := schemabuilder.ParseOptions([]byte("logLevel: debug\n"))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(options.DefaultFieldNullability).Should(BeTrue())
		Expect(options.Level()).Should(Equal(slog.LevelDebug))
	})

	It("rejects unknown keys", func() {
		_, err := schemabuilder.ParseOptions([]byte("plugin: [directives]\n"))
		Expect(err).Should(HaveOccurred())
		Expect(graphql.IsErrKind(err, graphql.ErrKindInvalidType)).Should(BeTrue())
	})

	It("rejects unknown log levels", func() {
		_, err := schemabuilder.ParseOptions([]byte("logLevel: verbose\n"))
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(`unknown log level "verbose"`))
	})

	It("reports a missing file", func() {
		_, err := schemabuilder.LoadOptions("testdata/missing.yaml")
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("testdata/missing.yaml"))
	})
})
