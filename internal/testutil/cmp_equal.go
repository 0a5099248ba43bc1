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

package testutil

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/onsi/gomega/types"
)

type cmpEqualMatcher struct {
	expected interface{}
	options  []cmp.Option
}

// CmpEqual returns a Gomega matcher that compares actual against expected with cmp.Equal. The
// failure message carries the cmp.Diff of the two values.
func CmpEqual(expected interface{}, options ...cmp.Option) types.GomegaMatcher {
	return &cmpEqualMatcher{
		expected: expected,
		options:  options,
	}
}

// Match implements types.GomegaMatcher.
func (matcher *cmpEqualMatcher) Match(actual interface{}) (success bool, err error) {
	return cmp.Equal(matcher.expected, actual, matcher.options...), nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher *cmpEqualMatcher) FailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected values to be equal (-expected +actual):\n%s",
		cmp.Diff(matcher.expected, actual, matcher.options...))
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher *cmpEqualMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n\t%#v\nnot to equal\n\t%#v", actual, matcher.expected)
}
