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

package util

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// SuggestionList returns the options that are close enough to input to be a plausible typo of it,
// most similar first. Options at the same distance keep their original order.
func SuggestionList(input string, options []string) []string {
	type candidate struct {
		option   string
		distance int
	}

	var candidates []candidate
	inputThreshold := float64(len(input)) / 2
	for _, option := range options {
		distance := lexicalDistance(input, option)
		threshold := math.Max(math.Max(inputThreshold, float64(len(option))/2), 1)
		if float64(distance) <= threshold {
			candidates = append(candidates, candidate{option, distance})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	result := make([]string, len(candidates))
	for i, c := range candidates {
		result[i] = c.option
	}
	return result
}

// lexicalDistance is the edit distance between a and b ignoring case, except that strings which
// differ only by case are at distance 1.
func lexicalDistance(a, b string) int {
	if a == b {
		return 0
	}
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1
	}
	return levenshtein.ComputeDistance(a, b)
}

// DidYouMean formats suggestions as a sentence to be appended to an error message. It returns an
// empty string when there is nothing to suggest.
func DidYouMean(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	return " Did you mean " + OrList(suggestions, 5, true) + "?"
}
