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

import "strings"

// OrList joins items into `A, B, or C`. With quoted set, every item is wrapped in double quotes.
// A positive limit caps the number of items included.
func OrList(items []string, limit int, quoted bool) string {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	var out strings.Builder
	for i, item := range items {
		if i > 0 {
			if len(items) > 2 {
				out.WriteString(", ")
			} else {
				out.WriteString(" ")
			}
			if i == len(items)-1 {
				out.WriteString("or ")
			}
		}
		if quoted {
			out.WriteString(`"`)
			out.WriteString(item)
			out.WriteString(`"`)
		} else {
			out.WriteString(item)
		}
	}
	return out.String()
}
