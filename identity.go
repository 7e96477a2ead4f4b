// Copyright (c) 2024, The svg-writer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"goki.dev/grr"
)

// RandomID returns a random alphanumeric identifier of length n
// (8 when n <= 0), suitable for shape, marker, or document ids.
// Entropy is drawn from rd: pass crypto/rand.Reader for unique ids, or
// a seeded math/rand source to make output reproducible under test.
// Returns an empty id if rd fails.
func RandomID(rd io.Reader, n int) string {
	if n <= 0 {
		n = 8
	}
	var sb strings.Builder
	for sb.Len() < n {
		u, err := uuid.NewRandomFromReader(rd)
		if err != nil {
			grr.Log(err)
			return ""
		}
		sb.WriteString(strings.ReplaceAll(u.String(), "-", ""))
	}
	return sb.String()[:n]
}
