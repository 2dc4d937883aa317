/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package kthtest generates deterministic inputs for selection tests and
// checks that a selection only reordered its input.
package kthtest

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
	"golang.org/x/exp/constraints"
)

// Generate returns n pseudo-random values in [0, span) derived from seed.
// A span of zero leaves the full 64-bit hash range, truncated to T.
func Generate[T constraints.Integer](seed uint64, n int, span uint64) []T {
	out := make([]T, n)
	var scratch [8]byte
	for i := range out {
		binary.LittleEndian.PutUint64(scratch[:], uint64(i))
		h := murmur3.SeedSum64(seed, scratch[:])
		if span != 0 {
			h %= span
		}
		out[i] = T(h)
	}
	return out
}

// Fingerprint returns a digest of the multiset of values: it does not depend
// on their order but does on how often each value occurs.
func Fingerprint[T constraints.Integer](values []T) uint64 {
	var sum uint64
	var scratch [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(scratch[:], uint64(v))
		sum += xxhash.Sum64(scratch[:])
	}
	return sum
}

// Case is a named input for table driven selection tests.
type Case struct {
	Name string
	Data []int
}

var (
	lengths = []int{1, 2, 3, 4, 5, 8, 9, 10, 17, 26, 100, 601, 1000, 2048}
	spans   = []uint64{1, 2, 5, 100, 0}
)

// Cases returns random inputs over a range of lengths and value spans,
// including heavy duplicates, plus the shapes that defeat naive pivots.
func Cases(seed uint64) []Case {
	var cases []Case
	for _, n := range lengths {
		for _, span := range spans {
			cases = append(cases, Case{
				Name: fmt.Sprintf("random n=%d span=%d", n, span),
				Data: Generate[int](seed+uint64(n), n, span),
			})
		}
	}

	ascending := make([]int, 1000)
	descending := make([]int, 1000)
	organPipe := make([]int, 1000)
	oneOdd := make([]int, 1024)
	for i := range ascending {
		ascending[i] = i
		descending[i] = len(descending) - i
		organPipe[i] = min(i, len(organPipe)-i)
	}
	oneOdd[len(oneOdd)-1] = 1

	return append(cases,
		Case{Name: "ascending", Data: ascending},
		Case{Name: "descending", Data: descending},
		Case{Name: "organ pipe", Data: organPipe},
		Case{Name: "zeros then one", Data: oneOdd},
	)
}

// Ranks returns the ranks worth probing in a slice of length n: both ends,
// the middle and a few pseudo-random ones.
func Ranks(seed uint64, n int) []int {
	ranks := []int{0, n / 2, n - 1}
	for _, r := range Generate[int](seed, 3, uint64(n)) {
		ranks = append(ranks, r)
	}
	slices.Sort(ranks)
	return slices.Compact(ranks)
}

// Sorted returns a sorted copy of values.
func Sorted[T cmp.Ordered](values []T) []T {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}
