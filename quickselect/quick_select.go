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

// Package quickselect finds the k-th smallest element of a slice and
// partitions the slice around it, in place.
//
// QuickSelect is the driver: it repeatedly asks a Strategy to partition the
// current window and keeps only the side that contains k. The strategies in
// this package pick their pivot with fixed size networks (Sort3Func,
// Partition5Func) and recursive calls back into the driver.
package quickselect

import "cmp"

// QuickSelect rearranges arr so that arr[k] holds the element that would be at
// index k if arr were sorted, every element before k is <= arr[k] and every
// element after k is >= arr[k]. It returns arr[k].
//
// It panics if arr is empty or k is not a valid index.
func QuickSelect[T cmp.Ordered](strategy Strategy[T], arr []T, k int) T {
	return QuickSelectFunc(strategy, arr, k, cmp.Compare[T])
}

// QuickSelectFunc is QuickSelect with a custom comparator following the
// cmp.Compare sign convention.
func QuickSelectFunc[T any](strategy Strategy[T], arr []T, k int, compare func(a, b T) int) T {
	mustCheckIndex(len(arr), k)

	a := arr
	i := k
	for {
		p := strategy(a, compare)
		if p == i {
			return arr[k]
		}
		if p > i {
			a = a[:p]
		} else {
			a = a[p+1:]
			i = i - p - 1
		}
	}
}

// IsPartitioned reports whether arr is partitioned around index k: no element
// before k is greater than arr[k] and no element after k is less than it.
func IsPartitioned[T cmp.Ordered](arr []T, k int) bool {
	return IsPartitionedFunc(arr, k, cmp.Compare[T])
}

// IsPartitionedFunc is IsPartitioned with a custom comparator. It panics if
// k is not a valid index.
func IsPartitionedFunc[T any](arr []T, k int, compare func(a, b T) int) bool {
	mustCheckIndex(len(arr), k)
	v := arr[k]
	for i := 0; i < k; i++ {
		if compare(arr[i], v) > 0 {
			return false
		}
	}
	for i := k + 1; i < len(arr); i++ {
		if compare(arr[i], v) < 0 {
			return false
		}
	}
	return true
}
