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

package quickselect

import (
	"cmp"
	"math"
)

// Windows wider than this are narrowed by selecting within a sample first.
const floydRivestCutoff = 600

// FloydRivest rearranges arr the same way QuickSelect does, using the
// Floyd-Rivest algorithm: on large windows the pivot is chosen by first
// selecting k within a small sample around its expected position, which
// brings the number of comparisons close to n + min(k, n-k).
//
// It panics if arr is empty or k is not a valid index.
func FloydRivest[T cmp.Ordered](arr []T, k int) T {
	return FloydRivestFunc(arr, k, cmp.Compare[T])
}

// FloydRivestFunc is FloydRivest with a custom comparator.
func FloydRivestFunc[T any](arr []T, k int, compare func(a, b T) int) T {
	mustCheckIndex(len(arr), k)
	floydRivest(arr, 0, len(arr)-1, k, compare)
	return arr[k]
}

// floydRivest works on the inclusive window arr[left..right].
func floydRivest[T any](arr []T, left int, right int, k int, compare func(a, b T) int) {
	for right > left {
		if right-left > floydRivestCutoff {
			n := float64(right - left + 1)
			i := float64(k - left + 1)
			z := math.Log(n)
			s := 0.5 * math.Exp(2*z/3)
			sd := 0.5 * math.Sqrt(z*s*(n-s)/n)
			if i < n/2 {
				sd = -sd
			}
			newLeft := max(left, int(math.Floor(float64(k)-i*s/n+sd)))
			newRight := min(right, int(math.Floor(float64(k)+(n-i)*s/n+sd)))
			floydRivest(arr, min(newLeft, k), max(newRight, k), k, compare)
		}

		t := arr[k]
		i := left
		j := right
		arr[left], arr[k] = arr[k], arr[left]
		if compare(arr[right], t) > 0 {
			arr[left], arr[right] = arr[right], arr[left]
		}
		// After the first exchange arr[left] <= t <= arr[right], which bounds both scans.
		for i < j {
			arr[i], arr[j] = arr[j], arr[i]
			i++
			j--
			for compare(arr[i], t) < 0 {
				i++
			}
			for compare(arr[j], t) > 0 {
				j--
			}
		}

		if compare(arr[left], t) == 0 {
			arr[left], arr[j] = arr[j], arr[left]
		} else {
			j++
			arr[j], arr[right] = arr[right], arr[j]
		}

		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
}
