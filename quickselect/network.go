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

import "cmp"

// Sort3 sorts three elements in place.
func Sort3[T cmp.Ordered](a *[3]T) {
	Sort3Func(a, cmp.Compare[T])
}

// Sort3Func sorts three elements in place using a comparison tree of at most
// three comparisons and two swaps.
func Sort3Func[T any](a *[3]T, compare func(a, b T) int) {
	if compare(a[0], a[1]) <= 0 {
		if compare(a[1], a[2]) <= 0 {
			return
		}
		if compare(a[0], a[2]) <= 0 {
			a[1], a[2] = a[2], a[1]
		} else {
			a[0], a[1], a[2] = a[2], a[0], a[1]
		}
		return
	}
	if compare(a[0], a[2]) <= 0 {
		a[0], a[1] = a[1], a[0]
		return
	}
	// a[0] is the largest
	if compare(a[1], a[2]) < 0 {
		a[0], a[1], a[2] = a[1], a[2], a[0]
	} else {
		a[0], a[2] = a[2], a[0]
	}
}

// Sort5 sorts five elements in place.
func Sort5[T cmp.Ordered](a *[5]T) {
	Sort5Func(a, cmp.Compare[T])
}

// Sort5Func sorts five elements in place with a nine comparator sorting
// network (Knuth, TAOCP vol. 3).
func Sort5Func[T any](a *[5]T, compare func(a, b T) int) {
	cswap := func(i, j int) {
		if compare(a[i], a[j]) > 0 {
			a[i], a[j] = a[j], a[i]
		}
	}
	cswap(1, 2)
	cswap(3, 4)
	cswap(1, 3)
	cswap(0, 2)
	cswap(2, 4)
	cswap(0, 3)
	cswap(0, 1)
	cswap(2, 3)
	cswap(1, 2)
}

// Partition5 moves the median of five elements to index 2, with the two
// smaller elements before it and the two larger after it.
func Partition5[T cmp.Ordered](a *[5]T) {
	Partition5Func(a, cmp.Compare[T])
}

// Partition5Func is Partition5 with a custom comparator. It uses a seven
// comparator network and leaves the outer pairs unordered.
func Partition5Func[T any](a *[5]T, compare func(a, b T) int) {
	cswap := func(i, j int) {
		if compare(a[i], a[j]) > 0 {
			a[i], a[j] = a[j], a[i]
		}
	}
	cswap(0, 1)
	cswap(3, 4)
	cswap(0, 3)
	cswap(1, 4)
	cswap(2, 3)
	cswap(1, 2)
	cswap(2, 3)
}
