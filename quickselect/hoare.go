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

// HoarePartition rearranges arr around the element at index pivot and returns
// the index where that element comes to rest. Elements before the returned
// index are <= the pivot value and elements after it are >= the pivot value.
//
// It panics if arr is empty or pivot is not a valid index.
func HoarePartition[T cmp.Ordered](arr []T, pivot int) int {
	return HoarePartitionFunc(arr, pivot, cmp.Compare[T])
}

// HoarePartitionFunc is HoarePartition with a custom comparator following the
// cmp.Compare sign convention.
//
// The pivot is parked at index 0 while two cursors move towards each other:
// the left one stops on an element >= the pivot, the right one on an element
// <= the pivot, and the pair is exchanged. Elements equal to the pivot may end
// up on either side.
func HoarePartitionFunc[T any](arr []T, pivot int, compare func(a, b T) int) int {
	mustCheckIndex(len(arr), pivot)

	arr[0], arr[pivot] = arr[pivot], arr[0]
	v := arr[0]
	i := 1
	j := len(arr) - 1
	for {
		for i <= j && compare(arr[i], v) < 0 {
			i++
		}
		if i > j {
			break
		}
		// arr[0] equals v, so this scan cannot run past the front.
		for compare(v, arr[j]) < 0 {
			j--
		}
		if i >= j {
			break
		}
		arr[i], arr[j] = arr[j], arr[i]
		i++
		j--
	}
	i--
	arr[0], arr[i] = arr[i], arr[0]
	return i
}
