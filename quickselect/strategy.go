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

// Strategy chooses a pivot in arr, partitions arr around it and returns the
// index where the pivot came to rest. It is called with a non-empty arr.
type Strategy[T any] func(arr []T, compare func(a, b T) int) int

// Middle partitions around the middle element without any sampling.
func Middle[T any](arr []T, compare func(a, b T) int) int {
	return HoarePartitionFunc(arr, len(arr)/2, compare)
}

// MedianOfMedians partitions arr around the median of the medians of
// consecutive five element windows. The chosen pivot lies between the 30th
// and 70th percentile, which bounds QuickSelect to linear time in the worst
// case.
//
// The window medians are gathered into a prefix of arr, in place, and the
// median of that prefix is selected recursively with this same strategy.
func MedianOfMedians[T any](arr []T, compare func(a, b T) int) int {
	n := len(arr)
	if n < 5 {
		return HoarePartitionFunc(arr, n/2, compare)
	}

	j := 0
	for i := 0; i+4 < n; i += 5 {
		Partition5Func((*[5]T)(arr[i:i+5]), compare)
		arr[i+2], arr[j] = arr[j], arr[i+2]
		j++
	}

	QuickSelectFunc(MedianOfMedians[T], arr[:j], j/2, compare)
	return HoarePartitionFunc(arr, j/2, compare)
}

// RepeatedStep3 partitions arr around a median of medians computed over
// three element windows in two passes. The pivot is of lower quality than
// that of MedianOfMedians but costs fewer comparisons to find.
func RepeatedStep3[T any](arr []T, compare func(a, b T) int) int {
	n := len(arr)
	if n < 9 {
		return HoarePartitionFunc(arr, n/2, compare)
	}

	j := 0
	for i := 0; i+2 < n; i += 3 {
		Sort3Func((*[3]T)(arr[i:i+3]), compare)
		arr[i+1], arr[j] = arr[j], arr[i+1]
		j++
	}

	m := 0
	for i := 0; i+2 < j; i += 3 {
		Sort3Func((*[3]T)(arr[i:i+3]), compare)
		arr[i+1], arr[m] = arr[m], arr[i+1]
		m++
	}

	QuickSelectFunc(RepeatedStep3[T], arr[:m], m/2, compare)
	return HoarePartitionFunc(arr, m/2, compare)
}
