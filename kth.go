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

// Package kth places the k-th smallest element of a slice at index k and
// partitions the slice around it: everything before index k is no greater
// than it and everything after is no smaller. Only the order changes; the
// slice is not otherwise sorted and equal elements are not kept stable.
//
// The heavy lifting is done by package quickselect, which exposes the
// partition primitive, the pivot strategies and the selection driver
// separately.
package kth

import (
	"cmp"
	"errors"

	"github.com/codyps/kth/quickselect"
)

var (
	ErrEmptySequence   = quickselect.ErrEmptySequence
	ErrIndexOutOfRange = quickselect.ErrIndexOutOfRange
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// PartitionByKth reorders arr so that arr[k] is the element that would be at
// index k if arr were sorted, with all smaller elements before it and all
// larger elements after it.
//
// It panics with ErrEmptySequence if arr is empty and with
// ErrIndexOutOfRange if k is not a valid index.
func PartitionByKth[T cmp.Ordered](arr []T, k int) {
	selectFunc(arr, k, cmp.Compare[T], newOptions(nil))
}

// PartitionByKthFunc is PartitionByKth with a custom comparator following the
// cmp.Compare sign convention. The comparator must define a total order.
func PartitionByKthFunc[T any](arr []T, k int, compare func(a, b T) int) {
	selectFunc(arr, k, compare, newOptions(nil))
}

// Select is PartitionByKth with options. It returns arr[k].
func Select[T cmp.Ordered](arr []T, k int, opts ...OptionFunc) T {
	return selectFunc(arr, k, cmp.Compare[T], newOptions(opts))
}

// SelectFunc is Select with a custom comparator.
func SelectFunc[T any](arr []T, k int, compare func(a, b T) int, opts ...OptionFunc) T {
	return selectFunc(arr, k, compare, newOptions(opts))
}

// Median partitions arr around its median and returns it. For an even number
// of elements the upper of the two middle elements is returned.
func Median[T cmp.Ordered](arr []T, opts ...OptionFunc) T {
	return Select(arr, len(arr)/2, opts...)
}

// MedianFunc is Median with a custom comparator.
func MedianFunc[T any](arr []T, compare func(a, b T) int, opts ...OptionFunc) T {
	return SelectFunc(arr, len(arr)/2, compare, opts...)
}
