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

package kth

import (
	"fmt"

	"github.com/codyps/kth/quickselect"
)

// Strategy names the pivot selection used by the selection driver.
type Strategy int

const (
	// RepeatedStep3 takes the median of medians over three element windows,
	// decimated twice. It is the default.
	RepeatedStep3 Strategy = iota
	// MedianOfMedians takes the median of medians over five element windows,
	// guaranteeing linear time in the worst case.
	MedianOfMedians
	// Middle partitions around the middle element without sampling.
	Middle
	// FloydRivest replaces the driver with Floyd-Rivest selection.
	FloydRivest
)

func (s Strategy) String() string {
	switch s {
	case RepeatedStep3:
		return "repeated-step3"
	case MedianOfMedians:
		return "median-of-medians"
	case Middle:
		return "middle"
	case FloydRivest:
		return "floyd-rivest"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

type selectOptions struct {
	strategy         Strategy
	partitionedCheck bool
}

type OptionFunc func(*selectOptions)

// WithStrategy sets the pivot strategy (defaults to RepeatedStep3).
func WithStrategy(strategy Strategy) OptionFunc {
	return func(opts *selectOptions) {
		opts.strategy = strategy
	}
}

// WithPartitionedCheck controls whether the slice is first scanned to see if
// it is already partitioned around k, in which case it is left untouched.
// Enabled by default.
func WithPartitionedCheck(enabled bool) OptionFunc {
	return func(opts *selectOptions) {
		opts.partitionedCheck = enabled
	}
}

func newOptions(opts []OptionFunc) *selectOptions {
	options := &selectOptions{
		strategy:         RepeatedStep3,
		partitionedCheck: true,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func selectFunc[T any](arr []T, k int, compare func(a, b T) int, options *selectOptions) T {
	if err := quickselect.CheckIndex(len(arr), k); err != nil {
		panic(err)
	}
	if options.partitionedCheck && quickselect.IsPartitionedFunc(arr, k, compare) {
		return arr[k]
	}

	switch options.strategy {
	case RepeatedStep3:
		return quickselect.QuickSelectFunc(quickselect.RepeatedStep3[T], arr, k, compare)
	case MedianOfMedians:
		return quickselect.QuickSelectFunc(quickselect.MedianOfMedians[T], arr, k, compare)
	case Middle:
		return quickselect.QuickSelectFunc(quickselect.Middle[T], arr, k, compare)
	case FloydRivest:
		return quickselect.FloydRivestFunc(arr, k, compare)
	default:
		panic(fmt.Errorf("%w: %s", ErrUnknownStrategy, options.strategy))
	}
}
