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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// every5 calls fn with every array over the values 0..4, duplicates included.
func every5(fn func(a [5]int)) {
	var a [5]int
	var rec func(i int)
	rec = func(i int) {
		if i == len(a) {
			fn(a)
			return
		}
		for v := 0; v < len(a); v++ {
			a[i] = v
			rec(i + 1)
		}
	}
	rec(0)
}

func TestSort3(t *testing.T) {
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				a := [3]int{x, y, z}
				expected := a
				slices.Sort(expected[:])

				Sort3(&a)

				assert.Equal(t, expected, a, "input %v", [3]int{x, y, z})
			}
		}
	}
}

func TestSort3Strings(t *testing.T) {
	a := [3]string{"pear", "apple", "fig"}
	Sort3(&a)
	assert.Equal(t, [3]string{"apple", "fig", "pear"}, a)
}

func TestSort5(t *testing.T) {
	every5(func(in [5]int) {
		a := in
		expected := in
		slices.Sort(expected[:])

		Sort5(&a)

		assert.Equal(t, expected, a, "input %v", in)
	})
}

func TestPartition5(t *testing.T) {
	every5(func(in [5]int) {
		a := in
		sorted := in
		slices.Sort(sorted[:])

		Partition5(&a)

		assert.Equal(t, sorted[2], a[2], "input %v", in)
		assert.LessOrEqual(t, a[0], a[2], "input %v", in)
		assert.LessOrEqual(t, a[1], a[2], "input %v", in)
		assert.GreaterOrEqual(t, a[3], a[2], "input %v", in)
		assert.GreaterOrEqual(t, a[4], a[2], "input %v", in)
		assert.ElementsMatch(t, in[:], a[:])
	})
}

func TestNetworksOnSliceWindow(t *testing.T) {
	arr := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	Partition5Func((*[5]int)(arr[2:7]), func(a, b int) int { return a - b })
	assert.Equal(t, []int{9, 8}, arr[:2])
	assert.Equal(t, 5, arr[4])
	assert.Equal(t, []int{2, 1}, arr[7:])

	Sort3Func((*[3]int)(arr[0:3]), func(a, b int) int { return a - b })
	assert.Less(t, arr[0], 5)
	assert.Equal(t, []int{8, 9}, arr[1:3])
}
