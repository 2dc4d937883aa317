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
	"errors"
	"fmt"
)

var (
	ErrEmptySequence   = errors.New("empty sequence")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// CheckIndex reports whether i is a valid index into a sequence of length n.
// It returns ErrEmptySequence when n is zero and ErrIndexOutOfRange when i
// falls outside [0, n).
func CheckIndex(n int, i int) error {
	if n == 0 {
		return ErrEmptySequence
	}
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
	}
	return nil
}

func mustCheckIndex(n int, i int) {
	if err := CheckIndex(n, i); err != nil {
		panic(err)
	}
}
