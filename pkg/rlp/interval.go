// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package rlp

import "fmt"

// Interval is a half-open sub-range [Start, End) of a Range whose values have
// not yet been resolved.
type Interval struct {
	Start uint64
	End   uint64
}

// Len returns the number of values in this interval, or zero when it is empty.
func (i Interval) Len() uint64 {
	if i.End <= i.Start {
		return 0
	}
	//
	return i.End - i.Start
}

// IsEmpty checks whether this interval contains no values.
func (i Interval) IsEmpty() bool {
	return i.End <= i.Start
}

// Midpoint returns the representative point of this interval, which is Start
// plus half its length (truncated).  The interval must not be empty.
func (i Interval) Midpoint() uint64 {
	n := i.Len()
	//
	if n == 0 {
		panic(fmt.Sprintf("midpoint of empty interval %s", i))
	}
	//
	return i.Start + n/2
}

// Split divides this interval around a point m within it, returning the values
// strictly below m and those strictly above m.  Either may be empty.
func (i Interval) Split(m uint64) (Interval, Interval) {
	return Interval{i.Start, m}, Interval{m + 1, i.End}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d)", i.Start, i.End)
}
