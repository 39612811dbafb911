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
package enum

// Enumerator abstracts the process of pulling elements, one at a time, from a
// finite sequence.
type Enumerator[T any] interface {
	// Check whether or not there are any items remaining to visit.
	HasNext() bool

	// Get the next item, and advance the enumerator.  It is illegal to call
	// Next when HasNext would return false.
	Next() T

	// Count the number of items left.  Note, this does not modify the
	// enumerator.
	Count() uint64
}

// Collect allocates a new array containing all items of this enumerator.
// This drains the enumerator.
func Collect[T any, S Enumerator[T]](iter S) []T {
	var items = make([]T, 0, iter.Count())
	//
	for iter.HasNext() {
		items = append(items, iter.Next())
	}
	//
	return items
}
