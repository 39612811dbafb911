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

// Take returns an enumerator which yields at most n items from the given
// enumerator, leaving any remaining items unvisited.
func Take[T any](n uint64, iter Enumerator[T]) Enumerator[T] {
	return &takeEnumerator[T]{n, iter}
}

type takeEnumerator[T any] struct {
	left uint64
	iter Enumerator[T]
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *takeEnumerator[T]) HasNext() bool {
	return p.left > 0 && p.iter.HasNext()
}

// Count returns the number of items left in this enumeration.
//
//nolint:revive
func (p *takeEnumerator[T]) Count() uint64 {
	return min(p.left, p.iter.Count())
}

// Next returns the next item, and advance the enumerator.
//
//nolint:revive
func (p *takeEnumerator[T]) Next() T {
	if p.left == 0 {
		panic("enumerator exhausted")
	}
	//
	p.left--
	//
	return p.iter.Next()
}
