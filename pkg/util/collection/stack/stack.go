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
package stack

// Stack represents a reusable LIFO stack which is implemented using an array.
// The stack remembers the largest number of items it has held at any one time,
// which allows callers to bound the memory used by a traversal.
type Stack[T any] struct {
	items []T
	// Largest value of len(items) observed so far.
	highWater uint
}

// NewStack returns an empty stack
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// IsEmpty checks whether or not there are still items on the stack
func (p *Stack[T]) IsEmpty() bool {
	return p.Len() == 0
}

// Len returns the number of items on the stack.
func (p *Stack[T]) Len() uint {
	return uint(len(p.items))
}

// HighWater returns the maximum number of items held on the stack at any one
// time since it was created.
func (p *Stack[T]) HighWater() uint {
	return p.highWater
}

// Push a new item onto the stack
func (p *Stack[T]) Push(item T) {
	p.items = append(p.items, item)
	//
	if n := uint(len(p.items)); n > p.highWater {
		p.highWater = n
	}
}

// Pop the last item off the stack
func (p *Stack[T]) Pop() T {
	var (
		n    = len(p.items)
		zero T
	)
	//
	if n == 0 {
		panic("cannot pop from empty stack")
	}
	// Get last item
	item := p.items[n-1]
	// Clear slot so popped items can be reclaimed
	p.items[n-1] = zero
	p.items = p.items[:n-1]
	// Done
	return item
}

// Reset empties the stack and releases its underlying storage.  The high water
// mark is retained, since it describes the lifetime of the stack.
func (p *Stack[T]) Reset() {
	p.items = nil
}
