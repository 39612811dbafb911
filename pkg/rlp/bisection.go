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

import "github.com/consensys/go-rlp-iter/pkg/util/collection/stack"

// bisection is a depth-first partition engine.  Each interval is resolved at
// its (truncated) midpoint, with the lower half explored completely before the
// upper half.  The work-list never holds more than one pending interval per
// level of recursion.
type bisection struct {
	work     *stack.Stack[Interval]
	collided uint64
}

func newBisection(r Range) *bisection {
	p := &bisection{work: stack.NewStack[Interval]()}
	//
	if !r.IsEmpty() {
		p.work.Push(Interval{r.lo, r.hi})
	}
	//
	return p
}

func (p *bisection) next(g *Guard) (uint64, bool) {
	for !p.work.IsEmpty() {
		ival := p.work.Pop()
		m := ival.Midpoint()
		left, right := ival.Split(m)
		// Right first, so that left is popped next.
		if !right.IsEmpty() {
			p.work.Push(right)
		}
		//
		if !left.IsEmpty() {
			p.work.Push(left)
		}
		//
		if g.TestAndSet(m) {
			return m, true
		}
		// Collision, so keep going
		p.collided++
	}
	// Done
	return 0, false
}

func (p *bisection) pending() uint {
	return p.work.Len()
}

func (p *bisection) peakPending() uint {
	return p.work.HighWater()
}

func (p *bisection) collisions() uint64 {
	return p.collided
}

func (p *bisection) release() {
	p.work.Reset()
}
