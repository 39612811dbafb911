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

import (
	"math/bits"

	"github.com/consensys/go-rlp-iter/pkg/util/collection/stack"
)

// maxLevel bounds the depth of the dyadic lattice, such that numerators always
// fit within 64 bits.
const maxLevel = 63

// dyadic identifies the point num/2^level of the unit interval, which is the
// midpoint of the dyadic interval [(num-1)/2^level, (num+1)/2^level].  Only odd
// numerators occur, since even numerators name points of an earlier level.
type dyadic struct {
	num   uint64
	level uint8
}

// children returns the dyadic intervals immediately left and right of this
// point, one level down.
func (d dyadic) children() (dyadic, dyadic) {
	return dyadic{2*d.num - 1, d.level + 1}, dyadic{2*d.num + 1, d.level + 1}
}

// phase of a dispersive traversal.
type phase uint8

const (
	// Emit the first value of the range.
	phaseStart phase = iota
	// Emit the last value of the range.
	phaseEnd
	// Emit lattice points, one level at a time.
	phaseLattice
	// Emit anything missed by the lattice in ascending order.
	phaseGaps
	phaseDone
)

// dispersive is the default partition engine.  Having emitted both endpoints
// of the range, it visits the dyadic lattice level by level: the midpoint of
// the whole span, then its quarter points, then its eighth points and so on,
// with each point scaled onto the span and rounded to the nearest value.
// Rounding collisions are discarded via the guard.  After the final level,
// round(log2 span), any values which no lattice point landed on are emitted in
// ascending order.
//
// Each level is walked by iterative deepening over a LIFO work-list of dyadic
// intervals, starting from the whole span.  This emits the points of a level
// in ascending order whilst holding at most one pending interval per level.
// Since every level doubles in size, revisiting earlier levels costs no more
// than a constant factor overall.
type dispersive struct {
	lo    uint64
	span  uint64
	phase phase
	// Deepest lattice level to visit.
	levels uint8
	// Level currently being emitted.
	level uint8
	work  *stack.Stack[dyadic]
	// Position of gap scan
	cursor   uint64
	collided uint64
}

func newDispersive(r Range) *dispersive {
	p := &dispersive{lo: r.lo, work: stack.NewStack[dyadic]()}
	//
	if r.IsEmpty() {
		p.phase = phaseDone
	} else if p.span = r.Len() - 1; p.span > 0 {
		p.levels = min(roundLog2(p.span), maxLevel)
	}
	//
	return p
}

func (p *dispersive) next(g *Guard) (uint64, bool) {
	for {
		switch p.phase {
		case phaseStart:
			p.phase = phaseEnd
			//
			if p.offer(g, p.lo) {
				return p.lo, true
			}
		case phaseEnd:
			if p.span == 0 {
				p.phase = phaseDone
				continue
			}
			//
			p.phase = phaseLattice
			//
			if v := p.lo + p.span; p.offer(g, v) {
				return v, true
			}
		case phaseLattice:
			if v, ok := p.lattice(g); ok {
				return v, true
			}
			//
			p.phase = phaseGaps
			p.cursor = p.lo
		case phaseGaps:
			v, ok := g.NextFree(p.cursor)
			//
			if !ok {
				p.phase = phaseDone
				continue
			}
			//
			g.TestAndSet(v)
			p.cursor = v + 1
			//
			return v, true
		default:
			return 0, false
		}
	}
}

// lattice emits the next unmarked lattice point, or returns false once every
// level has been visited.
func (p *dispersive) lattice(g *Guard) (uint64, bool) {
	for {
		if p.work.IsEmpty() {
			if p.level == p.levels {
				return 0, false
			}
			// Start next level from the whole span
			p.level++
			p.work.Push(dyadic{1, 1})
		}
		//
		d := p.work.Pop()
		//
		if d.level < p.level {
			left, right := d.children()
			p.work.Push(right)
			p.work.Push(left)
		} else if v := p.lo + scale(p.span, d); p.offer(g, v) {
			return v, true
		}
	}
}

func (p *dispersive) offer(g *Guard, v uint64) bool {
	if g.TestAndSet(v) {
		return true
	}
	//
	p.collided++
	//
	return false
}

func (p *dispersive) pending() uint {
	return p.work.Len()
}

func (p *dispersive) peakPending() uint {
	return p.work.HighWater()
}

func (p *dispersive) collisions() uint64 {
	return p.collided
}

func (p *dispersive) release() {
	// Lattice points left pending can only be collisions.
	p.work.Reset()
	p.phase = phaseDone
}

// scale maps a dyadic point onto [0, span], computing round(span * num /
// 2^level) with halves rounded up.  The intermediate product is held in 128
// bits, so this cannot overflow.
func scale(span uint64, d dyadic) uint64 {
	hi, lo := bits.Mul64(span, d.num)
	lo, carry := bits.Add64(lo, 1<<(d.level-1), 0)
	hi += carry
	//
	return hi<<(64-d.level) | lo>>d.level
}

// roundLog2 returns log2(n) rounded to the nearest integer, for n > 0.  This
// is floor(log2 n) plus one whenever n >= 2^(floor(log2 n) + 1/2), which is
// decided exactly by comparing n² against 2^(2·floor(log2 n) + 1).
func roundLog2(n uint64) uint8 {
	k := uint(63 - bits.LeadingZeros64(n))
	hi, lo := bits.Mul64(n, n)
	//
	if e := 2*k + 1; e >= 64 {
		if hi >= 1<<(e-64) {
			k++
		}
	} else if hi > 0 || lo >= 1<<e {
		k++
	}
	//
	return uint8(k)
}
