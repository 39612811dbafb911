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
	"fmt"
	"iter"

	"github.com/consensys/go-rlp-iter/pkg/util/collection/enum"
	"github.com/pkg/errors"
)

// Iterator yields every value of a range exactly once, in the order chosen at
// construction (Dispersive by default).
// An Iterator is not safe for concurrent use, and cannot be restarted.
// Instead, construct a fresh Iterator for each traversal.
type Iterator struct {
	rng     Range
	guard   *Guard
	engine  engine
	emitted uint64
}

// Stats summarises the work performed by an Iterator so far.
type Stats struct {
	// Number of values yielded.
	Emitted uint64
	// Number of candidate values discarded because they were already yielded.
	Collisions uint64
	// Number of intervals currently pending.
	Pending uint
	// Largest number of intervals pending at any one time.
	PeakPending uint
}

// New constructs an iterator over the given range.
func New(r Range, options ...Option) (*Iterator, error) {
	var (
		cfg = config{order: Dispersive}
		eng engine
	)
	//
	for _, option := range options {
		option(&cfg)
	}
	//
	switch cfg.order {
	case Dispersive:
		eng = newDispersive(r)
	case Bisection:
		eng = newBisection(r)
	default:
		return nil, errors.Wrapf(ErrUnknownOrder, "%d", cfg.order)
	}
	//
	return &Iterator{r, NewGuard(r), eng, 0}, nil
}

// Over constructs an iterator over the half-open range [lo, hi).  This panics
// if the range or options are invalid, and is intended for use with constant
// bounds.
func Over(lo, hi uint64, options ...Option) *Iterator {
	r, err := NewRange(lo, hi)
	if err != nil {
		panic(err)
	}
	//
	it, err := New(r, options...)
	if err != nil {
		panic(err)
	}
	//
	return it
}

// Range returns the range being traversed.
func (p *Iterator) Range() Range {
	return p.rng
}

// HasNext checks whether or not there are any values remaining.
func (p *Iterator) HasNext() bool {
	return p.emitted < p.rng.Len()
}

// Count returns the number of values remaining.  This does not modify the
// iterator.
func (p *Iterator) Count() uint64 {
	return p.rng.Len() - p.emitted
}

// Next returns the next value, or false once every value has been returned.
// After that, Next continues to return false.
func (p *Iterator) Next() (uint64, bool) {
	if p.emitted == p.rng.Len() {
		return 0, false
	}
	//
	v, ok := p.engine.next(p.guard)
	if !ok {
		panic(fmt.Sprintf("traversal of %s ended after %d values", p.rng, p.emitted))
	}
	//
	p.emitted++
	// Terminal, so nothing remains pending.
	if p.emitted == p.rng.Len() {
		p.engine.release()
	}
	//
	return v, true
}

// All returns the remaining values as a sequence suitable for range-over-func.
// Breaking out of the loop leaves any values not yet visited in the iterator.
func (p *Iterator) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for v, ok := p.Next(); ok; v, ok = p.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains the iterator, returning all remaining values in order.
func (p *Iterator) Collect() []uint64 {
	return enum.Collect[uint64](p.Enumerator())
}

// Enumerator adapts this iterator to the HasNext/Next enumerator protocol.
// Both share the same position.
func (p *Iterator) Enumerator() enum.Enumerator[uint64] {
	return enumerator{p}
}

// Stats returns a summary of the work performed so far.
func (p *Iterator) Stats() Stats {
	return Stats{
		Emitted:     p.emitted,
		Collisions:  p.engine.collisions(),
		Pending:     p.engine.pending(),
		PeakPending: p.engine.peakPending(),
	}
}

type enumerator struct {
	it *Iterator
}

//nolint:revive
func (p enumerator) HasNext() bool {
	return p.it.HasNext()
}

//nolint:revive
func (p enumerator) Count() uint64 {
	return p.it.Count()
}

//nolint:revive
func (p enumerator) Next() uint64 {
	v, ok := p.it.Next()
	if !ok {
		panic("enumerator exhausted")
	}
	//
	return v
}
