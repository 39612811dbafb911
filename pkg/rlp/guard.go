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

	"github.com/bits-and-blooms/bitset"
)

// Guard records which values of a range have been emitted so far, using
// exactly one bit per value.  Bit i corresponds to value lo+i.  Bits are only
// ever set, never cleared.
type Guard struct {
	bits  *bitset.BitSet
	lo    uint64
	n     uint64
	count uint64
}

// NewGuard constructs a guard for the given range, with every value initially
// unmarked.
func NewGuard(r Range) *Guard {
	return &Guard{bitset.New(uint(r.Len())), r.lo, r.Len(), 0}
}

// TestAndSet marks v as emitted.  This returns true if v was previously
// unmarked, and false if it had already been marked (in which case nothing
// changes).
func (p *Guard) TestAndSet(v uint64) bool {
	i := p.offset(v)
	//
	if p.bits.Test(i) {
		return false
	}
	//
	p.bits.Set(i)
	p.count++
	//
	return true
}

// Test checks whether v has been marked already.
func (p *Guard) Test(v uint64) bool {
	return p.bits.Test(p.offset(v))
}

// NextFree returns the smallest unmarked value which is greater than or equal
// to v, or false if there is none.
func (p *Guard) NextFree(v uint64) (uint64, bool) {
	if v < p.lo || v-p.lo >= p.n {
		return 0, false
	}
	//
	i, ok := p.bits.NextClear(uint(v - p.lo))
	// NextClear can report positions in the final word beyond n.
	if !ok || uint64(i) >= p.n {
		return 0, false
	}
	//
	return p.lo + uint64(i), true
}

// Count returns the number of values marked so far.
func (p *Guard) Count() uint64 {
	return p.count
}

// Len returns the number of values covered by this guard.
func (p *Guard) Len() uint64 {
	return p.n
}

func (p *Guard) offset(v uint64) uint {
	if v < p.lo || v-p.lo >= p.n {
		panic(fmt.Sprintf("value %d outside guarded range [%d, %d)", v, p.lo, p.lo+p.n))
	}
	//
	return uint(v - p.lo)
}
