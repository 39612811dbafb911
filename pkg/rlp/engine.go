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

// engine captures the partition strategy driving an Iterator.  Each call to
// next pops pending intervals from a work-list, pushing their children back,
// until it finds a representative point not yet marked in the guard.  That
// point is marked and returned.  Points which are already marked (rounding
// collisions) are discarded without returning.  Once the work-list is
// exhausted, next returns false.
type engine interface {
	next(g *Guard) (uint64, bool)
	// Number of intervals currently pending.
	pending() uint
	// Largest number of intervals pending at any one time.
	peakPending() uint
	// Number of candidate points discarded as already marked.
	collisions() uint64
	// Discard any intervals still pending, once every value has been emitted.
	release()
}
