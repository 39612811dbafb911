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
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Bisection_01(t *testing.T) {
	checkBisection(t, 0, 7, []uint64{3, 1, 0, 2, 5, 4, 6})
}

func Test_Bisection_02(t *testing.T) {
	checkBisection(t, 10, 14, []uint64{12, 11, 10, 13})
}

func Test_Bisection_03(t *testing.T) {
	checkBisection(t, 5, 6, []uint64{5})
	checkBisection(t, 0, 0, []uint64{})
}

func Test_Bisection_04(t *testing.T) {
	// Descends the lower half first
	it := Over(0, 101, WithOrder(Bisection))
	prefix := make([]uint64, 7)
	//
	for i := range prefix {
		prefix[i], _ = it.Next()
	}
	//
	require.Equal(t, []uint64{50, 25, 12, 6, 3, 1, 0}, prefix)
}

func Test_Bisection_05(t *testing.T) {
	// Disjoint intervals never collide
	it := Over(0, 1000, WithOrder(Bisection))
	it.Collect()
	require.Equal(t, uint64(0), it.Stats().Collisions)
}

func checkBisection(t *testing.T, lo, hi uint64, expected []uint64) {
	t.Helper()
	//
	it := Over(lo, hi, WithOrder(Bisection))
	checkSequence(t, it, expected)
}
