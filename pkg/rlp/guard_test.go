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

func Test_Guard_01(t *testing.T) {
	g := NewGuard(Range{10, 20})
	//
	require.Equal(t, uint64(10), g.Len())
	require.Equal(t, uint64(0), g.Count())
	require.False(t, g.Test(15))
	// First marking succeeds
	require.True(t, g.TestAndSet(15))
	require.True(t, g.Test(15))
	// Subsequent markings do not
	require.False(t, g.TestAndSet(15))
	require.False(t, g.TestAndSet(15))
	require.Equal(t, uint64(1), g.Count())
}

func Test_Guard_02(t *testing.T) {
	g := NewGuard(Range{0, 200})
	//
	for v := range uint64(200) {
		require.True(t, g.TestAndSet(v))
		require.Equal(t, v+1, g.Count())
	}
	//
	for v := range uint64(200) {
		require.False(t, g.TestAndSet(v))
	}
	//
	require.Equal(t, uint64(200), g.Count())
}

func Test_Guard_NextFree_01(t *testing.T) {
	g := NewGuard(Range{5, 75})
	//
	v, ok := g.NextFree(5)
	require.True(t, ok)
	require.Equal(t, uint64(5), v)
	// Mark a run spanning a word boundary
	for v := uint64(5); v < 72; v++ {
		g.TestAndSet(v)
	}
	//
	v, ok = g.NextFree(5)
	require.True(t, ok)
	require.Equal(t, uint64(72), v)
	//
	v, ok = g.NextFree(74)
	require.True(t, ok)
	require.Equal(t, uint64(74), v)
}

func Test_Guard_NextFree_02(t *testing.T) {
	// 70 bits leaves unused bits at the end of the second word
	g := NewGuard(Range{0, 70})
	//
	for v := range uint64(70) {
		g.TestAndSet(v)
	}
	//
	_, ok := g.NextFree(0)
	require.False(t, ok)
	_, ok = g.NextFree(69)
	require.False(t, ok)
	// Outside the range altogether
	_, ok = g.NextFree(70)
	require.False(t, ok)
}

func Test_Guard_Empty_01(t *testing.T) {
	g := NewGuard(Range{3, 3})
	//
	require.Equal(t, uint64(0), g.Len())
	_, ok := g.NextFree(3)
	require.False(t, ok)
	require.Panics(t, func() { g.TestAndSet(3) })
}

func Test_Guard_Invalid_01(t *testing.T) {
	g := NewGuard(Range{10, 20})
	//
	require.Panics(t, func() { g.TestAndSet(9) })
	require.Panics(t, func() { g.TestAndSet(20) })
	require.Panics(t, func() { g.Test(100) })
	require.Equal(t, uint64(0), g.Count())
}
