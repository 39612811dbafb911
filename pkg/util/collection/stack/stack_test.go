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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Stack_01(t *testing.T) {
	s := NewStack[uint]()
	require.True(t, s.IsEmpty())
	require.Equal(t, uint(0), s.HighWater())
}

func Test_Stack_02(t *testing.T) {
	s := NewStack[uint]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	//
	require.Equal(t, uint(3), s.Len())
	// LIFO order
	require.Equal(t, uint(3), s.Pop())
	require.Equal(t, uint(2), s.Pop())
	require.Equal(t, uint(1), s.Pop())
	require.True(t, s.IsEmpty())
}

func Test_Stack_03(t *testing.T) {
	s := NewStack[uint]()
	// Grow, shrink, grow again (but less)
	for i := range uint(5) {
		s.Push(i)
	}
	//
	for range 4 {
		s.Pop()
	}
	//
	s.Push(7)
	s.Push(8)
	//
	require.Equal(t, uint(3), s.Len())
	require.Equal(t, uint(5), s.HighWater())
}

func Test_Stack_04(t *testing.T) {
	s := NewStack[uint]()
	s.Push(1)
	s.Push(2)
	s.Reset()
	// Peak usage survives a reset
	require.True(t, s.IsEmpty())
	require.Equal(t, uint(2), s.HighWater())
	//
	s.Push(3)
	require.Equal(t, uint(3), s.Pop())
	require.Equal(t, uint(2), s.HighWater())
}

func Test_Stack_Invalid_01(t *testing.T) {
	s := NewStack[uint]()
	require.Panics(t, func() { s.Pop() })
}
