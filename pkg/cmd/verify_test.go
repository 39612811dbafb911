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
package cmd

import (
	"bytes"
	"testing"

	"github.com/consensys/go-rlp-iter/pkg/rlp"
	"github.com/stretchr/testify/require"
)

func Test_VerifyTraversal_01(t *testing.T) {
	for _, order := range []rlp.Order{rlp.Dispersive, rlp.Bisection} {
		require.NoError(t, verifyTraversal(rlp.Over(0, 0, rlp.WithOrder(order))))
		require.NoError(t, verifyTraversal(rlp.Over(5, 6, rlp.WithOrder(order))))
		require.NoError(t, verifyTraversal(rlp.Over(7, 7919, rlp.WithOrder(order))))
		require.NoError(t, verifyTraversal(rlp.Over(1<<40, 1<<40+100_000, rlp.WithOrder(order))))
	}
}

func Test_VerifyTraversal_02(t *testing.T) {
	// A partially consumed iterator cannot produce every value
	it := rlp.Over(0, 100)
	it.Next()
	//
	err := verifyTraversal(it)
	require.Error(t, err)
	require.Contains(t, err.Error(), "produced 99 of 100 values")
}

func Test_PrintStats_01(t *testing.T) {
	var buf bytes.Buffer
	//
	it := rlp.Over(0, 4)
	it.Collect()
	printStats(&buf, it)
	//
	require.Equal(t, "range:        [0, 4)\nemitted:      4\ncollisions:   0\npeak pending: 2\n", buf.String())
}
