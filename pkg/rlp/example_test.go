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
package rlp_test

import (
	"fmt"

	"github.com/consensys/go-rlp-iter/pkg/rlp"
)

func Example() {
	r, err := rlp.NewInclusive(0, 100)
	if err != nil {
		panic(err)
	}
	//
	it, _ := rlp.New(r)
	prefix := make([]uint64, 9)
	//
	for i := range prefix {
		prefix[i], _ = it.Next()
	}
	//
	fmt.Println(prefix)
	fmt.Println(it.Count(), "left")
	// Output:
	// [0 100 50 25 75 13 38 63 88]
	// 92 left
}

func ExampleIterator_All() {
	var values []uint64
	//
	for v := range rlp.Over(1, 10, rlp.WithOrder(rlp.Bisection)).All() {
		values = append(values, v)
	}
	//
	fmt.Println(values)
	// Output:
	// [5 3 2 1 4 8 7 6 9]
}
