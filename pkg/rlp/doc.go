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

// Package rlp produces dispersive permutations of integer ranges.  Given a
// range [lo, hi), an Iterator yields every value in the range exactly once,
// ordered so that each new value lies roughly as far as possible from all
// values yielded before it.  A consumer which stops early therefore still
// obtains an even coverage of the range, which suits progressive sampling,
// probing and incremental search.
//
// Values are produced lazily, one per pull, using a dense bitmap of exactly
// one bit per value to suppress duplicates, plus a work-list of pending
// intervals whose size grows only with the logarithm of the range size.
//
// For example, the range [0, 101) begins:
//
//	0, 100, 50, 25, 75, 13, 38, 63, 88, ...
package rlp
