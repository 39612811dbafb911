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
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidRange signals a range whose lower bound exceeds its upper bound.
var ErrInvalidRange = errors.New("invalid range")

// ErrOverflow signals a closed range whose exclusive upper bound cannot be
// represented.
var ErrOverflow = errors.New("range bound overflows")

// Range describes the half-open interval of values [lo, hi) to be permuted.
// Ranges are immutable once constructed.
type Range struct {
	lo uint64
	hi uint64
}

// NewRange constructs the half-open range [lo, hi).  An error is returned when
// hi < lo.
func NewRange(lo, hi uint64) (Range, error) {
	if hi < lo {
		return Range{}, errors.Wrapf(ErrInvalidRange, "[%d, %d)", lo, hi)
	}
	//
	return Range{lo, hi}, nil
}

// NewInclusive constructs the closed range [lo, last], which is normalised to
// the half-open range [lo, last+1).  An error is returned when last < lo, or
// when last+1 is not representable.
func NewInclusive(lo, last uint64) (Range, error) {
	if last < lo {
		return Range{}, errors.Wrapf(ErrInvalidRange, "[%d, %d]", lo, last)
	} else if last == math.MaxUint64 {
		return Range{}, errors.Wrapf(ErrOverflow, "[%d, %d]", lo, last)
	}
	//
	return Range{lo, last + 1}, nil
}

// Lo returns the (inclusive) lower bound of this range.
func (r Range) Lo() uint64 {
	return r.lo
}

// Hi returns the (exclusive) upper bound of this range.
func (r Range) Hi() uint64 {
	return r.hi
}

// Len returns the number of values in this range.
func (r Range) Len() uint64 {
	return r.hi - r.lo
}

// IsEmpty checks whether this range contains any values at all.
func (r Range) IsEmpty() bool {
	return r.lo == r.hi
}

// Contains checks whether a given value lies within this range.
func (r Range) Contains(v uint64) bool {
	return r.lo <= v && v < r.hi
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.lo, r.hi)
}
