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
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownOrder signals a traversal order which is not recognised.
var ErrUnknownOrder = errors.New("unknown traversal order")

// Order determines how an Iterator partitions its range.
type Order uint8

const (
	// Dispersive emits both endpoints, then successively finer levels of the
	// dyadic lattice over the range (halves, quarters, eighths, etc), and
	// finally any values which the lattice did not reach.  Each level is spread
	// evenly across the whole range before the next level begins.
	Dispersive Order = iota
	// Bisection emits the midpoint of the range, then recursively bisects the
	// lower half before the upper half (i.e. depth first).
	Bisection
)

// ParseOrder converts the name of an order (as given by String) back into an
// Order.
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(name) {
	case "dispersive":
		return Dispersive, nil
	case "bisection":
		return Bisection, nil
	}
	//
	return 0, errors.Wrapf(ErrUnknownOrder, "%q", name)
}

func (o Order) String() string {
	switch o {
	case Dispersive:
		return "dispersive"
	case Bisection:
		return "bisection"
	}
	//
	return "unknown"
}

// Option configures an Iterator.
type Option func(*config)

type config struct {
	order Order
}

// WithOrder selects the order in which an Iterator visits its range.  The
// default is Dispersive.
func WithOrder(order Order) Option {
	return func(c *config) {
		c.order = order
	}
}
