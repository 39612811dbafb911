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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/consensys/go-rlp-iter/pkg/rlp"
	"github.com/consensys/go-rlp-iter/pkg/util/collection/enum"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Width assumed when packing output into columns, if the terminal size cannot
// be determined.
const defaultWidth = 80

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned integer, or panic if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string, or panic if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure the log level based on the verbosity flag.
func configureLogging(cmd *cobra.Command) {
	if getFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Construct an iterator over the range given by the two command-line
// arguments, using the range and order flags.  Any error is reported and the
// process exits.
func readIterator(cmd *cobra.Command, args []string) *rlp.Iterator {
	var (
		inclusive = getFlag(cmd, "inclusive")
		order     rlp.Order
		r         rlp.Range
	)
	// Parse bounds
	lo, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Printf("invalid lower bound %q\n", args[0])
		os.Exit(1)
	}
	//
	hi, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		fmt.Printf("invalid upper bound %q\n", args[1])
		os.Exit(1)
	}
	// Construct range
	if inclusive {
		r, err = rlp.NewInclusive(lo, hi)
	} else {
		r, err = rlp.NewRange(lo, hi)
	}
	//
	if err == nil {
		order, err = rlp.ParseOrder(getString(cmd, "order"))
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	log.Debugf("traversing %s in %s order", r, order)
	// Construct iterator
	it, err := rlp.New(r, rlp.WithOrder(order))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	return it
}

// Determine the width of the terminal attached to standard output.  If
// standard output is not a terminal, this returns false.
func terminalWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return 0, false
	}
	//
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth, true
	}
	//
	return width, true
}

// Write all values from a given enumerator, returning the number written.  When
// width is zero, each value is written on its own line.  Otherwise, values are
// separated by spaces and packed into lines of at most width characters (except
// where a single value is wider).
func writeValues(w io.Writer, values enum.Enumerator[uint64], width int) (uint64, error) {
	var (
		out   = bufio.NewWriter(w)
		count uint64
		// Characters on current line
		used int
	)
	//
	for values.HasNext() {
		var (
			digits = strconv.FormatUint(values.Next(), 10)
			text   string
		)
		//
		switch {
		case width == 0:
			text = digits + "\n"
		case used == 0:
			text, used = digits, len(digits)
		case used+1+len(digits) > width:
			// Wrap onto next line
			text, used = "\n"+digits, len(digits)
		default:
			text, used = " "+digits, used+1+len(digits)
		}
		//
		if _, err := out.WriteString(text); err != nil {
			return count, err
		}
		//
		count++
	}
	// Terminate final line
	if used > 0 {
		if _, err := out.WriteString("\n"); err != nil {
			return count, err
		}
	}
	//
	return count, out.Flush()
}
