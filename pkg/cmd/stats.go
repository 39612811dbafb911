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
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-rlp-iter/pkg/rlp"
	"github.com/consensys/go-rlp-iter/pkg/util"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [flags] lo hi",
	Short: "Report the work done traversing a range.",
	Long: `Traverse the range [lo, hi) in full and report the number of values
	produced, the number of rounding collisions discarded, and the largest
	number of intervals pending at any one time.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		it := readIterator(cmd, args)
		perf := util.NewPerfStats()
		// Drain the iterator
		for range it.All() {
		}
		//
		perf.Log("Traversal", it.Range().Len())
		printStats(os.Stdout, it)
	},
}

// Print a summary of the work done by a given iterator.
func printStats(w io.Writer, it *rlp.Iterator) {
	stats := it.Stats()
	//
	fmt.Fprintf(w, "range:        %s\n", it.Range())
	fmt.Fprintf(w, "emitted:      %d\n", stats.Emitted)
	fmt.Fprintf(w, "collisions:   %d\n", stats.Collisions)
	fmt.Fprintf(w, "peak pending: %d\n", stats.PeakPending)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
