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
	"os"

	"github.com/RoaringBitmap/roaring/roaring64"
	"github.com/consensys/go-rlp-iter/pkg/rlp"
	"github.com/consensys/go-rlp-iter/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] lo hi",
	Short: "Check a range is traversed completely without repeats.",
	Long: `Traverse the range [lo, hi) in full, recording values in a compressed
	bitmap which is independent of the traversal itself.  This fails unless
	every value of the range is produced exactly once.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		it := readIterator(cmd, args)
		stats := util.NewPerfStats()
		//
		if err := verifyTraversal(it); err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		stats.Log("Verifying traversal", it.Range().Len())
		fmt.Printf("verified %d values in %s\n", it.Range().Len(), it.Range())
	},
}

// Drain a given iterator, checking every value produced lies within its range,
// no value is produced twice and the number of values produced matches the
// size of the range.  Together these imply every value was produced.
func verifyTraversal(it *rlp.Iterator) error {
	var (
		r    = it.Range()
		seen = roaring64.New()
	)
	//
	for v := range it.All() {
		if !r.Contains(v) {
			return fmt.Errorf("value %d lies outside %s", v, r)
		} else if !seen.CheckedAdd(v) {
			return fmt.Errorf("value %d produced more than once", v)
		}
	}
	//
	if n := seen.GetCardinality(); n != r.Len() {
		return fmt.Errorf("produced %d of %d values in %s", n, r.Len(), r)
	}
	// Done
	return nil
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
