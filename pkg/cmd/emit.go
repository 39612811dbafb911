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
	"math"
	"os"

	"github.com/consensys/go-rlp-iter/pkg/util"
	"github.com/consensys/go-rlp-iter/pkg/util/collection/enum"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var emitCmd = &cobra.Command{
	Use:   "emit [flags] lo hi",
	Short: "Print the values of a range in dispersive order.",
	Long: `Print the values of the range [lo, hi) in dispersive order, one per line.
	When writing to a terminal (or when requested) values are packed into
	columns instead.  Use --limit to print only a prefix of the sequence.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		var (
			it       = readIterator(cmd, args)
			limit    = uint64(getUint(cmd, "limit"))
			width, _ = terminalWidth()
		)
		if getFlag(cmd, "lines") {
			width = 0
		} else if getFlag(cmd, "columns") && width == 0 {
			// Columns requested, but not writing to a terminal
			width = defaultWidth
		}
		//
		stats := util.NewPerfStats()
		//
		n, err := writeValues(os.Stdout, enum.Take(limit, it.Enumerator()), width)
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		stats.Log("Emitting values", n)
	},
}

func init() {
	rootCmd.AddCommand(emitCmd)
	emitCmd.Flags().UintP("limit", "n", math.MaxUint, "maximum number of values to print")
	emitCmd.Flags().BoolP("columns", "c", false, "pack values into columns, even when not writing to a terminal")
	emitCmd.Flags().BoolP("lines", "l", false, "print one value per line, even when writing to a terminal")
}
