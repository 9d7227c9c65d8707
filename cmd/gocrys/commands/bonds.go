/*
 * bonds.go, part of gocrys.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package commands

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rmera/gocrys/chemplot"
	"github.com/rmera/gocrys/histo"
	"github.com/rmera/gocrys/internal/logger"
)

//NewBondsCmd returns the bonds command.
func NewBondsCmd() *cobra.Command {
	var (
		from, plotFile string
		bins           int
		list, text     bool
	)
	cmd := &cobra.Command{
		Use:   "bonds <file>",
		Short: "Bond length statistics per element pair",
		Long: `Detect covalent bonds (distance below 1.1 times the sum of the covalent
radii) and print statistics for each element pair. With --plot, a histogram
of the bond lengths is also saved; its format follows the file extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := readStructure(args[0], from)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if list {
				data := pterm.TableData{{"Bond", "Atom 1", "Atom 2", "Distance"}}
				for _, b := range S.Bonds() {
					a1, _ := S.AtomByID(b.At1)
					a2, _ := S.AtomByID(b.At2)
					data = append(data, []string{
						strconv.Itoa(b.Index),
						a1.Symbol() + " " + b.At1.String(),
						a2.Symbol() + " " + b.At2.String(),
						fmt.Sprintf("%.4f", b.Dist),
					})
				}
				if err := renderTable(out, data); err != nil {
					return err
				}
			}
			pairs := chemplot.ByPair(S)
			names := make([]string, 0, len(pairs))
			for k := range pairs {
				names = append(names, k)
			}
			sort.Strings(names)
			data := pterm.TableData{{"Pair", "N", "Mean", "StdDev", "Min", "Max"}}
			for _, name := range names {
				st := chemplot.BondStats(pairs[name])
				data = append(data, []string{
					name,
					strconv.Itoa(st.N),
					fmt.Sprintf("%.4f", st.Mean),
					fmt.Sprintf("%.4f", st.StdDev),
					fmt.Sprintf("%.4f", st.Min),
					fmt.Sprintf("%.4f", st.Max),
				})
			}
			if err := renderTable(out, data); err != nil {
				return err
			}
			if bins <= 0 {
				bins = cfg().Plot.Bins
			}
			if text {
				for _, name := range names {
					st := chemplot.BondStats(pairs[name])
					div, err := histo.Uniform(st.Min, st.Max, bins)
					if err != nil {
						return err
					}
					h, err := histo.NewData(div, chemplot.Lengths(pairs[name]))
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s\n%s\n", name, h.Bars(40))
				}
			}
			if plotFile == "" {
				return nil
			}
			title := S.Name
			if title == "" {
				title = filepath.Base(args[0])
			}
			if err := chemplot.BondHistogram(S, bins, title, plotFile, cfg().Plot.WidthIn, cfg().Plot.HeightIn); err != nil {
				return err
			}
			logger.Logger.Infow("bond histogram saved", "file", plotFile, "bins", bins)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Input format, instead of guessing it from the file name")
	cmd.Flags().StringVar(&plotFile, "plot", "", "Save a bond length histogram to this file (png, svg, pdf...)")
	cmd.Flags().IntVar(&bins, "bins", 0, "Histogram bins (default from config)")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "Also list every bond")
	cmd.Flags().BoolVar(&text, "histo", false, "Print a text histogram of the lengths for each pair")
	return cmd
}
