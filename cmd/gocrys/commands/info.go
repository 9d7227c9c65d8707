/*
 * info.go, part of gocrys.
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
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rmera/gocrys/chemgraph"
	"github.com/rmera/gocrys/clash"
)

//NewInfoCmd returns the info command, which summarizes one or more structure files.
func NewInfoCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "info <file>...",
		Short: "Summarize structures",
		Long: `Print, for each file, the atom count, formula, cell, center of mass,
number of bonds, the covalently bonded fragments and the shortest distance
between two of them, and the number of clashes: non-bonded atom pairs closer
than a fraction (check.clash_scale, default 0.6) of their van der Waals radii sum.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"File", "Name", "Atoms", "Formula", "Crystal", "Cell", "Volume", "Center of mass", "Bonds", "Fragments", "Fragment gap", "Clashes"}}
			for _, name := range args {
				S, err := readStructure(name, from)
				if err != nil {
					return err
				}
				cell, vol := "-", "-"
				if U := S.Cell(); U != nil {
					l, a := U.Lengths(), U.Angles()
					cell = fmt.Sprintf("%.4f %.4f %.4f / %.2f %.2f %.2f", l[0], l[1], l[2], a[0], a[1], a[2])
					vol = fmt.Sprintf("%.4f", U.Volume())
				}
				frags := chemgraph.Fragments(S)
				gap := "-"
				if g := clash.FragmentGap(S, frags); g >= 0 {
					gap = fmt.Sprintf("%.4f", g)
				}
				data = append(data, []string{
					name,
					S.Name,
					strconv.Itoa(S.Len()),
					S.Formula(),
					strconv.FormatBool(S.IsCrystal()),
					cell,
					vol,
					vecString(S.CenterOfMass()),
					strconv.Itoa(len(S.Bonds())),
					strconv.Itoa(len(frags)),
					gap,
					strconv.Itoa(len(clash.Contacts(S, cfg().Check.ClashScale))),
				})
			}
			return renderTable(cmd.OutOrStdout(), data)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Input format, instead of guessing it from the file names")
	return cmd
}
