/*
 * supercell.go, part of gocrys.
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
	"github.com/spf13/cobra"

	"github.com/rmera/gocrys/internal/logger"
)

//NewSupercellCmd returns the supercell command.
func NewSupercellCmd() *cobra.Command {
	var (
		from, to, reps string
		level          int
	)
	cmd := &cobra.Command{
		Use:   "supercell <input> <output>",
		Short: "Replicate a crystal along its lattice vectors",
		Long: `Build an nx x ny x nz supercell of a periodic structure.

Examples:
  gocrys supercell POSCAR POSCAR.222 --to poscar --n 2,2,2
  gocrys supercell si.cif si333.cif --n 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseTriple(reps)
			if err != nil {
				return err
			}
			S, err := readStructure(args[0], from)
			if err != nil {
				return err
			}
			super, err := S.Supercell(n[0], n[1], n[2])
			if err != nil {
				return err
			}
			if err := writeStructure(args[1], to, level, super); err != nil {
				return err
			}
			logger.Logger.Infow("supercell written", "output", args[1], "repetitions", n, "atoms", super.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Input format, instead of guessing it from the file name")
	cmd.Flags().StringVar(&to, "to", "", "Output format, instead of guessing it from the file name")
	cmd.Flags().StringVarP(&reps, "n", "n", "2,2,2", "Repetitions along a, b and c, as nx,ny,nz or a single n")
	cmd.Flags().IntVar(&level, "level", -1, "Compression level for .zst/.gz output (default from config)")
	return cmd
}
