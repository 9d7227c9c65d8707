/*
 * convert.go, part of gocrys.
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

//NewConvertCmd returns the convert command, which reads a structure in one format and writes it in another.
func NewConvertCmd() *cobra.Command {
	var (
		from, to, shift string
		level          int
		center         bool
	)
	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a structure between formats",
		Long: `Read a structure and write it back in another format.

Formats are guessed from the file names (extension, or the POSCAR, CONTCAR
and STRU base names). A .zst or .gz suffix compresses or decompresses the file.

Examples:
  gocrys convert POSCAR si.cif
  gocrys convert water.xyz water.inp --center
  gocrys convert cell.dat STRU.gz --from cif`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := readStructure(args[0], from)
			if err != nil {
				return err
			}
			if center {
				S.CenterAtOrigin()
			}
			if shift != "" {
				v, err := parseVector(shift)
				if err != nil {
					return err
				}
				if err := S.Translate(v); err != nil {
					return err
				}
			}
			if err := writeStructure(args[1], to, level, S); err != nil {
				return err
			}
			logger.Logger.Infow("converted", "input", args[0], "output", args[1], "atoms", S.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Input format, instead of guessing it from the file name")
	cmd.Flags().StringVar(&to, "to", "", "Output format, instead of guessing it from the file name")
	cmd.Flags().IntVar(&level, "level", -1, "Compression level for .zst/.gz output (default from config)")
	cmd.Flags().BoolVar(&center, "center", false, "Move the center of mass to the origin before writing")
	cmd.Flags().StringVar(&shift, "translate", "", "Translate all atoms by x,y,z (Angstrom) before writing")
	return cmd
}
