/*
 * json.go, part of gocrys.
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

	crys "github.com/rmera/gocrys"
	"github.com/rmera/gocrys/chemjson"
)

//NewJSONCmd returns the json command, which dumps structures as JSON lines.
func NewJSONCmd() *cobra.Command {
	var (
		from string
		info bool
	)
	cmd := &cobra.Command{
		Use:   "json <file>...",
		Short: "Write structures as JSON, one per line",
		Long: `Write each structure as one JSON object per line on standard output.
With --info, a single summary object is written first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			structures := make([]*crys.Structure, 0, len(args))
			for _, name := range args {
				S, err := readStructure(name, from)
				if err != nil {
					return err
				}
				structures = append(structures, S)
			}
			if info {
				if jerr := chemjson.InfoFor(structures...).Send(out); jerr != nil {
					return jerr
				}
			}
			for _, S := range structures {
				if jerr := chemjson.EncodeStructure(out, S); jerr != nil {
					return jerr
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Input format, instead of guessing it from the file names")
	cmd.Flags().BoolVar(&info, "info", false, "Write a summary object before the structures")
	return cmd
}
