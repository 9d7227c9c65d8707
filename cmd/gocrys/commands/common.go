/*
 * common.go, part of gocrys.
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

//Package commands holds the gocrys subcommands.
package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	crys "github.com/rmera/gocrys"
	"github.com/rmera/gocrys/fileio"
	"github.com/rmera/gocrys/formats"
	"github.com/rmera/gocrys/internal/config"
)

var settings *config.Config

//SetConfig sets the configuration the commands use for their defaults.
func SetConfig(c *config.Config) {
	settings = c
}

func cfg() *config.Config {
	if settings == nil {
		settings = config.Default()
	}
	return settings
}

//readStructure reads name, in the format from if given, else guessing it from the name.
func readStructure(name, from string) (*crys.Structure, error) {
	if from == "" {
		return fileio.ReadFile(name)
	}
	f, err := formats.ParseFormat(from)
	if err != nil {
		return nil, err
	}
	return fileio.ReadFile(name, fileio.WithFormat(f))
}

//writeStructure writes S to name. The format is, in order of preference, to,
//the one implied by name, or the configured output format.
func writeStructure(name, to string, level int, S *crys.Structure) error {
	if to == "" {
		if _, err := fileio.FormatOf(name); err != nil {
			to = cfg().Output.Format
		}
	}
	if level < 0 {
		level = cfg().Output.CompressLevel
	}
	opts := []fileio.Option{fileio.WithLevel(level)}
	if to != "" {
		f, err := formats.ParseFormat(to)
		if err != nil {
			return err
		}
		opts = append(opts, fileio.WithFormat(f))
	}
	return fileio.WriteFile(name, S, opts...)
}

//parseTriple parses "2,2,1" or a single "3", which means "3,3,3".
func parseTriple(s string) ([3]int, error) {
	var ret [3]int
	fields := strings.Split(s, ",")
	if len(fields) == 1 {
		fields = []string{fields[0], fields[0], fields[0]}
	}
	if len(fields) != 3 {
		return ret, errors.Newf("expected nx,ny,nz, got %q", s)
	}
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return ret, errors.Wrapf(err, "repetition %q", f)
		}
		ret[i] = n
	}
	return ret, nil
}

func parseVector(s string) ([3]float64, error) {
	var ret [3]float64
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return ret, errors.Newf("expected x,y,z, got %q", s)
	}
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return ret, errors.Wrapf(err, "component %q", f)
		}
		ret[i] = x
	}
	return ret, nil
}

func vecString(v [3]float64) string {
	return fmt.Sprintf("%.4f %.4f %.4f", v[0], v[1], v[2])
}

//renderTable writes data as a table with a header row.
func renderTable(w io.Writer, data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "rendering table")
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
