/*
 * main.go, part of gocrys.
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

//gocrys reads, converts and inspects molecular and crystal structures.
package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rmera/gocrys/cmd/gocrys/commands"
	"github.com/rmera/gocrys/internal/config"
	"github.com/rmera/gocrys/internal/logger"
)

var (
	configPath string
	jsonLog    bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "gocrys",
	Short: "gocrys - molecular and crystal structure toolkit",
	Long: `gocrys - read, write and inspect molecular and crystal structures.

Supported formats: XYZ (incl. extended XYZ lattices), CIF, VASP POSCAR/CONTCAR,
Gaussian input (gjf/com), ORCA input (inp), PDB and ABACUS STRU.

Available commands:
  convert   - Convert a structure between formats
  info      - Summarize structures
  bonds     - Bond length statistics and histograms
  supercell - Replicate a crystal
  json      - Dump structures as JSON lines

Examples:
  gocrys convert POSCAR si.cif
  gocrys info *.xyz
  gocrys bonds benzene.xyz --plot bonds.png
  gocrys supercell si.cif POSCAR --n 2,2,2`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("json-log") {
			cfg.Log.JSON = jsonLog
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = logLevel
		}
		commands.SetConfig(cfg)
		if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./gocrys.toml or ~/.config/gocrys/gocrys.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "Log as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(commands.NewConvertCmd())
	rootCmd.AddCommand(commands.NewInfoCmd())
	rootCmd.AddCommand(commands.NewBondsCmd())
	rootCmd.AddCommand(commands.NewSupercellCmd())
	rootCmd.AddCommand(commands.NewJSONCmd())
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		pterm.Error.Println(err)
		if hint := errors.FlattenHints(err); hint != "" {
			pterm.Info.Println(hint)
		}
		os.Exit(1)
	}
}
