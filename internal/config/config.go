/*
 * config.go, part of gocrys.
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

//Package config loads gocrys settings from a TOML file and GOCRYS_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

//Config is the full set of gocrys settings.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
	Plot   PlotConfig   `mapstructure:"plot"`
	Check  CheckConfig  `mapstructure:"check"`
}

type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

//OutputConfig controls how structures are written when the command line does not say.
type OutputConfig struct {
	Format        string `mapstructure:"format"`
	CompressLevel int    `mapstructure:"compress_level"`
}

type PlotConfig struct {
	Bins     int     `mapstructure:"bins"`
	WidthIn  float64 `mapstructure:"width_in"`
	HeightIn float64 `mapstructure:"height_in"`
}

//CheckConfig holds the thresholds of the structure sanity checks.
type CheckConfig struct {
	ClashScale float64 `mapstructure:"clash_scale"`
}

//SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")

	v.SetDefault("output.format", "xyz")
	v.SetDefault("output.compress_level", 0) //0 means the codec default

	v.SetDefault("plot.bins", 20)
	v.SetDefault("plot.width_in", 5.0)
	v.SetDefault("plot.height_in", 4.0)

	v.SetDefault("check.clash_scale", 0.6)
}

//Default returns the configuration with nothing but the defaults applied.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	c, err := unmarshal(v)
	if err != nil {
		//the defaults are static, so this can only be a programming error.
		panic(err)
	}
	return c
}

//Load reads gocrys.toml from the working directory or from $HOME/.config/gocrys,
//then applies GOCRYS_* environment overrides. A missing file is not an error.
//If path is not empty, that file is read instead and must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GOCRYS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
		return unmarshal(v)
	}
	v.SetConfigName("gocrys")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "gocrys"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config")
		}
	}
	return unmarshal(v)
}

//LoadFromFile loads configuration from a specific file path, without environment overrides.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	SetDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if c.Plot.Bins < 1 {
		return nil, errors.Newf("plot.bins must be positive, got %d", c.Plot.Bins)
	}
	return &c, nil
}
