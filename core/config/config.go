/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads server settings from defaults, an optional YAML file,
// GRIDVIEW_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/gridview/core/window"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. GRIDVIEW_ADDR
// or GRIDVIEW_GRID_ROW_HEIGHT.
const EnvPrefix = "GRIDVIEW"

// Config holds the server settings.
type Config struct {
	Addr     string `mapstructure:"addr"`
	LogLevel string `mapstructure:"log_level"`
	Grid     Grid   `mapstructure:"grid"`
}

// Grid holds the rendering defaults shared by every dataset.
type Grid struct {
	RowHeight          int `mapstructure:"row_height"`
	HeaderHeight       int `mapstructure:"header_height"`
	OverscanRowCount   int `mapstructure:"overscan_row_count"`
	DefaultColumnWidth int `mapstructure:"default_column_width"`
	FixedChrome        int `mapstructure:"fixed_chrome"`
	InstanceCacheSize  int `mapstructure:"instance_cache_size"`
}

// Window returns the windowing configuration. A configured overscan of 0
// becomes window.NoOverscan.
func (g Grid) Window() window.Config {
	overscan := g.OverscanRowCount
	if overscan == 0 {
		overscan = window.NoOverscan
	}
	return window.Config{
		DefaultColumnWidth: g.DefaultColumnWidth,
		RowHeight:          g.RowHeight,
		HeaderHeight:       g.HeaderHeight,
		OverscanRowCount:   overscan,
	}
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"addr":                "addr",
	"log-level":           "log_level",
	"row-height":          "grid.row_height",
	"header-height":       "grid.header_height",
	"overscan":            "grid.overscan_row_count",
	"column-width":        "grid.default_column_width",
	"fixed-chrome":        "grid.fixed_chrome",
	"instance-cache-size": "grid.instance_cache_size",
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:     "127.0.0.1:8097",
		LogLevel: "info",
		Grid: Grid{
			RowHeight:          window.DefaultRowHeight,
			HeaderHeight:       window.DefaultHeaderHeight,
			OverscanRowCount:   window.DefaultOverscanRowCount,
			DefaultColumnWidth: window.DefaultColumnWidth,
			FixedChrome:        window.DefaultFixedChrome,
			InstanceCacheSize:  256,
		},
	}
}

// RegisterFlags adds one flag per setting to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("config", "", "Path to a YAML configuration file")
	fs.String("addr", d.Addr, "Address to listen on")
	fs.String("log-level", d.LogLevel, "Log level (debug, info, warn, error)")
	fs.Int("row-height", d.Grid.RowHeight, "Row height of virtualized grids in pixels")
	fs.Int("header-height", d.Grid.HeaderHeight, "Header height of virtualized grids in pixels")
	fs.Int("overscan", d.Grid.OverscanRowCount, "Rows rendered beyond each edge of the visible window")
	fs.Int("column-width", d.Grid.DefaultColumnWidth, "Default column width in pixels")
	fs.Int("fixed-chrome", d.Grid.FixedChrome, "Page height taken by everything but the grid")
	fs.Int("instance-cache-size", d.Grid.InstanceCacheSize, "Number of mounted grid instances kept in memory")
}

// Load builds the configuration. path names an optional YAML file; fs may be
// nil, and only flags the user actually set override the other sources.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("addr", d.Addr)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("grid.row_height", d.Grid.RowHeight)
	v.SetDefault("grid.header_height", d.Grid.HeaderHeight)
	v.SetDefault("grid.overscan_row_count", d.Grid.OverscanRowCount)
	v.SetDefault("grid.default_column_width", d.Grid.DefaultColumnWidth)
	v.SetDefault("grid.fixed_chrome", d.Grid.FixedChrome)
	v.SetDefault("grid.instance_cache_size", d.Grid.InstanceCacheSize)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if fs != nil {
		var errs []error
		fs.VisitAll(func(f *pflag.Flag) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return
			}
			if err := v.BindPFlag(key, f); err != nil {
				errs = append(errs, err)
			}
		})
		if err := errors.Join(errs...); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the grid cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}
	for name, v := range map[string]int{
		"row_height":           c.Grid.RowHeight,
		"header_height":        c.Grid.HeaderHeight,
		"default_column_width": c.Grid.DefaultColumnWidth,
		"instance_cache_size":  c.Grid.InstanceCacheSize,
	} {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("grid.%s must be positive, got %d", name, v))
		}
	}
	if c.Grid.OverscanRowCount < 0 {
		errs = append(errs, fmt.Errorf("grid.overscan_row_count must not be negative, got %d", c.Grid.OverscanRowCount))
	}
	if c.Grid.FixedChrome < 0 {
		errs = append(errs, fmt.Errorf("grid.fixed_chrome must not be negative, got %d", c.Grid.FixedChrome))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
