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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/gridview/core/window"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, 20, cfg.Grid.RowHeight)
	assert.Equal(t, 35, cfg.Grid.HeaderHeight)
	assert.Equal(t, 10, cfg.Grid.OverscanRowCount)
	assert.Equal(t, 150, cfg.Grid.DefaultColumnWidth)
	assert.Equal(t, 200, cfg.Grid.FixedChrome)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9000"
grid:
  row_height: 24
  overscan_row_count: 4
`), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 24, cfg.Grid.RowHeight)
	assert.Equal(t, 4, cfg.Grid.OverscanRowCount)
	assert.Equal(t, 35, cfg.Grid.HeaderHeight, "unset keys keep their default")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("GRIDVIEW_LOG_LEVEL", "debug")
	t.Setenv("GRIDVIEW_GRID_ROW_HEIGHT", "30")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30, cfg.Grid.RowHeight)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("GRIDVIEW_GRID_ROW_HEIGHT", "30")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--row-height=18", "--addr=:1234"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, 18, cfg.Grid.RowHeight)
	assert.Equal(t, ":1234", cfg.Addr)
	assert.Equal(t, 35, cfg.Grid.HeaderHeight, "unchanged flags do not override")
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("GRIDVIEW_GRID_ROW_HEIGHT", "0")
	_, err := Load("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid.row_height must be positive")
}

func TestGridWindow(t *testing.T) {
	w := Default().Grid.Window()
	assert.Equal(t, 20, w.RowHeight)
	assert.Equal(t, 35, w.HeaderHeight)
	assert.Equal(t, 10, w.OverscanRowCount)
	assert.Equal(t, 150, w.DefaultColumnWidth)
}

func TestGridWindow_ZeroOverscan(t *testing.T) {
	t.Setenv("GRIDVIEW_GRID_OVERSCAN_ROW_COUNT", "0")
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Grid.OverscanRowCount)

	w := cfg.Grid.Window()
	assert.Equal(t, window.NoOverscan, w.OverscanRowCount)
	assert.Equal(t, window.NoOverscan, w.WithDefaults().OverscanRowCount)
}
