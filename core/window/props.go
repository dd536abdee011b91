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

// Package window renders large tables by materializing only the rows that
// fall inside (or just around) the visible scroll window. Rows have a fixed
// height, so the window is a pure function of the scroll offset and the
// viewport height; rows are pulled on demand through a row getter.
package window

import (
	"github.com/google/gridview/core/views"
	"github.com/google/safehtml"
)

// Defaults for Config
const (
	DefaultColumnWidth      = 150
	DefaultRowHeight        = 20
	DefaultHeaderHeight     = 35
	DefaultOverscanRowCount = 10
)

// NoOverscan disables overscan. A zero OverscanRowCount means the default.
const NoOverscan = -1

// Config holds the sizing parameters of a windowed table.
type Config struct {
	DefaultColumnWidth int
	RowHeight          int
	HeaderHeight       int
	OverscanRowCount   int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		DefaultColumnWidth: DefaultColumnWidth,
		RowHeight:          DefaultRowHeight,
		HeaderHeight:       DefaultHeaderHeight,
		OverscanRowCount:   DefaultOverscanRowCount,
	}
}

// WithDefaults returns c with every non-positive sizing field and a zero
// OverscanRowCount replaced by its default. NoOverscan is kept.
func (c Config) WithDefaults() Config {
	if c.DefaultColumnWidth <= 0 {
		c.DefaultColumnWidth = DefaultColumnWidth
	}
	if c.RowHeight <= 0 {
		c.RowHeight = DefaultRowHeight
	}
	if c.HeaderHeight <= 0 {
		c.HeaderHeight = DefaultHeaderHeight
	}
	if c.OverscanRowCount == 0 {
		c.OverscanRowCount = DefaultOverscanRowCount
	}
	return c
}

// CellProps is what a cell renderer receives for one visible cell.
type CellProps[T any] struct {
	CellData    any
	ColumnIndex int
	DataKey     string
	IsScrolling bool
	RowData     T
	RowIndex    int
}

// CellRenderer renders one visible cell.
type CellRenderer[T any] func(props CellProps[T]) safehtml.HTML

// DefaultCellRenderer displays the cell data as is.
func DefaultCellRenderer[T any](props CellProps[T]) safehtml.HTML {
	return views.Display(props.CellData)
}

// Column describes one column of a windowed table.
type Column[T any] struct {
	DataKey         string
	Label           string
	Width           int
	HeaderClassName string
	ClassName       string
	CellRenderer    CellRenderer[T] // DefaultCellRenderer when nil
	DisableSort     bool
}

// Props is the full input of a windowed table.
type Props[T any] struct {
	RowCount  int
	RowGetter func(index int) T

	// CellDataGetter extracts CellProps.CellData; nil leaves it nil.
	CellDataGetter func(row T, dataKey string) any

	RowHeight        int
	HeaderHeight     int
	OverscanRowCount int
	DisableHeader    bool

	// NoRowsRenderer replaces the body when RowCount is zero; NoRows is used
	// when it is nil.
	NoRowsRenderer func() safehtml.HTML

	Columns []Column[T]
}

// NoRows is the default empty-table placeholder.
func NoRows() safehtml.HTML {
	return noRows
}

var noRows = safehtml.HTMLEscaped("No data")
