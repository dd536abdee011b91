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

package grid

import (
	"github.com/google/gridview/core/views"
	"github.com/google/gridview/core/window"
	"github.com/google/safehtml"
)

const (
	actionsKey          = "actions"
	actionsBaseWidth    = 200
	actionsWidthPerItem = 50
)

// VirtualOptions configures a virtualized table.
type VirtualOptions[T any] struct {
	Columns   *Titles
	Renderers Renderers[T]
	Actions   []Action[T]

	// ColumnWidths overrides Window.DefaultColumnWidth per field key, in pixels.
	ColumnWidths map[string]int

	// Field reads row fields; defaults to Reflect.
	Field FieldFunc[T]

	// Children, when non-nil, are handed to the windowing primitive as is and
	// column derivation is skipped.
	Children []window.Column[T]

	// NoRowsRenderer replaces the body of an empty table.
	NoRowsRenderer func() safehtml.HTML

	// DisableHeader hides the header row.
	DisableHeader bool

	Window window.Config
}

// Virtual adapts a grid description to the windowing primitive.
type Virtual[T any] struct {
	opts    VirtualOptions[T]
	columns ColumnResolver
}

// NewVirtual creates a virtualized table adapter. Options are copied and
// zero sizing parameters take their defaults.
func NewVirtual[T any](opts VirtualOptions[T]) *Virtual[T] {
	if opts.Field == nil {
		opts.Field = Reflect[T]
	}
	opts.Window = opts.Window.WithDefaults()
	return &Virtual[T]{opts: opts}
}

// Config returns the effective sizing parameters.
func (v *Virtual[T]) Config() window.Config {
	return v.opts.Window
}

// Descriptors returns the column descriptors: Children when set, otherwise
// one descriptor per derived column followed by an actions descriptor when
// actions are configured.
func (v *Virtual[T]) Descriptors() []window.Column[T] {
	if v.opts.Children != nil {
		return v.opts.Children
	}

	specs := v.columns.Resolve(v.opts.Columns)
	cols := make([]window.Column[T], 0, len(specs)+1)
	for _, spec := range specs {
		width := v.opts.Window.DefaultColumnWidth
		if w := v.opts.ColumnWidths[spec.Key]; w > 0 {
			width = w
		}
		cols = append(cols, window.Column[T]{
			DataKey:         spec.Key,
			Label:           spec.Title,
			Width:           width,
			HeaderClassName: "header " + spec.Key,
			ClassName:       "cell " + spec.Key,
			CellRenderer:    v.cellRenderer(spec.Key),
		})
	}

	if n := len(v.opts.Actions); n > 0 {
		actions := v.opts.Actions
		cols = append(cols, window.Column[T]{
			DataKey:         actionsKey,
			Label:           "Actions",
			Width:           actionsBaseWidth + (n-1)*actionsWidthPerItem,
			HeaderClassName: "header " + actionsKey,
			ClassName:       "cell " + actionsKey,
			CellRenderer: func(p window.CellProps[T]) safehtml.HTML {
				return safehtml.HTMLConcat(ResolveActions(p.RowData, actions)...)
			},
			DisableSort: true,
		})
	}
	return cols
}

// cellRenderer adapts the cell renderer of key, if any, to the windowing
// primitive's per-cell callback.
func (v *Virtual[T]) cellRenderer(key string) window.CellRenderer[T] {
	render, ok := v.opts.Renderers[key]
	if !ok || render == nil {
		return window.DefaultCellRenderer[T]
	}
	return func(p window.CellProps[T]) safehtml.HTML {
		return render(p.CellData, p.RowData, p.DataKey)
	}
}

// RowGetter returns the row accessor handed to the windowing primitive.
// Indexes outside [0, len(rows)) panic.
func (v *Virtual[T]) RowGetter(rows []T) func(index int) T {
	return func(index int) T {
		return rows[index]
	}
}

// Props wires rows and the descriptors into windowing primitive props.
func (v *Virtual[T]) Props(rows []T) window.Props[T] {
	return window.Props[T]{
		RowCount:         len(rows),
		RowGetter:        v.RowGetter(rows),
		CellDataGetter:   v.opts.Field,
		RowHeight:        v.opts.Window.RowHeight,
		HeaderHeight:     v.opts.Window.HeaderHeight,
		OverscanRowCount: v.opts.Window.OverscanRowCount,
		DisableHeader:    v.opts.DisableHeader,
		NoRowsRenderer:   v.opts.NoRowsRenderer,
		Columns:          v.Descriptors(),
	}
}

// Build renders the window of rows visible at scrollTop in a viewport of
// height pixels.
func (v *Virtual[T]) Build(rows []T, height, scrollTop int) views.WindowViewModel {
	return window.Build(v.Props(rows), height, scrollTop)
}
