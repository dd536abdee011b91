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
	"github.com/google/safehtml"
)

// actionsTitle is the header of the trailing actions column
var actionsTitle = safehtml.HTMLEscaped("Actions")

// Options configures a plain, fully materialized table.
type Options[T any] struct {
	Columns   *Titles
	Renderers Renderers[T]
	Actions   []Action[T]

	// Icon, when non-empty, adds a leading column whose header shows the icon
	// and whose body cells are blank.
	Icon safehtml.HTML

	// Styling hooks, copied to the table and header markup.
	ClassName       string
	HeaderClassName string

	// Field reads row fields; defaults to Reflect.
	Field FieldFunc[T]

	// OnRowClick is invoked when a row is clicked or preselected.
	OnRowClick func(row T, index int)

	// RowURL, when set, turns every data cell into a link that requests the
	// selection of its row.
	RowURL func(index int) safehtml.URL
}

// Table renders a slice of rows as a complete HTML table.
type Table[T any] struct {
	opts    Options[T]
	columns ColumnResolver
}

// NewTable creates a table renderer. Options are copied.
func NewTable[T any](opts Options[T]) *Table[T] {
	if opts.Field == nil {
		opts.Field = Reflect[T]
	}
	return &Table[T]{opts: opts}
}

// Columns returns the derived column specs.
func (t *Table[T]) Columns() []ColumnSpec {
	return t.columns.Resolve(t.opts.Columns)
}

// NewSelection creates a selection controller wired to the table's row
// click callback.
func (t *Table[T]) NewSelection() *Selection[T] {
	return NewSelection(t.opts.OnRowClick)
}

// Click handles a click on row i. With a selection controller the row
// becomes selected; without one only the row click callback runs.
func (t *Table[T]) Click(rows []T, i int, sel *Selection[T]) {
	if sel != nil {
		sel.Click(rows, i)
		return
	}
	row := rows[i]
	if t.opts.OnRowClick != nil {
		t.opts.OnRowClick(row, i)
	}
}

// Build materializes rows into a table view model. sel may be nil when the
// table has no selection support.
func (t *Table[T]) Build(rows []T, sel *Selection[T]) views.TableViewModel {
	specs := t.Columns()
	hasIcon := t.opts.Icon.String() != ""
	hasActions := len(t.opts.Actions) > 0

	vm := views.TableViewModel{
		ClassName:       t.opts.ClassName,
		HeaderClassName: t.opts.HeaderClassName,
		HasIcon:         hasIcon,
		HasActions:      hasActions,
	}

	// Header row
	if hasIcon {
		vm.Headers = append(vm.Headers, views.HeaderCell{Content: t.opts.Icon, CSSClass: "icon"})
	}
	for _, spec := range specs {
		vm.Headers = append(vm.Headers, views.HeaderCell{
			Key:      spec.Key,
			Content:  safehtml.HTMLEscaped(spec.Title),
			Title:    spec.Title,
			CSSClass: spec.Key,
		})
	}
	if hasActions {
		vm.Headers = append(vm.Headers, views.HeaderCell{Content: actionsTitle, CSSClass: "actions"})
	}

	selected, hasSelected := -1, false
	if sel != nil {
		selected, hasSelected = sel.Selected()
	}

	// Body rows
	vm.Rows = make([]views.DataRow, len(rows))
	for i, row := range rows {
		dr := views.DataRow{
			Index: i,
			Cells: make([]views.DataCell, 0, len(vm.Headers)),
		}
		if hasSelected && selected == i {
			dr.Selected = true
			dr.CSSClass = "selected"
		}

		if hasIcon {
			dr.Cells = append(dr.Cells, views.DataCell{Content: nbsp, CSSClass: "icon"})
		}
		for _, spec := range specs {
			cell := views.DataCell{
				Key:      spec.Key,
				Content:  ResolveCell(spec.Key, row, t.opts.Field, t.opts.Renderers),
				Text:     views.Text(t.opts.Field(row, spec.Key)),
				CSSClass: spec.Key,
			}
			if t.opts.RowURL != nil {
				cell.Clickable = true
				cell.ClickURL = t.opts.RowURL(i)
			}
			dr.Cells = append(dr.Cells, cell)
		}
		if hasActions {
			dr.Cells = append(dr.Cells, views.DataCell{
				Content:  ActionsCell(row, t.opts.Actions),
				CSSClass: "actions",
			})
		}
		vm.Rows[i] = dr
	}

	return vm
}
