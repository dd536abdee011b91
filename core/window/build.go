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

package window

import (
	"strconv"

	"github.com/google/gridview/core/views"
	"github.com/google/safehtml"
)

const (
	tableClassName     = "virtualized-table"
	headerRowClassName = "virtualized-table-header-row"
	rowClassName       = "virtualized-table-row"
)

// RowClassName returns the class of row index; index -1 is the header row.
func RowClassName(index int) string {
	if index == -1 {
		return rowClassName
	}
	if (index+1)%2 == 0 {
		return rowClassName + " even"
	}
	return rowClassName + " odd"
}

func px(n int) string {
	return strconv.Itoa(n) + "px"
}

// Build materializes the rows of p visible in a viewport of height pixels
// scrolled by scrollTop pixels. RowGetter is called only for rows in the
// overscanned window.
func Build[T any](p Props[T], height, scrollTop int) views.WindowViewModel {
	if p.RowHeight <= 0 {
		p.RowHeight = DefaultRowHeight
	}
	if p.HeaderHeight <= 0 {
		p.HeaderHeight = DefaultHeaderHeight
	}

	width := 0
	for _, col := range p.Columns {
		width += col.Width
	}

	bodyHeight := height
	if !p.DisableHeader {
		bodyHeight -= p.HeaderHeight
	}

	vm := views.WindowViewModel{
		ClassName:       tableClassName,
		HeaderClassName: headerRowClassName + " " + RowClassName(-1),
		ContainerStyle:  safehtml.StyleFromProperties(safehtml.StyleProperties{Height: px(height), Width: px(width)}),
		ShowHeader:      !p.DisableHeader,
		RowCount:        p.RowCount,
		RowHeight:       p.RowHeight,
		Height:          height,
		Width:           width,
	}

	vm.BodyStyle = safehtml.StyleFromProperties(safehtml.StyleProperties{Height: px(max(bodyHeight, 0))})

	if vm.ShowHeader {
		vm.HeaderStyle = safehtml.StyleFromProperties(safehtml.StyleProperties{Height: px(p.HeaderHeight)})
		for _, col := range p.Columns {
			vm.Headers = append(vm.Headers, views.WindowHeader{
				Key:      col.DataKey,
				Label:    col.Label,
				CSSClass: col.HeaderClassName,
				Style:    safehtml.StyleFromProperties(safehtml.StyleProperties{Width: px(col.Width)}),
				Sortable: !col.DisableSort,
			})
		}
	}

	if p.RowCount <= 0 {
		vm.Empty = true
		if p.NoRowsRenderer != nil {
			vm.NoRows = p.NoRowsRenderer()
		} else {
			vm.NoRows = NoRows()
		}
		return vm
	}

	r := Compute(p.RowCount, p.RowHeight, bodyHeight, scrollTop, p.OverscanRowCount)
	vm.Start, vm.Stop = r.Start, r.Stop
	vm.OverscanStart, vm.OverscanStop = r.OverscanStart, r.OverscanStop
	vm.ScrollTop = min(max(scrollTop, 0), max(p.RowCount*p.RowHeight-bodyHeight, 0))
	vm.TopSpacer = safehtml.StyleFromProperties(safehtml.StyleProperties{Height: px(r.OverscanStart * p.RowHeight)})
	vm.BottomSpacer = safehtml.StyleFromProperties(safehtml.StyleProperties{Height: px((p.RowCount - r.OverscanStop) * p.RowHeight)})

	rowStyle := safehtml.StyleFromProperties(safehtml.StyleProperties{Height: px(p.RowHeight)})
	cellStyles := make([]safehtml.Style, len(p.Columns))
	for i, col := range p.Columns {
		cellStyles[i] = safehtml.StyleFromProperties(safehtml.StyleProperties{Width: px(col.Width)})
	}

	vm.Rows = make([]views.WindowRow, 0, r.Len())
	for index := r.OverscanStart; index < r.OverscanStop; index++ {
		row := p.RowGetter(index)
		wr := views.WindowRow{
			Index:    index,
			CSSClass: RowClassName(index),
			Style:    rowStyle,
			Cells:    make([]views.WindowCell, len(p.Columns)),
		}
		for c, col := range p.Columns {
			props := CellProps[T]{
				ColumnIndex: c,
				DataKey:     col.DataKey,
				RowData:     row,
				RowIndex:    index,
			}
			if p.CellDataGetter != nil {
				props.CellData = p.CellDataGetter(row, col.DataKey)
			}
			render := col.CellRenderer
			if render == nil {
				render = DefaultCellRenderer[T]
			}
			wr.Cells[c] = views.WindowCell{
				Key:      col.DataKey,
				Content:  render(props),
				CSSClass: col.ClassName,
				Style:    cellStyles[c],
			}
		}
		vm.Rows = append(vm.Rows, wr)
	}

	return vm
}
