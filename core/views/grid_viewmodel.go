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

package views

import "github.com/google/safehtml"

// TableViewModel contains a fully materialized grid formatted for template consumption
type TableViewModel struct {
	ClassName       string
	HeaderClassName string
	Headers         []HeaderCell
	Rows            []DataRow
	HasIcon         bool
	HasActions      bool
}

// HeaderCell is one <th> of the header row
type HeaderCell struct {
	Key      string        // Field key, empty for the icon and actions cells
	Content  safehtml.HTML // Title, icon or "Actions"
	Title    string        // Plain title, set for field columns only
	CSSClass string
}

// DataRow is one <tr> of the body
type DataRow struct {
	Index    int // Position in the source slice
	Selected bool
	CSSClass string
	Cells    []DataCell
}

// DataCell is one <td> of the body
type DataCell struct {
	Key       string
	Content   safehtml.HTML
	Text      string       // Plain-text form used by the text export
	CSSClass  string
	Clickable bool         // True if the cell links to a row selection
	ClickURL  safehtml.URL // Selection URL when Clickable
}

// Columns returns the number of header cells, which is also the number of cells of every row.
func (vm TableViewModel) Columns() int {
	return len(vm.Headers)
}

// WindowViewModel is the visible slice of a virtualized grid. Only the rows
// in the overscanned window are materialized; the spacers preserve the full
// scroll extent.
type WindowViewModel struct {
	ClassName       string
	HeaderClassName string
	ContainerStyle  safehtml.Style // Fixed viewport height and width
	ShowHeader      bool
	HeaderStyle     safehtml.Style
	Headers         []WindowHeader
	BodyStyle       safehtml.Style // Scrollable body below the header
	TopSpacer       safehtml.Style
	BottomSpacer    safehtml.Style
	Rows            []WindowRow
	Empty           bool
	NoRows          safehtml.HTML

	// Window bookkeeping, exposed for the page script and for debugging
	RowCount      int
	RowHeight     int
	ScrollTop     int
	Height        int
	Width         int
	Start         int
	Stop          int
	OverscanStart int
	OverscanStop  int
}

// WindowHeader is a header cell of a virtualized grid
type WindowHeader struct {
	Key      string
	Label    string
	CSSClass string
	Style    safehtml.Style
	Sortable bool
}

// WindowRow is a materialized row of a virtualized grid
type WindowRow struct {
	Index    int
	CSSClass string
	Style    safehtml.Style
	Cells    []WindowCell
}

// WindowCell is a materialized cell of a virtualized grid
type WindowCell struct {
	Key      string
	Content  safehtml.HTML
	CSSClass string
	Style    safehtml.Style
}
