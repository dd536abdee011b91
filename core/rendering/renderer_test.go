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

package rendering

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/gridview/core/views"
	"github.com/google/safehtml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *TableRenderer {
	t.Helper()
	r, err := NewTableRenderer()
	require.NoError(t, err)
	return r
}

func plainTable() *views.TableViewModel {
	return &views.TableViewModel{
		ClassName:       "grid",
		HeaderClassName: "grid-header",
		Headers: []views.HeaderCell{
			{Key: "name", Content: safehtml.HTMLEscaped("Name"), Title: "Name", CSSClass: "name"},
			{Key: "age", Content: safehtml.HTMLEscaped("Age"), Title: "Age", CSSClass: "age"},
		},
		Rows: []views.DataRow{
			{Index: 0, Cells: []views.DataCell{
				{Key: "name", Content: safehtml.HTMLEscaped("Ann"), Text: "Ann", CSSClass: "name"},
				{Key: "age", Content: safehtml.HTMLEscaped("30"), Text: "30", CSSClass: "age"},
			}},
			{Index: 1, Selected: true, CSSClass: "selected", Cells: []views.DataCell{
				{Key: "name", Content: safehtml.HTMLEscaped("<Bo>"), Text: "<Bo>", CSSClass: "name",
					Clickable: true, ClickURL: safehtml.URLSanitized("/table?select=1")},
				{Key: "age", Content: safehtml.HTMLEscaped("25"), Text: "25", CSSClass: "age"},
			}},
		},
	}
}

func TestRender_PlainTable(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	err := r.Render(&buf, views.PageViewModel{
		Title:        "People",
		TableName:    "people",
		Mode:         views.ModePlain,
		Table:        plainTable(),
		RenderTimeMs: "0.42",
	})
	require.NoError(t, err)
	html := buf.String()

	assert.Contains(t, html, "<title>People</title>")
	assert.Contains(t, html, `<table class="grid">`)
	assert.Contains(t, html, `<thead class="grid-header">`)
	assert.Contains(t, html, `<th class="name">Name</th>`)
	assert.Contains(t, html, `<th class="age">Age</th>`)
	assert.Contains(t, html, `<tr data-row="1" class="selected">`)
	assert.Contains(t, html, `<a class="row-link" href="/table?select=1">&lt;Bo&gt;</a>`)
	assert.Contains(t, html, "Built in 0.42 ms")
	assert.NotContains(t, html, `class="virtualized-table"`)
	assert.Equal(t, 2, strings.Count(html, "<tr data-row="))
}

func TestRender_Selection(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, views.PageViewModel{
		Title:    "People",
		Selected: "row 1",
		Table:    plainTable(),
	}))
	assert.Contains(t, buf.String(), "Selected: row 1")
}

func TestRender_ModeLinks(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, views.PageViewModel{
		Title: "People",
		Modes: []views.ModeLink{
			{Label: "plain", URL: safehtml.URLSanitized("/table?mode=plain"), Active: true},
			{Label: "virtual", URL: safehtml.URLSanitized("/table?mode=virtual")},
		},
		Table: plainTable(),
	}))
	html := buf.String()
	assert.Contains(t, html, `<a href="/table?mode=plain" class="active">plain</a>`)
	assert.Contains(t, html, `<a href="/table?mode=virtual">virtual</a>`)
}

func TestRender_Window(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	style := safehtml.StyleFromProperties(safehtml.StyleProperties{Height: "20px"})
	err := r.Render(&buf, views.PageViewModel{
		Title:     "Transactions",
		TableName: "transactions",
		Mode:      views.ModeVirtual,
		Instance:  "0b9c1f3e-5d7a-4e0c-9a7b-2f1d8c6e4a10",
		Window: &views.WindowViewModel{
			ClassName:       "virtualized-table",
			HeaderClassName: "virtualized-table-header-row",
			ShowHeader:      true,
			Headers: []views.WindowHeader{
				{Key: "id", Label: "ID", CSSClass: "header id", Style: style, Sortable: true},
			},
			TopSpacer:    style,
			BottomSpacer: style,
			Rows: []views.WindowRow{
				{Index: 7, CSSClass: "virtualized-table-row even", Style: style, Cells: []views.WindowCell{
					{Key: "id", Content: safehtml.HTMLEscaped("tx-7"), CSSClass: "cell id", Style: style},
				}},
			},
			RowCount:  100,
			RowHeight: 20,
			ScrollTop: 140,
		},
	})
	require.NoError(t, err)
	html := buf.String()

	assert.Contains(t, html, `<main class="grid-page" data-table="transactions" data-instance="0b9c1f3e-5d7a-4e0c-9a7b-2f1d8c6e4a10">`)
	assert.Contains(t, html, `class="virtualized-table"`)
	assert.Contains(t, html, `data-row-count="100"`)
	assert.Contains(t, html, `data-scroll-top="140"`)
	assert.Contains(t, html, `<div class="header id" style="height:20px;" data-sortable="true">ID</div>`)
	assert.Contains(t, html, `<div class="virtualized-table-row even" style="height:20px;" data-row="7">`)
	assert.Contains(t, html, `<div class="cell id" style="height:20px;">tx-7</div>`)
	assert.NotContains(t, html, "No data")
	assert.NotContains(t, html, "<table")
}

func TestRender_WindowEmpty(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, views.PageViewModel{
		Title: "Empty",
		Window: &views.WindowViewModel{
			ClassName: "virtualized-table",
			Empty:     true,
			NoRows:    safehtml.HTMLEscaped("No data"),
		},
	}))
	html := buf.String()
	assert.Contains(t, html, `<div class="virtualized-no-rows">No data</div>`)
	assert.NotContains(t, html, "virtualized-spacer")
}

func TestRenderLanding(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	err := r.RenderLanding(&buf, views.LandingViewModel{
		Title:    "Gridview",
		Subtitle: "Demo tables",
		Tables: []views.TableInfo{
			{Name: "people", Description: "Two people", URL: safehtml.URLSanitized("/table?table=people"),
				RecordCount: 2, ColumnCount: 2, Features: "selection"},
		},
	})
	require.NoError(t, err)
	html := buf.String()
	assert.Contains(t, html, `<a href="/table?table=people">people</a>`)
	assert.Contains(t, html, "2 rows, 2 columns. selection")
}

func TestRenderText(t *testing.T) {
	vm := *plainTable()
	vm.HasActions = true
	vm.Headers = append(vm.Headers, views.HeaderCell{Content: safehtml.HTMLEscaped("Actions"), CSSClass: "actions"})
	for i := range vm.Rows {
		vm.Rows[i].Cells = append(vm.Rows[i].Cells, views.DataCell{Content: safehtml.HTMLEscaped("x"), CSSClass: "actions"})
	}

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, vm))
	out := buf.String()

	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Age")
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "<Bo>")
	assert.NotContains(t, out, "Actions")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// border, header, separator, two rows, border
	assert.Len(t, lines, 6)
}

func TestRenderText_RaggedRow(t *testing.T) {
	vm := *plainTable()
	vm.Rows[0].Cells = vm.Rows[0].Cells[:1]
	err := RenderText(&bytes.Buffer{}, vm)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0 has 1 cells")
}
