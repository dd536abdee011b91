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

package server

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/google/gridview/core/grid"
	"github.com/google/gridview/core/views"
	"github.com/google/gridview/core/window"
	"github.com/google/safehtml"
)

// Source is a dataset the server can mount. It is implemented by Dataset.
type Source interface {
	Info() SourceInfo
	mount(id string, o mountOptions) Instance
}

// SourceInfo describes a dataset on the landing page
type SourceInfo struct {
	Name        string
	Description string
	Features    string
	DefaultMode string
	Rows        int
	Columns     int
}

// Instance is one mounted grid. It owns the selection state and the viewport
// sizer, which live as long as the instance stays in the server cache.
type Instance interface {
	ID() string
	Source() string
	Len() int
	Click(i int)
	Preselect(j int) bool
	ClearPreselect()
	// Selection returns the selected index and its label.
	Selection() (int, string, bool)
	Plain(links Links) views.TableViewModel
	Window(links Links, widths map[string]int, overscan, height, scrollTop int) views.WindowViewModel
	Sizer() *window.Sizer
	Unmount()
}

// Links build the URLs of the page being rendered. They stay in the mounted
// instance; a nil builder yields an empty URL.
type Links struct {
	// Select clicks row index.
	Select func(index int) safehtml.URL
	// Open preselects row index, keeping the rendering mode.
	Open func(index int) safehtml.URL
}

func (l Links) url(build func(int) safehtml.URL, index int) safehtml.URL {
	if build == nil {
		return safehtml.URL{}
	}
	return build(index)
}

type mountOptions struct {
	window      window.Config
	fixedChrome int
	onSelect    func(index int, label string)
}

// Dataset binds rows of type T to the two rendering paths.
type Dataset[T any] struct {
	Name        string
	Description string
	Features    string
	DefaultMode string // views.ModePlain when empty

	Rows    []T
	Table   grid.Options[T]
	Virtual grid.VirtualOptions[T]

	// RowActions builds actions that link back into the mounted instance.
	// They follow the static actions of Table and Virtual.
	RowActions func(open func(index int) safehtml.URL) []grid.Action[T]

	// Label names a selected row in the page banner; defaults to "row <i>".
	Label func(row T, index int) string
}

// Info implements Source.
func (d *Dataset[T]) Info() SourceInfo {
	mode := d.DefaultMode
	if mode == "" {
		mode = views.ModePlain
	}
	return SourceInfo{
		Name:        d.Name,
		Description: d.Description,
		Features:    d.Features,
		DefaultMode: mode,
		Rows:        len(d.Rows),
		Columns:     d.Table.Columns.Len(),
	}
}

func (d *Dataset[T]) label(row T, i int) string {
	if d.Label != nil {
		return d.Label(row, i)
	}
	return "row " + strconv.Itoa(i)
}

func (d *Dataset[T]) mount(id string, o mountOptions) Instance {
	inst := &instance[T]{
		id:    id,
		ds:    d,
		sizer: window.NewSizer(o.fixedChrome),
		win:   o.window,
	}

	opts := d.Table
	onRowClick := opts.OnRowClick
	opts.OnRowClick = func(row T, i int) {
		if onRowClick != nil {
			onRowClick(row, i)
		}
		label := d.label(row, i)
		inst.mu.Lock()
		inst.label = label
		inst.mu.Unlock()
		if o.onSelect != nil {
			o.onSelect(i, label)
		}
	}
	// Links depend on the request being rendered; see Plain and Window.
	opts.RowURL = func(i int) safehtml.URL {
		return inst.links.url(inst.links.Select, i)
	}
	if d.RowActions != nil {
		inst.actions = d.RowActions(func(i int) safehtml.URL {
			return inst.links.url(inst.links.Open, i)
		})
		opts.Actions = append(slices.Clip(opts.Actions), inst.actions...)
	}

	inst.table = grid.NewTable(opts)
	inst.sel = inst.table.NewSelection()
	return inst
}

type instance[T any] struct {
	id    string
	ds    *Dataset[T]
	table *grid.Table[T]
	sel   *grid.Selection[T]
	sizer *window.Sizer
	win   window.Config

	mu    sync.Mutex
	label string

	// build serializes view model construction, which reads links and
	// replaces virtual.
	build      sync.Mutex
	links      Links
	actions    []grid.Action[T]
	virtual    *grid.Virtual[T]
	virtualKey string
}

func (in *instance[T]) ID() string { return in.id }
func (in *instance[T]) Source() string { return in.ds.Name }
func (in *instance[T]) Len() int { return len(in.ds.Rows) }
func (in *instance[T]) Sizer() *window.Sizer { return in.sizer }
func (in *instance[T]) Click(i int) { in.sel.Click(in.ds.Rows, i) }
func (in *instance[T]) Preselect(j int) bool { return in.sel.Preselect(in.ds.Rows, j) }
func (in *instance[T]) ClearPreselect() { in.sel.ClearPreselect() }
func (in *instance[T]) Unmount() { in.sizer.Detach() }

func (in *instance[T]) Selection() (int, string, bool) {
	i, ok := in.sel.Selected()
	if !ok {
		return 0, "", false
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	return i, in.label, true
}

func (in *instance[T]) Plain(links Links) views.TableViewModel {
	in.build.Lock()
	defer in.build.Unlock()
	in.links = links
	defer func() { in.links = Links{} }()
	return in.table.Build(in.ds.Rows, in.sel)
}

func (in *instance[T]) Window(links Links, widths map[string]int, overscan, height, scrollTop int) views.WindowViewModel {
	in.build.Lock()
	defer in.build.Unlock()
	in.links = links
	defer func() { in.links = Links{} }()

	key := windowKey(widths, overscan)
	if in.virtual == nil || key != in.virtualKey {
		in.virtual = grid.NewVirtual(in.virtualOptions(widths, overscan))
		in.virtualKey = key
	}
	return in.virtual.Build(in.ds.Rows, height, scrollTop)
}

// virtualOptions layers the request overrides over the dataset options and
// the server defaults.
func (in *instance[T]) virtualOptions(widths map[string]int, overscan int) grid.VirtualOptions[T] {
	opts := in.ds.Virtual

	merged := maps.Clone(opts.ColumnWidths)
	if merged == nil {
		merged = make(map[string]int, len(widths))
	}
	maps.Copy(merged, widths)
	opts.ColumnWidths = merged
	opts.Actions = append(slices.Clip(opts.Actions), in.actions...)

	cfg := in.win
	if w := opts.Window; w.RowHeight > 0 {
		cfg.RowHeight = w.RowHeight
	}
	if w := opts.Window; w.HeaderHeight > 0 {
		cfg.HeaderHeight = w.HeaderHeight
	}
	if w := opts.Window; w.DefaultColumnWidth > 0 {
		cfg.DefaultColumnWidth = w.DefaultColumnWidth
	}
	if w := opts.Window; w.OverscanRowCount != 0 {
		cfg.OverscanRowCount = w.OverscanRowCount
	}
	if overscan > 0 {
		cfg.OverscanRowCount = overscan
	}
	opts.Window = cfg
	return opts
}

func windowKey(widths map[string]int, overscan int) string {
	var b strings.Builder
	for _, k := range slices.Sorted(maps.Keys(widths)) {
		fmt.Fprintf(&b, "%s:%d,", k, widths[k])
	}
	fmt.Fprintf(&b, "overscan:%d", overscan)
	return b.String()
}
