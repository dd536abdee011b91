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

// Package grid maps a slice of domain records onto HTML tables.
//
// A grid is described by an ordered mapping of field keys to column titles,
// an optional map of per-field cell renderers and an optional list of
// per-row actions. The same description feeds two rendering paths:
//
//   - Table builds a fully materialized table view model, optionally with
//     row selection and row click links.
//   - Virtual adapts the description into column descriptors for the
//     windowing primitive in package window, which materializes only the
//     rows inside the visible scroll window.
//
// Rows are identified by their index in the slice passed to each render
// pass. Reordering or filtering the slice between passes re-attaches the
// selection to whichever row now sits at the selected index.
package grid

import (
	"github.com/google/gridview/core/ordered"
	"github.com/google/safehtml"
)

// Titles maps field keys to column titles in declaration order. An empty
// title is allowed and renders as an empty header cell.
type Titles = ordered.Map[string, string]

// CellRenderer renders the value of field key for row.
type CellRenderer[T any] func(value any, row T, key string) safehtml.HTML

// Renderers holds the custom cell renderers by field key. Fields without an
// entry display their raw value.
type Renderers[T any] map[string]CellRenderer[T]

// FieldFunc reads field key from row. It returns nil for unknown keys.
type FieldFunc[T any] func(row T, key string) any

// Columns builds a Titles mapping from (key, title) pairs, in argument order.
func Columns(cols ...ordered.Pair[string, string]) *Titles {
	return ordered.Of(cols...)
}

// Col is a (key, title) pair for Columns.
func Col(key, title string) ordered.Pair[string, string] {
	return ordered.P(key, title)
}
