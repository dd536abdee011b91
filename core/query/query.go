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

package query

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/google/safehtml"
)

// Query represents the parsed state of a grid page URL
type Query struct {
	// Base path (e.g., "/table")
	Path string

	// Core parameters
	Table        string         // The dataset being viewed
	Mode         string         // Rendering path: plain, virtual or text (empty = dataset default)
	Instance     string         // Mounted grid instance; selection state lives with it
	ColumnWidths map[string]int // Column widths in pixels (columnName -> width)

	// Selection. -1 means the parameter is absent.
	Select    int // Row clicked by the user, applied once
	Preselect int // Externally controlled selected index

	// Viewport reported by the page script
	Scroll         int // Body scroll offset in pixels
	DocumentHeight int // document.documentElement.clientHeight
	InnerHeight    int // window.innerHeight
	Overscan       int // Overscan row count override (0 = configured default)
}

// NewQuery creates a Query from a URL. Malformed viewport numbers are
// ignored, but a malformed select or preselect index is an error since it
// names a row.
func NewQuery(u *url.URL) (*Query, error) {
	state := &Query{
		Path:         u.Path,
		ColumnWidths: make(map[string]int),
		Select:       -1,
		Preselect:    -1,
	}

	q := u.Query()

	state.Table = q.Get("table")
	state.Mode = q.Get("mode")
	state.Instance = q.Get("instance")

	// Extract columns parameter (format: col1:width,col2:width)
	if columnsStr := q.Get("columns"); columnsStr != "" {
		for _, part := range strings.Split(columnsStr, ",") {
			colonIdx := strings.LastIndex(part, ":")
			if colonIdx == -1 {
				continue
			}
			if width, err := strconv.Atoi(part[colonIdx+1:]); err == nil && width > 0 {
				state.ColumnWidths[part[:colonIdx]] = width
			}
		}
	}

	var err error
	if state.Select, err = parseIndex(q, "select"); err != nil {
		return nil, err
	}
	if state.Preselect, err = parseIndex(q, "preselect"); err != nil {
		return nil, err
	}

	state.Scroll = parseNonNegative(q, "scroll")
	state.DocumentHeight = parseNonNegative(q, "dh")
	state.InnerHeight = parseNonNegative(q, "vh")
	state.Overscan = parseNonNegative(q, "overscan")

	return state, nil
}

// parseIndex returns -1 when the parameter is absent.
func parseIndex(q url.Values, key string) (int, error) {
	if !q.Has(key) {
		return -1, nil
	}
	v := q.Get(key)
	i, err := strconv.Atoi(v)
	if err != nil || i < 0 {
		return -1, fmt.Errorf("invalid %s index %q", key, v)
	}
	return i, nil
}

func parseNonNegative(q url.Values, key string) int {
	v := q.Get(key)
	if v == "" {
		return 0
	}
	// Scroll offsets come from the browser and may be fractional
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0
	}
	return int(f)
}

// Clone creates a deep copy of the Query
func (s *Query) Clone() *Query {
	clone := *s
	clone.ColumnWidths = maps.Clone(s.ColumnWidths)
	if clone.ColumnWidths == nil {
		clone.ColumnWidths = make(map[string]int)
	}
	return &clone
}

// WithMode returns a URL showing the same dataset through another rendering
// path. The one-shot click and the scroll offset are dropped.
func (s *Query) WithMode(mode string) safehtml.URL {
	newState := s.Clone()
	newState.Mode = mode
	newState.Select = -1
	newState.Scroll = 0
	return newState.ToSafeURL()
}

// WithSelect returns a URL that clicks row i of the current instance
func (s *Query) WithSelect(i int) safehtml.URL {
	newState := s.Clone()
	newState.Select = i
	return newState.ToSafeURL()
}

// WithPreselect returns a URL that preselects row i of the current instance
// in the same mode and scroll position
func (s *Query) WithPreselect(i int) safehtml.URL {
	newState := s.Clone()
	newState.Select = -1
	newState.Preselect = i
	return newState.ToSafeURL()
}

// WithInstance returns a copy bound to a mounted instance
func (s *Query) WithInstance(id string) *Query {
	newState := s.Clone()
	newState.Instance = id
	return newState
}

// ToURL converts the Query back to a URL string
func (s *Query) ToURL() string {
	u := &url.URL{
		Path: s.Path,
	}

	q := u.Query()

	if s.Table != "" {
		q.Set("table", s.Table)
	}
	if s.Mode != "" {
		q.Set("mode", s.Mode)
	}
	if s.Instance != "" {
		q.Set("instance", s.Instance)
	}

	// Add columns parameter, sorted for stable URLs
	if len(s.ColumnWidths) > 0 {
		columnStrs := make([]string, 0, len(s.ColumnWidths))
		for _, col := range slices.Sorted(maps.Keys(s.ColumnWidths)) {
			columnStrs = append(columnStrs, col+":"+strconv.Itoa(s.ColumnWidths[col]))
		}
		q.Set("columns", strings.Join(columnStrs, ","))
	}

	if s.Select >= 0 {
		q.Set("select", strconv.Itoa(s.Select))
	}
	if s.Preselect >= 0 {
		q.Set("preselect", strconv.Itoa(s.Preselect))
	}

	for key, v := range map[string]int{
		"scroll":   s.Scroll,
		"dh":       s.DocumentHeight,
		"vh":       s.InnerHeight,
		"overscan": s.Overscan,
	} {
		if v > 0 {
			q.Set(key, strconv.Itoa(v))
		}
	}

	u.RawQuery = q.Encode()
	return u.String()
}

// ToSafeURL converts the Query to a safehtml.URL
func (s *Query) ToSafeURL() safehtml.URL {
	return safehtml.URLSanitized(s.ToURL())
}
