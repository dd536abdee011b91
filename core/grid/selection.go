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

import "sync"

// Selection tracks the selected row of one mounted table.
//
// It starts unselected. Click selects a row on user request and Preselect
// mirrors an externally controlled index: every change of that index selects
// the row exactly as a click would, including the callback. There is no
// deselect transition.
//
// Indexes must be valid for the rows passed alongside them; an out-of-range
// index panics.
type Selection[T any] struct {
	// order serializes transitions together with their callbacks so that
	// callbacks observe selections in the order they were requested.
	order sync.Mutex

	mu             sync.Mutex
	selected       int
	hasSelected    bool
	preselected    int
	hasPreselected bool

	onRowClick func(row T, index int)
}

// NewSelection creates an unselected controller. onRowClick may be nil.
func NewSelection[T any](onRowClick func(row T, index int)) *Selection[T] {
	return &Selection[T]{onRowClick: onRowClick}
}

// Click selects rows[i] and invokes the row click callback. Clicking the
// selected row again invokes the callback again.
func (s *Selection[T]) Click(rows []T, i int) {
	s.order.Lock()
	defer s.order.Unlock()

	row := rows[i]
	s.mu.Lock()
	s.selected, s.hasSelected = i, true
	s.mu.Unlock()

	s.notify(row, i)
}

// Preselect sets the externally controlled index. If it differs from the
// previous preselected index (or none was set) rows[j] is selected and the
// row click callback fires; otherwise nothing happens. It reports whether a
// transition took place.
func (s *Selection[T]) Preselect(rows []T, j int) bool {
	s.order.Lock()
	defer s.order.Unlock()

	s.mu.Lock()
	unchanged := s.hasPreselected && s.preselected == j
	s.mu.Unlock()
	if unchanged {
		return false
	}

	row := rows[j]
	s.mu.Lock()
	s.preselected, s.hasPreselected = j, true
	s.selected, s.hasSelected = j, true
	s.mu.Unlock()

	s.notify(row, j)
	return true
}

// ClearPreselect forgets the externally controlled index without changing
// the selection, so that setting the same index again fires again.
func (s *Selection[T]) ClearPreselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasPreselected = false
}

// Selected returns the selected index and whether a row is selected.
func (s *Selection[T]) Selected() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, s.hasSelected
}

// IsSelected reports whether row index i is the selected row.
func (s *Selection[T]) IsSelected(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasSelected && s.selected == i
}

func (s *Selection[T]) notify(row T, i int) {
	if s.onRowClick != nil {
		s.onRowClick(row, i)
	}
}
