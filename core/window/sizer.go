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

import "sync"

const (
	// DefaultFixedChrome is the height reserved for the page around the table.
	DefaultFixedChrome = 200
	// InitialHeight is used until the viewport has been measured.
	InitialHeight = 500
)

// Viewport is the size information reported by the browser.
type Viewport struct {
	DocumentHeight int // document.documentElement.clientHeight
	InnerHeight    int // window.innerHeight
}

// Measure returns the height available to a windowed table in viewport v.
func Measure(v Viewport, fixedChrome int) int {
	return max(max(v.DocumentHeight, v.InnerHeight)-fixedChrome, 0)
}

// Sizer owns the rendering height of one windowed table. The height is
// measured when the table is attached and re-measured on every resize while
// it stays attached.
type Sizer struct {
	FixedChrome int

	mu       sync.Mutex
	height   int
	attached bool
}

// NewSizer creates a detached sizer at InitialHeight.
func NewSizer(fixedChrome int) *Sizer {
	return &Sizer{FixedChrome: fixedChrome, height: InitialHeight}
}

// Attach measures v and starts tracking resizes.
func (s *Sizer) Attach(v Viewport) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached = true
	s.height = Measure(v, s.FixedChrome)
	return s.height
}

// Resize re-measures v. It is ignored while detached.
func (s *Sizer) Resize(v Viewport) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attached {
		s.height = Measure(v, s.FixedChrome)
	}
	return s.height
}

// Detach stops tracking resizes; the last height is kept.
func (s *Sizer) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached = false
}

// Attached reports whether the sizer tracks resizes.
func (s *Sizer) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attached
}

// Height returns the current rendering height.
func (s *Sizer) Height() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.height
}
