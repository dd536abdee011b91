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

// ColumnSpec is one derived column: the field it displays and its header title.
type ColumnSpec struct {
	Key   string
	Title string
}

// ResolveColumns returns one ColumnSpec per key of titles, in insertion order.
// Keys with an empty title are kept.
func ResolveColumns(titles *Titles) []ColumnSpec {
	specs := make([]ColumnSpec, 0, titles.Len())
	for key, title := range titles.All() {
		specs = append(specs, ColumnSpec{Key: key, Title: title})
	}
	return specs
}

// ColumnResolver memoizes ResolveColumns for the last mapping it saw. The
// result is recomputed only when a different mapping is passed or the same
// mapping has been mutated since; row data never invalidates it.
//
// The returned slice is shared between callers and must not be modified.
type ColumnResolver struct {
	mu      sync.Mutex
	titles  *Titles
	version uint64
	specs   []ColumnSpec
}

// Resolve returns the column specs for titles.
func (r *ColumnResolver) Resolve(titles *Titles) []ColumnSpec {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.specs != nil && r.titles == titles && (titles == nil || r.version == titles.Version()) {
		return r.specs
	}

	r.specs = ResolveColumns(titles)
	r.titles = titles
	if titles != nil {
		r.version = titles.Version()
	}
	return r.specs
}
