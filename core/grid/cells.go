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

// ResolveCell returns the content of the cell for field key of row. A
// configured renderer is invoked with (value, row, key); otherwise the raw
// value is displayed. Renderer panics are not recovered.
func ResolveCell[T any](key string, row T, field FieldFunc[T], renderers Renderers[T]) safehtml.HTML {
	if field == nil {
		field = Reflect[T]
	}
	value := field(row, key)
	if render, ok := renderers[key]; ok && render != nil {
		return render(value, row, key)
	}
	return views.Display(value)
}
