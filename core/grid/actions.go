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
	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
)

// nbsp trails the actions of a row and fills the icon column of body rows.
var nbsp = template.MustParseAndExecuteToHTML("&nbsp;")

// Action is a per-row action declaration. It is either a direct renderer
// (see Direct) or a factory that inspects the row to pick the renderer to
// apply to that same row (see Factory).
type Action[T any] interface {
	render(row T) safehtml.HTML
}

type directAction[T any] struct {
	fn func(T) safehtml.HTML
}

func (a directAction[T]) render(row T) safehtml.HTML {
	return a.fn(row)
}

type factoryAction[T any] struct {
	fn func(T) func(T) safehtml.HTML
}

func (a factoryAction[T]) render(row T) safehtml.HTML {
	return a.fn(row)(row)
}

// Direct declares an action rendered as fn(row).
func Direct[T any](fn func(row T) safehtml.HTML) Action[T] {
	return directAction[T]{fn: fn}
}

// Factory declares an action rendered as fn(row)(row).
func Factory[T any](fn func(row T) func(row T) safehtml.HTML) Action[T] {
	return factoryAction[T]{fn: fn}
}

// ResolveActions evaluates every action against row, in declared order.
func ResolveActions[T any](row T, actions []Action[T]) []safehtml.HTML {
	out := make([]safehtml.HTML, len(actions))
	for i, action := range actions {
		out[i] = action.render(row)
	}
	return out
}

// ActionsCell is the content of the actions cell of row: every action
// rendered adjacently, followed by a non-breaking space.
func ActionsCell[T any](row T, actions []Action[T]) safehtml.HTML {
	return safehtml.HTMLConcat(append(ResolveActions(row, actions), nbsp)...)
}
