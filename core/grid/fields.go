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
	"reflect"
	"strings"
	"sync"
)

// fieldIndexCache maps a struct type to its field lookup table
var fieldIndexCache sync.Map // reflect.Type -> map[string][]int

// Reflect is the default FieldFunc. It reads exported struct fields and
// string-keyed map entries. Struct fields are matched, case-insensitively,
// against the `grid` tag, then the `json` tag name, then the field name.
// Pointers are followed; a nil pointer or an unknown key yields nil.
func Reflect[T any](row T, key string) any {
	v := reflect.ValueOf(row)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		item := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
		if !item.IsValid() {
			return nil
		}
		return item.Interface()
	case reflect.Struct:
		index, ok := structFields(v.Type())[strings.ToLower(key)]
		if !ok {
			return nil
		}
		f, err := v.FieldByIndexErr(index)
		if err != nil {
			// nil embedded pointer on the path
			return nil
		}
		return f.Interface()
	default:
		return nil
	}
}

// structFields builds (once per type) the lookup table used by Reflect.
func structFields(t reflect.Type) map[string][]int {
	if cached, ok := fieldIndexCache.Load(t); ok {
		return cached.(map[string][]int)
	}

	fields := make(map[string][]int)
	// Names are registered from the weakest to the strongest match so that a
	// tag wins over a field name that happens to collide with it.
	visible := reflect.VisibleFields(t)
	for _, f := range visible {
		if f.IsExported() && !f.Anonymous {
			fields[strings.ToLower(f.Name)] = f.Index
		}
	}
	for _, f := range visible {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" && name != "-" {
			fields[strings.ToLower(name)] = f.Index
		}
	}
	for _, f := range visible {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		if name := f.Tag.Get("grid"); name != "" {
			fields[strings.ToLower(name)] = f.Index
		}
	}

	actual, _ := fieldIndexCache.LoadOrStore(t, fields)
	return actual.(map[string][]int)
}
