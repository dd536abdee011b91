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

package demo

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/gridview/core/grid"
	"github.com/google/gridview/core/server"
	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
)

//go:embed data/orders.csv
var ordersCSV string

// Person is a row of the people table
type Person struct {
	Name  string
	Age   int
	Email string `json:"email"`
}

// Order is a row of the orders table
type Order struct {
	ID       int `grid:"id"`
	Customer string
	Status   string
	Region   string
	Category string
	Amount   float64
	Placed   time.Time

	pos int // Position in the table, used by the details action
}

var (
	icon = template.MustParseAndExecuteToHTML("&#9776;")

	statusBadge = template.Must(template.New("status").Parse(`<span class="status status-{{.}}">{{.}}</span>`))
	actionLink  = template.Must(template.New("action").Parse(`<a class="action" href="{{.URL}}">{{.Label}}</a>`))
	actionNote  = template.Must(template.New("note").Parse(`<span class="action {{.}}">{{.}}</span>`))
)

type link struct {
	URL   safehtml.URL
	Label string
}

// execute runs a demo template, which only fails on programming errors.
func execute(t *template.Template, data any) safehtml.HTML {
	h, err := t.ExecuteToHTML(data)
	if err != nil {
		panic(fmt.Sprintf("demo template %s: %v", t.Name(), err))
	}
	return h
}

// CreatePeople creates the people table
func CreatePeople() *server.Dataset[Person] {
	cols := grid.Columns(
		grid.Col("name", "Name"),
		grid.Col("age", "Age"),
		grid.Col("email", "Email"),
	)
	return &server.Dataset[Person]{
		Name:        "people",
		Description: "A handful of people. Click a row to select it.",
		Features:    "Selection, styling hooks",
		Rows: []Person{
			{"Ann", 30, "ann@example.com"},
			{"Bo", 25, "bo@example.com"},
			{"Cyd", 41, "cyd@example.com"},
			{"Dee", 35, "dee@example.com"},
		},
		Table: grid.Options[Person]{
			Columns:         cols,
			ClassName:       "people",
			HeaderClassName: "people-header",
		},
		Virtual: grid.VirtualOptions[Person]{Columns: cols},
		Label: func(p Person, _ int) string {
			return p.Name
		},
	}
}

// CreateOrders creates the orders table from the embedded CSV
func CreateOrders() (*server.Dataset[Order], error) {
	rows, err := parseOrders(strings.NewReader(ordersCSV))
	if err != nil {
		return nil, fmt.Errorf("failed to import orders CSV: %w", err)
	}

	cols := grid.Columns(
		grid.Col("id", "Order"),
		grid.Col("customer", "Customer"),
		grid.Col("status", "Status"),
		grid.Col("region", "Region"),
		grid.Col("category", "Category"),
		grid.Col("amount", "Amount"),
		grid.Col("placed", "Placed"),
	)
	renderers := grid.Renderers[Order]{
		"status": func(v any, _ Order, _ string) safehtml.HTML {
			return execute(statusBadge, v)
		},
		"amount": func(v any, _ Order, _ string) safehtml.HTML {
			return safehtml.HTMLEscaped(fmt.Sprintf("$%.2f", v))
		},
		"placed": func(v any, _ Order, _ string) safehtml.HTML {
			return safehtml.HTMLEscaped(v.(time.Time).Format(time.DateOnly))
		},
	}
	actions := func(open func(int) safehtml.URL) []grid.Action[Order] {
		return []grid.Action[Order]{
			grid.Direct(func(o Order) safehtml.HTML {
				return execute(actionLink, link{URL: open(o.pos), Label: "Details"})
			}),
			// The follow-up action depends on where the order is in its lifecycle
			grid.Factory(func(o Order) func(Order) safehtml.HTML {
				switch o.Status {
				case "pending":
					return func(Order) safehtml.HTML { return execute(actionNote, "cancel") }
				case "delivered":
					return func(Order) safehtml.HTML { return execute(actionNote, "return") }
				default:
					return func(Order) safehtml.HTML { return safehtml.HTML{} }
				}
			}),
		}
	}

	return &server.Dataset[Order]{
		Name:        "orders",
		Description: "Orders with status, region, category and amount, imported from CSV.",
		Features:    "Custom cells, row actions, icon column, selection",
		Rows:        rows,
		Table: grid.Options[Order]{
			Columns:         cols,
			Renderers:       renderers,
			Icon:            icon,
			ClassName:       "orders",
			HeaderClassName: "orders-header",
		},
		Virtual: grid.VirtualOptions[Order]{
			Columns:      cols,
			Renderers:    renderers,
			ColumnWidths: map[string]int{"id": 80, "region": 100, "placed": 110},
		},
		RowActions: actions,
		Label: func(o Order, _ int) string {
			return fmt.Sprintf("order %d for %s", o.ID, o.Customer)
		},
	}, nil
}

// parseOrders reads orders in the column order of data/orders.csv
func parseOrders(r io.Reader) ([]Order, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header")
	}

	orders := make([]Order, 0, len(records)-1)
	for line, rec := range records[1:] {
		if len(rec) != 7 {
			return nil, fmt.Errorf("line %d: got %d fields, want 7", line+2, len(rec))
		}
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: id: %w", line+2, err)
		}
		amount, err := strconv.ParseFloat(rec[5], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: amount: %w", line+2, err)
		}
		placed, err := time.Parse(time.DateOnly, rec[6])
		if err != nil {
			return nil, fmt.Errorf("line %d: placed: %w", line+2, err)
		}
		orders = append(orders, Order{
			ID:       id,
			Customer: rec[1],
			Status:   rec[2],
			Region:   rec[3],
			Category: rec[4],
			Amount:   amount,
			Placed:   placed,
			pos:      len(orders),
		})
	}
	return orders, nil
}

// Sources returns every demo table in landing page order
func Sources() ([]server.Source, error) {
	orders, err := CreateOrders()
	if err != nil {
		return nil, err
	}
	return []server.Source{
		CreatePeople(),
		orders,
		CreateTransactions(PerfNumTransactions),
	}, nil
}
