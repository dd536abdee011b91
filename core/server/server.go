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

// Package server mounts datasets as grid instances and serves them over HTTP.
package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/gridview/core/config"
	"github.com/google/gridview/core/query"
	"github.com/google/gridview/core/rendering"
	"github.com/google/gridview/core/views"
	"github.com/google/gridview/core/window"
	"github.com/google/safehtml"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrUnknownTable is returned for a table parameter naming no dataset.
	ErrUnknownTable = errors.New("unknown table")
	// ErrBadIndex is returned for a select or preselect index that is
	// malformed or beyond the last row.
	ErrBadIndex = errors.New("bad row index")
	// ErrBadMode is returned for an unsupported mode parameter.
	ErrBadMode = errors.New("unknown mode")
	// ErrRender wraps a panic raised while building a grid, typically by a
	// cell renderer or an action.
	ErrRender = errors.New("grid render failed")
)

var modes = []string{views.ModePlain, views.ModeVirtual, views.ModeText}

// Server represents the application server with all its dependencies
type Server struct {
	cfg      config.Grid
	log      zerolog.Logger
	renderer *rendering.TableRenderer
	registry *prometheus.Registry
	metrics  *Metrics

	mu      sync.RWMutex
	sources map[string]Source
	order   []string

	instances *lru.Cache[string, Instance]
}

// NewServer creates a server. reg receives the server metrics and is served
// on /metrics.
func NewServer(cfg config.Grid, log zerolog.Logger, reg *prometheus.Registry) (*Server, error) {
	renderer, err := rendering.NewTableRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		log:      log,
		renderer: renderer,
		registry: reg,
		sources:  make(map[string]Source),
	}

	s.instances, err = lru.NewWithEvict(cfg.InstanceCacheSize, func(id string, inst Instance) {
		inst.Unmount()
		s.log.Debug().Str("instance", id).Str("table", inst.Source()).Msg("grid instance unmounted")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create instance cache: %w", err)
	}

	s.metrics, err = NewMetrics(reg, func() float64 { return float64(s.instances.Len()) })
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	return s, nil
}

// Register adds a dataset. Registering a name twice replaces the dataset but
// keeps its landing page position.
func (s *Server) Register(src Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := src.Info().Name
	if _, exists := s.sources[name]; !exists {
		s.order = append(s.order, name)
	}
	s.sources[name] = src
}

func (s *Server) source(name string) (Source, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src, ok := s.sources[name]
	return src, ok
}

// instanceFor returns the mounted instance id of table name, mounting a
// fresh one when id is unknown, evicted or belongs to another table.
func (s *Server) instanceFor(src Source, name, id string) Instance {
	if id != "" {
		if inst, ok := s.instances.Get(id); ok && inst.Source() == name {
			return inst
		}
	}

	id = uuid.NewString()
	log := s.log.With().Str("table", name).Str("instance", id).Logger()
	inst := src.mount(id, mountOptions{
		window:      s.cfg.Window(),
		fixedChrome: s.cfg.FixedChrome,
		onSelect: func(index int, label string) {
			log.Info().Int("row", index).Str("label", label).Msg("row selected")
		},
	})
	s.instances.Add(id, inst)
	s.metrics.mounts.Inc()
	log.Debug().Msg("grid instance mounted")
	return inst
}

// TableHandlerResult represents the result of handling a table request
type TableHandlerResult struct {
	Error      error
	StatusCode int
	Message    string
}

// TimingCollector collects timing measurements for various operations
type TimingCollector struct {
	entries []views.TimingEntry
	start   time.Time
}

// NewTimingCollector creates a new timing collector
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{start: time.Now()}
}

// Record records a timing entry
func (tc *TimingCollector) Record(operation string, duration time.Duration) {
	tc.entries = append(tc.entries, views.TimingEntry{
		Operation:  operation,
		DurationMs: formatMs(duration),
	})
}

// GetEntries returns all timing entries
func (tc *TimingCollector) GetEntries() []views.TimingEntry {
	return tc.entries
}

// TotalMs returns total elapsed time in milliseconds as formatted string
func (tc *TimingCollector) TotalMs() string {
	return formatMs(time.Since(tc.start))
}

func formatMs(d time.Duration) string {
	return fmt.Sprintf("%.2f", float64(d.Microseconds())/1000.0)
}

func title(name string) string {
	return cases.Title(language.English).String(name)
}

// HandleTableRequest processes a table request and writes the response.
// Returns an error result if the request is invalid or the grid could not be
// built, nil on success.
func (s *Server) HandleTableRequest(w io.Writer, requestURL *url.URL, setHeader func(key, value string)) (result *TableHandlerResult) {
	timing := NewTimingCollector()

	parseStart := time.Now()
	q, err := query.NewQuery(requestURL)
	timing.Record("Parse Query", time.Since(parseStart))
	if err != nil {
		return &TableHandlerResult{Error: fmt.Errorf("%w: %w", ErrBadIndex, err), StatusCode: http.StatusBadRequest, Message: err.Error()}
	}

	if q.Table == "" {
		return &TableHandlerResult{StatusCode: http.StatusBadRequest, Message: "Table parameter is required"}
	}
	src, ok := s.source(q.Table)
	if !ok {
		return &TableHandlerResult{
			Error:      fmt.Errorf("%w: %q", ErrUnknownTable, q.Table),
			StatusCode: http.StatusNotFound,
			Message:    fmt.Sprintf("Table '%s' not found", q.Table),
		}
	}

	mode := q.Mode
	if mode == "" {
		mode = src.Info().DefaultMode
	}
	if !validMode(mode) {
		return &TableHandlerResult{
			Error:      fmt.Errorf("%w: %q", ErrBadMode, mode),
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("Mode '%s' is not one of plain, virtual, text", mode),
		}
	}

	// Cell renderers and actions are caller code; a panic in one of them
	// fails this request only.
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Str("table", q.Table).Str("mode", mode).Interface("panic", r).Msg("grid render failed")
			result = &TableHandlerResult{
				Error:      fmt.Errorf("%w: %v", ErrRender, r),
				StatusCode: http.StatusInternalServerError,
				Message:    "Failed to render table",
			}
		}
	}()

	mountStart := time.Now()
	inst := s.instanceFor(src, q.Table, q.Instance)
	q = q.WithInstance(inst.ID())
	timing.Record("Mount", time.Since(mountStart))

	for _, index := range []int{q.Select, q.Preselect} {
		if index >= inst.Len() {
			return &TableHandlerResult{
				Error:      fmt.Errorf("%w: %d", ErrBadIndex, index),
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("Row %d out of range, table '%s' has %d rows", index, q.Table, inst.Len()),
			}
		}
	}

	selectStart := time.Now()
	if q.Preselect >= 0 {
		if inst.Preselect(q.Preselect) {
			s.metrics.selections.WithLabelValues(q.Table, "preselect").Inc()
		}
	} else {
		inst.ClearPreselect()
	}
	if q.Select >= 0 {
		inst.Click(q.Select)
		s.metrics.selections.WithLabelValues(q.Table, "click").Inc()
	}
	timing.Record("Selection", time.Since(selectStart))

	page := views.PageViewModel{
		Title:     title(q.Table) + " - Gridview",
		TableName: q.Table,
		Mode:      mode,
		Instance:  inst.ID(),
	}
	for _, m := range modes {
		page.Modes = append(page.Modes, views.ModeLink{Label: m, URL: q.WithMode(m), Active: m == mode})
	}
	if index, label, ok := inst.Selection(); ok {
		page.Selected = fmt.Sprintf("%s (row %d)", label, index)
	}

	base := q.Clone()
	base.Select = -1
	links := Links{Select: base.WithSelect, Open: base.WithPreselect}

	buildStart := time.Now()
	var rows int
	switch mode {
	case views.ModeText:
		vm := inst.Plain(Links{})
		s.metrics.observeBuild(mode, time.Since(buildStart), len(vm.Rows))
		setHeader("Content-Type", "text/plain; charset=utf-8")
		if err := rendering.RenderText(w, vm); err != nil {
			s.log.Error().Err(err).Str("table", q.Table).Msg("text rendering error")
		}
		return nil
	case views.ModePlain:
		vm := inst.Plain(links)
		page.Table = &vm
		rows = len(vm.Rows)
	case views.ModeVirtual:
		height := measure(inst.Sizer(), q)
		vm := inst.Window(links, q.ColumnWidths, q.Overscan, height, q.Scroll)
		page.Window = &vm
		rows = len(vm.Rows)
	}
	buildTime := time.Since(buildStart)
	timing.Record("Build View Model", buildTime)
	s.metrics.observeBuild(mode, buildTime, rows)

	page.TimingBreakdown = timing.GetEntries()
	page.RenderTimeMs = timing.TotalMs()

	setHeader("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Render(w, page); err != nil {
		// Log the error instead of trying to write an error response
		// since the renderer may have already written to the response
		s.log.Error().Err(err).Str("table", q.Table).Msg("template rendering error")
	}
	return nil
}

func validMode(mode string) bool {
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// measure feeds the viewport reported by the page to the sizer. The first
// report attaches it, later ones are resizes. Without a report the sizer
// keeps its current height.
func measure(sz *window.Sizer, q *query.Query) int {
	if q.DocumentHeight == 0 && q.InnerHeight == 0 {
		return sz.Height()
	}
	v := window.Viewport{DocumentHeight: q.DocumentHeight, InnerHeight: q.InnerHeight}
	if !sz.Attached() {
		return sz.Attach(v)
	}
	return sz.Resize(v)
}

// HandleLandingRequest renders the list of registered datasets
func (s *Server) HandleLandingRequest(w io.Writer, setHeader func(key, value string)) error {
	setHeader("Content-Type", "text/html; charset=utf-8")

	s.mu.RLock()
	vm := views.LandingViewModel{
		Title:    "Gridview Demo Tables",
		Subtitle: "Plain, virtualized and text renderings of typed row slices",
	}
	for _, name := range s.order {
		info := s.sources[name].Info()
		features := "Default view: " + info.DefaultMode + "."
		if info.Features != "" {
			features = info.Features + ". " + features
		}
		vm.Tables = append(vm.Tables, views.TableInfo{
			Name:        title(info.Name),
			Description: info.Description,
			URL:         safehtml.URLSanitized("/table?table=" + url.QueryEscape(info.Name)),
			RecordCount: info.Rows,
			ColumnCount: info.Columns,
			Features:    features,
		})
	}
	s.mu.RUnlock()

	if err := s.renderer.RenderLanding(w, vm); err != nil {
		s.log.Error().Err(err).Msg("landing page rendering error")
		return err
	}
	return nil
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/table", s.handleTable)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/", s.handleLanding)
	return mux
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	code := http.StatusOK
	if result := s.HandleTableRequest(w, r.URL, w.Header().Set); result != nil {
		code = result.StatusCode
		event := s.log.Warn()
		if code >= http.StatusInternalServerError {
			event = s.log.Error()
		}
		event.Err(result.Error).Int("status", code).Str("url", r.URL.String()).Msg(result.Message)
		http.Error(w, result.Message, code)
	}
	s.metrics.requests.WithLabelValues("table", strconv.Itoa(code)).Inc()
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		s.metrics.requests.WithLabelValues("landing", strconv.Itoa(http.StatusNotFound)).Inc()
		return
	}
	code := http.StatusOK
	if err := s.HandleLandingRequest(w, w.Header().Set); err != nil {
		code = http.StatusInternalServerError
	}
	s.metrics.requests.WithLabelValues("landing", strconv.Itoa(code)).Inc()
}
