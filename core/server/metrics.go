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

package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the Prometheus collectors exported on /metrics.
type Metrics struct {
	requests         *prometheus.CounterVec
	buildDuration    *prometheus.HistogramVec
	rowsMaterialized *prometheus.CounterVec
	selections       *prometheus.CounterVec
	mounts           prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg. instances
// reports the number of mounted grid instances.
func NewMetrics(reg prometheus.Registerer, instances func() float64) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridview_requests_total",
			Help: "Grid page requests by handler and status code.",
		}, []string{"handler", "code"}),
		buildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridview_build_duration_seconds",
			Help:    "Time spent building grid view models.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"mode"}),
		rowsMaterialized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridview_rows_materialized_total",
			Help: "Rows turned into markup, by rendering mode.",
		}, []string{"mode"}),
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridview_selections_total",
			Help: "Row selections by table and trigger (click or preselect).",
		}, []string{"table", "trigger"}),
		mounts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gridview_instances_mounted_total",
			Help: "Grid instances mounted since start.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.requests,
		m.buildDuration,
		m.rowsMaterialized,
		m.selections,
		m.mounts,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "gridview_instances",
			Help: "Grid instances currently mounted.",
		}, instances),
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeBuild(mode string, d time.Duration, rows int) {
	m.buildDuration.WithLabelValues(mode).Observe(d.Seconds())
	m.rowsMaterialized.WithLabelValues(mode).Add(float64(rows))
}
