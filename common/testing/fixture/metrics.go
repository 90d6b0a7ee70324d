// Copyright 2024 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fixture

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/verity-go/verity/common/errors"
)

// Metrics holds Prometheus metrics about runs, in a private registry.
type Metrics struct {
	registry *prometheus.Registry

	testsTotal   *prometheus.CounterVec
	testDuration *prometheus.HistogramVec
}

// NewMetrics returns Metrics with all metrics registered.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		testsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "verity_tests_total",
				Help: "Total number of tests run, by fixture and outcome",
			},
			[]string{"fixture", "outcome"},
		),
		testDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "verity_test_duration_seconds",
				Help:    "Duration of executed tests",
				Buckets: prometheus.ExponentialBuckets(0.0001, 10, 6),
			},
			[]string{"fixture"},
		),
	}
	m.registry.MustRegister(m.testsTotal, m.testDuration)
	return m
}

// Gatherer exposes the underlying registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Observe records every result of `r`.
//
// Ignored tests are counted, but their duration is not observed.
func (m *Metrics) Observe(r *Report) {
	for _, res := range r.Results {
		m.testsTotal.WithLabelValues(res.Fixture, res.Outcome.String()).Inc()
		if res.Outcome != Ignored {
			m.testDuration.WithLabelValues(res.Fixture).Observe(res.Duration.Seconds())
		}
	}
}

// WriteToTextfile writes the metrics in the Prometheus text format, for the
// node exporter's textfile collector.
func (m *Metrics) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errors.Annotate(err, "writing metrics to %q", path).Err()
	}
	return nil
}
