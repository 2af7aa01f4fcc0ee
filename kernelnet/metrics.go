// Copyright 2026 Seclink Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kernelnet

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes the backend's operational counters. A nil *Metrics
// disables instrumentation.
type Metrics struct {
	// EventsReceived counts routing messages read from the kernel.
	EventsReceived prometheus.Counter
	// EventsDropped counts routing messages dropped as malformed.
	EventsDropped prometheus.Counter
	// RouteQueries counts issued route lookups.
	RouteQueries prometheus.Counter
	// RouteQueryTimeouts counts route lookups the kernel did not answer in
	// time.
	RouteQueryTimeouts prometheus.Counter
	// RoamEvents counts scheduled roam notifications.
	RoamEvents prometheus.Counter
	// VirtualIPs tracks the number of active virtual IPs.
	VirtualIPs prometheus.Gauge
}

// NewMetrics creates the backend metrics and registers them with the given
// registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EventsReceived: f.NewCounter(prometheus.CounterOpts{
			Name: "kernelnet_events_received_total",
			Help: "Routing messages read from the kernel event socket.",
		}),
		EventsDropped: f.NewCounter(prometheus.CounterOpts{
			Name: "kernelnet_events_dropped_total",
			Help: "Routing messages dropped as malformed.",
		}),
		RouteQueries: f.NewCounter(prometheus.CounterOpts{
			Name: "kernelnet_route_queries_total",
			Help: "Route lookups issued to the kernel.",
		}),
		RouteQueryTimeouts: f.NewCounter(prometheus.CounterOpts{
			Name: "kernelnet_route_query_timeouts_total",
			Help: "Route lookups that timed out.",
		}),
		RoamEvents: f.NewCounter(prometheus.CounterOpts{
			Name: "kernelnet_roam_events_total",
			Help: "Scheduled roam notifications.",
		}),
		VirtualIPs: f.NewGauge(prometheus.GaugeOpts{
			Name: "kernelnet_virtual_ips",
			Help: "Number of active virtual IPs.",
		}),
	}
}

func (m *Metrics) event() {
	if m != nil {
		m.EventsReceived.Inc()
	}
}

func (m *Metrics) eventDropped() {
	if m != nil {
		m.EventsDropped.Inc()
	}
}

func (m *Metrics) routeQuery() {
	if m != nil {
		m.RouteQueries.Inc()
	}
}

func (m *Metrics) routeQueryTimeout() {
	if m != nil {
		m.RouteQueryTimeouts.Inc()
	}
}

func (m *Metrics) roamScheduled() {
	if m != nil {
		m.RoamEvents.Inc()
	}
}

func (m *Metrics) virtualIPAdded() {
	if m != nil {
		m.VirtualIPs.Inc()
	}
}

func (m *Metrics) virtualIPRemoved() {
	if m != nil {
		m.VirtualIPs.Dec()
	}
}
