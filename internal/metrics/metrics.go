// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth operation labels.
const (
	OperationSignup = "signup"
	OperationSignin = "signin"
)

// Metrics contains the custom collectors of the user auth service.
type Metrics struct {
	// AuthOperations counts signup and signin outcomes. The status label is
	// the envelope status (SUCCESS or FAILED); reason narrows failures.
	AuthOperations *prometheus.CounterVec

	// RequestDuration observes HTTP handling time per route.
	RequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates a private registry with the Go and process collectors and
// registers the service collectors on it.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return NewMetrics(registry)
}

// NewMetrics registers the service collectors with reg, which also backs
// [Metrics.Handler].
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		AuthOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "user_auth_operations_total",
				Help: "Total number of signup and signin attempts by status and reason",
			},
			[]string{"operation", "status", "reason"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "user_auth_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "code"},
		),
		registry: reg,
	}

	reg.MustRegister(m.AuthOperations)
	reg.MustRegister(m.RequestDuration)

	return m
}

// RecordAuthOperation increments the outcome counter.
func (m *Metrics) RecordAuthOperation(operation, status, reason string) {
	m.AuthOperations.WithLabelValues(operation, status, reason).Inc()
}

// ObserveRequest records the duration of a handled HTTP request.
func (m *Metrics) ObserveRequest(method, route string, code int, duration time.Duration) {
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(code)).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
