// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus counters for registry operations
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/clonemarkd/fault"
)

const namespace = "clonemarkd"

// result labels
const (
	resultSuccess  = "success"
	resultRejected = "rejected"
	resultFailed   = "failed"
)

// Metrics - operation counters on a private registry
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	cloned     prometheus.Counter
	paid       prometheus.Counter
}

// New - create and register the counters
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "registry operations by name and result",
		}, []string{"operation", "result"}),
		cloned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "derived_items_total",
			Help:      "derived items created by clone",
		}),
		paid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_total",
			Help:      "base payment units accepted by clone, excluding refunds",
		}),
	}
	m.registry.MustRegister(m.operations, m.cloned, m.paid)
	return m
}

// Observe - count one operation
//
// caller errors are counted as rejected, anything else as failed
func (m *Metrics) Observe(operation string, err error) {
	result := resultSuccess
	if nil != err {
		if fault.IsErrProcess(err) {
			result = resultFailed
		} else {
			result = resultRejected
		}
	}
	m.operations.WithLabelValues(operation, result).Inc()
}

// Cloned - count derived items and accepted payment
func (m *Metrics) Cloned(count uint64, amount uint64) {
	m.cloned.Add(float64(count))
	m.paid.Add(float64(amount))
}

// Gauge - register a value read at scrape time
func (m *Metrics) Gauge(name string, help string, f func() float64) error {
	return m.registry.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, f))
}

// Handler - HTTP exposition of this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
