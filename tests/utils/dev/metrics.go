// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "moonsuite"

// Metrics holds the block creation metrics.
type Metrics struct {
	blocksCreated      prometheus.Counter
	extrinsicsFailed   *prometheus.CounterVec
	blockCreationTimes prometheus.Histogram
}

// NewMetrics creates the block creation metrics
// and registers them with the registerer given.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	metrics := &Metrics{
		blocksCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "dev",
			Name:      "blocks_created_total",
			Help:      "total number of blocks created",
		}),
		extrinsicsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "dev",
			Name:      "extrinsics_failed_total",
			Help:      "total number of extrinsics whose dispatch failed, by call",
		}, []string{"call"}),
		blockCreationTimes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "dev",
			Name:      "block_creation_seconds",
			Help:      "time taken to create a block including its extrinsic",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	collectors := []prometheus.Collector{
		metrics.blocksCreated,
		metrics.extrinsicsFailed,
		metrics.blockCreationTimes,
	}
	for _, collector := range collectors {
		err := registerer.Register(collector)
		if err != nil {
			return nil, fmt.Errorf("cannot register metric: %w", err)
		}
	}

	return metrics, nil
}

func (m *Metrics) observeBlock(start time.Time) {
	if m == nil {
		return
	}
	m.blocksCreated.Inc()
	m.blockCreationTimes.Observe(time.Since(start).Seconds())
}

func (m *Metrics) observeFailure(call string) {
	if m == nil {
		return
	}
	m.extrinsicsFailed.WithLabelValues(call).Inc()
}
