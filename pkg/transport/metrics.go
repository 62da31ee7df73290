// Copyright 2025 OSSKit Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "osskit",
			Subsystem: "transport",
			Name:      "requests_total",
			Help:      "Total number of executed OSS requests",
		},
		[]string{"method", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "osskit",
			Subsystem: "transport",
			Name:      "request_duration_seconds",
			Help:      "Duration of executed OSS requests",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~20s
		},
		[]string{"method"},
	)
)

// RegisterMetrics registers the transport collectors with reg. Calling
// it twice on the same registry returns an AlreadyRegisteredError from
// prometheus.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{requestsTotal, requestDuration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
