// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resulthandler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Cleanup metrics
	cleanupOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_results_cleanup_total",
			Help: "Total number of result file cleanups by outcome",
		},
		[]string{"outcome"},
	)

	// Handling metrics
	handleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analyzer_results_handle_duration_seconds",
			Help:    "Duration of result handling in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"analyzer"},
	)
	findingsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_results_findings_total",
			Help: "Total number of findings submitted to the report client",
		},
		[]string{"analyzer"},
	)
	findingsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_results_findings_skipped_total",
			Help: "Total number of findings dropped by the skip list",
		},
		[]string{"analyzer"},
	)
)
