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
	"log/slog"

	"github.com/NVIDIA/analyzer-results/pkg/report"
	"github.com/NVIDIA/analyzer-results/pkg/reporthash"
)

// Option configures a Handler.
type Option func(*Handler)

// WithSource sets the analyzed source file. It defaults to the action's
// source; multi-file actions create one handler per file with this option.
func WithSource(source string) Option {
	return func(h *Handler) {
		h.source = source
	}
}

// WithStrategy sets the analyzer-specific strategy explicitly. It takes
// precedence over WithRegistry.
func WithStrategy(s Strategy) Option {
	return func(h *Handler) {
		h.strategy = s
	}
}

// WithRegistry selects the strategy by the action's analyzer type.
// Unregistered types fall back to NoopStrategy.
func WithRegistry(r *Registry) Option {
	return func(h *Handler) {
		h.registry = r
	}
}

// WithSeverityMap sets the checker to severity mapping.
func WithSeverityMap(m report.SeverityMap) Option {
	return func(h *Handler) {
		h.severityMap = m
	}
}

// WithSkipList sets the filter for findings in skipped files.
func WithSkipList(s report.SkipList) Option {
	return func(h *Handler) {
		h.skipList = s
	}
}

// WithReportHashType sets how report identifiers are recomputed during
// postprocessing.
func WithReportHashType(t reporthash.Type) Option {
	return func(h *Handler) {
		h.reportHashType = t
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}
