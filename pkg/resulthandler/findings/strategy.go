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

package findings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	reserrors "github.com/NVIDIA/analyzer-results/pkg/errors"
	"github.com/NVIDIA/analyzer-results/pkg/report"
	"github.com/NVIDIA/analyzer-results/pkg/reporthash"
	"github.com/NVIDIA/analyzer-results/pkg/resulthandler"
)

// Strategy handles normalized findings documents.
type Strategy struct{}

// New creates the strategy.
func New() *Strategy {
	return &Strategy{}
}

var _ resulthandler.Strategy = (*Strategy)(nil)

// Postprocess rewrites report identifiers according to the handler's report
// hash type. A missing result file means the analyzer produced nothing and
// is not an error.
func (s *Strategy) Postprocess(_ context.Context, h *resulthandler.Handler) error {
	hashType := h.ReportHashType()
	if !hashType.RewritesHashes() {
		return nil
	}

	path := h.ResultFile()
	doc, err := report.ReadDocument(path)
	if errors.Is(err, fs.ErrNotExist) {
		h.Logger().Debug("no result file to postprocess", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read result file %s: %w", path, err)
	}

	changed := reporthash.Rewrite(hashType, doc.Findings)
	if changed == 0 {
		return nil
	}

	if err := report.WriteDocument(path, doc); err != nil {
		return fmt.Errorf("failed to rewrite result file %s: %w", path, err)
	}

	h.Logger().Debug("rewrote report hashes",
		"path", path,
		"type", hashType.String(),
		"changed", changed,
	)
	return nil
}

// Handle submits the findings of the result file and returns statistics.
// A missing result file yields empty statistics, counting an analyzer failure
// when the recorded exit status is non-zero.
func (s *Strategy) Handle(ctx context.Context, h *resulthandler.Handler, client report.Client) (*report.Statistics, error) {
	if client == nil {
		return nil, reserrors.New(reserrors.ErrCodeInvalidRequest, "report client is nil")
	}

	stats := report.NewStatistics()
	path := h.ResultFile()

	doc, err := report.ReadDocument(path)
	if errors.Is(err, fs.ErrNotExist) {
		if h.Execution().Failed() {
			stats.AnalyzerFailed++
			h.Logger().Debug("analyzer failed without producing results",
				"path", path,
				"exitCode", h.Execution().ExitCode,
			)
		}
		return stats, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read result file %s: %w", path, err)
	}

	kept := make([]report.Finding, 0, len(doc.Findings))
	for _, f := range doc.Findings {
		if skip := h.SkipList(); skip != nil && skip.ShouldSkip(f.File) {
			stats.Skipped++
			continue
		}
		f.Severity = h.SeverityMap().Lookup(f.Checker)
		kept = append(kept, f)
	}

	if len(kept) > 0 {
		if err := client.Submit(ctx, h.AnalyzedSource(), kept); err != nil {
			return nil, fmt.Errorf("failed to submit findings for %s: %w", h.AnalyzedSource(), err)
		}
	}

	for _, f := range kept {
		stats.Add(f)
	}
	return stats, nil
}
