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

package report

// Statistics aggregates the outcome of handling one or more result files.
type Statistics struct {
	// Findings is the number of findings submitted to the client.
	Findings int `json:"findings" yaml:"findings"`

	// Skipped is the number of findings dropped by the skip list.
	Skipped int `json:"skipped" yaml:"skipped"`

	// AnalyzerFailed counts handled results whose analyzer run failed.
	AnalyzerFailed int `json:"analyzerFailed" yaml:"analyzerFailed"`

	// BySeverity counts submitted findings per severity.
	BySeverity map[Severity]int `json:"bySeverity" yaml:"bySeverity"`

	// ByChecker counts submitted findings per checker.
	ByChecker map[string]int `json:"byChecker" yaml:"byChecker"`
}

// NewStatistics returns empty statistics.
func NewStatistics() *Statistics {
	return &Statistics{
		BySeverity: make(map[Severity]int),
		ByChecker:  make(map[string]int),
	}
}

// Add counts one submitted finding.
func (s *Statistics) Add(f Finding) {
	s.ensureMaps()
	s.Findings++
	sev := f.Severity
	if sev == "" {
		sev = SeverityUnspecified
	}
	s.BySeverity[sev]++
	s.ByChecker[f.Checker]++
}

// Merge folds other into s. A nil other is ignored.
func (s *Statistics) Merge(other *Statistics) {
	if other == nil {
		return
	}
	s.ensureMaps()
	s.Findings += other.Findings
	s.Skipped += other.Skipped
	s.AnalyzerFailed += other.AnalyzerFailed
	for k, v := range other.BySeverity {
		s.BySeverity[k] += v
	}
	for k, v := range other.ByChecker {
		s.ByChecker[k] += v
	}
}

// IsEmpty reports whether nothing was counted.
func (s *Statistics) IsEmpty() bool {
	return s == nil || (s.Findings == 0 && s.Skipped == 0 && s.AnalyzerFailed == 0)
}

func (s *Statistics) ensureMaps() {
	if s.BySeverity == nil {
		s.BySeverity = make(map[Severity]int)
	}
	if s.ByChecker == nil {
		s.ByChecker = make(map[string]int)
	}
}
