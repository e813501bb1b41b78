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

package cli

import (
	"github.com/NVIDIA/analyzer-results/pkg/header"
	"github.com/NVIDIA/analyzer-results/pkg/report"
	"github.com/NVIDIA/analyzer-results/pkg/resulthandler"
)

// ArtifactPaths lists the derived artifact names of each analyzed source.
type ArtifactPaths struct {
	header.Header `json:",inline" yaml:",inline"`

	Artifacts []ArtifactPath `json:"artifacts" yaml:"artifacts"`
}

// ArtifactPath holds the names derived for one source file.
type ArtifactPath struct {
	Source     string `json:"source" yaml:"source"`
	Identity   string `json:"identity" yaml:"identity"`
	ResultFile string `json:"resultFile" yaml:"resultFile"`
	FixitFile  string `json:"fixitFile" yaml:"fixitFile"`
}

// CleanupResult reports the cleanup outcome of each analyzed source.
type CleanupResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Results []CleanupEntry `json:"results" yaml:"results"`
}

// CleanupEntry is the cleanup outcome for one result file.
type CleanupEntry struct {
	Source     string                       `json:"source" yaml:"source"`
	ResultFile string                       `json:"resultFile" yaml:"resultFile"`
	Outcome    resulthandler.CleanupOutcome `json:"outcome" yaml:"outcome"`
}

// ProcessResult is the output of the process command: overall statistics
// and the findings submitted for each source.
type ProcessResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Statistics *report.Statistics `json:"statistics" yaml:"statistics"`
	Sources    []SourceResult     `json:"sources" yaml:"sources"`
}

// SourceResult is the handling result of one source file.
type SourceResult struct {
	Source     string                       `json:"source" yaml:"source"`
	ResultFile string                       `json:"resultFile" yaml:"resultFile"`
	Statistics *report.Statistics           `json:"statistics" yaml:"statistics"`
	Findings   []report.Finding             `json:"findings,omitempty" yaml:"findings,omitempty"`
	Cleanup    resulthandler.CleanupOutcome `json:"cleanup,omitempty" yaml:"cleanup,omitempty"`
}

func newHeader(kind header.Kind) header.Header {
	var h header.Header
	h.Init(kind, version)
	return h
}
