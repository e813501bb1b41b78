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

// Finding is one normalized analyzer report.
type Finding struct {
	// Checker is the analyzer rule that produced the finding.
	Checker string `json:"checker" yaml:"checker"`

	// Message is the main diagnostic text.
	Message string `json:"message" yaml:"message"`

	// File is the path of the file the finding points into.
	File string `json:"file" yaml:"file"`

	// Line is 1-based; 0 means unknown.
	Line int `json:"line" yaml:"line"`

	// Column is 1-based; 0 means unknown.
	Column int `json:"column,omitempty" yaml:"column,omitempty"`

	// Severity is filled from the severity map while handling results.
	Severity Severity `json:"severity,omitempty" yaml:"severity,omitempty"`

	// ReportHash identifies the finding across runs. Analyzers emit a
	// context-sensitive value; postprocessing may rewrite it.
	ReportHash string `json:"reportHash,omitempty" yaml:"reportHash,omitempty"`

	// Notes are the messages of the bug path events leading to the finding.
	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// SkipList decides whether findings in a file should be dropped.
type SkipList interface {
	ShouldSkip(path string) bool
}
