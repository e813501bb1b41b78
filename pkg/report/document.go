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

import (
	"errors"
	"fmt"
	"io"

	"github.com/NVIDIA/analyzer-results/pkg/defaults"
	"github.com/NVIDIA/analyzer-results/pkg/header"
	"github.com/NVIDIA/analyzer-results/pkg/serializer"
)

// Document is the normalized findings document an analyzer adapter writes to
// a handler's result file. It is stored as YAML; JSON documents are accepted
// when reading.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	// Analyzer is the analyzer type that produced the findings.
	Analyzer string `json:"analyzer,omitempty" yaml:"analyzer,omitempty"`

	// Source is the analyzed source file.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Findings are the reports produced for Source.
	Findings []Finding `json:"findings" yaml:"findings"`
}

// NewDocument creates a document with an initialized header.
func NewDocument(analyzer, source string, findings []Finding) *Document {
	d := &Document{
		Analyzer: analyzer,
		Source:   source,
		Findings: findings,
	}
	d.Init(header.KindAnalyzerReport, "")
	return d
}

// ReadDocument loads a findings document. The returned error wraps the
// underlying open error, so a missing file satisfies errors.Is(err, fs.ErrNotExist).
// An empty file is read as a document without findings.
func ReadDocument(path string) (*Document, error) {
	doc, err := serializer.FromFileWithFormat[Document](path, serializer.FormatYAML)
	if errors.Is(err, io.EOF) {
		return &Document{}, nil
	}
	if err != nil {
		return nil, err
	}
	if err := doc.Expect(header.KindAnalyzerReport); err != nil {
		return nil, fmt.Errorf("invalid result file %s: %w", path, err)
	}
	return doc, nil
}

// WriteDocument replaces the file at path with doc.
func WriteDocument(path string, doc *Document) error {
	return serializer.ToFile(path, serializer.FormatYAML, doc, defaults.ResultFileMode)
}
