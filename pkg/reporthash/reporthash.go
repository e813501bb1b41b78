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

// Package reporthash computes the identifiers used to match findings across
// analysis runs.
//
// Analyzers emit context-sensitive identifiers that change whenever the
// surrounding code moves. Result handlers can rewrite them during
// postprocessing into one of the context-free variants:
//
//   - context-sensitive: keep the analyzer's own value (no rewrite)
//   - context-free: file name, checker, message, column and the trimmed
//     text of the reported source line
//   - diagnostic-message: the context-free components plus the message of
//     every bug path note
package reporthash

import (
	"bufio"
	"crypto/md5" //nolint:gosec // identifier, not a security boundary
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/NVIDIA/analyzer-results/pkg/report"
)

// Type selects how report identifiers are computed.
type Type string

// Supported hash types.
const (
	ContextSensitive  Type = "context-sensitive"
	ContextFree       Type = "context-free"
	DiagnosticMessage Type = "diagnostic-message"
)

// componentSeparator joins hash components.
const componentSeparator = "|||"

// SupportedTypes returns all hash types.
func SupportedTypes() []Type {
	return []Type{ContextSensitive, ContextFree, DiagnosticMessage}
}

// String returns the string representation of the hash type.
func (t Type) String() string {
	return string(t)
}

// RewritesHashes reports whether postprocessing must recompute identifiers.
// The empty Type behaves like ContextSensitive.
func (t Type) RewritesHashes() bool {
	return t == ContextFree || t == DiagnosticMessage
}

// ParseType converts a string to a Type. The empty string yields ContextSensitive.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case "", ContextSensitive:
		return ContextSensitive, nil
	case ContextFree:
		return ContextFree, nil
	case DiagnosticMessage:
		return DiagnosticMessage, nil
	default:
		return "", fmt.Errorf("unsupported report hash type: %q (supported values: %v)", s, SupportedTypes())
	}
}

// Compute returns the identifier of f under t. For ContextSensitive the
// analyzer's own ReportHash is returned unchanged.
func Compute(t Type, f report.Finding) string {
	if !t.RewritesHashes() {
		return f.ReportHash
	}

	components := []string{
		filepath.Base(f.File),
		f.Checker,
		f.Message,
		strconv.Itoa(f.Column),
		sourceLine(f.File, f.Line),
	}
	if t == DiagnosticMessage {
		components = append(components, f.Notes...)
	}

	sum := md5.Sum([]byte(strings.Join(components, componentSeparator))) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// Rewrite recomputes the identifier of every finding in place and reports
// how many changed.
func Rewrite(t Type, findings []report.Finding) int {
	if !t.RewritesHashes() {
		return 0
	}
	changed := 0
	for i := range findings {
		h := Compute(t, findings[i])
		if findings[i].ReportHash != h {
			findings[i].ReportHash = h
			changed++
		}
	}
	return changed
}

// sourceLine returns the whitespace-free text of the 1-based line in path,
// or "" when it cannot be read.
func sourceLine(path string, line int) string {
	if path == "" || line <= 0 {
		return ""
	}
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; scanner.Scan(); n++ {
		if n == line {
			return strings.Join(strings.Fields(scanner.Text()), "")
		}
	}
	return ""
}
