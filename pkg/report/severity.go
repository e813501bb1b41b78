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
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/analyzer-results/pkg/serializer"
)

// Severity classifies a finding.
type Severity string

// Severities ordered from least to most severe.
const (
	SeverityUnspecified Severity = "UNSPECIFIED"
	SeverityStyle       Severity = "STYLE"
	SeverityLow         Severity = "LOW"
	SeverityMedium      Severity = "MEDIUM"
	SeverityHigh        Severity = "HIGH"
	SeverityCritical    Severity = "CRITICAL"
)

var severityRank = map[Severity]int{
	SeverityUnspecified: 0,
	SeverityStyle:       1,
	SeverityLow:         2,
	SeverityMedium:      3,
	SeverityHigh:        4,
	SeverityCritical:    5,
}

var titleCaser = cases.Title(language.English)

// Severities returns all severities from least to most severe.
func Severities() []Severity {
	return []Severity{
		SeverityUnspecified,
		SeverityStyle,
		SeverityLow,
		SeverityMedium,
		SeverityHigh,
		SeverityCritical,
	}
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// Title returns the severity in title case for human-readable output.
func (s Severity) Title() string {
	return titleCaser.String(strings.ToLower(string(s)))
}

// IsValid reports whether s is a known severity.
func (s Severity) IsValid() bool {
	_, ok := severityRank[s]
	return ok
}

// AtLeast reports whether s is as severe as other or more.
func (s Severity) AtLeast(other Severity) bool {
	return severityRank[s] >= severityRank[other]
}

// ParseSeverity converts a case-insensitive name into a Severity.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(strings.ToUpper(strings.TrimSpace(s)))
	if !sev.IsValid() {
		return "", fmt.Errorf("unknown severity %q (supported values: %v)", s, Severities())
	}
	return sev, nil
}

// SeverityMap assigns a severity to each checker name.
type SeverityMap map[string]Severity

// Lookup returns the severity mapped to checker, or SeverityUnspecified.
// A nil map is valid and maps everything to SeverityUnspecified.
func (m SeverityMap) Lookup(checker string) Severity {
	if sev, ok := m[checker]; ok {
		return sev
	}
	return SeverityUnspecified
}

// LoadSeverityMap reads a checker→severity mapping from a JSON or YAML file.
// Severity names are case-insensitive.
func LoadSeverityMap(path string) (SeverityMap, error) {
	raw, err := serializer.FromFile[map[string]string](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load severity map: %w", err)
	}

	m := make(SeverityMap, len(*raw))
	for checker, name := range *raw {
		sev, err := ParseSeverity(name)
		if err != nil {
			return nil, fmt.Errorf("checker %q: %w", checker, err)
		}
		m[checker] = sev
	}
	return m, nil
}
