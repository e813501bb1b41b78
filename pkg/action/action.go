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

package action

import (
	"fmt"
	"strings"
)

// AnalyzerType tags the analyzer family that processes a build action.
// Any non-empty tag is accepted; the constants below name the families
// that ship with a registered result strategy.
type AnalyzerType string

// Known analyzer families.
const (
	AnalyzerClangSA   AnalyzerType = "clangsa"
	AnalyzerClangTidy AnalyzerType = "clang-tidy"
	AnalyzerCppcheck  AnalyzerType = "cppcheck"
	AnalyzerGCC       AnalyzerType = "gcc"
	AnalyzerInfer     AnalyzerType = "infer"
)

// String returns the string representation of the analyzer type.
func (t AnalyzerType) String() string {
	return string(t)
}

// IsKnown reports whether the type is one of the known analyzer families.
func (t AnalyzerType) IsKnown() bool {
	for _, k := range KnownTypes() {
		if t == k {
			return true
		}
	}
	return false
}

// KnownTypes returns all known analyzer families.
func KnownTypes() []AnalyzerType {
	return []AnalyzerType{
		AnalyzerClangSA,
		AnalyzerClangTidy,
		AnalyzerCppcheck,
		AnalyzerGCC,
		AnalyzerInfer,
	}
}

// ParseAnalyzerType validates a tag. Tags end up in artifact file names, so
// they must be non-empty and free of path separators and whitespace.
func ParseAnalyzerType(s string) (AnalyzerType, error) {
	if s == "" {
		return "", fmt.Errorf("analyzer type cannot be empty")
	}
	if strings.ContainsAny(s, "/\\ \t\n") {
		return "", fmt.Errorf("invalid analyzer type %q: must not contain path separators or whitespace", s)
	}
	return AnalyzerType(s), nil
}

// BuildAction identifies one compiler or analyzer invocation. It is owned by
// the orchestrator; result handlers only read it.
type BuildAction struct {
	// Directory is the working directory of the original build command.
	Directory string `json:"directory" yaml:"directory"`

	// OriginalCommand is the command line text as recorded by the build.
	OriginalCommand string `json:"command" yaml:"command"`

	// AnalyzerType selects the analyzer family processing this action.
	AnalyzerType AnalyzerType `json:"analyzer" yaml:"analyzer"`

	// Source is the path of the analyzed source file, absolute or relative
	// to Directory.
	Source string `json:"source" yaml:"source"`
}

// Validate checks that the fields used to derive artifact names are set.
func (a *BuildAction) Validate() error {
	if a == nil {
		return fmt.Errorf("build action is nil")
	}
	if a.Source == "" {
		return fmt.Errorf("build action has no source file")
	}
	if _, err := ParseAnalyzerType(string(a.AnalyzerType)); err != nil {
		return err
	}
	return nil
}

// WithSource returns a copy of the action analyzing a different source file.
// Multi-file build actions are split this way, one handler per file.
func (a BuildAction) WithSource(source string) BuildAction {
	a.Source = source
	return a
}
