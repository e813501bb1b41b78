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

package header

import (
	"fmt"
	"time"
)

// Kind identifies the document type.
type Kind string

// Document kinds.
const (
	KindAnalyzerReport Kind = "AnalyzerReport"
	KindArtifactPaths  Kind = "ArtifactPaths"
	KindCleanupResult  Kind = "CleanupResult"
	KindStatistics     Kind = "Statistics"
)

// APIVersion is the current document schema version.
const APIVersion = "results.nvidia.com/v1alpha1"

// Metadata keys written by this module.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
	MetadataRunID     = "runId"
)

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the document kinds above.
func (k Kind) IsValid() bool {
	switch k {
	case KindAnalyzerReport, KindArtifactPaths, KindCleanupResult, KindStatistics:
		return true
	default:
		return false
	}
}

// Header is embedded inline at the top of every serialized document.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init stamps the header with kind, the current API version, a UTC
// timestamp and, when non-empty, the producing tool's version.
func (h *Header) Init(kind Kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = map[string]string{
		MetadataTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata[MetadataVersion] = version
	}
}

// SetMetadata records a metadata entry, allocating the map if needed.
func (h *Header) SetMetadata(key, value string) {
	if h.Metadata == nil {
		h.Metadata = make(map[string]string)
	}
	h.Metadata[key] = value
}

// Expect checks that a decoded header describes a document of kind want.
// Bare documents without kind or apiVersion are accepted, since analyzer
// wrappers may emit only the payload.
func (h *Header) Expect(want Kind) error {
	if h.Kind != "" && h.Kind != want {
		if !h.Kind.IsValid() {
			return fmt.Errorf("unknown document kind %q, want %s", h.Kind, want)
		}
		return fmt.Errorf("unexpected document kind %s, want %s", h.Kind, want)
	}
	if h.APIVersion != "" && h.APIVersion != APIVersion {
		return fmt.Errorf("unsupported apiVersion %q, want %s", h.APIVersion, APIVersion)
	}
	return nil
}
