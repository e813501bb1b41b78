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

// Package defaults centralizes the constants shared by result handlers and
// the CLI: artifact file extensions, the fix-it subdirectory name, the
// identity separator, and the default analyzer exit status.
//
// # Usage
//
//	import "github.com/NVIDIA/analyzer-results/pkg/defaults"
//
//	path := filepath.Join(workspace, identity+defaults.ResultFileExtension)
//
// Changing any naming constant changes every artifact path derived from a
// build action, so previously written workspaces will no longer be found.
package defaults
