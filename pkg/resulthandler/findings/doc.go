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

// Package findings implements result handling for analyzers whose result
// file is a normalized findings document (see report.Document).
//
// Postprocessing rewrites report identifiers in place when the handler is
// configured with a context-free report hash type. Handling reads the
// document, drops findings in files matched by the skip list, assigns
// severities from the severity map and submits the rest to the client.
//
// Importing the package registers the strategy for the clang-tidy, cppcheck,
// gcc and infer analyzer types:
//
//	import _ "github.com/NVIDIA/analyzer-results/pkg/resulthandler/findings"
package findings
