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

// Package report defines the normalized findings model shared by result
// handlers and their clients.
//
// # Types
//
//   - Finding: one analyzer report (checker, message, location, hash, notes)
//   - Severity / SeverityMap: checker to severity classification
//   - SkipList: file filter applied before findings are submitted
//   - Statistics: aggregate counts returned from handling results
//   - Client: the sink findings are submitted to
//   - Document: the on-disk findings document read from result files
//
// # Concurrency
//
// Findings, documents and statistics are plain values owned by a single
// handler. Client implementations are shared between handlers and must be
// safe for concurrent use; MemoryClient is.
package report
