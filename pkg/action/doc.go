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

// Package action defines the build action descriptor consumed by result
// handlers: the working directory, the original command text, the analyzer
// type tag, and the analyzed source file.
//
// A BuildAction is read-only to everything in this module. Handlers keep a
// pointer to it, so the orchestrator must keep it alive for at least as long
// as the handlers derived from it.
package action
