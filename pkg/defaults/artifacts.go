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

package defaults

import "os"

// Artifact naming.
const (
	// ResultFileExtension is appended to the identity string to form the
	// analyzer's structured output file name.
	ResultFileExtension = ".plist"

	// FixitFileExtension is appended to the identity string to form the
	// replacement description consumed by clang-apply-replacements.
	FixitFileExtension = ".yaml"

	// FixitDirName is the workspace subdirectory holding fix-it files.
	FixitDirName = "fixit"

	// IdentitySeparator joins the parts of an identity string and separates
	// the normalized source path from the command text inside the digest input.
	IdentitySeparator = "_"
)

// Analyzer execution.
const (
	// FailureExitCode is the recorded analyzer exit status until the
	// orchestrator records the real one.
	FailureExitCode = 1

	// SuccessExitCode is the exit status of a successful analyzer run.
	SuccessExitCode = 0
)

// File modes for artifacts rewritten in place.
const (
	// ResultFileMode is used when a postprocess step rewrites a result file.
	ResultFileMode os.FileMode = 0o644
)
