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

// Package resulthandler manages the artifacts an analyzer run produces for
// one source file of a build action.
//
// Every (build action, source file) pair gets an identity string that names
// its artifacts inside the workspace:
//
//	<workspace>/<identity>.plist        structured analyzer output
//	<workspace>/fixit/<identity>.yaml   fix-it replacements
//
// The identity combines the source file name, the analyzer type and an MD5
// digest of the normalized source path and the original build command, so
// the same file compiled with different commands never collides.
//
// # Lifecycle
//
// A Handler moves through created, postprocessed, handled and cleaned:
//
//	h := resulthandler.New(&act, workspace,
//	    resulthandler.WithRegistry(resulthandler.NewFromGlobal()),
//	    resulthandler.WithSeverityMap(severities),
//	)
//	h.RecordExecution(resulthandler.Execution{Command: argv, ExitCode: code})
//	if err := h.Postprocess(ctx); err != nil { ... }
//	stats, err := h.Handle(ctx, client)
//	h.CleanResults()
//
// Out-of-order calls return a structured error with code FAILED_PRECONDITION.
// CleanResults is valid at any point and never fails.
//
// # Strategies
//
// The analyzer-specific work of postprocess and handle is delegated to a
// Strategy. Strategy packages register factories with MustRegister from
// init(); NewFromGlobal builds a Registry from them. Analyzer types without a
// strategy use NoopStrategy, which changes nothing and reports empty
// statistics.
package resulthandler
