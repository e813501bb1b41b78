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

package resulthandler

import (
	"crypto/md5" //nolint:gosec // file naming, not a security boundary
	"encoding/hex"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/NVIDIA/analyzer-results/pkg/action"
	"github.com/NVIDIA/analyzer-results/pkg/defaults"
)

// CleanupOutcome describes what happened when a result file was removed.
type CleanupOutcome string

// Cleanup outcomes.
const (
	// CleanupSkipped means the result path was never computed, so there was
	// nothing to remove.
	CleanupSkipped CleanupOutcome = "skipped"
	// CleanupRemoved means the result file was deleted.
	CleanupRemoved CleanupOutcome = "removed"
	// CleanupMissing means the result file did not exist.
	CleanupMissing CleanupOutcome = "missing"
	// CleanupFailed means removal failed for another reason, such as
	// missing permissions. The failure is logged and otherwise ignored.
	CleanupFailed CleanupOutcome = "failed"
)

// String returns the string representation of the outcome.
func (o CleanupOutcome) String() string {
	return string(o)
}

// Artifacts derives the identity and artifact paths of one (build action,
// source file) pair and removes the result file on request.
//
// Paths are computed on first use and cached; later changes to the action do
// not affect them. Artifacts is not safe for concurrent use.
type Artifacts struct {
	act       *action.BuildAction
	workspace string
	source    string
	logger    *slog.Logger

	// resultFile caches the result path; empty until first computed.
	resultFile string
	// fixitFile caches the fix-it path; empty until first computed.
	fixitFile string
}

// NewArtifacts creates the artifact helper. The action is referenced, not
// copied, and must not be nil.
func NewArtifacts(act *action.BuildAction, workspace, source string, logger *slog.Logger) *Artifacts {
	if logger == nil {
		logger = slog.Default()
	}
	return &Artifacts{
		act:       act,
		workspace: workspace,
		source:    source,
		logger:    logger,
	}
}

// Identity returns the name shared by all artifacts of the pair:
//
//	<basename(source)>_<analyzer>_<md5hex(<normalized source>_<command>)>
//
// The normalized source is the source path joined onto the action directory
// (unless already absolute) and cleaned. It is recomputed on every call from
// the current action.
func (a *Artifacts) Identity() string {
	sep := defaults.IdentitySeparator

	digestInput := strings.ToValidUTF8(
		normalizeSource(a.act.Directory, a.source)+sep+a.act.OriginalCommand, "")
	sum := md5.Sum([]byte(digestInput)) //nolint:gosec

	return filepath.Base(a.source) + sep + a.act.AnalyzerType.String() + sep + hex.EncodeToString(sum[:])
}

// ResultFile returns <workspace>/<identity>.plist, computing it on first call.
func (a *Artifacts) ResultFile() string {
	if a.resultFile == "" {
		a.resultFile = filepath.Join(a.workspace, a.Identity()+defaults.ResultFileExtension)
	}
	return a.resultFile
}

// FixitFile returns <workspace>/fixit/<identity>.yaml, computing it on first call.
func (a *Artifacts) FixitFile() string {
	if a.fixitFile == "" {
		a.fixitFile = filepath.Join(a.workspace, defaults.FixitDirName, a.Identity()+defaults.FixitFileExtension)
	}
	return a.fixitFile
}

// ResultFileComputed reports whether ResultFile has been called.
func (a *Artifacts) ResultFileComputed() bool {
	return a.resultFile != ""
}

// Clean removes the result file if its path was computed. Removal errors
// never propagate: they are logged at debug level and reported through the
// outcome. Calling Clean again is harmless.
func (a *Artifacts) Clean() CleanupOutcome {
	if !a.ResultFileComputed() {
		return CleanupSkipped
	}

	err := os.Remove(a.resultFile)
	if err == nil {
		a.logger.Debug("removed result file", "path", a.resultFile)
		return CleanupRemoved
	}

	if errors.Is(err, fs.ErrNotExist) {
		a.logger.Debug("result file does not exist", "path", a.resultFile)
		return CleanupMissing
	}

	a.logger.Debug("failed to remove result file",
		"path", a.resultFile,
		"error", err,
	)
	return CleanupFailed
}

// normalizeSource joins source onto dir and collapses the result with POSIX
// normpath rules. An absolute source discards dir.
func normalizeSource(dir, source string) string {
	p := source
	if !filepath.IsAbs(source) && dir != "" {
		if strings.HasSuffix(dir, "/") {
			p = dir + source
		} else {
			p = dir + "/" + source
		}
	}
	return normpath(p)
}

// normpath is filepath.Clean except that exactly two leading slashes are
// kept, as POSIX leaves their meaning implementation-defined.
func normpath(p string) string {
	cleaned := filepath.Clean(p)
	if strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "///") {
		return "/" + cleaned
	}
	return cleaned
}
