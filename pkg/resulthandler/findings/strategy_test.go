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

package findings

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/analyzer-results/pkg/action"
	reserrors "github.com/NVIDIA/analyzer-results/pkg/errors"
	"github.com/NVIDIA/analyzer-results/pkg/report"
	"github.com/NVIDIA/analyzer-results/pkg/report/skiplist"
	"github.com/NVIDIA/analyzer-results/pkg/reporthash"
	"github.com/NVIDIA/analyzer-results/pkg/resulthandler"
)

func newAction(dir string) *action.BuildAction {
	return &action.BuildAction{
		Directory:       dir,
		OriginalCommand: "g++ -c main.cpp",
		AnalyzerType:    action.AnalyzerClangTidy,
		Source:          "main.cpp",
	}
}

func sampleFindings(dir string) []report.Finding {
	return []report.Finding{
		{Checker: "bugprone-use-after-move", Message: "'v' used after it was moved", File: filepath.Join(dir, "main.cpp"), Line: 2, Column: 3, ReportHash: "a1"},
		{Checker: "readability-braces", Message: "missing braces", File: filepath.Join(dir, "main.cpp"), Line: 1, Column: 1, ReportHash: "a2"},
		{Checker: "bugprone-use-after-move", Message: "moved", File: filepath.Join(dir, "third_party", "lib.h"), Line: 9, ReportHash: "a3"},
	}
}

// setup writes a source file and a result document and returns a handler for it.
func setup(t *testing.T, opts ...resulthandler.Option) (*resulthandler.Handler, string) {
	t.Helper()
	dir := t.TempDir()
	ws := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.cpp"), []byte("int main() {\n  use(v);\n}\n"), 0o600))

	opts = append([]resulthandler.Option{resulthandler.WithStrategy(New())}, opts...)
	h := resulthandler.New(newAction(dir), ws, opts...)
	doc := report.NewDocument(action.AnalyzerClangTidy.String(), "main.cpp", sampleFindings(dir))
	require.NoError(t, report.WriteDocument(h.ResultFile(), doc))
	return h, dir
}

func TestRegistration(t *testing.T) {
	reg := resulthandler.NewFromGlobal()
	for _, at := range Types {
		s, ok := reg.Get(at)
		require.True(t, ok, "strategy for %s not registered", at)
		assert.IsType(t, &Strategy{}, s)
	}

	_, ok := reg.Get(action.AnalyzerClangSA)
	assert.False(t, ok)
}

func TestPostprocess_ContextSensitiveKeepsFile(t *testing.T) {
	h, _ := setup(t)
	before, err := os.ReadFile(h.ResultFile())
	require.NoError(t, err)

	require.NoError(t, New().Postprocess(context.Background(), h))

	after, err := os.ReadFile(h.ResultFile())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestPostprocess_RewritesHashes(t *testing.T) {
	h, _ := setup(t, resulthandler.WithReportHashType(reporthash.ContextFree))
	ctx := context.Background()

	require.NoError(t, New().Postprocess(ctx, h))

	doc, err := report.ReadDocument(h.ResultFile())
	require.NoError(t, err)
	require.Len(t, doc.Findings, 3)
	for i, f := range doc.Findings {
		assert.Len(t, f.ReportHash, 32)
		assert.Equal(t, reporthash.Compute(reporthash.ContextFree, f), f.ReportHash, "finding %d", i)
	}

	first, err := os.ReadFile(h.ResultFile())
	require.NoError(t, err)
	require.NoError(t, New().Postprocess(ctx, h))
	second, err := os.ReadFile(h.ResultFile())
	require.NoError(t, err)
	assert.Equal(t, first, second, "postprocess must be repeatable")
}

func TestPostprocess_MissingResultFile(t *testing.T) {
	ws := t.TempDir()
	h := resulthandler.New(newAction("/src"), ws, resulthandler.WithReportHashType(reporthash.DiagnosticMessage))

	require.NoError(t, New().Postprocess(context.Background(), h))
	assert.NoFileExists(t, h.ResultFile())
}

func TestHandle(t *testing.T) {
	skip, err := skiplist.Parse(strings.NewReader("-*/third_party/*\n"))
	require.NoError(t, err)

	h, _ := setup(t,
		resulthandler.WithSkipList(skip),
		resulthandler.WithSeverityMap(report.SeverityMap{"bugprone-use-after-move": report.SeverityHigh}),
	)
	client := report.NewMemoryClient()

	stats, err := New().Handle(context.Background(), h, client)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Findings)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 0, stats.AnalyzerFailed)
	assert.Equal(t, 1, stats.BySeverity[report.SeverityHigh])
	assert.Equal(t, 1, stats.BySeverity[report.SeverityUnspecified])
	assert.Equal(t, 1, stats.ByChecker["readability-braces"])

	submitted := client.Findings("main.cpp")
	require.Len(t, submitted, 2)
	assert.Equal(t, report.SeverityHigh, submitted[0].Severity)
	assert.Equal(t, report.SeverityUnspecified, submitted[1].Severity)
}

func TestHandle_MissingResultFile(t *testing.T) {
	tests := []struct {
		name       string
		record     bool
		exitCode   int
		wantFailed int
	}{
		{"no execution recorded", false, 0, 1},
		{"analyzer failed", true, 3, 1},
		{"analyzer succeeded", true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := resulthandler.New(newAction("/src"), t.TempDir())
			if tt.record {
				h.RecordExecution(resulthandler.Execution{ExitCode: tt.exitCode})
			}
			client := report.NewMemoryClient()

			stats, err := New().Handle(context.Background(), h, client)
			require.NoError(t, err)
			assert.Equal(t, 0, stats.Findings)
			assert.Equal(t, tt.wantFailed, stats.AnalyzerFailed)
			assert.Equal(t, 0, client.Total())
		})
	}
}

func TestHandle_EmptyResultFile(t *testing.T) {
	h := resulthandler.New(newAction("/src"), t.TempDir())
	require.NoError(t, os.WriteFile(h.ResultFile(), nil, 0o600))

	stats, err := New().Handle(context.Background(), h, report.NewMemoryClient())
	require.NoError(t, err)
	assert.True(t, stats.IsEmpty())
}

func TestHandle_NilClient(t *testing.T) {
	h, _ := setup(t)

	_, err := New().Handle(context.Background(), h, nil)
	assert.True(t, reserrors.HasCode(err, reserrors.ErrCodeInvalidRequest), "got %v", err)
	assert.FileExists(t, h.ResultFile())
}

func TestHandle_ClientError(t *testing.T) {
	h, _ := setup(t)
	boom := errors.New("store unavailable")
	client := report.ClientFunc(func(context.Context, string, []report.Finding) error { return boom })

	_, err := New().Handle(context.Background(), h, client)
	assert.ErrorIs(t, err, boom)
}

func TestLifecycleThroughRegistry(t *testing.T) {
	dir := t.TempDir()
	ws := t.TempDir()
	h := resulthandler.New(newAction(dir), ws,
		resulthandler.WithRegistry(resulthandler.NewFromGlobal()),
		resulthandler.WithReportHashType(reporthash.ContextFree),
	)
	require.IsType(t, &Strategy{}, h.Strategy())

	doc := report.NewDocument("clang-tidy", "main.cpp", sampleFindings(dir)[:1])
	require.NoError(t, report.WriteDocument(h.ResultFile(), doc))
	h.RecordExecution(resulthandler.Execution{Command: []string{"clang-tidy", "main.cpp"}, ExitCode: 0})

	ctx := context.Background()
	require.NoError(t, h.Postprocess(ctx))

	client := report.NewMemoryClient()
	stats, err := h.Handle(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Findings)
	assert.NotEqual(t, "a1", client.Findings("main.cpp")[0].ReportHash)

	assert.Equal(t, resulthandler.CleanupRemoved, h.CleanResults())
	assert.NoFileExists(t, h.ResultFile())
}
