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

package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/analyzer-results/pkg/action"
	"github.com/NVIDIA/analyzer-results/pkg/header"
	"github.com/NVIDIA/analyzer-results/pkg/report"
	"github.com/NVIDIA/analyzer-results/pkg/resulthandler"
	"github.com/NVIDIA/analyzer-results/pkg/serializer"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	return newRootCmd().Run(context.Background(), append([]string{name}, args...))
}

func TestPathsCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "paths.yaml")

	err := run(t, "paths",
		"--directory", "/src",
		"--command", "gcc -c foo.c",
		"--analyzer", "sa",
		"--source", "foo.c",
		"--workspace", "/tmp/ws",
		"--output", out,
	)
	require.NoError(t, err)

	got, err := serializer.FromFile[ArtifactPaths](out)
	require.NoError(t, err)
	assert.Equal(t, header.KindArtifactPaths, got.Kind)
	assert.Equal(t, header.APIVersion, got.APIVersion)
	require.Len(t, got.Artifacts, 1)

	a := got.Artifacts[0]
	assert.Equal(t, "foo.c", a.Source)
	assert.Equal(t, "foo.c_sa_f2a900faf1c49f145011777ae7650836", a.Identity)
	assert.Equal(t, "/tmp/ws/foo.c_sa_f2a900faf1c49f145011777ae7650836.plist", a.ResultFile)
	assert.Equal(t, "/tmp/ws/fixit/foo.c_sa_f2a900faf1c49f145011777ae7650836.yaml", a.FixitFile)
}

func TestPathsCmd_ActionFile(t *testing.T) {
	dir := t.TempDir()
	actionFile := filepath.Join(dir, "action.yaml")
	require.NoError(t, os.WriteFile(actionFile, []byte(
		"directory: /src\ncommand: gcc -c foo.c\nanalyzer: sa\nsource: foo.c\n"), 0o600))
	out := filepath.Join(dir, "paths.json")

	require.NoError(t, run(t, "paths",
		"--action", actionFile,
		"--source", "foo.c",
		"--source", "bar.c",
		"--workspace", "/tmp/ws",
		"--format", "json",
		"--output", out,
	))

	got, err := serializer.FromFile[ArtifactPaths](out)
	require.NoError(t, err)
	require.Len(t, got.Artifacts, 2)
	assert.Equal(t, "foo.c_sa_f2a900faf1c49f145011777ae7650836", got.Artifacts[0].Identity)
	assert.Equal(t, "bar.c", got.Artifacts[1].Source)
	assert.NotEqual(t, got.Artifacts[0].Identity, got.Artifacts[1].Identity)
}

func TestPathsCmd_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing workspace", []string{"paths", "--analyzer", "gcc", "--source", "a.c"}},
		{"missing source", []string{"paths", "--analyzer", "gcc", "--workspace", "/ws"}},
		{"invalid analyzer", []string{"paths", "--analyzer", "bad type", "--source", "a.c", "--workspace", "/ws"}},
		{"invalid format", []string{"paths", "--analyzer", "gcc", "--source", "a.c", "--workspace", "/ws", "--format", "xml"}},
		{"missing action file", []string{"paths", "--action", "/does/not/exist.yaml", "--workspace", "/ws"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, run(t, tt.args...))
		})
	}
}

func TestCleanCmd(t *testing.T) {
	ws := t.TempDir()
	act := action.BuildAction{Directory: "/src", OriginalCommand: "gcc -c foo.c", AnalyzerType: action.AnalyzerGCC, Source: "foo.c"}
	resultFile := resulthandler.New(&act, ws).ResultFile()
	require.NoError(t, os.WriteFile(resultFile, []byte("findings: []\n"), 0o600))

	out := filepath.Join(t.TempDir(), "clean.yaml")
	args := []string{"clean",
		"-d", "/src", "-c", "gcc -c foo.c", "--analyzer", "gcc", "-s", "foo.c", "-w", ws,
		"--output", out,
	}

	require.NoError(t, run(t, args...))
	assert.NoFileExists(t, resultFile)

	got, err := serializer.FromFile[CleanupResult](out)
	require.NoError(t, err)
	assert.Equal(t, header.KindCleanupResult, got.Kind)
	require.Len(t, got.Results, 1)
	assert.Equal(t, resulthandler.CleanupRemoved, got.Results[0].Outcome)
	assert.Equal(t, resultFile, got.Results[0].ResultFile)

	require.NoError(t, run(t, args...), "cleaning a missing file must not fail")
	got, err = serializer.FromFile[CleanupResult](out)
	require.NoError(t, err)
	assert.Equal(t, resulthandler.CleanupMissing, got.Results[0].Outcome)
}

func TestProcessCmd(t *testing.T) {
	ws := t.TempDir()
	cfg := t.TempDir()

	act := action.BuildAction{Directory: "/src", OriginalCommand: "clang-tidy a.cpp", AnalyzerType: action.AnalyzerClangTidy, Source: "a.cpp"}
	resultFile := resulthandler.New(&act, ws).ResultFile()
	doc := report.NewDocument("clang-tidy", "a.cpp", []report.Finding{
		{Checker: "bugprone-sizeof", Message: "suspicious sizeof", File: "/src/a.cpp", Line: 4},
		{Checker: "modernize-use-nullptr", Message: "use nullptr", File: "/src/a.cpp", Line: 7},
		{Checker: "modernize-use-nullptr", Message: "use nullptr", File: "/src/vendor/x.h", Line: 1},
	})
	require.NoError(t, report.WriteDocument(resultFile, doc))

	sevFile := filepath.Join(cfg, "severities.yaml")
	require.NoError(t, os.WriteFile(sevFile, []byte("bugprone-sizeof: HIGH\nmodernize-use-nullptr: STYLE\n"), 0o600))
	skipFile := filepath.Join(cfg, "skipfile")
	require.NoError(t, os.WriteFile(skipFile, []byte("-/src/vendor/*\n"), 0o600))
	out := filepath.Join(cfg, "result.yaml")

	baseArgs := []string{"process",
		"-d", "/src", "-c", "clang-tidy a.cpp", "--analyzer", "clang-tidy", "-s", "a.cpp", "-w", ws,
		"--severity-map", sevFile,
		"--skip", skipFile,
		"--report-hash", "context-free",
		"--exit-code", "0",
		"--output", out,
	}

	t.Run("keep", func(t *testing.T) {
		require.NoError(t, run(t, append(baseArgs, "--keep")...))
		assert.FileExists(t, resultFile)

		got, err := serializer.FromFile[ProcessResult](out)
		require.NoError(t, err)
		assert.Equal(t, header.KindStatistics, got.Kind)
		_, err = uuid.Parse(got.Metadata[header.MetadataRunID])
		assert.NoError(t, err, "run ID must be a UUID")
		assert.Equal(t, 2, got.Statistics.Findings)
		assert.Equal(t, 1, got.Statistics.Skipped)
		assert.Equal(t, 1, got.Statistics.BySeverity[report.SeverityHigh])
		assert.Equal(t, 1, got.Statistics.BySeverity[report.SeverityStyle])
		require.Len(t, got.Sources, 1)
		assert.Empty(t, got.Sources[0].Cleanup)
		require.Len(t, got.Sources[0].Findings, 2)
		assert.Len(t, got.Sources[0].Findings[0].ReportHash, 32)
	})

	t.Run("clean", func(t *testing.T) {
		require.NoError(t, run(t, baseArgs...))
		assert.NoFileExists(t, resultFile)

		got, err := serializer.FromFile[ProcessResult](out)
		require.NoError(t, err)
		require.Len(t, got.Sources, 1)
		assert.Equal(t, resulthandler.CleanupRemoved, got.Sources[0].Cleanup)
	})

	t.Run("missing result after failed run", func(t *testing.T) {
		args := append([]string{}, baseArgs...)
		args[len(args)-3] = "1" // --exit-code value
		require.NoError(t, run(t, args...))

		got, err := serializer.FromFile[ProcessResult](out)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Statistics.Findings)
		assert.Equal(t, 1, got.Statistics.AnalyzerFailed)
		assert.Equal(t, resulthandler.CleanupMissing, got.Sources[0].Cleanup)
	})
}

func TestProcessCmd_UnknownAnalyzerUsesNoop(t *testing.T) {
	ws := t.TempDir()
	act := action.BuildAction{Directory: "/src", OriginalCommand: "x", AnalyzerType: "custom", Source: "a.c"}
	resultFile := resulthandler.New(&act, ws).ResultFile()
	require.NoError(t, os.WriteFile(resultFile, []byte("not a findings document"), 0o600))
	out := filepath.Join(t.TempDir(), "result.json")

	require.NoError(t, run(t, "process",
		"-d", "/src", "-c", "x", "--analyzer", "custom", "-s", "a.c", "-w", ws,
		"--format", "json", "--output", out,
	))

	got, err := serializer.FromFile[ProcessResult](out)
	require.NoError(t, err)
	assert.True(t, got.Statistics.IsEmpty())
	assert.NoFileExists(t, resultFile)
}

func TestProcessCmd_MetricsFile(t *testing.T) {
	dir := t.TempDir()
	metrics := filepath.Join(dir, "resultctl.prom")

	require.NoError(t, run(t, "process",
		"-d", "/src", "-c", "gcc -c m.c", "--analyzer", "gcc", "-s", "m.c", "-w", dir,
		"--exit-code", "0",
		"--output", filepath.Join(dir, "out.yaml"),
		"--metrics-file", metrics,
	))

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), "analyzer_results_cleanup_total")
	assert.Contains(t, string(data), "analyzer_results_handle_duration_seconds")
}

func TestProcessCmd_InvalidOptions(t *testing.T) {
	base := []string{"process", "--analyzer", "gcc", "-s", "a.c", "-w", t.TempDir()}
	tests := []struct {
		name  string
		extra []string
	}{
		{"unknown report hash", []string{"--report-hash", "sha1"}},
		{"missing severity map", []string{"--severity-map", "/does/not/exist.yaml"}},
		{"missing skip list", []string{"--skip", "/does/not/exist"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, run(t, append(append([]string{}, base...), tt.extra...)...))
		})
	}
}
