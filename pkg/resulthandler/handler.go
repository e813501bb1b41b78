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
	"context"
	"log/slog"
	"time"

	"github.com/NVIDIA/analyzer-results/pkg/action"
	"github.com/NVIDIA/analyzer-results/pkg/defaults"
	reserrors "github.com/NVIDIA/analyzer-results/pkg/errors"
	"github.com/NVIDIA/analyzer-results/pkg/report"
	"github.com/NVIDIA/analyzer-results/pkg/reporthash"
)

// Execution captures one analyzer invocation as recorded by the orchestrator.
type Execution struct {
	// Command is the analyzer command line.
	Command []string `json:"command,omitempty" yaml:"command,omitempty"`
	// Stdout is the captured standard output.
	Stdout string `json:"stdout,omitempty" yaml:"stdout,omitempty"`
	// Stderr is the captured standard error.
	Stderr string `json:"stderr,omitempty" yaml:"stderr,omitempty"`
	// ExitCode is the analyzer exit status.
	ExitCode int `json:"exitCode" yaml:"exitCode"`
}

// Failed reports whether the analyzer exited with a non-zero status.
func (e Execution) Failed() bool {
	return e.ExitCode != defaults.SuccessExitCode
}

// Handler owns the artifacts of one analyzer run over one source file of a
// build action. It drives the lifecycle
//
//	created -> postprocessed -> handled -> cleaned
//
// where cleanup is allowed from any state. A Handler has a single owner and
// is not safe for concurrent use; distinct handlers may run concurrently and
// share a report.Client.
type Handler struct {
	act       *action.BuildAction
	workspace string
	source    string
	artifacts *Artifacts

	strategy       Strategy
	registry       *Registry
	severityMap    report.SeverityMap
	skipList       report.SkipList
	reportHashType reporthash.Type

	execution Execution
	state     State
	logger    *slog.Logger
}

// New creates a handler for the given build action writing its artifacts
// under workspace. The action must not be nil; the handler reads it but
// never modifies it.
func New(act *action.BuildAction, workspace string, opts ...Option) *Handler {
	h := &Handler{
		act:            act,
		workspace:      workspace,
		reportHashType: reporthash.ContextSensitive,
		execution:      Execution{ExitCode: defaults.FailureExitCode},
		state:          StateCreated,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.source == "" {
		h.source = act.Source
	}
	if h.strategy == nil {
		h.strategy = h.registry.Lookup(act.AnalyzerType)
	}

	h.logger = h.logger.With(
		"analyzer", act.AnalyzerType.String(),
		"source", h.source,
	)
	h.artifacts = NewArtifacts(act, workspace, h.source, h.logger)

	return h
}

// Action returns the build action the handler was created for.
func (h *Handler) Action() *action.BuildAction { return h.act }

// Workspace returns the directory holding the analyzer outputs.
func (h *Handler) Workspace() string { return h.workspace }

// AnalyzedSource returns the source file this handler covers.
func (h *Handler) AnalyzedSource() string { return h.source }

// SeverityMap returns the configured checker severities, possibly nil.
func (h *Handler) SeverityMap() report.SeverityMap { return h.severityMap }

// SkipList returns the configured skip list, possibly nil.
func (h *Handler) SkipList() report.SkipList { return h.skipList }

// ReportHashType returns the configured report identifier type.
func (h *Handler) ReportHashType() reporthash.Type { return h.reportHashType }

// Execution returns the recorded analyzer invocation.
func (h *Handler) Execution() Execution { return h.execution }

// State returns the current lifecycle state.
func (h *Handler) State() State { return h.state }

// Logger returns the handler's logger, annotated with analyzer and source.
func (h *Handler) Logger() *slog.Logger { return h.logger }

// Strategy returns the analyzer-specific strategy in use.
func (h *Handler) Strategy() Strategy { return h.strategy }

// Identity returns the name shared by all artifacts of this handler.
func (h *Handler) Identity() string { return h.artifacts.Identity() }

// ResultFile returns the path the analyzer writes its structured output to.
func (h *Handler) ResultFile() string { return h.artifacts.ResultFile() }

// FixitFile returns the path the analyzer writes fix-it replacements to.
func (h *Handler) FixitFile() string { return h.artifacts.FixitFile() }

// RecordExecution stores the analyzer invocation. Until it is called the
// handler assumes the analyzer failed.
func (h *Handler) RecordExecution(e Execution) {
	h.execution = e
}

// Postprocess runs the strategy's postprocess hook once. Calling it again
// before Handle is a no-op.
func (h *Handler) Postprocess(ctx context.Context) error {
	if h.state == StatePostprocessed {
		return nil
	}
	if err := Transition(h.state, StatePostprocessed); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := h.strategy.Postprocess(ctx, h); err != nil {
		return reserrors.WrapWithContext(reserrors.ErrCodeInternal,
			"failed to postprocess analyzer results", err,
			map[string]any{"resultFile": h.ResultFile()})
	}

	h.state = StatePostprocessed
	h.logger.Debug("postprocessed analyzer results")
	return nil
}

// Handle runs the strategy's handle hook, submitting findings to client.
// The client is passed through as given; strategies that submit findings
// validate it.
// It must follow Postprocess and runs at most once, whether or not the
// strategy succeeds.
func (h *Handler) Handle(ctx context.Context, client report.Client) (*report.Statistics, error) {
	if err := Transition(h.state, StateHandled); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h.state = StateHandled
	analyzer := h.act.AnalyzerType.String()

	start := time.Now()
	stats, err := h.strategy.Handle(ctx, h, client)
	handleDuration.WithLabelValues(analyzer).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, reserrors.WrapWithContext(reserrors.ErrCodeInternal,
			"failed to handle analyzer results", err,
			map[string]any{"resultFile": h.ResultFile()})
	}

	if stats == nil {
		stats = report.NewStatistics()
	}
	findingsSubmitted.WithLabelValues(analyzer).Add(float64(stats.Findings))
	findingsSkipped.WithLabelValues(analyzer).Add(float64(stats.Skipped))

	h.logger.Debug("handled analyzer results",
		"findings", stats.Findings,
		"skipped", stats.Skipped,
		"duration", time.Since(start),
	)
	return stats, nil
}

// CleanResults removes the result file if its path was ever computed.
// Removal problems are logged at debug level and never returned. It is valid
// in every state and idempotent.
func (h *Handler) CleanResults() CleanupOutcome {
	outcome := h.artifacts.Clean()
	cleanupOutcomes.WithLabelValues(outcome.String()).Inc()
	h.state = StateCleaned
	return outcome
}
