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
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/analyzer-results/pkg/action"
	"github.com/NVIDIA/analyzer-results/pkg/defaults"
	"github.com/NVIDIA/analyzer-results/pkg/header"
	"github.com/NVIDIA/analyzer-results/pkg/report"
	"github.com/NVIDIA/analyzer-results/pkg/report/skiplist"
	"github.com/NVIDIA/analyzer-results/pkg/reporthash"
	"github.com/NVIDIA/analyzer-results/pkg/resulthandler"

	// register result handling strategies
	_ "github.com/NVIDIA/analyzer-results/pkg/resulthandler/findings"
)

// processOptions holds the parsed process command inputs.
type processOptions struct {
	actions        []action.BuildAction
	workspace      string
	severityMap    report.SeverityMap
	skipList       report.SkipList
	reportHashType reporthash.Type
	exitCode       int
	keep           bool
	metricsFile    string
}

func parseProcessCmdOptions(cmd *cli.Command) (*processOptions, error) {
	actions, err := buildActionsFromCmd(cmd)
	if err != nil {
		return nil, err
	}

	opts := &processOptions{
		actions:     actions,
		workspace:   cmd.String("workspace"),
		exitCode:    cmd.Int("exit-code"),
		keep:        cmd.Bool("keep"),
		metricsFile: cmd.String("metrics-file"),
	}

	if path := cmd.String("severity-map"); path != "" {
		opts.severityMap, err = report.LoadSeverityMap(path)
		if err != nil {
			return nil, err
		}
	}

	if path := cmd.String("skip"); path != "" {
		list, loadErr := skiplist.Load(path)
		if loadErr != nil {
			return nil, loadErr
		}
		opts.skipList = list
	}

	opts.reportHashType, err = reporthash.ParseType(cmd.String("report-hash"))
	if err != nil {
		return nil, err
	}

	return opts, nil
}

func processCmd() *cli.Command {
	return &cli.Command{
		Name:  "process",
		Usage: "Postprocess, handle and clean analyzer results",
		Description: `Drive the result handling lifecycle for each analyzed source of a build
action: postprocess the result file, submit its findings, then remove it.

Findings are filtered by the skip list and assigned severities from the
severity map. Analyzer types without a dedicated strategy produce empty
statistics. Sources are processed one after another.

# Examples

  resultctl process --action action.yaml --workspace /tmp/ws \
    --severity-map severities.yaml --skip skipfile --report-hash context-free

  resultctl process -d /src -c "g++ -c a.cpp b.cpp" --analyzer clang-tidy \
    -s a.cpp -s b.cpp -w /tmp/ws --exit-code 0 --format table`,
		Flags: append(actionFlags(),
			&cli.StringFlag{
				Name:  "severity-map",
				Usage: "YAML or JSON file mapping checker names to severities",
			},
			&cli.StringFlag{
				Name:  "skip",
				Usage: "skip list file with +pattern / -pattern lines",
			},
			&cli.StringFlag{
				Name:  "report-hash",
				Usage: fmt.Sprintf("report hash type (%v)", reporthash.SupportedTypes()),
				Value: reporthash.ContextSensitive.String(),
			},
			&cli.IntFlag{
				Name:  "exit-code",
				Usage: "exit status of the analyzer run",
				Value: defaults.FailureExitCode,
			},
			&cli.BoolFlag{
				Name:  "keep",
				Usage: "keep result files instead of removing them",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "write Prometheus metrics in text format to this file (for the node exporter textfile collector)",
			},
			outputFlag,
			formatFlag,
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			opts, err := parseProcessCmdOptions(cmd)
			if err != nil {
				return fmt.Errorf("error parsing process options: %w", err)
			}

			out, err := process(ctx, opts)
			if err != nil {
				return err
			}

			if err := writeOutput(ctx, cmd, outFormat, out); err != nil {
				return fmt.Errorf("failed to write process result: %w", err)
			}

			if opts.metricsFile != "" {
				if err := prometheus.WriteToTextfile(opts.metricsFile, prometheus.DefaultGatherer); err != nil {
					return fmt.Errorf("failed to write metrics to %q: %w", opts.metricsFile, err)
				}
			}
			return nil
		},
	}
}

// process runs one handler per build action against an in-memory client.
func process(ctx context.Context, opts *processOptions) (*ProcessResult, error) {
	registry := resulthandler.NewFromGlobal()
	client := report.NewMemoryClient()
	runID := uuid.New().String()
	logger := slog.Default().With("runId", runID)

	out := &ProcessResult{
		Header:     newHeader(header.KindStatistics),
		Statistics: report.NewStatistics(),
		Sources:    make([]SourceResult, 0, len(opts.actions)),
	}
	out.SetMetadata(header.MetadataRunID, runID)

	for i := range opts.actions {
		h := resulthandler.New(&opts.actions[i], opts.workspace,
			resulthandler.WithRegistry(registry),
			resulthandler.WithSeverityMap(opts.severityMap),
			resulthandler.WithSkipList(opts.skipList),
			resulthandler.WithReportHashType(opts.reportHashType),
			resulthandler.WithLogger(logger),
		)
		h.RecordExecution(resulthandler.Execution{ExitCode: opts.exitCode})

		stats, err := runLifecycle(ctx, h, client)
		var cleanup resulthandler.CleanupOutcome
		if !opts.keep {
			cleanup = h.CleanResults()
		}
		if err != nil {
			return nil, fmt.Errorf("failed to process %s: %w", h.AnalyzedSource(), err)
		}

		out.Statistics.Merge(stats)
		out.Sources = append(out.Sources, SourceResult{
			Source:     h.AnalyzedSource(),
			ResultFile: h.ResultFile(),
			Statistics: stats,
			Findings:   client.Findings(h.AnalyzedSource()),
			Cleanup:    cleanup,
		})

		logger.Debug("processed analyzer results",
			"source", h.AnalyzedSource(),
			"findings", stats.Findings,
			"cleanup", cleanup.String())
	}

	return out, nil
}

func runLifecycle(ctx context.Context, h *resulthandler.Handler, client report.Client) (*report.Statistics, error) {
	if err := h.Postprocess(ctx); err != nil {
		return nil, err
	}
	return h.Handle(ctx, client)
}
