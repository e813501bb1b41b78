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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/analyzer-results/pkg/action"
	"github.com/NVIDIA/analyzer-results/pkg/serializer"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("output format (%v)", serializer.SupportedFormats()),
		Value:   string(serializer.FormatYAML),
	}
)

// actionFlags describe the build action a command operates on. Either
// --action or the individual fields must be given.
func actionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "action",
			Aliases: []string{"a"},
			Usage:   "build action file (YAML or JSON with directory, command, analyzer, source)",
		},
		&cli.StringFlag{
			Name:    "directory",
			Aliases: []string{"d"},
			Usage:   "working directory of the build command",
		},
		&cli.StringFlag{
			Name:    "command",
			Aliases: []string{"c"},
			Usage:   "original build command text",
		},
		&cli.StringFlag{
			Name:  "analyzer",
			Usage: fmt.Sprintf("analyzer type (e.g. %v)", action.KnownTypes()),
		},
		&cli.StringSliceFlag{
			Name:    "source",
			Aliases: []string{"s"},
			Usage:   "analyzed source file, absolute or relative to --directory (can be repeated)",
		},
		&cli.StringFlag{
			Name:     "workspace",
			Aliases:  []string{"w"},
			Usage:    "directory holding analyzer outputs",
			Required: true,
		},
	}
}

// parseOutputFormat returns the validated --format value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// buildActionsFromCmd returns one build action per analyzed source file.
// Flags override the fields loaded from --action.
func buildActionsFromCmd(cmd *cli.Command) ([]action.BuildAction, error) {
	base := action.BuildAction{}

	if path := cmd.String("action"); path != "" {
		loaded, err := serializer.FromFile[action.BuildAction](path)
		if err != nil {
			return nil, fmt.Errorf("failed to load build action from %q: %w", path, err)
		}
		base = *loaded
	}

	if v := cmd.String("directory"); v != "" {
		base.Directory = v
	}
	if v := cmd.String("command"); v != "" {
		base.OriginalCommand = v
	}
	if v := cmd.String("analyzer"); v != "" {
		t, err := action.ParseAnalyzerType(v)
		if err != nil {
			return nil, fmt.Errorf("invalid analyzer: %w", err)
		}
		base.AnalyzerType = t
	}

	sources := cmd.StringSlice("source")
	if len(sources) == 0 {
		sources = []string{base.Source}
	}

	actions := make([]action.BuildAction, 0, len(sources))
	for _, src := range sources {
		a := base.WithSource(src)
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("invalid build action: %w", err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// writeOutput serializes data to --output in --format.
func writeOutput(ctx context.Context, cmd *cli.Command, format serializer.Format, data any) error {
	w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()
	return w.Serialize(ctx, data)
}
