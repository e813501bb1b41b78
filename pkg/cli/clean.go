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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/analyzer-results/pkg/header"
	"github.com/NVIDIA/analyzer-results/pkg/resulthandler"
)

func cleanCmd() *cli.Command {
	return &cli.Command{
		Name:  "clean",
		Usage: "Remove the result file of a build action",
		Description: `Remove the result file of each analyzed source of a build action.

Removal is best effort: a missing file or a permission problem is reported
in the outcome (removed, missing, failed) and never fails the command.`,
		Flags: append(actionFlags(), outputFlag, formatFlag),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			actions, err := buildActionsFromCmd(cmd)
			if err != nil {
				return err
			}

			out := CleanupResult{
				Header:  newHeader(header.KindCleanupResult),
				Results: make([]CleanupEntry, 0, len(actions)),
			}
			workspace := cmd.String("workspace")
			for i := range actions {
				h := resulthandler.New(&actions[i], workspace)
				resultFile := h.ResultFile()
				out.Results = append(out.Results, CleanupEntry{
					Source:     h.AnalyzedSource(),
					ResultFile: resultFile,
					Outcome:    h.CleanResults(),
				})
			}

			if err := writeOutput(ctx, cmd, outFormat, out); err != nil {
				return fmt.Errorf("failed to write cleanup result: %w", err)
			}
			return nil
		},
	}
}
