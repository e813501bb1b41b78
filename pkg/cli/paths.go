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

func pathsCmd() *cli.Command {
	return &cli.Command{
		Name:  "paths",
		Usage: "Print the artifact names of a build action",
		Description: `Derive the identity string, result file and fix-it file of each analyzed
source of a build action. Nothing is read from or written to the workspace.

# Examples

  resultctl paths --directory /src --command "gcc -c foo.c" --analyzer clangsa \
    --source foo.c --workspace /tmp/ws

  resultctl paths --action action.yaml --workspace /tmp/ws --format json`,
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

			out := ArtifactPaths{
				Header:    newHeader(header.KindArtifactPaths),
				Artifacts: make([]ArtifactPath, 0, len(actions)),
			}
			workspace := cmd.String("workspace")
			for i := range actions {
				h := resulthandler.New(&actions[i], workspace)
				out.Artifacts = append(out.Artifacts, ArtifactPath{
					Source:     h.AnalyzedSource(),
					Identity:   h.Identity(),
					ResultFile: h.ResultFile(),
					FixitFile:  h.FixitFile(),
				})
			}

			if err := writeOutput(ctx, cmd, outFormat, out); err != nil {
				return fmt.Errorf("failed to write artifact paths: %w", err)
			}
			return nil
		},
	}
}
