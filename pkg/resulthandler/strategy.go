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

	"github.com/NVIDIA/analyzer-results/pkg/report"
)

// Strategy supplies the analyzer-specific part of result handling.
// Implementations read handler state through its accessors and must not
// retain the handler after returning.
type Strategy interface {
	// Postprocess adjusts analyzer output in place before it is handled,
	// for example by rewriting report identifiers.
	Postprocess(ctx context.Context, h *Handler) error

	// Handle converts the result file into findings, submits them to the
	// client and returns the resulting statistics.
	Handle(ctx context.Context, h *Handler, client report.Client) (*report.Statistics, error)
}

// NoopStrategy is used for analyzers without dedicated result handling.
// It touches neither the filesystem nor the client.
type NoopStrategy struct{}

// Postprocess does nothing.
func (NoopStrategy) Postprocess(context.Context, *Handler) error {
	return nil
}

// Handle returns empty statistics.
func (NoopStrategy) Handle(context.Context, *Handler, report.Client) (*report.Statistics, error) {
	return report.NewStatistics(), nil
}
