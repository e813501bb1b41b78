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

package report

import (
	"context"
	"sync"
)

// Client is the sink that ingests findings produced for one analyzed source.
// Result handlers running concurrently share one Client, so implementations
// must be safe for concurrent use.
type Client interface {
	Submit(ctx context.Context, source string, findings []Finding) error
}

// ClientFunc adapts a function to the Client interface.
type ClientFunc func(ctx context.Context, source string, findings []Finding) error

// Submit calls f.
func (f ClientFunc) Submit(ctx context.Context, source string, findings []Finding) error {
	return f(ctx, source, findings)
}

// MemoryClient keeps submitted findings in memory, keyed by source file.
// It is safe for concurrent use.
type MemoryClient struct {
	mu       sync.Mutex
	findings map[string][]Finding
}

// NewMemoryClient creates an empty MemoryClient.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		findings: make(map[string][]Finding),
	}
}

// Submit stores a copy of findings under source.
func (c *MemoryClient) Submit(ctx context.Context, source string, findings []Finding) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.findings[source] = append(c.findings[source], findings...)
	return nil
}

// Findings returns a copy of the findings submitted for source.
func (c *MemoryClient) Findings(source string) []Finding {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Finding, len(c.findings[source]))
	copy(out, c.findings[source])
	return out
}

// Sources returns the number of distinct sources with submitted findings.
func (c *MemoryClient) Sources() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.findings)
}

// Total returns the number of findings submitted across all sources.
func (c *MemoryClient) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, f := range c.findings {
		n += len(f)
	}
	return n
}
