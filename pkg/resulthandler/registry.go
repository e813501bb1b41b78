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
	"fmt"
	"slices"
	"sync"

	"github.com/NVIDIA/analyzer-results/pkg/action"
)

// StrategyFactory creates a Strategy. Strategy packages register one per
// analyzer type from init().
type StrategyFactory func() Strategy

// Global registry for strategy factories.
var (
	globalFactories = make(map[action.AnalyzerType]StrategyFactory)
	globalMu        sync.RWMutex
)

// Register registers a strategy factory globally.
// Returns an error if the analyzer type already has one.
func Register(t action.AnalyzerType, factory StrategyFactory) error {
	if factory == nil {
		return fmt.Errorf("strategy factory for %s is nil", t)
	}

	globalMu.Lock()
	defer globalMu.Unlock()

	if _, exists := globalFactories[t]; exists {
		return fmt.Errorf("strategy for analyzer %s already registered", t)
	}

	globalFactories[t] = factory
	return nil
}

// MustRegister is like Register but panics on error. Use it in init().
func MustRegister(t action.AnalyzerType, factory StrategyFactory) {
	if err := Register(t, factory); err != nil {
		panic(err)
	}
}

// NewFromGlobal creates a Registry holding one strategy per globally
// registered factory.
func NewFromGlobal() *Registry {
	globalMu.RLock()
	defer globalMu.RUnlock()

	reg := NewRegistry()
	for t, factory := range globalFactories {
		reg.Register(t, factory())
	}
	return reg
}

// GlobalTypes returns the globally registered analyzer types, sorted.
func GlobalTypes() []action.AnalyzerType {
	globalMu.RLock()
	defer globalMu.RUnlock()

	types := make([]action.AnalyzerType, 0, len(globalFactories))
	for t := range globalFactories {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Registry maps analyzer types to strategies with thread-safe operations.
type Registry struct {
	strategies map[action.AnalyzerType]Strategy
	mu         sync.RWMutex
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		strategies: make(map[action.AnalyzerType]Strategy),
	}
}

// Register adds or replaces the strategy for an analyzer type.
func (r *Registry) Register(t action.AnalyzerType, s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies[t] = s
}

// Get retrieves the strategy for an analyzer type.
func (r *Registry) Get(t action.AnalyzerType) (Strategy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.strategies[t]
	return s, ok
}

// Lookup returns the strategy for an analyzer type, or NoopStrategy when
// none is registered. A nil registry always yields NoopStrategy.
func (r *Registry) Lookup(t action.AnalyzerType) Strategy {
	if r == nil {
		return NoopStrategy{}
	}
	if s, ok := r.Get(t); ok {
		return s
	}
	return NoopStrategy{}
}

// Types returns the registered analyzer types, sorted.
func (r *Registry) Types() []action.AnalyzerType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]action.AnalyzerType, 0, len(r.strategies))
	for t := range r.strategies {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Count returns the number of registered strategies.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.strategies)
}
