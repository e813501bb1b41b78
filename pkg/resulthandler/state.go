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

	reserrors "github.com/NVIDIA/analyzer-results/pkg/errors"
)

// State is the lifecycle position of a Handler.
type State string

// Handler states, in lifecycle order.
const (
	StateCreated       State = "created"
	StatePostprocessed State = "postprocessed"
	StateHandled       State = "handled"
	StateCleaned       State = "cleaned"
)

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}

// IsTerminal reports whether no further hooks may run.
func (s State) IsTerminal() bool {
	return s == StateCleaned
}

// allowedTransitions lists the forward moves out of each state. Cleanup is
// reachable from every state, including Cleaned itself.
var allowedTransitions = map[State][]State{
	StateCreated:       {StatePostprocessed, StateCleaned},
	StatePostprocessed: {StatePostprocessed, StateHandled, StateCleaned},
	StateHandled:       {StateCleaned},
	StateCleaned:       {StateCleaned},
}

func isAllowedTransition(from, to State) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates a move between states. Illegal moves return a
// structured error with code FAILED_PRECONDITION.
func Transition(from, to State) error {
	if isAllowedTransition(from, to) {
		return nil
	}
	return reserrors.NewWithContext(reserrors.ErrCodeFailedPrecondition,
		fmt.Sprintf("invalid handler state transition: %s -> %s", from, to),
		map[string]any{
			"from": from.String(),
			"to":   to.String(),
		})
}
