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
	"testing"

	reserrors "github.com/NVIDIA/analyzer-results/pkg/errors"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from    State
		to      State
		allowed bool
	}{
		{StateCreated, StatePostprocessed, true},
		{StateCreated, StateHandled, false},
		{StateCreated, StateCleaned, true},
		{StatePostprocessed, StatePostprocessed, true},
		{StatePostprocessed, StateHandled, true},
		{StatePostprocessed, StateCleaned, true},
		{StatePostprocessed, StateCreated, false},
		{StateHandled, StateHandled, false},
		{StateHandled, StatePostprocessed, false},
		{StateHandled, StateCleaned, true},
		{StateCleaned, StateCleaned, true},
		{StateCleaned, StatePostprocessed, false},
		{StateCleaned, StateHandled, false},
		{StateCleaned, StateCreated, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			err := Transition(tt.from, tt.to)
			if tt.allowed && err != nil {
				t.Fatalf("Transition() unexpected error: %v", err)
			}
			if !tt.allowed {
				if err == nil {
					t.Fatal("Transition() expected error, got nil")
				}
				if !reserrors.HasCode(err, reserrors.ErrCodeFailedPrecondition) {
					t.Errorf("Transition() error code = %v, want %s", err, reserrors.ErrCodeFailedPrecondition)
				}
			}
		})
	}
}

func TestState_IsTerminal(t *testing.T) {
	for _, s := range []State{StateCreated, StatePostprocessed, StateHandled} {
		if s.IsTerminal() {
			t.Errorf("%s.IsTerminal() = true, want false", s)
		}
	}
	if !StateCleaned.IsTerminal() {
		t.Error("cleaned.IsTerminal() = false, want true")
	}
}
