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

package findings

import (
	"github.com/NVIDIA/analyzer-results/pkg/action"
	"github.com/NVIDIA/analyzer-results/pkg/resulthandler"
)

// Types lists the analyzer types whose results this strategy handles.
var Types = []action.AnalyzerType{
	action.AnalyzerClangTidy,
	action.AnalyzerCppcheck,
	action.AnalyzerGCC,
	action.AnalyzerInfer,
}

func init() {
	for _, t := range Types {
		resulthandler.MustRegister(t, func() resulthandler.Strategy { return New() })
	}
}
