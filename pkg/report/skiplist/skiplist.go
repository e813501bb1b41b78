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

// Package skiplist implements the file filter applied to findings before they
// are submitted.
//
// A skip list is a text file with one rule per line:
//
//	# comments and blank lines are ignored
//	-*/third_party/*
//	+*/src/core/*
//	-*.pb.cc
//
// "-" skips matching paths, "+" keeps them. Rules are evaluated in order and
// the first match wins; paths matching no rule are kept. Patterns are globs
// in which "*" also matches path separators. Patterns that start with neither
// "/" nor "*" are matched anywhere in the path.
package skiplist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Rule is a single skip-list line.
type Rule struct {
	Pattern string
	Skip    bool
	re      *regexp.Regexp
}

// List is an ordered set of rules. The zero value skips nothing.
type List struct {
	rules []Rule
}

// Parse reads rules from r.
func Parse(r io.Reader) (*List, error) {
	l := &List{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var skip bool
		switch line[0] {
		case '-':
			skip = true
		case '+':
			skip = false
		default:
			return nil, fmt.Errorf("line %d: rule must start with '+' or '-': %q", lineNo, line)
		}

		pattern := strings.TrimSpace(line[1:])
		if pattern == "" {
			return nil, fmt.Errorf("line %d: empty pattern", lineNo)
		}
		re, err := compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		l.rules = append(l.rules, Rule{Pattern: pattern, Skip: skip, re: re})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skip list: %w", err)
	}
	return l, nil
}

// Load reads rules from a file.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open skip list: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Rules returns the parsed rules in evaluation order.
func (l *List) Rules() []Rule {
	if l == nil {
		return nil
	}
	out := make([]Rule, len(l.rules))
	copy(out, l.rules)
	return out
}

// ShouldSkip reports whether findings in path should be dropped.
func (l *List) ShouldSkip(path string) bool {
	if l == nil {
		return false
	}
	for _, r := range l.rules {
		if r.re.MatchString(path) {
			return r.Skip
		}
	}
	return false
}

// compile translates a glob into an anchored regular expression.
func compile(pattern string) (*regexp.Regexp, error) {
	if !strings.HasPrefix(pattern, "/") && !strings.HasPrefix(pattern, "*") {
		pattern = "*" + pattern
	}

	var b strings.Builder
	b.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}
