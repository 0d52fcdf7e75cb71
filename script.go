// Copyright 2025 Naren Yellavula
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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"
)

// ScriptError reports the line a script stopped at
type ScriptError struct {
	Line int
	Cmd  string
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Cmd, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// splitCommand splits a command line into words
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	return args, nil
}

// stripComment drops a '#' comment that starts the line or follows whitespace
func stripComment(line string) string {
	for i, r := range line {
		if r != '#' {
			continue
		}
		if i == 0 || line[i-1] == ' ' || line[i-1] == '\t' {
			return line[:i]
		}
	}
	return line
}

// RunScript executes r line by line against s, writing each command's output
// to w. It stops at the first failing line.
func RunScript(r io.Reader, s *Session, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(stripComment(scanner.Text()))
		if line == "" {
			continue
		}

		out, err := s.Exec(line)
		if err != nil {
			return &ScriptError{Line: lineNo, Cmd: line, Err: err}
		}
		if out != "" {
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	return nil
}

// runScriptFile runs path, or standard input when path is "-"
func runScriptFile(path string, s *Session, w io.Writer) error {
	if path == "-" {
		return RunScript(os.Stdin, s, w)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()
	return RunScript(f, s, w)
}
