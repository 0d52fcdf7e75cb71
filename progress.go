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
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/sapling/scenarios"
)

func newScenarioBar(name string, steps int) *progressbar.ProgressBar {
	return progressbar.NewOptions(steps,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(fmt.Sprintf("🌱 %-10s", name)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionClearOnFinish(),
	)
}

// runScenarios runs the named scenarios (all of them when names is empty) and
// prints one verdict per scenario. It returns the number that failed.
func runScenarios(m *scenarios.Manager, names []string, showProgress bool, w io.Writer) (int, error) {
	var selected []scenarios.Scenario
	if len(names) == 0 {
		selected = m.List()
	} else {
		for _, name := range names {
			s, err := m.Get(name)
			if err != nil {
				return 0, err
			}
			selected = append(selected, s)
		}
	}

	failed := 0
	for _, s := range selected {
		var (
			obs scenarios.Observer
			bar *progressbar.ProgressBar
		)
		if showProgress {
			bar = newScenarioBar(s.Name(), s.Steps())
			obs = func(scenarios.Step) {
				bar.Add(1)
			}
		}

		report, err := m.Run(s.Name(), obs)
		if bar != nil {
			bar.Finish()
		}
		if err != nil {
			return failed, err
		}

		if err := report.Err(); err != nil {
			failed++
			fmt.Fprintf(w, "%s✗ %s%s\n", Error, err, Reset)
			continue
		}
		fmt.Fprintf(w, "%s✓ %-10s%s %d steps, %d nodes, height %d, %d rotations\n",
			Green, report.Name, Reset, report.Steps, report.Nodes, report.Height, report.Stats.Rotations.Total())
	}
	return failed, nil
}

func listScenarios(m *scenarios.Manager, w io.Writer) {
	for _, s := range m.List() {
		fmt.Fprintf(w, "%s%-10s%s %5d steps  %s\n", Info, s.Name(), Reset, s.Steps(), s.Description())
	}
}
