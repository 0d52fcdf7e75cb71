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

package scenarios

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cybrota/sapling/avl"
)

// Scenario is a scripted sequence of tree operations with known expectations
type Scenario interface {
	Name() string
	Description() string
	Priority() int // Lower number = listed first
	Steps() int    // Number of Observer callbacks Run will make
	Run(tree *avl.Tree[int], obs Observer) (*Report, error)
}

// Step describes one completed operation
type Step struct {
	Index      int // 1-based
	Total      int
	Op         string
	Value      int
	Violations int // CheckInvariant() right after the operation
}

// Observer is called after every operation of a scenario
type Observer func(Step)

// Report is the outcome of a scenario run
type Report struct {
	Name          string
	Steps         int
	FailedSteps   int // steps after which CheckInvariant was non-zero
	MaxViolations int
	Final         []int
	Nodes         int
	Height        int
	Stats         avl.Stats
	Problems      []string
}

// Passed reports whether the run met every expectation
func (r *Report) Passed() bool {
	return r.FailedSteps == 0 && len(r.Problems) == 0
}

// Err folds the failed expectations into one error, nil when the run passed
func (r *Report) Err() error {
	if r.Passed() {
		return nil
	}
	var msgs []string
	if r.FailedSteps > 0 {
		msgs = append(msgs, fmt.Sprintf("%d of %d steps left unbalanced nodes (max %d)", r.FailedSteps, r.Steps, r.MaxViolations))
	}
	msgs = append(msgs, r.Problems...)
	return errors.New(r.Name + ": " + strings.Join(msgs, "; "))
}

func (r *Report) failf(format string, args ...any) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

// recorder applies operations to a tree and checks the invariant after each
type recorder struct {
	tree   *avl.Tree[int]
	obs    Observer
	total  int
	report *Report
}

func newRecorder(name string, total int, tree *avl.Tree[int], obs Observer) *recorder {
	return &recorder{
		tree:   tree,
		obs:    obs,
		total:  total,
		report: &Report{Name: name},
	}
}

func (r *recorder) insert(v int) {
	r.tree.Insert(v)
	r.after("insert", v)
}

func (r *recorder) remove(v int) bool {
	found := r.tree.Remove(v)
	r.after("remove", v)
	return found
}

func (r *recorder) after(op string, v int) {
	r.report.Steps++
	violations := r.tree.CheckInvariant()
	if violations > 0 {
		r.report.FailedSteps++
		r.report.MaxViolations = max(r.report.MaxViolations, violations)
	}
	if r.obs != nil {
		r.obs(Step{
			Index:      r.report.Steps,
			Total:      r.total,
			Op:         op,
			Value:      v,
			Violations: violations,
		})
	}
}

// finish snapshots the final tree and runs the full structural audit
func (r *recorder) finish() *Report {
	r.report.Final = r.tree.InOrder()
	r.report.Nodes = r.tree.Len()
	r.report.Height = r.tree.Height()
	r.report.Stats = r.tree.Stats()

	if err := r.tree.Verify(); err != nil {
		r.report.failf("%v", err)
	}
	if bound := avl.HeightBound(r.report.Nodes); r.report.Height > bound {
		r.report.failf("height %d exceeds bound %d for %d nodes", r.report.Height, bound, r.report.Nodes)
	}
	return r.report
}
