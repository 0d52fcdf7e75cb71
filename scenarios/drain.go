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
	"fmt"

	"github.com/cybrota/sapling/avl"
)

// Drain fills a tree with 0..Size-1 and removes the same values in
// ascending order, which keeps the tree leaning right the whole way down
type Drain struct {
	Size int
}

func (d *Drain) Name() string { return "drain" }

func (d *Drain) Description() string {
	return fmt.Sprintf("insert 0..%d, then remove every value in ascending order", d.Size-1)
}

func (d *Drain) Priority() int { return 3 }

func (d *Drain) Steps() int { return 2 * d.Size }

func (d *Drain) Run(tree *avl.Tree[int], obs Observer) (*Report, error) {
	if d.Size <= 0 {
		return nil, fmt.Errorf("drain size must be positive, got %d", d.Size)
	}

	rec := newRecorder(d.Name(), d.Steps(), tree, obs)
	for v := 0; v < d.Size; v++ {
		rec.insert(v)
	}
	for v := 0; v < d.Size; v++ {
		if !rec.remove(v) {
			rec.report.failf("value %d missing during drain", v)
		}
	}

	report := rec.finish()
	if !tree.IsEmpty() {
		report.failf("tree not empty after drain: %d nodes", report.Nodes)
	}
	return report, nil
}
