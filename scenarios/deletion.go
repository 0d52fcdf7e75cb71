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
	"math/rand"

	"github.com/cybrota/sapling/avl"
)

const (
	deletionInserts = 100
	deletionModulo  = 500
)

var deletionTargets = []int{250, 239, 254, 229, 236, 226, 211, 229, 198, 178, 263, 190}

// Deletion seeds a tree with pseudo-random values and removes a fixed list,
// some of which may be absent
type Deletion struct {
	Seed int64
}

func (d *Deletion) Name() string { return "deletion" }

func (d *Deletion) Description() string {
	return "100 seeded inserts of rand%500, then remove 250 239 254 229 236 226 211 229 198 178 263 190"
}

func (d *Deletion) Priority() int { return 2 }

func (d *Deletion) Steps() int { return deletionInserts + len(deletionTargets) }

func (d *Deletion) Run(tree *avl.Tree[int], obs Observer) (*Report, error) {
	rec := newRecorder(d.Name(), d.Steps(), tree, obs)
	rng := rand.New(rand.NewSource(d.Seed))

	counts := make(map[int]int)
	for i := 0; i < deletionInserts; i++ {
		v := rng.Intn(deletionModulo)
		counts[v]++
		rec.insert(v)
	}

	for _, v := range deletionTargets {
		found := rec.remove(v)
		if found != (counts[v] > 0) {
			rec.report.failf("remove %d reported found=%t with %d copies stored", v, found, counts[v])
		}
		if found {
			counts[v]--
		}
	}

	report := rec.finish()
	want := 0
	for _, c := range counts {
		want += c
	}
	if report.Nodes != want {
		report.failf("%d nodes left, want %d", report.Nodes, want)
	}
	for _, v := range deletionTargets {
		if got := countOf(report.Final, v); got != counts[v] {
			report.failf("value %d appears %d times, want %d", v, got, counts[v])
		}
	}
	return report, nil
}

func countOf(values []int, v int) int {
	n := 0
	for _, x := range values {
		if x == v {
			n++
		}
	}
	return n
}
