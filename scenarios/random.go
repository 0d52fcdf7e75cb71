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
	"math/rand"
	"slices"

	"github.com/cybrota/sapling/avl"
)

// Random is the classic driver: Count seeded inserts of rand%Modulo
type Random struct {
	Seed   int64
	Count  int
	Modulo int
}

func (r *Random) Name() string { return "random" }

func (r *Random) Description() string {
	return fmt.Sprintf("%d seeded inserts of rand%%%d (seed %d)", r.Count, r.Modulo, r.Seed)
}

func (r *Random) Priority() int { return 4 }

func (r *Random) Steps() int { return r.Count }

func (r *Random) Run(tree *avl.Tree[int], obs Observer) (*Report, error) {
	if r.Modulo <= 0 {
		return nil, fmt.Errorf("random modulo must be positive, got %d", r.Modulo)
	}

	rec := newRecorder(r.Name(), r.Steps(), tree, obs)
	rng := rand.New(rand.NewSource(r.Seed))
	inserted := make([]int, 0, r.Count)
	for i := 0; i < r.Count; i++ {
		v := rng.Intn(r.Modulo)
		inserted = append(inserted, v)
		rec.insert(v)
	}

	report := rec.finish()
	slices.Sort(inserted)
	if !slices.Equal(report.Final, inserted) {
		report.failf("in-order walk differs from the sorted inserts")
	}
	return report, nil
}

// Churn interleaves seeded inserts and removals and checks the height bound
// after every operation
type Churn struct {
	Seed int64
	Ops  int
}

func (c *Churn) Name() string { return "churn" }

func (c *Churn) Description() string {
	return fmt.Sprintf("%d seeded operations, two inserts per removal, height bound checked throughout", c.Ops)
}

func (c *Churn) Priority() int { return 5 }

func (c *Churn) Steps() int { return c.Ops }

func (c *Churn) Run(tree *avl.Tree[int], obs Observer) (*Report, error) {
	rec := newRecorder(c.Name(), c.Steps(), tree, obs)
	rng := rand.New(rand.NewSource(c.Seed))
	span := max(c.Ops/2, 16)

	var reference []int
	overBound := 0
	for i := 0; i < c.Ops; i++ {
		v := rng.Intn(span)
		if rng.Intn(3) == 0 {
			found := rec.remove(v)
			idx, ok := slices.BinarySearch(reference, v)
			if ok {
				reference = slices.Delete(reference, idx, idx+1)
			}
			if found != ok {
				rec.report.failf("remove %d reported found=%t, reference says %t", v, found, ok)
			}
		} else {
			rec.insert(v)
			idx, _ := slices.BinarySearch(reference, v)
			reference = slices.Insert(reference, idx, v)
		}
		if tree.Height() > avl.HeightBound(tree.Len()) {
			overBound++
		}
	}

	report := rec.finish()
	if overBound > 0 {
		report.failf("height bound exceeded after %d operations", overBound)
	}
	if !slices.Equal(report.Final, reference) {
		report.failf("in-order walk differs from the reference multiset")
	}
	return report, nil
}
