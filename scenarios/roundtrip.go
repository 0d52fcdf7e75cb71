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
	"slices"

	"github.com/cybrota/sapling/avl"
)

var (
	roundTripInput = []int{50, 30, 60, 10, 70, 40, 50, 45, 0, 14, 18}
	roundTripOrder = []int{0, 10, 14, 18, 30, 40, 45, 50, 50, 60, 70}
)

// RoundTrip inserts a fixed sequence with a duplicate and expects the sorted
// multiset back
type RoundTrip struct{}

func (r *RoundTrip) Name() string { return "roundtrip" }

func (r *RoundTrip) Description() string {
	return "insert 50 30 60 10 70 40 50 45 0 14 18 and read them back in order"
}

func (r *RoundTrip) Priority() int { return 1 }

func (r *RoundTrip) Steps() int { return len(roundTripInput) }

func (r *RoundTrip) Run(tree *avl.Tree[int], obs Observer) (*Report, error) {
	rec := newRecorder(r.Name(), r.Steps(), tree, obs)
	for _, v := range roundTripInput {
		rec.insert(v)
	}

	report := rec.finish()
	if !slices.Equal(report.Final, roundTripOrder) {
		report.failf("in-order %v, want %v", report.Final, roundTripOrder)
	}
	return report, nil
}
