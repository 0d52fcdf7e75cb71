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

package avl

import (
	"fmt"
	"strings"
)

// DuplicatePolicy decides what Insert does with a value equal to one
// already stored.
type DuplicatePolicy int

const (
	// DuplicatesRight routes equal values right and keeps each as its own node.
	DuplicatesRight DuplicatePolicy = iota
	// DuplicatesReject leaves the tree untouched when the value is present.
	DuplicatesReject
)

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicatesRight:
		return "right"
	case DuplicatesReject:
		return "reject"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy accepts the names produced by DuplicatePolicy.String.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "right":
		return DuplicatesRight, nil
	case "reject":
		return DuplicatesReject, nil
	}
	return DuplicatesRight, fmt.Errorf("unknown duplicate policy %q (want right or reject)", s)
}

type options struct {
	duplicates DuplicatePolicy
}

// Option configures a Tree at construction time.
type Option func(*options)

// WithDuplicates sets the duplicate policy. The default is DuplicatesRight.
func WithDuplicates(p DuplicatePolicy) Option {
	return func(o *options) {
		o.duplicates = p
	}
}
