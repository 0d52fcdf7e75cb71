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

// Package avl implements a self-balancing (AVL) binary search tree over
// totally ordered values.
//
// Every node caches the height of its subtree (a leaf has height 1, an absent
// child counts as 0). After each Insert or Remove the tree satisfies:
//
//   - ordering: an in-order walk yields a non-decreasing sequence
//   - balance: for every node |height(right) - height(left)| <= 1
//   - the cached height equals 1 + max(height(left), height(right))
//
// Equal values are routed right on insertion and kept as distinct nodes,
// unless the tree was built with WithDuplicates(DuplicatesReject).
//
// Insertion and removal are recursive descents that hand a possibly new
// subtree root back to the caller, which re-links it into its own slot.
// Nodes carry no parent pointer.
//
// Rebalancing uses the four classic rotations. With diff defined as
// height(right) - height(left):
//
//	diff == +2, right child diff >= 0   single left rotation
//	diff == +2, right child diff == -1  right-left double rotation
//	diff == -2, left child diff <= 0    single right rotation
//	diff == -2, left child diff == +1   left-right double rotation
//
// Removing a node with a left subtree promotes its in-order predecessor (the
// rightmost node of the left subtree); the predecessor's own ancestors are
// rebalanced while it is detached.
//
// CheckInvariant and Verify are diagnostics. Neither is called by the
// mutating operations.
//
// A Tree is not safe for concurrent use. Callers that share one across
// goroutines must serialise access themselves.
package avl
