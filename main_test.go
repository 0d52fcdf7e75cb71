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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsDOTFormat(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"dot", true},
		{"DOT", true},
		{".Dot", true},
		{"svg", false},
		{"xdot", false},
		{"", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, isDOTFormat(tt.name), tt.name)
	}
}
