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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybrota/sapling/render"
)

func newTestSession(t *testing.T, mutate func(*Config)) *Session {
	t.Helper()
	config := defaultConfig
	config.Render.Plain = true
	if mutate != nil {
		mutate(&config)
	}
	session, err := NewSession(&config)
	require.NoError(t, err)
	return session
}

func mustExec(t *testing.T, s *Session, line string) string {
	t.Helper()
	out, err := s.Exec(line)
	require.NoError(t, err, line)
	return out
}

func TestSessionCommands(t *testing.T) {
	s := newTestSession(t, nil)

	require.Equal(t, "inserted 5\ninserted 3\ninserted 8", mustExec(t, s, "insert 5 3 8"))
	require.Equal(t, "inserted 1\ninserted 2", mustExec(t, s, "i 1,2"))
	require.Equal(t, "[1 2 3 5 8]", mustExec(t, s, "inorder"))
	require.Equal(t, "3: present\n4: absent", mustExec(t, s, "has 3 4"))
	require.Equal(t, "removed 3\nabsent 42", mustExec(t, s, "rm 3 42"))
	require.Equal(t, "[1 2 5 8]", mustExec(t, s, "list"))
	require.Equal(t, "ok: 0 unbalanced nodes", mustExec(t, s, "check"))
	require.Equal(t, "nodes=4 height=3 bound=4 rotations L=0 R=0 RL=0 LR=1", mustExec(t, s, "stats"))
	require.Equal(t, "0: 5\n1: 2 8\n2: 1", mustExec(t, s, "levels"))

	require.Equal(t, "cleared", mustExec(t, s, "clear"))
	require.Equal(t, "[]", mustExec(t, s, "inorder"))
	require.Equal(t, "5: absent", mustExec(t, s, "has 5"))
}

func TestSessionShowAndDot(t *testing.T) {
	s := newTestSession(t, nil)
	mustExec(t, s, "insert 2 1 3")

	want := render.Sideways[int](s.Tree(), render.TextOptions{Plain: true})
	require.Equal(t, strings.TrimSuffix(want, "\n"), mustExec(t, s, "show"))

	dot := mustExec(t, s, "dot")
	require.True(t, strings.HasPrefix(dot, "digraph "+render.DefaultGraphName+" {"))
	require.True(t, strings.HasSuffix(dot, "}"))
}

func TestSessionDuplicatePolicy(t *testing.T) {
	right := newTestSession(t, nil)
	require.Equal(t, "inserted 5\ninserted 5", mustExec(t, right, "insert 5 5"))
	require.Equal(t, "removed 5", mustExec(t, right, "remove 5"))
	require.Equal(t, "5: present", mustExec(t, right, "has 5"))

	reject := newTestSession(t, func(c *Config) { c.Tree.Duplicates = "reject" })
	require.Equal(t, "inserted 5\nrejected 5 (duplicate)", mustExec(t, reject, "insert 5 5"))
	require.Equal(t, 1, reject.Tree().Len())
}

func TestSessionErrors(t *testing.T) {
	s := newTestSession(t, nil)

	tests := []struct {
		line string
		want error
	}{
		{"frobnicate 1", ErrUnknownCommand},
		{"insert", ErrMissingArgument},
		{"remove ,", ErrMissingArgument},
		{"insert x", ErrBadValue},
		{"random", ErrMissingArgument},
		{"random 5 0", ErrBadValue},
		{"random -1", ErrBadValue},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := s.Exec(tt.line)
			require.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	_, err := s.Exec(`insert "unterminated`)
	require.Error(t, err)

	require.Empty(t, s.History(), "failed commands are not recorded")
}

func TestSessionHistory(t *testing.T) {
	s := newTestSession(t, nil)
	mustExec(t, s, "insert 1")
	mustExec(t, s, "  INSERT   2 ")
	_, _ = s.Exec("bogus")
	require.Equal(t, "", mustExec(t, s, "   "))

	require.Equal(t, []string{"insert 1", "INSERT 2"}, s.History())
}

func TestSessionRandomIsSeeded(t *testing.T) {
	a := newTestSession(t, func(c *Config) { c.Random.Seed = 42 })
	b := newTestSession(t, func(c *Config) { c.Random.Seed = 42 })

	require.Equal(t, "inserted 50 random values below 10", mustExec(t, a, "random 50 10"))
	mustExec(t, b, "random 50 10")
	require.Equal(t, a.Tree().InOrder(), b.Tree().InOrder())
	require.Equal(t, 50, a.Tree().Len())
	require.NoError(t, a.Tree().Verify())

	for _, v := range a.Tree().InOrder() {
		require.True(t, v >= 0 && v < 10)
	}
}

func TestSessionRemoveUnseenSkipsTree(t *testing.T) {
	s := newTestSession(t, nil)
	mustExec(t, s, "insert 10 20 30")
	require.False(t, s.Remove(99))
	require.True(t, s.Remove(20))
	require.False(t, s.Has(20))
	require.Equal(t, []int{10, 30}, s.Tree().InOrder())
}

func TestSessionZeroBloomCapacity(t *testing.T) {
	s := newTestSession(t, func(c *Config) { c.Session.BloomCapacity = 0 })

	require.Equal(t, "inserted 4\ninserted 2", mustExec(t, s, "insert 4 2"))
	require.Equal(t, "4: present\n9: absent", mustExec(t, s, "has 4 9"))
	require.Equal(t, "removed 2", mustExec(t, s, "remove 2"))
	require.Equal(t, []int{4}, s.Tree().InOrder())
}
