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
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/willf/bloom"

	"github.com/cybrota/sapling/avl"
	"github.com/cybrota/sapling/render"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrBadValue        = errors.New("bad value")
)

// Session is an interactive tree plus the bookkeeping the explorer and the
// script runner share.
type Session struct {
	tree    *avl.Tree[int]
	seen    *bloom.BloomFilter // every value ever inserted since the last clear
	rng     *rand.Rand
	history []string
	cfg     *Config
}

// NewSession creates an empty session using the tree, random, render and
// session sections of cfg
func NewSession(cfg *Config) (*Session, error) {
	opts, err := cfg.TreeOptions()
	if err != nil {
		return nil, err
	}
	return &Session{
		tree: avl.New[int](opts...),
		seen: bloom.NewWithEstimates(max(cfg.Session.BloomCapacity, 1), cfg.Session.BloomFPRate),
		rng:  rand.New(rand.NewSource(cfg.Random.Seed)),
		cfg:  cfg,
	}, nil
}

// Tree exposes the session tree for rendering
func (s *Session) Tree() *avl.Tree[int] {
	return s.tree
}

// History returns the commands executed so far
func (s *Session) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

func bloomKey(v int) string {
	return strconv.Itoa(v)
}

// Insert adds v and reports whether the tree accepted it
func (s *Session) Insert(v int) bool {
	if !s.tree.Insert(v) {
		return false
	}
	s.seen.AddString(bloomKey(v))
	return true
}

// Remove deletes one occurrence of v. Values the filter has never seen skip
// the tree walk.
func (s *Session) Remove(v int) bool {
	if !s.seen.TestString(bloomKey(v)) {
		return false
	}
	return s.tree.Remove(v)
}

// Has reports whether v is in the tree
func (s *Session) Has(v int) bool {
	if !s.seen.TestString(bloomKey(v)) {
		return false
	}
	return s.tree.Contains(v)
}

// Random inserts n values drawn from [0, mod) and returns how many were accepted
func (s *Session) Random(n, mod int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: count %d is negative", ErrBadValue, n)
	}
	if mod <= 0 {
		return 0, fmt.Errorf("%w: modulo %d must be positive", ErrBadValue, mod)
	}
	accepted := 0
	for range n {
		if s.Insert(s.rng.Intn(mod)) {
			accepted++
		}
	}
	return accepted, nil
}

// Clear empties the tree and forgets every value
func (s *Session) Clear() {
	s.tree.Clear()
	s.seen.ClearAll()
}

// Summary is the one-line status used by the explorer and `stats`
func (s *Session) Summary() string {
	st := s.tree.Stats()
	return fmt.Sprintf("nodes=%d height=%d bound=%d rotations L=%d R=%d RL=%d LR=%d",
		st.Nodes, st.Height, avl.HeightBound(st.Nodes),
		st.Rotations.Left, st.Rotations.Right, st.Rotations.RightLeft, st.Rotations.LeftRight)
}

// Exec runs one command line and returns its textual result
func (s *Session) Exec(line string) (string, error) {
	parts, err := splitCommand(line)
	if err != nil {
		return "", err
	}
	if len(parts) == 0 {
		return "", nil
	}

	out, err := s.dispatch(strings.ToLower(parts[0]), parts[1:])
	if err != nil {
		return "", err
	}
	s.history = append(s.history, strings.Join(parts, " "))
	return out, nil
}

func (s *Session) dispatch(name string, args []string) (string, error) {
	switch name {
	case "insert", "i", "add":
		values, err := parseValues(name, args)
		if err != nil {
			return "", err
		}
		var lines []string
		for _, v := range values {
			if s.Insert(v) {
				lines = append(lines, fmt.Sprintf("inserted %d", v))
			} else {
				lines = append(lines, fmt.Sprintf("rejected %d (duplicate)", v))
			}
		}
		return strings.Join(lines, "\n"), nil

	case "remove", "rm", "delete":
		values, err := parseValues(name, args)
		if err != nil {
			return "", err
		}
		var lines []string
		for _, v := range values {
			if s.Remove(v) {
				lines = append(lines, fmt.Sprintf("removed %d", v))
			} else {
				lines = append(lines, fmt.Sprintf("absent %d", v))
			}
		}
		return strings.Join(lines, "\n"), nil

	case "has", "contains":
		values, err := parseValues(name, args)
		if err != nil {
			return "", err
		}
		var lines []string
		for _, v := range values {
			state := "absent"
			if s.Has(v) {
				state = "present"
			}
			lines = append(lines, fmt.Sprintf("%d: %s", v, state))
		}
		return strings.Join(lines, "\n"), nil

	case "random":
		if len(args) == 0 || len(args) > 2 {
			return "", fmt.Errorf("%w: random N [MOD]", ErrMissingArgument)
		}
		n, err := parseInt(args[0])
		if err != nil {
			return "", err
		}
		mod := s.cfg.Random.Modulo
		if len(args) == 2 {
			if mod, err = parseInt(args[1]); err != nil {
				return "", err
			}
		}
		accepted, err := s.Random(n, mod)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("inserted %d random values below %d", accepted, mod), nil

	case "check":
		violations := s.tree.CheckInvariant()
		if err := s.tree.Verify(); err != nil {
			return "", fmt.Errorf("check failed (%d unbalanced): %w", violations, err)
		}
		return fmt.Sprintf("ok: %d unbalanced nodes", violations), nil

	case "inorder", "list":
		values := s.tree.InOrder()
		strs := make([]string, len(values))
		for i, v := range values {
			strs[i] = strconv.Itoa(v)
		}
		return "[" + strings.Join(strs, " ") + "]", nil

	case "levels":
		rows := render.Levels[int](s.tree)
		lines := make([]string, len(rows))
		for i, row := range rows {
			lines[i] = fmt.Sprintf("%d: %s", i, strings.Join(row, " "))
		}
		return strings.Join(lines, "\n"), nil

	case "stats":
		return s.Summary(), nil

	case "show":
		return strings.TrimSuffix(render.Sideways[int](s.tree, render.TextOptions{Plain: s.cfg.Render.Plain}), "\n"), nil

	case "dot":
		var b strings.Builder
		if err := render.DOT[int](&b, s.tree, render.DOTOptions{Name: s.cfg.Render.GraphName}); err != nil {
			return "", err
		}
		return strings.TrimSuffix(b.String(), "\n"), nil

	case "clear":
		s.Clear()
		return "cleared", nil

	case "help":
		return sessionCommands, nil
	}

	return "", fmt.Errorf("%w %q", ErrUnknownCommand, name)
}

const sessionCommands = `insert|i|add V...     insert values
remove|rm|delete V... remove one occurrence of each value
has|contains V...     membership test
random N [MOD]        insert N values in [0, MOD)
check                 count unbalanced nodes and audit the tree
inorder|list          values in sorted order
levels                values by depth
stats                 size, height, bound and rotation counters
show                  sideways drawing
dot                   Graphviz DOT source
clear                 empty the tree`

func parseValues(cmd string, args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: %s needs at least one value", ErrMissingArgument, cmd)
	}
	var values []int
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' }) {
			v, err := parseInt(field)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s needs at least one value", ErrMissingArgument, cmd)
	}
	return values, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrBadValue, s, err)
	}
	return v, nil
}
