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

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/sapling/avl"
)

// TextOptions controls the sideways drawing.
type TextOptions struct {
	Plain  bool // no ANSI styling
	Styles *Styles
}

// Styles holds the lipgloss styles used for node labels.
type Styles struct {
	Value     lipgloss.Style
	Balanced  lipgloss.Style
	Leaning   lipgloss.Style
	Violating lipgloss.Style
	Branch    lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
		Balanced: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")),
		Leaning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")),
		Violating: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Branch: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// snapshot is the walked tree keyed by node identity.
type snapshot[T any] struct {
	root  avl.NodeID
	nodes map[avl.NodeID]avl.NodeInfo[T]
}

func takeSnapshot[T any](t Walker[T]) snapshot[T] {
	s := snapshot[T]{nodes: make(map[avl.NodeID]avl.NodeInfo[T])}
	t.Walk(func(ni avl.NodeInfo[T]) bool {
		if s.root == avl.NoNode {
			s.root = ni.ID
		}
		s.nodes[ni.ID] = ni
		return true
	})
	return s
}

// Sideways draws the tree rotated a quarter turn: the root sits at the left
// margin, right subtrees above their parent and left subtrees below. Each
// node shows its value, cached height and balance factor.
func Sideways[T any](t Walker[T], opts TextOptions) string {
	s := takeSnapshot(t)
	if s.root == avl.NoNode {
		return "(empty)\n"
	}

	styles := opts.Styles
	if styles == nil {
		styles = NewStyles()
	}
	d := drawer[T]{snap: s, styles: styles, plain: opts.Plain}
	d.draw(s.root, "", 0)
	return d.b.String()
}

type drawer[T any] struct {
	snap   snapshot[T]
	styles *Styles
	plain  bool
	b      strings.Builder
}

// draw writes the subtree rooted at id. dir is 0 for the root, +1 for a right
// child and -1 for a left child.
func (d *drawer[T]) draw(id avl.NodeID, prefix string, dir int) {
	ni := d.snap.nodes[id]

	if ni.Right != avl.NoNode {
		next := "    "
		if dir < 0 {
			next = "│   "
		}
		d.draw(ni.Right, prefix+next, 1)
	}

	connector := ""
	switch {
	case dir > 0:
		connector = "┌── "
	case dir < 0:
		connector = "└── "
	}
	d.b.WriteString(d.style(d.styles.Branch, prefix+connector))
	d.b.WriteString(d.label(ni))
	d.b.WriteByte('\n')

	if ni.Left != avl.NoNode {
		next := "    "
		if dir > 0 {
			next = "│   "
		}
		d.draw(ni.Left, prefix+next, -1)
	}
}

func (d *drawer[T]) label(ni avl.NodeInfo[T]) string {
	badge := d.styles.Balanced
	switch {
	case ni.Diff >= 2 || ni.Diff <= -2:
		badge = d.styles.Violating
	case ni.Diff != 0:
		badge = d.styles.Leaning
	}
	return d.style(d.styles.Value, fmt.Sprint(ni.Value)) + " " +
		d.style(badge, fmt.Sprintf("(h=%d, Δ=%d)", ni.Height, ni.Diff))
}

func (d *drawer[T]) style(s lipgloss.Style, text string) string {
	if d.plain || text == "" {
		return text
	}
	return s.Render(text)
}

// Levels returns the node values breadth-first, one slice per depth.
func Levels[T any](t Walker[T]) [][]string {
	s := takeSnapshot(t)
	if s.root == avl.NoNode {
		return nil
	}

	var rows [][]string
	level := []avl.NodeID{s.root}
	for len(level) > 0 {
		var (
			row  []string
			next []avl.NodeID
		)
		for _, id := range level {
			ni := s.nodes[id]
			row = append(row, fmt.Sprint(ni.Value))
			if ni.Left != avl.NoNode {
				next = append(next, ni.Left)
			}
			if ni.Right != avl.NoNode {
				next = append(next, ni.Right)
			}
		}
		rows = append(rows, row)
		level = next
	}
	return rows
}
