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

// Package render turns a read-only walk of an avl.Tree into text for humans:
// Graphviz DOT, images rendered from it, and a sideways terminal drawing.
package render

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"github.com/cybrota/sapling/avl"
)

// DefaultGraphName is used when DOTOptions.Name is empty.
const DefaultGraphName = "to_dot"

// Walker is the part of avl.Tree the renderers need.
type Walker[T any] interface {
	Walk(fn func(avl.NodeInfo[T]) bool)
}

// DOTOptions controls DOT output.
type DOTOptions struct {
	Name string
}

// DOT writes the tree as a Graphviz digraph. Every node gets an HTML table
// label with its value, cached height and balance factor, plus LEFT and
// RIGHT ports the child edges leave from. An empty tree yields an empty graph.
func DOT[T any](w io.Writer, t Walker[T], opts DOTOptions) error {
	name := opts.Name
	if name == "" {
		name = DefaultGraphName
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", name)
	fmt.Fprint(bw, "\tnode [shape=circle];\n\n")

	var edges []string
	t.Walk(func(ni avl.NodeInfo[T]) bool {
		writeDOTNode(bw, ni)
		if ni.Left != avl.NoNode {
			edges = append(edges, fmt.Sprintf("\tp%d:left -> p%d;\n", ni.ID, ni.Left))
		}
		if ni.Right != avl.NoNode {
			edges = append(edges, fmt.Sprintf("\tp%d:right -> p%d;\n", ni.ID, ni.Right))
		}
		return true
	})

	if len(edges) > 0 {
		fmt.Fprintln(bw)
	}
	for _, e := range edges {
		fmt.Fprint(bw, e)
	}
	fmt.Fprint(bw, "}\n")

	return bw.Flush()
}

func writeDOTNode[T any](w io.Writer, ni avl.NodeInfo[T]) {
	value := html.EscapeString(fmt.Sprint(ni.Value))
	fmt.Fprintf(w, "\tp%d [label=< <TABLE BORDER=\"0\">\n", ni.ID)
	fmt.Fprintf(w, "\t\t<TR><TD colspan=\"2\"><FONT POINT-SIZE=\"36\"><b>%s</b></FONT></TD></TR>\n", value)
	fmt.Fprintf(w, "\t\t<TR><TD colspan=\"2\"><FONT POINT-SIZE=\"24\">%d / Δ:%d</FONT></TD></TR>\n", ni.Height, ni.Diff)
	fmt.Fprint(w, "\t\t<TR><TD PORT=\"left\">LEFT</TD><TD PORT=\"right\">RIGHT</TD></TR>\n")
	fmt.Fprint(w, "\t\t</TABLE> >];\n")
}
