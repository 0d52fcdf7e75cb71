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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/charmbracelet/glamour"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Sapling %s**

A self-balancing AVL tree you can poke at. Insert and remove values, watch the
rotations happen and check that every node stays within one level of balance.

Built with Go %s

# 1. Commands
* **explore**: interactive explorer (default)
* **scenario**: run the built-in exercise scenarios and audit the tree after every step
* **dot**: write the tree as Graphviz DOT, or render it to SVG/PNG/JPG
* **show**: print the tree sideways with heights and balance factors
* **script**: replay a file of explorer commands
* **dashboard**: watch height and rotations live while a tree fills and drains
* **settings**: show or create ~/.sapling.yaml

# 2. Explorer commands
%s

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed
* Image output links against Graphviz through cgo

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), "```\n"+sessionCommands+"\n```")
	result := markdown.Render(message, 80, 3)
	return string(result)
}

// helpTopics are the explorer help pages, shown in this order
var helpTopics = []struct {
	Name string
	Body string
}{
	{"keys", `# Keys

| Key | Action |
|-----|--------|
| enter | run the command, or recall the selected history entry |
| tab | cycle focus: prompt, history, tree |
| f1 | toggle this help |
| f2 | next help topic |
| ctrl+y | copy the tree as DOT |
| ctrl+z | copy the sideways drawing |
| pgup / pgdown | scroll the focused pane |
| esc | quit |
`},
	{"commands", "# Commands\n\n```\n" + sessionCommands + "\n```\n"},
	{"rotations", `# Rotations

The balance factor of a node is *height(right) - height(left)*. After every
insert or remove each node on the way back to the root is rebalanced:

| Factor | Child factor | Rotation |
|--------|--------------|----------|
| > 1 | right >= 0 | left |
| > 1 | right < 0 | right-left |
| < -1 | left <= 0 | right |
| < -1 | left > 0 | left-right |

Removing a node with a left subtree promotes its in-order predecessor, the
largest value on the left.
`},
	{"invariants", `# Invariants

* every node's balance factor is -1, 0 or 1
* every cached height is 1 + the taller child
* the in-order walk never decreases
* the height of n nodes stays under 1.44 log2(n+2)

` + "`check`" + ` counts nodes that break the first rule and then audits the rest.
`},
}

// renderHelpTopic renders topic markdown for the explorer help pane
func renderHelpTopic(topic string, width int) (string, error) {
	for _, t := range helpTopics {
		if t.Name != topic {
			continue
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return t.Body, nil
		}
		out, err := r.Render(t.Body)
		if err != nil {
			return t.Body, nil
		}
		return out, nil
	}
	return "", fmt.Errorf("no help topic %q", topic)
}
