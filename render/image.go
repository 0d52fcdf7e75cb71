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
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"
)

// ParseFormat maps a file extension or format name to a Graphviz output
// format. "dot" is handled by DOT directly and is not accepted here.
func ParseFormat(name string) (graphviz.Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "svg":
		return graphviz.SVG, nil
	case "png":
		return graphviz.PNG, nil
	case "jpg", "jpeg":
		return graphviz.JPG, nil
	case "xdot":
		return graphviz.XDOT, nil
	}
	return "", fmt.Errorf("unsupported image format %q (want svg, png, jpg or xdot)", name)
}

// Image lays the DOT description out with the embedded Graphviz engine and
// writes the result to w in the given format.
func Image[T any](w io.Writer, t Walker[T], format graphviz.Format, opts DOTOptions) error {
	var src bytes.Buffer
	if err := DOT(&src, t, opts); err != nil {
		return err
	}

	graph, err := graphviz.ParseBytes(src.Bytes())
	if err != nil {
		return fmt.Errorf("failed to parse generated DOT: %w", err)
	}
	defer graph.Close()

	g := graphviz.New()
	defer g.Close()

	if err := g.Render(graph, format, w); err != nil {
		return fmt.Errorf("failed to render %s: %w", format, err)
	}
	return nil
}
