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
	"math/rand"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"

	"github.com/cybrota/sapling/avl"
)

const (
	dashboardWindow   = 240 // plotted samples
	dashboardInterval = 50 * time.Millisecond
)

type drivePhase int

const (
	phaseFill drivePhase = iota
	phaseDrain
)

func (p drivePhase) String() string {
	if p == phaseDrain {
		return "draining"
	}
	return "filling"
}

// dashboardDriver fills a tree with random values and then drains it in
// random order, forever, recording the height after every operation
type dashboardDriver struct {
	tree    *avl.Tree[int]
	rng     *rand.Rand
	size    int
	modulo  int
	phase   drivePhase
	pending []int // values still in the tree, in removal order once draining
	cycles  int
	steps   int

	heights       []float64
	bounds        []float64
	maxViolations int
}

func newDashboardDriver(cfg *Config) (*dashboardDriver, error) {
	opts, err := cfg.TreeOptions()
	if err != nil {
		return nil, err
	}
	d := &dashboardDriver{
		tree:   avl.New[int](opts...),
		rng:    rand.New(rand.NewSource(cfg.Random.Seed)),
		size:   cfg.Drain.Size,
		modulo: max(cfg.Random.Modulo, cfg.Drain.Size*4),
	}
	d.record()
	d.record()
	return d, nil
}

// step applies n operations
func (d *dashboardDriver) step(n int) {
	for range n {
		switch d.phase {
		case phaseFill:
			v := d.rng.Intn(d.modulo)
			if d.tree.Insert(v) {
				d.pending = append(d.pending, v)
			}
			if len(d.pending) >= d.size {
				d.rng.Shuffle(len(d.pending), func(i, j int) {
					d.pending[i], d.pending[j] = d.pending[j], d.pending[i]
				})
				d.phase = phaseDrain
			}
		case phaseDrain:
			last := len(d.pending) - 1
			d.tree.Remove(d.pending[last])
			d.pending = d.pending[:last]
			if len(d.pending) == 0 {
				d.phase = phaseFill
				d.cycles++
			}
		}
		d.steps++
		d.maxViolations = max(d.maxViolations, d.tree.CheckInvariant())
		d.record()
	}
}

func (d *dashboardDriver) record() {
	d.heights = append(d.heights, float64(d.tree.Height()))
	d.bounds = append(d.bounds, float64(avl.HeightBound(d.tree.Len())))
	if over := len(d.heights) - dashboardWindow; over > 0 {
		d.heights = d.heights[over:]
		d.bounds = d.bounds[over:]
	}
}

func (d *dashboardDriver) reset() {
	d.tree.Clear()
	d.pending = d.pending[:0]
	d.phase = phaseFill
	d.cycles = 0
	d.steps = 0
	d.maxViolations = 0
	d.heights = d.heights[:0]
	d.bounds = d.bounds[:0]
	d.record()
	d.record()
}

func (d *dashboardDriver) rotationData() []float64 {
	r := d.tree.Stats().Rotations
	return []float64{float64(r.Left), float64(r.Right), float64(r.RightLeft), float64(r.LeftRight)}
}

func (d *dashboardDriver) status() string {
	st := d.tree.Stats()
	return fmt.Sprintf(" %s, cycle %d, step %d\n nodes %d  height %d  bound %d\n rotations %d  worst unbalanced %d",
		d.phase, d.cycles+1, d.steps,
		st.Nodes, st.Height, avl.HeightBound(st.Nodes),
		st.Rotations.Total(), d.maxViolations)
}

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// runDashboard draws live height and rotation charts until the user quits
func runDashboard(cfg *Config) error {
	driver, err := newDashboardDriver(cfg)
	if err != nil {
		return err
	}

	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %v", err)
	}
	DisableMouseInput()
	defer ui.Close()

	scheme := GetColorScheme()

	plot := widgets.NewPlot()
	plot.Title = " Height vs 1.44·log2(n+2) "
	plot.LineColors = []ui.Color{scheme.Primary, scheme.Warning}
	plot.AxesColor = scheme.TextMuted
	plot.BorderStyle = StyleBorder(true)
	plot.Marker = widgets.MarkerBraille

	bars := widgets.NewBarChart()
	bars.Title = " Rotations "
	bars.Labels = []string{"L", "R", "RL", "LR"}
	bars.BarColors = []ui.Color{scheme.Primary, scheme.Accent, scheme.Success, scheme.Warning}
	bars.NumStyles = []ui.Style{ui.NewStyle(ui.ColorBlack)}
	bars.LabelStyles = []ui.Style{StyleText()}
	bars.BarWidth = 6
	bars.BorderStyle = StyleBorder(false)

	statusPara := widgets.NewParagraph()
	statusPara.Title = " Tree "
	statusPara.BorderStyle = StyleBorder(false)

	keysPara := widgets.NewParagraph()
	keysPara.Title = " Keyboard Shortcuts "
	keysPara.Text = `[<space>](fg:green) -> Pause or resume
[r](fg:green) -> Reset the tree
[+/-](fg:green) -> Faster or slower
[q](fg:green) or [<esc>](fg:green) -> Quit`
	keysPara.TextStyle = StyleTextMuted()
	keysPara.BorderStyle = StyleBorder(false)

	grid := ui.NewGrid()
	termWidth, termHeight := ui.TerminalDimensions()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewRow(0.65, plot),
		ui.NewRow(0.35,
			ui.NewCol(0.4, bars),
			ui.NewCol(0.3, statusPara),
			ui.NewCol(0.3, keysPara),
		),
	)

	opsPerTick := max(cfg.Drain.Size/100, 1)
	paused := false

	refresh := func() {
		plot.Data = [][]float64{driver.heights, driver.bounds}
		bars.Data = driver.rotationData()
		statusPara.Text = driver.status()
		statusPara.TextStyle = StyleVerdict(driver.maxViolations)
		if paused {
			statusPara.Title = " Tree (paused) "
		} else {
			statusPara.Title = " Tree "
		}
		ui.Render(grid)
	}
	refresh()

	ticker := time.NewTicker(dashboardInterval)
	defer ticker.Stop()
	uiEvents := ui.PollEvents()

	for {
		select {
		case e := <-uiEvents:
			switch e.ID {
			case "q", "<C-c>", "<Escape>":
				return nil
			case "<Space>":
				paused = !paused
			case "r":
				driver.reset()
			case "+", "=":
				opsPerTick *= 2
			case "-":
				opsPerTick = max(opsPerTick/2, 1)
			case "<Resize>":
				if payload, ok := e.Payload.(ui.Resize); ok {
					grid.SetRect(0, 0, payload.Width, payload.Height)
				}
				ui.Clear()
			}
			refresh()
		case <-ticker.C:
			if !paused {
				driver.step(opsPerTick)
				refresh()
			}
		}
	}
}
