// well-sandbox animates the gravity-well distortion field in a
// terminal: a background grid bends around a few wells while organisms
// transported along the sphere surface stretch and lean as they pass
// through the field. Top-down view, world XZ mapped to screen cells.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/calyxgames/primordia/component"
	"github.com/calyxgames/primordia/core"
	"github.com/calyxgames/primordia/engine"
	"github.com/calyxgames/primordia/event"
	"github.com/calyxgames/primordia/parameter"
	"github.com/calyxgames/primordia/physics"
	"github.com/calyxgames/primordia/render"
	"github.com/calyxgames/primordia/system"
	"github.com/calyxgames/primordia/vmath"
)

const (
	targetFPS   = 30
	framePeriod = time.Second / targetFPS

	gridHalfExtent = 48.0
	gridSpacing    = 8.0
	gridSegments   = 12

	swimmerCount = 4
	orbitPeriodS = 14.0

	hudRows = 2
)

type well struct {
	x, z     float64
	radius   float64
	strength float64
}

var wells = []well{
	{x: -18, z: -10, radius: 14, strength: 1.0},
	{x: 22, z: 8, radius: 18, strength: 1.3},
	{x: -4, z: 24, radius: 10, strength: 0.8},
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	world := engine.NewWorld()
	world.Resources.Grid = render.NewGridMesh(gridHalfExtent, gridSpacing, 0, gridSegments)

	world.AddSystem(system.NewGravitySystem(world))
	world.AddSystem(system.NewTransportSystem(world))
	world.AddSystem(system.NewWarpSystem(world))
	world.AddSystem(system.NewGridSystem(world))

	for _, w := range wells {
		e := world.CreateEntity()
		world.Components.Transform.Set(e, component.NewTransform(vmath.Vec3F{X: w.x, Z: w.z}))
		world.Components.GravityWell.Set(e, component.GravityWellComponent{
			Radius:   w.radius,
			Strength: w.strength,
		})
		world.Components.Organism.Set(e, component.OrganismComponent{
			Category: core.CategoryObstacle,
		})
	}

	swimmers := make([]core.Entity, swimmerCount)
	radius := parameter.SphereRadiusTidepool
	for i := range swimmers {
		phase := float64(i) / swimmerCount * 2 * math.Pi
		start := orbitPoint(phase, radius)
		e := world.CreateEntity()
		world.Components.Transform.Set(e, component.NewTransform(start))
		world.Components.Organism.Set(e, component.OrganismComponent{
			Stage:    core.StageSwimmer,
			Category: core.CategoryOrganism,
		})
		world.Components.InterpTarget.Set(e, component.InterpolationTargetComponent{
			Target:    start,
			Timestamp: time.Now(),
		})
		swimmers[i] = e
	}

	world.PushEvent(event.EventSectionChanged, &event.SectionChangedPayload{
		Section: core.SectionTidepool,
	})

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	warpTuning := parameter.DefaultWarpTuning()
	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	start := time.Now()
	last := start
	for {
		select {
		case <-quit:
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			// Stand in for the network layer: overwrite each swimmer's
			// authoritative target along a slow orbit
			elapsed := now.Sub(start).Seconds()
			for i, e := range swimmers {
				phase := float64(i)/swimmerCount*2*math.Pi + elapsed*2*math.Pi/orbitPeriodS
				world.Components.InterpTarget.Set(e, component.InterpolationTargetComponent{
					Target:    orbitPoint(phase, radius),
					Timestamp: now,
				})
			}

			world.Tick(now, dt)
			draw(screen, world, warpTuning)
		}
	}
}

// orbitPoint places a target on a tilted great circle of the sphere
func orbitPoint(phase, radius float64) vmath.Vec3F {
	sin, cos := math.Sincos(phase)
	return vmath.Vec3F{
		X: radius * cos * 0.35,
		Y: radius * sin * 0.2,
		Z: radius * sin * 0.35,
	}
}

func draw(screen tcell.Screen, world *engine.World, warpTuning parameter.WarpTuning) {
	screen.Clear()
	width, height := screen.Size()
	if height <= hudRows {
		screen.Show()
		return
	}
	view := height - hudRows

	gridStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 90, 110))
	for _, line := range world.Resources.Grid.Lines {
		for _, v := range line.Current {
			x, y, ok := toCell(v, width, view)
			if ok {
				screen.SetContent(x, y, '·', nil, gridStyle)
			}
		}
	}

	wellStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 120, 255))
	for _, src := range world.Resources.Field.Snapshot() {
		x, y, ok := toCell(render.RenderFromField(src.Pos, 0), width, view)
		if ok {
			screen.SetContent(x, y, '@', nil, wellStyle)
		}
	}

	sources := world.Resources.Field.Snapshot()
	for _, e := range world.Components.Organism.All() {
		org, _ := world.Components.Organism.Get(e)
		if org.Category != core.CategoryOrganism {
			continue
		}
		tr, ok := world.Components.Transform.Get(e)
		if !ok {
			continue
		}
		x, y, ok := toCell(tr.Position, width, view)
		if !ok {
			continue
		}
		warp := physics.ComputeWarp(sources, render.FieldFromRender(tr.Position), warpTuning)
		glyph := 'o'
		if warp.Intensity > 0.4 {
			glyph = 'O'
		}
		heat := uint8(math.Min(255, 120+warp.Intensity*90))
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(heat), 220, 140))
		screen.SetContent(x, y, glyph, nil, style)
	}

	drawHUD(screen, world, width, view)
	screen.Show()
}

// toCell maps a render-space position (top-down, XZ plane) to a
// terminal cell; terminal cells are roughly twice as tall as wide, so
// Z is compressed by half
func toCell(v vmath.Vec3F, width, viewRows int) (int, int, bool) {
	scale := float64(width) / (2.4 * gridHalfExtent)
	x := width/2 + int(v.X*scale)
	y := viewRows/2 + int(v.Z*scale*0.5)
	if x < 0 || x >= width || y < 0 || y >= viewRows {
		return 0, 0, false
	}
	return x, y, true
}

func drawHUD(screen tcell.Screen, world *engine.World, width, row int) {
	stats := world.Resources.Status.Ints
	text := fmt.Sprintf(
		"frame %d | wells %d | verts %d | refreshes %d | nonfinite %d | q to quit",
		world.Resources.Time.FrameNumber,
		world.Resources.Field.Len(),
		stats.Get("grid.vertices_sampled").Load(),
		stats.Get("gravity.refreshes").Load(),
		stats.Get("transport.nonfinite_fallbacks").Load(),
	)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range text {
		if i >= width {
			break
		}
		screen.SetContent(i, row, r, nil, style)
	}
}
