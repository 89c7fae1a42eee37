package runner

import (
	"sort"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar       = '◆'
	PlayerCrouchChar = '▂'
	LowChar          = '▄'
	TallChar         = '█'
	LaneChar         = '·'
	HorizonChar      = '─'
)

// Camera sits behind and above the player, looking down the track.
const (
	cameraY    = 5.0
	cameraZ    = -10.0
	nearPlane  = 1.0
	cellAspect = 2.0 // terminal cells are about twice as tall as wide
)

// HUD holds the already-localized text drawn over the scene.
type HUD struct {
	Left   string // top-left corner, usually the score
	Right  string // top-right corner, usually the difficulty label
	Title  string // centered message box title; empty for none
	Detail string // second line of the message box
}

// projection maps world coordinates onto screen cells.
type projection struct {
	cx      float64
	horizon float64
	fx, fy  float64
}

func newProjection(w, h int) projection {
	fy := float64(h) * 1.3
	return projection{
		cx:      float64(w) / 2,
		horizon: float64(h) / 4,
		fx:      fy * cellAspect,
		fy:      fy,
	}
}

// point returns the screen column and row of a world point, and false when
// it lies behind the near plane.
func (p projection) point(v core.Vec3) (float64, float64, bool) {
	dz := v.Z - cameraZ
	if dz < nearPlane {
		return 0, 0, false
	}
	col := p.cx + v.X/dz*p.fx
	row := p.horizon + (cameraY-v.Y)/dz*p.fy
	return col, row, true
}

// depthAt returns the ground depth seen through screen row y.
func (p projection) depthAt(row float64) float64 {
	return cameraY * p.fy / (row - p.horizon)
}

// Render draws the frame into dst: track, obstacles, player and HUD.
func Render(dst *core.Screen, f Frame, hud HUD) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}
	proj := newProjection(w, h)

	drawTrack(dst, proj, f.Lanes)

	// Painter's order: farthest first, so nearer boxes overwrite.
	type drawable struct {
		z     float64
		box   core.Box
		glyph rune
		color core.Color
	}
	items := make([]drawable, 0, len(f.Obstacles)+1)
	for _, o := range f.Obstacles {
		glyph, color := LowChar, core.ColorOrange
		if o.Class == Tall {
			glyph, color = TallChar, core.ColorRed
		}
		items = append(items, drawable{z: o.Position.Z, box: o.Box(), glyph: glyph, color: color})
	}
	glyph := PlayerChar
	if f.Player.Crouching {
		glyph = PlayerCrouchChar
	}
	items = append(items, drawable{z: f.Player.Position.Z, box: f.Player.Box(), glyph: glyph, color: core.ColorBrightBlue})
	sort.SliceStable(items, func(i, j int) bool { return items[i].z > items[j].z })

	for _, it := range items {
		drawBox(dst, proj, it.box, it.glyph, it.color)
	}

	drawHUD(dst, hud)
}

// drawTrack draws the horizon and the lane boundaries.
func drawTrack(dst *core.Screen, proj projection, lanes []float64) {
	horizon := int(proj.horizon)
	dst.DrawHLine(0, horizon, dst.Width(), HorizonChar, core.ColorGray)
	if len(lanes) == 0 {
		return
	}

	// Boundaries sit halfway between lanes, plus one half-gap outside each edge.
	bounds := make([]float64, 0, len(lanes)+1)
	gap := 3.0
	if len(lanes) > 1 {
		gap = lanes[1] - lanes[0]
	}
	bounds = append(bounds, lanes[0]-gap/2)
	for i := 1; i < len(lanes); i++ {
		bounds = append(bounds, (lanes[i-1]+lanes[i])/2)
	}
	bounds = append(bounds, lanes[len(lanes)-1]+gap/2)

	for row := horizon + 1; row < dst.Height(); row++ {
		dz := proj.depthAt(float64(row) + 0.5)
		if dz < nearPlane {
			continue
		}
		for _, bx := range bounds {
			col := proj.cx + bx/dz*proj.fx
			dst.SetColored(int(col), row, LaneChar, core.ColorGray)
		}
	}
}

// drawBox fills the projected front face of a box.
func drawBox(dst *core.Screen, proj projection, b core.Box, glyph rune, color core.Color) {
	near := b.Min.Z
	if near-cameraZ < nearPlane {
		near = cameraZ + nearPlane
		if b.Max.Z <= near {
			return
		}
	}
	left, top, ok := proj.point(core.Vec3{X: b.Min.X, Y: b.Max.Y, Z: near})
	if !ok {
		return
	}
	right, bottom, _ := proj.point(core.Vec3{X: b.Max.X, Y: b.Min.Y, Z: near})

	x0, x1 := int(left+0.5), int(right+0.5)
	y0, y1 := int(top+0.5), int(bottom+0.5)
	// Always cover at least one cell so distant objects stay visible.
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), glyph, color)
}

func drawHUD(dst *core.Screen, hud HUD) {
	w := dst.Width()
	if hud.Left != "" {
		dst.DrawTextColored(2, 0, " "+hud.Left+" ", core.ColorBrightWhite)
	}
	if hud.Right != "" {
		text := " " + hud.Right + " "
		dst.DrawTextColored(w-core.TextWidth(text)-2, 0, text, core.ColorYellow)
	}
	if hud.Title != "" {
		drawMessage(dst, hud.Title, hud.Detail)
	}
}

// drawMessage draws a message box in the center of the screen.
func drawMessage(dst *core.Screen, title, detail string) {
	tw, dw := core.TextWidth(title), core.TextWidth(detail)
	boxW := max(tw, dw) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextColored(boxX+(boxW-tw)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-dw)/2, boxY+3, detail)
}
