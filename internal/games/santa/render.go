package santa

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/santa-catch/internal/core"
)

// Rendering characters
const (
	LaneChar    = '┊'
	SnowChar    = '*'
	GiftChar    = '█'
	SackChar    = '▀'
	RibbonPlus  = '+'
	RibbonCross = 'x'
	HeartChar   = '♥'
)

const (
	minScreenW = 24
	minScreenH = 10
)

// fieldView maps field coordinates onto the terminal grid.
// Row 0 holds the HUD and the last row holds the controls line.
type fieldView struct {
	cols, rows     int
	top            int
	fieldW, fieldH float64
	sx, sy         float64
}

func newFieldView(dst *core.Screen, fieldW, fieldH int) fieldView {
	rows := dst.Height() - 2
	return fieldView{
		cols:   dst.Width(),
		rows:   rows,
		top:    1,
		fieldW: float64(fieldW),
		fieldH: float64(fieldH),
		sx:     float64(dst.Width()) / float64(fieldW),
		sy:     float64(rows) / float64(fieldH),
	}
}

// col maps a field x to a screen column; x is clamped to the field.
func (v fieldView) col(x float64) int {
	return int(core.ClampF(x, 0, v.fieldW) * v.sx)
}

// row maps a field y to a screen row. Gifts above or below the field
// map outside the playfield and are culled by visible.
func (v fieldView) row(y float64) int {
	return v.top + int(y*v.sy)
}

// bottom is the last playfield row.
func (v fieldView) bottom() int {
	return v.top + v.rows - 1
}

// visible reports whether a screen row belongs to the playfield.
func (v fieldView) visible(row int) bool {
	return row >= v.top && row <= v.bottom()
}

// Render draws the round into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}
	if g.round == nil {
		return
	}

	r := g.round
	v := newFieldView(dst, g.cfg.Field.Width, g.cfg.Field.Height)

	g.drawLanes(dst, v)
	g.drawSnow(dst, v)
	for _, gift := range r.gifts {
		g.drawGift(dst, v, gift)
	}
	g.drawCatcher(dst, v)
	g.drawHUD(dst)
	g.drawControls(dst)

	if text, ok := r.Message(); ok {
		dst.DrawTextCenteredColored(2, text, core.ColorGold)
	}

	switch r.Phase() {
	case PhaseMilestone:
		drawMessageBox(dst, core.ColorBrightGreen,
			"100 gifts caught!",
			"Santa is proud of you.",
			"Press + to keep going")
	case PhaseGameOver:
		drawMessageBox(dst, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d   Best: %d", r.Score(), r.Best()),
			"SPACE to play again  |  ESC for menu")
	case PhaseVictory:
		drawMessageBox(dst, core.ColorGold,
			"HAPPY NEW YEAR!",
			fmt.Sprintf("All %d gifts delivered.   Best: %d", r.Score(), r.Best()),
			"SPACE to play again  |  ESC for menu")
	}
}

// drawLanes draws the separators between lanes.
func (g *Game) drawLanes(dst *core.Screen, v fieldView) {
	laneW := g.cfg.LaneWidth()
	for lane := 1; lane < g.cfg.Lanes.Count; lane++ {
		dst.DrawVLine(v.col(float64(lane*laneW)), v.top, v.rows, LaneChar, core.ColorGray)
	}
}

func (g *Game) drawSnow(dst *core.Screen, v fieldView) {
	for _, f := range g.round.Snow() {
		y := v.row(f.Y)
		if !v.visible(y) {
			continue
		}
		dst.SetColored(v.col(f.X), y, SnowChar, core.ColorBrightWhite)
	}
}

// drawGift fills the gift's box and crosses it with a ribbon.
// The ribbon glyph alternates with rotation.
func (g *Game) drawGift(dst *core.Screen, v fieldView, gift Gift) {
	size := float64(g.cfg.Gift.Size)
	x0, x1 := v.col(gift.X), v.col(gift.X+size)
	y0, y1 := v.row(gift.Y), v.row(gift.Y+size)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		if !v.visible(y) {
			continue
		}
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, GiftChar, gift.Color)
		}
	}

	ribbon := RibbonPlus
	if int(gift.Rotation/45)%2 == 1 {
		ribbon = RibbonCross
	}
	cy := (y0 + y1 - 1) / 2
	if v.visible(cy) {
		dst.SetColored((x0+x1-1)/2, cy, ribbon, core.ColorGold)
	}
}

// drawCatcher draws Santa's sack with the lane number on it.
func (g *Game) drawCatcher(dst *core.Screen, v fieldView) {
	rect := g.round.CatcherRect()
	x0, x1 := v.col(rect.X), v.col(rect.Right())
	width := core.Max(x1-x0, 1)
	y := core.Clamp(v.row(g.cfg.CatchLine()), v.top, v.bottom())

	dst.DrawHLine(x0, y, width, SackChar, core.ColorRed)
	if y < v.bottom() {
		dst.DrawHLine(x0, y+1, width, '▔', core.ColorBrown)
	}

	label := strconv.Itoa(g.round.CatcherLane() + 1)
	dst.DrawTextColored(x0+(width-core.TextWidth(label))/2, y, label, core.ColorBrightWhite)
}

// drawHUD draws lives on the left and score and speed on the right.
func (g *Game) drawHUD(dst *core.Screen) {
	r := g.round

	lives := strings.Repeat(string(HeartChar), core.Max(r.Lives(), 0))
	dst.DrawTextColored(1, 0, "Lives: ", core.ColorWhite)
	dst.DrawTextColored(8, 0, lives, core.ColorBrightRed)

	right := fmt.Sprintf("Score: %d  Speed: %.1f ", r.Score(), r.FallSpeed())
	dst.DrawTextColored(dst.Width()-core.TextWidth(right), 0, right, core.ColorWhite)
}

// drawControls draws the lane keys under each lane.
func (g *Game) drawControls(dst *core.Screen) {
	y := dst.Height() - 1
	laneCols := float64(dst.Width()) / float64(g.cfg.Lanes.Count)
	for lane := 0; lane < g.cfg.Lanes.Count; lane++ {
		key := fmt.Sprintf("[%d]", lane+1)
		x := int(float64(lane)*laneCols+laneCols/2) - core.TextWidth(key)/2
		c := core.ColorGray
		if lane == g.round.CatcherLane() {
			c = core.ColorBrightYellow
		}
		dst.DrawTextColored(x, y, key, c)
	}
}

// drawMessageBox draws a bordered box with centered lines.
func drawMessageBox(dst *core.Screen, c core.Color, lines ...string) {
	w, h := dst.Width(), dst.Height()

	boxW := 0
	for _, line := range lines {
		boxW = core.Max(boxW, core.TextWidth(line))
	}
	boxW = core.Min(boxW+4, w)
	boxH := len(lines)*2 + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextCenteredColored(boxY+1+i*2, line, color)
	}
}
