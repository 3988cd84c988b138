package curry

import (
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/curry-rush/internal/core"
)

// Layout constants (in terminal cells).
const (
	maxBeltCols = 80
	minBeltCols = 20
	plateWidth  = 4
)

var plateGlyphs = map[Kind]string{
	KindEmpty:    "(__)",
	KindFood:     "(@@)",
	KindHazard:   "(@@)",
	KindObstacle: "[##]",
	KindCoolant:  "|~~|",
}

var plateColors = map[Kind]core.Color{
	KindEmpty:    core.ColorGray,
	KindFood:     core.ColorOrange,
	KindHazard:   core.ColorBrightRed,
	KindObstacle: core.ColorMagenta,
	KindCoolant:  core.ColorCyan,
}

var steamFrames = [4]string{"~  ~", " ~~ ", "~  ~", "  ~ "}

var heatFaces = [...]string{"._.", "o_o", ">_<", "@_@", "#_#"}

var heatColors = [...]core.Color{
	core.ColorWhite,
	core.ColorYellow,
	core.ColorOrange,
	core.ColorRed,
	core.ColorBrightRed,
}

var mouthFrames = [MouthFrames + 1]string{" - ", " o ", " O ", " o "}

var droolRunes = [4]rune{'\'', ',', '.', ':'}

// DrawScene rasterizes sc into dst. The belt is centered horizontally and
// placed just below the middle of the screen.
func DrawScene(dst *core.Screen, sc Scene) {
	dst.Clear()
	if sc.BeltWidth <= 0 {
		return
	}

	// Background
	if sc.Tint > 0 {
		dst.FillBackground(core.Embers[min(sc.Tint, len(core.Embers))-1])
	}

	cols := max(minBeltCols, min(maxBeltCols, dst.Width()-4))
	left := (dst.Width() - cols) / 2
	beltY := dst.Height()/2 + 2
	scale := float64(cols) / sc.BeltWidth
	slot := int(math.Round(sc.CellSize * scale))
	colOf := func(x float64) int {
		return left + int(math.Floor(x*scale)) + (slot-plateWidth)/2
	}
	dst.DrawHLine(left, beltY+1, cols, '▀', core.ColorBrown)

	// Status icon sits on the last cell of the belt
	ex := colOf(sc.BeltWidth - sc.CellSize)
	drawStatus(dst, ex, beltY, sc.Status)

	// Items
	for _, sp := range sc.Sprites {
		glyph, ok := plateGlyphs[sp.Kind]
		if !ok {
			continue
		}
		x := colOf(sp.X)
		if sp.Kind.Edible() {
			dst.DrawTextColored(x, beltY-1, steamFrames[sp.Frame%len(steamFrames)], plateColors[sp.Kind])
		}
		dst.DrawTextColored(x, beltY, glyph, plateColors[sp.Kind])
	}

	drawOverlay(dst, sc, ex, beltY)
}

func drawStatus(dst *core.Screen, x, y int, st Status) {
	heat := min(max(st.Heat, 0), len(heatFaces)-1)
	face, color := heatFaces[heat], heatColors[heat]
	mouth := mouthFrames[min(max(st.Frame, 0), MouthFrames)]
	switch st.Mode {
	case StatusBlocked:
		face, mouth, color = "x_x", " ~ ", core.ColorGray
	case StatusDrinking:
		face, color = "^o^", core.ColorBrightBlue
	}
	dst.DrawTextColored(x, y-2, face, color)
	dst.DrawTextColored(x, y-1, mouth, color)
}

func drawOverlay(dst *core.Screen, sc Scene, eaterX, beltY int) {
	top := max(0, beltY-8)
	ov := sc.Overlay

	if ov.Best != "" {
		dst.DrawTextCentered(top+1, "BEST "+ov.Best, core.ColorBrightYellow)
	}
	if ov.Clock != "" {
		dst.DrawTextCentered(top+1, ov.Clock, core.ColorBrightWhite)
	}
	if ov.ShowQuota {
		dst.DrawTextCentered(top+2, "(@@) x"+strconv.Itoa(ov.Quota), core.ColorOrange)
	}
	if ov.Countdown > 0 {
		dst.DrawTextCentered(top+4, strconv.Itoa(ov.Countdown), core.ColorBrightWhite)
	}
	if ov.Hint {
		dst.DrawTextCentered(top+4, "TOUCH TO START", core.ColorWhite)
	}
	if ov.Drool >= 0 {
		dst.SetColored(eaterX+3, beltY-1, droolRunes[ov.Drool%len(droolRunes)], core.ColorBrightBlue)
	}

	if sc.VolumeSteps > 1 {
		v := min(max(sc.Volume, 0), sc.VolumeSteps-1)
		bars := strings.Repeat("■", v) + strings.Repeat("□", sc.VolumeSteps-1-v)
		vol := "VOL " + bars
		dst.DrawTextColored(dst.Width()-len([]rune(vol))-1, 0, vol, core.ColorGray)
	}
}
