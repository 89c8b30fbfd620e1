package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// hudFace is the bitmap face used for all HUD and cutscene text.
var hudFace font.Face = basicfont.Face7x13

// uiButton is a clickable screen-space rectangle.
type uiButton struct {
	x, y, w, h int
	label      string
}

func (b uiButton) contains(px, py int) bool {
	return px >= b.x && px < b.x+b.w && py >= b.y && py < b.y+b.h
}

func (g *Game) menuStartButton() uiButton {
	return uiButton{x: g.cfg.ScreenW/2 - 80, y: g.cfg.ScreenH/2 + 100, w: 160, h: 48, label: "START"}
}

func (g *Game) menuBackButton() uiButton {
	return uiButton{x: g.cfg.ScreenW/2 - 80, y: g.cfg.ScreenH/2 + 100, w: 160, h: 48, label: "BACK"}
}

func (g *Game) drawButton(screen *ebiten.Image, b uiButton) {
	vector.FillRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h),
		color.RGBA{R: 60, G: 60, B: 80, A: 230}, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h),
		2, color.RGBA{R: 200, G: 180, B: 100, A: 255}, false)
	tw := text.BoundString(hudFace, b.label).Dx()
	text.Draw(screen, b.label, hudFace,
		b.x+(b.w-tw)/2, b.y+b.h/2+4, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

// drawBigText renders s through the HUD face at an integer scale, centered
// horizontally at cy.
func drawBigText(screen *ebiten.Image, s string, cy int, scale float64, clr color.Color) {
	bounds := text.BoundString(hudFace, s)
	w, h := bounds.Dx()+2, bounds.Dy()+6
	if w <= 0 || h <= 0 {
		return
	}
	buf := ebiten.NewImage(w, h)
	text.Draw(buf, s, hudFace, -bounds.Min.X+1, -bounds.Min.Y+3, clr)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	sw := screen.Bounds().Dx()
	op.GeoM.Translate(float64(sw)/2-float64(w)*scale/2, float64(cy))
	screen.DrawImage(buf, op)
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 20, G: 20, B: 40, A: 255})
	drawBigText(screen, "MOON HOWL", 140, 4, color.RGBA{R: 230, G: 200, B: 80, A: 255})
	drawBigText(screen, "chased by day - hunter by night", 210, 2, color.RGBA{R: 180, G: 180, B: 200, A: 255})
	g.drawButton(screen, g.menuStartButton())
}

func (g *Game) drawEndScreen(screen *ebiten.Image, title string, clr color.RGBA) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 14, A: 255})
	drawBigText(screen, title, 180, 5, clr)
	g.drawButton(screen, g.menuBackButton())
}

func (g *Game) drawCutscene(screen *ebiten.Image, c *Cutscene) {
	boxW := g.cfg.ScreenW - 100
	boxH := 140
	boxX := 50
	boxY := g.cfg.ScreenH - boxH - 40

	vector.FillRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH),
		color.RGBA{R: 20, G: 20, B: 40, A: 220}, false)
	vector.StrokeRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH),
		4, color.RGBA{R: 200, G: 180, B: 100, A: 255}, false)

	// Word-wrap the visible prefix into the box.
	lineY := boxY + 28
	line := ""
	flush := func() {
		if line != "" {
			text.Draw(screen, line, hudFace, boxX+20, lineY, color.White)
			lineY += 22
			line = ""
		}
	}
	for _, word := range splitWords(c.Visible()) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if text.BoundString(hudFace, candidate).Dx() > boxW-40 {
			flush()
			line = word
		} else {
			line = candidate
		}
	}
	flush()

	hint := "Press SPACE to skip"
	if c.Finished() {
		hint = "Press SPACE to continue..."
	}
	text.Draw(screen, hint, hudFace, boxX+boxW-text.BoundString(hudFace, hint).Dx()-20,
		boxY+boxH-14, color.RGBA{R: 200, G: 200, B: 100, A: 255})
}

func splitWords(s string) []string {
	var out []string
	start := -1
	for i, r := range s {
		if r == ' ' {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	w := g.world
	p := w.Player()

	// Hearts.
	for i := 0; i < p.Hearts(); i++ {
		x := float32(8 + i*22)
		vector.DrawFilledCircle(screen, x+5, 14, 5, color.RGBA{R: 220, G: 50, B: 50, A: 255}, true)
		vector.DrawFilledCircle(screen, x+12, 14, 5, color.RGBA{R: 220, G: 50, B: 50, A: 255}, true)
		vector.FillRect(screen, x+1, 16, 16, 8, color.RGBA{R: 220, G: 50, B: 50, A: 255}, false)
	}

	// Stamina bar.
	barW, barH := float32(160), float32(14)
	barX := float32(g.cfg.ScreenW) - barW - 12
	barY := float32(12)
	vector.FillRect(screen, barX, barY, barW, barH, color.RGBA{R: 40, G: 40, B: 40, A: 255}, false)
	frac := float32(p.Stamina() / g.cfg.StaminaMax)
	vector.FillRect(screen, barX+2, barY+2, (barW-4)*frac, barH-4,
		color.RGBA{R: 80, G: 200, B: 120, A: 255}, false)
	text.Draw(screen, "Stamina", hudFace, int(barX)-60, int(barY)+12, color.White)

	// Debug line.
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("villagers: %d  night: %v  F1=copy report", len(w.Villagers()), w.Cycle().IsNight()),
		8, g.cfg.ScreenH-18)
}
