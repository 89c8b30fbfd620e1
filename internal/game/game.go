package game

import (
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// tickDt is the simulation step per Ebiten update at the default 60 TPS.
const tickDt = 1.0 / 60.0

// screenState is the outer presentation state machine. The simulation only
// runs in statePlaying.
type screenState int

const (
	stateMenu screenState = iota
	stateIntroCutscene
	statePlaying
	stateNightCutscene
	stateDied
	stateWon
)

// Game is the Ebiten shell around a World: input, camera, audio and drawing.
type Game struct {
	cfg   Config
	world *World

	state    screenState
	cutscene *Cutscene
	// The night cutscene plays only on the first transformation of a round.
	nightCutsceneShown bool

	camera *Camera
	cues   *AudioCues
	fxRng  *rand.Rand

	prevKeys  map[ebiten.Key]bool
	prevMouse bool
}

func New() *Game {
	cfg := DefaultConfig()
	g := &Game{
		cfg:      cfg,
		world:    NewWorld(cfg, time.Now().UnixNano()),
		state:    stateMenu,
		camera:   NewCamera(&cfg),
		cues:     NewAudioCues(audio.NewContext(audioSampleRate)),
		fxRng:    rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 -- visual jitter only
		prevKeys: map[ebiten.Key]bool{},
	}
	return g
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenW, g.cfg.ScreenH
}

// keyPressedOnce reports an edge-triggered key press.
func (g *Game) keyPressedOnce(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = down
	return down && !was
}

// mouseClicked reports an edge-triggered left click at the cursor.
func (g *Game) mouseClicked() (int, int, bool) {
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	was := g.prevMouse
	g.prevMouse = down
	if down && !was {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	return 0, 0, false
}

func (g *Game) Update() error {
	switch g.state {
	case stateMenu:
		g.updateMenu()
	case stateIntroCutscene, stateNightCutscene:
		g.updateCutscene()
	case statePlaying:
		g.updatePlaying()
	case stateDied, stateWon:
		g.updateEndScreen()
	}
	return nil
}

func (g *Game) updateMenu() {
	if x, y, ok := g.mouseClicked(); ok && g.menuStartButton().contains(x, y) {
		g.world.Reset(time.Now().UnixNano())
		g.nightCutsceneShown = false
		g.cutscene = NewCutscene(introText)
		g.state = stateIntroCutscene
	}
}

func (g *Game) updateCutscene() {
	g.cutscene.Update(tickDt)
	if g.keyPressedOnce(ebiten.KeySpace) {
		if g.cutscene.Finished() {
			g.cutscene = nil
			g.state = statePlaying
		} else {
			g.cutscene.Skip()
		}
	}
}

func (g *Game) updatePlaying() {
	if g.keyPressedOnce(ebiten.KeyEscape) {
		g.state = stateMenu
		return
	}
	if g.keyPressedOnce(ebiten.KeyF1) {
		if err := g.world.CopyReport(); err != nil {
			log.Printf("copy report: %v", err)
		}
	}

	events := g.world.Step(tickDt, g.readPlayerInput())
	g.cues.OnEvents(events)

	for _, e := range events {
		switch e.Kind {
		case EventNightBegin:
			if !g.nightCutsceneShown {
				g.nightCutsceneShown = true
				g.cutscene = NewCutscene(nightText)
				g.state = stateNightCutscene
			}
		case EventPlayerHit, EventPlayerBump:
			g.camera.Shake(g.world.Now())
		case EventLose:
			g.state = stateDied
		case EventWin:
			g.state = stateWon
		}
	}

	p := g.world.Player()
	g.camera.Update(g.world.Now(), p.Pos(), p.Vel(), g.fxRng)
}

func (g *Game) updateEndScreen() {
	if x, y, ok := g.mouseClicked(); ok && g.menuBackButton().contains(x, y) {
		g.state = stateMenu
	}
}

func (g *Game) readPlayerInput() PlayerInput {
	var in PlayerInput
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.Move.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.Move.Y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.Move.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.Move.X += 1
	}
	in.Sprint = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case stateMenu:
		g.drawMenu(screen)
	case stateDied:
		g.drawEndScreen(screen, "YOU DIED", color.RGBA{R: 180, G: 30, B: 30, A: 255})
	case stateWon:
		g.drawEndScreen(screen, "YOU SURVIVED", color.RGBA{R: 230, G: 200, B: 80, A: 255})
	default:
		g.drawWorld(screen)
		if g.cutscene != nil {
			g.drawCutscene(screen, g.cutscene)
		}
	}
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	w := g.world
	cycle := w.Cycle()
	sky := SkyColor(cycle.Elapsed(), g.cfg.DayLength, g.cfg.NightLength)
	screen.Fill(sky)

	off := g.camera.Offset()

	// Obstacles.
	obCol := color.RGBA{R: 96, G: 72, B: 48, A: 255}
	for _, ob := range w.Obstacles() {
		vector.FillRect(screen,
			float32(ob.X-off.X), float32(ob.Y-off.Y),
			float32(ob.W), float32(ob.H), obCol, false)
	}

	// Villagers, colored by mode.
	for _, v := range w.Villagers() {
		var c color.RGBA
		switch {
		case v.Hit():
			c = color.RGBA{R: 255, G: 60, B: 60, A: 200}
		case v.Mode() == ModeFlee:
			c = color.RGBA{R: 90, G: 190, B: 90, A: 255}
		case v.Mode() == ModeHalt:
			c = color.RGBA{R: 140, G: 140, B: 140, A: 255}
		default:
			c = color.RGBA{R: 200, G: 70, B: 40, A: 255}
		}
		x := float32(v.Pos().X - off.X)
		y := float32(v.Pos().Y - off.Y)
		vector.DrawFilledCircle(screen, x, y, float32(g.cfg.VillagerRadius), c, true)
		drawFacingTick(screen, v.Pos(), v.Facing(), g.cfg.VillagerRadius, off)
	}

	// Player. The wolf form is drawn darker at night.
	p := w.Player()
	pc := color.RGBA{R: 235, G: 225, B: 200, A: 255}
	if cycle.IsNight() {
		pc = color.RGBA{R: 70, G: 70, B: 90, A: 255}
	}
	if p.Flashing(w.Now()) {
		pc = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	}
	px := float32(p.Pos().X - off.X)
	py := float32(p.Pos().Y - off.Y)
	vector.DrawFilledCircle(screen, px, py, float32(g.cfg.PlayerRadius), pc, true)
	drawFacingTick(screen, p.Pos(), p.Facing(), g.cfg.PlayerRadius, off)

	// Night darkness.
	if cycle.IsNight() {
		vector.FillRect(screen, 0, 0,
			float32(g.cfg.ScreenW), float32(g.cfg.ScreenH),
			color.RGBA{A: g.cfg.DarkAlpha}, false)
	}

	g.drawHUD(screen)
}

// drawFacingTick draws a short heading line from an agent toward its facing.
func drawFacingTick(screen *ebiten.Image, pos Vec, f Facing, radius float64, off Vec) {
	var d Vec
	switch f {
	case FacingDown:
		d = Vec{0, 1}
	case FacingUp:
		d = Vec{0, -1}
	case FacingLeft:
		d = Vec{-1, 0}
	case FacingRight:
		d = Vec{1, 0}
	}
	end := pos.Add(d.Scale(radius * 1.6))
	ebitenutil.DrawLine(screen,
		pos.X-off.X, pos.Y-off.Y, end.X-off.X, end.Y-off.Y,
		color.RGBA{R: 255, G: 255, B: 255, A: 160})
}
