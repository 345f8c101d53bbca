package main

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/groundwork-games/tilerunner/common"
	"github.com/groundwork-games/tilerunner/kinematics"
	"github.com/groundwork-games/tilerunner/levels"
	"github.com/groundwork-games/tilerunner/profiles"
	"github.com/groundwork-games/tilerunner/script"
)

const (
	baseWidth  = 800
	baseHeight = 448

	// wall-clock steps are clamped so a debugger pause or window drag
	// can't integrate one giant frame and tunnel the body.
	maxStep = 1.0 / 30.0
)

type coin struct {
	pos   cp.Vector
	taken bool
}

type Game struct {
	logger *log.Logger

	input  *Input
	grid   *kinematics.Grid
	body   *kinematics.Body
	sprite *PlayerSprite
	camera *Camera
	sounds *Sounds

	scripts *script.Runtime

	profileName string
	watcher     *profiles.Watcher

	coins     []coin
	coinCount int
	flag      *cp.BB
	flagDone  bool
	fade      float64

	world    *ebiten.Image
	backdrop *Backdrop

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool

	last time.Time
}

func NewGame(logger *log.Logger, levelName, profileName string, mute bool) (*Game, error) {
	prof, err := profiles.Load(profileName)
	if err != nil {
		return nil, err
	}
	cfg := prof.Config()

	rows, err := levels.Load(levelName)
	if err != nil {
		return nil, err
	}
	grid, markers := kinematics.Parse(rows, cfg.TileSize)
	if w, h := grid.Size(); w == 0 || h == 0 {
		return nil, fmt.Errorf("level %s is empty", levelName)
	}

	body, err := kinematics.NewBody(cfg, markers.Spawn, cfg.TileSize*0.75, cfg.TileSize,
		[]kinematics.Pose{kinematics.PoseIdle, kinematics.PoseRun, kinematics.PoseJump})
	if err != nil {
		return nil, err
	}

	sounds := NewSounds(mute)
	scripts, err := script.Load("level", script.Engine{
		Log:   func(msg string) { logger.Info(msg, "source", "script") },
		Sound: sounds.Play,
	})
	if err != nil {
		return nil, fmt.Errorf("level script: %w", err)
	}

	worldW, worldH := grid.PixelSize()
	g := &Game{
		logger:      logger,
		input:       NewInput(),
		grid:        grid,
		body:        body,
		sprite:      NewPlayerSprite(body.W, body.H),
		camera:      NewCamera(baseWidth, baseHeight, worldW, worldH),
		sounds:      sounds,
		scripts:     scripts,
		profileName: profileName,
		flag:        markers.Flag,
		last:        time.Now(),
	}
	for _, pos := range markers.Coins {
		g.coins = append(g.coins, coin{pos: pos})
	}
	g.world = renderWorld(grid)
	g.backdrop = NewBackdrop()
	g.pauseUI = NewPauseUI(g)
	g.camera.Snap(bodyCenter(body))

	if info, err := os.Stat(profiles.Dir); err == nil && info.IsDir() {
		w, werr := profiles.NewWatcher(profiles.Dir)
		if werr != nil {
			logger.Warn("profile watch unavailable", "err", werr)
		} else {
			g.watcher = w
			logger.Info("watching for profile edits", "dir", profiles.Dir)
		}
	}

	logger.Info("level loaded",
		"level", levelName, "profile", prof.Name,
		"coins", len(g.coins), "world", fmt.Sprintf("%.0fx%.0f", worldW, worldH))
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if pauseToggled() && !g.flagDone {
		g.paused = !g.paused
		g.last = time.Now()
	}
	if g.paused {
		g.pauseUI.Update()
		if g.quit {
			return ebiten.Termination
		}
		return nil
	}

	now := time.Now()
	dt := now.Sub(g.last).Seconds()
	g.last = now
	dt = common.Clamp(dt, 0, maxStep)

	g.drainProfileEvents()

	g.input.Update()
	frame := g.input.Frame()
	if g.flagDone {
		frame = kinematics.Frame{}
	}

	ev := g.body.Step(frame, g.grid, dt)
	if ev.Jumped {
		g.sounds.Play("jump")
	}
	if ev.Landed {
		g.sounds.Play("land")
	}

	g.pickups()
	g.checkFlag()
	g.checkFallOut()

	g.camera.Follow(bodyCenter(g.body))

	if g.flagDone {
		g.fade = common.Clamp(g.fade+dt*1.5, 0, 1)
		if g.fade >= 1 {
			return ebiten.Termination
		}
	}
	return nil
}

func (g *Game) pickups() {
	bb := g.body.BB()
	ts := g.grid.TileSize()
	for idx := range g.coins {
		c := &g.coins[idx]
		if c.taken {
			continue
		}
		r := ts / 4
		coinBB := kinematics.Rect(c.pos.X-r, c.pos.Y-r, 2*r, 2*r)
		if bb.Intersects(coinBB) {
			c.taken = true
			g.coinCount++
			if err := g.scripts.Dispatch("coin", g.coinCount); err != nil {
				g.logger.Warn("script error", "event", "coin", "err", err)
			}
		}
	}
}

func (g *Game) checkFlag() {
	if g.flagDone || g.flag == nil {
		return
	}
	if g.body.BB().Intersects(*g.flag) {
		g.flagDone = true
		if err := g.scripts.Dispatch("flag", g.coinCount); err != nil {
			g.logger.Warn("script error", "event", "flag", "err", err)
		}
	}
}

func (g *Game) checkFallOut() {
	_, worldH := g.grid.PixelSize()
	if g.body.Pos.Y > worldH+4*g.grid.TileSize() {
		g.body.Reset()
		g.camera.Snap(bodyCenter(g.body))
		if err := g.scripts.Dispatch("respawn", g.coinCount); err != nil {
			g.logger.Warn("script error", "event", "respawn", "err", err)
		}
	}
}

// drainProfileEvents applies pending tuning edits without blocking the
// frame. Tile size is pinned for the lifetime of a level because the
// grid geometry was built from it.
func (g *Game) drainProfileEvents() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			prof, err := profiles.Load(g.profileName)
			if err != nil {
				g.logger.Warn("profile reload failed", "file", name, "err", err)
				continue
			}
			cfg := prof.Config()
			if cfg.TileSize != g.grid.TileSize() {
				g.logger.Warn("tile size change needs a restart", "have", g.grid.TileSize(), "want", cfg.TileSize)
				cfg.TileSize = g.grid.TileSize()
			}
			g.body.SetConfig(cfg)
			g.logger.Info("profile reloaded", "file", name)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				g.logger.Warn("profile watch", "err", err)
			}
			return
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	camX, camY := g.camera.ViewTopLeft()
	g.backdrop.Draw(screen, camX)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-camX, -camY)
	screen.DrawImage(g.world, op)

	ts := g.grid.TileSize()
	for _, c := range g.coins {
		if c.taken {
			continue
		}
		x := float32(c.pos.X - camX)
		y := float32(c.pos.Y - camY)
		vector.DrawFilledCircle(screen, x, y, float32(ts/4), colornames.Gold, true)
		vector.DrawFilledCircle(screen, x-1, y-1, float32(ts/8), colornames.Lightyellow, true)
	}

	if g.flag != nil {
		fx := float32(g.flag.L - camX)
		fy := float32(g.flag.B - camY)
		fh := float32(g.flag.T - g.flag.B)
		vector.DrawFilledRect(screen, fx, fy, 3, fh, colornames.Silver, false)
		vector.DrawFilledRect(screen, fx+3, fy+4, float32(ts/2), float32(ts/3), colornames.Forestgreen, false)
	}

	g.sprite.Draw(screen, g.body, camX, camY)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("COINS %02d", g.coinCount), 6, 6)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f FPS", ebiten.ActualFPS()), baseWidth-60, 6)

	if g.fade > 0 {
		overlay := ebiten.NewImage(baseWidth, baseHeight)
		overlay.Fill(color.NRGBA{A: uint8(g.fade * 255)})
		screen.DrawImage(overlay, nil)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func bodyCenter(b *kinematics.Body) cp.Vector {
	return cp.Vector{X: b.Pos.X + b.W/2, Y: b.Pos.Y + b.H/2}
}

// renderWorld rasterizes the static tiles once. Coins, the flag, and
// the player are drawn live on top.
func renderWorld(grid *kinematics.Grid) *ebiten.Image {
	pw, ph := grid.PixelSize()
	img := ebiten.NewImage(int(pw), int(ph))

	ts := grid.TileSize()
	w, h := grid.Size()
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			x := float32(float64(cx) * ts)
			y := float32(float64(cy) * ts)
			switch grid.Classify(cx, cy) {
			case kinematics.CellSolid:
				vector.DrawFilledRect(img, x, y, float32(ts), float32(ts), colornames.Saddlebrown, false)
				vector.DrawFilledRect(img, x, y, float32(ts), float32(ts)/4, colornames.Forestgreen, false)
			case kinematics.CellOneWay:
				vector.DrawFilledRect(img, x, y, float32(ts), float32(ts)/4, colornames.Peru, false)
			}
		}
	}
	return img
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
