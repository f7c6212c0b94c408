package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"mazecaster/caster"
	"mazecaster/config"
	"mazecaster/engine"
	"mazecaster/frametime"
	"mazecaster/hud"
	"mazecaster/model"
	"mazecaster/monitoring"
	"mazecaster/render"
	"mazecaster/sprite"
	"mazecaster/texture"
)

// main game object
type Game struct {
	cfg *config.Config

	grid  model.Grid
	pose  model.Pose
	start model.Pose

	renderer *render.Renderer
	sprites  *sprite.Manager
	fb       *engine.Framebuffer
	hud      *hud.HUD
	minimap  hud.Minimap
	meter    *frametime.Meter

	now      func() time.Time
	lastTick time.Time

	paused      bool
	won         bool
	showMinimap bool
	topDown     bool

	mouseX, mouseY int
	pad            gamepad
}

// NewGame loads the maze and assets described by cfg. Missing optional
// assets are logged and replaced by fallbacks.
func NewGame(cfg *config.Config) (*Game, error) {
	grid, err := loadMaze(cfg.Maze.Path)
	if err != nil {
		return nil, err
	}

	params := caster.Params{
		BlockSize:   cfg.Maze.BlockSize,
		MaxDistance: cfg.Caster.MaxDistance,
		Step:        cfg.Caster.Step,
	}
	renderer := render.NewRenderer(params)
	renderer.ProjectionConstant = cfg.Render.Projection
	renderer.WallTexture = loadTexture(cfg.Render.WallTexture, cfg.Render.TextureMaxSize)
	renderer.FloorTexture = loadTexture(cfg.Render.FloorTexture, cfg.Render.TextureMaxSize)

	var ttf []byte
	if cfg.HUD.Font != "" {
		if ttf, err = os.ReadFile(cfg.HUD.Font); err != nil {
			monitoring.Logf("hud font %s: %v, using Go Regular", cfg.HUD.Font, err)
			ttf = nil
		}
	}
	overlay, err := hud.New(ttf)
	if err != nil {
		return nil, err
	}

	start := model.NewPose(cfg.Player.StartX, cfg.Player.StartY, cfg.StartAngleRadians(), cfg.FOVRadians())

	g := &Game{
		cfg:         cfg,
		grid:        grid,
		pose:        start,
		start:       start,
		renderer:    renderer,
		sprites:     newSpriteManager(cfg, grid),
		fb:          engine.NewFramebuffer(cfg.Window.Width, cfg.Window.Height),
		hud:         overlay,
		minimap:     hud.NewMinimap(),
		meter:       frametime.NewMeter(cfg.Window.TargetFPS * 2),
		now:         time.Now,
		showMinimap: cfg.HUD.ShowMinimap,
		mouseX:      math.MinInt32,
		mouseY:      math.MinInt32,
	}
	g.minimap.Scale = cfg.HUD.MinimapScale
	g.fb.SetBackgroundColor(renderer.CeilingColor)
	return g, nil
}

func loadTexture(path string, maxSize int) *texture.Cache {
	if path == "" {
		return nil
	}
	tex, err := texture.Load(path, maxSize)
	if err != nil {
		monitoring.Logf("texture %s: %v, using fallback colors", path, err)
		return nil
	}
	return tex
}

func newSpriteManager(cfg *config.Config, grid model.Grid) *sprite.Manager {
	params := sprite.DefaultParams()
	params.VisibilityRadius = cfg.Sprites.VisibilityRadius
	params.Projection = cfg.Sprites.Projection
	params.FrameDuration = cfg.Sprites.FrameDuration
	params.TargetCount = cfg.Sprites.TargetCount

	seed := cfg.Sprites.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m := sprite.NewManager(params, seed)
	if !cfg.Sprites.Enabled {
		return m
	}

	if cfg.Sprites.GIF != "" {
		tex, err := sprite.LoadGIF(cfg.Sprites.GIF, cfg.Sprites.MaxFrames)
		if err != nil {
			monitoring.Logf("sprite animation: %v, drawing flat billboards", err)
		} else {
			m.SetTexture(sprite.KindWisp, tex)
		}
	}

	if _, err := m.Spawn(grid, cfg.Maze.BlockSize); err != nil {
		monitoring.Logf("sprites disabled: %v", err)
	}
	return m
}

// restart puts the player back at the start pose.
func (g *Game) restart() {
	g.pose = g.start
	g.won = false
	g.mouseX, g.mouseY = math.MinInt32, math.MinInt32
	g.meter.Reset()
}

// Run is the Ebiten Run loop caller
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetTPS(g.cfg.Window.TargetFPS)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	return ebiten.RunGame(g)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width(), g.fb.Height()
}

// Update handles input, advances sprite animation by the real time elapsed
// since the previous tick and checks for the goal.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := g.now()
	dt := g.cfg.FrameInterval()
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick)
	}
	g.lastTick = now
	g.meter.Observe(dt)

	g.handleInput()
	if g.paused || g.won {
		return nil
	}

	g.sprites.Update(dt)

	if model.ReachedGoal(g.grid, g.pose.Position, g.cfg.Maze.BlockSize) {
		g.won = true
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.fb.Clear()

	block := g.cfg.Maze.BlockSize
	if g.topDown {
		full := hud.Minimap{Scale: hud.FitScale(g.grid, g.fb.Width(), g.fb.Height()), Centered: true}
		full.Draw(g.fb, g.grid, g.pose, block, g.sprites.Sprites)
	} else {
		g.renderer.RenderWorld(g.fb, g.grid, g.pose)
		g.sprites.Render(g.fb, g.grid, g.pose, block)
		if g.showMinimap {
			g.minimap.Draw(g.fb, g.grid, g.pose, block, g.sprites.Sprites)
		}
	}

	if g.won {
		g.hud.DrawVictory(g.fb)
	} else if g.cfg.HUD.ShowFPS {
		mode := "3D"
		if g.topDown {
			mode = "2D"
		}
		mean, sd := g.meter.Stats()
		g.hud.DrawStatus(g.fb,
			fmt.Sprintf("FPS: %.1f  frame %.1f ms ± %.1f", g.meter.FPS(), ms(mean), ms(sd)),
			fmt.Sprintf("Mode: %s (M or Triangle to change)", mode),
			g.pad.status(),
		)
	}

	screen.WritePixels(g.fb.Pix())

	if g.paused {
		ebitenutil.DebugPrintAt(screen, "paused (P to resume)", 10, g.fb.Height()-20)
	}
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
