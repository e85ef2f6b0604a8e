package canopy

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures a Game and its window.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws an FPS readout in the top-left corner over every scene.
	ShowFPS bool
	// MaxDelta, when positive, caps the per-frame delta in seconds.
	MaxDelta float64
	// Clock overrides the time source. Nil uses wall time.
	Clock Clock
	// ScreenshotDir receives Screenshot captures. Defaults to "screenshots".
	ScreenshotDir string
}

// Game owns the active scene together with the layer allocator, input
// snapshot, camera and frame loop shared by every scene it creates. It
// implements ebiten.Game.
type Game struct {
	config RunConfig

	layers  *LayerAllocator
	input   *Input
	camera  *Camera
	loop    *Loop
	scene   *Scene
	overlay *ScreenGUI
	runner  *TestRunner
	shots   []string
	debug   bool
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a game with no scene. The loop starts idle; call Start or
// use Run.
func NewGame(cfg RunConfig) *Game {
	g := &Game{
		config: cfg,
		layers: NewLayerAllocator(),
		input:  NewInput(),
		camera: NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}),
	}
	g.loop = NewLoop(cfg.Clock, g.step)
	g.loop.MaxDelta = cfg.MaxDelta
	if cfg.ShowFPS {
		g.overlay = &ScreenGUI{Enabled: true}
		NewFPSLabel(g.overlay)
	}
	return g
}

// NewScene creates a scene that shares the game's layer allocator and input.
func (g *Game) NewScene() *Scene {
	s := NewScene(g.layers, g.input)
	s.SetDebugMode(g.debug)
	return s
}

// SetScene makes s the active scene. Nil clears it.
func (g *Game) SetScene(s *Scene) {
	g.scene = s
}

// Scene returns the active scene, or nil.
func (g *Game) Scene() *Scene {
	return g.scene
}

// Layers returns the game's layer allocator.
func (g *Game) Layers() *LayerAllocator {
	return g.layers
}

// Input returns the game's input snapshot.
func (g *Game) Input() *Input {
	return g.input
}

// Camera returns the game's camera.
func (g *Game) Camera() *Camera {
	return g.camera
}

// Loop returns the game's frame loop.
func (g *Game) Loop() *Loop {
	return g.loop
}

// KeyDown reports whether key k is held.
func (g *Game) KeyDown(k ebiten.Key) bool {
	return g.input.KeyDown(k)
}

// Start schedules the frame loop.
func (g *Game) Start() {
	g.loop.Start()
}

// Stop cancels the frame loop. The next Update does no work.
func (g *Game) Stop() {
	g.loop.Stop()
}

// SetTestRunner attaches a scripted input runner. While attached, the runner
// drives Input instead of the real mouse and keyboard.
func (g *Game) SetTestRunner(r *TestRunner) {
	g.runner = r
}

// SetDebugMode toggles debug logging on the game and its active scene.
// Scenes created afterwards inherit the setting.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
	if g.scene != nil {
		g.scene.SetDebugMode(enabled)
	}
}

// Update polls input and runs one loop tick.
func (g *Game) Update() error {
	if g.runner != nil {
		g.runner.step(g.input, g.camera)
		g.shots = append(g.shots, g.runner.takeScreenshots()...)
	} else {
		g.input.Poll(g.camera)
	}
	g.loop.Tick()
	return nil
}

// step is the loop body: camera animation, then the scene (objects before
// UI), then the overlay.
func (g *Game) step(dt float64) {
	g.camera.update(float32(dt))
	s := g.scene
	if s == nil || s.Paused {
		return
	}
	s.Update(dt)
	if g.overlay != nil {
		g.overlay.Update(dt, s.commands)
	}
}

// Draw clears the screen and submits the active scene's commands.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.scene
	if s == nil {
		return
	}
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.commands.Submit(screen, g.camera)
	if g.debug {
		debugLogf("submit: %v | commands: %d", time.Since(t0), s.commands.Len())
	}
	g.flushScreenshots(screen)
}

// Layout keeps the configured logical size, or follows the window when
// none was configured.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.config.Width > 0 && g.config.Height > 0 {
		return g.config.Width, g.config.Height
	}
	return outsideWidth, outsideHeight
}

// Run opens a window, starts the loop and blocks until the window closes.
func Run(g *Game) error {
	if g.config.Width > 0 && g.config.Height > 0 {
		ebiten.SetWindowSize(g.config.Width, g.config.Height)
	}
	if g.config.Title != "" {
		ebiten.SetWindowTitle(g.config.Title)
	}
	g.Start()
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("canopy: run: %w", err)
	}
	return nil
}
