package ebitenview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/arix"
)

// Options configures a Game.
type Options struct {
	// FontData is a TTF/OTF used for the overlay. Nil selects Go Regular,
	// which has no CJK glyphs.
	FontData []byte
	ShowFPS  bool

	// Script, when set, drives the scene alongside user input.
	Script *Script
	// ScreenshotDir receives PNGs for script screenshot steps. Empty
	// selects "screenshots".
	ScreenshotDir string
}

// Game implements ebiten.Game for an arix scene.
type Game struct {
	scene    *arix.Scene
	ctrl     *arix.Controller
	renderer *Renderer
	overlay  *overlay
	fps      *fpsWidget
	pointer  pointerState

	script  *Script
	shotDir string
	shots   []string
	frame   int

	w, h int
}

// NewGame attaches a renderer to scene and builds the overlay.
func NewGame(scene *arix.Scene, ctrl *arix.Controller, opts Options) (*Game, error) {
	font := opts.FontData
	if font == nil {
		font = goregular.TTF
	}
	ov, err := newOverlay(font)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g := &Game{
		scene:    scene,
		ctrl:     ctrl,
		renderer: NewRenderer(),
		overlay:  ov,
		script:   opts.Script,
		shotDir:  opts.ScreenshotDir,
	}
	if g.shotDir == "" {
		g.shotDir = "screenshots"
	}
	if opts.ShowFPS {
		g.fps = newFPSWidget()
	}
	scene.Attach(g.renderer)
	return g, nil
}

// Update advances the scene by one tick.
func (g *Game) Update() error {
	in := g.pointer.readInput(g.overlay.button)
	if g.script != nil {
		f := g.script.step()
		if f.quit {
			return ebiten.Termination
		}
		in = mergeIntent(in, f.in)
		if f.screenshot != "" {
			g.shots = append(g.shots, f.screenshot)
		}
	}
	g.step(in, 1/float64(ebiten.TPS()))
	g.frame++
	return nil
}

func mergeIntent(a, b intent) intent {
	return intent{
		toggle: a.toggle || b.toggle,
		rotate: a.rotate + b.rotate,
		zoom:   a.zoom * b.zoom,
	}
}

func (g *Game) step(in intent, dt float64) {
	if in.toggle {
		g.ctrl.Toggle()
	}
	cam := g.scene.Camera()
	if in.rotate != 0 {
		cam.Rotate(in.rotate)
	}
	if in.zoom != 1 {
		cam.Zoom(in.zoom)
	}
	g.scene.Update(dt)
	g.overlay.update(dt, g.ctrl.Overlay())
	if g.fps != nil {
		g.fps.update(dt)
	}
}

// Draw renders the particles and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(arix.BackgroundDark, 1))

	b := screen.Bounds()
	g.renderer.Begin(g.scene, b.Dx(), b.Dy())
	g.scene.Draw(g.renderer)
	g.renderer.Draw(screen)

	g.overlay.draw(screen, g.ctrl.Overlay())
	if g.fps != nil {
		g.fps.draw(screen)
	}

	g.saveShots(screen)
}

// Layout keeps a 1:1 pixel mapping.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.overlay.layout(g.w, g.h)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window titled title and blocks until it is closed.
func Run(g *Game, title string, width, height int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
