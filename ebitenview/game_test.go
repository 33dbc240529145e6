package ebitenview

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/phanxgames/arix"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	s := newScene(t)
	greeter := arix.NewGreeter(arix.GreetingFunc(func(context.Context) (string, error) {
		return "Merry Christmas", nil
	}), 0)
	ctrl := arix.NewController(s, greeter, 0, rand.New(rand.NewPCG(1, 1)))
	g, err := NewGame(s, ctrl, Options{})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewGameRejectsBadFont(t *testing.T) {
	s := newScene(t)
	ctrl := arix.NewController(s, nil, 0, nil)
	if _, err := NewGame(s, ctrl, Options{FontData: []byte("not a font")}); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestLayoutPlacesButton(t *testing.T) {
	g := newGame(t)
	w, h := g.Layout(1280, 720)
	if w != 1280 || h != 720 {
		t.Fatalf("Layout = %dx%d", w, h)
	}
	b := g.overlay.button
	if b.x+b.w/2 != 640 {
		t.Errorf("button center x = %v, want 640", b.x+b.w/2)
	}
	if b.y+b.h > 720 || b.y < 360 {
		t.Errorf("button y = %v, want in lower half", b.y)
	}
}

func TestStepTogglesAndOrbits(t *testing.T) {
	g := newGame(t)
	g.Layout(800, 600)

	g.step(intent{toggle: true, zoom: 1}, 1.0/60)
	if g.ctrl.State() != arix.StateTreeShape {
		t.Fatalf("State = %v, want TREE_SHAPE", g.ctrl.State())
	}
	g.ctrl.Greeter().Wait()

	az := g.scene.Camera().Azimuth
	g.step(intent{rotate: 0.2, zoom: 1.5}, 1.0/60)
	if g.scene.Camera().Azimuth <= az {
		t.Errorf("azimuth did not advance: %v -> %v", az, g.scene.Camera().Azimuth)
	}
	if g.scene.Camera().ZoomLevel() != 1.5 {
		t.Errorf("ZoomLevel = %v, want 1.5", g.scene.Camera().ZoomLevel())
	}
}

func TestGreetingFadesIn(t *testing.T) {
	g := newGame(t)
	g.Layout(800, 600)
	g.step(intent{toggle: true, zoom: 1}, 0)
	g.ctrl.Greeter().Wait()

	for i := 0; i < 120; i++ {
		g.step(intent{zoom: 1}, 1.0/60)
	}
	if g.overlay.shown != "“Merry Christmas”" {
		t.Errorf("shown = %q", g.overlay.shown)
	}
	if g.overlay.greeting.Value < 0.99 {
		t.Errorf("greeting alpha = %v, want ~1", g.overlay.greeting.Value)
	}

	g.step(intent{toggle: true, zoom: 1}, 1.0/60)
	for i := 0; i < 60; i++ {
		g.step(intent{zoom: 1}, 1.0/60)
	}
	if g.overlay.greeting.Value != 0 {
		t.Errorf("greeting alpha after scatter = %v, want 0", g.overlay.greeting.Value)
	}
}
