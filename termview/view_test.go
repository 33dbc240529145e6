package termview

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/arix"
)

func newView(t *testing.T) (*View, tcell.SimulationScreen, *arix.Controller) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 30)

	s := newScene(t)
	g := arix.NewGreeter(arix.GreetingFunc(func(context.Context) (string, error) {
		return "平安", nil
	}), 0)
	ctrl := arix.NewController(s, g, 0, rand.New(rand.NewPCG(3, 4)))
	return New(screen, s, ctrl), screen, ctrl
}

func TestViewDrawsTitle(t *testing.T) {
	v, screen, _ := newView(t)
	v.Draw()
	for i, want := range arix.Title {
		r, _, _, _ := screen.GetContent(2+i, 1)
		if r != want {
			t.Errorf("title[%d] = %q, want %q", i, r, want)
		}
	}
}

func TestViewSpaceToggles(t *testing.T) {
	v, _, ctrl := newView(t)
	quit := v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if quit {
		t.Fatal("space should not quit")
	}
	if ctrl.State() != arix.StateTreeShape {
		t.Errorf("State = %v, want TREE_SHAPE", ctrl.State())
	}
	v.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if ctrl.State() != arix.StateScattered {
		t.Errorf("State = %v, want SCATTERED", ctrl.State())
	}
	ctrl.Greeter().Wait()
}

func TestViewQuitKeys(t *testing.T) {
	v, _, _ := newView(t)
	if !v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if !v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc should quit")
	}
}

func TestViewResize(t *testing.T) {
	v, screen, _ := newView(t)
	screen.SetSize(60, 20)
	v.HandleEvent(tcell.NewEventResize(60, 20))
	if w, h := v.Canvas().Size(); w != 60 || h != 20 {
		t.Errorf("canvas = %dx%d, want 60x20", w, h)
	}
}

func TestViewShowsGreeting(t *testing.T) {
	v, screen, ctrl := newView(t)
	ctrl.Toggle()
	ctrl.Greeter().Wait()
	v.Draw()

	w, h := screen.Size()
	want := ctrl.Overlay().Greeting
	found := false
	for x := 0; x < w; x++ {
		if r, _, _, _ := screen.GetContent(x, h/2); r == '平' {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("greeting %q not drawn on row %d", want, h/2)
	}
}
