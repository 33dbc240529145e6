package termview

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/arix"
)

const frameInterval = time.Second / 30

var (
	titleStyle    = styleFor(arix.GoldMetallic).Bold(true)
	subtitleStyle = styleFor(arix.EmeraldLight)
	greetingStyle = styleFor(arix.GoldRose).Italic(true)
	hintStyle     = styleFor(arix.Silver).Dim(true)
)

// View drives a scene in a terminal: it polls keys, advances the scene on a
// fixed tick, and blits the canvas plus overlay text to the screen.
type View struct {
	screen tcell.Screen
	scene  *arix.Scene
	ctrl   *arix.Controller
	canvas *Canvas
}

// New creates a view over an initialized screen.
func New(screen tcell.Screen, scene *arix.Scene, ctrl *arix.Controller) *View {
	w, h := screen.Size()
	v := &View{
		screen: screen,
		scene:  scene,
		ctrl:   ctrl,
		canvas: NewCanvas(w, h),
	}
	scene.Attach(v.canvas)
	return v
}

// Canvas returns the view's raster.
func (v *View) Canvas() *Canvas { return v.canvas }

// Run loops until ctx is cancelled or the user quits with q or Esc.
func (v *View) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if v.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			v.scene.Update(now.Sub(last).Seconds())
			last = now
			v.Draw()
		}
	}
}

// HandleEvent applies one terminal event and reports whether to quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
			return true
		case ev.Key() == tcell.KeyEnter || ev.Rune() == ' ':
			v.ctrl.Toggle()
		}
	case *tcell.EventResize:
		w, h := v.screen.Size()
		v.canvas.Resize(w, h)
		v.screen.Sync()
	}
	return false
}

// Draw rasterizes the scene and the overlay and shows the frame.
func (v *View) Draw() {
	v.canvas.Begin(v.scene)
	v.scene.Draw(v.canvas)

	bg := styleFor(arix.BackgroundDark).Background(toColor(arix.BackgroundDark))
	w, h := v.canvas.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := v.canvas.At(x, y)
			v.screen.SetContent(x, y, c.Rune, nil, bg.Foreground(toColor(c.Color)))
		}
	}
	v.drawOverlay(w, h)
	v.screen.Show()
}

func (v *View) drawOverlay(w, h int) {
	o := v.ctrl.Overlay()
	drawText(v.screen, 2, 1, o.Title, titleStyle)
	drawText(v.screen, 2, 2, o.Subtitle, subtitleStyle)
	if o.Greeting != "" {
		style := greetingStyle
		if o.Loading {
			style = hintStyle
		}
		drawCentered(v.screen, w, h/2, o.Greeting, style)
	}
	drawCentered(v.screen, w, h-2, "[ "+o.Action+" ]  space", titleStyle)
}

// drawText writes s at (x, y) honoring wide runes and returns the end column.
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func drawCentered(s tcell.Screen, w, y int, text string, style tcell.Style) {
	x := (w - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	drawText(s, x, y, text, style)
}

func toColor(c arix.Color) tcell.Color {
	r, g, b, _ := c.RGBA8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func styleFor(c arix.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(toColor(c))
}
