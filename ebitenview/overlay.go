package ebitenview

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/arix"
)

const (
	hintText        = "滚动缩放 • 拖拽旋转"
	greetingFadeIn  = 1.0
	greetingFadeOut = 0.5
	margin          = 32.0
)

// overlay draws the title block, the greeting and the toggle button.
type overlay struct {
	title *text.GoTextFace
	body  *text.GoTextFace
	small *text.GoTextFace

	greeting *arix.Fade
	shown    string
	button   rect
}

func newOverlay(fontData []byte) (*overlay, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &overlay{
		title:    &text.GoTextFace{Source: src, Size: 48},
		body:     &text.GoTextFace{Source: src, Size: 24},
		small:    &text.GoTextFace{Source: src, Size: 12},
		greeting: arix.NewFade(0),
	}, nil
}

// layout places the button at the bottom center of a w x h screen.
func (o *overlay) layout(w, h int) {
	const bw, bh = 260.0, 52.0
	o.button = rect{
		x: (float64(w) - bw) / 2,
		y: float64(h) - margin - 28 - bh,
		w: bw,
		h: bh,
	}
}

// update fades a new greeting in and a cleared one out. The last text is
// kept while it fades away.
func (o *overlay) update(dt float64, ot arix.OverlayText) {
	switch {
	case ot.Greeting == "":
		o.greeting.To(0, greetingFadeOut, ease.InQuad)
	case ot.Greeting != o.shown:
		o.shown = ot.Greeting
		o.greeting = arix.NewFade(0)
		o.greeting.To(1, greetingFadeIn, ease.OutQuad)
	default:
		o.greeting.To(1, greetingFadeIn, ease.OutQuad)
	}
	o.greeting.Update(float32(dt))
}

func (o *overlay) draw(dst *ebiten.Image, ot arix.OverlayText) {
	w, h := float64(dst.Bounds().Dx()), float64(dst.Bounds().Dy())

	drawText(dst, ot.Title, o.title, margin, margin, text.AlignStart, arix.GoldRose, 1)
	drawText(dst, ot.Subtitle, o.small, margin, margin+60, text.AlignStart, arix.EmeraldLight, 0.8)
	drawText(dst, arix.Tagline, o.small, w-margin, margin, text.AlignEnd, arix.GoldRose, 0.5)

	if a := o.greeting.Value; a > 0 && o.shown != "" {
		c := arix.GoldMetallic
		if ot.Loading {
			c, a = arix.Silver, a*0.5
		}
		drawText(dst, o.shown, o.body, w/2, h/2, text.AlignCenter, c, a)
	}

	b := o.button
	vector.DrawFilledRect(dst, float32(b.x), float32(b.y), float32(b.w), float32(b.h), color.RGBA{0, 0, 0, 102}, false)
	vector.StrokeRect(dst, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1, toRGBA(arix.GoldMetallic, 0.4), false)
	drawText(dst, ot.Action, o.body, b.x+b.w/2, b.y+(b.h-o.body.Size)/2-2, text.AlignCenter, arix.GoldRose, 1)
	drawText(dst, hintText, o.small, w/2, h-margin-12, text.AlignCenter, arix.GoldRose, 0.3)
}

func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, align text.Align, c arix.Color, alpha float64) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.ColorScale.ScaleWithColor(toRGBA(c, alpha))
	text.Draw(dst, s, face, op)
}

func toRGBA(c arix.Color, alpha float64) color.RGBA {
	c.A *= alpha
	// color.RGBA is premultiplied.
	c.R *= c.A
	c.G *= c.A
	c.B *= c.A
	r, g, b, a := c.RGBA8()
	return color.RGBA{R: r, G: g, B: b, A: a}
}
