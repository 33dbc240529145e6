package ebitenview

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	dragDeadZone = 4.0   // pixels
	dragRadians  = 0.006 // camera yaw per dragged pixel
	wheelZoom    = 0.1   // zoom change per wheel notch
)

// rect is a screen-space hit box.
type rect struct {
	x, y, w, h float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x && x <= r.x+r.w && y >= r.y && y <= r.y+r.h
}

// pointerState tracks one pointer across frames.
type pointerState struct {
	down     bool
	dragging bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
}

// intent is what a frame of input asks the game to do.
type intent struct {
	toggle bool
	rotate float64
	zoom   float64 // multiplicative, 1 means unchanged
}

// process runs the pointer state machine for one frame. A press and release
// inside button without dragging is a click; a drag anywhere else orbits.
func (ps *pointerState) process(x, y float64, pressed bool, button rect) intent {
	in := intent{zoom: 1}
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.dragging = false
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y

	case !pressed && ps.down:
		if !ps.dragging && button.contains(ps.startX, ps.startY) && button.contains(x, y) {
			in.toggle = true
		}
		ps.down = false
		ps.dragging = false

	case pressed && ps.down:
		if !ps.dragging {
			dx, dy := x-ps.startX, y-ps.startY
			if math.Sqrt(dx*dx+dy*dy) > dragDeadZone {
				ps.dragging = true
			}
		}
		if ps.dragging {
			in.rotate = -(x - ps.lastX) * dragRadians
		}
		ps.lastX, ps.lastY = x, y
	}
	return in
}

// readInput samples ebiten's mouse, wheel and keyboard for this frame.
func (ps *pointerState) readInput(button rect) intent {
	mx, my := ebiten.CursorPosition()
	in := ps.process(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), button)

	if _, wy := ebiten.Wheel(); wy != 0 {
		in.zoom = math.Pow(1+wheelZoom, -wy)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.toggle = true
	}
	return in
}
