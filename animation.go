package arix

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade animates a single scalar (typically an overlay alpha) toward a target.
// Call Update(dt) each frame and read Value.
//
// There is no global animation manager. Users call Update themselves.
type Fade struct {
	Value float64
	Done  bool

	tween  *gween.Tween
	target float64
}

// NewFade returns a settled fade at value.
func NewFade(value float64) *Fade {
	return &Fade{Value: value, Done: true, target: value}
}

// To starts a tween from the current value to target over duration seconds.
// Retargeting to the value already being approached is a no-op.
func (f *Fade) To(target float64, duration float32, fn ease.TweenFunc) {
	if f.target == target && (f.tween != nil || f.Value == target) {
		return
	}
	f.target = target
	if duration <= 0 {
		f.Value = target
		f.tween = nil
		f.Done = true
		return
	}
	f.tween = gween.New(float32(f.Value), float32(target), duration, fn)
	f.Done = false
}

// Target returns the value the fade is heading to.
func (f *Fade) Target() float64 { return f.target }

// Update advances the tween by dt seconds and writes Value.
func (f *Fade) Update(dt float32) {
	if f.Done || f.tween == nil {
		return
	}
	val, finished := f.tween.Update(dt)
	f.Value = float64(val)
	if finished {
		f.Value = f.target
		f.tween = nil
		f.Done = true
	}
}
