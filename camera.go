package arix

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	cameraNear = 0.1
	cameraFar  = 300.0

	minZoom = 0.5
	maxZoom = 2.0
)

// glideAnim holds the active height and distance tweens of a pose change.
type glideAnim struct {
	height   *gween.Tween
	distance *gween.Tween
	doneH    bool
	doneD    bool
}

// CameraRig orbits the origin at a height and distance that glide toward a
// pose picked by the tree state. While assembled it also orbits slowly.
type CameraRig struct {
	// Height is the eye height above the look-at point.
	Height float64
	// Distance is the horizontal distance from the look-at point.
	Distance float64
	// Azimuth is the orbit angle around the Y axis in radians.
	Azimuth float64
	// Target is the look-at point.
	Target mgl64.Vec3

	cfg      CameraConfig
	state    TreeState
	glide    *glideAnim
	orbiting bool
	zoom     float64
}

// NewCameraRig creates a rig resting at the scattered pose.
func NewCameraRig(cfg CameraConfig) *CameraRig {
	return &CameraRig{
		Height:   cfg.ScatteredHeight,
		Distance: cfg.ScatteredDistance,
		cfg:      cfg,
		zoom:     1,
	}
}

// State returns the pose the rig is heading to.
func (c *CameraRig) State() TreeState { return c.state }

// Gliding reports whether a pose change is in progress.
func (c *CameraRig) Gliding() bool { return c.glide != nil }

// SetState starts a glide from the current pose to the pose for state.
func (c *CameraRig) SetState(state TreeState) {
	c.state = state
	c.orbiting = state == StateTreeShape

	h, d := c.cfg.ScatteredHeight, c.cfg.ScatteredDistance
	if state == StateTreeShape {
		h, d = c.cfg.TreeHeight, c.cfg.TreeDistance
	}
	if c.cfg.Glide <= 0 {
		c.Height, c.Distance = h, d
		c.glide = nil
		return
	}
	dur := float32(c.cfg.Glide)
	c.glide = &glideAnim{
		height:   gween.New(float32(c.Height), float32(h), dur, ease.OutCubic),
		distance: gween.New(float32(c.Distance), float32(d), dur, ease.OutCubic),
	}
}

// Update advances the glide and the auto-orbit by dt seconds.
func (c *CameraRig) Update(dt float64) {
	if !(dt > 0) {
		return
	}
	if c.glide != nil {
		if !c.glide.doneH {
			val, done := c.glide.height.Update(float32(dt))
			c.Height = float64(val)
			c.glide.doneH = done
		}
		if !c.glide.doneD {
			val, done := c.glide.distance.Update(float32(dt))
			c.Distance = float64(val)
			c.glide.doneD = done
		}
		if c.glide.doneH && c.glide.doneD {
			c.glide = nil
		}
	}
	if c.orbiting {
		c.Azimuth = math.Mod(c.Azimuth+dt*c.cfg.OrbitSpeed, 2*math.Pi)
	}
}

// Rotate adds user orbit input to the azimuth.
func (c *CameraRig) Rotate(radians float64) {
	c.Azimuth = math.Mod(c.Azimuth+radians, 2*math.Pi)
}

// Zoom multiplies the user zoom by factor. Values above 1 move the eye away.
// The result is clamped to [0.5, 2].
func (c *CameraRig) Zoom(factor float64) {
	if !(factor > 0) {
		return
	}
	c.zoom = math.Max(minZoom, math.Min(maxZoom, c.zoom*factor))
}

// ZoomLevel returns the current user zoom multiplier.
func (c *CameraRig) ZoomLevel() float64 { return c.zoom }

// Eye returns the camera position in world space.
func (c *CameraRig) Eye() mgl64.Vec3 {
	sin, cos := math.Sincos(c.Azimuth)
	d := c.Distance * c.zoom
	return c.Target.Add(mgl64.Vec3{sin * d, c.Height * c.zoom, cos * d})
}

// View returns the world-to-camera matrix.
func (c *CameraRig) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye(), c.Target, mgl64.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *CameraRig) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.cfg.FOV), aspect, cameraNear, cameraFar)
}

// ViewProjection returns Projection * View.
func (c *CameraRig) ViewProjection(aspect float64) mgl64.Mat4 {
	return c.Projection(aspect).Mul4(c.View())
}

// Project maps a world point through vp onto a w x h screen. Y grows
// downward. depth is the clip-space w (distance along the view axis); ok is
// false for points behind the camera or outside the depth range.
func Project(vp mgl64.Mat4, p mgl64.Vec3, w, h float64) (sx, sy, depth float64, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip[3] <= cameraNear {
		return 0, 0, 0, false
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	ndcZ := clip[2] / clip[3]
	if ndcZ < -1 || ndcZ > 1 {
		return 0, 0, 0, false
	}
	sx = (ndcX + 1) * 0.5 * w
	sy = (1 - ndcY) * 0.5 * h
	return sx, sy, clip[3], true
}
