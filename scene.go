package arix

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// FrameSink is the rendering side of the scene. InitGroup is called once per
// category when the sink is attached, with per-instance colors; SubmitGroup is
// called every Draw with that frame's transforms. The transform slice is only
// valid for the duration of the call.
type FrameSink interface {
	InitGroup(cat Category, colors []Color)
	SubmitGroup(cat Category, transforms []Transform)
}

// snowColor is the translucent white used for flakes.
var snowColor = Color{1, 1, 1, 0.6}

// Scene owns every morph group, the top star, the snow, the sky and the
// camera rig, and advances them on a single clock. It is driven from one
// goroutine.
type Scene struct {
	cfg    Config
	groups [categoryCount]*Group
	star   *TopStar
	snow   *SnowField
	sky    *SkyField
	camera *CameraRig

	elapsed float64
	debug   bool
	stats   debugStats
}

// NewScene validates cfg and generates every particle group. A nil rng uses
// NewRand.
func NewScene(cfg Config, rng *rand.Rand) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	if rng == nil {
		rng = NewRand()
	}
	s := &Scene{cfg: cfg}
	for _, cat := range Categories {
		s.groups[cat] = NewGroup(rng, cat, cfg.Counts.Of(cat), &s.cfg)
	}
	s.star = NewTopStar(&s.cfg)
	s.snow = NewSnowField(rng, cfg.SnowCount)
	s.sky = NewSkyField(rng, cfg.SkyCount)
	s.camera = NewCameraRig(cfg.Camera)
	return s, nil
}

// Config returns the configuration the scene was built with.
func (s *Scene) Config() Config { return s.cfg }

// Group returns the instanced group for cat, or nil for TopStar and Snow.
func (s *Scene) Group(cat Category) *Group {
	if int(cat) >= categoryCount {
		return nil
	}
	return s.groups[cat]
}

// TopStar returns the crowning star.
func (s *Scene) TopStar() *TopStar { return s.star }

// Snow returns the ambient snow field.
func (s *Scene) Snow() *SnowField { return s.snow }

// Sky returns the background starfield.
func (s *Scene) Sky() *SkyField { return s.sky }

// Camera returns the camera rig.
func (s *Scene) Camera() *CameraRig { return s.camera }

// Elapsed returns the scene clock in seconds.
func (s *Scene) Elapsed() float64 { return s.elapsed }

// Offset returns the world-space translation of the tree group. Snow and sky
// are not offset.
func (s *Scene) Offset() mgl64.Vec3 {
	return mgl64.Vec3{s.cfg.SceneOffset[0], s.cfg.SceneOffset[1], s.cfg.SceneOffset[2]}
}

// SetTarget writes the morph target derived from state into every group and
// the top star, and points the camera rig at the matching pose.
func (s *Scene) SetTarget(state TreeState) {
	target := state.Target()
	for _, cat := range Categories {
		s.groups[cat].SetTarget(target)
	}
	s.star.SetTarget(target)
	s.camera.SetState(state)
}

// Update advances the scene by dt seconds. Negative dt is clamped to zero.
func (s *Scene) Update(dt float64) {
	if !(dt > 0) {
		dt = 0
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.elapsed += dt
	tick := Tick{Delta: dt, Elapsed: s.elapsed}
	for _, cat := range Categories {
		s.groups[cat].Update(tick)
	}
	s.star.Update(tick)
	s.snow.Update(tick)
	s.sky.Update(tick)
	s.camera.Update(dt)

	if s.debug {
		s.stats.updateTime = time.Since(t0)
	}
}

// Attach hands the per-instance colors of every category to sink.
func (s *Scene) Attach(sink FrameSink) {
	for _, cat := range Categories {
		sink.InitGroup(cat, s.groups[cat].Colors())
	}
	sink.InitGroup(CategoryTopStar, []Color{GoldMetallic})
	colors := make([]Color, s.snow.Len())
	for i := range colors {
		colors[i] = snowColor
	}
	sink.InitGroup(CategorySnow, colors)
	sky := make([]Color, s.sky.Len())
	for i := range sky {
		sky[i] = skyColor
	}
	sink.InitGroup(CategorySky, sky)
}

// Draw submits the current transforms of every category to sink.
func (s *Scene) Draw(sink FrameSink) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	count := 0
	for _, cat := range Categories {
		g := s.groups[cat]
		sink.SubmitGroup(cat, g.Transforms())
		count += g.Len()
	}
	star := [1]Transform{s.star.Transform()}
	sink.SubmitGroup(CategoryTopStar, star[:])
	sink.SubmitGroup(CategorySnow, s.snow.Transforms())
	sink.SubmitGroup(CategorySky, s.sky.Transforms())
	count += 1 + s.snow.Len() + s.sky.Len()

	if s.debug {
		s.stats.submitTime = time.Since(t0)
		s.stats.instanceCount = count
		s.stats.morph = s.groups[CategoryNeedle].Morph().Current
		s.debugLog(s.stats)
	}
}

// SetDebugMode enables per-frame timing stats on stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}
