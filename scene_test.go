package arix

import (
	"errors"
	"testing"
)

type fakeSink struct {
	colors    map[Category][]Color
	submitted map[Category]int
	frames    int
}

func newFakeSink() *fakeSink {
	return &fakeSink{colors: map[Category][]Color{}, submitted: map[Category]int{}}
}

func (f *fakeSink) InitGroup(cat Category, colors []Color) {
	f.colors[cat] = colors
}

func (f *fakeSink) SubmitGroup(cat Category, transforms []Transform) {
	f.submitted[cat] = len(transforms)
	if cat == CategorySnow {
		f.frames++
	}
}

func TestNewSceneGroups(t *testing.T) {
	cfg := testConfig()
	s, err := NewScene(cfg, seeded(1))
	if err != nil {
		t.Fatal(err)
	}
	for _, cat := range Categories {
		if got, want := s.Group(cat).Len(), cfg.Counts.Of(cat); got != want {
			t.Errorf("%s len = %d, want %d", cat, got, want)
		}
	}
	if s.Group(CategoryTopStar) != nil || s.Group(CategorySnow) != nil {
		t.Error("TopStar and Snow should not be instanced groups")
	}
	if s.Snow().Len() != cfg.SnowCount {
		t.Errorf("snow len = %d, want %d", s.Snow().Len(), cfg.SnowCount)
	}
}

func TestNewSceneRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.TransitionTime = 0
	if _, err := NewScene(cfg, seeded(1)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestNewSceneAllowsEmptyGroups(t *testing.T) {
	cfg := testConfig()
	cfg.Counts = Counts{}
	cfg.SnowCount = 0
	cfg.SkyCount = 0
	s, err := NewScene(cfg, seeded(1))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTarget(StateTreeShape)
	s.Update(1)

	sink := newFakeSink()
	s.Attach(sink)
	s.Draw(sink)
	if sink.submitted[CategoryTopStar] != 1 {
		t.Errorf("top star submitted %d, want 1", sink.submitted[CategoryTopStar])
	}
	if sink.submitted[CategoryNeedle] != 0 {
		t.Errorf("needles submitted %d, want 0", sink.submitted[CategoryNeedle])
	}
}

func TestSceneAttachAndDraw(t *testing.T) {
	cfg := testConfig()
	s, err := NewScene(cfg, seeded(2))
	if err != nil {
		t.Fatal(err)
	}
	sink := newFakeSink()
	s.Attach(sink)

	for _, cat := range Categories {
		if len(sink.colors[cat]) != cfg.Counts.Of(cat) {
			t.Errorf("%s colors = %d, want %d", cat, len(sink.colors[cat]), cfg.Counts.Of(cat))
		}
	}
	if c := sink.colors[CategoryTopStar]; len(c) != 1 || c[0] != GoldMetallic {
		t.Errorf("top star colors = %v", c)
	}
	if len(sink.colors[CategorySnow]) != cfg.SnowCount {
		t.Errorf("snow colors = %d, want %d", len(sink.colors[CategorySnow]), cfg.SnowCount)
	}
	if len(sink.colors[CategorySky]) != cfg.SkyCount {
		t.Errorf("sky colors = %d, want %d", len(sink.colors[CategorySky]), cfg.SkyCount)
	}

	for i := 0; i < 3; i++ {
		s.Update(1.0 / 60)
		s.Draw(sink)
	}
	if sink.frames != 3 {
		t.Errorf("frames = %d, want 3", sink.frames)
	}
	if sink.submitted[CategoryNeedle] != cfg.Counts.Needles {
		t.Errorf("needles submitted = %d, want %d", sink.submitted[CategoryNeedle], cfg.Counts.Needles)
	}
	if sink.submitted[CategorySky] != cfg.SkyCount {
		t.Errorf("sky submitted = %d, want %d", sink.submitted[CategorySky], cfg.SkyCount)
	}
}

func TestSceneSetTargetReachesEveryPart(t *testing.T) {
	s, err := NewScene(testConfig(), seeded(3))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTarget(StateTreeShape)
	for _, cat := range Categories {
		if s.Group(cat).Morph().Target != 1 {
			t.Errorf("%s target = %v, want 1", cat, s.Group(cat).Morph().Target)
		}
	}
	if s.TopStar().Morph().Target != 1 {
		t.Error("top star target not set")
	}
	if s.Camera().State() != StateTreeShape {
		t.Error("camera not retargeted")
	}
}

func TestSceneUpdateClock(t *testing.T) {
	s, err := NewScene(testConfig(), seeded(4))
	if err != nil {
		t.Fatal(err)
	}
	s.Update(0.5)
	s.Update(-3)
	s.Update(0.25)
	assertNear(t, "elapsed", s.Elapsed(), 0.75)
}

func TestSceneGroupsShareMorph(t *testing.T) {
	s, err := NewScene(testConfig(), seeded(5))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTarget(StateTreeShape)
	for i := 0; i < 45; i++ {
		s.Update(1.0 / 60)
	}
	want := s.Group(CategoryNeedle).Morph().Current
	for _, cat := range Categories {
		assertNear(t, cat.String()+" morph", s.Group(cat).Morph().Current, want)
	}
	assertNear(t, "top star morph", s.TopStar().Morph().Current, want)
}

func TestSceneOffset(t *testing.T) {
	s, err := NewScene(testConfig(), seeded(6))
	if err != nil {
		t.Fatal(err)
	}
	if off := s.Offset(); off[1] != -2 {
		t.Errorf("Offset = %v, want y -2", off)
	}
}

func TestSceneSkyIgnoresTreeState(t *testing.T) {
	s, err := NewScene(testConfig(), seeded(7))
	if err != nil {
		t.Fatal(err)
	}
	before := make([]Transform, s.Sky().Len())
	copy(before, s.Sky().Transforms())
	s.SetTarget(StateTreeShape)
	for i := 0; i < 120; i++ {
		s.Update(1.0 / 60)
	}
	for i, tr := range s.Sky().Transforms() {
		if tr.Position != before[i].Position {
			t.Fatalf("sky star %d moved with the tree", i)
		}
	}
}
