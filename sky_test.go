package arix

import "testing"

func TestSkyFieldCount(t *testing.T) {
	for _, n := range []int{-3, 0, 1, 500} {
		s := NewSkyField(seeded(1), n)
		want := max(n, 0)
		if s.Len() != want || len(s.Transforms()) != want {
			t.Errorf("NewSkyField(%d): Len = %d, transforms = %d", n, s.Len(), len(s.Transforms()))
		}
	}
}

func TestSkyStaysInShell(t *testing.T) {
	s := NewSkyField(seeded(2), 5000)
	for i, tr := range s.Transforms() {
		r := tr.Position.Len()
		if r < skyRadius-1e-9 || r > skyRadius+skyDepth+1e-9 {
			t.Fatalf("[%d] radius = %v, outside [%v, %v]", i, r, skyRadius, skyRadius+skyDepth)
		}
	}
}

func TestSkyTwinklesInPlace(t *testing.T) {
	s := NewSkyField(seeded(3), 200)
	before := make([]Transform, s.Len())
	copy(before, s.Transforms())

	changed := false
	for step := 1; step <= 50; step++ {
		s.Update(Tick{Delta: 0.1, Elapsed: float64(step) * 0.1})
		for i, tr := range s.Transforms() {
			if tr.Position != before[i].Position {
				t.Fatalf("star %d moved", i)
			}
			if tr.Scale < s.size[i]/2-1e-9 || tr.Scale > s.size[i]+1e-9 {
				t.Fatalf("star %d scale %v outside [%v, %v]", i, tr.Scale, s.size[i]/2, s.size[i])
			}
			if tr.Scale != before[i].Scale {
				changed = true
			}
		}
	}
	if !changed {
		t.Error("no star twinkled")
	}
}
