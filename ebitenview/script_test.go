package ebitenview

import "testing"

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "scattered"},
			{"action": "toggle"},
			{"action": "wait", "frames": 3},
			{"action": "screenshot", "label": "tree"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "scattered" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScriptYAML(t *testing.T) {
	data := []byte("steps:\n  - action: rotate\n    amount: 0.5\n  - action: quit\n")
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	if runner.steps[0].Amount != 0.5 {
		t.Errorf("amount = %v, want 0.5", runner.steps[0].Amount)
	}
}

func TestLoadScriptInvalid(t *testing.T) {
	tests := map[string]string{
		"not yaml":       "steps: [",
		"empty":          `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "explode"}]}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadScript([]byte(data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptStepSequence(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "toggle"},
		{"action": "wait", "frames": 2},
		{"action": "zoom", "amount": 1.2},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	if f := runner.step(); !f.in.toggle {
		t.Error("frame 1 should toggle")
	}
	// wait 2: this frame plus one more.
	if f := runner.step(); f.in.toggle || f.screenshot != "" {
		t.Errorf("frame 2 = %+v, want idle", f)
	}
	if f := runner.step(); f.in.zoom != 1 {
		t.Errorf("frame 3 = %+v, want idle", f)
	}
	if f := runner.step(); f.in.zoom != 1.2 {
		t.Errorf("frame 4 zoom = %v, want 1.2", f.in.zoom)
	}
	if runner.Done() {
		t.Error("runner done before last step")
	}
	if f := runner.step(); f.screenshot != "done" {
		t.Errorf("frame 5 screenshot = %q", f.screenshot)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
	if f := runner.step(); f.in.toggle || f.screenshot != "" || f.quit {
		t.Errorf("step after done = %+v", f)
	}
}

func TestScriptQuit(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [{"action": "quit"}, {"action": "toggle"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if f := runner.step(); !f.quit {
		t.Error("expected quit")
	}
	if !runner.Done() {
		t.Error("quit should finish the script")
	}
}

func TestMergeIntent(t *testing.T) {
	got := mergeIntent(intent{rotate: 0.1, zoom: 2}, intent{toggle: true, rotate: 0.2, zoom: 0.5})
	if !got.toggle {
		t.Error("toggle lost")
	}
	if got.rotate < 0.3-1e-9 || got.rotate > 0.3+1e-9 {
		t.Errorf("rotate = %v, want 0.3", got.rotate)
	}
	if got.zoom != 1 {
		t.Errorf("zoom = %v, want 1", got.zoom)
	}
}
