package ebitenview

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a demo script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	Amount float64 `yaml:"amount,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// Script sequences toggles, camera moves and screenshots across frames for
// unattended captures. Actions: toggle, wait (frames), rotate (amount in
// radians), zoom (amount as a factor), screenshot (label), quit.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML or JSON script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "toggle", "wait", "rotate", "zoom", "screenshot", "quit":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has run.
func (r *Script) Done() bool { return r.done }

// scriptFrame is what the script asks for on one frame.
type scriptFrame struct {
	in         intent
	screenshot string
	quit       bool
}

// step advances the script by one frame. At most one action runs per frame.
func (r *Script) step() scriptFrame {
	out := scriptFrame{in: intent{zoom: 1}}
	if r.done {
		return out
	}
	if r.waitCount > 0 {
		r.waitCount--
		return out
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return out
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "toggle":
		out.in.toggle = true
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "rotate":
		out.in.rotate = st.Amount
	case "zoom":
		if st.Amount > 0 {
			out.in.zoom = st.Amount
		}
	case "screenshot":
		out.screenshot = st.Label
	case "quit":
		out.quit = true
		r.done = true
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
	return out
}
