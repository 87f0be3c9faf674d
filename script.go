package pageflip

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a script. Coordinates are screen
// coordinates, as a pointer would report them.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "drag": true,
	"next": true, "prev": true, "wait": true, "snapshot": true,
}

// Script sequences pointer input, page turns and snapshots across frames,
// for demos and for reproducing a flip frame by frame. Attach it to a book
// with SetScript; each Frame advances it by at most one step.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script of the form
//
//	{"steps": [
//	  {"action": "drag", "fromX": 500, "fromY": 100, "toX": 100, "toY": 100, "frames": 20},
//	  {"action": "wait", "frames": 30},
//	  {"action": "snapshot", "label": "turned"}
//	]}
//
// Valid actions are press, move, release, drag, next, prev, wait and
// snapshot.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches s to the book, replacing any previous script. Pass nil
// to detach.
func (b *Book) SetScript(s *Script) {
	b.script = s
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame. Called from Book.Frame.
func (s *Script) step(b *Book) {
	if s.done {
		return
	}
	// Let queued pointer events drain before advancing.
	if len(b.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "press":
		b.InjectPress(st.X, st.Y)
	case "move":
		b.InjectMove(st.X, st.Y)
	case "release":
		b.InjectRelease(st.X, st.Y)
	case "drag":
		b.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "next":
		b.TurnNext()
	case "prev":
		b.TurnPrev()
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "snapshot":
		b.Snapshot(st.Label)
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(b.injectQueue) == 0 {
		s.done = true
	}
}
