package canopy

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Key    string  `json:"key,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Label  string  `json:"label,omitempty"`

	key ebiten.Key
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner feeds scripted input into a Game, one step per frame.
// Coordinates are screen coordinates, converted through the game's camera
// exactly like real cursor input. Attach with Game.SetTestRunner.
//
// Actions: "move" (x, y), "press", "release", "click" (x, y; press this
// frame, release the next), "key" and "keyup" (key, e.g. "Space" or "A"),
// "wait" (frames), "screenshot" (label).
type TestRunner struct {
	steps       []testStep
	cursor      int
	waitCount   int
	releaseNext bool
	done        bool
	shots       []string
}

var knownActions = map[string]bool{
	"move": true, "press": true, "release": true, "click": true,
	"key": true, "keyup": true, "wait": true, "screenshot": true,
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Game via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "key" || st.Action == "keyup" {
			k, ok := keyByName(st.Key)
			if !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown key %q", i, st.Key)
			}
			st.key = k
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Game.Update in place
// of real input polling.
func (r *TestRunner) step(in *Input, cam *Camera) {
	if r.done {
		return
	}
	if r.releaseNext {
		r.releaseNext = false
		in.Release()
		r.checkDone()
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone()
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		in.MoveTo(screenToWorld(cam, st.X, st.Y))
	case "press":
		in.Press()
	case "release":
		in.Release()
	case "click":
		in.MoveTo(screenToWorld(cam, st.X, st.Y))
		in.Press()
		r.releaseNext = true
	case "key":
		in.PressKey(st.key)
	case "keyup":
		in.ReleaseKey(st.key)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		r.shots = append(r.shots, st.Label)
	}

	r.checkDone()
}

// takeScreenshots returns and clears the labels queued this frame.
func (r *TestRunner) takeScreenshots() []string {
	shots := r.shots
	r.shots = nil
	return shots
}

func (r *TestRunner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.releaseNext {
		r.done = true
	}
}

var keyNames map[string]ebiten.Key

// keyByName resolves names as printed by ebiten.Key.String, e.g. "Space".
func keyByName(name string) (ebiten.Key, bool) {
	if keyNames == nil {
		keyNames = make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
		for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
			keyNames[k.String()] = k
		}
	}
	k, ok := keyNames[name]
	return k, ok
}
