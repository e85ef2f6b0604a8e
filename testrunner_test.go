package canopy

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"invalid json", `{`, "parse test script"},
		{"no steps", `{"steps":[]}`, "no steps"},
		{"unknown action", `{"steps":[{"action":"jump"}]}`, `unknown action "jump"`},
		{"unknown key", `{"steps":[{"action":"key","key":"NotAKey"}]}`, `unknown key "NotAKey"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestTestRunnerClickReleasesNextFrame(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps":[{"action":"click","x":30,"y":40}]}`))
	if err != nil {
		t.Fatal(err)
	}
	in := NewInput()

	r.step(in, nil)
	x, y, ok := in.Pointer()
	if !ok || x != 30 || y != 40 {
		t.Errorf("Pointer() = (%v, %v, %v), want (30, 40, true)", x, y, ok)
	}
	if !in.Down() {
		t.Error("click should press on its own frame")
	}
	if r.Done() {
		t.Error("runner done before release")
	}

	r.step(in, nil)
	if in.Down() {
		t.Error("click should release on the next frame")
	}
	if !r.Done() {
		t.Error("runner should be done after release")
	}
}

func TestTestRunnerConvertsThroughCamera(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps":[{"action":"move","x":50,"y":50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	cam := NewCamera(Rect{Width: 100, Height: 100})
	cam.X, cam.Y = 500, 500
	in := NewInput()
	r.step(in, cam)
	x, y, _ := in.Pointer()
	if !near(x, 500) || !near(y, 500) {
		t.Errorf("Pointer() = (%v, %v), want (500, 500)", x, y)
	}
}

func TestTestRunnerWait(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps":[{"action":"wait","frames":3},{"action":"press"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	in := NewInput()
	for i := 0; i < 3; i++ {
		r.step(in, nil)
		if in.Down() {
			t.Fatalf("pressed during wait frame %d", i)
		}
	}
	r.step(in, nil)
	if !in.Down() {
		t.Error("press should run after the wait")
	}
	if !r.Done() {
		t.Error("runner should be done")
	}
}

func TestTestRunnerKeys(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps":[{"action":"key","key":"Space"},{"action":"keyup","key":"Space"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	in := NewInput()
	r.step(in, nil)
	if !in.KeyDown(ebiten.KeySpace) {
		t.Error("Space should be down")
	}
	r.step(in, nil)
	if in.KeyDown(ebiten.KeySpace) {
		t.Error("Space should be up")
	}
}

func TestTestRunnerDoneIsTerminal(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps":[{"action":"press"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	in := NewInput()
	r.step(in, nil)
	in.Release()
	r.step(in, nil)
	if in.Down() {
		t.Error("finished runner should not touch input")
	}
}

func TestTestRunnerScreenshot(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps":[{"action":"screenshot","label":"start"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.step(NewInput(), nil)
	if got := r.takeScreenshots(); len(got) != 1 || got[0] != "start" {
		t.Errorf("takeScreenshots() = %v, want [start]", got)
	}
	if got := r.takeScreenshots(); len(got) != 0 {
		t.Errorf("second takeScreenshots() = %v, want empty", got)
	}
}

func TestGameCollectsRunnerScreenshots(t *testing.T) {
	g := NewGame(RunConfig{Clock: &fakeClock{}})
	r, err := LoadTestScript([]byte(`{"steps":[{"action":"screenshot","label":"one"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetTestRunner(r)
	_ = g.Update()
	if len(g.shots) != 1 || g.shots[0] != "one" {
		t.Errorf("game shots = %v, want [one]", g.shots)
	}
}
