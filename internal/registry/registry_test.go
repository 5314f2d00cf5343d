package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/wordfall/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string                   { return g.id }
func (g *stubGame) Title() string                { return "Stub " + g.id }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.state = core.GameState{Lives: 3} }
func (g *stubGame) Resize(w, h int)              {}
func (g *stubGame) Render(dst *core.Screen)      {}
func (g *stubGame) State() core.GameState        { return g.state }
func (g *stubGame) Step(now time.Time, in core.InputFrame) core.StepResult {
	return core.StepResult{State: g.state, Ticked: true}
}

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") || Exists("zz_missing") {
		t.Error("Exists() mismatch")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("ID() = %q, expected zz_stub_a", g.ID())
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create() of unknown id should fail")
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "zz_stub_a" || info.ID == "zz_stub_b" {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("Title = %q for %s", info.Title, info.ID)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz_stub_a" || ids[1] != "zz_stub_b" {
		t.Errorf("List() order = %v, expected sorted ids", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
