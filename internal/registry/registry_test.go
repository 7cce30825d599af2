package registry

import (
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/engine"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string    { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }

func (g *stubGame) Configure(core.RuntimeConfig) ([]engine.Option, error) { return nil, nil }
func (g *stubGame) Setup(*engine.Engine, Env) error                       { return nil }
func (g *stubGame) State() core.GameState                                 { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zz-stub-b", func() Game { return &stubGame{id: "zz-stub-b"} })
	Register("zz-stub-a", func() Game { return &stubGame{id: "zz-stub-a"} })

	if !Exists("zz-stub-a") || Exists("zz-missing") {
		t.Error("Exists() mismatch")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "zz-stub-a":
			ia = i
		case "zz-stub-b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() not sorted or missing stubs: %v", ids)
	}

	g, err := Create("zz-stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub zz-stub-a" {
		t.Errorf("Title() = %q", g.Title())
	}

	if _, err := Create("zz-missing"); err == nil {
		t.Error("Create() should fail for unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}
