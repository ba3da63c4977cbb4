package scene

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type stubScene struct {
	key      string
	disposed bool
}

func (s *stubScene) Key() string               { return s.key }
func (s *stubScene) Update() error             { return nil }
func (s *stubScene) Draw(screen *ebiten.Image) {}
func (s *stubScene) Dispose()                  { s.disposed = true }

func TestRegistryDispatch(t *testing.T) {
	reg := NewRegistry()
	built := 0
	reg.Register("SomeScene", func(deps *Deps) Scene {
		built++
		return &stubScene{key: "SomeScene"}
	})

	if !reg.Has("SomeScene") {
		t.Fatalf("registered key not found")
	}
	if reg.Has("OtherScene") {
		t.Fatalf("unregistered key found")
	}

	s := reg.New("SomeScene", nil)
	if s == nil || s.Key() != "SomeScene" || built != 1 {
		t.Fatalf("constructor not dispatched: scene=%v built=%d", s, built)
	}
	if reg.New("OtherScene", nil) != nil {
		t.Fatalf("unknown key built a scene")
	}
}

func TestRegistryRejectsBadRegistrations(t *testing.T) {
	reg := NewRegistry()
	reg.Register("", func(deps *Deps) Scene { return &stubScene{} })
	reg.Register("NilCtor", nil)
	if reg.Has("") || reg.Has("NilCtor") {
		t.Fatalf("bad registration accepted")
	}
}

func TestDefaultRegistryCoversConfigScenes(t *testing.T) {
	reg := DefaultRegistry()
	for _, key := range []string{KeyTitle, KeyMainGame, KeyMainGameMicro, KeyMainGameMacro, KeyUnderwater, KeyUnderwaterMicro} {
		if !reg.Has(key) {
			t.Fatalf("default registry missing %q", key)
		}
	}
}
