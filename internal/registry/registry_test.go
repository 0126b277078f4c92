package registry

import (
	"io"
	"testing"

	"github.com/vovakirdan/tui-animator/internal/anim"
)

type stubView struct{ id string }

func (v stubView) ID() string    { return v.id }
func (v stubView) Title() string { return "Stub " + v.id }
func (v stubView) Render(io.Writer, *anim.Model, Options) error {
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() View { return stubView{id: "stub-b"} })
	Register("stub-a", func() View { return stubView{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("Exists(stub-a) = false, expected true")
	}
	if Exists("stub-zz") {
		t.Error("Exists(stub-zz) = true, expected false")
	}

	v, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if v.ID() != "stub-b" {
		t.Errorf("Create().ID() = %q, expected stub-b", v.ID())
	}

	if _, err := Create("stub-zz"); err == nil {
		t.Error("Create(unknown) should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub-a" && info.Title != "Stub stub-a" {
			t.Errorf("title = %q, expected 'Stub stub-a'", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() View { return stubView{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() View { return stubView{id: "stub-dup"} })
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Tick != -1 || opts.TicksPerSecond != 20 {
		t.Errorf("DefaultOptions() = %+v", opts)
	}
}
