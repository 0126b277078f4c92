package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-animator/internal/anim/formats"
)

const squareSource = `canvas 0 0 100 100
shape sq rectangle
motion sq 0 0 0 10 10 255 0 0    20 50 50 10 10 255 0 0
`

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func squareAnimation(t *testing.T, name string) Animation {
	t.Helper()
	m, err := formats.ParseBytes([]byte(squareSource), ".txt")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}
	a, err := NewAnimation(name, "Square", "text", []byte(squareSource), m)
	if err != nil {
		t.Fatalf("NewAnimation() failed: %v", err)
	}
	return a
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestNewAnimation(t *testing.T) {
	a := squareAnimation(t, "square")
	if a.Shapes != 1 || a.Ticks != 21 {
		t.Errorf("NewAnimation() shapes=%d ticks=%d, expected 1 and 21", a.Shapes, a.Ticks)
	}

	broken := "shape g rectangle\n" +
		"motion g 0 0 0 1 1 0 0 0  2 0 0 1 1 0 0 0\n" +
		"motion g 5 0 0 1 1 0 0 0  8 0 0 1 1 0 0 0\n"
	m, err := formats.ParseBytes([]byte(broken), ".txt")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}
	if _, err := NewAnimation("g", "", "text", []byte(broken), m); err == nil {
		t.Error("NewAnimation() should reject a timeline with a gap")
	}
}

func TestStoreSaveAndGet(t *testing.T) {
	store := openStore(t)

	id, err := store.SaveAnimation(squareAnimation(t, "square"))
	if err != nil {
		t.Fatalf("SaveAnimation() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveAnimation() id = %d, expected positive", id)
	}

	got, err := store.GetAnimation("square")
	if err != nil {
		t.Fatalf("GetAnimation() failed: %v", err)
	}
	if got.ID != id || got.Title != "Square" || got.Format != "text" || got.Ticks != 21 {
		t.Errorf("GetAnimation() = %+v", got)
	}
	if string(got.Source) != squareSource {
		t.Errorf("Source = %q, expected the imported document", got.Source)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	m, err := got.Model()
	if err != nil {
		t.Fatalf("Model() failed: %v", err)
	}
	pos, err := m.Shape("sq").Position(10)
	if err != nil {
		t.Fatalf("Position() failed: %v", err)
	}
	if pos.X != 25 || pos.Y != 25 {
		t.Errorf("Position(10) = %v, expected (25,25)", pos)
	}
}

func TestStoreSaveReplaces(t *testing.T) {
	store := openStore(t)

	first, _ := store.SaveAnimation(squareAnimation(t, "square"))

	a := squareAnimation(t, "square")
	a.Title = "Renamed"
	second, err := store.SaveAnimation(a)
	if err != nil {
		t.Fatalf("SaveAnimation() failed: %v", err)
	}
	if first != second {
		t.Errorf("re-saving changed the ID from %d to %d", first, second)
	}

	got, _ := store.GetAnimation("square")
	if got.Title != "Renamed" {
		t.Errorf("Title = %q, expected Renamed", got.Title)
	}

	if _, err := store.SaveAnimation(Animation{}); err == nil {
		t.Error("SaveAnimation() without a name should fail")
	}
}

func TestStoreGetMissing(t *testing.T) {
	store := openStore(t)

	_, err := store.GetAnimation("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAnimation(missing) = %v, expected ErrNotFound", err)
	}
}

func TestStoreList(t *testing.T) {
	store := openStore(t)

	entries, err := store.ListAnimations()
	if err != nil {
		t.Fatalf("ListAnimations() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty catalog, got %d entries", len(entries))
	}

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := store.SaveAnimation(squareAnimation(t, name)); err != nil {
			t.Fatalf("SaveAnimation(%s) failed: %v", name, err)
		}
	}

	entries, err = store.ListAnimations()
	if err != nil {
		t.Fatalf("ListAnimations() failed: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(entries))
	}
	for i, e := range entries {
		if e.Name != want[i] {
			t.Errorf("entries[%d] = %s, expected %s", i, e.Name, want[i])
		}
		if e.Source != nil {
			t.Errorf("entries[%d] carries a source", i)
		}
	}
}

func TestStoreDelete(t *testing.T) {
	store := openStore(t)

	store.SaveAnimation(squareAnimation(t, "square"))
	store.RecordPlay("square", 10)

	if err := store.DeleteAnimation("square"); err != nil {
		t.Fatalf("DeleteAnimation() failed: %v", err)
	}
	if _, err := store.GetAnimation("square"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAnimation() after delete = %v, expected ErrNotFound", err)
	}
	if n, _ := store.PlayCount("square"); n != 0 {
		t.Errorf("PlayCount() after delete = %d, expected 0", n)
	}

	if err := store.DeleteAnimation("square"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteAnimation() = %v, expected ErrNotFound", err)
	}
}

func TestStorePlays(t *testing.T) {
	store := openStore(t)

	n, err := store.PlayCount("square")
	if err != nil {
		t.Fatalf("PlayCount() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("PlayCount() = %d, expected 0", n)
	}

	for _, ticks := range []int{5, 20, -3} {
		if _, err := store.RecordPlay("square", ticks); err != nil {
			t.Fatalf("RecordPlay() failed: %v", err)
		}
	}
	store.RecordPlay("other", 1)

	if n, _ := store.PlayCount("square"); n != 3 {
		t.Errorf("PlayCount() = %d, expected 3", n)
	}

	stats, err := store.GetPlayStats("square")
	if err != nil {
		t.Fatalf("GetPlayStats() failed: %v", err)
	}
	if stats.Plays != 3 || stats.TicksWatched != 25 {
		t.Errorf("GetPlayStats() = %+v, expected 3 plays and 25 ticks", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetPlayStats("never")
	if err != nil {
		t.Fatalf("GetPlayStats() failed: %v", err)
	}
	if empty.Plays != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GetPlayStats(never) = %+v, expected zero stats", empty)
	}
}
