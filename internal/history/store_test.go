package history

import (
	"path/filepath"
	"testing"

	"leakview/internal/trace"
)

func openTestStore(t *testing.T) *SQLStore {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndByClass(t *testing.T) {
	store := openTestStore(t)

	summaries := []trace.InstanceSummary{
		{ClassSimpleName: "MainActivity", CreatedAt: 1000},
		{ClassSimpleName: "MainActivity", CreatedAt: 3000},
		{ClassSimpleName: "DetailFragment", CreatedAt: 2000},
	}
	for _, s := range summaries {
		if err := store.Record(s); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := store.ByClass("MainActivity")
	if err != nil {
		t.Fatalf("ByClass failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ByClass returned %d instances, want 2", len(got))
	}
	// Most recent first.
	if got[0].CreatedAt != 3000 || got[1].CreatedAt != 1000 {
		t.Errorf("ByClass order = [%d, %d], want [3000, 1000]", got[0].CreatedAt, got[1].CreatedAt)
	}
}

func TestByClassUnknownClass(t *testing.T) {
	store := openTestStore(t)

	got, err := store.ByClass("NeverLeaked")
	if err != nil {
		t.Fatalf("ByClass failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ByClass returned %d instances for an unknown class, want 0", len(got))
	}
}

func TestClasses(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []trace.InstanceSummary{
		{ClassSimpleName: "MainActivity", CreatedAt: 1},
		{ClassSimpleName: "MainActivity", CreatedAt: 2},
		{ClassSimpleName: "MainActivity", CreatedAt: 3},
		{ClassSimpleName: "DetailFragment", CreatedAt: 4},
	} {
		if err := store.Record(s); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := store.Classes()
	if err != nil {
		t.Fatalf("Classes failed: %v", err)
	}
	want := []ClassCount{
		{ClassSimpleName: "MainActivity", Count: 3},
		{ClassSimpleName: "DetailFragment", Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("Classes returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Classes[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestOpenOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Record(trace.InstanceSummary{ClassSimpleName: "Foo", CreatedAt: 1}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopening sees the persisted data.
	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.ByClass("Foo")
	if err != nil {
		t.Fatalf("ByClass failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("ByClass after reopen returned %d instances, want 1", len(got))
	}
}
