package docsite

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "snapshots.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestSaveAndGetSnapshot(t *testing.T) {
	s := setupTestStore(t)
	cfg := MustBuild(nacosDocument())

	snap, created, err := s.Save(cfg, "site.yaml")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !created {
		t.Fatal("expected a new snapshot")
	}
	if snap.ID == "" {
		t.Fatal("ID should be set")
	}

	got, err := s.Get(snap.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Digest != cfg.Digest() {
		t.Errorf("Digest = %q, want %q", got.Digest, cfg.Digest())
	}
	if got.Title != "use-nacos" {
		t.Errorf("Title = %q, want %q", got.Title, "use-nacos")
	}
	if got.Source != "site.yaml" {
		t.Errorf("Source = %q, want %q", got.Source, "site.yaml")
	}
	if !got.CreatedAt.Equal(snap.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, snap.CreatedAt)
	}
	if !got.Config.Equal(cfg) {
		t.Error("stored config does not equal the saved one")
	}
}

func TestSaveDeduplicatesByDigest(t *testing.T) {
	s := setupTestStore(t)

	first, _, err := s.Save(MustBuild(nacosDocument()), "a.yaml")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second, created, err := s.Save(MustBuild(nacosDocument()), "b.yaml")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if created {
		t.Error("identical config should not create a new snapshot")
	}
	if second.ID != first.ID {
		t.Errorf("ID = %q, want existing %q", second.ID, first.ID)
	}

	snaps, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(snaps) != 1 {
		t.Errorf("expected 1 snapshot, got %d", len(snaps))
	}
}

func TestSaveDeduplicatesNilAndEmptyGroupLists(t *testing.T) {
	s := setupTestStore(t)

	withNil := nacosDocument()
	withNil.ThemeConfig.Sidebar["/empty/"] = nil
	withEmpty := nacosDocument()
	withEmpty.ThemeConfig.Sidebar["/empty/"] = []SidebarGroup{}

	if _, _, err := s.Save(MustBuild(withNil), "a.yaml"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	_, created, err := s.Save(MustBuild(withEmpty), "b.yaml")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if created {
		t.Error("equal config should reuse the existing snapshot")
	}
}

func TestListAndLatest(t *testing.T) {
	s := setupTestStore(t)

	var ids []string
	for _, title := range []string{"one", "two", "three"} {
		doc := nacosDocument()
		doc.Title = title
		snap, _, err := s.Save(MustBuild(doc), "site.yaml")
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		ids = append(ids, snap.ID)
	}

	snaps, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(snaps) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(snaps))
	}
	// Newest first.
	if snaps[0].ID != ids[2] || snaps[2].ID != ids[0] {
		t.Errorf("unexpected order: %s, %s, %s", snaps[0].Title, snaps[1].Title, snaps[2].Title)
	}
	if snaps[0].Config != nil {
		t.Error("List should not load configs")
	}

	latest, err := s.Latest()
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if latest.Title != "three" {
		t.Errorf("Latest title = %q, want %q", latest.Title, "three")
	}
}

func TestDeleteSnapshot(t *testing.T) {
	s := setupTestStore(t)

	snap, _, err := s.Save(MustBuild(nacosDocument()), "site.yaml")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Delete(snap.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(snap.ID); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("Get after delete: err = %v, want ErrSnapshotNotFound", err)
	}
	if err := s.Delete(snap.ID); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("second Delete: err = %v, want ErrSnapshotNotFound", err)
	}
}

func TestLatestEmptyStore(t *testing.T) {
	s := setupTestStore(t)
	if _, err := s.Latest(); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("Latest on empty store: err = %v, want ErrSnapshotNotFound", err)
	}
}
