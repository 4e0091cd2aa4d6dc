package jobs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type stubImageLinks struct {
	links []string
	err   error
}

func (s *stubImageLinks) GetImageLinks(ctx context.Context) ([]string, error) {
	return s.links, s.err
}

func writeImage(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("imagedata"), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	mtime := time.Now().Add(-age)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("setting mtime on %s: %v", name, err)
	}
	return path
}

func TestSweepRemovesOrphans(t *testing.T) {
	dir := t.TempDir()
	referenced := writeImage(t, dir, "referenced.jpg", 48*time.Hour)
	orphan := writeImage(t, dir, "orphan.jpg", 48*time.Hour)

	db := &stubImageLinks{links: []string{"/storage/referenced.jpg"}}
	sweeper := NewImageSweeper(db, dir, time.Hour, 24*time.Hour)

	sweeper.sweep(context.Background())

	if _, err := os.Stat(referenced); err != nil {
		t.Errorf("referenced image removed: %v", err)
	}
	if _, err := os.Stat(orphan); !os.IsNotExist(err) {
		t.Error("orphaned image not removed")
	}
}

func TestSweepKeepsRecentFiles(t *testing.T) {
	dir := t.TempDir()
	recent := writeImage(t, dir, "uploading.jpg", time.Minute)

	db := &stubImageLinks{}
	sweeper := NewImageSweeper(db, dir, time.Hour, 24*time.Hour)

	sweeper.sweep(context.Background())

	if _, err := os.Stat(recent); err != nil {
		t.Errorf("recent unreferenced image removed: %v", err)
	}
}

func TestSweepSkipsOnLookupError(t *testing.T) {
	dir := t.TempDir()
	orphan := writeImage(t, dir, "orphan.jpg", 48*time.Hour)

	db := &stubImageLinks{err: errors.New("db down")}
	sweeper := NewImageSweeper(db, dir, time.Hour, 24*time.Hour)

	// Nothing may be deleted when the reference list is unavailable.
	sweeper.sweep(context.Background())

	if _, err := os.Stat(orphan); err != nil {
		t.Errorf("image removed despite lookup failure: %v", err)
	}
}
