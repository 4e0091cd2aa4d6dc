// Package jobs holds background maintenance loops that run alongside the
// server.
package jobs

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ImageLinkGetter returns the image links currently referenced by places.
type ImageLinkGetter interface {
	GetImageLinks(ctx context.Context) ([]string, error)
}

// ImageSweeper periodically deletes uploaded images no place references
// anymore. Orphans accumulate when a resubmission replaces its photo, since
// the old file stays on disk.
type ImageSweeper struct {
	db       ImageLinkGetter
	dir      string
	interval time.Duration
	minAge   time.Duration
}

// NewImageSweeper creates a sweeper over the upload directory. Files younger
// than minAge are never removed, so an upload in flight between saving the
// file and inserting the place row is safe.
func NewImageSweeper(database ImageLinkGetter, dir string, interval, minAge time.Duration) *ImageSweeper {
	return &ImageSweeper{
		db:       database,
		dir:      dir,
		interval: interval,
		minAge:   minAge,
	}
}

// Start begins the background sweep loop.
func (s *ImageSweeper) Start(ctx context.Context) {
	log.Printf("Image sweeper started (interval: %v, minAge: %v)", s.interval, s.minAge)

	// Run immediately on start
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Image sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep removes unreferenced files older than minAge from the upload dir.
func (s *ImageSweeper) sweep(ctx context.Context) {
	links, err := s.db.GetImageLinks(ctx)
	if err != nil {
		log.Printf("Image sweeper: failed to get image links: %v", err)
		return
	}

	referenced := make(map[string]bool, len(links))
	for _, link := range links {
		referenced[strings.TrimPrefix(link, "/storage/")] = true
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		log.Printf("Image sweeper: failed to read upload dir: %v", err)
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}

		info, err := entry.Info()
		if err != nil || time.Since(info.ModTime()) < s.minAge {
			continue
		}

		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			log.Printf("Image sweeper: failed to remove %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Printf("Image sweeper: removed %d orphaned images", removed)
	}
}
