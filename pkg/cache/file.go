package cache

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores each entry as a JSON file under dir, fanned out into
// two-character subdirectories by key hash.
type FileCache struct {
	dir string
}

// NewFileCache creates dir if needed and returns a cache rooted there.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

func (c *FileCache) Dir() string { return c.dir }

type fileEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (e fileEntry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Get reads key. Corrupt and expired entries are removed and reported as
// misses.
func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var entry fileEntry
	if json.Unmarshal(raw, &entry) != nil || entry.expired(time.Now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Set writes key atomically through a temp file and rename.
func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{Data: data}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".entry-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (c *FileCache) Delete(_ context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (c *FileCache) Close() error { return nil }

// Usage summarizes the entries on disk.
type Usage struct {
	Entries int
	Expired int
	Bytes   int64
}

// Usage walks the cache directory and counts entries and their size.
func (c *FileCache) Usage() (Usage, error) {
	var u Usage
	now := time.Now()
	err := c.walk(func(path string, info fs.FileInfo) error {
		u.Entries++
		u.Bytes += info.Size()
		if e, err := readEntry(path); err != nil || e.expired(now) {
			u.Expired++
		}
		return nil
	})
	return u, err
}

// Prune removes expired and corrupt entries and returns how many it removed.
func (c *FileCache) Prune() (int, error) {
	removed := 0
	now := time.Now()
	err := c.walk(func(path string, _ fs.FileInfo) error {
		if e, err := readEntry(path); err == nil && !e.expired(now) {
			return nil
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		removed++
		return nil
	})
	return removed, err
}

// Clear removes every entry and returns how many it removed.
func (c *FileCache) Clear() (int, error) {
	removed := 0
	err := c.walk(func(path string, _ fs.FileInfo) error {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		removed++
		return nil
	})
	if err != nil {
		return removed, err
	}
	subdirs, err := os.ReadDir(c.dir)
	if err != nil && !os.IsNotExist(err) {
		return removed, err
	}
	for _, d := range subdirs {
		if d.IsDir() && len(d.Name()) == 2 {
			_ = os.RemoveAll(filepath.Join(c.dir, d.Name()))
		}
	}
	return removed, nil
}

// walk calls fn for every entry file. A missing directory has no entries.
func (c *FileCache) walk(fn func(path string, info fs.FileInfo) error) error {
	subdirs, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, d := range subdirs {
		if !d.IsDir() || len(d.Name()) != 2 {
			continue
		}
		files, err := filepath.Glob(filepath.Join(c.dir, d.Name(), "*.json"))
		if err != nil {
			return err
		}
		for _, f := range files {
			info, err := os.Stat(f)
			if os.IsNotExist(err) {
				continue
			}
			if err != nil {
				return err
			}
			if err := fn(f, info); err != nil {
				return err
			}
		}
	}
	return nil
}

func readEntry(path string) (fileEntry, error) {
	var e fileEntry
	raw, err := os.ReadFile(path)
	if err != nil {
		return e, err
	}
	err = json.Unmarshal(raw, &e)
	return e, err
}

// path maps key to dir/<hash[:2]>/<hash[2:]>.json.
func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
