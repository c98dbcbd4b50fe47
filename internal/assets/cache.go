// internal/assets/cache.go
package assets

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// CacheVersion names the current cache generation. Bumping it is the only
// cache-busting mechanism: opening a cache purges every other generation.
const CacheVersion = "v1"

// Cache is a versioned on-disk copy of a remote asset pack. Opening it
// pre-populates the version directory from the network; Fetch serves
// cache-first with a network fallback. Callers treat a failed open as
// "no offline support" and proceed from embedded assets.
type Cache struct {
	root    string // base directory holding one subdirectory per version
	dir     string // directory of the current version
	baseURL string
	client  *http.Client
}

// OpenCache prepares the versioned cache directory below the user cache
// dir, removes stale version directories and downloads any file from the
// static list that is not cached yet.
func OpenCache(baseURL string, files []string) (*Cache, error) {
	userDir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate user cache dir: %w", err)
	}
	return OpenCacheAt(filepath.Join(userDir, "go-endless-runner"), baseURL, files)
}

// OpenCacheAt is OpenCache rooted at an explicit directory.
func OpenCacheAt(root, baseURL string, files []string) (*Cache, error) {
	c := &Cache{
		root:    root,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
	c.dir = filepath.Join(c.root, CacheVersion)
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	c.purgeStale()

	for _, name := range files {
		if _, err := os.Stat(filepath.Join(c.dir, filepath.FromSlash(name))); err == nil {
			continue
		}
		if _, err := c.download(name); err != nil {
			return nil, fmt.Errorf("failed to pre-populate cache with %s: %w", name, err)
		}
	}
	return c, nil
}

// purgeStale removes every version directory except the current one.
func (c *Cache) purgeStale() {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == CacheVersion {
			continue
		}
		stale := filepath.Join(c.root, entry.Name())
		if err := os.RemoveAll(stale); err != nil {
			log.Printf("WARNING: failed to purge stale cache %s: %v", stale, err)
		}
	}
}

// Fetch returns the named file, cache-first. On a miss it downloads the
// file and writes it back before returning.
func (c *Cache) Fetch(name string) ([]byte, error) {
	local := filepath.Join(c.dir, filepath.FromSlash(name))
	if data, err := os.ReadFile(local); err == nil {
		return data, nil
	}
	return c.download(name)
}

func (c *Cache) download(name string) ([]byte, error) {
	url := c.baseURL + "/" + name
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", url, err)
	}

	local := filepath.Join(c.dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache subdir for %s: %w", name, err)
	}
	if err := os.WriteFile(local, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s to cache: %w", name, err)
	}
	return data, nil
}

// Dir returns the directory of the current cache version.
func (c *Cache) Dir() string {
	return c.dir
}

// FS exposes the current cache version as a read-only filesystem.
func (c *Cache) FS() fs.FS {
	return os.DirFS(c.dir)
}
