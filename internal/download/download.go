package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; rv:109.0) Gecko/20100101 Firefox/115.0"

// Fetcher downloads remote assets into a cache directory. A file already in the cache is
// reused without touching the network.
type Fetcher struct {
	Client   *http.Client
	CacheDir string
}

// New returns a Fetcher that caches into dir using http.DefaultClient.
func New(dir string) *Fetcher {
	return &Fetcher{Client: http.DefaultClient, CacheDir: dir}
}

// CachedPath returns where url is stored in the cache. The name is derived from the URL path only,
// so the check needs no request.
func (f *Fetcher) CachedPath(url string) string {
	name := filenameFromURL(url)
	if name == "" {
		name = "download"
	}
	name = sanitizeFilename(name)
	if ext := extensionFromURL(url); ext != "" {
		name += ext
	} else {
		name += ".bin"
	}
	return filepath.Join(f.CacheDir, name)
}

// Fetch returns the cached path for url, downloading it first if it is not cached yet.
// cached reports whether the file was already present.
func (f *Fetcher) Fetch(ctx context.Context, url string) (path string, cached bool, err error) {
	path = f.CachedPath(url)
	if st, err := os.Stat(path); err == nil && st.Size() > 0 {
		return path, true, nil
	}
	if err := f.get(ctx, url, path); err != nil {
		return "", false, err
	}
	return path, false, nil
}

func (f *Fetcher) get(ctx context.Context, url, dest string) error {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download: %s: HTTP %d", url, resp.StatusCode)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("download: %w", err)
	}
	// Write to a temp name first so an interrupted download never looks cached.
	tmp := dest + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("download: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("download: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return fmt.Errorf("download: %w", err)
	}
	return nil
}

var knownExts = map[string]bool{
	".hdr": true, ".png": true, ".jpg": true, ".jpeg": true, ".webp": true,
	".gif": true, ".ttf": true, ".otf": true, ".zip": true,
}

func extensionFromURL(url string) string {
	path := url
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	ext := strings.ToLower(filepath.Ext(path))
	if knownExts[ext] {
		return ext
	}
	return ""
}

func filenameFromURL(url string) string {
	path := url
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	base := filepath.Base(path)
	if base == "." || base == "/" || strings.HasSuffix(path, "/") {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

var safeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitizeFilename(name string) string {
	if name == "" {
		return "download"
	}
	name = safeNameRe.ReplaceAllString(name, "_")
	if len(name) > 96 {
		name = name[:96]
	}
	return name
}
