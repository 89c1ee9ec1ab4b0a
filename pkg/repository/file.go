package repository

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/pkg/domain/interfaces"
)

// File implements interfaces.Cache with JSON files under a root directory.
// Entries never expire; the cache is meant for working offline against a
// recorded middleware.
type File struct {
	root string
}

// NewFile creates a file cache rooted at dir, creating the directory if needed
func NewFile(dir string) (*File, error) {
	if dir == "" {
		return nil, goerr.New("cache directory is empty")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, goerr.Wrap(err, "failed to create cache directory", goerr.V("dir", dir))
	}
	return &File{root: dir}, nil
}

var _ interfaces.Cache = (*File)(nil)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slug(s string) string {
	return strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// Path returns the file a key is stored in:
// <root>/<host>/<path segments>/<query>/<md5 of key>.json
func (f *File) Path(key string) string {
	parts := []string{f.root}
	if u, ok := keyURL(key); ok {
		if host := slug(u.Host); host != "" {
			parts = append(parts, host)
		}
		for _, segment := range strings.Split(u.Path, "/") {
			if s := slug(segment); s != "" {
				parts = append(parts, s)
			}
		}
		if q := slug(u.RawQuery); q != "" {
			parts = append(parts, q)
		}
	}
	parts = append(parts, KeyDigest(key)+".json")
	return filepath.Join(parts...)
}

// Get reads the file of key
func (f *File) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := f.Path(key)
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, goerr.Wrap(err, "failed to read cache file", goerr.V("path", path))
	}
	return data, true, nil
}

// Put writes value to the file of key. ttl is ignored.
func (f *File) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	path := f.Path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return goerr.Wrap(err, "failed to create cache directory", goerr.V("path", path))
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create cache file", goerr.V("path", path))
	}
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to write cache file", goerr.V("path", tmp.Name()))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to close cache file", goerr.V("path", tmp.Name()))
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to move cache file", goerr.V("path", path))
	}

	ctxlog.From(ctx).Debug("stored response on disk", "path", path)
	return nil
}

// Close does nothing
func (f *File) Close() error {
	return nil
}
