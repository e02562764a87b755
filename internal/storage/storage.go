// Package storage stores résumé binaries in object storage.
package storage

import (
	"context"
	"errors"
	"io"
	"net/url"
	"path"
	"strings"
	"time"
)

var (
	// ErrObjectExists is returned when an upload targets a key that is already taken.
	ErrObjectExists = errors.New("object already exists")
	// ErrObjectNotFound is returned when a key has no stored object.
	ErrObjectNotFound = errors.New("object not found")
	// ErrForeignURL is returned for a reference that is neither a key nor a URL of this backend.
	ErrForeignURL = errors.New("url does not belong to the configured storage")
)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key         string    `json:"key"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
	URL         string    `json:"url"`
}

// Client is an object storage backend. Upload never overwrites an existing key.
type Client interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	// URL returns a retrievable URL for key.
	URL(key string) string
	// KeyFromURL reverses URL. ok is false for URLs this backend did not produce.
	KeyFromURL(rawURL string) (key string, ok bool)
}

// ResolveKey turns ref, either a bare storage key or a URL produced by c, into a key.
func ResolveKey(c Client, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrForeignURL
	}

	var key string
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" {
		k, ok := c.KeyFromURL(ref)
		if !ok {
			return "", ErrForeignURL
		}
		key = k
	} else {
		key = ref
	}

	if !validKey(key) {
		return "", ErrForeignURL
	}
	return key, nil
}

func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return false
	}
	return path.Clean(key) == key && !strings.HasPrefix(key, "..")
}

func trimKeyPrefix(rawURL, base string) (string, bool) {
	if !strings.HasPrefix(rawURL, base) {
		return "", false
	}
	escaped := strings.TrimPrefix(rawURL, base)
	if i := strings.IndexAny(escaped, "?#"); i >= 0 {
		escaped = escaped[:i]
	}
	key, err := url.PathUnescape(escaped)
	if err != nil || key == "" {
		return "", false
	}
	return key, true
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
