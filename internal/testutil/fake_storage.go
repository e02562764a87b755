package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jawadkoroth/Jobpilotai/internal/storage"
)

// FakeStorage is an in-memory storage.Client for handler tests.
type FakeStorage struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Types   map[string]string
	created map[string]time.Time

	// UploadErr, DownloadErr and ListErr are returned by the matching method when set.
	UploadErr   error
	DownloadErr error
	ListErr     error
}

// NewFakeStorage returns an empty FakeStorage.
func NewFakeStorage() *FakeStorage {
	return &FakeStorage{
		Objects: make(map[string][]byte),
		Types:   make(map[string]string),
		created: make(map[string]time.Time),
	}
}

// Put stores an object directly, bypassing the no-overwrite check.
func (f *FakeStorage) Put(key, contentType string, content []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Objects[key] = content
	f.Types[key] = contentType
	f.created[key] = time.Now()
}

// Upload implements storage.Client.
func (f *FakeStorage) Upload(_ context.Context, key, contentType string, r io.Reader) error {
	if f.UploadErr != nil {
		return f.UploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.Objects[key]; exists {
		return fmt.Errorf("%w: %s", storage.ErrObjectExists, key)
	}
	f.Objects[key] = data
	f.Types[key] = contentType
	f.created[key] = time.Now()
	return nil
}

// Download implements storage.Client.
func (f *FakeStorage) Download(_ context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	if f.DownloadErr != nil {
		return nil, storage.ObjectInfo{}, f.DownloadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.Objects[key]
	if !ok {
		return nil, storage.ObjectInfo{}, fmt.Errorf("%w: %s", storage.ErrObjectNotFound, key)
	}
	return io.NopCloser(bytes.NewReader(data)), f.info(key), nil
}

// List implements storage.Client.
func (f *FakeStorage) List(_ context.Context, prefix string) ([]storage.ObjectInfo, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	var objects []storage.ObjectInfo
	for key := range f.Objects {
		if strings.HasPrefix(key, prefix) {
			objects = append(objects, f.info(key))
		}
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

// URL implements storage.Client.
func (f *FakeStorage) URL(key string) string {
	return "https://files.test/" + key
}

// KeyFromURL implements storage.Client.
func (f *FakeStorage) KeyFromURL(rawURL string) (string, bool) {
	key := strings.TrimPrefix(rawURL, "https://files.test/")
	if key == rawURL || key == "" {
		return "", false
	}
	return key, true
}

func (f *FakeStorage) info(key string) storage.ObjectInfo {
	return storage.ObjectInfo{
		Key:         key,
		ContentType: f.Types[key],
		Size:        int64(len(f.Objects[key])),
		CreatedAt:   f.created[key],
		URL:         f.URL(key),
	}
}
