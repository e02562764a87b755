package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/jawadkoroth/Jobpilotai/internal/database"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	var err error
	var teardown func(context.Context, ...testcontainers.TerminateOption) error
	teardown, testDB, err = database.GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test database: %v\n", err)
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardown != nil {
		_ = teardown(ctx)
	}
	os.Exit(code)
}

func TestCloudStorageURL(t *testing.T) {
	c := &CloudStorageClient{BucketName: "resumes-bucket"}
	key := "7c1d2a4e-5b8f-4c3d-9e2a-1f0b6d8c4a11/my resume.pdf"

	u := c.URL(key)
	assert.Equal(t, "https://storage.googleapis.com/resumes-bucket/7c1d2a4e-5b8f-4c3d-9e2a-1f0b6d8c4a11/my%20resume.pdf", u)

	got, ok := c.KeyFromURL(u)
	require.True(t, ok)
	assert.Equal(t, key, got)

	got, ok = c.KeyFromURL("gs://resumes-bucket/a/b.pdf")
	require.True(t, ok)
	assert.Equal(t, "a/b.pdf", got)

	_, ok = c.KeyFromURL("https://storage.googleapis.com/other-bucket/a/b.pdf")
	assert.False(t, ok)
}

func TestDBStorageURL(t *testing.T) {
	s := NewDBStorageClient(nil, "https://api.example.com/")
	u := s.URL("u/file.pdf")
	assert.Equal(t, "https://api.example.com/api/v1/file/u/file.pdf", u)

	got, ok := s.KeyFromURL(u + "?download=1")
	require.True(t, ok)
	assert.Equal(t, "u/file.pdf", got)

	_, ok = s.KeyFromURL("https://evil.example.com/api/v1/file/u/file.pdf")
	assert.False(t, ok)
}

func TestResolveKey(t *testing.T) {
	s := NewDBStorageClient(nil, "https://api.example.com")

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{"bare key", "user/abc.pdf", "user/abc.pdf", false},
		{"own url", "https://api.example.com/api/v1/file/user/abc.pdf", "user/abc.pdf", false},
		{"foreign url", "http://169.254.169.254/latest/meta-data", "", true},
		{"traversal", "../etc/passwd", "", true},
		{"absolute path", "/etc/passwd", "", true},
		{"traversal in url", "https://api.example.com/api/v1/file/a/../../b", "", true},
		{"empty", "  ", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveKey(s, tt.ref)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrForeignURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsPreconditionFailed(t *testing.T) {
	assert.True(t, isPreconditionFailed(&googleapi.Error{Code: http.StatusPreconditionFailed}))
	assert.True(t, isPreconditionFailed(fmt.Errorf("wrapped: %w", &googleapi.Error{Code: http.StatusPreconditionFailed})))
	assert.False(t, isPreconditionFailed(&googleapi.Error{Code: http.StatusForbidden}))
	assert.False(t, isPreconditionFailed(errors.New("network down")))
}

// failingReader yields data once and then fails.
type failingReader struct{ sent bool }

func (f *failingReader) Read(p []byte) (int, error) {
	if !f.sent {
		f.sent = true
		return copy(p, "partial resume"), nil
	}
	return 0, errors.New("client went away")
}

func TestCloudStorage_FailedCopyIsNotCommitted(t *testing.T) {
	var committed atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			return
		}
		committed.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bucket":"resumes-bucket","name":"u1/cv.pdf"}`))
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	client, err := storage.NewClient(ctx, option.WithEndpoint(srv.URL+"/storage/v1/"), option.WithoutAuthentication())
	require.NoError(t, err)
	c := &CloudStorageClient{BucketName: "resumes-bucket", Client: client}
	t.Cleanup(func() { _ = c.Close() })

	err = c.Upload(ctx, "u1/cv.pdf", "application/pdf", &failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client went away")

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), committed.Load())
}

func TestDBStorage_UploadDownload(t *testing.T) {
	s := NewDBStorageClient(testDB, "http://localhost:8080")
	owner := uuid.New()
	key := owner.String() + "/" + uuid.NewString() + ".txt"

	require.NoError(t, s.Upload(context.Background(), key, "text/plain", strings.NewReader("hello résumé")))

	rc, info, err := s.Download(context.Background(), key)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)

	assert.Equal(t, "hello résumé", string(body))
	assert.Equal(t, "text/plain", info.ContentType)
	assert.Equal(t, int64(len("hello résumé")), info.Size)
	assert.Equal(t, s.URL(key), info.URL)
}

func TestDBStorage_NoOverwrite(t *testing.T) {
	s := NewDBStorageClient(testDB, "http://localhost:8080")
	key := uuid.NewString() + "/dup.pdf"

	require.NoError(t, s.Upload(context.Background(), key, "application/pdf", strings.NewReader("first")))
	err := s.Upload(context.Background(), key, "application/pdf", strings.NewReader("second"))
	assert.ErrorIs(t, err, ErrObjectExists)

	rc, _, err := s.Download(context.Background(), key)
	require.NoError(t, err)
	body, _ := io.ReadAll(rc)
	assert.Equal(t, "first", string(body))
}

func TestDBStorage_NotFound(t *testing.T) {
	s := NewDBStorageClient(testDB, "http://localhost:8080")
	_, _, err := s.Download(context.Background(), "missing/key.pdf")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestDBStorage_ListByPrefix(t *testing.T) {
	s := NewDBStorageClient(testDB, "http://localhost:8080")
	owner := uuid.NewString()
	other := uuid.NewString()

	require.NoError(t, s.Upload(context.Background(), owner+"/a.pdf", "application/pdf", strings.NewReader("a")))
	require.NoError(t, s.Upload(context.Background(), owner+"/b.pdf", "application/pdf", strings.NewReader("bb")))
	require.NoError(t, s.Upload(context.Background(), other+"/c.pdf", "application/pdf", strings.NewReader("c")))

	objects, err := s.List(context.Background(), owner+"/")
	require.NoError(t, err)
	require.Len(t, objects, 2)
	for _, o := range objects {
		assert.True(t, strings.HasPrefix(o.Key, owner+"/"))
		assert.NotEmpty(t, o.URL)
	}

	// LIKE wildcards in the prefix are literal.
	objects, err = s.List(context.Background(), "%")
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestOwnerFromKey(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, id, ownerFromKey(id.String()+"/x.pdf"))
	assert.Equal(t, uuid.Nil, ownerFromKey("x.pdf"))
	assert.Equal(t, uuid.Nil, ownerFromKey("not-a-uuid/x.pdf"))
}
