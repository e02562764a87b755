package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const gcsPublicHost = "https://storage.googleapis.com/"

// CloudStorageClient keeps objects in a Google Cloud Storage bucket.
type CloudStorageClient struct {
	BucketName string
	Client     *storage.Client
}

// NewCloudStorageClient connects to GCS with application default credentials,
// or with credentialsFile when it is set.
func NewCloudStorageClient(ctx context.Context, bucketName, credentialsFile string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud storage client: %w", err)
	}
	return &CloudStorageClient{
		BucketName: bucketName,
		Client:     client,
	}, nil
}

// Upload implements Client.
func (c *CloudStorageClient) Upload(ctx context.Context, key, contentType string, r io.Reader) error {
	// Cancelling writeCtx abandons the upload; closing the writer would commit it.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	obj := c.Client.Bucket(c.BucketName).Object(key)
	wc := obj.If(storage.Conditions{DoesNotExist: true}).NewWriter(writeCtx)
	wc.ContentType = contentType

	if _, err := io.Copy(wc, r); err != nil {
		cancel()
		_ = wc.Close()
		return fmt.Errorf("failed to write data to object: %w", err)
	}
	if err := wc.Close(); err != nil {
		if isPreconditionFailed(err) {
			return fmt.Errorf("%w: %s", ErrObjectExists, key)
		}
		return fmt.Errorf("failed to close object writer: %w", err)
	}
	return nil
}

// Download implements Client.
func (c *CloudStorageClient) Download(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	reader, err := c.Client.Bucket(c.BucketName).Object(key).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, ObjectInfo{}, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}
	if err != nil {
		return nil, ObjectInfo{}, fmt.Errorf("failed to open object reader: %w", err)
	}

	return reader, ObjectInfo{
		Key:         key,
		ContentType: reader.Attrs.ContentType,
		Size:        reader.Attrs.Size,
		CreatedAt:   reader.Attrs.LastModified,
		URL:         c.URL(key),
	}, nil
}

// List implements Client.
func (c *CloudStorageClient) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	it := c.Client.Bucket(c.BucketName).Objects(ctx, &storage.Query{Prefix: prefix})

	var objects []ObjectInfo
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		objects = append(objects, ObjectInfo{
			Key:         attrs.Name,
			ContentType: attrs.ContentType,
			Size:        attrs.Size,
			CreatedAt:   attrs.Created,
			URL:         c.URL(attrs.Name),
		})
	}
	return objects, nil
}

func (c *CloudStorageClient) baseURL() string {
	return gcsPublicHost + c.BucketName + "/"
}

// URL implements Client.
func (c *CloudStorageClient) URL(key string) string {
	return c.baseURL() + escapeKey(key)
}

// KeyFromURL implements Client.
func (c *CloudStorageClient) KeyFromURL(rawURL string) (string, bool) {
	if key, ok := trimKeyPrefix(rawURL, c.baseURL()); ok {
		return key, true
	}
	// gs:// URLs are accepted as well.
	return trimKeyPrefix(rawURL, "gs://"+c.BucketName+"/")
}

// Close releases the underlying client.
func (c *CloudStorageClient) Close() error {
	return c.Client.Close()
}

func isPreconditionFailed(err error) bool {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code == http.StatusPreconditionFailed
	}
	return strings.Contains(err.Error(), "conditionNotMet")
}
