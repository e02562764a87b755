package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/jawadkoroth/Jobpilotai/internal/database"
	"github.com/jawadkoroth/Jobpilotai/internal/model"
)

const uniqueViolation = "23505"

// DBStorageClient keeps objects in the stored_objects table and serves them
// through the file download route.
type DBStorageClient struct {
	DB *database.DBinstanceStruct
	// publicBase is the absolute URL prefix of the download route.
	publicBase string
}

// NewDBStorageClient creates a database backed Client. publicBaseURL is the externally
// reachable address of this service.
func NewDBStorageClient(db *database.DBinstanceStruct, publicBaseURL string) *DBStorageClient {
	return &DBStorageClient{
		DB:         db,
		publicBase: strings.TrimRight(publicBaseURL, "/") + "/api/v1/file/",
	}
}

// Upload implements Client.
func (s *DBStorageClient) Upload(ctx context.Context, key, contentType string, r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read object data: %w", err)
	}

	obj := model.StoredObject{
		Key:         key,
		UserID:      ownerFromKey(key),
		ContentType: contentType,
		Size:        int64(len(content)),
		Content:     content,
	}
	if err := s.DB.WithContext(ctx).Create(&obj).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", ErrObjectExists, key)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrObjectExists, key)
		}
		return fmt.Errorf("failed to store object: %w", err)
	}
	return nil
}

// Download implements Client.
func (s *DBStorageClient) Download(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	var obj model.StoredObject
	if err := s.DB.WithContext(ctx).Where("key = ?", key).First(&obj).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ObjectInfo{}, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return nil, ObjectInfo{}, fmt.Errorf("failed to load object: %w", err)
	}

	return io.NopCloser(bytes.NewReader(obj.Content)), s.info(obj), nil
}

// List implements Client. Newest objects come first.
func (s *DBStorageClient) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var objs []model.StoredObject
	err := s.DB.WithContext(ctx).
		Omit("content").
		Where("key LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%").
		Order("created_at DESC").
		Find(&objs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}

	objects := make([]ObjectInfo, 0, len(objs))
	for _, o := range objs {
		objects = append(objects, s.info(o))
	}
	return objects, nil
}

// URL implements Client.
func (s *DBStorageClient) URL(key string) string {
	return s.publicBase + escapeKey(key)
}

// KeyFromURL implements Client.
func (s *DBStorageClient) KeyFromURL(rawURL string) (string, bool) {
	return trimKeyPrefix(rawURL, s.publicBase)
}

func (s *DBStorageClient) info(o model.StoredObject) ObjectInfo {
	return ObjectInfo{
		Key:         o.Key,
		ContentType: o.ContentType,
		Size:        o.Size,
		CreatedAt:   o.CreatedAt,
		URL:         s.URL(o.Key),
	}
}

// ownerFromKey reads the user id from a "<user_id>/..." key; other keys are unowned.
func ownerFromKey(key string) uuid.UUID {
	owner, _, found := strings.Cut(key, "/")
	if !found {
		return uuid.Nil
	}
	id, err := uuid.Parse(owner)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
