package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jawadkoroth/Jobpilotai/internal/auth"
	"github.com/jawadkoroth/Jobpilotai/internal/completion"
	"github.com/jawadkoroth/Jobpilotai/internal/config"
	"github.com/jawadkoroth/Jobpilotai/internal/database"
	"github.com/jawadkoroth/Jobpilotai/internal/storage"
)

// MyServer holds the configuration and shared dependencies of every route handler.
type MyServer struct {
	Config *config.Config

	DB         *database.DBinstanceStruct
	Storage    storage.Client
	Tokens     *auth.TokenValidator
	Blacklist  auth.JwtBlacklistStore
	Identity   *auth.IdentityClient
	Completion completion.Generator

	closers []func() error
}

// NewServer connects every backing service named in cfg and returns a ready MyServer.
func NewServer(ctx context.Context, cfg *config.Config) (*MyServer, error) {
	auth.SetAuthLogging(cfg.AuthLog)

	tokens, err := auth.NewTokenValidator(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("invalid auth configuration: %w", err)
	}

	identity, err := auth.NewIdentityClient(cfg.Identity)
	if errors.Is(err, auth.ErrIdentityNotConfigured) {
		log.Println("SUPABASE_URL is not set, user profiles come from token claims only")
	} else if err != nil {
		return nil, err
	}

	gen, err := completion.NewClient(cfg.Completion, nil)
	if err != nil {
		return nil, err
	}

	db, err := database.NewDBInstance(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("database failed to initialize: %w", err)
	}

	s := &MyServer{
		Config:     cfg,
		DB:         db,
		Tokens:     tokens,
		Blacklist:  auth.NewInMemoryBlacklistStore(),
		Identity:   identity,
		Completion: gen,
		closers:    []func() error{db.Close},
	}

	switch cfg.Storage.Backend {
	case config.StorageGCS:
		gcs, err := storage.NewCloudStorageClient(ctx, cfg.Storage.Bucket, cfg.Storage.CredentialsFile)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.Storage = gcs
		s.closers = append(s.closers, gcs.Close)
	default:
		s.Storage = storage.NewDBStorageClient(db, cfg.Storage.PublicBaseURL)
	}
	log.Printf("Using %s storage backend", cfg.Storage.Backend)

	return s, nil
}

// HTTPServer wraps the route handler in an http.Server with the service timeouts.
func (s *MyServer) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Config.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
	}
}

// Close releases the database and storage connections.
func (s *MyServer) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
