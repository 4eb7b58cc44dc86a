// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
)

// Backend identifies the storage engine behind a [UserRepository].
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendMongo    Backend = "mongodb"
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// Storages groups the repositories used by the service layer together with
// the resources that have to be released on shutdown.
type Storages struct {
	UserRepository UserRepository
	Backend        Backend

	closers []func(context.Context) error
}

// NewStorages opens the backend selected by cfg.DB.DSN, applies migrations
// or indexes it needs and returns ready repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	backend, target, err := ParseDSN(cfg.DB.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("cannot select storage backend")
		return nil, err
	}

	storages := &Storages{Backend: backend}

	switch backend {
	case BackendMemory:
		storages.UserRepository = NewUserMemoryRepository(log)

	case BackendPostgres, BackendSQLite:
		var db *DB
		if backend == BackendPostgres {
			db, err = NewConnectPostgres(ctx, target, log)
		} else {
			db, err = NewConnectSQLite(ctx, target, log)
		}
		if err != nil {
			return nil, err
		}
		storages.addCloser(func(context.Context) error { return db.Close() })

		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			_ = storages.Close(ctx)
			return nil, err
		}
		storages.UserRepository = NewUserRepository(db, log)

	case BackendMongo:
		client, err := NewConnectMongo(ctx, target, log)
		if err != nil {
			return nil, err
		}
		storages.addCloser(client.Disconnect)

		repo, err := NewUserMongoRepository(ctx, client.Database(cfg.DB.Name), log)
		if err != nil {
			_ = storages.Close(ctx)
			return nil, err
		}
		storages.UserRepository = repo
	}

	log.Info().Str("func", "NewStorages").Str("backend", string(backend)).Msg("storage initialized")
	return storages, nil
}

// Close releases every resource opened by [NewStorages] in reverse order.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil

	return errors.Join(errs...)
}

func (s *Storages) addCloser(fn func(context.Context) error) {
	s.closers = append(s.closers, fn)
}

// ParseDSN selects the backend for dsn and returns the connection target the
// backend driver expects.
//
//	""  | memory                      → in-memory map
//	mongodb://  | mongodb+srv://      → MongoDB, dsn unchanged
//	postgres:// | postgresql://       → PostgreSQL via pgx, dsn unchanged
//	sqlite://<path>                   → SQLite file at <path>
//	file:<path>                       → SQLite URI, dsn unchanged
func ParseDSN(dsn string) (Backend, string, error) {
	dsn = strings.TrimSpace(dsn)
	lower := strings.ToLower(dsn)

	switch {
	case dsn == "", lower == "memory", lower == "memory://":
		return BackendMemory, "", nil
	case strings.HasPrefix(lower, "mongodb://"), strings.HasPrefix(lower, "mongodb+srv://"):
		return BackendMongo, dsn, nil
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return BackendPostgres, dsn, nil
	case strings.HasPrefix(lower, "sqlite://"):
		path := dsn[len("sqlite://"):]
		if path == "" {
			return "", "", fmt.Errorf("%w: sqlite path is empty", ErrUnsupportedDSN)
		}
		return BackendSQLite, path, nil
	case strings.HasPrefix(lower, "file:"):
		return BackendSQLite, dsn, nil
	}

	scheme, _, found := strings.Cut(dsn, "://")
	if !found {
		scheme = "unknown"
	}
	return "", "", fmt.Errorf("%w: scheme %q", ErrUnsupportedDSN, scheme)
}
