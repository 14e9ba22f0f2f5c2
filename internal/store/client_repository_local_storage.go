package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-event-gate/internal/logger"
)

type localStorageRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewLocalStorageRepository(db *DB, logger *logger.Logger) LocalStorageRepository {
	logger.Debug().Msg("creating local storage repository")
	return &localStorageRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (l *localStorageRepository) GetItem(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := getItemQuery(key)
	if err != nil {
		log.Err(err).Str("func", "localStorageRepository.GetItem").Msg("failed to build query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localStorageRepository.GetItem").
			Str("key", key).
			Msg("failed to read local storage item")
		return "", fmt.Errorf("%w (key=%s): %w", ErrExecutingQuery, key, err)
	}

	return value, nil
}

func (l *localStorageRepository) SetItem(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := setItemQuery(key, value, l.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "localStorageRepository.SetItem").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localStorageRepository.SetItem").
			Str("key", key).
			Msg("failed to execute upsert for local storage item")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (l *localStorageRepository) RemoveItem(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := removeItemQuery(key)
	if err != nil {
		log.Err(err).Str("func", "localStorageRepository.RemoveItem").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localStorageRepository.RemoveItem").
			Str("key", key).
			Msg("failed to execute delete for local storage item")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	if rowsAffected, err := result.RowsAffected(); err == nil && rowsAffected == 0 {
		log.Debug().
			Str("func", "localStorageRepository.RemoveItem").
			Str("key", key).
			Msg("no rows affected: item was not present")
	}

	return nil
}
