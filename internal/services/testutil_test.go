package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glucoach/glucoach/internal/config"
	"github.com/glucoach/glucoach/internal/database"
	"github.com/glucoach/glucoach/internal/domain"
	"github.com/glucoach/glucoach/internal/repository"
	"github.com/glucoach/glucoach/internal/utils"
)

// newTestDB opens a throwaway SQLite store, which also exercises the
// schema migration and profile seeding paths.
func newTestDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.New(config.DBConfig{
		Driver:   "sqlite",
		FilePath: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	return db
}

func newTestReadingService(t *testing.T) *ReadingService {
	t.Helper()
	return NewReadingService(repository.NewReadingRepository(newTestDB(t).DB))
}

// mustAdd inserts a reading dated daysAgo days before today so it lands
// inside the queried ranges.
func mustAdd(t *testing.T, s *ReadingService, daysAgo int, value float64) *domain.Reading {
	t.Helper()
	reading, err := s.Add(context.Background(), domain.NewReading{
		Date:     utils.ShiftISO(utils.TodayISO(), -daysAgo),
		TimeSlot: "Morning",
		Value:    value,
	})
	require.NoError(t, err)
	return reading
}
