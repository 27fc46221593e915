package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/foragehq/forage"
)

// Ensure LoggingStore implements forage.ScrapeStore.
var _ forage.ScrapeStore = (*LoggingStore)(nil)

// LoggingStore wraps a ScrapeStore with operation logging.
type LoggingStore struct {
	next   forage.ScrapeStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next forage.ScrapeStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// SaveResult delegates to the wrapped store and logs the operation.
func (s *LoggingStore) SaveResult(ctx context.Context, result *forage.ScrapeResult) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save result",
			"group", result.Group.ID,
			"posts", len(result.Posts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveResult(ctx, result)
}

// Posts delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Posts(ctx context.Context, groupID string) (posts []*forage.Post, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load posts",
			"group", groupID,
			"count", len(posts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Posts(ctx, groupID)
}

// Result delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Result(ctx context.Context, groupID string) (result *forage.ScrapeResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load result",
			"group", groupID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Result(ctx, groupID)
}
