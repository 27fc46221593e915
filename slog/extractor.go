// Package slog provides logging decorators for forage services.
package slog

import (
	"log/slog"
	"time"

	"github.com/foragehq/forage"
)

// Ensure LoggingExtractor implements forage.Extractor.
var _ forage.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-node outcome logging.
type LoggingExtractor struct {
	next   forage.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next forage.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractPost delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ExtractPost(node forage.Node) *forage.Post {
	begin := time.Now()
	post := e.next.ExtractPost(node)
	if post == nil {
		e.logger.Debug("post extraction",
			"outcome", "skipped",
			"duration", time.Since(begin),
		)
		return nil
	}
	e.logger.Info("post extraction",
		"outcome", "extracted",
		"id", post.ID,
		"reactions", post.Reactions.Total,
		"duration", time.Since(begin),
	)
	return post
}

// ExtractComment delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ExtractComment(node forage.Node) *forage.Comment {
	begin := time.Now()
	comment := e.next.ExtractComment(node)
	if comment == nil {
		e.logger.Debug("comment extraction",
			"outcome", "skipped",
			"duration", time.Since(begin),
		)
		return nil
	}
	e.logger.Debug("comment extraction",
		"outcome", "extracted",
		"id", comment.ID,
		"duration", time.Since(begin),
	)
	return comment
}
