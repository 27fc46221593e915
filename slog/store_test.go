package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foragehq/forage"
	"github.com/foragehq/forage/mock"
	forageslog "github.com/foragehq/forage/slog"
)

func TestLoggingStore_SaveResult(t *testing.T) {
	t.Parallel()

	t.Run("logs group and post count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ScrapeStore{
			SaveResultFn: func(ctx context.Context, result *forage.ScrapeResult) error {
				return nil
			},
		}

		store := forageslog.NewLoggingStore(inner, logger)
		err := store.SaveResult(context.Background(), &forage.ScrapeResult{
			Group: forage.GroupInfo{ID: "123", Name: "g"},
			Posts: []*forage.Post{{ID: "p1", Content: "x"}},
		})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "save result")
		assert.Contains(t, output, "group=123")
		assert.Contains(t, output, "posts=1")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ScrapeStore{
			SaveResultFn: func(ctx context.Context, result *forage.ScrapeResult) error {
				return forage.Errorf(forage.EINTERNAL, "disk full")
			},
		}

		store := forageslog.NewLoggingStore(inner, logger)
		err := store.SaveResult(context.Background(), &forage.ScrapeResult{
			Group: forage.GroupInfo{ID: "123", Name: "g"},
		})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "disk full")
	})
}

func TestLoggingStore_Posts(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.ScrapeStore{
		PostsFn: func(ctx context.Context, groupID string) ([]*forage.Post, error) {
			return []*forage.Post{{ID: "p1", Content: "x"}, {ID: "p2", Content: "y"}}, nil
		},
	}

	store := forageslog.NewLoggingStore(inner, logger)
	posts, err := store.Posts(context.Background(), "123")

	require.NoError(t, err)
	assert.Len(t, posts, 2)
	output := buf.String()
	assert.Contains(t, output, "load posts")
	assert.Contains(t, output, "count=2")
}
