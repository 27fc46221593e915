package mock

import (
	"context"

	"github.com/foragehq/forage"
)

var _ forage.ScrapeStore = (*ScrapeStore)(nil)

// ScrapeStore is a mock implementation of forage.ScrapeStore.
type ScrapeStore struct {
	SaveResultFn func(ctx context.Context, result *forage.ScrapeResult) error
	PostsFn      func(ctx context.Context, groupID string) ([]*forage.Post, error)
	ResultFn     func(ctx context.Context, groupID string) (*forage.ScrapeResult, error)
}

func (s *ScrapeStore) SaveResult(ctx context.Context, result *forage.ScrapeResult) error {
	return s.SaveResultFn(ctx, result)
}

func (s *ScrapeStore) Posts(ctx context.Context, groupID string) ([]*forage.Post, error) {
	return s.PostsFn(ctx, groupID)
}

func (s *ScrapeStore) Result(ctx context.Context, groupID string) (*forage.ScrapeResult, error) {
	return s.ResultFn(ctx, groupID)
}
