package forage

import (
	"context"
	"time"
)

// GroupInfo describes the group a scrape was taken from.
type GroupInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Validate returns an error if the group contains invalid fields.
func (g *GroupInfo) Validate() error {
	if g.ID == "" {
		return Errorf(EINVALID, "group ID required")
	}
	if g.Name == "" {
		return Errorf(EINVALID, "group name required")
	}
	return nil
}

// DateRange bounds the posts a scrape is interested in.
type DateRange struct {
	Since time.Time `json:"since"`
	Until time.Time `json:"until"`
}

// ScrapeResult is one complete scrape of a group: the group, the moment
// the scrape ran, the requested date range, and the extracted posts in
// document order.
type ScrapeResult struct {
	Group     GroupInfo `json:"group"`
	ScrapedAt time.Time `json:"scrapedAt"`
	DateRange DateRange `json:"dateRange"`
	Posts     []*Post   `json:"posts"`
}

// ScrapeStore persists scrape results. Re-scraping the same group
// produces new records that the store reconciles by upserting on record
// id.
type ScrapeStore interface {
	// SaveResult upserts the group, its posts, and their comment trees.
	SaveResult(ctx context.Context, result *ScrapeResult) error

	// Posts returns the stored posts for a group, newest first. Comments
	// are not attached.
	Posts(ctx context.Context, groupID string) ([]*Post, error)

	// Result reconstitutes the latest stored state of a group, including
	// comment trees.
	// Returns ENOTFOUND if the group has never been stored.
	Result(ctx context.Context, groupID string) (*ScrapeResult, error)
}

// Exporter writes a scrape result to a persistent format.
type Exporter interface {
	Export(result *ScrapeResult, path string) error
}
