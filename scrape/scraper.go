package scrape

import (
	"context"
	"log/slog"
	"time"

	"github.com/foragehq/forage"
	"github.com/foragehq/forage/bloom"
)

// feed layout specifics: where the feed lives and how post and comment
// nodes are selected inside it.
var feedConfigs = map[forage.Layout]feedConfig{
	forage.LayoutModern: {
		baseURL:         "https://www.facebook.com/groups/",
		postSelector:    `div[role="article"]`,
		commentSelector: `div[aria-label*="Comment by"]`,
	},
	forage.LayoutBasic: {
		baseURL:         "https://mbasic.facebook.com/groups/",
		postSelector:    `#m_group_stories_container div[data-ft], div[data-ft]`,
		commentSelector: `div[data-commentid]`,
	},
}

type feedConfig struct {
	baseURL         string
	postSelector    string
	commentSelector string
}

// Scraper runs one group scrape end to end. The extraction itself is
// sequential: one node at a time, paced between nodes, so a slow or
// broken node never takes the batch down with it.
type Scraper struct {
	fetcher   forage.Fetcher
	extractor forage.Extractor
	layout    forage.Layout
	opts      Options
	pacer     *Pacer
	seen      *bloom.Seen
	logger    *slog.Logger
}

// NewScraper creates a Scraper for the given layout.
func NewScraper(fetcher forage.Fetcher, extractor forage.Extractor, layout forage.Layout, opts Options, logger *slog.Logger) *Scraper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scraper{
		fetcher:   fetcher,
		extractor: extractor,
		layout:    layout,
		opts:      opts,
		pacer: NewPacer(
			time.Duration(opts.Delay*float64(time.Second)),
			time.Duration(opts.DelayVariance*float64(time.Second)),
		),
		seen:   bloom.NewSeen(100_000, 0.001),
		logger: logger,
	}
}

// Run fetches the group feed and extracts posts until the limit or the
// date range is exhausted.
func (s *Scraper) Run(ctx context.Context) (*forage.ScrapeResult, error) {
	groupID := NormalizeGroupIdentifier(s.opts.Group)
	if groupID == "" {
		return nil, forage.Errorf(forage.EINVALID, "group identifier required")
	}

	dateRange, err := s.opts.DateRange()
	if err != nil {
		return nil, err
	}

	cfg, ok := feedConfigs[s.layout]
	if !ok {
		return nil, forage.Errorf(forage.EINVALID, "unsupported layout %q", s.layout)
	}
	feedURL := cfg.baseURL + groupID

	root, err := s.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, forage.Errorf(forage.EUNAVAILABLE, "fetching group feed: %v", err)
	}

	posts, err := s.collectPosts(ctx, root, cfg, dateRange)
	if err != nil {
		return nil, err
	}

	return &forage.ScrapeResult{
		Group:     forage.GroupInfo{ID: groupID, Name: groupID, URL: feedURL},
		ScrapedAt: time.Now(),
		DateRange: dateRange,
		Posts:     posts,
	}, nil
}

func (s *Scraper) collectPosts(ctx context.Context, root forage.Node, cfg feedConfig, dateRange forage.DateRange) ([]*forage.Post, error) {
	var posts []*forage.Post

	for _, node := range root.QueryAll(cfg.postSelector) {
		if err := s.pacer.Wait(ctx); err != nil {
			return nil, err
		}

		post := s.extractor.ExtractPost(node)
		if post == nil {
			continue
		}
		if s.seen.Observe(post.ID) {
			s.logger.Debug("duplicate post skipped", "id", post.ID)
			continue
		}
		if post.Timestamp != nil && post.Timestamp.Before(dateRange.Since) {
			// The feed is newest-first; once posts predate the range
			// there is nothing left to collect.
			s.logger.Debug("post predates range, stopping", "id", post.ID)
			break
		}

		if !s.opts.SkipComments {
			post.Comments = s.collectComments(node, cfg)
		}

		posts = append(posts, post)
		if s.opts.Limit > 0 && len(posts) >= s.opts.Limit {
			break
		}
	}

	return posts, nil
}

func (s *Scraper) collectComments(postNode forage.Node, cfg feedConfig) []*forage.Comment {
	var comments []*forage.Comment
	for _, node := range postNode.QueryAll(cfg.commentSelector) {
		comment := s.extractor.ExtractComment(node)
		if comment == nil {
			continue
		}
		if s.seen.Observe(comment.ID) {
			continue
		}
		comments = append(comments, comment)
	}

	if s.opts.MinReactions > 0 || s.opts.TopComments > 0 {
		comments = forage.FilterComments(comments, s.opts.MinReactions, s.opts.TopComments)
	}
	return comments
}
