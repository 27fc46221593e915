package forage

import "time"

// UnknownAuthor is the sentinel name used when no author could be
// resolved. Downstream comparisons depend on the literal value.
const UnknownAuthor = "Unknown"

// Author identifies who wrote a post or comment. It is purely
// descriptive, owned by the record that embeds it.
type Author struct {
	Name       string `json:"name"`
	ProfileURL string `json:"profileUrl,omitempty"`
}

// Reactions holds engagement counts for a post or comment. Only Total is
// guaranteed populated by heuristic parsing; the per-category breakdown
// is opportunistic and defaults to zero.
type Reactions struct {
	Total int `json:"total"`
	Like  int `json:"like"`
	Love  int `json:"love"`
	Haha  int `json:"haha"`
	Wow   int `json:"wow"`
	Sad   int `json:"sad"`
	Angry int `json:"angry"`
}

// Post represents one extracted group post. Posts are value records:
// created once per extraction pass and never mutated afterward, except
// that FilterComments may replace Comments with a rebuilt tree.
type Post struct {
	ID        string     `json:"id"`
	Author    *Author    `json:"author,omitempty"`
	Content   string     `json:"content"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Reactions Reactions  `json:"reactions"`

	// CommentsCount is the count advertised by the document, independent
	// of how many comments were actually extracted into Comments.
	CommentsCount int        `json:"commentsCount"`
	Comments      []*Comment `json:"comments"`
}

// Validate returns an error if the post violates its invariants.
func (p *Post) Validate() error {
	if p.ID == "" {
		return Errorf(EINVALID, "post ID required")
	}
	if p.Content == "" {
		return Errorf(EINVALID, "post content required")
	}
	if p.Reactions.Total < 0 {
		return Errorf(EINVALID, "post reactions total must not be negative")
	}
	if p.CommentsCount < 0 {
		return Errorf(EINVALID, "post comments count must not be negative")
	}
	return nil
}
