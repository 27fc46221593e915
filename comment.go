package forage

import (
	"sort"
	"time"
)

// Comment represents one extracted comment. Replies form a tree of
// unbounded depth; a comment owns its replies, in document order.
type Comment struct {
	ID        string     `json:"id"`
	Author    *Author    `json:"author,omitempty"`
	Content   string     `json:"content"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Reactions Reactions  `json:"reactions"`
	Replies   []*Comment `json:"replies"`
}

// Validate returns an error if the comment violates its invariants.
func (c *Comment) Validate() error {
	if c.ID == "" {
		return Errorf(EINVALID, "comment ID required")
	}
	if c.Content == "" {
		return Errorf(EINVALID, "comment content required")
	}
	if c.Reactions.Total < 0 {
		return Errorf(EINVALID, "comment reactions total must not be negative")
	}
	return nil
}

// FilterComments prunes a comment tree by popularity. When minReactions
// is positive, comments with fewer total reactions are dropped. When topN
// is positive, the survivors are sorted by total reactions descending
// (stable, so document order is preserved among ties) and truncated to
// the first topN. Both steps are then applied recursively to the replies
// of every surviving comment with the same thresholds.
//
// A reply's eligibility is judged at its own level, independent of how
// its parent fared. The tree is rebuilt rather than mutated, so the
// input remains usable after filtering.
func FilterComments(comments []*Comment, minReactions, topN int) []*Comment {
	if len(comments) == 0 {
		return comments
	}

	filtered := comments

	if minReactions > 0 {
		kept := make([]*Comment, 0, len(filtered))
		for _, c := range filtered {
			if c.Reactions.Total >= minReactions {
				kept = append(kept, c)
			}
		}
		filtered = kept
	}

	if topN > 0 {
		ranked := make([]*Comment, len(filtered))
		copy(ranked, filtered)
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Reactions.Total > ranked[j].Reactions.Total
		})
		if len(ranked) > topN {
			ranked = ranked[:topN]
		}
		filtered = ranked
	}

	out := make([]*Comment, 0, len(filtered))
	for _, c := range filtered {
		clone := *c
		clone.Replies = FilterComments(c.Replies, minReactions, topN)
		out = append(out, &clone)
	}
	return out
}
