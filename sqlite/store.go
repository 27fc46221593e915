package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/foragehq/forage"
)

// Compile-time interface verification.
var _ forage.ScrapeStore = (*Store)(nil)

// Store implements forage.ScrapeStore using SQLite.
type Store struct {
	db *DB
}

// NewStore creates a new Store.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// SaveResult upserts the group, a scrape run record, and every post
// with its comment tree. The whole result is written in one
// transaction.
func (s *Store) SaveResult(ctx context.Context, result *forage.ScrapeResult) error {
	if err := result.Group.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO groups (id, name, url)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, url = excluded.url
	`, result.Group.ID, result.Group.Name, result.Group.URL)
	if err != nil {
		return fmt.Errorf("failed to upsert group: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO scrapes (id, group_id, scraped_at, since, until, post_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), result.Group.ID,
		result.ScrapedAt.UTC().Format(time.RFC3339),
		result.DateRange.Since.UTC().Format(time.RFC3339),
		result.DateRange.Until.UTC().Format(time.RFC3339),
		len(result.Posts))
	if err != nil {
		return fmt.Errorf("failed to record scrape run: %w", err)
	}

	scrapedAt := result.ScrapedAt.UTC().Format(time.RFC3339)
	for _, post := range result.Posts {
		if err := post.Validate(); err != nil {
			return err
		}
		if err := upsertPost(ctx, tx, result.Group.ID, post, scrapedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func upsertPost(ctx context.Context, tx *sql.Tx, groupID string, post *forage.Post, scrapedAt string) error {
	authorName, authorURL := authorFields(post.Author)

	_, err := tx.ExecContext(ctx, `
		INSERT INTO posts (
			id, group_id, author_name, author_profile_url, content,
			timestamp, reactions_total, reactions_like, reactions_love,
			reactions_haha, reactions_wow, reactions_sad, reactions_angry,
			comments_count, scraped_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			author_name = excluded.author_name,
			author_profile_url = excluded.author_profile_url,
			content = excluded.content,
			timestamp = excluded.timestamp,
			reactions_total = excluded.reactions_total,
			reactions_like = excluded.reactions_like,
			reactions_love = excluded.reactions_love,
			reactions_haha = excluded.reactions_haha,
			reactions_wow = excluded.reactions_wow,
			reactions_sad = excluded.reactions_sad,
			reactions_angry = excluded.reactions_angry,
			comments_count = excluded.comments_count,
			scraped_at = excluded.scraped_at
	`, post.ID, groupID, authorName, authorURL, post.Content,
		formatTimestamp(post.Timestamp),
		post.Reactions.Total, post.Reactions.Like, post.Reactions.Love,
		post.Reactions.Haha, post.Reactions.Wow, post.Reactions.Sad,
		post.Reactions.Angry, post.CommentsCount, scrapedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert post %s: %w", post.ID, err)
	}

	for i, comment := range post.Comments {
		if err := upsertComment(ctx, tx, post.ID, comment, nil, i); err != nil {
			return err
		}
	}
	return nil
}

func upsertComment(ctx context.Context, tx *sql.Tx, postID string, comment *forage.Comment, parentID *string, position int) error {
	if err := comment.Validate(); err != nil {
		return err
	}
	authorName, authorURL := authorFields(comment.Author)

	_, err := tx.ExecContext(ctx, `
		INSERT INTO comments (
			id, post_id, parent_comment_id, position, author_name,
			author_profile_url, content, timestamp, reactions_total,
			reactions_like, reactions_love, reactions_haha, reactions_wow,
			reactions_sad, reactions_angry
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			parent_comment_id = excluded.parent_comment_id,
			position = excluded.position,
			author_name = excluded.author_name,
			author_profile_url = excluded.author_profile_url,
			content = excluded.content,
			timestamp = excluded.timestamp,
			reactions_total = excluded.reactions_total,
			reactions_like = excluded.reactions_like,
			reactions_love = excluded.reactions_love,
			reactions_haha = excluded.reactions_haha,
			reactions_wow = excluded.reactions_wow,
			reactions_sad = excluded.reactions_sad,
			reactions_angry = excluded.reactions_angry
	`, comment.ID, postID, parentID, position, authorName, authorURL,
		comment.Content, formatTimestamp(comment.Timestamp),
		comment.Reactions.Total, comment.Reactions.Like,
		comment.Reactions.Love, comment.Reactions.Haha,
		comment.Reactions.Wow, comment.Reactions.Sad,
		comment.Reactions.Angry)
	if err != nil {
		return fmt.Errorf("failed to upsert comment %s: %w", comment.ID, err)
	}

	for i, reply := range comment.Replies {
		if err := upsertComment(ctx, tx, postID, reply, &comment.ID, i); err != nil {
			return err
		}
	}
	return nil
}

// Posts returns the stored posts for a group, newest first. Comment
// trees are not attached.
func (s *Store) Posts(ctx context.Context, groupID string) ([]*forage.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, author_name, author_profile_url, content, timestamp,
			reactions_total, reactions_like, reactions_love, reactions_haha,
			reactions_wow, reactions_sad, reactions_angry, comments_count
		FROM posts
		WHERE group_id = ?
		ORDER BY timestamp DESC
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*forage.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Result reconstitutes the latest stored state of a group: the group
// record, the most recent scrape run's bounds, and every post with its
// comment tree.
func (s *Store) Result(ctx context.Context, groupID string) (*forage.ScrapeResult, error) {
	var group forage.GroupInfo
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, url FROM groups WHERE id = ?
	`, groupID).Scan(&group.ID, &group.Name, &group.URL)
	if err == sql.ErrNoRows {
		return nil, forage.Errorf(forage.ENOTFOUND, "group %q not found", groupID)
	}
	if err != nil {
		return nil, err
	}

	result := &forage.ScrapeResult{Group: group}

	var scrapedAt, since, until string
	err = s.db.QueryRowContext(ctx, `
		SELECT scraped_at, since, until
		FROM scrapes
		WHERE group_id = ?
		ORDER BY scraped_at DESC
		LIMIT 1
	`, groupID).Scan(&scrapedAt, &since, &until)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	if err == nil {
		if result.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at"); err != nil {
			return nil, err
		}
		if result.DateRange.Since, err = parseRFC3339(since, "since"); err != nil {
			return nil, err
		}
		if result.DateRange.Until, err = parseRFC3339(until, "until"); err != nil {
			return nil, err
		}
	}

	posts, err := s.Posts(ctx, groupID)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		post.Comments, err = s.commentTree(ctx, post.ID)
		if err != nil {
			return nil, err
		}
	}
	result.Posts = posts

	return result, nil
}

// commentTree loads all comments for a post and links replies to their
// parents, preserving the stored sibling order.
func (s *Store) commentTree(ctx context.Context, postID string) ([]*forage.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, parent_comment_id, author_name, author_profile_url,
			content, timestamp, reactions_total, reactions_like,
			reactions_love, reactions_haha, reactions_wow, reactions_sad,
			reactions_angry
		FROM comments
		WHERE post_id = ?
		ORDER BY parent_comment_id NULLS FIRST, position
	`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]*forage.Comment)
	var roots []*forage.Comment
	var links []struct{ child, parent string }

	for rows.Next() {
		var comment forage.Comment
		var parentID, authorName, authorURL, timestamp sql.NullString

		if err := rows.Scan(&comment.ID, &parentID, &authorName, &authorURL,
			&comment.Content, &timestamp,
			&comment.Reactions.Total, &comment.Reactions.Like,
			&comment.Reactions.Love, &comment.Reactions.Haha,
			&comment.Reactions.Wow, &comment.Reactions.Sad,
			&comment.Reactions.Angry); err != nil {
			return nil, err
		}

		comment.Author = scannedAuthor(authorName, authorURL)
		if comment.Timestamp, err = scannedTimestamp(timestamp); err != nil {
			return nil, err
		}

		byID[comment.ID] = &comment
		if parentID.Valid {
			links = append(links, struct{ child, parent string }{comment.ID, parentID.String})
		} else {
			roots = append(roots, &comment)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, link := range links {
		parent, ok := byID[link.parent]
		if !ok {
			// Orphaned reply; surface it at the top level rather than
			// dropping it.
			roots = append(roots, byID[link.child])
			continue
		}
		parent.Replies = append(parent.Replies, byID[link.child])
	}

	return roots, nil
}

func scanPost(rows *sql.Rows) (*forage.Post, error) {
	var post forage.Post
	var authorName, authorURL, timestamp sql.NullString

	if err := rows.Scan(&post.ID, &authorName, &authorURL, &post.Content,
		&timestamp, &post.Reactions.Total, &post.Reactions.Like,
		&post.Reactions.Love, &post.Reactions.Haha, &post.Reactions.Wow,
		&post.Reactions.Sad, &post.Reactions.Angry,
		&post.CommentsCount); err != nil {
		return nil, err
	}

	post.Author = scannedAuthor(authorName, authorURL)
	var err error
	if post.Timestamp, err = scannedTimestamp(timestamp); err != nil {
		return nil, err
	}
	return &post, nil
}

func authorFields(author *forage.Author) (sql.NullString, sql.NullString) {
	if author == nil {
		return sql.NullString{}, sql.NullString{}
	}
	name := sql.NullString{String: author.Name, Valid: true}
	url := sql.NullString{String: author.ProfileURL, Valid: author.ProfileURL != ""}
	return name, url
}

func scannedAuthor(name, url sql.NullString) *forage.Author {
	if !name.Valid {
		return nil
	}
	return &forage.Author{Name: name.String, ProfileURL: url.String}
}

func formatTimestamp(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339), Valid: true}
}

func scannedTimestamp(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := parseRFC3339(s.String, "timestamp")
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
