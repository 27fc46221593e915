// Package fs provides file-based export of scrape results.
package fs

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/foragehq/forage"
)

// Ensure CSVExporter implements forage.Exporter at compile time.
var _ forage.Exporter = (*CSVExporter)(nil)

// CSVExporter writes a scrape result as a pair of CSV files: one for
// posts and a sibling file for their comments.
type CSVExporter struct{}

// NewCSVExporter creates a new CSVExporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Export writes posts to path and comments to a sibling file named
// <path without extension>.comments.csv.
func (e *CSVExporter) Export(result *forage.ScrapeResult, path string) error {
	if err := writePosts(result, path); err != nil {
		return err
	}
	return writeComments(result, commentsPath(path))
}

// CommentsPath returns the sibling comments file for a posts file.
// Example: out/group.csv → out/group.comments.csv
func CommentsPath(path string) string {
	return commentsPath(path)
}

func commentsPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".comments.csv"
}

func writePosts(result *forage.ScrapeResult, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create posts file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"post_id",
		"author_name",
		"author_profile_url",
		"content",
		"timestamp",
		"reactions_total",
		"comments_count",
		"group_name",
		"group_id",
	}); err != nil {
		return err
	}

	for _, post := range result.Posts {
		name, profileURL := authorColumns(post.Author)
		if err := w.Write([]string{
			post.ID,
			name,
			profileURL,
			post.Content,
			timestampColumn(post.Timestamp),
			strconv.Itoa(post.Reactions.Total),
			strconv.Itoa(post.CommentsCount),
			result.Group.Name,
			result.Group.ID,
		}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func writeComments(result *forage.ScrapeResult, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create comments file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"comment_id",
		"post_id",
		"parent_comment_id",
		"author_name",
		"author_profile_url",
		"content",
		"timestamp",
		"reactions_total",
	}); err != nil {
		return err
	}

	for _, post := range result.Posts {
		for _, comment := range post.Comments {
			if err := writeCommentRow(w, comment, post.ID, ""); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

// writeCommentRow writes a comment and then its replies depth-first, so
// replies always follow their parent in the file.
func writeCommentRow(w *csv.Writer, comment *forage.Comment, postID, parentID string) error {
	name, profileURL := authorColumns(comment.Author)
	if err := w.Write([]string{
		comment.ID,
		postID,
		parentID,
		name,
		profileURL,
		comment.Content,
		timestampColumn(comment.Timestamp),
		strconv.Itoa(comment.Reactions.Total),
	}); err != nil {
		return err
	}

	for _, reply := range comment.Replies {
		if err := writeCommentRow(w, reply, postID, comment.ID); err != nil {
			return err
		}
	}
	return nil
}

func authorColumns(author *forage.Author) (name, profileURL string) {
	if author == nil {
		return "", ""
	}
	return author.Name, author.ProfileURL
}

func timestampColumn(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
