package main

import (
	"fmt"
	"strings"

	"github.com/foragehq/forage"
	"github.com/foragehq/forage/scrape"
)

// Run executes the posts command.
func (c *PostsCmd) Run(deps *Dependencies) error {
	groupID := scrape.NormalizeGroupIdentifier(c.Group)
	if groupID == "" {
		return forage.Errorf(forage.EINVALID, "group identifier required")
	}

	posts, err := deps.Store.Posts(deps.Ctx, groupID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", forage.ErrorMessage(err))
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintln(deps.Stdout, "No posts found. Use 'forage scrape' to collect some.")
		return nil
	}

	for _, p := range posts {
		author := forage.UnknownAuthor
		if p.Author != nil {
			author = p.Author.Name
		}
		timestamp := "-"
		if p.Timestamp != nil {
			timestamp = p.Timestamp.Format("2006-01-02 15:04")
		}

		content := p.Content
		if !c.Full {
			content = firstLine(content)
			if len(content) > 80 {
				content = content[:77] + "..."
			}
		}

		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d reactions  %d comments\n  %s\n",
			p.ID, timestamp, author, p.Reactions.Total, p.CommentsCount, content)
	}

	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
