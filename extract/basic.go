package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/foragehq/forage"
)

// Ensure Basic implements forage.Extractor at compile time.
var _ forage.Extractor = (*Basic)(nil)

// Basic extracts records from the legacy server-rendered layout
// (mbasic.facebook.com). Unlike the modern layout it exposes explicit
// structural cues: heading/link pairs for authors, abbr elements for
// timestamps, and metadata attributes carrying record ids.
type Basic struct{}

// NewBasic creates a new Basic extractor.
func NewBasic() *Basic {
	return &Basic{}
}

const basicHost = "https://mbasic.facebook.com"

var topLevelPostIDRe = regexp.MustCompile(`"top_level_post_id":"(\d+)"`)

// ExtractPost assembles a Post from one legacy article node.
func (e *Basic) ExtractPost(node forage.Node) (post *forage.Post) {
	defer func() {
		if recover() != nil {
			post = nil
		}
	}()

	if node == nil {
		return nil
	}

	author := forage.Author{Name: forage.UnknownAuthor}
	if header := node.Query("h3"); header != nil {
		if link := header.Query("a"); link != nil {
			if name := strings.TrimSpace(link.Text()); name != "" {
				author.Name = name
			}
			author.ProfileURL = absolutize(link.Attr("href"))
		}
	}

	content := ""
	if span := node.Query("div > div > span"); span != nil {
		content = strings.TrimSpace(span.Text())
	}
	if content == "" {
		var parts []string
		for _, p := range node.QueryAll("p") {
			if text := strings.TrimSpace(p.Text()); text != "" {
				parts = append(parts, text)
			}
		}
		content = strings.Join(parts, "\n")
	}
	if contentLen(content) < minContentLen {
		return nil
	}

	var ts *time.Time
	if abbr := node.Query("abbr"); abbr != nil {
		ts = forage.ParseTimestamp(strings.TrimSpace(abbr.Text()))
	}

	return &forage.Post{
		ID:            e.resolvePostID(node, content),
		Author:        &author,
		Content:       content,
		Timestamp:     ts,
		Reactions:     e.resolveReactions(node),
		CommentsCount: e.resolveCommentsCount(node),
	}
}

// resolvePostID tries permalink anchors, then the data-ft metadata
// attribute, then a synthetic hash of the content head.
func (e *Basic) resolvePostID(node forage.Node, content string) string {
	if link := node.Query(`a[href*="/story.php"], a[href*="/posts/"]`); link != nil {
		if id, ok := forage.ExtractPostID(link.Attr("href")); ok {
			return id
		}
	}
	if dataFT := node.Attr("data-ft"); dataFT != "" {
		if m := topLevelPostIDRe.FindStringSubmatch(dataFT); m != nil {
			return m[1]
		}
	}
	return forage.SyntheticPostID(content)
}

func (e *Basic) resolveReactions(node forage.Node) forage.Reactions {
	if link := node.Query(`a[href*="/ufi/reaction/"]`); link != nil {
		return forage.ParseReactionsText(strings.TrimSpace(link.Text()))
	}
	return forage.Reactions{}
}

func (e *Basic) resolveCommentsCount(node forage.Node) int {
	link := node.Query(`a[href*="comment"]`)
	if link == nil {
		return 0
	}
	if m := integerRe.FindString(link.Text()); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n
		}
	}
	return 0
}

var integerRe = regexp.MustCompile(`\d+`)

// ExtractComment assembles a Comment from one legacy comment node.
func (e *Basic) ExtractComment(node forage.Node) (comment *forage.Comment) {
	defer func() {
		if recover() != nil {
			comment = nil
		}
	}()

	if node == nil {
		return nil
	}

	author := forage.Author{Name: forage.UnknownAuthor}
	if link := node.Query("h3 a"); link != nil {
		if name := strings.TrimSpace(link.Text()); name != "" {
			author.Name = name
		}
		author.ProfileURL = absolutize(link.Attr("href"))
	}

	content := ""
	if div := node.Query("div[data-commentid] > div, h3 + div"); div != nil {
		content = strings.TrimSpace(div.Text())
	}
	if content == "" {
		// The first raw-text line is the author header; the rest is the
		// comment body.
		if lines := strings.Split(node.Text(), "\n"); len(lines) > 1 {
			content = strings.TrimSpace(strings.Join(lines[1:], "\n"))
		}
	}
	if contentLen(content) < minContentLen {
		return nil
	}

	id := node.Attr("data-commentid")
	if id == "" {
		id = forage.SyntheticCommentID(content)
	}

	reactions := forage.Reactions{}
	if link := node.Query(`a[href*="reaction"]`); link != nil {
		reactions = forage.ParseReactionsText(strings.TrimSpace(link.Text()))
	}

	return &forage.Comment{
		ID:        id,
		Author:    &author,
		Content:   content,
		Reactions: reactions,
	}
}

// absolutize prefixes host-relative profile links with the legacy host.
func absolutize(href string) string {
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}
	return basicHost + href
}
