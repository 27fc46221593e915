package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/foragehq/forage"
)

// Ensure Modern implements forage.Extractor at compile time.
var _ forage.Extractor = (*Modern)(nil)

// Modern extracts records from the modern React layout
// (www.facebook.com). The layout carries no reliable schema, so every
// field is inferred from text shape, element roles, and position.
type Modern struct{}

// NewModern creates a new Modern extractor.
func NewModern() *Modern {
	return &Modern{}
}

// feedNoise marks nodes that are feed filler rather than content posts.
// The BOM-prefixed variant appears verbatim in rendered text.
var feedNoise = []string{
	"People you may know",
	"\ufeffPeople you may know",
	"Suggested for you",
	"Groups you might like",
}

// nonAuthorLabels are visible strings the author cascade can mistake for
// a name.
var nonAuthorLabels = []string{"Online status indicator", "Active", "Sponsored"}

// postChrome is the UI vocabulary excluded from post content blocks.
var postChrome = []string{"Like", "Comment", "Share", "Reply", "·"}

// lineChrome extends postChrome for the raw-line content fallback.
var lineChrome = []string{"Like", "Comment", "Share", "·", "+3", "+1", "+2"}

// commentChrome is the UI vocabulary excluded from comment content.
var commentChrome = []string{"Like", "Reply", "Share", "·", "See more", "View replies"}

var (
	allReactionsRe  = regexp.MustCompile(`All reactions:?\s*\n?(\d+)`)
	othersRe        = regexp.MustCompile(`\n(\d+)\n.*(?:and \d+ others|others)`)
	standaloneNumRe = regexp.MustCompile(`\n(\d+)\n`)
	commentCountRe  = regexp.MustCompile(`(\d+)\s*comment`)
)

// timeUnitTokens mark link text worth handing to the timestamp parser.
var timeUnitTokens = []string{"h", "d", "w", "min", "yesterday", "just now"}

// ExtractPost assembles a Post from one feed article node. It returns
// nil for feed noise, for records whose content cannot be determined,
// and for any traversal fault inside the node.
func (e *Modern) ExtractPost(node forage.Node) (post *forage.Post) {
	// A fault while querying the tree loses this record only.
	defer func() {
		if recover() != nil {
			post = nil
		}
	}()

	if node == nil {
		return nil
	}

	allText := node.Text()
	lines := splitLines(allText)

	author := e.resolveAuthor(node, lines)

	if contains(feedNoise, author.Name) || containsAnyOf(head(allText, 100), feedNoise) {
		return nil
	}

	if contains(nonAuthorLabels, author.Name) {
		author.Name = forage.UnknownAuthor
	}

	content := e.resolveContent(node, author.Name)
	if content == "" && len(lines) > 2 {
		content = fallbackContent(lines, author.Name)
	}
	if contentLen(content) < minContentLen {
		return nil
	}

	return &forage.Post{
		ID:            e.resolvePostID(node, content, allText),
		Author:        &author,
		Content:       content,
		Timestamp:     e.resolveTimestamp(node),
		Reactions:     e.resolveReactions(node, allText),
		CommentsCount: e.resolveCommentsCount(node),
	}
}

// resolveAuthor runs the author cascade: a strong element (walking up to
// the nearest enclosing link for the profile URL), then role-tagged
// profile links with name-shaped text, then the first text line.
func (e *Modern) resolveAuthor(node forage.Node, lines []string) forage.Author {
	author := forage.Author{Name: forage.UnknownAuthor}

	if strong := node.Query("strong"); strong != nil {
		if name := strings.TrimSpace(strong.Text()); name != "" {
			author.Name = name
		}
		if link := strong.Closest("a"); link != nil {
			author.ProfileURL = link.Attr("href")
		}
	}

	if author.Name == forage.UnknownAuthor {
		for _, link := range node.QueryAll(`a[role="link"]`) {
			text := strings.TrimSpace(link.Text())
			href := link.Attr("href")
			if len(text) > 2 && len(text) < 50 && isProfileHref(href) {
				author.Name = text
				author.ProfileURL = href
				break
			}
		}
	}

	if author.Name == forage.UnknownAuthor && len(lines) > 0 {
		if first := lines[0]; len(first) < 50 && !hasDigitIn(first, 5) {
			author.Name = first
		}
	}

	author.Name = trimAuthorMarkers(author.Name)
	return author
}

// isProfileHref reports whether a link points at a profile rather than a
// group or a query-bearing action link.
func isProfileHref(href string) bool {
	if !strings.Contains(href, "facebook.com/") {
		return false
	}
	if strings.Contains(href, "/groups/") {
		return false
	}
	segments := strings.Split(href, "/")
	return !strings.Contains(segments[len(segments)-1], "?")
}

// resolveContent scans the auto-direction text blocks, drops chrome and
// near-empty blocks, deduplicates, and joins up to the first two
// survivors.
func (e *Modern) resolveContent(node forage.Node, authorName string) string {
	var parts []string
	for _, div := range node.QueryAll(`div[dir="auto"]`) {
		text := strings.TrimSpace(div.Text())
		if len(text) < 10 {
			continue
		}
		if text == authorName || contains(postChrome, text) {
			continue
		}
		if relativeTokenRe.MatchString(text) {
			continue
		}
		parts = append(parts, text)
	}

	seen := make(map[string]bool)
	var unique []string
	for _, part := range parts {
		cleaned := stripSeeMore(part)
		if cleaned != "" && !seen[cleaned] {
			seen[cleaned] = true
			unique = append(unique, cleaned)
		}
	}

	if len(unique) > 2 {
		unique = unique[:2]
	}
	return strings.Join(unique, "\n")
}

// fallbackContent recovers content from the node's raw text lines when
// no content block survived.
func fallbackContent(lines []string, authorName string) string {
	var kept []string
	for _, line := range lines {
		if line == authorName || contains(lineChrome, line) {
			continue
		}
		if relativeTokenRe.MatchString(line) {
			continue
		}
		if len(line) > 10 {
			kept = append(kept, line)
		}
	}
	if len(kept) > 3 {
		kept = kept[:3]
	}
	return strings.Join(kept, "\n")
}

// resolveTimestamp examines permalink-shaped links, preferring their
// accessible label over their visible text.
func (e *Modern) resolveTimestamp(node forage.Node) *time.Time {
	for _, link := range node.QueryAll(`a[href*="/posts/"], a[href*="?story_fbid"]`) {
		if aria := link.Attr("aria-label"); aria != "" {
			if ts := forage.ParseTimestamp(aria); ts != nil {
				return ts
			}
		}
		text := strings.TrimSpace(link.Text())
		if text == "" {
			continue
		}
		lower := strings.ToLower(text)
		if containsAnyOf(lower, timeUnitTokens) {
			if ts := forage.ParseTimestamp(text); ts != nil {
				return ts
			}
		}
	}
	return nil
}

// resolvePostID tries every link for an authoritative id before falling
// back to a synthetic one hashed from the content head (or, failing
// that, the node's full text).
func (e *Modern) resolvePostID(node forage.Node, content, allText string) string {
	for _, link := range node.QueryAll("a[href]") {
		if id, ok := forage.ExtractPostID(link.Attr("href")); ok {
			return id
		}
	}
	if content != "" {
		return forage.SyntheticPostID(content)
	}
	return forage.SyntheticPostID(allText)
}

// resolveReactions prefers accessible labels, then falls back to reaction
// summaries embedded in the node's full text.
func (e *Modern) resolveReactions(node forage.Node, allText string) forage.Reactions {
	var reactions forage.Reactions

	for _, el := range node.QueryAll(`[aria-label*="reaction"], [aria-label*="like"]`) {
		aria := el.Attr("aria-label")
		lower := strings.ToLower(aria)
		if strings.Contains(lower, "reaction") || strings.Contains(lower, "like") {
			reactions = forage.ParseReactionsText(aria)
			if reactions.Total > 0 {
				break
			}
		}
	}

	if reactions.Total == 0 {
		if m := allReactionsRe.FindStringSubmatch(allText); m != nil {
			reactions = forage.ParseReactionsText(m[1])
		}
	}
	if reactions.Total == 0 {
		if m := othersRe.FindStringSubmatch(allText); m != nil {
			reactions = forage.ParseReactionsText(m[1])
		}
	}
	return reactions
}

func (e *Modern) resolveCommentsCount(node forage.Node) int {
	for _, el := range node.QueryAll(`[aria-label*="comment"], [aria-label*="Comment"]`) {
		aria := strings.ToLower(el.Attr("aria-label"))
		if m := commentCountRe.FindStringSubmatch(aria); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
	}
	return 0
}

// ExtractComment mirrors ExtractPost at comment granularity: a single
// content block, a smaller chrome vocabulary, and an always-synthetic
// id.
func (e *Modern) ExtractComment(node forage.Node) (comment *forage.Comment) {
	defer func() {
		if recover() != nil {
			comment = nil
		}
	}()

	if node == nil {
		return nil
	}

	allText := node.Text()
	lines := splitLines(allText)
	if len(lines) == 0 {
		return nil
	}

	author := forage.Author{Name: forage.UnknownAuthor}
	if strong := node.Query("strong"); strong != nil {
		if name := strings.TrimSpace(strong.Text()); name != "" {
			author.Name = name
		}
	}
	for _, link := range node.QueryAll(`a[role="link"]`) {
		text := strings.TrimSpace(link.Text())
		href := link.Attr("href")
		if text != "" && len(text) < 50 &&
			strings.Contains(href, "facebook.com/") && !strings.Contains(href, "/groups/") {
			if author.Name == forage.UnknownAuthor {
				author.Name = text
			}
			author.ProfileURL = href
			break
		}
	}

	content := e.resolveCommentContent(node, author.Name)
	if content == "" {
		content = fallbackCommentContent(lines, author.Name)
	}
	if contentLen(content) < minContentLen {
		return nil
	}

	return &forage.Comment{
		ID:        forage.SyntheticCommentID(content),
		Author:    &author,
		Content:   content,
		Reactions: e.resolveCommentReactions(node, allText),
	}
}

func (e *Modern) resolveCommentContent(node forage.Node, authorName string) string {
	var parts []string
	for _, div := range node.QueryAll(`div[dir="auto"]`) {
		text := strings.TrimSpace(div.Text())
		if text == "" || len(text) <= 5 {
			continue
		}
		if text == authorName || contains(commentChrome, text) {
			continue
		}
		if relativeTokenRe.MatchString(text) {
			continue
		}
		parts = append(parts, text)
	}

	seen := make(map[string]bool)
	for _, part := range parts {
		cleaned := strings.TrimSpace(seeMoreSuffixRe.ReplaceAllString(part, ""))
		if cleaned == "" || cleaned == authorName || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		return cleaned
	}
	return ""
}

func fallbackCommentContent(lines []string, authorName string) string {
	for _, line := range lines {
		if line == authorName || contains(commentChrome, line) {
			continue
		}
		if relativeTokenRe.MatchString(line) {
			continue
		}
		if len(line) > 5 {
			return line
		}
	}
	return ""
}

func (e *Modern) resolveCommentReactions(node forage.Node, allText string) forage.Reactions {
	var reactions forage.Reactions
	for _, el := range node.QueryAll(`[aria-label*="reaction"], [aria-label*="like"]`) {
		aria := el.Attr("aria-label")
		if strings.Contains(strings.ToLower(aria), "reaction") {
			reactions = forage.ParseReactionsText(aria)
			break
		}
	}
	if reactions.Total == 0 {
		if m := standaloneNumRe.FindStringSubmatch(allText); m != nil {
			reactions = forage.ParseReactionsText(m[1])
		}
	}
	return reactions
}

// containsAnyOf reports whether s contains any of the given substrings.
func containsAnyOf(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
