package forage

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var (
	postsPathRe = regexp.MustCompile(`/posts/(\d+)`)
	pfbidRe     = regexp.MustCompile(`pfbid[a-zA-Z0-9]+`)
)

// ExtractPostID resolves a stable post identifier from a permalink URL.
// Resolution order: the story_fbid query parameter, a /posts/<digits>
// path segment, then a pfbid token anywhere in the URL. Malformed URLs
// never fail; they simply resolve to nothing.
func ExtractPostID(rawURL string) (string, bool) {
	if rawURL == "" {
		return "", false
	}

	if strings.Contains(rawURL, "story_fbid") {
		if u, err := url.Parse(rawURL); err == nil {
			if v := u.Query().Get("story_fbid"); v != "" {
				return v, true
			}
		}
	}

	if m := postsPathRe.FindStringSubmatch(rawURL); m != nil {
		return m[1], true
	}

	if m := pfbidRe.FindString(rawURL); m != "" {
		return m, true
	}

	return "", false
}

// SyntheticPostID derives a deterministic fallback identifier from the
// head of the post's content, for posts whose links yield no id. The
// same content always hashes to the same id across runs and platforms;
// content differing by a single character produces a different id, which
// is an accepted limitation of the fallback.
func SyntheticPostID(content string) string {
	return "post_" + syntheticSuffix(content, 50)
}

// SyntheticCommentID is the comment counterpart of SyntheticPostID.
func SyntheticCommentID(content string) string {
	return "comment_" + syntheticSuffix(content, 30)
}

func syntheticSuffix(content string, head int) string {
	if len(content) > head {
		content = content[:head]
	}
	h := xxhash.Sum64String(content) % 1_000_000_000
	return strconv.FormatUint(h, 10)
}
