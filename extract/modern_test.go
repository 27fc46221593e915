package extract_test

import (
	"testing"
	"time"

	"github.com/foragehq/forage"
	"github.com/foragehq/forage/extract"
	"github.com/foragehq/forage/goquery"
	"github.com/foragehq/forage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// articleNode parses fixture HTML and returns the feed article node.
func articleNode(t *testing.T, html string) forage.Node {
	t.Helper()

	root, err := goquery.Parse(html)
	require.NoError(t, err)

	node := root.Query(`div[role="article"]`)
	require.NotNil(t, node)
	return node
}

func TestModern_ExtractPost(t *testing.T) {
	t.Parallel()

	t.Run("extracts a complete post", func(t *testing.T) {
		t.Parallel()

		node := articleNode(t, `
			<div role="article">
				<h2><a role="link" href="https://www.facebook.com/jane.doe"><strong>Jane Doe</strong></a></h2>
				<div dir="auto">Check this out!</div>
				<a href="https://www.facebook.com/groups/g/posts/998877/" aria-label="6h">6h</a>
				<div aria-label="42 reactions"></div>
				<div aria-label="Leave a comment"></div>
				<div aria-label="3 comments"></div>
				<div dir="auto">Like</div>
				<div dir="auto">Comment</div>
			</div>`)

		post := extract.NewModern().ExtractPost(node)

		require.NotNil(t, post)
		assert.Equal(t, "998877", post.ID)
		require.NotNil(t, post.Author)
		assert.Equal(t, "Jane Doe", post.Author.Name)
		assert.Equal(t, "https://www.facebook.com/jane.doe", post.Author.ProfileURL)
		assert.Equal(t, "Check this out!", post.Content)
		assert.Equal(t, 42, post.Reactions.Total)
		assert.Equal(t, 3, post.CommentsCount)
		require.NotNil(t, post.Timestamp)
		assert.WithinDuration(t, time.Now().Add(-6*time.Hour), *post.Timestamp, 5*time.Second)
	})

	t.Run("feed noise yields no record", func(t *testing.T) {
		t.Parallel()

		node := articleNode(t, `
			<div role="article">
				<div dir="auto">People you may know</div>
				<div dir="auto">Someone you could add as a friend</div>
			</div>`)

		assert.Nil(t, extract.NewModern().ExtractPost(node))
	})

	t.Run("BOM-prefixed feed noise yields no record", func(t *testing.T) {
		t.Parallel()

		node := articleNode(t, `
			<div role="article">
				<div dir="auto">&#xfeff;People you may know</div>
				<div dir="auto">Someone you could add as a friend</div>
			</div>`)

		assert.Nil(t, extract.NewModern().ExtractPost(node))
	})

	t.Run("near-empty content yields no record", func(t *testing.T) {
		t.Parallel()

		node := articleNode(t, `
			<div role="article">
				<div dir="auto">abc</div>
			</div>`)

		assert.Nil(t, extract.NewModern().ExtractPost(node))
	})

	t.Run("editorial suffix is trimmed from the author", func(t *testing.T) {
		t.Parallel()

		node := articleNode(t, `
			<div role="article">
				<strong>Jane Doe is with John Smith</strong>
				<div dir="auto">We had a wonderful day at the lake.</div>
			</div>`)

		post := extract.NewModern().ExtractPost(node)

		require.NotNil(t, post)
		assert.Equal(t, "Jane Doe", post.Author.Name)
	})

	t.Run("non-author label resets to Unknown", func(t *testing.T) {
		t.Parallel()

		node := articleNode(t, `
			<div role="article">
				<strong>Sponsored</strong>
				<div dir="auto">Buy three widgets and get one free today.</div>
			</div>`)

		post := extract.NewModern().ExtractPost(node)

		require.NotNil(t, post)
		assert.Equal(t, forage.UnknownAuthor, post.Author.Name)
	})

	t.Run("duplicate content blocks are collapsed", func(t *testing.T) {
		t.Parallel()

		node := articleNode(t, `
			<div role="article">
				<strong>Jane Doe</strong>
				<div dir="auto"><div dir="auto">Hello wonderful world of food</div></div>
			</div>`)

		post := extract.NewModern().ExtractPost(node)

		require.NotNil(t, post)
		assert.Equal(t, "Hello wonderful world of food", post.Content)
	})

	t.Run("see more markers are stripped", func(t *testing.T) {
		t.Parallel()

		node := articleNode(t, `
			<div role="article">
				<strong>Jane Doe</strong>
				<div dir="auto">The recipe starts with two onions… See more</div>
			</div>`)

		post := extract.NewModern().ExtractPost(node)

		require.NotNil(t, post)
		assert.Equal(t, "The recipe starts with two onions", post.Content)
	})

	t.Run("at most two content blocks are joined", func(t *testing.T) {
		t.Parallel()

		node := articleNode(t, `
			<div role="article">
				<strong>Jane Doe</strong>
				<div>
					<div dir="auto">First paragraph of the post</div>
					<div>
						<div dir="auto">Second paragraph of the post</div>
						<div dir="auto">Third paragraph never shows up</div>
					</div>
				</div>
			</div>`)

		post := extract.NewModern().ExtractPost(node)

		require.NotNil(t, post)
		assert.Equal(t, "First paragraph of the post\nSecond paragraph of the post", post.Content)
	})

	t.Run("reaction total from text summary", func(t *testing.T) {
		t.Parallel()

		node := articleNode(t, `
			<div role="article">
				<strong>Jane Doe</strong>
				<div dir="auto">Look at what we cooked tonight</div>
				<div>All reactions:<br>44</div>
			</div>`)

		post := extract.NewModern().ExtractPost(node)

		require.NotNil(t, post)
		assert.Equal(t, 44, post.Reactions.Total)
	})

	t.Run("synthetic id when no permalink resolves", func(t *testing.T) {
		t.Parallel()

		node := articleNode(t, `
			<div role="article">
				<strong>Jane Doe</strong>
				<div dir="auto">A post without any permalink at all</div>
			</div>`)

		post := extract.NewModern().ExtractPost(node)

		require.NotNil(t, post)
		assert.Equal(t, forage.SyntheticPostID("A post without any permalink at all"), post.ID)
	})

	t.Run("missing timestamp is tolerated", func(t *testing.T) {
		t.Parallel()

		node := articleNode(t, `
			<div role="article">
				<strong>Jane Doe</strong>
				<div dir="auto">No timestamp anywhere in this one</div>
			</div>`)

		post := extract.NewModern().ExtractPost(node)

		require.NotNil(t, post)
		assert.Nil(t, post.Timestamp)
	})

	t.Run("traversal fault loses only the record", func(t *testing.T) {
		t.Parallel()

		node := &mock.Node{
			TextFn: func() string { return "Jane Doe\nSome real content here" },
			QueryAllFn: func(selector string) []forage.Node {
				panic("detached element")
			},
		}

		assert.Nil(t, extract.NewModern().ExtractPost(node))
	})

	t.Run("nil node yields no record", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, extract.NewModern().ExtractPost(nil))
	})
}

func TestModern_ExtractComment(t *testing.T) {
	t.Parallel()

	t.Run("extracts a complete comment", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.Parse(`
			<div id="c">
				<a role="link" href="https://www.facebook.com/bob.example"><strong>Bob</strong></a>
				<div dir="auto">Great post, thanks for sharing!</div>
				<div aria-label="5 reactions"></div>
				<div dir="auto">Reply</div>
			</div>`)
		require.NoError(t, err)
		node := root.Query("#c")
		require.NotNil(t, node)

		comment := extract.NewModern().ExtractComment(node)

		require.NotNil(t, comment)
		assert.Equal(t, "Bob", comment.Author.Name)
		assert.Equal(t, "https://www.facebook.com/bob.example", comment.Author.ProfileURL)
		assert.Equal(t, "Great post, thanks for sharing!", comment.Content)
		assert.Equal(t, 5, comment.Reactions.Total)
		assert.Equal(t, forage.SyntheticCommentID("Great post, thanks for sharing!"), comment.ID)
		assert.Nil(t, comment.Timestamp)
	})

	t.Run("chrome-only comment yields no record", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.Parse(`
			<div id="c">
				<div dir="auto">Reply</div>
				<div dir="auto">View replies</div>
			</div>`)
		require.NoError(t, err)
		node := root.Query("#c")
		require.NotNil(t, node)

		assert.Nil(t, extract.NewModern().ExtractComment(node))
	})

	t.Run("short content yields no record", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.Parse(`<div id="c"><strong>Bob</strong><div dir="auto">ok!</div></div>`)
		require.NoError(t, err)
		node := root.Query("#c")
		require.NotNil(t, node)

		assert.Nil(t, extract.NewModern().ExtractComment(node))
	})
}
