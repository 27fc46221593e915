package mock

import "github.com/foragehq/forage"

var _ forage.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of forage.Extractor.
type Extractor struct {
	ExtractPostFn    func(node forage.Node) *forage.Post
	ExtractCommentFn func(node forage.Node) *forage.Comment
}

func (e *Extractor) ExtractPost(node forage.Node) *forage.Post {
	return e.ExtractPostFn(node)
}

func (e *Extractor) ExtractComment(node forage.Node) *forage.Comment {
	return e.ExtractCommentFn(node)
}
