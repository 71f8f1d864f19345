package news

import "context"

// Article is one normalized feed entry.
type Article struct {
	Title     string
	Link      string
	Summary   string
	Published string
}

type Client interface {
	Search(ctx context.Context, keyword string, maxResults int) ([]Article, error)
	Name() string
}
