package news

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	googleNewsSearchURL = "https://news.google.com/rss/search?q=%s&hl=ko&gl=KR&ceid=KR:ko"

	fetchTimeout = 15 * time.Second

	publishedLayout = "2006-01-02 15:04"
)

// ErrorKind classifies a failed search so callers can show the right
// user-facing message.
type ErrorKind int

const (
	KindTimeout ErrorKind = iota
	KindConnection
	KindHTTP
	KindParse
)

type FetchError struct {
	Kind ErrorKind
	Err  error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindTimeout:
		return fmt.Sprintf("news fetch timed out: %v", e.Err)
	case KindConnection:
		return fmt.Sprintf("news fetch connection failed: %v", e.Err)
	case KindHTTP:
		return fmt.Sprintf("news fetch HTTP error: %v", e.Err)
	default:
		return fmt.Sprintf("news feed parse failed: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// GoogleNewsClient searches the Google News RSS endpoint for a keyword.
type GoogleNewsClient struct {
	httpClient *http.Client
	parser     *gofeed.Parser
	searchURL  string
}

func NewGoogleNewsClient() *GoogleNewsClient {
	return &GoogleNewsClient{
		httpClient: &http.Client{Timeout: fetchTimeout},
		parser:     gofeed.NewParser(),
		searchURL:  googleNewsSearchURL,
	}
}

func (c *GoogleNewsClient) Name() string {
	return "GoogleNews"
}

// Search fetches at most maxResults entries for keyword, preserving feed
// order. It performs exactly one outbound request and never retries;
// failures come back as *FetchError.
func (c *GoogleNewsClient) Search(ctx context.Context, keyword string, maxResults int) ([]Article, error) {
	searchURL := fmt.Sprintf(c.searchURL, url.QueryEscape(keyword))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindConnection, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Kind: KindHTTP, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	feed, err := c.parser.Parse(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: KindParse, Err: err}
	}

	items := feed.Items
	if len(items) > maxResults {
		items = items[:maxResults]
	}

	articles := make([]Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, Article{
			Title:     itemTitle(item),
			Link:      item.Link,
			Summary:   itemSummary(item),
			Published: itemPublished(item),
		})
	}
	return articles, nil
}

func classifyTransportError(err error) *FetchError {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &FetchError{Kind: KindTimeout, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &FetchError{Kind: KindTimeout, Err: err}
	}
	return &FetchError{Kind: KindConnection, Err: err}
}

func itemTitle(item *gofeed.Item) string {
	if item.Title == "" {
		return "(제목 없음)"
	}
	return item.Title
}

func itemSummary(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}
	return item.Content
}

// itemPublished prefers the structured timestamp, reformatted to a fixed
// layout, and silently falls back to the raw feed text.
func itemPublished(item *gofeed.Item) string {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.Format(publishedLayout)
	}
	return item.Published
}
