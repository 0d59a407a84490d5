package feeder

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

type FeedItem struct {
	Title       string
	Link        string
	PublishedAt time.Time
}

// FetchFeedItems fetches an RSS/Atom feed and returns its entries for
// batch capture. If limit is greater than 0, only the first limit
// items are returned.
func FetchFeedItems(feedURL string, limit int) ([]FeedItem, error) {
	httpClient := &http.Client{
		Transport: &http.Transport{
			// Some blogs serve feeds with broken certificate chains.
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}

	fp := gofeed.NewParser()
	fp.Client = httpClient

	feed, err := fp.ParseURL(feedURL)
	if err != nil {
		return nil, err
	}

	var items []FeedItem
	for _, item := range feed.Items {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		items = append(items, FeedItem{
			Title:       item.Title,
			Link:        item.Link,
			PublishedAt: published,
		})
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}
