package sdg

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

// A FeedVideo is one entry from the channel's Atom feed.
type FeedVideo struct {
	ID        string    `json:"videoID"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Published time.Time `json:"published,omitempty"`
}

// LoadChannelFeed fetches and parses the channel's video feed from url.
// Entries are returned in feed order, newest first.
func LoadChannelFeed(ctx context.Context, url string) ([]*FeedVideo, error) {
	p := gofeed.NewParser()
	// Yes, the parser API has the context backward.
	feed, err := p.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	var vids []*FeedVideo
	for _, item := range feed.Items {
		v := &FeedVideo{Title: item.Title, URL: item.Link}
		if id := getExtensionField(item.Extensions, "yt", "videoId"); id != "" {
			v.ID = id
		} else {
			v.ID = VideoID(item.Link)
		}
		if t := item.PublishedParsed; t != nil {
			v.Published = *t
		}
		vids = append(vids, v)
	}
	return vids, nil
}

func getExtensionField(es ext.Extensions, ns, name string) string {
	for _, e := range es[ns][name] {
		if e.Name == name {
			return e.Value
		}
	}
	return ""
}
