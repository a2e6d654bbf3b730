package sdg

import (
	"bytes"
	"context"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Meta carries the best-effort display metadata attached to a transcript.
type Meta struct {
	Title     string
	Published time.Time
}

// VideoMeta fetches the title and publish date the platform reports for the
// video. Fields the page does not expose fall back to a generic title and
// the current date; VideoMeta fails only when the page cannot be loaded.
func (c *Client) VideoMeta(ctx context.Context, id string) (*Meta, error) {
	bits, err := c.loadWatchPage(ctx, id)
	if err != nil {
		return nil, err
	}
	meta := &Meta{Title: "Unknown Title", Published: time.Now()}
	tags := metaTags(bits)
	if t := tags["title"]; t != "" {
		meta.Title = t
	}
	for _, key := range []string{"datePublished", "uploadDate"} {
		if d := tags[key]; d != "" {
			if ts, err := ParseUploadDate(d); err == nil {
				meta.Published = ts
				break
			}
		}
	}
	return meta, nil
}

// metaTags scans an HTML document for <meta> elements and returns their
// name (or itemprop) to content mapping. The first occurrence of a key
// wins.
func metaTags(page []byte) map[string]string {
	tok := html.NewTokenizer(bytes.NewReader(page))
	tags := make(map[string]string)
	for tok.Next() != html.ErrorToken {
		t := tok.Token()
		if t.Type != html.StartTagToken && t.Type != html.SelfClosingTagToken {
			continue
		}
		if t.DataAtom != atom.Meta {
			continue
		}
		key, ok := getAttr(t, "name")
		if !ok {
			key, ok = getAttr(t, "itemprop")
		}
		if !ok || tags[key] != "" {
			continue
		}
		if val, ok := getAttr(t, "content"); ok {
			tags[key] = val
		}
	}
	return tags
}

func getAttr(tok html.Token, name string) (string, bool) {
	name = strings.ToLower(name)
	for _, attr := range tok.Attr {
		if strings.ToLower(attr.Key) == name {
			return attr.Val, true
		}
	}
	return "", false
}

// ParseUploadDate parses a platform-reported upload date. The canonical
// form is YYYYMMDD; ISO dates (YYYY-MM-DD, with or without a time suffix)
// are normalized first.
func ParseUploadDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "-", "")
	return time.ParseInLocation("20060102", s, time.Local)
}
