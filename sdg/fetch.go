package sdg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Production endpoints. Tests point these at local servers via the Client
// fields below.
const (
	watchBase     = `https://www.youtube.com/watch?v=%s`
	timedTextBase = `https://video.google.com/timedtext?lang=%s&v=%s`
)

// DefaultTimeout bounds each remote call made with a zero-value Client.
const DefaultTimeout = 30 * time.Second

// A Client performs the remote calls of the acquisition pipeline. The zero
// value is ready to use with the production endpoints and DefaultTimeout.
type Client struct {
	HTTP          *http.Client // nil for a default client with DefaultTimeout
	WatchBase     string       // format string taking a video ID
	TimedTextBase string       // format string taking a language tag and a video ID
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: DefaultTimeout}
}

func (c *Client) watchURL(id string) string {
	base := c.WatchBase
	if base == "" {
		base = watchBase
	}
	return fmt.Sprintf(base, url.QueryEscape(id))
}

func (c *Client) timedTextURL(lang, id string) string {
	base := c.TimedTextBase
	if base == "" {
		base = timedTextBase
	}
	return fmt.Sprintf(base, url.QueryEscape(lang), url.QueryEscape(id))
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	rsp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	io.Copy(&buf, rsp.Body)
	rsp.Body.Close()
	if rsp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed: %s", rsp.Status)
	}
	return buf.Bytes(), nil
}

func (c *Client) loadWatchPage(ctx context.Context, id string) ([]byte, error) {
	return c.get(ctx, c.watchURL(id))
}

// captionInfo mirrors the caption track metadata embedded in the watch
// page.
type captionInfo struct {
	URL  string `json:"baseUrl"`
	Lang string `json:"languageCode"`
	Kind string `json:"kind"` // "asr" marks auto-generated tracks

	// other fields ignored
}

// CaptionInventory loads the watch page for the given video ID and extracts
// the reported caption tracks, expanded into the serializations the
// platform can deliver. It returns an empty inventory without error if the
// video exists but lacks captions.
func (c *Client) CaptionInventory(ctx context.Context, id string) (*Inventory, error) {
	bits, err := c.loadWatchPage(ctx, id)
	if err != nil {
		return nil, err
	}
	infos, err := extractCaptionTracks(bits, id)
	if err != nil {
		return nil, err
	}
	return buildInventory(infos), nil
}

func extractCaptionTracks(bits []byte, id string) ([]*captionInfo, error) {
	const needle = `"captions":`
	i := bytes.Index(bits, []byte(needle))
	if i < 0 {
		if bytes.Contains(bits, []byte(`class="g-recaptcha"`)) {
			return nil, errors.New("rate limit exceeded")
		} else if !bytes.Contains(bits, []byte(`playabilityStatus`)) {
			return nil, fmt.Errorf("video ID %q not found", id)
		}
		return nil, nil
	}

	var data struct {
		R *struct {
			C []*captionInfo `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	}

	// Decode the JSON blob. Use a json.Decoder so that the garbage in the
	// page after the blob we're interested in can be ignored.
	dec := json.NewDecoder(bytes.NewReader(bits[i+len(needle):]))
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	if data.R == nil {
		return nil, nil
	}
	return data.R.C, nil
}

// formatVariants maps each supported serialization to the fmt query
// parameter that requests it from a track's base URL. The bare base URL
// returns the legacy timedtext XML.
var formatVariants = []struct {
	format Format
	param  string
}{
	{FormatTimedText, ""},
	{FormatJSONEvents, "json3"},
	{FormatTTML, "ttml"},
}

func buildInventory(infos []*captionInfo) *Inventory {
	inv := &Inventory{
		Manual: make(map[string][]CaptionTrack),
		Auto:   make(map[string][]CaptionTrack),
	}
	for _, info := range infos {
		if info.URL == "" {
			continue
		}
		kind, group := TrackManual, inv.Manual
		if info.Kind == "asr" {
			kind, group = TrackAuto, inv.Auto
		}
		for _, v := range formatVariants {
			u := info.URL
			if v.param != "" {
				u += "&fmt=" + v.param
			}
			group[info.Lang] = append(group[info.Lang], CaptionTrack{
				Lang:   info.Lang,
				Kind:   kind,
				Format: v.format,
				URL:    u,
			})
		}
	}
	return inv
}

// FetchCaptions downloads the caption payload for track and decodes it into
// transcript segments.
func (c *Client) FetchCaptions(ctx context.Context, track CaptionTrack) ([]Segment, error) {
	bits, err := c.get(ctx, track.URL)
	if err != nil {
		return nil, err
	}
	return DecodeCaptions(track.Format, bits)
}
