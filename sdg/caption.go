package sdg

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"
)

// A Format identifies one of the caption serializations the platform can
// deliver.
type Format string

const (
	FormatTTML       Format = "ttml"          // TTML, the W3C timed-text XML dialect
	FormatTimedText  Format = "timedtext-xml" // the legacy flat <text> XML
	FormatJSONEvents Format = "json-events"   // the JSON event stream ("json3")
)

// ErrUnsupportedFormat is reported when a caption payload carries a format
// tag outside the closed set above.
var ErrUnsupportedFormat = errors.New("unsupported caption format")

// DecodeCaptions decodes a raw caption payload in the given serialization
// into ordered transcript segments. Segment text is entity-unescaped and
// trimmed, and empty segments are dropped. A malformed payload yields an
// error, never a panic.
func DecodeCaptions(format Format, data []byte) ([]Segment, error) {
	var texts []string
	var err error
	switch format {
	case FormatTTML:
		texts, err = decodeTTML(data)
	case FormatTimedText:
		texts, err = decodeTimedText(data)
	case FormatJSONEvents:
		texts, err = decodeJSONEvents(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s captions: %w", format, err)
	}
	var segs []Segment
	for _, text := range texts {
		text = strings.TrimSpace(html.UnescapeString(text))
		if text == "" {
			continue
		}
		segs = append(segs, Segment{Index: len(segs), Text: text})
	}
	return segs, nil
}

// ttmlNS is the TTML namespace; only <p> elements in this namespace carry
// caption text.
const ttmlNS = "http://www.w3.org/ns/ttml"

func decodeTTML(data []byte) ([]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = xml.HTMLEntity

	var texts []string
	var depth int
	var buf strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space == ttmlNS && t.Name.Local == "p" {
				if depth == 0 {
					buf.Reset()
				}
				depth++
			}
		case xml.CharData:
			if depth > 0 {
				buf.Write(t)
			}
		case xml.EndElement:
			if t.Name.Space == ttmlNS && t.Name.Local == "p" && depth > 0 {
				depth--
				if depth == 0 {
					texts = append(texts, buf.String())
				}
			}
		}
	}
	return texts, nil
}

// <text start="3285.28" dur="4.88">surprised you with how they comport</text>
type timedTextDoc struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Text string `xml:",chardata"`
	} `xml:"text"`
}

func decodeTimedText(data []byte) ([]string, error) {
	var doc timedTextDoc
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = xml.HTMLEntity
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	texts := make([]string, len(doc.Texts))
	for i, t := range doc.Texts {
		texts[i] = t.Text
	}
	return texts, nil
}

// jsonEventsDoc mirrors the "json3" event stream. Each event may carry a
// list of segments; only the first segment of each event is taken.
type jsonEventsDoc struct {
	Events []struct {
		Segs []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

func decodeJSONEvents(data []byte) ([]string, error) {
	var doc jsonEventsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	var texts []string
	for _, ev := range doc.Events {
		if len(ev.Segs) == 0 {
			continue
		}
		texts = append(texts, ev.Segs[0].UTF8)
	}
	return texts, nil
}
