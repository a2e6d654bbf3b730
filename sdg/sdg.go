// Package sdg provides transcript acquisition and discussion guide
// generation for sermon videos and recorded services.
//
// The heart of the package is the acquisition pipeline: a canonical video
// ID is extracted from the input, an ordered list of strategies is tried
// against the video platform until one yields a transcript, and the caption
// payload is decoded from whichever serialization the winning strategy
// fetched. Transcripts from local recording files use a separate reader.
package sdg

import (
	"strings"
	"unicode/utf8"
)

// A VideoRef identifies a video on the platform. It is immutable once
// created.
type VideoRef struct {
	ID  string `json:"videoID"`       // the canonical video ID
	Raw string `json:"raw,omitempty"` // the input the ID was derived from
}

// A Segment is one ordered piece of transcript text. Segments produced by
// the caption decoders are trimmed and never empty.
type Segment struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// A Transcript is the ordered transcript of a single video, tagged with the
// name of the strategy that produced it.
type Transcript struct {
	Video    VideoRef  `json:"video"`
	Source   string    `json:"source"`
	Segments []Segment `json:"segments"`
}

// Text returns the transcript as a single string, the segment texts joined
// in order with single spaces.
func (t *Transcript) Text() string { return JoinSegments(t.Segments) }

// Len reports the length of the joined transcript text in characters.
func (t *Transcript) Len() int { return utf8.RuneCountInString(t.Text()) }

// JoinSegments joins the text of segs with single spaces, preserving the
// given order exactly.
func JoinSegments(segs []Segment) string {
	texts := make([]string, len(segs))
	for i, seg := range segs {
		texts[i] = seg.Text
	}
	return strings.Join(texts, " ")
}
