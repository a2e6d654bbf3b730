package sdg

import (
	"errors"
	"fmt"

	"bitbucket.org/creachadair/stringset"
)

// A TrackKind distinguishes captions authored by a person from captions
// produced by automatic speech recognition.
type TrackKind string

const (
	TrackManual TrackKind = "manual"
	TrackAuto   TrackKind = "auto-generated"
)

// A CaptionTrack is one fetchable caption stream reported by the platform
// for a video.
type CaptionTrack struct {
	Lang   string    `json:"lang"`
	Kind   TrackKind `json:"kind"`
	Format Format    `json:"format"`
	URL    string    `json:"url"`
}

// An Inventory holds the platform's reported caption tracks for one video,
// keyed by language and partitioned by origin kind.
type Inventory struct {
	Manual map[string][]CaptionTrack `json:"manual,omitempty"`
	Auto   map[string][]CaptionTrack `json:"auto,omitempty"`
}

// Languages reports all languages with at least one track, sorted.
func (inv *Inventory) Languages() []string {
	return stringset.FromKeys(inv.Manual).Union(stringset.FromKeys(inv.Auto)).Elements()
}

// englishTags lists the accepted English language tags in preference order.
var englishTags = []string{"en", "en-US", "en-GB"}

// IsEnglish reports whether lang is one of the canonical English tags.
func IsEnglish(lang string) bool { return stringset.Contains(englishTags, lang) }

// Errors reported by SelectTrack.
var (
	ErrNoCaptions             = errors.New("no English captions available")
	ErrPreferredFormatMissing = errors.New("preferred caption format not available")
)

// SelectTrack picks the caption track to fetch from inv. A manual English
// track always wins, with the English preference order breaking ties and
// the preferred serialization chosen when offered. Failing that, an
// auto-generated English track is selected only when it offers the
// preferred serialization; an auto track available in other serializations
// only fails the whole source with ErrPreferredFormatMissing rather than
// being fetched in another format. With no English track at all the result
// is ErrNoCaptions. SelectTrack never panics.
func SelectTrack(inv *Inventory, preferred Format) (CaptionTrack, error) {
	if inv == nil {
		return CaptionTrack{}, ErrNoCaptions
	}
	for _, lang := range englishTags {
		tracks := inv.Manual[lang]
		if len(tracks) == 0 {
			continue
		}
		for _, tr := range tracks {
			if tr.Format == preferred {
				return tr, nil
			}
		}
		return tracks[0], nil
	}
	sawEnglish := false
	for _, lang := range englishTags {
		for _, tr := range inv.Auto[lang] {
			sawEnglish = true
			if tr.Format == preferred {
				return tr, nil
			}
		}
	}
	if sawEnglish {
		return CaptionTrack{}, fmt.Errorf("%w (want %s)", ErrPreferredFormatMissing, preferred)
	}
	if langs := inv.Languages(); len(langs) != 0 {
		return CaptionTrack{}, fmt.Errorf("%w (reported: %v)", ErrNoCaptions, langs)
	}
	return CaptionTrack{}, ErrNoCaptions
}
