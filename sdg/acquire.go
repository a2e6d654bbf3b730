package sdg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
)

// A Strategy is one self-contained mechanism for acquiring a transcript
// from the platform.
type Strategy interface {
	// Name identifies the strategy in transcripts and failure reports.
	Name() string

	// Attempt tries to acquire a transcript for video. Any failure is
	// reported as an error; a nil error implies a non-empty transcript.
	Attempt(ctx context.Context, video VideoRef) (*Transcript, error)
}

// ErrNoTranscript is reported when every configured strategy has failed for
// a video.
var ErrNoTranscript = errors.New("no transcript available")

// A Selector runs an ordered list of strategies against a video and keeps
// the first success. Strategies execute strictly in sequence; there is no
// scoring or comparison between them.
type Selector struct {
	Strategies []Strategy

	// Log, if set, receives a line for each strategy failure.
	Log func(format string, args ...interface{})
}

// NewSelector returns a Selector over cli with the production strategy
// order: the direct timedtext lookup, watch-page track discovery, and the
// TTML-restricted auto-caption download.
func NewSelector(cli *Client) *Selector {
	return &Selector{
		Strategies: []Strategy{
			&TimedTextStrategy{Client: cli},
			&DiscoveryStrategy{Client: cli, Preferred: FormatJSONEvents},
			&AutoCaptionStrategy{Client: cli},
		},
	}
}

func (s *Selector) logf(format string, args ...interface{}) {
	if s.Log != nil {
		s.Log(format, args...)
	}
}

// Acquire runs the strategies in order and returns the first non-empty
// transcript. Each strategy failure is recorded and the next strategy is
// tried; only after every strategy has failed does Acquire report an error,
// wrapping ErrNoTranscript together with the per-strategy reasons.
func (s *Selector) Acquire(ctx context.Context, video VideoRef) (*Transcript, error) {
	var reasons []string
	for _, st := range s.Strategies {
		tr, err := st.Attempt(ctx, video)
		if err == nil && (tr == nil || len(tr.Segments) == 0) {
			err = errors.New("empty transcript")
		}
		if err != nil {
			s.logf("strategy %s: %v", st.Name(), err)
			reasons = append(reasons, fmt.Sprintf("%s: %v", st.Name(), err))
			continue
		}
		return tr, nil
	}
	if len(reasons) == 0 {
		return nil, fmt.Errorf("%w for %q: no strategies configured", ErrNoTranscript, video.ID)
	}
	return nil, fmt.Errorf("%w for %q: %s", ErrNoTranscript, video.ID, strings.Join(reasons, "; "))
}

// A TimedTextStrategy queries the legacy timedtext endpoint directly,
// trying each configured language tag in order. The endpoint reports a
// missing track as an empty 200 response.
type TimedTextStrategy struct {
	Client *Client
	Langs  []string // nil for the canonical English variants
}

// Name implements part of the Strategy interface.
func (s *TimedTextStrategy) Name() string { return "timedtext" }

// Attempt implements part of the Strategy interface.
func (s *TimedTextStrategy) Attempt(ctx context.Context, video VideoRef) (*Transcript, error) {
	langs := s.Langs
	if langs == nil {
		langs = englishTags
	}
	var lastErr error
	for _, lang := range langs {
		bits, err := s.Client.get(ctx, s.Client.timedTextURL(lang, video.ID))
		if err != nil {
			lastErr = err
			continue
		}
		if len(bytes.TrimSpace(bits)) == 0 {
			continue // no track for this language
		}
		segs, err := DecodeCaptions(FormatTimedText, bits)
		if err != nil {
			lastErr = err
			continue
		}
		if len(segs) != 0 {
			return &Transcript{Video: video, Source: s.Name(), Segments: segs}, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoCaptions
}

// A DiscoveryStrategy reads the caption inventory from the watch page,
// selects a track under the locator policy with its preferred
// serialization, and fetches it.
type DiscoveryStrategy struct {
	Client    *Client
	Preferred Format
}

// Name implements part of the Strategy interface.
func (s *DiscoveryStrategy) Name() string { return "watch-page" }

// Attempt implements part of the Strategy interface.
func (s *DiscoveryStrategy) Attempt(ctx context.Context, video VideoRef) (*Transcript, error) {
	inv, err := s.Client.CaptionInventory(ctx, video.ID)
	if err != nil {
		return nil, err
	}
	return fetchSelected(ctx, s.Client, s.Name(), video, inv, s.Preferred)
}

// An AutoCaptionStrategy downloads an auto-generated caption track,
// accepting only the TTML serialization. Manual tracks do not participate;
// this is the last-resort path for videos whose only captions come from
// speech recognition.
type AutoCaptionStrategy struct {
	Client *Client
}

// Name implements part of the Strategy interface.
func (s *AutoCaptionStrategy) Name() string { return "auto-ttml" }

// Attempt implements part of the Strategy interface.
func (s *AutoCaptionStrategy) Attempt(ctx context.Context, video VideoRef) (*Transcript, error) {
	inv, err := s.Client.CaptionInventory(ctx, video.ID)
	if err != nil {
		return nil, err
	}
	return fetchSelected(ctx, s.Client, s.Name(), video, &Inventory{Auto: inv.Auto}, FormatTTML)
}

func fetchSelected(ctx context.Context, cli *Client, source string, video VideoRef, inv *Inventory, preferred Format) (*Transcript, error) {
	track, err := SelectTrack(inv, preferred)
	if err != nil {
		return nil, err
	}
	segs, err := cli.FetchCaptions(ctx, track)
	if err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("track %s/%s: empty caption payload", track.Lang, track.Format)
	}
	return &Transcript{Video: video, Source: source, Segments: segs}, nil
}
