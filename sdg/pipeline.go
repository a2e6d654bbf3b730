package sdg

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"
	"unicode/utf8"
)

// An Item is the outcome of acquiring one input. Either Transcript is
// non-empty and Err is nil, or Err records why no transcript exists; there
// is no partial state.
type Item struct {
	Input      string
	Transcript string
	Meta       Meta
	Source     string // the winning strategy, or "local-file"
	Err        error
}

// A Pipeline wires the acquisition components together for one process
// run. It holds no per-item state; all entities live within a single
// Acquire call.
type Pipeline struct {
	Client   *Client
	Selector *Selector

	// Logf, if set, replaces log.Printf for progress reporting.
	Logf func(format string, args ...interface{})
}

// NewPipeline returns a Pipeline over cli (nil for a zero-value Client)
// using the production strategy order.
func NewPipeline(cli *Client) *Pipeline {
	if cli == nil {
		cli = new(Client)
	}
	p := &Pipeline{Client: cli, Selector: NewSelector(cli)}
	p.Selector.Log = p.logf
	return p
}

func (p *Pipeline) logf(format string, args ...interface{}) {
	if p.Logf != nil {
		p.Logf(format, args...)
	} else {
		log.Printf(format, args...)
	}
}

// Acquire resolves one input, remote or local, into a transcript with
// metadata. Platform URLs and bare video IDs take the remote fallback
// chain; anything naming an existing local file takes the local reader.
// Acquire reports an error only when no transcript is available.
func (p *Pipeline) Acquire(ctx context.Context, input string) (*Item, error) {
	if !IsVideoURL(input) {
		if _, err := os.Stat(input); err == nil {
			return p.acquireLocal(input)
		}
	}
	return p.acquireRemote(ctx, input)
}

func (p *Pipeline) acquireLocal(path string) (*Item, error) {
	text, err := ReadLocalTranscript(path)
	if err != nil {
		return nil, fmt.Errorf("reading local transcript: %w", err)
	}
	meta := Meta{Title: FilenameTitle(path), Published: time.Now()}
	if ts, ok := FilenameDate(path); ok {
		meta.Published = ts
	}
	p.logf("Transcript loaded from %s (%d characters)", path, utf8.RuneCountInString(text))
	return &Item{Input: path, Transcript: text, Meta: meta, Source: "local-file"}, nil
}

func (p *Pipeline) acquireRemote(ctx context.Context, input string) (*Item, error) {
	video := VideoRef{ID: VideoID(input), Raw: input}
	p.logf("Video ID: %s", video.ID)

	tr, err := p.Selector.Acquire(ctx, video)
	if err != nil {
		return nil, err
	}
	p.logf("Transcript retrieved via %s (%d characters)", tr.Source, tr.Len())

	item := &Item{
		Input:      input,
		Transcript: tr.Text(),
		Meta:       Meta{Title: "Unknown Title", Published: time.Now()},
		Source:     tr.Source,
	}
	if meta, err := p.Client.VideoMeta(ctx, video.ID); err != nil {
		p.logf("Video metadata unavailable: %v", err)
	} else {
		item.Meta = *meta
	}
	return item, nil
}

// RunBatch processes each input fully and in order: the transcript is
// acquired and, when process is non-nil, process is applied to the item
// before the next input starts. One item's failure never aborts the
// remaining items; a failure is recorded on its own item and processing
// continues.
func (p *Pipeline) RunBatch(ctx context.Context, inputs []string, process func(context.Context, *Item) error) []*Item {
	items := make([]*Item, 0, len(inputs))
	for i, input := range inputs {
		if len(inputs) > 1 {
			p.logf("Processing input %d of %d: %s", i+1, len(inputs), input)
		}
		item, err := p.Acquire(ctx, input)
		if err != nil {
			items = append(items, &Item{Input: input, Err: err})
			continue
		}
		if process != nil {
			if err := process(ctx, item); err != nil {
				item.Err = err
			}
		}
		items = append(items, item)
	}
	return items
}
