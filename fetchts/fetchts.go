// Program fetchts fetches the text transcript of a YouTube video.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sermonguides/tools/sdg"
)

var (
	videoID = flag.String("id", "", "Video ID or URL to fetch")
	doList  = flag.Bool("list", false, "List available caption tracks and exit")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: %[1]s -id <video-id-or-url>
       %[1]s <video-id-or-url>

Fetch the text transcript of a YouTube video through the acquisition
fallback chain and write it to stdout as JSON:

  {
    "transcript": {
      "video": {"videoID": "<video-id>"},
      "source": "<strategy-name>",
      "segments": [{"index": 0, "text": "..."}, ...]
    }
  }

With -list, the reported caption tracks are printed instead.

Options:
`, filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	if *videoID == "" && flag.NArg() > 0 {
		*videoID = flag.Arg(0)
	}
	if *videoID == "" {
		log.Fatal("You must specify a non-empty video -id or URL")
	}

	ctx := context.Background()
	cli := new(sdg.Client)
	id := sdg.VideoID(*videoID)

	if *doList {
		inv, err := cli.CaptionInventory(ctx, id)
		if err != nil {
			log.Fatalf("Loading caption inventory: %v", err)
		}
		log.Printf("Video %q reports tracks in languages %v", id, inv.Languages())
		mustWriteJSON(struct {
			I *sdg.Inventory `json:"inventory"`
		}{inv})
		return
	}

	sel := sdg.NewSelector(cli)
	sel.Log = log.Printf
	tr, err := sel.Acquire(ctx, sdg.VideoRef{ID: id, Raw: *videoID})
	if err != nil {
		log.Fatalf("Fetching transcript: %v", err)
	}
	log.Printf("Found %d segments for ID %q via %s", len(tr.Segments), id, tr.Source)

	mustWriteJSON(struct {
		T *sdg.Transcript `json:"transcript"`
	}{tr})
}

func mustWriteJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("Encoding JSON: %v", err)
	}
}
