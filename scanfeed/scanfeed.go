// Program scanfeed lists recent videos from the channel's Atom feed, so new
// sermons can be picked up without pasting URLs around.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/sermonguides/tools/sdg"
)

var (
	configPath = flag.String("config", "guides.yaml", "Path to the YAML config file")
	feedURL    = flag.String("feed", "", "Channel feed URL (overrides config)")
	limit      = flag.Int("n", 0, "Print at most n entries (0 for all)")
)

func main() {
	flag.Parse()

	url := *feedURL
	if url == "" {
		cfg, err := sdg.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Loading config: %v", err)
		}
		url = cfg.ChannelFeed
	}
	if url == "" {
		log.Fatal("No channel feed: set -feed or channel_feed in the config")
	}

	vids, err := sdg.LoadChannelFeed(context.Background(), url)
	if err != nil {
		log.Fatalf("Loading channel feed: %v", err)
	}
	log.Printf("Loaded %d feed entries", len(vids))
	if *limit > 0 && len(vids) > *limit {
		vids = vids[:*limit]
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		V []*sdg.FeedVideo `json:"videos"`
	}{vids}); err != nil {
		log.Fatalf("Encoding JSON: %v", err)
	}
}
