// Program guidegen generates small group discussion guides from sermon
// videos or local transcript files.
//
// Each argument is a YouTube URL, a bare video ID, or the path of a
// transcript file in the 4-line record layout (timestamp, speaker, text,
// blank). With -latest, the newest videos from the configured channel feed
// are processed instead. One input failing does not stop the rest.
//
// The GEMINI_API_KEY environment variable overrides the config file key.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sermonguides/tools/sdg"
)

var (
	configPath = flag.String("config", "guides.yaml", "Path to the YAML config file")
	latest     = flag.Int("latest", 0, "Process the newest n videos from the channel feed")
	outDir     = flag.String("output", "", "Output directory (overrides config)")
	doPDF      = flag.Bool("pdf", true, "Render a PDF (requires wkhtmltopdf)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: %[1]s [options] <video-url-or-file>...
       %[1]s [options] -latest n

Generate small group discussion guides from sermon transcripts. Inputs may
be YouTube URLs, bare video IDs, or local transcript files; with -latest,
the newest n videos of the configured channel feed are used.

Options:
`, filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	cfg, err := sdg.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	ctx := context.Background()
	inputs := flag.Args()
	if *latest > 0 {
		if cfg.ChannelFeed == "" {
			log.Fatal("No channel_feed is configured for -latest")
		}
		vids, err := sdg.LoadChannelFeed(ctx, cfg.ChannelFeed)
		if err != nil {
			log.Fatalf("Loading channel feed: %v", err)
		}
		for i, v := range vids {
			if i == *latest {
				break
			}
			log.Printf("Feed video %q published %s", v.Title, v.Published.Format("2006-01-02"))
			inputs = append(inputs, v.ID)
		}
	}
	if len(inputs) == 0 {
		log.Fatal("No inputs: provide video URLs, IDs, or transcript files, or use -latest")
	}

	pipe := sdg.NewPipeline(nil)
	gen := &sdg.Generator{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel}

	failed := 0
	items := pipe.RunBatch(ctx, inputs, func(ctx context.Context, item *sdg.Item) error {
		return writeGuide(ctx, cfg, gen, item)
	})
	for _, item := range items {
		if item.Err != nil {
			log.Printf("Input %q failed: %v", item.Input, item.Err)
			failed++
		}
	}
	log.Printf("Processed %d inputs, %d failed", len(items), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// writeGuide generates the discussion guide for item and writes the
// markdown plus the PDF (or, if wkhtmltopdf is unavailable, the styled
// HTML) under the output directory.
func writeGuide(ctx context.Context, cfg *sdg.Config, gen *sdg.Generator, item *sdg.Item) error {
	log.Printf("Generating discussion guide for %q", item.Meta.Title)
	guide, err := gen.GenerateGuide(ctx, item.Transcript)
	if err != nil {
		return fmt.Errorf("generating guide: %w", err)
	}

	doc, err := sdg.RenderHTML(guide, cfg.GuideHeading, item.Meta.Published)
	if err != nil {
		return err
	}

	base := "Small Group Discussion Guide - Week of " + item.Meta.Published.Format("January 2, 2006")
	if cfg.GuideHeading != "" {
		base = cfg.GuideHeading + " - " + base
	}
	mdPath := filepath.Join(cfg.OutputDir, base+".md")
	if err := sdg.WriteFileAtomic(mdPath, []byte(guide)); err != nil {
		return err
	}
	log.Printf("Wrote %s", mdPath)

	if !*doPDF {
		return nil
	}
	pdfPath := filepath.Join(cfg.OutputDir, base+".pdf")
	if err := sdg.WritePDF(ctx, cfg.Wkhtmltopdf, doc, pdfPath); err != nil {
		htmlPath := filepath.Join(cfg.OutputDir, base+".html")
		if werr := sdg.WriteFileAtomic(htmlPath, []byte(doc)); werr != nil {
			return werr
		}
		log.Printf("PDF rendering failed (%v); wrote %s instead", err, htmlPath)
		return nil
	}
	log.Printf("Wrote %s", pdfPath)
	return nil
}
