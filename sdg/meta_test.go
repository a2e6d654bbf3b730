package sdg_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sermonguides/tools/sdg"
)

func TestParseUploadDate(t *testing.T) {
	want := time.Date(2025, time.September, 14, 0, 0, 0, 0, time.Local)
	for _, input := range []string{"20250914", "2025-09-14", "2025-09-14T08:00:00"} {
		ts, err := sdg.ParseUploadDate(input)
		if err != nil {
			t.Errorf("ParseUploadDate(%q): unexpected error: %v", input, err)
			continue
		}
		if !ts.Equal(want) {
			t.Errorf("ParseUploadDate(%q): got %v, want %v", input, ts, want)
		}
	}
	for _, input := range []string{"", "yesterday", "2025/09/14", "202509"} {
		if _, err := sdg.ParseUploadDate(input); err == nil {
			t.Errorf("ParseUploadDate(%q): got nil error", input)
		}
	}
}

// The platform date and the filename date for the same day must agree.
func TestDateSourcesAgree(t *testing.T) {
	fromPlatform, err := sdg.ParseUploadDate("20250914")
	if err != nil {
		t.Fatalf("ParseUploadDate: %v", err)
	}
	fromFile, ok := sdg.FilenameDate("Sermon 09.14.25.txt")
	if !ok {
		t.Fatal("FilenameDate: no date found")
	}
	if !fromPlatform.Equal(fromFile) {
		t.Errorf("dates disagree: platform %v, filename %v", fromPlatform, fromFile)
	}
}

func TestVideoMeta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("v") {
		case "full":
			fmt.Fprint(w, `<html><head>
<meta name="title" content="Grace Upon Grace &#8212; John 1">
<meta itemprop="datePublished" content="2025-09-14T08:00:00-07:00">
<meta itemprop="uploadDate" content="2025-09-13T20:00:00-07:00">
</head><body></body></html>`)
		case "bare":
			fmt.Fprint(w, `<html><head><title>untagged</title></head></html>`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	cli := &sdg.Client{WatchBase: srv.URL + "/watch?v=%s"}
	ctx := context.Background()

	meta, err := cli.VideoMeta(ctx, "full")
	if err != nil {
		t.Fatalf("VideoMeta: unexpected error: %v", err)
	}
	if want := "Grace Upon Grace — John 1"; meta.Title != want {
		t.Errorf("Title: got %q, want %q", meta.Title, want)
	}
	if want := time.Date(2025, time.September, 14, 0, 0, 0, 0, time.Local); !meta.Published.Equal(want) {
		t.Errorf("Published: got %v, want %v", meta.Published, want)
	}

	// A page without usable tags falls back to the generic title and a
	// current date.
	before := time.Now().Add(-time.Minute)
	meta, err = cli.VideoMeta(ctx, "bare")
	if err != nil {
		t.Fatalf("VideoMeta: unexpected error: %v", err)
	}
	if meta.Title != "Unknown Title" {
		t.Errorf("Title: got %q, want Unknown Title", meta.Title)
	}
	if meta.Published.Before(before) {
		t.Errorf("Published: got %v, want a current date", meta.Published)
	}

	if _, err := cli.VideoMeta(ctx, "missing"); err == nil {
		t.Error("VideoMeta(missing): got nil error")
	}
}
